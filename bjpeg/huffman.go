package bjpeg

// huffmanSpec is one of the four fixed JPEG Annex K Huffman table
// specifications: counts[i] is the number of codes of length i+1 bits,
// and values holds the symbol assigned to each code in canonical order.
// These are the standard Annex K tables, transcribed directly.
type huffmanSpec struct {
	counts [16]byte
	values []byte
}

const (
	tableDCLuma = iota
	tableACLuma
	tableDCChroma
	tableACChroma
	numHuffTables
)

var annexKSpecs = [numHuffTables]huffmanSpec{
	tableDCLuma: {
		counts: [16]byte{0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		values: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	tableACLuma: {
		counts: [16]byte{0, 2, 1, 3, 3, 2, 4, 3, 5, 5, 4, 4, 0, 0, 1, 125},
		values: []byte{
			0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12,
			0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
			0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08,
			0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
			0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16,
			0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
			0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39,
			0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
			0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
			0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
			0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79,
			0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
			0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98,
			0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
			0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6,
			0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
			0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4,
			0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
			0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea,
			0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	},
	tableDCChroma: {
		counts: [16]byte{0, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		values: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	tableACChroma: {
		counts: [16]byte{0, 2, 1, 2, 4, 4, 3, 4, 7, 5, 4, 4, 0, 1, 2, 119},
		values: []byte{
			0x00, 0x01, 0x02, 0x03, 0x11, 0x04, 0x05, 0x21,
			0x31, 0x06, 0x12, 0x41, 0x51, 0x07, 0x61, 0x71,
			0x13, 0x22, 0x32, 0x81, 0x08, 0x14, 0x42, 0x91,
			0xa1, 0xb1, 0xc1, 0x09, 0x23, 0x33, 0x52, 0xf0,
			0x15, 0x62, 0x72, 0xd1, 0x0a, 0x16, 0x24, 0x34,
			0xe1, 0x25, 0xf1, 0x17, 0x18, 0x19, 0x1a, 0x26,
			0x27, 0x28, 0x29, 0x2a, 0x35, 0x36, 0x37, 0x38,
			0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
			0x49, 0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58,
			0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68,
			0x69, 0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78,
			0x79, 0x7a, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
			0x88, 0x89, 0x8a, 0x92, 0x93, 0x94, 0x95, 0x96,
			0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5,
			0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4,
			0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3,
			0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2,
			0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda,
			0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9,
			0xea, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	},
}

// huffCode packs a codeword: the low nBits bits of bits hold the
// canonical Huffman code, MSB-first.
type huffCode struct {
	nBits uint32
	bits  uint32
}

// huffmanLUT maps a symbol byte to its canonical codeword. It is derived
// once at startup from (counts, values) rather than carrying pre-encoded
// bit strings.
type huffmanLUT []huffCode

func buildHuffmanLUT(s *huffmanSpec) huffmanLUT {
	maxValue := 0
	for _, v := range s.values {
		if int(v) > maxValue {
			maxValue = int(v)
		}
	}
	lut := make(huffmanLUT, maxValue+1)
	code, k := uint32(0), 0
	for length := 0; length < 16; length++ {
		n := uint32(length + 1)
		for j := byte(0); j < s.counts[length]; j++ {
			lut[s.values[k]] = huffCode{nBits: n, bits: code}
			code++
			k++
		}
		code <<= 1
	}
	return lut
}

// annexKLUTs are the compiled representations of annexKSpecs, built once
// at package init and safe to read concurrently thereafter.
var annexKLUTs [numHuffTables]huffmanLUT

func init() {
	for i := range annexKSpecs {
		annexKLUTs[i] = buildHuffmanLUT(&annexKSpecs[i])
	}
}

// emitHuff emits the codeword for symbol value from table t.
func emitHuff(w *bitWriter, t int, value int) {
	c := annexKLUTs[t][value]
	w.emit(c.bits, c.nBits)
}

// emitAmplitude emits the size-bit amplitude field for v: if
// v >= 0, write v directly in size bits; if v < 0, write v-1 truncated to
// size bits (two's-complement low bits). A decoder recovers the sign by
// checking the amplitude field's MSB.
func emitAmplitude(w *bitWriter, v int32, size int) {
	if size == 0 {
		return
	}
	a := v
	if a < 0 {
		a = v - 1
	}
	w.emit(uint32(a)&(1<<uint(size)-1), uint32(size))
}

// packDC emits one DC symbol: the Huffman codeword for its magnitude
// category followed by its amplitude bits.
func packDC(w *bitWriter, dcTable int, diff int32) {
	size := magnitudeSize(diff)
	emitHuff(w, dcTable, size)
	emitAmplitude(w, diff, size)
}

// packAC emits the full AC symbol sequence for one block.
// EOB is symbol 0x00; ZRL is symbol 0xf0.
func packAC(w *bitWriter, acTable int, symbols []RLSymbol) {
	for _, s := range symbols {
		emitHuff(w, acTable, s.RunLen<<4|s.Size)
		emitAmplitude(w, s.Amplitude, s.Size)
	}
}
