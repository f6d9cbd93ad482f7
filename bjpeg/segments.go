package bjpeg

import "bytes"

const (
	markerSOI  = 0xd8
	markerAPP0 = 0xe0
	markerDQT  = 0xdb
	markerSOF0 = 0xc0
	markerDHT  = 0xc4
	markerSOS  = 0xda
	markerEOI  = 0xd9
)

// writeMarker writes a bare two-byte marker (SOI, EOI) with no payload.
func writeMarker(dst *bytes.Buffer, marker byte) {
	dst.WriteByte(0xff)
	dst.WriteByte(marker)
}

// writeMarkerHeader writes a marker followed by its big-endian length
// (the length field itself counts as 2 of those bytes).
func writeMarkerHeader(dst *bytes.Buffer, marker byte, payloadLen int) {
	dst.WriteByte(0xff)
	dst.WriteByte(marker)
	length := payloadLen + 2
	dst.WriteByte(byte(length >> 8))
	dst.WriteByte(byte(length & 0xff))
}

// writeAPP0 writes the JFIF APP0 segment: fixed 14-byte payload
// (length field 16) identifying the file as JFIF 1.02 with no thumbnail.
func writeAPP0(dst *bytes.Buffer) {
	writeMarkerHeader(dst, markerAPP0, 14)
	dst.WriteString("JFIF\x00")
	dst.WriteByte(1) // version major
	dst.WriteByte(2) // version minor
	dst.WriteByte(1) // density units: 1 = pixels per inch
	dst.WriteByte(0x00)
	dst.WriteByte(0x48) // X density = 72
	dst.WriteByte(0x00)
	dst.WriteByte(0x48) // Y density = 72
	dst.WriteByte(0)    // thumbnail width
	dst.WriteByte(0)    // thumbnail height
}

// writeDQT writes the Define Quantization Table marker with both the
// luma and chroma tables, each in zig-zag order.
func writeDQT(dst *bytes.Buffer, qt *quantTables) {
	writeMarkerHeader(dst, markerDQT, 2*(1+blockSize))
	dst.WriteByte(0x00) // precision 0 (8-bit), table id 0 (luma)
	dst.Write(qt.lumaZigZag[:])
	dst.WriteByte(0x01) // precision 0, table id 1 (chroma)
	dst.Write(qt.chromaZigZag[:])
}

// sofComponent describes one SOF0/SOS component entry.
type sofComponent struct {
	id      byte
	h, v    byte
	quant   byte // DQT table selector
	dcTable byte
	acTable byte
}

// componentLayout returns the three components' sampling factors and
// table selectors for the given mode, S444=1,1,1,1,1,1;
// S422=2,1,1,1,1,1; S420=2,2,1,1,1,1, with Y always using quant/huffman
// table 0 and Cb/Cr always using table 1.
func componentLayout(s Sampling) [3]sofComponent {
	hMax, vMax, _, _, _, _ := s.factors()
	return [3]sofComponent{
		{id: 1, h: byte(hMax), v: byte(vMax), quant: 0, dcTable: 0, acTable: 0},
		{id: 2, h: 1, v: 1, quant: 1, dcTable: 1, acTable: 1},
		{id: 3, h: 1, v: 1, quant: 1, dcTable: 1, acTable: 1},
	}
}

// writeSOF0 writes the baseline sequential DCT frame header.
func writeSOF0(dst *bytes.Buffer, width, height int, comps [3]sofComponent) {
	writeMarkerHeader(dst, markerSOF0, 6+3*3)
	dst.WriteByte(8) // sample precision
	dst.WriteByte(byte(height >> 8))
	dst.WriteByte(byte(height & 0xff))
	dst.WriteByte(byte(width >> 8))
	dst.WriteByte(byte(width & 0xff))
	dst.WriteByte(3) // number of components
	for _, c := range comps {
		dst.WriteByte(c.id)
		dst.WriteByte(c.h<<4 | c.v)
		dst.WriteByte(c.quant)
	}
}

// writeDHT writes all four fixed Huffman tables: DC-luma,
// AC-luma, DC-chroma, AC-chroma, in that order.
func writeDHT(dst *bytes.Buffer) {
	length := 0
	for _, s := range annexKSpecs {
		length += 1 + 16 + len(s.values)
	}
	writeMarkerHeader(dst, markerDHT, length)
	classAndID := [numHuffTables]byte{
		tableDCLuma:   0x00, // class 0 (DC), id 0
		tableACLuma:   0x10, // class 1 (AC), id 0
		tableDCChroma: 0x01, // class 0 (DC), id 1
		tableACChroma: 0x11, // class 1 (AC), id 1
	}
	for i, s := range annexKSpecs {
		dst.WriteByte(classAndID[i])
		dst.Write(s.counts[:])
		dst.Write(s.values)
	}
}

// writeSOSHeader writes the Start Of Scan header: three
// components each naming their DC/AC table selectors, followed by the
// fixed spectral-selection/successive-approximation bytes for a baseline
// sequential scan (00 3F 00).
func writeSOSHeader(dst *bytes.Buffer, comps [3]sofComponent) {
	writeMarkerHeader(dst, markerSOS, 1+2*len(comps)+3)
	dst.WriteByte(3)
	for _, c := range comps {
		dst.WriteByte(c.id)
		dst.WriteByte(c.dcTable<<4 | c.acTable)
	}
	dst.WriteByte(0x00) // spectral selection start
	dst.WriteByte(0x3f) // spectral selection end
	dst.WriteByte(0x00) // successive approximation (high<<4 | low)
}
