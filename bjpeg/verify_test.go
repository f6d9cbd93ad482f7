package bjpeg

// naiveIDCT is a test-only inverse DCT-II, the exact mirror of
// forwardDCT. It exists only so tests can reconstruct pixels from
// encoded coefficients and check round-trip properties; nothing in the
// production encode path ever decodes its own output.
func naiveIDCT(b *Block) {
	var tmp [blockSize]float64

	// Column pass: for each frequency column u, combine over the
	// vertical frequency v to produce a spatial row index y.
	for u := 0; u < 8; u++ {
		var col [8]float64
		for v := 0; v < 8; v++ {
			col[v] = float64(b[8*v+u])
		}
		for y := 0; y < 8; y++ {
			sum := 0.0
			for v := 0; v < 8; v++ {
				sum += alpha[v] * col[v] * cosTable[y][v]
			}
			tmp[8*y+u] = 0.5 * sum
		}
	}

	// Row pass: for each spatial row y, combine over the horizontal
	// frequency u to produce a spatial column index x.
	for y := 0; y < 8; y++ {
		var row [8]float64
		for u := 0; u < 8; u++ {
			row[u] = tmp[8*y+u]
		}
		for x := 0; x < 8; x++ {
			sum := 0.0
			for u := 0; u < 8; u++ {
				sum += alpha[u] * row[u] * cosTable[x][u]
			}
			b[8*y+x] = int32(roundHalfAwayFromZero(0.5 * sum))
		}
	}
}

// dequantizeNatural multiplies each natural-order coefficient by the
// matching quantization table entry, the inverse of quantizeBlock.
func dequantizeNatural(b *Block, table *[blockSize]uint8) {
	for i := 0; i < blockSize; i++ {
		b[i] *= int32(table[i])
	}
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
