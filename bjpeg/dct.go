package bjpeg

import "math"

// cosTable[x][u] = cos((2x+1)*u*pi/16), precomputed once at init since it
// depends only on fixed 8x8 geometry.
var cosTable [8][8]float64

// alpha[u] is the DCT normalization factor: 1/sqrt(2) for u==0, else 1.
var alpha [8]float64

func init() {
	for x := 0; x < 8; x++ {
		for u := 0; u < 8; u++ {
			cosTable[x][u] = math.Cos(float64(2*x+1) * float64(u) * math.Pi / 16)
		}
	}
	alpha[0] = 1 / math.Sqrt2
	for u := 1; u < 8; u++ {
		alpha[u] = 1
	}
}

// forwardDCT computes the 2-D DCT-II of an 8x8 block in place,
// using the direct (non-fast) separable definition. Inputs are the
// level-shifted signed samples produced by extractBlocks; outputs are
// rounded to the nearest integer, ties away from zero, as 32-bit signed
// coefficients in natural order.
//
// A fixed-point or fast-DCT implementation would also satisfy the ITU
// precision requirements; this one uses float64 intermediates for
// simplicity and is separable: first an 8-point 1-D DCT along each row,
// then along each column of the result.
func forwardDCT(b *Block) {
	var tmp [blockSize]float64

	// Row pass: for each spatial row y, transform the 8 samples along x.
	for y := 0; y < 8; y++ {
		var row [8]float64
		for x := 0; x < 8; x++ {
			row[x] = float64(b[8*y+x])
		}
		for u := 0; u < 8; u++ {
			sum := 0.0
			for x := 0; x < 8; x++ {
				sum += row[x] * cosTable[x][u]
			}
			tmp[8*y+u] = 0.5 * alpha[u] * sum
		}
	}

	// Column pass: for each frequency column u, transform the 8
	// intermediate values along y.
	for u := 0; u < 8; u++ {
		var col [8]float64
		for y := 0; y < 8; y++ {
			col[y] = tmp[8*y+u]
		}
		for v := 0; v < 8; v++ {
			sum := 0.0
			for y := 0; y < 8; y++ {
				sum += col[y] * cosTable[y][v]
			}
			b[8*v+u] = int32(roundHalfAwayFromZero(0.5 * alpha[v] * sum))
		}
	}
}
