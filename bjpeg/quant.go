package bjpeg

// baseLuminance and baseChrominance are the standard JPEG Annex K example
// quantization tables, in natural (row-major) order.
var baseLuminance = [blockSize]uint8{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var baseChrominance = [blockSize]uint8{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// quantTables holds the per-encode scaled quantization tables, both in
// natural order (for quantizeBlock) and zig-zag order (for the DQT
// segment writer).
type quantTables struct {
	luma, chroma             [blockSize]uint8
	lumaZigZag, chromaZigZag [blockSize]uint8
}

// buildQuantTables scales the Annex K base tables for the given quality.
// Quality must already be clamped to [1, 100] by the caller.
func buildQuantTables(quality int) *quantTables {
	var scale int
	if quality < 50 {
		scale = 5000 / quality
	} else {
		scale = 200 - 2*quality
	}

	qt := &quantTables{}
	scaleTable(&baseLuminance, scale, &qt.luma)
	scaleTable(&baseChrominance, scale, &qt.chroma)

	for z := 0; z < blockSize; z++ {
		qt.lumaZigZag[z] = qt.luma[unzig[z]]
		qt.chromaZigZag[z] = qt.chroma[unzig[z]]
	}
	return qt
}

func scaleTable(base *[blockSize]uint8, scale int, out *[blockSize]uint8) {
	for i, tb := range base {
		v := (scale*int(tb) + 50) / 100
		if v < 1 {
			v = 1
		} else if v > 255 {
			v = 255
		}
		out[i] = uint8(v)
	}
}
