package bjpeg

// unzig maps a zig-zag scan index to its natural (row-major) index:
// unzig[zigzagIndex] = naturalIndex. This is the canonical JPEG zig-zag
// permutation; position 0 is the DC coefficient in both orders.
var unzig = [blockSize]int32{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// zig is the inverse permutation: zig[naturalIndex] = zigzagIndex.
var zig [blockSize]int32

func init() {
	for z, n := range unzig {
		zig[n] = int32(z)
	}
}

// zigZag maps an 8x8 block in natural order to a length-64 vector in
// zig-zag order.
func zigZag(b *Block) [blockSize]int32 {
	var out [blockSize]int32
	for z := 0; z < blockSize; z++ {
		out[z] = b[unzig[z]]
	}
	return out
}
