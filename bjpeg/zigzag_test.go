package bjpeg

import "testing"

func TestZigZagDCPosition(t *testing.T) {
	var b Block
	b[0] = 42
	zz := zigZag(&b)
	if zz[0] != 42 {
		t.Errorf("zigZag DC position = %d, want 42", zz[0])
	}
}

func TestZigZagLength(t *testing.T) {
	var b Block
	zz := zigZag(&b)
	if len(zz) != blockSize {
		t.Errorf("zigZag output length = %d, want %d", len(zz), blockSize)
	}
}

func TestZigZagInvertible(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = int32(i)
	}
	zz := zigZag(&b)
	for n := 0; n < blockSize; n++ {
		if b[n] != zz[zig[n]] {
			t.Errorf("zig/unzig mismatch at natural index %d", n)
		}
	}
	for z := 0; z < blockSize; z++ {
		if zz[z] != b[unzig[z]] {
			t.Errorf("zigZag(%d) = %d, want b[unzig[%d]] = %d", z, zz[z], z, b[unzig[z]])
		}
	}
}

func TestUnzigIsPermutation(t *testing.T) {
	seen := make(map[int32]bool)
	for _, n := range unzig {
		if n < 0 || n >= blockSize {
			t.Fatalf("unzig contains out-of-range index %d", n)
		}
		if seen[n] {
			t.Fatalf("unzig contains duplicate index %d", n)
		}
		seen[n] = true
	}
}
