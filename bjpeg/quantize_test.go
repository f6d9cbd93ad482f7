package bjpeg

import "testing"

func TestQuantizeBlockRoundsHalfAwayFromZero(t *testing.T) {
	var table [blockSize]uint8
	for i := range table {
		table[i] = 10
	}
	var b Block
	b[0] = 25 // 25/10 = 2.5, rounds away from zero to 3
	b[1] = -25
	b[2] = 24 // rounds to 2
	quantizeBlock(&b, &table)
	if b[0] != 3 {
		t.Errorf("quantizeBlock(25,10) = %d, want 3", b[0])
	}
	if b[1] != -3 {
		t.Errorf("quantizeBlock(-25,10) = %d, want -3", b[1])
	}
	if b[2] != 2 {
		t.Errorf("quantizeBlock(24,10) = %d, want 2", b[2])
	}
}

func TestQuantizeDequantizeInverse(t *testing.T) {
	var table [blockSize]uint8
	for i := range table {
		table[i] = uint8(5 + i)
	}
	var b Block
	for i := range b {
		b[i] = int32(table[i]) * int32(i-32) // exact multiple, quantize is exact
	}
	orig := b
	quantizeBlock(&b, &table)
	dequantizeNatural(&b, &table)
	for i := range b {
		if b[i] != orig[i] {
			t.Errorf("quantize/dequantize at %d: got %d, want %d", i, b[i], orig[i])
		}
	}
}
