package bjpeg

import (
	"bytes"
	"testing"
)

func TestBitWriterSimpleByte(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.emit(0xAA, 8)
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0xAA {
		t.Errorf("emit(0xAA,8) = % x, want [aa]", got)
	}
}

func TestBitWriterByteStuffing(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.emit(0xFF, 8)
	want := []byte{0xFF, 0x00}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("emit(0xFF,8) = % x, want % x (byte-stuffed)", got, want)
	}
}

func TestBitWriterMultiByteStuffing(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.emit(0xFFFF, 16)
	want := []byte{0xFF, 0x00, 0xFF, 0x00}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("emit(0xffff,16) = % x, want % x", got, want)
	}
}

func TestBitWriterNoFalseStuffing(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.emit(0xFE, 8)
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0xFE {
		t.Errorf("emit(0xFE,8) should not be stuffed, got % x", got)
	}
}

func TestBitWriterAccumulatesAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.emit(0b1010, 4)
	w.emit(0b0101, 4)
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0xA5 {
		t.Errorf("two 4-bit emits = % x, want [a5]", got)
	}
}

func TestBitWriterFlushPadsWithOnes(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.emit(0b1010, 4)
	w.flush()
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0xAF {
		t.Errorf("flush after 4 bits = % x, want [af]", got)
	}
}

func TestBitWriterFlushNoOpWhenAligned(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.emit(0xAB, 8)
	w.flush()
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0xAB {
		t.Errorf("flush on byte-aligned writer should be a no-op, got % x", got)
	}
}

func TestBitWriterFlushStuffsPaddedByte(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.emit(0b1111, 4) // padding with four more 1-bits makes a full 0xff byte
	w.flush()
	want := []byte{0xFF, 0x00}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("flush producing 0xff = % x, want % x (stuffed)", got, want)
	}
}
