// Package bmp implements the BMP loader that bjpeg treats as an external
// collaborator (SPEC_FULL.md ): it decodes a 24-bit, uncompressed BMP
// file into the width, height, and three 8-bit planar channels that
// bjpeg.RgbImage expects, in top-to-bottom row order.
//
// Only 24-bit uncompressed BMPs are supported; any other depth or
// compression is reported as an error before an encoder ever sees the
// image, per the collaborator contract.
package bmp

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Image is the decoded collaborator output: width, height, and three
// row-major, top-to-bottom 8-bit channels, each of length Width*Height.
type Image struct {
	Width, Height int
	R, G, B       []uint8
}

const (
	fileHeaderSize = 14
	minInfoHeaderSize = 40
)

// Decode reads a 24-bit uncompressed BMP from r. It mirrors the field
// layout original_source/src/bitmap.c's bmp_OpenBitmap reads by raw
// offset (pixel-data offset at byte 10, width at 18, height at 22, bit
// depth at 28), but reads full rows with the standard 4-byte row padding
// and BGR pixel order rather than the original's ad-hoc raw-offset walk,
// and rejects non-24-bit/compressed input instead of producing garbage
// channels.
func Decode(r io.Reader) (*Image, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bmp: read: %w", err)
	}
	if len(buf) < fileHeaderSize+minInfoHeaderSize {
		return nil, fmt.Errorf("bmp: file too small to contain a header")
	}
	if buf[0] != 'B' || buf[1] != 'M' {
		return nil, fmt.Errorf("bmp: missing BM signature")
	}

	pixelOffset := binary.LittleEndian.Uint32(buf[10:14])
	infoHeaderSize := binary.LittleEndian.Uint32(buf[14:18])
	if infoHeaderSize < minInfoHeaderSize {
		return nil, fmt.Errorf("bmp: unsupported DIB header size %d", infoHeaderSize)
	}

	width := int(int32(binary.LittleEndian.Uint32(buf[18:22])))
	heightRaw := int(int32(binary.LittleEndian.Uint32(buf[22:26])))
	bitDepth := binary.LittleEndian.Uint16(buf[28:30])
	compression := binary.LittleEndian.Uint32(buf[30:34])

	if width <= 0 {
		return nil, fmt.Errorf("bmp: invalid width %d", width)
	}
	if heightRaw == 0 {
		return nil, fmt.Errorf("bmp: invalid height 0")
	}
	if bitDepth != 24 {
		return nil, fmt.Errorf("bmp: unsupported bit depth %d, only 24-bit uncompressed is supported", bitDepth)
	}
	if compression != 0 {
		return nil, fmt.Errorf("bmp: unsupported compression method %d, only uncompressed is supported", compression)
	}

	// A negative height means the pixel array is stored top-down already;
	// otherwise (the common case) it is bottom-up and rows must be
	// reversed into top-to-bottom order (the same reordering
	// bmp_GetColourData performs via its "offset = fs - i*stride" walk).
	topDown := heightRaw < 0
	height := heightRaw
	if !topDown {
		height = heightRaw
	} else {
		height = -heightRaw
	}

	rowSize := ((width*3 + 3) / 4) * 4
	need := int(pixelOffset) + rowSize*height
	if len(buf) < need {
		return nil, fmt.Errorf("bmp: pixel data truncated: need %d bytes, have %d", need, len(buf))
	}

	img := &Image{
		Width:  width,
		Height: height,
		R:      make([]uint8, width*height),
		G:      make([]uint8, width*height),
		B:      make([]uint8, width*height),
	}

	for row := 0; row < height; row++ {
		// Destination row 0 is the top of the image. File row 0 is the
		// bottom of the image unless the height field was negative.
		var fileRow int
		if topDown {
			fileRow = row
		} else {
			fileRow = height - 1 - row
		}
		rowStart := int(pixelOffset) + fileRow*rowSize
		rowBuf := buf[rowStart : rowStart+width*3]
		dstOff := row * width
		for x := 0; x < width; x++ {
			b := rowBuf[3*x+0]
			g := rowBuf[3*x+1]
			r := rowBuf[3*x+2]
			img.R[dstOff+x] = r
			img.G[dstOff+x] = g
			img.B[dstOff+x] = b
		}
	}

	return img, nil
}
