// Package bjpeg implements a baseline JFIF/JPEG encoder: RGB->YCbCr
// conversion, MCU tiling, chroma subsampling, a forward DCT, quality-scaled
// quantization, zig-zag serialization, DC/AC entropy coding and Huffman
// bit-packing, assembled into a sequential baseline JPEG bitstream.
//
// The package takes an in-memory RgbImage and EncodeParams and returns a
// byte slice; it does not read files or parse any container format itself
// (see the sibling bmp package for a BMP loader).
package bjpeg

import "log"

// Sampling selects the chroma subsampling mode used for Cb/Cr.
type Sampling int

const (
	// S444 performs no chroma subsampling.
	S444 Sampling = iota
	// S422 subsamples chroma horizontally only (2:1).
	S422
	// S420 subsamples chroma both horizontally and vertically (2:1 each).
	S420
)

func (s Sampling) String() string {
	switch s {
	case S444:
		return "4:4:4"
	case S422:
		return "4:2:2"
	case S420:
		return "4:2:0"
	default:
		return "unknown"
	}
}

// factors returns the (Hmax, Vmax) maximum sampling factors and the
// per-component (h, v) factors for luma and chroma under this mode.
func (s Sampling) factors() (hMax, vMax, hLuma, vLuma, hChroma, vChroma int) {
	switch s {
	case S422:
		return 2, 1, 2, 1, 1, 1
	case S420:
		return 2, 2, 2, 2, 1, 1
	default: // S444
		return 1, 1, 1, 1, 1, 1
	}
}

// RgbImage is an in-memory, row-major, top-to-bottom 24-bit raster: three
// 8-bit channels per pixel, each plane of length W*H.
type RgbImage struct {
	Width, Height int
	R, G, B       []uint8
}

func (img *RgbImage) validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return newError(InvalidInput, "width and height must be positive, got %dx%d", img.Width, img.Height)
	}
	n := img.Width * img.Height
	if len(img.R) != n || len(img.G) != n || len(img.B) != n {
		return newError(InvalidInput, "plane length mismatch: want %d, got r=%d g=%d b=%d", n, len(img.R), len(img.G), len(img.B))
	}
	return nil
}

// EncodeParams controls the encode. Quality outside [1,100] is clamped to
// 50 and a warning is logged; it is not an error. Sampling outside the
// supported set is an InvalidParams error.
type EncodeParams struct {
	Quality  int
	Sampling Sampling

	// Logger receives non-fatal diagnostics, such as the quality clamp
	// warning. Defaults to log.Default() if nil.
	Logger *log.Logger
}

func (p *EncodeParams) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.Default()
}

// normalizedQuality returns the effective quality, clamping to 50 and
// logging a warning if the caller's value is out of [1, 100].
func (p *EncodeParams) normalizedQuality() int {
	if p.Quality < 1 || p.Quality > 100 {
		p.logger().Printf("bjpeg: quality %d out of range [1,100], clamped to 50", p.Quality)
		return 50
	}
	return p.Quality
}

func (p *EncodeParams) validateSampling() error {
	switch p.Sampling {
	case S444, S422, S420:
		return nil
	default:
		return newError(InvalidParams, "unsupported sampling mode %d", int(p.Sampling))
	}
}

// Plane is a 2-D 8-bit-valued grid stored as a flat buffer with an
// explicit stride, eliminating ragged 2-D ownership. Samples are
// plain uint8 pixel values before any level shift.
type Plane struct {
	Data          []uint8
	Width, Height int
	// Stride is the number of samples per row; Stride >= Width.
	Stride int
}

func newPlane(width, height int) *Plane {
	return &Plane{
		Data:   make([]uint8, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

func (p *Plane) at(x, y int) uint8 {
	return p.Data[y*p.Stride+x]
}

func (p *Plane) set(x, y int, v uint8) {
	p.Data[y*p.Stride+x] = v
}

// blockSize is the number of samples in an 8x8 DCT block.
const blockSize = 64

// Block is an 8x8 grid of signed coefficients, stored row-major
// (natural order), index = 8*row + col.
type Block [blockSize]int32

// pad8 rounds n up to the next multiple of 8.
func pad8(n int) int {
	return (n + 7) &^ 7
}
