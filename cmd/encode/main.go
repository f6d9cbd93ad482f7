// Command encode converts a 24-bit uncompressed BMP file into a baseline
// JFIF/JPEG file.
//
// Usage:
//
//	encode <input.bmp> <output.jpg> <quality> <sampling>
//
// quality is an integer in [1,100]; sampling is 0 (4:4:4), 1 (4:2:2), or
// 2 (4:2:0).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lowlevelpix/bjpeg/bjpeg"
	"github.com/lowlevelpix/bjpeg/bmp"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintf(os.Stderr, "usage: %s <input.bmp> <output.jpg> <quality> <sampling:0=444,1=422,2=420>\n", os.Args[0])
		os.Exit(1)
	}

	inPath, outPath := os.Args[1], os.Args[2]

	quality, err := strconv.Atoi(os.Args[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: invalid quality %q: %v\n", os.Args[3], err)
		os.Exit(1)
	}

	samplingArg, err := strconv.Atoi(os.Args[4])
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: invalid sampling %q: %v\n", os.Args[4], err)
		os.Exit(1)
	}
	sampling, err := parseSampling(samplingArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	bm, err := bmp.Decode(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}

	img := &bjpeg.RgbImage{
		Width:  bm.Width,
		Height: bm.Height,
		R:      bm.R,
		G:      bm.G,
		B:      bm.B,
	}

	out, err := bjpeg.Encode(img, bjpeg.EncodeParams{Quality: quality, Sampling: sampling})
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, out, 0644); err != nil {
		writeErr := bjpeg.NewIoError("writing %s", outPath, err)
		fmt.Fprintf(os.Stderr, "encode: %v\n", writeErr)
		os.Exit(1)
	}
}

func parseSampling(v int) (bjpeg.Sampling, error) {
	switch v {
	case 0:
		return bjpeg.S444, nil
	case 1:
		return bjpeg.S422, nil
	case 2:
		return bjpeg.S420, nil
	default:
		return 0, fmt.Errorf("sampling must be 0, 1, or 2, got %d", v)
	}
}
