package bjpeg

import "bytes"

// Encode drives the full pipeline and returns a complete JFIF/JPEG
// byte stream: SOI, APP0, DQT, SOF0, DHT, SOS, the entropy-coded scan, and
// EOI. It owns every intermediate buffer; nothing it allocates outlives
// this call. Errors from image or parameter validation are returned
// immediately and no output is produced; there are no partial results.
func Encode(img *RgbImage, params EncodeParams) ([]byte, error) {
	if err := img.validate(); err != nil {
		return nil, err
	}
	if err := params.validateSampling(); err != nil {
		return nil, err
	}
	quality := params.normalizedQuality()

	qt := buildQuantTables(quality)

	y, cb, cr := convertColor(img)
	cb = subsampleChroma(cb, params.Sampling)
	cr = subsampleChroma(cr, params.Sampling)

	yPad := padPlane(y)
	cbPad := padPlane(cb)
	crPad := padPlane(cr)

	hMax, vMax, hLuma, vLuma, _, _ := params.Sampling.factors()

	yGrid := componentGrid{
		blocks: extractBlocks(yPad),
		cols:   yPad.Width / 8, rows: yPad.Height / 8,
		h: hLuma, v: vLuma,
	}
	cbGrid := componentGrid{
		blocks: extractBlocks(cbPad),
		cols:   cbPad.Width / 8, rows: cbPad.Height / 8,
		h: 1, v: 1,
	}
	crGrid := componentGrid{
		blocks: extractBlocks(crPad),
		cols:   crPad.Width / 8, rows: crPad.Height / 8,
		h: 1, v: 1,
	}

	if yGrid.h*yGrid.v <= 0 || len(yGrid.blocks) == 0 {
		return nil, newError(Internal, "empty luma block grid")
	}

	mxx, myy := mcuGrid(yGrid.cols, yGrid.rows, hMax, vMax)

	var buf bytes.Buffer
	writeMarker(&buf, markerSOI)
	writeAPP0(&buf)
	writeDQT(&buf, qt)
	comps := componentLayout(params.Sampling)
	writeSOF0(&buf, img.Width, img.Height, comps)
	writeDHT(&buf)
	writeSOSHeader(&buf, comps)

	bw := newBitWriter(&buf)
	var dcY, dcCb, dcCr dcPredictor
	for my := 0; my < myy; my++ {
		for mx := 0; mx < mxx; mx++ {
			yGrid.forEachInMCU(mx, my, func(b Block) {
				encodeBlock(bw, &b, &qt.luma, &dcY, tableDCLuma, tableACLuma)
			})
			cbGrid.forEachInMCU(mx, my, func(b Block) {
				encodeBlock(bw, &b, &qt.chroma, &dcCb, tableDCChroma, tableACChroma)
			})
			crGrid.forEachInMCU(mx, my, func(b Block) {
				encodeBlock(bw, &b, &qt.chroma, &dcCr, tableDCChroma, tableACChroma)
			})
		}
	}
	bw.flush()

	writeMarker(&buf, markerEOI)
	return buf.Bytes(), nil
}

// encodeBlock runs one block through the forward DCT, quantization,
// zig-zag, DC prediction, AC run-length coding, and Huffman packing.
func encodeBlock(w *bitWriter, b *Block, quant *[blockSize]uint8, dc *dcPredictor, dcTable, acTable int) {
	forwardDCT(b)
	quantizeBlock(b, quant)
	zz := zigZag(b)

	diff := dc.next(zz[0])
	packDC(w, dcTable, diff)

	var ac [acVectorLen]int32
	copy(ac[:], zz[1:])
	symbols := encodeRunLength(&ac)
	packAC(w, acTable, symbols)
}
