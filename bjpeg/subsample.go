package bjpeg

// subsampleChroma reduces a full-resolution chroma plane according to the
// sampling mode. S444 is a no-op (a copy). S422 averages 2x1
// horizontal pairs; S420 averages 2x2 neighborhoods. Out-of-bounds source
// columns/rows (when width or height is odd) are edge-clamped, matching
// the edge-extension policy used elsewhere in the pipeline.
func subsampleChroma(p *Plane, s Sampling) *Plane {
	switch s {
	case S422:
		return subsampleHorizontal(p)
	case S420:
		return subsample2x2(p)
	default: // S444
		return copyPlane(p)
	}
}

func copyPlane(p *Plane) *Plane {
	out := newPlane(p.Width, p.Height)
	for y := 0; y < p.Height; y++ {
		copy(out.Data[y*out.Stride:y*out.Stride+out.Width], p.Data[y*p.Stride:y*p.Stride+p.Width])
	}
	return out
}

func subsampleHorizontal(p *Plane) *Plane {
	outW := (p.Width + 1) / 2
	out := newPlane(outW, p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < outW; x++ {
			x0 := 2 * x
			x1 := x0 + 1
			if x1 >= p.Width {
				x1 = p.Width - 1
			}
			sum := int(p.at(x0, y)) + int(p.at(x1, y))
			out.set(x, y, uint8(roundHalfAwayFromZero(float64(sum)/2)))
		}
	}
	return out
}

func subsample2x2(p *Plane) *Plane {
	outW := (p.Width + 1) / 2
	outH := (p.Height + 1) / 2
	out := newPlane(outW, outH)
	for y := 0; y < outH; y++ {
		y0 := 2 * y
		y1 := y0 + 1
		if y1 >= p.Height {
			y1 = p.Height - 1
		}
		for x := 0; x < outW; x++ {
			x0 := 2 * x
			x1 := x0 + 1
			if x1 >= p.Width {
				x1 = p.Width - 1
			}
			sum := int(p.at(x0, y0)) + int(p.at(x1, y0)) + int(p.at(x0, y1)) + int(p.at(x1, y1))
			out.set(x, y, uint8(roundHalfAwayFromZero(float64(sum)/4)))
		}
	}
	return out
}
