package bjpeg

// dcPredictor maintains the running previous DC value for one component
// across a scan and emits the difference against each new DC. The
// zero value is ready to use: the running DC starts at 0, so the first
// block's predicted difference equals its own DC value.
type dcPredictor struct {
	prev int32
}

// next returns dc - prevDC and updates the running state.
func (d *dcPredictor) next(dc int32) int32 {
	diff := dc - d.prev
	d.prev = dc
	return diff
}
