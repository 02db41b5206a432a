// block.go - fixed-size sample buffers and the render-time context

package synth

// BlockSize is the number of samples produced by a single Render call.
const BlockSize = 64

// Block is a fixed-size buffer of samples produced by one Render call.
type Block [BlockSize]float32

// Context carries the sample rate and the count of samples already
// produced by the driver. It is advanced by the driver only after a
// full block has been rendered by every operator reachable from the
// sink; operators must treat it as read-only during Render.
type Context struct {
	SampleRate  float64
	SampleCount uint64
}

// Advance moves the context forward by one block's worth of samples.
// Only the driver calls this, after every operator has rendered the
// current block.
func (c *Context) Advance() {
	c.SampleCount += BlockSize
}

// TimeSeconds returns the elapsed time, in seconds, at the start of
// the current block.
func (c *Context) TimeSeconds() float64 {
	return float64(c.SampleCount) / c.SampleRate
}
