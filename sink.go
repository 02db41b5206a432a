// sink.go - the audio output contract and a no-op sink for tests

package synth

// Sink is the single-method contract every audio output backend
// implements: consume one rendered block. Sinks decide for themselves
// how to turn that into realtime playback or a file on disk.
type Sink interface {
	Write(b Block) error
}

// HeadlessSink discards every block it is given. It is the default
// sink for tests and for any build that has no audio device to talk
// to, mirroring the no-op backend stub pattern used for headless CI
// builds.
type HeadlessSink struct {
	blocksWritten uint64
}

// NewHeadlessSink builds a sink that discards its input.
func NewHeadlessSink() *HeadlessSink {
	return &HeadlessSink{}
}

func (h *HeadlessSink) Write(b Block) error {
	h.blocksWritten++
	return nil
}

// BlocksWritten reports how many blocks have been handed to this
// sink, which is otherwise unobservable since it discards them.
func (h *HeadlessSink) BlocksWritten() uint64 {
	return h.blocksWritten
}

// CollectingSink accumulates every block it is given, in order. It
// exists for tests that need to inspect a full rendered signal rather
// than just observe that rendering happened.
type CollectingSink struct {
	Blocks []Block
}

func (c *CollectingSink) Write(b Block) error {
	c.Blocks = append(c.Blocks, b)
	return nil
}

// Samples flattens every collected block into one contiguous slice.
func (c *CollectingSink) Samples() []float32 {
	out := make([]float32, 0, len(c.Blocks)*BlockSize)
	for _, b := range c.Blocks {
		out = append(out, b[:]...)
	}
	return out
}
