// tap.go - shared-output memoization for fan-out graphs

package synth

// Tap lets several consumers share one upstream operator's output
// without rendering it more than once per block. The driver's pull
// model means a naive fan-out (passing the same Operator to three
// different downstream nodes) would render the shared subgraph three
// times per block; Tap caches the rendered block keyed by the
// context's sample count and serves every consumer from that cache.
type Tap struct {
	inner       Operator
	sampleCount uint64
	block       Block
	valid       bool
	outputs     int
}

// NewTap wraps inner so its rendered block can be shared by multiple
// consumers, each obtained by calling Output.
func NewTap(inner Operator) *Tap {
	return &Tap{inner: inner}
}

// Output returns a new handle onto the tap's shared output. Every
// handle returned by the same Tap renders the same cached block for a
// given context.
func (t *Tap) Output() *Signal {
	t.outputs++
	return Wrap(&tapHandleOp{tap: t})
}

// Outputs reports how many consumer handles have been taken from this
// tap so far.
func (t *Tap) Outputs() int {
	return t.outputs
}

type tapHandleOp struct {
	tap *Tap
}

func (h *tapHandleOp) Render(ctx *Context) Block {
	t := h.tap
	if !t.valid || t.sampleCount != ctx.SampleCount {
		t.block = t.inner.Render(ctx)
		t.sampleCount = ctx.SampleCount
		t.valid = true
	}
	return t.block
}

// Tap wraps the signal so its output can be shared by multiple
// consumers without re-rendering the underlying graph for each.
func (s *Signal) Tap() *Tap {
	return NewTap(s)
}
