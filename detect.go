// detect.go - rising-edge trigger detection

package synth

// triggerOp renders a single-sample pulse on every rising edge of its
// input, using a strict "< 1.0 is low" threshold: a sample must climb
// from below 1.0 to at least 1.0 to count as a rising edge. This is
// the corrected reading of the threshold comparator the source
// engine's detector used; the original's "less than or equal to"
// comparator was implemented backwards (effectively >=), which this
// package does not reproduce (see Le in comparators.go).
type triggerOp struct {
	input   Operator
	wasHigh bool
}

// NewTrigger builds a rising-edge detector over input.
func NewTrigger(input Operator) *Signal {
	return Wrap(&triggerOp{input: input})
}

func (t *triggerOp) Render(ctx *Context) Block {
	in := t.input.Render(ctx)
	var out Block
	for i := range out {
		high := in[i] >= 1.0
		if high && !t.wasHigh {
			out[i] = 1
		} else {
			out[i] = 0
		}
		t.wasHigh = high
	}
	return out
}
