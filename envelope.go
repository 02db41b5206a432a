// envelope.go - attack/decay envelope generator

package synth

type envelopePhase int

const (
	envelopeIdle envelopePhase = iota
	envelopeAttacking
	envelopeDecaying
)

// adEnvelopeOp is a linear attack/decay envelope. It watches a trigger
// input for rising edges (the same strict "< 1.0 is low" threshold
// Detect uses) and hard-restarts into the attack phase on every edge,
// even if a previous attack/decay cycle is still in flight.
type adEnvelopeOp struct {
	trigger  Operator
	attack   Operator
	decay    Operator
	phase    envelopePhase
	elapsed  float64
	level    float32
	wasHigh  bool
}

// NewAD builds an attack/decay envelope. attack and decay are CVs
// giving the ramp durations in seconds, re-read every sample so they
// can be modulated mid-envelope.
func NewAD(trigger, attack, decay Operator) *Signal {
	return Wrap(&adEnvelopeOp{trigger: trigger, attack: attack, decay: decay})
}

func (e *adEnvelopeOp) Render(ctx *Context) Block {
	trig := e.trigger.Render(ctx)
	atk := e.attack.Render(ctx)
	dec := e.decay.Render(ctx)
	var out Block
	step := 1.0 / ctx.SampleRate
	for i := range out {
		high := trig[i] >= 1.0
		if high && !e.wasHigh {
			e.phase = envelopeAttacking
			e.elapsed = 0
		}
		e.wasHigh = high

		switch e.phase {
		case envelopeIdle:
			e.level = 0
		case envelopeAttacking:
			dur := float64(atk[i])
			if dur <= 0 {
				e.level = 1
			} else {
				e.level = float32(e.elapsed / dur)
			}
			// Within float32 rounding of 1 counts as the peak, so a
			// float32 duration such as 0.001 still ramps in whole samples.
			if e.level >= 1-1e-6 {
				e.level = 1
				e.phase = envelopeDecaying
				e.elapsed = 0
			} else {
				e.elapsed += step
			}
		case envelopeDecaying:
			dur := float64(dec[i])
			if dur <= 0 {
				e.level = 0
				e.phase = envelopeIdle
				e.elapsed = 0
			} else {
				e.level = float32(1 - e.elapsed/dur)
				if e.level <= 1e-6 {
					e.level = 0
					e.phase = envelopeIdle
					e.elapsed = 0
				} else {
					e.elapsed += step
				}
			}
		}
		out[i] = e.level
	}
	return out
}
