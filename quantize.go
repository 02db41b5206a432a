// quantize.go - scale quantization of 1V/oct control signals

package synth

import "math"

// ScaleMode selects which set of scale-degree intervals a Quantizer
// snaps to.
type ScaleMode int

const (
	// ScaleAll passes every semitone (chromatic quantization).
	ScaleAll ScaleMode = iota
	// ScaleMajor snaps to the major scale's seven degrees.
	ScaleMajor
	// ScaleMinor snaps to the natural minor scale's seven degrees.
	ScaleMinor
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleAll:
		return "all"
	case ScaleMajor:
		return "major"
	case ScaleMinor:
		return "minor"
	default:
		return "unknown"
	}
}

var scaleIntervals = map[ScaleMode][]float64{
	ScaleAll:   {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	ScaleMajor: {0, 2, 4, 5, 7, 9, 11},
	ScaleMinor: {0, 2, 3, 5, 7, 8, 10},
}

type quantizeOp struct {
	input     Operator
	intervals []float64
}

// NewQuantizer builds an operator that snaps a 1V/oct signal to the
// nearest degree of the given scale, preserving the octave. Ties
// (equal distance to two candidate degrees) resolve to whichever
// degree appears first in the scale's interval list.
func NewQuantizer(input Operator, mode ScaleMode) (*Signal, error) {
	intervals, ok := scaleIntervals[mode]
	if !ok {
		return nil, newInvalidParameterError("Quantizer", "mode", "must be ScaleAll, ScaleMajor or ScaleMinor")
	}
	return Wrap(&quantizeOp{input: input, intervals: intervals}), nil
}

func (q *quantizeOp) Render(ctx *Context) Block {
	in := q.input.Render(ctx)
	var out Block
	for i := range out {
		// Scaled in float32 so an input written as (n+0.5)/12 lands on
		// the exact midpoint between degrees and ties resolve as above.
		semitones := float64(in[i] * 12)
		octave := math.Floor(semitones / 12)
		rem := semitones - octave*12

		best := q.intervals[0]
		bestDist := math.Abs(rem - best)
		for _, iv := range q.intervals[1:] {
			d := math.Abs(rem - iv)
			if d < bestDist {
				bestDist = d
				best = iv
			}
		}
		// The octave above's tonic (rem == 12) is also a candidate,
		// since rem ranges over [0, 12) but the nearest degree to a
		// remainder near 12 may be the next octave's root.
		if d := math.Abs(rem - 12); d < bestDist {
			octave++
			best = 0
		}

		out[i] = float32((octave*12 + best) / 12)
	}
	return out
}
