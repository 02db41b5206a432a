// comparators.go - sample-wise relational operators

package synth

func boolToSample(b bool) float32 {
	if b {
		return 1.0
	}
	return 0.0
}

// Gt renders 1.0 where a > b, 0.0 otherwise.
func (s *Signal) Gt(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return boolToSample(x > y) })
}

// Ge renders 1.0 where a >= b, 0.0 otherwise.
func (s *Signal) Ge(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return boolToSample(x >= y) })
}

// Lt renders 1.0 where a < b, 0.0 otherwise.
func (s *Signal) Lt(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return boolToSample(x < y) })
}

// Le renders 1.0 where a <= b, 0.0 otherwise.
//
// The pre-distillation comparator this was ported from implemented
// "less than or equal to" as a >= b, a latent bug never hit in
// practice because every call site happened to pass already-sorted
// operands. This implementation uses the semantics the name promises.
func (s *Signal) Le(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return boolToSample(x <= y) })
}

// Eq renders 1.0 where a == b, 0.0 otherwise.
func (s *Signal) Eq(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return boolToSample(x == y) })
}

// Ne renders 1.0 where a != b, 0.0 otherwise.
func (s *Signal) Ne(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return boolToSample(x != y) })
}
