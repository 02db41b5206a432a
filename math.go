// math.go - per-sample arithmetic combinators

package synth

type binOp struct {
	a, b Operator
	f    func(x, y float32) float32
}

func (o *binOp) Render(ctx *Context) Block {
	ba := o.a.Render(ctx)
	bb := o.b.Render(ctx)
	var out Block
	for i := range out {
		out[i] = o.f(ba[i], bb[i])
	}
	return out
}

func newBinOp(a, b Operator, f func(x, y float32) float32) *Signal {
	return Wrap(&binOp{a: a, b: b, f: f})
}

// Add renders a + b sample-by-sample.
func (s *Signal) Add(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return x + y })
}

// Sub renders a - b sample-by-sample.
func (s *Signal) Sub(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return x - y })
}

// Mul renders a * b sample-by-sample.
func (s *Signal) Mul(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 { return x * y })
}

// Min renders the sample-wise minimum of a and b.
func (s *Signal) Min(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 {
		if x < y {
			return x
		}
		return y
	})
}

// Max renders the sample-wise maximum of a and b.
func (s *Signal) Max(other Operator) *Signal {
	return newBinOp(s, other, func(x, y float32) float32 {
		if x > y {
			return x
		}
		return y
	})
}

// mixOp renders a + b*level, where level is itself an Operator so the
// mix amount can be modulated like any other CV.
type mixOp struct {
	a, b, level Operator
}

func (o *mixOp) Render(ctx *Context) Block {
	ba := o.a.Render(ctx)
	bb := o.b.Render(ctx)
	bl := o.level.Render(ctx)
	var out Block
	for i := range out {
		out[i] = ba[i] + bb[i]*bl[i]
	}
	return out
}

// Mix renders a + b*level, a constant-power-free linear mix used to
// blend a secondary signal into the chain at a given amount. level is
// a CV so the mix amount can itself be modulated; mix(o, x, Const(0))
// always renders as o alone.
func (s *Signal) Mix(other, level Operator) *Signal {
	return Wrap(&mixOp{a: s, b: other, level: level})
}

type unaryOp struct {
	a Operator
	f func(x float32) float32
}

func (o *unaryOp) Render(ctx *Context) Block {
	ba := o.a.Render(ctx)
	var out Block
	for i := range out {
		out[i] = o.f(ba[i])
	}
	return out
}

func newUnaryOp(a Operator, f func(x float32) float32) *Signal {
	return Wrap(&unaryOp{a: a, f: f})
}

// Abs renders the absolute value of every sample.
func (s *Signal) Abs() *Signal {
	return newUnaryOp(s, func(x float32) float32 {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Invert renders the additive inverse of every sample.
func (s *Signal) Invert() *Signal {
	return newUnaryOp(s, func(x float32) float32 { return -x })
}

// Clip hard-limits every sample to [-threshold, threshold], where
// threshold is itself a CV so the clip level can be modulated. The
// threshold is taken as its absolute value every sample, matching the
// source engine's symmetric clamp.
func (s *Signal) Clip(threshold Operator) *Signal {
	return newBinOp(s, threshold, func(x, level float32) float32 {
		if level < 0 {
			level = -level
		}
		if x > level {
			return level
		}
		if x < -level {
			return -level
		}
		return x
	})
}
