// operator.go - the Operator protocol and the fluent Signal wrapper

package synth

// Operator is the single contract every node in a signal graph
// implements: given the current render context, produce the next
// block of samples. Operators are free to hold internal state that
// Render mutates, and time-dependent ones assume one Render per block.
// The driver renders the root once per block; an operator passed to
// several consumers is rendered once per consumer unless it is shared
// through a Tap, and a sequential switch may render a branch more than
// once per block.
type Operator interface {
	Render(ctx *Context) Block
}

// Signal wraps an Operator and supplies the fluent combinator methods
// used to build graphs (Add, Mul, Clip, Tap, and so on). Go has no
// operator overloading, so chaining through a concrete wrapper type is
// the idiomatic replacement for the source language's extension-trait
// approach.
type Signal struct {
	Operator
}

// Wrap lifts a bare Operator into a Signal so the fluent combinator
// methods become available on it.
func Wrap(op Operator) *Signal {
	if s, ok := op.(*Signal); ok {
		return s
	}
	return &Signal{op}
}

// constOp renders the same value on every sample of every block.
type constOp struct {
	value float32
}

func (c *constOp) Render(ctx *Context) Block {
	var b Block
	for i := range b {
		b[i] = c.value
	}
	return b
}

// Const lifts a bare float into an Operator. Every parameter in this
// package that accepts CV modulation also accepts a Const so a patch
// can mix fixed values and modulated ones freely.
func Const(value float32) *Signal {
	return Wrap(&constOp{value: value})
}

// Silence is a Const(0), named for readability at call sites.
func Silence() *Signal {
	return Const(0)
}
