package synth

import "testing"

type countingOp struct {
	renders int
}

func (c *countingOp) Render(ctx *Context) Block {
	c.renders++
	var out Block
	for i := range out {
		out[i] = float32(c.renders)
	}
	return out
}

func TestTapRendersInnerOnceRegardlessOfConsumers(t *testing.T) {
	inner := &countingOp{}
	tap := NewTap(inner)

	out1 := tap.Output()
	out2 := tap.Output()
	out3 := tap.Output()

	ctx := &Context{SampleRate: 44100}
	b1 := out1.Render(ctx)
	b2 := out2.Render(ctx)
	b3 := out3.Render(ctx)

	if inner.renders != 1 {
		t.Fatalf("inner operator rendered %d times for one block across 3 consumers, want 1", inner.renders)
	}
	if b1 != b2 || b2 != b3 {
		t.Fatalf("all tap outputs should see the same cached block")
	}
}

func TestTapRerendersOnNextBlock(t *testing.T) {
	inner := &countingOp{}
	tap := NewTap(inner)
	out := tap.Output()

	ctx := &Context{SampleRate: 44100}
	out.Render(ctx)
	ctx.Advance()
	out.Render(ctx)

	if inner.renders != 2 {
		t.Fatalf("inner operator should render once per distinct block, got %d renders", inner.renders)
	}
}

func TestTapOutputsCount(t *testing.T) {
	tap := NewTap(Const(1))
	tap.Output()
	tap.Output()
	if tap.Outputs() != 2 {
		t.Fatalf("Outputs() = %d, want 2", tap.Outputs())
	}
}
