package synth

import "testing"

func TestDelayIsSilentDuringWarmup(t *testing.T) {
	d, err := NewDelay(Const(1), 1.0, 1000) // capacity = 1000 samples
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}
	ctx := &Context{SampleRate: 1000}
	b := d.Render(ctx)
	for i, s := range b {
		if s != 0 {
			t.Fatalf("sample %d during warm-up = %v, want 0", i, s)
		}
	}
}

func TestDelayEventuallyEchoesInput(t *testing.T) {
	// sampleRate=16 and delaySeconds=1 gives a 16-sample capacity,
	// smaller than BlockSize so the echo lands within the same block.
	d, err := NewDelay(&onePulseThenZero{}, 1.0, 16)
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}
	ctx := &Context{SampleRate: 16}
	b := d.Render(ctx)
	for i := 0; i < 16; i++ {
		if b[i] != 0 {
			t.Fatalf("sample %d before the delay fills = %v, want 0", i, b[i])
		}
	}
	if b[16] != 1 {
		t.Fatalf("sample 16 = %v, want 1 (echo of the sample-0 pulse, one buffer length later)", b[16])
	}
}

func TestDelayOfZeroSecondsIsIdentity(t *testing.T) {
	d, err := NewDelay(Const(0.75), 0, 44100)
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}
	ctx := &Context{SampleRate: 44100}
	b := d.Render(ctx)
	for i, s := range b {
		if s != 0.75 {
			t.Fatalf("sample %d = %v, want 0.75 (zero-length delay is a pass-through)", i, s)
		}
	}
}

type onePulseThenZero struct {
	fired bool
}

func (o *onePulseThenZero) Render(ctx *Context) Block {
	var out Block
	if !o.fired {
		out[0] = 1
		o.fired = true
	}
	return out
}
