package synth

import "testing"

func TestADEnvelopeRampsUpThenDown(t *testing.T) {
	trig := Const(1) // held high: only the first rising edge fires, at sample 0
	env := NewAD(trig, Const(0.01), Const(0.01))
	ctx := &Context{SampleRate: 1000} // attack/decay of 10 samples each

	var samples []float32
	for block := 0; block < 2; block++ {
		b := env.Render(ctx)
		samples = append(samples, b[:]...)
		ctx.Advance()
	}

	if samples[0] != 0 {
		t.Fatalf("first sample of attack should start at 0, got %v", samples[0])
	}

	peak := float32(0)
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}
	if peak < 0.95 {
		t.Fatalf("envelope should reach ~1 at peak, got %v", peak)
	}

	last := samples[len(samples)-1]
	if last > 0.1 {
		t.Fatalf("envelope should have decayed back toward 0, got %v", last)
	}
}

func TestADEnvelopeHardRestartsOnRetrigger(t *testing.T) {
	// A trigger pulse every 5 samples retriggers attack before the
	// attack can complete, matching the hard-restart semantics.
	triggerEvery := &pulseEveryN{n: 5}
	env := NewAD(triggerEvery, Const(0.1), Const(0.1))
	ctx := &Context{SampleRate: 1000}

	b := env.Render(ctx)
	for i := 1; i < len(b); i++ {
		if b[i] > 1.0001 {
			t.Fatalf("sample %d = %v should never exceed 1", i, b[i])
		}
	}
	// Pulses land on samples 4, 9, 14, ...; each one after the first
	// restarts a rising attack from 0.
	for i := 9; i < len(b); i += 5 {
		if b[i] != 0 || b[i-1] <= 0 {
			t.Fatalf("retrigger at sample %d: got %v after %v, want a restart to 0", i, b[i], b[i-1])
		}
	}
}

// pulseEveryN is a test helper operator firing a 1.0 every n samples,
// 0.0 otherwise.
type pulseEveryN struct {
	n       int
	counter int
}

func (p *pulseEveryN) Render(ctx *Context) Block {
	var out Block
	for i := range out {
		p.counter++
		if p.counter >= p.n {
			out[i] = 1
			p.counter = 0
		} else {
			out[i] = 0
		}
	}
	return out
}
