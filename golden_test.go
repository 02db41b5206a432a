package synth

import "testing"

// These scenarios mirror the scenario table in the specification this
// engine was built from (S1-S6), named and shaped after the style of
// the teacher engine's own golden-output regression tests: a
// deterministic construction rendered against a fixed sample rate,
// checked against exact expected sample values rather than tolerances
// wherever the signal path is itself exact.

const goldenSampleRate = 48000.0

// S1: Const silence renders one block of 64 zeros.
func TestGoldenSilenceIsAllZero(t *testing.T) {
	ctx := &Context{SampleRate: goldenSampleRate}
	b := Silence().Render(ctx)
	for i, s := range b {
		if s != 0 {
			t.Fatalf("Silence()[%d] = %v, want 0", i, s)
		}
	}
}

// S2: a sine oscillator at 0 Hz never advances phase, so its first
// block is 64 samples of 0.
func TestGoldenSineAtZeroHertzIsSilentFirstBlock(t *testing.T) {
	ctx := &Context{SampleRate: goldenSampleRate}
	b := Sine(0).Render(ctx)
	for i, s := range b {
		if s != 0 {
			t.Fatalf("Sine(0)[%d] = %v, want 0", i, s)
		}
	}
}

// S3: a clock at 60 BPM (1 pulse/second) at 48kHz fires every 48000
// samples. The first 750 blocks (48000 samples) contain no pulse;
// block 750 (sample 48000, the first sample of that block) carries
// the single 1.0.
func TestGoldenClockAt60BPMFiresOnSchedule(t *testing.T) {
	ctx := &Context{SampleRate: goldenSampleRate}
	clock := Clock(1.0) // 60 BPM == one beat per second

	for block := 0; block < 750; block++ {
		b := clock.Render(ctx)
		for i, s := range b {
			if s != 0 {
				t.Fatalf("unexpected pulse at block %d sample %d before the scheduled tick", block, i)
			}
		}
		ctx.Advance()
	}

	b := clock.Render(ctx)
	if b[0] != 1.0 {
		t.Fatalf("block 750 sample 0 = %v, want 1.0 (the scheduled tick)", b[0])
	}
	for i := 1; i < BlockSize; i++ {
		if b[i] != 0 {
			t.Fatalf("block 750 sample %d = %v, want 0", i, b[i])
		}
	}
}

// S4: a sequential switch advanced by a 60 BPM clock cycles through
// three constant branches, holding each for one full second (48000
// samples) before wrapping back to the first.
func TestGoldenSequentialSwitchCyclesOnClock(t *testing.T) {
	ctx := &Context{SampleRate: goldenSampleRate}
	clock := Clock(1.0)
	sw, err := clock.SequentialSwitch(Const(1), Const(2), Const(3))
	if err != nil {
		t.Fatalf("SequentialSwitch: %v", err)
	}

	want := func(sampleIndex int) float32 {
		switch (sampleIndex / 48000) % 3 {
		case 0:
			return 1
		case 1:
			return 2
		default:
			return 3
		}
	}

	sample := 0
	for block := 0; block < 6*750; block++ {
		b := sw.Render(ctx)
		for _, s := range b {
			if s != want(sample) {
				t.Fatalf("sample %d = %v, want %v", sample, s, want(sample))
			}
			sample++
		}
		ctx.Advance()
	}
}

// S5: Clip is symmetric around zero.
func TestGoldenClipIsSymmetric(t *testing.T) {
	ctx := &Context{SampleRate: goldenSampleRate}

	pos := Const(2.0).Clip(Const(0.5)).Render(ctx)
	for i, s := range pos {
		if s != 0.5 {
			t.Fatalf("Const(2.0).Clip(0.5)[%d] = %v, want 0.5", i, s)
		}
	}

	neg := Const(-2.0).Clip(Const(0.5)).Render(ctx)
	for i, s := range neg {
		if s != -0.5 {
			t.Fatalf("Const(-2.0).Clip(0.5)[%d] = %v, want -0.5", i, s)
		}
	}
}

// S6: an AD envelope triggered by a 60 BPM clock, with 1ms attack and
// 1ms decay, stays at 0 until the clock's first tick at sample 48000
// (see S3), then after each tick ramps 0->1 over 48 samples (the
// trigger sample itself reads 0, since the ramp has not yet elapsed
// any time), reads 1.0 at the peak, ramps 1->0 over the next 48
// samples starting from 1.0, then holds at 0 until the next tick.
func TestGoldenADEnvelopeFollowsClock(t *testing.T) {
	ctx := &Context{SampleRate: goldenSampleRate}
	clock := Clock(1.0)
	env := clock.AD(Const(0.001), Const(0.001))

	const tolerance = 1e-4
	sample := 0
	for block := 0; block < 2*750; block++ {
		b := env.Render(ctx)
		for _, s := range b {
			phase := sample % 48000
			var want float32
			switch {
			case sample < 48000:
				want = 0
			case phase < 48:
				want = float32(phase) / 48
			case phase == 48:
				want = 1
			case phase < 97:
				want = 1 - float32(phase-49)/48
			default:
				want = 0
			}
			if diff := s - want; diff > tolerance || diff < -tolerance {
				t.Fatalf("sample %d (phase %d) = %v, want %v", sample, phase, s, want)
			}
			sample++
		}
		ctx.Advance()
	}
}
