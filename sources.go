// sources.go - stateless-parameter signal producers: oscillators,
// noise, clocks and gates

package synth

import (
	"math"
	"math/rand"
)

// waveformFunc samples a periodic waveform at a given phase in [0, 1).
type waveformFunc func(phase float64) float32

func sinePhase(phase float64) float32 {
	return float32(math.Sin(2 * math.Pi * phase))
}

func sawPhase(phase float64) float32 {
	return float32(2*phase - 1)
}

func trianglePhase(phase float64) float32 {
	switch {
	case phase < 0.25:
		return float32(4 * phase)
	case phase < 0.75:
		return float32(2 - 4*phase)
	default:
		return float32(4*phase - 4)
	}
}

func squarePhase(phase float64) float32 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

// VoltageOscillator is a phase-accumulating oscillator whose frequency
// can be modulated by a 1-volt-per-octave control signal:
// frequency_out = base * 2^cv. Phase wraps on [0, 1) every cycle.
type VoltageOscillator struct {
	waveform waveformFunc
	base     float64
	cv       Operator
	phase    float64
}

func newVoltageOscillator(waveform waveformFunc, baseFrequency float64) *VoltageOscillator {
	return &VoltageOscillator{
		waveform: waveform,
		base:     baseFrequency,
		cv:       Const(0),
	}
}

// VOct attaches a 1V/oct control signal to the oscillator's frequency.
// Returns the oscillator itself (as an Operator wrapped in Signal) so
// it can continue to be chained.
func (o *VoltageOscillator) VOct(cv Operator) *Signal {
	o.cv = cv
	return Wrap(o)
}

// ShiftPhase offsets the oscillator's internal phase accumulator by a
// fixed amount at construction time, useful for building detuned
// unison voices from several oscillators sharing one frequency input.
func (o *VoltageOscillator) ShiftPhase(offset float64) *VoltageOscillator {
	o.phase = math.Mod(offset, 1.0)
	if o.phase < 0 {
		o.phase += 1.0
	}
	return o
}

func (o *VoltageOscillator) Render(ctx *Context) Block {
	cvBlock := o.cv.Render(ctx)
	var out Block
	for i := range out {
		freq := o.base * math.Pow(2, float64(cvBlock[i]))
		increment := freq / ctx.SampleRate
		out[i] = o.waveform(o.phase)
		o.phase += increment
		o.phase -= math.Floor(o.phase)
	}
	return out
}

// Sine constructs a sine-wave voltage oscillator at the given base
// frequency in Hz.
func Sine(baseFrequency float64) *VoltageOscillator {
	return newVoltageOscillator(sinePhase, baseFrequency)
}

// Saw constructs a band-unlimited sawtooth voltage oscillator.
func Saw(baseFrequency float64) *VoltageOscillator {
	return newVoltageOscillator(sawPhase, baseFrequency)
}

// Triangle constructs a band-unlimited triangle voltage oscillator.
func Triangle(baseFrequency float64) *VoltageOscillator {
	return newVoltageOscillator(trianglePhase, baseFrequency)
}

// Square constructs a band-unlimited 50%-duty square voltage
// oscillator.
func Square(baseFrequency float64) *VoltageOscillator {
	return newVoltageOscillator(squarePhase, baseFrequency)
}

// whiteNoiseOp renders uniform white noise in [-1, 1) from a
// dedicated random source, so two noise operators never share state
// and a seeded one is fully reproducible.
type whiteNoiseOp struct {
	rng *rand.Rand
}

func (w *whiteNoiseOp) Render(ctx *Context) Block {
	var out Block
	for i := range out {
		out[i] = w.rng.Float32()*2 - 1
	}
	return out
}

// WhiteNoise constructs a uniform white-noise source seeded
// deterministically, so the same seed always renders the same sample
// sequence at a given sample rate.
func WhiteNoise(seed int64) *Signal {
	return Wrap(&whiteNoiseOp{rng: rand.New(rand.NewSource(seed))})
}

// clockOp fires a single-sample pulse every interval samples. The
// interval is computed once at construction as
// ceil(intervalSeconds * sampleRate); the counter is checked against
// the interval before being advanced, so the very first pulse lands
// exactly on sample index `interval` (0-indexed) rather than one
// sample earlier.
type clockOp struct {
	intervalSeconds float64
	interval        uint64
	count           uint64
}

func (c *clockOp) ensureInterval(sampleRate float64) {
	if c.interval != 0 {
		return
	}
	c.interval = uint64(math.Ceil(c.intervalSeconds * sampleRate))
	if c.interval == 0 {
		c.interval = 1
	}
}

func (c *clockOp) Render(ctx *Context) Block {
	c.ensureInterval(ctx.SampleRate)
	var out Block
	for i := range out {
		fire := c.count == c.interval
		if fire {
			c.count = 0
		}
		c.count++
		out[i] = boolToSample(fire)
	}
	return out
}

// Clock constructs a periodic single-sample trigger pulse that fires
// every intervalSeconds, with the first pulse landing exactly
// ceil(intervalSeconds * sampleRate) samples after construction.
func Clock(intervalSeconds float64) *Signal {
	return Wrap(&clockOp{intervalSeconds: intervalSeconds})
}

// gateOp fires like clockOp but sustains a high level for
// width[i]*intervalSeconds seconds at the start of every period,
// instead of a single-sample pulse. completed is incremented every
// sample unconditionally, including the sample it was just reset on,
// so the sustained-high comparison runs against completed in [1,
// interval] rather than [0, interval).
type gateOp struct {
	intervalSeconds float64
	interval        uint64
	completed       uint64
	width           Operator
}

func (g *gateOp) ensureInterval(sampleRate float64) {
	if g.interval != 0 {
		return
	}
	g.interval = uint64(math.Ceil(g.intervalSeconds * sampleRate))
	if g.interval == 0 {
		g.interval = 1
	}
}

func (g *gateOp) Render(ctx *Context) Block {
	g.ensureInterval(ctx.SampleRate)
	widthCV := g.width.Render(ctx)
	var out Block
	for i := range out {
		widthSeconds := float64(widthCV[i]) * g.intervalSeconds
		width := uint64(math.Ceil(widthSeconds * ctx.SampleRate))

		switch {
		case g.completed == g.interval:
			g.completed = 0
			out[i] = 1
		case g.completed < width:
			out[i] = 1
		default:
			out[i] = 0
		}
		g.completed++
	}
	return out
}

// Gate constructs a periodic gate that rises at the start of every
// intervalSeconds period and holds high for 50% of the period (a
// default width CV of Const(0.5)), matching the source engine's
// Gate::bpm convenience constructor.
func Gate(intervalSeconds float64) *Signal {
	return Wrap(&gateOp{intervalSeconds: intervalSeconds, width: Const(0.5)})
}

// GateWidth constructs a Gate with an explicit width CV (0..1,
// fraction of the period held high) instead of the default 50% duty
// cycle, matching the source engine's Gate::width builder.
func GateWidth(intervalSeconds float64, width Operator) *Signal {
	return Wrap(&gateOp{intervalSeconds: intervalSeconds, width: width})
}
