// Package patch hosts a small Lua DSL for describing blocksynth
// operator graphs without recompiling Go code. Every builder function
// registered with the Lua state except tap returns a userdata wrapping
// a synth.Operator; combinators take those userdata values as arguments
// the same way the Go fluent API takes Operators. tap returns a
// userdata wrapping a *synth.Tap, whose operator handles come from
// tap_output.
package patch

import (
	"fmt"

	"github.com/blockwave/synth"
	lua "github.com/yuin/gopher-lua"
)

const operatorUserDataMeta = "blocksynth.operator"

// Patch is one loaded Lua script together with the sample rate it was
// compiled against and the root operator it designated as its output.
type Patch struct {
	L          *lua.LState
	SampleRate float64
	Root       synth.Operator
}

// Load reads and runs the Lua script at path, returning the patch it
// built. The script must call output(op) to designate its root
// operator; if it calls output more than once, the last call wins.
func Load(path string, sampleRate float64) (*Patch, error) {
	p := &Patch{SampleRate: sampleRate}
	p.L = lua.NewState()
	p.registerBuiltins()
	if err := p.L.DoFile(path); err != nil {
		p.L.Close()
		return nil, fmt.Errorf("patch: %w", err)
	}
	if p.Root == nil {
		p.L.Close()
		return nil, fmt.Errorf("patch: script never called output(op)")
	}
	return p, nil
}

// Close releases the Lua interpreter.
func (p *Patch) Close() {
	p.L.Close()
}

func pushOperator(L *lua.LState, op synth.Operator) {
	ud := L.NewUserData()
	ud.Value = op
	L.SetMetatable(ud, L.GetTypeMetatable(operatorUserDataMeta))
	L.Push(ud)
}

func checkOperator(L *lua.LState, n int) synth.Operator {
	ud := L.CheckUserData(n)
	op, ok := ud.Value.(synth.Operator)
	if !ok {
		L.ArgError(n, "expected operator")
		return nil
	}
	return op
}

func (p *Patch) registerBuiltins() {
	L := p.L
	mt := L.NewTypeMetatable(operatorUserDataMeta)
	L.SetField(mt, "__index", mt)

	reg := func(name string, fn lua.LGFunction) {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	reg("const", func(L *lua.LState) int {
		v := float32(L.CheckNumber(1))
		pushOperator(L, synth.Const(v))
		return 1
	})
	reg("silence", func(L *lua.LState) int {
		pushOperator(L, synth.Silence())
		return 1
	})
	// The oscillator builtins push the raw *synth.VoltageOscillator,
	// not a *synth.Signal wrapper, so voct() below can still reach the
	// concrete type its CV-modulated frequency method lives on.
	reg("sine", func(L *lua.LState) int {
		pushOperator(L, synth.Sine(float64(L.CheckNumber(1))))
		return 1
	})
	reg("saw", func(L *lua.LState) int {
		pushOperator(L, synth.Saw(float64(L.CheckNumber(1))))
		return 1
	})
	reg("triangle", func(L *lua.LState) int {
		pushOperator(L, synth.Triangle(float64(L.CheckNumber(1))))
		return 1
	})
	reg("square", func(L *lua.LState) int {
		pushOperator(L, synth.Square(float64(L.CheckNumber(1))))
		return 1
	})
	reg("voct", func(L *lua.LState) int {
		ud := L.CheckUserData(1)
		vco, ok := ud.Value.(*synth.VoltageOscillator)
		if !ok {
			L.ArgError(1, "expected oscillator built by sine/saw/triangle/square")
			return 0
		}
		cv := checkOperator(L, 2)
		pushOperator(L, vco.VOct(cv))
		return 1
	})
	reg("noise", func(L *lua.LState) int {
		seed := int64(L.CheckNumber(1))
		pushOperator(L, synth.WhiteNoise(seed))
		return 1
	})
	reg("clock", func(L *lua.LState) int {
		pushOperator(L, synth.Clock(float64(L.CheckNumber(1))))
		return 1
	})
	reg("gate", func(L *lua.LState) int {
		pushOperator(L, synth.Gate(float64(L.CheckNumber(1))))
		return 1
	})

	reg("add", func(L *lua.LState) int {
		a, b := checkOperator(L, 1), checkOperator(L, 2)
		pushOperator(L, synth.Wrap(a).Add(b))
		return 1
	})
	reg("sub", func(L *lua.LState) int {
		a, b := checkOperator(L, 1), checkOperator(L, 2)
		pushOperator(L, synth.Wrap(a).Sub(b))
		return 1
	})
	reg("mul", func(L *lua.LState) int {
		a, b := checkOperator(L, 1), checkOperator(L, 2)
		pushOperator(L, synth.Wrap(a).Mul(b))
		return 1
	})
	reg("mix", func(L *lua.LState) int {
		a, b, level := checkOperator(L, 1), checkOperator(L, 2), checkOperator(L, 3)
		pushOperator(L, synth.Wrap(a).Mix(b, level))
		return 1
	})
	reg("clip", func(L *lua.LState) int {
		a, level := checkOperator(L, 1), checkOperator(L, 2)
		pushOperator(L, synth.Wrap(a).Clip(level))
		return 1
	})
	reg("abs", func(L *lua.LState) int {
		pushOperator(L, synth.Wrap(checkOperator(L, 1)).Abs())
		return 1
	})

	p.registerFilterBuiltins(reg)
	p.registerGraphBuiltins(reg)

	reg("output", func(L *lua.LState) int {
		p.Root = checkOperator(L, 1)
		return 0
	})
}

func (p *Patch) registerFilterBuiltins(reg func(string, lua.LGFunction)) {
	reg("lowpass", func(L *lua.LState) int {
		in := checkOperator(L, 1)
		cutoff := float64(L.CheckNumber(2))
		op, err := synth.NewLowPass(in, cutoff, p.SampleRate)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		pushOperator(L, op)
		return 1
	})
	reg("highpass", func(L *lua.LState) int {
		in := checkOperator(L, 1)
		cutoff := float64(L.CheckNumber(2))
		op, err := synth.NewHighPass(in, cutoff, p.SampleRate)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		pushOperator(L, op)
		return 1
	})
	reg("delay", func(L *lua.LState) int {
		in := checkOperator(L, 1)
		seconds := float64(L.CheckNumber(2))
		op, err := synth.NewDelay(in, seconds, p.SampleRate)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		pushOperator(L, op)
		return 1
	})
}

func (p *Patch) registerGraphBuiltins(reg func(string, lua.LGFunction)) {
	reg("trigger", func(L *lua.LState) int {
		pushOperator(L, synth.NewTrigger(checkOperator(L, 1)))
		return 1
	})
	reg("ad", func(L *lua.LState) int {
		trig := checkOperator(L, 1)
		atk := checkOperator(L, 2)
		dec := checkOperator(L, 3)
		pushOperator(L, synth.NewAD(trig, atk, dec))
		return 1
	})
	reg("quantize", func(L *lua.LState) int {
		in := checkOperator(L, 1)
		mode, err := parseScaleMode(L.CheckString(2))
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		op, err := synth.NewQuantizer(in, mode)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		pushOperator(L, op)
		return 1
	})
	reg("switch", func(L *lua.LState) int {
		top := L.GetTop()
		advance := checkOperator(L, 1)
		branches := make([]synth.Operator, 0, top-1)
		for i := 2; i <= top; i++ {
			branches = append(branches, checkOperator(L, i))
		}
		op, err := synth.NewSequentialSwitch(advance, branches...)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		pushOperator(L, op)
		return 1
	})
	reg("tap", func(L *lua.LState) int {
		inner := checkOperator(L, 1)
		t := synth.NewTap(inner)
		ud := L.NewUserData()
		ud.Value = t
		L.Push(ud)
		return 1
	})
	reg("tap_output", func(L *lua.LState) int {
		ud := L.CheckUserData(1)
		t, ok := ud.Value.(*synth.Tap)
		if !ok {
			L.ArgError(1, "expected tap built by tap()")
			return 0
		}
		pushOperator(L, t.Output())
		return 1
	})
}

func parseScaleMode(name string) (synth.ScaleMode, error) {
	switch name {
	case "all":
		return synth.ScaleAll, nil
	case "major":
		return synth.ScaleMajor, nil
	case "minor":
		return synth.ScaleMinor, nil
	default:
		return 0, fmt.Errorf("patch: unknown scale mode %q", name)
	}
}
