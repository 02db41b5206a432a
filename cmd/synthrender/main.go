// Command synthrender renders a single oscillator voice offline to a
// WAV file, for quick auditioning without opening an audio device.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/blockwave/synth"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		out        = flag.StringP("out", "o", "render.wav", "output WAV file path")
		sampleRate = flag.IntP("samplerate", "r", 44100, "output sample rate in Hz")
		freq       = flag.Float64P("freq", "f", 220, "voice base frequency in Hz")
		duration   = flag.Float64P("duration", "d", 2.0, "render duration in seconds")
		waveform   = flag.StringP("wave", "w", "sine", "waveform: sine, saw, triangle, square")
	)
	flag.Parse()

	var vco *synth.VoltageOscillator
	switch *waveform {
	case "sine":
		vco = synth.Sine(*freq)
	case "saw":
		vco = synth.Saw(*freq)
	case "triangle":
		vco = synth.Triangle(*freq)
	case "square":
		vco = synth.Square(*freq)
	default:
		fmt.Fprintf(os.Stderr, "synthrender: unknown waveform %q\n", *waveform)
		os.Exit(2)
	}

	sink, err := synth.NewWavSink(*out, *sampleRate)
	if err != nil {
		synth.Log().Error("failed to open output file", "err", err)
		os.Exit(1)
	}

	driver, err := synth.NewDriver(synth.Wrap(vco), sink, float64(*sampleRate))
	if err != nil {
		synth.Log().Error("failed to start driver", "err", err)
		os.Exit(1)
	}

	totalBlocks := int64(*duration * float64(*sampleRate) / float64(synth.BlockSize))
	if err := driver.Run(context.Background(), totalBlocks); err != nil {
		synth.Log().Error("render failed", "err", err)
		os.Exit(1)
	}
	if err := sink.Close(); err != nil {
		synth.Log().Error("failed to close output file", "err", err)
		os.Exit(1)
	}
	synth.Log().Info("rendered", "path", *out, "blocks", totalBlocks)
}
