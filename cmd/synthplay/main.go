// Command synthplay plays a small built-in demo patch through the
// platform's default realtime audio device.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/blockwave/synth"
)

func main() {
	sampleRate := flag.Int("samplerate", 44100, "output sample rate in Hz")
	freq := flag.Float64("freq", 220, "base frequency of the demo voice, in Hz")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: synthplay [flags]\n\nPlays a demo voice through the default audio device.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	lfo := synth.Sine(0.2)
	vibrato := synth.Wrap(lfo).Mul(synth.Const(0.02))
	voice := synth.Sine(*freq).VOct(vibrato)

	sink, err := synth.NewRealtimeSink(*sampleRate)
	if err != nil {
		synth.Log().Error("failed to open audio device", "err", err)
		os.Exit(1)
	}

	driver, err := synth.NewDriver(voice, sink, float64(*sampleRate))
	if err != nil {
		synth.Log().Error("failed to start driver", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	synth.Log().Info("playing demo voice", "freq", *freq, "samplerate", *sampleRate)
	if err := driver.Run(ctx, 0); err != nil && err != context.Canceled {
		synth.Log().Error("playback stopped", "err", err)
		os.Exit(1)
	}
}
