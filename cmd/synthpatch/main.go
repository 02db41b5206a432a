// Command synthpatch loads a Lua patch script and runs it against
// either a WAV file or the default realtime audio device.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blockwave/synth"
	"github.com/blockwave/synth/patch"
)

func main() {
	sampleRate := flag.Int("samplerate", 44100, "sample rate in Hz")
	out := flag.String("out", "", "render to this WAV file instead of the default audio device")
	duration := flag.Float64("duration", 4.0, "render duration in seconds (WAV mode only)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: synthpatch [flags] <script.lua>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	p, err := patch.Load(flag.Arg(0), float64(*sampleRate))
	if err != nil {
		synth.Log().Error("failed to load patch", "err", err)
		os.Exit(1)
	}
	defer p.Close()

	var sink synth.Sink
	if *out != "" {
		wavSink, err := synth.NewWavSink(*out, *sampleRate)
		if err != nil {
			synth.Log().Error("failed to open output file", "err", err)
			os.Exit(1)
		}
		defer wavSink.Close()
		sink = wavSink
	} else {
		sink, err = synth.NewRealtimeSink(*sampleRate)
		if err != nil {
			synth.Log().Error("failed to open audio device", "err", err)
			os.Exit(1)
		}
	}

	driver, err := synth.NewDriver(p.Root, sink, float64(*sampleRate))
	if err != nil {
		synth.Log().Error("failed to start driver", "err", err)
		os.Exit(1)
	}

	blocks := int64(0)
	if *out != "" {
		blocks = int64(*duration * float64(*sampleRate) / float64(synth.BlockSize))
	}
	if err := driver.Run(context.Background(), blocks); err != nil {
		synth.Log().Error("patch run failed", "err", err)
		os.Exit(1)
	}
}
