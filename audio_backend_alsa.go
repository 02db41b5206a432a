//go:build alsa

// audio_backend_alsa.go - realtime playback via ALSA on Linux

package synth

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// ALSASink streams blocks directly to an ALSA PCM device, for
// deployments that want to avoid oto's extra abstraction layer on
// Linux. It writes float32 samples with snd_pcm_writei, blocking
// (applying natural backpressure) when the device's ring buffer is
// full.
type ALSASink struct {
	handle *C.snd_pcm_t
}

// NewALSASink opens the "default" ALSA PCM device for mono float32
// playback at sampleRate.
func NewALSASink(sampleRate int) (*ALSASink, error) {
	var handle *C.snd_pcm_t
	deviceName := C.CString("default")
	defer C.free(unsafe.Pointer(deviceName))

	if rc := C.snd_pcm_open(&handle, deviceName, C.SND_PCM_STREAM_PLAYBACK, 0); rc < 0 {
		return nil, fmt.Errorf("synth: snd_pcm_open failed: %s", C.GoString(C.snd_strerror(rc)))
	}

	rc := C.snd_pcm_set_params(
		handle,
		C.SND_PCM_FORMAT_FLOAT_LE,
		C.SND_PCM_ACCESS_RW_INTERLEAVED,
		1, // channels
		C.uint(sampleRate),
		1,     // allow resampling
		50000, // latency, microseconds
	)
	if rc < 0 {
		C.snd_pcm_close(handle)
		return nil, fmt.Errorf("synth: snd_pcm_set_params failed: %s", C.GoString(C.snd_strerror(rc)))
	}

	return &ALSASink{handle: handle}, nil
}

// NewRealtimeSink opens the platform's default realtime audio sink.
func NewRealtimeSink(sampleRate int) (Sink, error) {
	return NewALSASink(sampleRate)
}

func (a *ALSASink) Write(b Block) error {
	frames := C.snd_pcm_writei(a.handle, unsafe.Pointer(&b[0]), C.snd_pcm_uframes_t(len(b)))
	if frames < 0 {
		rc := C.snd_pcm_recover(a.handle, C.int(frames), 1)
		if rc < 0 {
			return fmt.Errorf("synth: snd_pcm_writei failed: %s", C.GoString(C.snd_strerror(C.int(frames))))
		}
	}
	return nil
}

// Close drains and closes the ALSA device.
func (a *ALSASink) Close() error {
	C.snd_pcm_drain(a.handle)
	C.snd_pcm_close(a.handle)
	return nil
}
