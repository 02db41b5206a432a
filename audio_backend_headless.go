//go:build headless

// audio_backend_headless.go - no device backend for headless builds

package synth

// NoDeviceSink is the realtime sink used when a build has no audio
// device to talk to (CI, headless servers). It behaves exactly like
// HeadlessSink; it exists as a separate type so cmd/synthplay can
// select a device backend by build tag without a nil check at the
// call site.
type NoDeviceSink struct {
	*HeadlessSink
}

// NewNoDeviceSink builds a sink that discards every block.
func NewNoDeviceSink(sampleRate int) (*NoDeviceSink, error) {
	return &NoDeviceSink{HeadlessSink: NewHeadlessSink()}, nil
}

// NewRealtimeSink opens the platform's default realtime audio sink.
func NewRealtimeSink(sampleRate int) (Sink, error) {
	return NewNoDeviceSink(sampleRate)
}
