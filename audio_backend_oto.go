//go:build !alsa && !headless

// audio_backend_oto.go - realtime playback via the oto cross-platform backend

package synth

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// OtoSink streams blocks to the default system audio device through
// oto. Blocks are copied into a ring buffer that oto's player callback
// drains; Write busy-waits when the ring buffer is full rather than
// dropping samples, matching the backpressure behaviour the rest of
// this package's sinks assume.
type OtoSink struct {
	ctx     *oto.Context
	player  *oto.Player
	ring    *sampleRing
	closing atomic.Bool
	mu      sync.Mutex
}

// NewOtoSink opens the default audio device at sampleRate, mono,
// 32-bit float samples.
func NewOtoSink(sampleRate int) (*OtoSink, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	ring := newSampleRing(BlockSize * 8)
	player := ctx.NewPlayer(ring)
	player.Play()

	return &OtoSink{ctx: ctx, player: player, ring: ring}, nil
}

// NewRealtimeSink opens the platform's default realtime audio sink.
// Exactly one implementation of this function is compiled in,
// selected by build tag (oto by default, ALSA under the alsa tag,
// a no-op stub under the headless tag).
func NewRealtimeSink(sampleRate int) (Sink, error) {
	return NewOtoSink(sampleRate)
}

func (s *OtoSink) Write(b Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring.PushBlock(b)
	return nil
}

// Close stops playback and releases the underlying player.
func (s *OtoSink) Close() error {
	if s.closing.Swap(true) {
		return nil
	}
	return s.player.Close()
}

// sampleRing is a busy-spin single-producer single-consumer ring
// buffer of float32 samples, read as raw little-endian bytes by
// oto.Player's io.Reader contract.
type sampleRing struct {
	mu   sync.Mutex
	buf  []float32
	head int
	tail int
	size int
}

func newSampleRing(capacity int) *sampleRing {
	return &sampleRing{buf: make([]float32, capacity)}
}

// PushBlock appends every sample in b, spinning while the ring is
// full until the reader has drained room for the next sample.
func (r *sampleRing) PushBlock(b Block) {
	for _, s := range b {
		r.mu.Lock()
		for r.size == len(r.buf) {
			r.mu.Unlock()
			runtime.Gosched()
			r.mu.Lock()
		}
		r.buf[r.tail] = s
		r.tail = (r.tail + 1) % len(r.buf)
		r.size++
		r.mu.Unlock()
	}
}

func (r *sampleRing) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for n+4 <= len(p) && r.size > 0 {
		s := r.buf[r.head]
		r.head = (r.head + 1) % len(r.buf)
		r.size--
		putFloat32LE(p[n:n+4], s)
		n += 4
	}
	for n+4 <= len(p) {
		putFloat32LE(p[n:n+4], 0)
		n += 4
	}
	return n, nil
}

func putFloat32LE(p []byte, f float32) {
	bits := math.Float32bits(f)
	p[0] = byte(bits)
	p[1] = byte(bits >> 8)
	p[2] = byte(bits >> 16)
	p[3] = byte(bits >> 24)
}
