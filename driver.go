// driver.go - the render loop tying a graph to a sink

package synth

import "context"

// Driver repeatedly pulls blocks from a root operator and hands them
// to a sink, advancing the render context only after the sink has
// accepted the block. This is the only place SampleCount advances;
// every operator's Render call during a tick sees the same context.
type Driver struct {
	root Operator
	sink Sink
	ctx  Context
}

// NewDriver builds a driver over root, rendering at sampleRate and
// writing every block to sink.
func NewDriver(root Operator, sink Sink, sampleRate float64) (*Driver, error) {
	if sampleRate <= 0 {
		return nil, newInvalidParameterError("Driver", "sampleRate", "must be positive")
	}
	return &Driver{
		root: root,
		sink: sink,
		ctx:  Context{SampleRate: sampleRate},
	}, nil
}

// Tick renders and writes exactly one block, then advances the
// context.
func (d *Driver) Tick() error {
	block := d.root.Render(&d.ctx)
	if err := d.sink.Write(block); err != nil {
		return err
	}
	d.ctx.Advance()
	return nil
}

// Run ticks the driver until ctx is cancelled or blocks is reached
// (a non-positive blocks means run until cancellation).
func (d *Driver) Run(ctx context.Context, blocks int64) error {
	var rendered int64
	for blocks <= 0 || rendered < blocks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := d.Tick(); err != nil {
			Log().Error("driver tick failed", "err", err, "block", rendered)
			return err
		}
		rendered++
	}
	return nil
}

// SampleCount reports how many samples the driver has rendered so
// far.
func (d *Driver) SampleCount() uint64 {
	return d.ctx.SampleCount
}
