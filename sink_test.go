package synth

import "testing"

func TestHeadlessSinkCountsBlocks(t *testing.T) {
	sink := NewHeadlessSink()
	for i := 0; i < 5; i++ {
		if err := sink.Write(Block{}); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if sink.BlocksWritten() != 5 {
		t.Fatalf("BlocksWritten() = %d, want 5", sink.BlocksWritten())
	}
}

func TestCollectingSinkFlattensSamples(t *testing.T) {
	sink := &CollectingSink{}
	var b1, b2 Block
	b1[0] = 1
	b2[0] = 2
	sink.Write(b1)
	sink.Write(b2)

	samples := sink.Samples()
	if len(samples) != 2*BlockSize {
		t.Fatalf("Samples() length = %d, want %d", len(samples), 2*BlockSize)
	}
	if samples[0] != 1 || samples[BlockSize] != 2 {
		t.Fatalf("Samples() did not preserve block order: %v, %v", samples[0], samples[BlockSize])
	}
}
