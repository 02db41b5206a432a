package synth

import "testing"

func TestQuantizerSnapsToChromaticDegree(t *testing.T) {
	q, err := NewQuantizer(Const(0.5/12), ScaleAll) // halfway between semitone 0 and 1
	if err != nil {
		t.Fatalf("NewQuantizer: %v", err)
	}
	b := q.Render(&Context{SampleRate: 44100})
	// Tie-break favors the earlier interval in the list: 0 before 1.
	if b[0] != 0 {
		t.Fatalf("tie should resolve to the first interval (0), got %v", b[0])
	}
}

func TestQuantizerMajorScaleSnapsAwayFromOutOfScaleNotes(t *testing.T) {
	// Semitone 1 (a half step) is not in the major scale; nearest
	// degrees are 0 and 2, equidistant, so it resolves to 0 (first in
	// the list).
	q, err := NewQuantizer(Const(1.0/12), ScaleMajor)
	if err != nil {
		t.Fatalf("NewQuantizer: %v", err)
	}
	b := q.Render(&Context{SampleRate: 44100})
	if b[0] != 0 {
		t.Fatalf("semitone 1 snapped to %v*12 semitones, want 0", b[0]*12)
	}
}

func TestQuantizerPreservesOctave(t *testing.T) {
	q, err := NewQuantizer(Const(1.0), ScaleAll) // exactly one octave up
	if err != nil {
		t.Fatalf("NewQuantizer: %v", err)
	}
	b := q.Render(&Context{SampleRate: 44100})
	if b[0] != 1.0 {
		t.Fatalf("one full octave should round-trip unchanged, got %v", b[0])
	}
}

func TestQuantizerRejectsUnknownMode(t *testing.T) {
	if _, err := NewQuantizer(Const(0), ScaleMode(99)); err == nil {
		t.Fatalf("expected error for unknown scale mode")
	}
}
