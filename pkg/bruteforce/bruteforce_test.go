package bruteforce_test

import (
	"testing"

	"github.com/dshills/mcstructureseed/pkg/bruteforce"
	"github.com/dshills/mcstructureseed/pkg/constraint"
)

func TestSolveUpperRangeFindsKnownSeed(t *testing.T) {
	// seed 89 < 2^20, so its upper28 completion is 0 and its low20 is 89
	// itself; a single-value range containing upper=0 must recover it.
	s := constraint.Shipwreck{
		ChunkX: 10, ChunkZ: 10,
		Rotation: constraint.RotationClockwise180,
		Type:     "with_mast",
	}

	got := bruteforce.SolveUpperRange([]uint32{89}, []constraint.Constraint{s}, 0, 1, 4)
	if len(got) != 1 || got[0] != 89 {
		t.Fatalf("SolveUpperRange = %v, want [89]", got)
	}
}

func TestSolveUpperRangeRejectsNonMatchingLow20(t *testing.T) {
	s := constraint.Shipwreck{
		ChunkX: 10, ChunkZ: 10,
		Rotation: constraint.RotationClockwise180,
		Type:     "with_mast",
	}

	got := bruteforce.SolveUpperRange([]uint32{90, 91, 92}, []constraint.Constraint{s}, 0, 1, 2)
	if len(got) != 0 {
		t.Fatalf("expected no matches for low20 values that cannot place this shipwreck, got %v", got)
	}
}

func TestSolveUpperRangeEmptyInputs(t *testing.T) {
	if got := bruteforce.SolveUpperRange(nil, nil, 0, 1, 1); got != nil {
		t.Errorf("expected nil for empty low20s, got %v", got)
	}
	if got := bruteforce.SolveUpperRange([]uint32{1}, nil, 5, 5, 1); got != nil {
		t.Errorf("expected nil for empty range, got %v", got)
	}
}
