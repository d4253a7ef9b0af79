package prune

import (
	"testing"

	"github.com/lindqvist/cubesolve/internal/cubie"
)

func TestApplyUD8MatchesCornerOrbitRotationForUD(t *testing.T) {
	start := identity8()
	for _, m := range phase2Moves {
		if m.ud8IsSwap {
			continue
		}
		got := applyUD8(start, m)
		// U/D moves should permute the eight slots without losing any value.
		seen := map[int8]bool{}
		for _, v := range got {
			seen[v] = true
		}
		if len(seen) != 8 {
			t.Errorf("applyUD8(%v) dropped a value: %v", m, got)
		}
		// ...and in the same direction as the corner cycle of that face.
		want := start
		for i := 0; i < m.quarterCount; i++ {
			rotate4(want[:], cubie.CornerOrbit(m.face))
		}
		if got != want {
			t.Errorf("applyUD8(%v) = %v, want %v (CornerOrbit rotation)", m, got, want)
		}
	}
}

func TestApplyUD8SwapIsSelfInverse(t *testing.T) {
	start := identity8()
	for _, m := range phase2Moves {
		if !m.ud8IsSwap {
			continue
		}
		once := applyUD8(start, m)
		twice := applyUD8(once, m)
		if twice != start {
			t.Errorf("applyUD8(%v) applied twice should be identity, got %v", m, twice)
		}
	}
}

func TestPhase2MovesCoverTenAtomicCodes(t *testing.T) {
	if len(phase2Moves) != 10 {
		t.Fatalf("phase2Moves has %d entries, want 10", len(phase2Moves))
	}
}
