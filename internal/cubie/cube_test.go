package cubie

import (
	"testing"

	"github.com/lindqvist/cubesolve/pkg/move"
)

func TestSolvedIsSolved(t *testing.T) {
	c := Solved()
	if !IsSolved(c) {
		t.Error("Solved() should report solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, f := range move.Faces {
		c := Solved()
		c.Apply(f)
		if IsSolved(c) {
			t.Errorf("applying %v once should break solved", f)
		}
	}
}

func TestFourQuarterTurnsReturnToSolved(t *testing.T) {
	for _, f := range move.Faces {
		c := Solved()
		for i := 0; i < 4; i++ {
			c.Apply(f)
		}
		if !IsSolved(c) {
			t.Errorf("%v x4 should return to solved", f)
		}
	}
}

func TestTwoHalfTurnsReturnToSolved(t *testing.T) {
	for _, f := range move.Faces {
		c := Solved()
		c.ApplyQuarterTurns([]move.Face{f, f})
		c.ApplyQuarterTurns([]move.Face{f, f})
		if !IsSolved(c) {
			t.Errorf("%v2 x2 should return to solved", f)
		}
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	c := Solved()
	sexy, err := move.ParseSequence("R U R' U'")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	for i := 0; i < 6; i++ {
		c.ApplyMoves(sexy)
	}
	if !IsSolved(c) {
		t.Error("(R U R' U') x 6 should return to solved")
	}
}

func TestApplyMovesThenInverseReturnsToSolved(t *testing.T) {
	scramble, err := move.ParseSequence("R U2 F' L D R2 B U' F2 L'")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	c := Solved()
	c.ApplyMoves(scramble)
	if IsSolved(c) {
		t.Fatal("scramble should break solved")
	}
	for i := len(scramble) - 1; i >= 0; i-- {
		c.ApplyMoves([]move.Move{scramble[i].Inverse()})
	}
	if !IsSolved(c) {
		t.Error("applying the inverse scramble in reverse order should restore solved")
	}
}

func TestCornerOrbitAndEdgeOrbitCoverAllFaces(t *testing.T) {
	seen := map[int]bool{}
	for _, f := range move.Faces {
		for _, s := range CornerOrbit(f) {
			seen[s] = true
		}
	}
	if len(seen) != 8 {
		t.Errorf("corner orbits across all faces should cover all 8 corner slots, saw %d", len(seen))
	}
}
