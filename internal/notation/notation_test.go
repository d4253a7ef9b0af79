package notation

import (
	"testing"

	"github.com/lindqvist/cubesolve/pkg/move"
)

func TestExpandFlattensQuarterAndPhase2Moves(t *testing.T) {
	moves := []move.Move{
		{Face: move.R, Turn: move.CW},
		{Face: move.U, Turn: move.Half},
		{Face: move.F, Turn: move.CCW},
	}
	got := Expand(moves)
	want := "RUUFFF"
	if got != want {
		t.Errorf("Expand(%v) = %q, want %q", moves, got, want)
	}
}

func TestExpandEmpty(t *testing.T) {
	if got := Expand(nil); got != "" {
		t.Errorf("Expand(nil) = %q, want empty", got)
	}
}

func TestFormatScramble(t *testing.T) {
	moves := []move.Move{{Face: move.R, Turn: move.CW}, {Face: move.U, Turn: move.CCW}}
	got := FormatScramble(moves)
	want := "R U'"
	if got != want {
		t.Errorf("FormatScramble = %q, want %q", got, want)
	}
}
