package facelet

import (
	"strings"
	"testing"

	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/pkg/move"
)

func TestParseSolvedCube(t *testing.T) {
	input := formatNet(buildNet(cubie.Solved()))
	c, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse(solved net): %v", err)
	}
	if !cubie.IsSolved(c) {
		t.Errorf("parsed solved net did not yield a solved cube: %+v", c)
	}
	if err := Validate(c); err != nil {
		t.Errorf("Validate(solved): %v", err)
	}
}

func TestParseRoundTripsAScramble(t *testing.T) {
	scramble, err := move.ParseSequence("R U2 F' L D R2 B U' F2 L'")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	want := cubie.Solved()
	want.ApplyMoves(scramble)

	input := formatNet(buildNet(want))
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestParseRejectsWrongLineCount(t *testing.T) {
	full := formatNet(buildNet(cubie.Solved()))
	lines := strings.Split(strings.TrimRight(full, "\n"), "\n")
	truncated := strings.Join(lines[:8], "\n") + "\n"

	_, err := Parse(strings.NewReader(truncated))
	if err == nil {
		t.Fatal("Parse should reject an 8-line input")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("Parse error should be a *ParseError, got %T", err)
	}
}

func TestParseRejectsSharedCenterColor(t *testing.T) {
	n := buildNet(cubie.Solved())
	g := n[move.D]
	g[1][1] = faceColor(move.U) // D's center now collides with U's
	n[move.D] = g

	_, err := Parse(strings.NewReader(formatNet(n)))
	if err == nil {
		t.Fatal("Parse should reject a net where two faces share a center color")
	}
}

func TestParseRejectsUnrecognizedColor(t *testing.T) {
	n := buildNet(cubie.Solved())
	g := n[move.U]
	g[0][0] = '?'
	n[move.U] = g

	_, err := Parse(strings.NewReader(formatNet(n)))
	if err == nil {
		t.Fatal("Parse should reject a sticker color that matches no center")
	}
}

func TestCenteredRowRejectsMissingSpaces(t *testing.T) {
	if _, err := centeredRow("UUUUUU"); err == nil {
		t.Error("centeredRow should reject a row without the three leading spaces")
	}
}
