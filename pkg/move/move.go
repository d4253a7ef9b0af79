// Package move defines the face and turn vocabulary shared by the cube
// model, the search engine, and the CLI: the six faces, the three turn
// magnitudes, and conversions to and from standard cube notation.
package move

import (
	"fmt"
	"strings"
)

// Face identifies one of the six faces of the cube.
type Face int

const (
	U Face = iota
	D
	L
	R
	F
	B
)

// Faces lists all six faces in a stable order, used wherever move children
// need a deterministic enumeration order (e.g. IDA* child ordering before
// heuristic sorting).
var Faces = [6]Face{U, D, L, R, F, B}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case L:
		return "L"
	case R:
		return "R"
	case F:
		return "F"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Turn is the direction and magnitude of a face turn.
type Turn int

const (
	CW   Turn = 1  // quarter turn clockwise
	CCW  Turn = -1 // quarter turn counter-clockwise
	Half Turn = 2  // 180 degree turn
)

// Move is a single face turn in standard notation (R, R', R2, ...).
type Move struct {
	Face Face
	Turn Turn
}

// Notation renders the move in standard cube notation.
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Half:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

func (m Move) String() string { return m.Notation() }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// QuarterTurns expands m into the sequence of single clockwise quarter
// turns that the solver's output alphabet {U,D,L,R,F,B} is built from.
// CCW becomes three repetitions (a quarter-turn triple equals the inverse
// quarter-turn), Half becomes two.
func (m Move) QuarterTurns() []Face {
	switch m.Turn {
	case CW:
		return []Face{m.Face}
	case Half:
		return []Face{m.Face, m.Face}
	case CCW:
		return []Face{m.Face, m.Face, m.Face}
	default:
		return nil
	}
}

// ErrInvalidNotation is returned by ParseMove/ParseSequence for tokens that
// are not valid cube notation.
var ErrInvalidNotation = fmt.Errorf("move: invalid notation")

// ParseMove parses a single notation token such as "R", "R'", or "R2".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U':
		face = U
	case 'D':
		face = D
	case 'L':
		face = L
	case 'R':
		face = R
	case 'F':
		face = F
	case 'B':
		face = B
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	switch s[1:] {
	case "":
		turn = CW
	case "'":
		turn = CCW
	case "2":
		turn = Half
	default:
		return Move{}, ErrInvalidNotation
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseSequence parses a whitespace-separated sequence of notation tokens.
func ParseSequence(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, fmt.Errorf("move: parsing %q: %w", f, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatQuarterTurns renders a sequence of quarter-turn faces as the
// solver's flat output alphabet, e.g. [R,R,R,U] -> "RRRU".
func FormatQuarterTurns(qs []Face) string {
	var b strings.Builder
	for _, q := range qs {
		b.WriteString(q.String())
	}
	return b.String()
}

// Phase2Moves is the restricted ten-move generator {U, U2, U', D, D2, D',
// R2, L2, F2, B2} that Phase-2 of the two-phase search is confined to: the
// move set that preserves membership in the G1 subgroup.
var Phase2Moves = []Move{
	{Face: U, Turn: CW},
	{Face: U, Turn: Half},
	{Face: U, Turn: CCW},
	{Face: D, Turn: CW},
	{Face: D, Turn: Half},
	{Face: D, Turn: CCW},
	{Face: R, Turn: Half},
	{Face: L, Turn: Half},
	{Face: F, Turn: Half},
	{Face: B, Turn: Half},
}
