// Package cubie provides the cubie-level 3x3x3 cube model: permutation and
// orientation arrays for the eight corners and twelve edges, and the six
// quarter-turn mutators the search engine drives.
package cubie

import "github.com/lindqvist/cubesolve/pkg/move"

// Corner slot indices, fixed per the reference layout: URF, UFL, ULB, UBR,
// DFR, DLF, DBL, DRB.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slot indices, fixed per the reference layout: UF, UL, UB, UR, FR,
// FL, BL, BR, DF, DL, DB, DR.
const (
	UF = iota
	UL
	UB
	UR
	FR
	FL
	BL
	BR
	DF
	DL
	DB
	DR
)

// Cube is the cubie-level state: which cubie occupies each slot (CP, EP)
// and how it is twisted or flipped there (CO, EO). Values are copied
// freely; a Cube is small enough to pass by value everywhere in the search.
type Cube struct {
	CP [8]int8
	CO [8]int8
	EP [12]int8
	EO [12]int8
}

// Solved returns a cube in the identity (solved) state.
func Solved() Cube {
	var c Cube
	for i := range c.CP {
		c.CP[i] = int8(i)
	}
	for i := range c.EP {
		c.EP[i] = int8(i)
	}
	return c
}

// Clone returns an independent copy of c. Cube is a plain value type so
// this is only useful when a pointer to an independent copy is needed.
func Clone(c Cube) Cube { return c }

// IsSolved reports whether c is the identity state.
func IsSolved(c Cube) bool {
	for i := 0; i < 8; i++ {
		if c.CP[i] != int8(i) || c.CO[i] != 0 {
			return false
		}
	}
	for i := 0; i < 12; i++ {
		if c.EP[i] != int8(i) || c.EO[i] != 0 {
			return false
		}
	}
	return true
}

// cornerMove describes one move's effect on the corner arrays: the four
// slots involved, in cycle order (the piece at the last slot moves to the
// first), and the orientation delta added to the piece arriving at each
// listed slot.
type cornerMove struct {
	slots  [4]int
	deltas [4]int8
}

// edgeMove describes one move's effect on the edge arrays: the four slots
// involved in cycle order, and whether all four pieces flip as they move.
type edgeMove struct {
	slots [4]int
	flip  bool
}

var cornerMoves = map[move.Face]cornerMove{
	move.U: {slots: [4]int{URF, UBR, ULB, UFL}},
	move.D: {slots: [4]int{DFR, DLF, DBL, DRB}},
	move.R: {slots: [4]int{URF, DFR, DRB, UBR}, deltas: [4]int8{1, 2, 1, 2}},
	move.L: {slots: [4]int{UFL, ULB, DBL, DLF}, deltas: [4]int8{2, 1, 2, 1}},
	move.F: {slots: [4]int{URF, UFL, DLF, DFR}, deltas: [4]int8{2, 1, 2, 1}},
	move.B: {slots: [4]int{ULB, UBR, DRB, DBL}, deltas: [4]int8{2, 1, 2, 1}},
}

var edgeMoves = map[move.Face]edgeMove{
	move.U: {slots: [4]int{UF, UR, UB, UL}},
	move.D: {slots: [4]int{DF, DL, DB, DR}},
	move.R: {slots: [4]int{UR, FR, DR, BR}},
	move.L: {slots: [4]int{UL, BL, DL, FL}},
	move.F: {slots: [4]int{UF, FL, DF, FR}, flip: true},
	move.B: {slots: [4]int{UB, BR, DB, BL}, flip: true},
}

// Apply mutates c in place with one clockwise quarter turn of face f.
func (c *Cube) Apply(f move.Face) {
	cm := cornerMoves[f]
	em := edgeMoves[f]

	var cp, co [4]int8
	for i, s := range cm.slots {
		cp[i] = c.CP[s]
		co[i] = c.CO[s]
	}
	for i, s := range cm.slots {
		prev := (i + 3) % 4
		c.CP[s] = cp[prev]
		c.CO[s] = (co[prev] + cm.deltas[i]) % 3
	}

	var ep, eo [4]int8
	for i, s := range em.slots {
		ep[i] = c.EP[s]
		eo[i] = c.EO[s]
	}
	for i, s := range em.slots {
		prev := (i + 3) % 4
		v := eo[prev]
		if em.flip {
			v ^= 1
		}
		c.EP[s] = ep[prev]
		c.EO[s] = v
	}
}

// ApplyQuarterTurns mutates c in place with a sequence of clockwise
// quarter turns, as produced by move.Move.QuarterTurns or by expanding a
// Phase-2 atomic move code.
func (c *Cube) ApplyQuarterTurns(qs []move.Face) {
	for _, q := range qs {
		c.Apply(q)
	}
}

// ApplyMoves mutates c in place with a sequence of (possibly non-quarter)
// moves, used by tests and scramble generation.
func (c *Cube) ApplyMoves(ms []move.Move) {
	for _, m := range ms {
		c.ApplyQuarterTurns(m.QuarterTurns())
	}
}

// CornerOrbit returns the four corner slots touched by one quarter turn of
// f, in cycle order: the piece at the last slot moves to the first.
// Exposed so the pruning-table builder can drive coordinate-only BFS
// without duplicating the move table.
func CornerOrbit(f move.Face) [4]int { return cornerMoves[f].slots }

// CornerTwist returns the orientation delta added to the piece landing in
// each slot of CornerOrbit(f), in the same order.
func CornerTwist(f move.Face) [4]int8 { return cornerMoves[f].deltas }

// EdgeOrbit returns the four edge slots touched by one quarter turn of f,
// in cycle order.
func EdgeOrbit(f move.Face) [4]int { return edgeMoves[f].slots }

// EdgeFlips reports whether one quarter turn of f flips all four edges in
// EdgeOrbit(f).
func EdgeFlips(f move.Face) bool { return edgeMoves[f].flip }
