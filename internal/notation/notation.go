// Package notation renders solver output: expanding the mixed stream of
// Phase-1 quarter turns and Phase-2 atomic codes the search returns into
// the emitted {U,D,L,R,F,B} quarter-turn alphabet, and formatting move
// sequences as standard cube notation for diagnostics.
package notation

import "github.com/lindqvist/cubesolve/pkg/move"

// Expand flattens a solution (as returned by search.Solver.Solve) into the
// quarter-turn output alphabet: every move.Move, whether a Phase-1 single
// quarter turn or a Phase-2 atomic code spanning up to three, is expanded
// via its own QuarterTurns.
func Expand(moves []move.Move) string {
	var faces []move.Face
	for _, m := range moves {
		faces = append(faces, m.QuarterTurns()...)
	}
	return move.FormatQuarterTurns(faces)
}

// FormatScramble renders a move sequence in standard space-separated cube
// notation (R, R', R2, ...). The CLI does not call it.
func FormatScramble(moves []move.Move) string {
	var out string
	for i, m := range moves {
		if i > 0 {
			out += " "
		}
		out += m.Notation()
	}
	return out
}
