package prune

import "github.com/lindqvist/cubesolve/pkg/move"

// phase2Move is one of the ten atomic moves the Phase-2 search and its
// pruning tables are restricted to: quarter, half, and three-quarter turns
// of U/D, half turns only of R/L/F/B.
type phase2Move struct {
	face         move.Face
	quarterCount int // number of CW quarter turns cubie.CornerOrbit composes
	ud8Swap      [2]int
	ud8IsSwap    bool // half-turn R/L/F/B moves decompose to a single ud8 transposition
}

// phase2Moves enumerates the restricted ten-move generator used to build
// distCP and distUD8. The search itself drives Phase-2 with the matching
// move.Phase2Moves list.
var phase2Moves = []phase2Move{
	{face: move.U, quarterCount: 1},
	{face: move.U, quarterCount: 2},
	{face: move.U, quarterCount: 3},
	{face: move.D, quarterCount: 1},
	{face: move.D, quarterCount: 2},
	{face: move.D, quarterCount: 3},
	{face: move.R, quarterCount: 2, ud8IsSwap: true, ud8Swap: [2]int{3, 7}}, // UR, DR
	{face: move.L, quarterCount: 2, ud8IsSwap: true, ud8Swap: [2]int{1, 5}}, // UL, DL
	{face: move.F, quarterCount: 2, ud8IsSwap: true, ud8Swap: [2]int{0, 4}}, // UF, DF
	{face: move.B, quarterCount: 2, ud8IsSwap: true, ud8Swap: [2]int{2, 6}}, // UB, DB
}

// applyUD8 returns the UD8 coordinate array after one phase2Move. U/D moves
// cycle all eight slots exactly as they cycle the corner permutation array
// (cubie.CornerOrbit shares the same slot-rotation shape for the eight
// U/D-edge positions); the half-turn-only side moves instead swap exactly
// one pair of UD8 slots, since their other transposition lands entirely
// within the four slice-edge slots this coordinate never tracks.
func applyUD8(ud8 [8]int8, m phase2Move) [8]int8 {
	if m.ud8IsSwap {
		out := ud8
		out[m.ud8Swap[0]], out[m.ud8Swap[1]] = ud8[m.ud8Swap[1]], ud8[m.ud8Swap[0]]
		return out
	}
	out := ud8
	slots := ud8USlots
	if m.face == move.D {
		slots = ud8DSlots
	}
	for i := 0; i < m.quarterCount; i++ {
		rotate4(out[:], slots)
	}
	return out
}

// ud8USlots/ud8DSlots are the UD8-array positions touched by a U or D
// quarter turn, in the same four-slot layout as cubie.CornerOrbit: UF, UL,
// UB, UR occupy UD8 indices 0..3; DF, DL, DB, DR occupy indices 4..7.
var ud8USlots = [4]int{0, 3, 2, 1}
var ud8DSlots = [4]int{4, 5, 6, 7}
