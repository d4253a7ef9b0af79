package search

import (
	"sort"
	"time"

	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/internal/prune"
	"github.com/lindqvist/cubesolve/pkg/move"
)

// phase2Search holds the mutable state of one Phase-2 IDA* run, confined
// to the ten-move G1-preserving generator move.Phase2Moves.
type phase2Search struct {
	tables   *prune.Tables
	deadline time.Time
	timedOut bool
	visited  map[uint32]int8
}

// runPhase2 finds a Phase-2 solution of at most maxDepth atomic moves for
// a cube already in G1, iteratively deepening its own bound from h2(start)
// up to maxDepth. The result is the sequence of atomic Phase-2 codes
// (move.Phase2Moves entries), left unexpanded for notation.Expand to turn
// into quarter turns. Returns nil if no such solution exists within
// maxDepth, including on deadline expiry.
func runPhase2(t *prune.Tables, start cubie.Cube, maxDepth int, deadline time.Time) []move.Move {
	if maxDepth < 0 {
		return nil
	}
	if cubie.IsSolved(start) {
		return []move.Move{}
	}
	startH := h2(t, start)
	if startH > maxDepth {
		return nil
	}
	for bound := startH; bound <= maxDepth; bound++ {
		s := &phase2Search{tables: t, deadline: deadline}
		s.visited = make(map[uint32]int8)
		if sol := s.dfs(start, nil, 0, bound); sol != nil {
			return sol
		}
		if s.timedOut {
			return nil
		}
	}
	return nil
}

func (s *phase2Search) deadlineExceeded() bool {
	if s.timedOut {
		return true
	}
	if !time.Now().Before(s.deadline) {
		s.timedOut = true
	}
	return s.timedOut
}

func (s *phase2Search) dfs(cube cubie.Cube, path []move.Move, g, bound int) []move.Move {
	if s.deadlineExceeded() {
		return nil
	}

	h := h2(s.tables, cube)
	f := g + h
	if f > bound {
		return nil
	}
	// h2 tracks corners and U/D edges only, so h == 0 can still leave the
	// slice edges permuted among slots 4..7.
	if h == 0 && cubie.IsSolved(cube) {
		return append([]move.Move(nil), path...)
	}

	key := packCPUD8(cube)
	if best, ok := s.visited[key]; ok && int(best) <= f {
		return nil
	}
	s.visited[key] = int8(f)

	for _, m := range orderedPhase2Moves(s.tables, cube) {
		next := cube
		next.ApplyQuarterTurns(m.QuarterTurns())
		nextPath := append(path, m)
		if sol := s.dfs(next, nextPath, g+1, bound); sol != nil {
			return sol
		}
	}
	return nil
}

// orderedPhase2Moves returns the ten atomic Phase-2 moves sorted ascending
// by the Phase-2 heuristic of the resulting cube.
func orderedPhase2Moves(t *prune.Tables, cube cubie.Cube) []move.Move {
	type scored struct {
		m move.Move
		h int
	}
	scoredMoves := make([]scored, 0, len(move.Phase2Moves))
	for _, m := range move.Phase2Moves {
		next := cube
		next.ApplyQuarterTurns(m.QuarterTurns())
		scoredMoves = append(scoredMoves, scored{m: m, h: h2(t, next)})
	}
	sort.SliceStable(scoredMoves, func(i, j int) bool { return scoredMoves[i].h < scoredMoves[j].h })
	out := make([]move.Move, len(scoredMoves))
	for i, sc := range scoredMoves {
		out[i] = sc.m
	}
	return out
}
