package search

import (
	"sort"
	"time"

	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/internal/prune"
	"github.com/lindqvist/cubesolve/pkg/move"
)

// phase1Search holds the mutable state of one Phase-1 IDA* run: the
// pruning tables it reads, the deadline it polls, and the per-bound
// visited cache.
type phase1Search struct {
	tables   *prune.Tables
	deadline time.Time
	timedOut bool
	visited  map[uint32]int8
}

// runPhase1 searches for a solution of total cost at most bound, invoking
// Phase-2 at every G1 leaf with the remaining budget. It returns the
// solution as atomic moves (quarter turns for the Phase-1 portion, one of
// the ten Phase-2 codes for the rest) ready for notation.Expand, or nil if
// none exists within bound (which may be because the deadline was hit;
// check timedOut afterward).
func (s *phase1Search) runPhase1(start cubie.Cube, bound int) []move.Move {
	s.visited = make(map[uint32]int8)
	return s.dfs(start, nil, 0, bound)
}

func (s *phase1Search) deadlineExceeded() bool {
	if s.timedOut {
		return true
	}
	if !time.Now().Before(s.deadline) {
		s.timedOut = true
	}
	return s.timedOut
}

func (s *phase1Search) dfs(cube cubie.Cube, path []move.Move, g, bound int) []move.Move {
	if s.deadlineExceeded() {
		return nil
	}

	h := h1(s.tables, cube)
	f := g + h
	if f > bound {
		return nil
	}

	if inG1(cube) {
		if sol := runPhase2(s.tables, cube, bound-g, s.deadline); sol != nil {
			full := make([]move.Move, 0, len(path)+len(sol))
			full = append(full, path...)
			full = append(full, sol...)
			return full
		}
	}

	key := packCOEOSlice(cube)
	if best, ok := s.visited[key]; ok && int(best) <= f {
		return nil
	}
	s.visited[key] = int8(f)

	for _, child := range orderedChildren(s.tables, cube) {
		next := cube
		next.Apply(child)
		nextPath := append(path, move.Move{Face: child, Turn: move.CW})
		if sol := s.dfs(next, nextPath, g+1, bound); sol != nil {
			return sol
		}
	}
	return nil
}

// orderedChildren returns the six faces sorted ascending by the Phase-1
// heuristic of the resulting cube, so promising branches are tried first.
func orderedChildren(t *prune.Tables, cube cubie.Cube) []move.Face {
	type scored struct {
		face move.Face
		h    int
	}
	scoredFaces := make([]scored, 0, 6)
	for _, f := range move.Faces {
		next := cube
		next.Apply(f)
		scoredFaces = append(scoredFaces, scored{face: f, h: h1(t, next)})
	}
	sort.SliceStable(scoredFaces, func(i, j int) bool { return scoredFaces[i].h < scoredFaces[j].h })
	out := make([]move.Face, len(scoredFaces))
	for i, sc := range scoredFaces {
		out[i] = sc.face
	}
	return out
}
