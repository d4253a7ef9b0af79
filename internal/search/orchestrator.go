package search

import (
	"errors"
	"time"

	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/internal/prune"
	"github.com/lindqvist/cubesolve/pkg/move"
)

// DefaultDeadline is the wall-clock budget applied when the caller does
// not override it.
const DefaultDeadline = 9 * time.Second

// DefaultMaxTotal is the outer iterative-deepening ceiling: the combined
// move-count bound (Phase-1 quarter turns plus Phase-2 atomic moves) the
// orchestrator will not search past.
const DefaultMaxTotal = 40

// ErrTimedOut is returned when the wall-clock deadline elapsed before any
// solution was found. Per the error-handling design this is not a fatal
// condition: callers should treat it as "no solution within budget" and
// emit an empty result.
var ErrTimedOut = errors.New("search: deadline exceeded before a solution was found")

// ErrBoundExceeded is returned when the search exhausted MaxTotal without
// finding a solution and without hitting the deadline. Like ErrTimedOut,
// this is a budget outcome, not an internal error.
var ErrBoundExceeded = errors.New("search: exhausted maximum search depth without a solution")

// Solver runs the two-phase IDA* search against a fixed set of pruning
// tables, built once and shared read-only across solves.
type Solver struct {
	Tables   *prune.Tables
	Deadline time.Duration // 0 means DefaultDeadline
	MaxTotal int           // 0 means DefaultMaxTotal
}

// Solve runs iterative deepening across the phase boundary: first success
// wins, deadline or MaxTotal exhaustion yields a budget error rather than
// a panic.
func (s *Solver) Solve(start cubie.Cube) ([]move.Move, error) {
	if cubie.IsSolved(start) {
		return []move.Move{}, nil
	}

	deadlineDur := s.Deadline
	if deadlineDur <= 0 {
		deadlineDur = DefaultDeadline
	}
	maxTotal := s.MaxTotal
	if maxTotal <= 0 {
		maxTotal = DefaultMaxTotal
	}
	deadline := time.Now().Add(deadlineDur)

	startBound := h1(s.Tables, start)
	for bound := startBound; bound <= maxTotal; bound++ {
		p := &phase1Search{tables: s.Tables, deadline: deadline}
		if sol := p.runPhase1(start, bound); sol != nil {
			return sol, nil
		}
		if p.timedOut {
			return nil, ErrTimedOut
		}
	}
	return nil, ErrBoundExceeded
}
