// Package search implements the two-phase cubie-level IDA* solver: Phase-1
// reduces a scrambled cube into the G1 subgroup, Phase-2 solves within G1,
// and the orchestrator ties the two together under iterative deepening and
// a wall-clock deadline.
package search

import (
	"github.com/lindqvist/cubesolve/internal/coord"
	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/internal/prune"
)

// inG1 reports whether c satisfies the Phase-1 goal predicate: trivial
// corner and edge orientation, and the slice edges parked in slots 4..7.
// Their relative order within those slots does not matter at this stage.
func inG1(c cubie.Cube) bool {
	return coord.CO(c) == 0 && coord.EO(c) == 0 && coord.InG1(c)
}

// h1 is the admissible Phase-1 heuristic: the maximum of the four
// independent lower bounds on moves remaining to reach G1.
func h1(t *prune.Tables, c cubie.Cube) int {
	co := coord.CO(c)
	eo := coord.EO(c)
	sl := coord.Slice(c)
	best := int(t.CO[co])
	if v := int(t.EO[eo]); v > best {
		best = v
	}
	if v := int(t.Slice[sl]); v > best {
		best = v
	}
	if v := int(t.COEO[co*coord.NumEO+eo]); v > best {
		best = v
	}
	return best
}

// h2 is the admissible Phase-2 heuristic: the maximum of the two
// independent lower bounds and their averaged joint bound, since every
// Phase-2 move permutes both the corner and U/D-edge coordinate together.
func h2(t *prune.Tables, c cubie.Cube) int {
	cp := int(t.CP[coord.CP(c)])
	ud8 := int(t.UD8[coord.UD8(c)])
	best := cp
	if ud8 > best {
		best = ud8
	}
	if joint := (cp + ud8 + 1) / 2; joint > best {
		best = joint
	}
	return best
}

// packCOEOSlice packs the Phase-1 visited-cache key into a scalar.
func packCOEOSlice(c cubie.Cube) uint32 {
	co := uint32(coord.CO(c))
	eo := uint32(coord.EO(c))
	sl := uint32(coord.Slice(c))
	return (co*coord.NumEO+eo)*coord.NumSlice + sl
}

// packCPUD8 packs the Phase-2 visited-cache key into a scalar.
func packCPUD8(c cubie.Cube) uint32 {
	return uint32(coord.CP(c))*coord.NumPerm8 + uint32(coord.UD8(c))
}
