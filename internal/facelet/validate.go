package facelet

import "github.com/lindqvist/cubesolve/internal/cubie"

// Validate checks the three reachability invariants: the corner twist sum,
// the edge flip sum, and permutation parity. A net that parses cleanly but
// fails one of these describes a cube state no sequence of quarter turns
// from solved can ever produce, so the solver must never be handed it.
func Validate(c cubie.Cube) error {
	twist := 0
	for _, co := range c.CO {
		twist += int(co)
	}
	if twist%3 != 0 {
		return &InfeasibleError{Reason: "corner twist sum is not a multiple of 3"}
	}

	flip := 0
	for _, eo := range c.EO {
		flip += int(eo)
	}
	if flip%2 != 0 {
		return &InfeasibleError{Reason: "edge flip sum is not even"}
	}

	cornerParity := permParity(c.CP[:])
	edgeParity := permParity(c.EP[:])
	if cornerParity != edgeParity {
		return &InfeasibleError{Reason: "corner permutation parity does not match edge permutation parity"}
	}
	return nil
}

// permParity returns 0 for an even permutation, 1 for odd, counted by
// inversions.
func permParity(perm []int8) int {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}
