// Package coord projects cubie.Cube states into the small integer
// coordinate spaces the pruning tables and IDA* heuristics are indexed by.
// Every function here is a pure, constant-time view of a Cube; callers
// that need UD8 must first confirm SLICE places the cube in G1.
package coord

import "github.com/lindqvist/cubesolve/internal/cubie"

const (
	NumCO    = 2187 // 3^7
	NumEO    = 2048 // 2^11
	NumSlice = 495  // C(12,4)
	NumPerm8 = 40320 // 8!
)

// CO is the corner orientation index, Sum co[i]*3^(6-i) for i=0..6.
func CO(c cubie.Cube) int { return RankCO(c.CO[:]) }

// RankCO computes the CO index directly from a bare orientation array, for
// callers (the pruning-table builder) that BFS over coordinates without
// ever building a full Cube.
func RankCO(co []int8) int {
	idx := 0
	for i := 0; i < 7; i++ {
		idx = idx*3 + int(co[i])
	}
	return idx
}

// EO is the edge orientation index, Sum eo[i]*2^(10-i) for i=0..10.
func EO(c cubie.Cube) int { return RankEO(c.EO[:]) }

// RankEO computes the EO index directly from a bare orientation array.
func RankEO(eo []int8) int {
	idx := 0
	for i := 0; i < 11; i++ {
		idx = idx*2 + int(eo[i])
	}
	return idx
}

// sliceEdges are the four UD-slice edges: FR, FL, BL, BR.
var sliceEdges = [4]int8{cubie.FR, cubie.FL, cubie.BL, cubie.BR}

func isSliceEdge(id int8) bool {
	for _, e := range sliceEdges {
		if id == e {
			return true
		}
	}
	return false
}

// binomial returns C(n, k), computed directly since n<=11 and k<=4 here.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// Slice is the combinatorial index (range 0..494) identifying which
// positions hold the four UD-slice edges, independent of their order.
func Slice(c cubie.Cube) int {
	var occ [12]bool
	for pos := 0; pos < 12; pos++ {
		occ[pos] = isSliceEdge(c.EP[pos])
	}
	return RankSliceOcc(occ)
}

// RankSliceOcc computes the Slice index directly from a 12-slot occupancy
// array (true where a slice edge sits), for BFS over bare coordinates.
func RankSliceOcc(occ [12]bool) int {
	idx := 0
	r := 4
	for pos := 0; pos < 12 && r > 0; pos++ {
		if occ[pos] {
			r--
		} else {
			idx += binomial(11-pos, r-1)
		}
	}
	return idx
}

// InG1 reports whether the slice edges occupy slots 4..7, i.e. whether
// UD8 is meaningful for c.
func InG1(c cubie.Cube) bool {
	for _, s := range []int{4, 5, 6, 7} {
		if !isSliceEdge(c.EP[s]) {
			return false
		}
	}
	return true
}

// RankPermutation computes the Lehmer-code rank of perm (a permutation of
// 0..n-1) over n!. Exported for the pruning-table builder, which needs the
// same ranking over bare coordinate arrays that never become a full Cube.
func RankPermutation(perm []int8) int {
	n := len(perm)
	rank := 0
	factorial := make([]int, n)
	factorial[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		factorial[i] = factorial[i+1] * (n - 1 - i)
	}
	used := make([]bool, n)
	for i := 0; i < n; i++ {
		less := 0
		for v := int8(0); int(v) < int(perm[i]); v++ {
			if !used[v] {
				less++
			}
		}
		rank += less * factorial[i]
		used[perm[i]] = true
	}
	return rank
}

// CP is the Lehmer rank of the corner permutation, range 0..40319.
func CP(c cubie.Cube) int {
	return RankPermutation(c.CP[:])
}

// UD8 is the Lehmer rank of the permutation induced on the eight U/D-layer
// edge slots (UF,UL,UB,UR,DF,DL,DB,DR) by the U/D edges. Only meaningful
// when InG1(c) holds: the four slice edges must already occupy slots 4..7
// so that slots 0,1,2,3,8,9,10,11 hold exactly the eight U/D edges.
func UD8(c cubie.Cube) int {
	var perm [8]int8
	ud8Slots := [8]int{0, 1, 2, 3, 8, 9, 10, 11}
	for i, s := range ud8Slots {
		// Re-rank the edge identity onto 0..7 in the same slot order,
		// since the eight U/D edges are themselves identified 0..3,8..11.
		id := c.EP[s]
		perm[i] = ud8Rank(id)
	}
	return RankPermutation(perm[:])
}

// ud8Rank maps a U/D edge cubie id (0,1,2,3,8,9,10,11) to its rank 0..7
// in slot order, for use as a Lehmer-code element.
func ud8Rank(id int8) int8 {
	switch id {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return 3
	case 8:
		return 4
	case 9:
		return 5
	case 10:
		return 6
	case 11:
		return 7
	default:
		return -1
	}
}
