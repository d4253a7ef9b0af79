// Package prune builds the breadth-first pruning tables the IDA* search in
// internal/search uses as an admissible heuristic. Tables are built once per
// process and never mutated afterward.
package prune

import (
	"fmt"
	"time"

	"github.com/lindqvist/cubesolve/internal/coord"
	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/pkg/move"
)

const sentinel = 0xFF

// Tables holds the six BFS distance tables the IDA* search reads as its
// admissible heuristic. All are immutable after Build returns.
type Tables struct {
	CO    []uint8 // len coord.NumCO
	EO    []uint8 // len coord.NumEO
	Slice []uint8 // len coord.NumSlice
	COEO  []uint8 // len coord.NumCO*coord.NumEO
	CP    []uint8 // len coord.NumPerm8
	UD8   []uint8 // len coord.NumPerm8
}

// BuildReport carries the self-check and timing data surfaced in verbose
// mode.
type BuildReport struct {
	Elapsed     time.Duration
	MaxDepthCO  int
	MaxDepthEO  int
	MaxDepthSL  int
	MaxDepthJ1  int
	MaxDepthCP  int
	MaxDepthUD8 int
}

// ErrIncompleteTable is returned when BFS construction leaves sentinel
// cells behind. It signals a bug in the move implementation or coordinate
// encoder, not a condition a correct build can ever hit.
type ErrIncompleteTable struct {
	Table       string
	SentinelCnt int
}

func (e *ErrIncompleteTable) Error() string {
	return fmt.Sprintf("prune: table %s left %d unreached cells after build", e.Table, e.SentinelCnt)
}

// Build runs all six BFS constructions and returns the resulting tables.
func Build() (*Tables, BuildReport, error) {
	start := time.Now()
	var report BuildReport
	t := &Tables{}

	var err error
	t.CO, report.MaxDepthCO, err = buildCO()
	if err != nil {
		return nil, report, err
	}
	t.EO, report.MaxDepthEO, err = buildEO()
	if err != nil {
		return nil, report, err
	}
	t.Slice, report.MaxDepthSL, err = buildSlice()
	if err != nil {
		return nil, report, err
	}
	t.COEO, report.MaxDepthJ1, err = buildCOEO()
	if err != nil {
		return nil, report, err
	}
	t.CP, report.MaxDepthCP, err = buildCP()
	if err != nil {
		return nil, report, err
	}
	t.UD8, report.MaxDepthUD8, err = buildUD8()
	if err != nil {
		return nil, report, err
	}

	report.Elapsed = time.Since(start)
	return t, report, nil
}

// rotate4 performs the generic "value at the last slot moves to the first"
// rotation used throughout the cubie move tables, on any integer slice.
func rotate4(arr []int8, slots [4]int) {
	var tmp [4]int8
	for i, s := range slots {
		tmp[i] = arr[s]
	}
	for i, s := range slots {
		arr[s] = tmp[(i+3)%4]
	}
}

func rotate4Twist(arr []int8, slots [4]int, deltas [4]int8) {
	var tmp [4]int8
	for i, s := range slots {
		tmp[i] = arr[s]
	}
	for i, s := range slots {
		arr[s] = (tmp[(i+3)%4] + deltas[i]) % 3
	}
}

func rotate4Flip(arr []int8, slots [4]int, flip bool) {
	var tmp [4]int8
	for i, s := range slots {
		tmp[i] = arr[s]
	}
	for i, s := range slots {
		v := tmp[(i+3)%4]
		if flip {
			v ^= 1
		}
		arr[s] = v
	}
}

// node is a joint CO/EO state, used only by buildCOEO's BFS queue.
type node struct {
	co [8]int8
	eo [12]int8
}

// buildCO runs BFS over the isolated CO coordinate space using the full
// six-move generator.
func buildCO() ([]uint8, int, error) {
	table := make([]uint8, coord.NumCO)
	for i := range table {
		table[i] = sentinel
	}
	start := [8]int8{}
	startIdx := coord.RankCO(start[:])
	table[startIdx] = 0

	queue := [][8]int8{start}
	depth := 0
	maxDepth := 0
	visited := 1
	for len(queue) > 0 && visited < coord.NumCO {
		depth++
		var next [][8]int8
		for _, co := range queue {
			for _, f := range move.Faces {
				child := co
				rotate4Twist(child[:], cubie.CornerOrbit(f), cubie.CornerTwist(f))
				idx := coord.RankCO(child[:])
				if table[idx] != sentinel {
					continue
				}
				table[idx] = uint8(depth)
				visited++
				maxDepth = depth
				next = append(next, child)
			}
		}
		queue = next
	}
	if visited != coord.NumCO {
		return nil, maxDepth, &ErrIncompleteTable{Table: "distCO", SentinelCnt: coord.NumCO - visited}
	}
	return table, maxDepth, nil
}

func buildEO() ([]uint8, int, error) {
	table := make([]uint8, coord.NumEO)
	for i := range table {
		table[i] = sentinel
	}
	start := [12]int8{}
	table[coord.RankEO(start[:])] = 0

	queue := [][12]int8{start}
	depth := 0
	maxDepth := 0
	visited := 1
	for len(queue) > 0 && visited < coord.NumEO {
		depth++
		var next [][12]int8
		for _, eo := range queue {
			for _, f := range move.Faces {
				child := eo
				rotate4Flip(child[:], cubie.EdgeOrbit(f), cubie.EdgeFlips(f))
				idx := coord.RankEO(child[:])
				if table[idx] != sentinel {
					continue
				}
				table[idx] = uint8(depth)
				visited++
				maxDepth = depth
				next = append(next, child)
			}
		}
		queue = next
	}
	if visited != coord.NumEO {
		return nil, maxDepth, &ErrIncompleteTable{Table: "distEO", SentinelCnt: coord.NumEO - visited}
	}
	return table, maxDepth, nil
}

func buildSlice() ([]uint8, int, error) {
	table := make([]uint8, coord.NumSlice)
	for i := range table {
		table[i] = sentinel
	}
	var start [12]bool
	for _, s := range []int{4, 5, 6, 7} {
		start[s] = true
	}
	table[coord.RankSliceOcc(start)] = 0

	queue := [][12]bool{start}
	depth := 0
	maxDepth := 0
	visited := 1
	for len(queue) > 0 && visited < coord.NumSlice {
		depth++
		var next [][12]bool
		for _, occ := range queue {
			for _, f := range move.Faces {
				child := rotateOcc(occ, cubie.EdgeOrbit(f))
				idx := coord.RankSliceOcc(child)
				if table[idx] != sentinel {
					continue
				}
				table[idx] = uint8(depth)
				visited++
				maxDepth = depth
				next = append(next, child)
			}
		}
		queue = next
	}
	if visited != coord.NumSlice {
		return nil, maxDepth, &ErrIncompleteTable{Table: "distSLICE", SentinelCnt: coord.NumSlice - visited}
	}
	return table, maxDepth, nil
}

func rotateOcc(occ [12]bool, slots [4]int) [12]bool {
	out := occ
	var tmp [4]bool
	for i, s := range slots {
		tmp[i] = occ[s]
	}
	for i, s := range slots {
		out[s] = tmp[(i+3)%4]
	}
	return out
}

func buildCOEO() ([]uint8, int, error) {
	size := coord.NumCO * coord.NumEO
	table := make([]uint8, size)
	for i := range table {
		table[i] = sentinel
	}
	startCO := [8]int8{}
	startEO := [12]int8{}
	table[coord.RankCO(startCO[:])*coord.NumEO+coord.RankEO(startEO[:])] = 0

	queue := []node{{co: startCO, eo: startEO}}
	depth := 0
	maxDepth := 0
	visited := 1
	for len(queue) > 0 && visited < size {
		depth++
		var next []node
		for _, n := range queue {
			for _, f := range move.Faces {
				childCO := n.co
				childEO := n.eo
				rotate4Twist(childCO[:], cubie.CornerOrbit(f), cubie.CornerTwist(f))
				rotate4Flip(childEO[:], cubie.EdgeOrbit(f), cubie.EdgeFlips(f))
				idx := coord.RankCO(childCO[:])*coord.NumEO + coord.RankEO(childEO[:])
				if table[idx] != sentinel {
					continue
				}
				table[idx] = uint8(depth)
				visited++
				maxDepth = depth
				next = append(next, node{co: childCO, eo: childEO})
			}
		}
		queue = next
	}
	if visited != size {
		return nil, maxDepth, &ErrIncompleteTable{Table: "distCOEO", SentinelCnt: size - visited}
	}
	return table, maxDepth, nil
}

func buildCP() ([]uint8, int, error) {
	table := make([]uint8, coord.NumPerm8)
	for i := range table {
		table[i] = sentinel
	}
	start := identity8()
	table[coord.RankPermutation(start[:])] = 0

	queue := [][8]int8{start}
	depth := 0
	maxDepth := 0
	visited := 1
	for len(queue) > 0 && visited < coord.NumPerm8 {
		depth++
		var next [][8]int8
		for _, cp := range queue {
			for _, m := range phase2Moves {
				child := cp
				for i := 0; i < m.quarterCount; i++ {
					rotate4(child[:], cubie.CornerOrbit(m.face))
				}
				idx := coord.RankPermutation(child[:])
				if table[idx] != sentinel {
					continue
				}
				table[idx] = uint8(depth)
				visited++
				maxDepth = depth
				next = append(next, child)
			}
		}
		queue = next
	}
	if visited != coord.NumPerm8 {
		return nil, maxDepth, &ErrIncompleteTable{Table: "distCP", SentinelCnt: coord.NumPerm8 - visited}
	}
	return table, maxDepth, nil
}

func buildUD8() ([]uint8, int, error) {
	table := make([]uint8, coord.NumPerm8)
	for i := range table {
		table[i] = sentinel
	}
	start := identity8()
	table[coord.RankPermutation(start[:])] = 0

	queue := [][8]int8{start}
	depth := 0
	maxDepth := 0
	visited := 1
	for len(queue) > 0 && visited < coord.NumPerm8 {
		depth++
		var next [][8]int8
		for _, m := range phase2Moves {
			for _, ud8 := range queue {
				child := applyUD8(ud8, m)
				idx := coord.RankPermutation(child[:])
				if table[idx] != sentinel {
					continue
				}
				table[idx] = uint8(depth)
				visited++
				maxDepth = depth
				next = append(next, child)
			}
		}
		queue = next
	}
	if visited != coord.NumPerm8 {
		return nil, maxDepth, &ErrIncompleteTable{Table: "distUD8", SentinelCnt: coord.NumPerm8 - visited}
	}
	return table, maxDepth, nil
}

func identity8() [8]int8 {
	var a [8]int8
	for i := range a {
		a[i] = int8(i)
	}
	return a
}
