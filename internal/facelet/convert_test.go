package facelet

import (
	"strings"

	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/pkg/move"
)

// faceColor is the single-character color assigned to each face's center
// for test fixtures: the face's own letter, so fixtures read naturally.
func faceColor(f move.Face) byte { return f.String()[0] }

// buildNet renders c back into a facelet net using the same home-ordered
// reference tables toCube decodes against, the inverse of toCube. It exists
// only for tests: it lets a test describe a scramble at the cubie level and
// check that Parse recovers exactly that state from the printed net.
func buildNet(c cubie.Cube) net {
	n := net{move.U: grid{}, move.D: grid{}, move.L: grid{}, move.F: grid{}, move.R: grid{}, move.B: grid{}}
	for _, f := range move.Faces {
		g := n[f]
		g[1][1] = faceColor(f)
		n[f] = g
	}
	for i, loc := range cornerRefs {
		j := c.CP[i]
		o := int(c.CO[i])
		home := cornerRefs[j].faces
		for p := 0; p < 3; p++ {
			m := ((p - o)%3 + 3) % 3
			ref := loc.refs[p]
			g := n[ref.face]
			g[ref.row][ref.col] = faceColor(home[m])
			n[ref.face] = g
		}
	}
	for i, loc := range edgeRefs {
		j := c.EP[i]
		home := edgeRefs[j].faces
		var colors [2]byte
		if c.EO[i] == 0 {
			colors[0] = faceColor(home[0])
			colors[1] = faceColor(home[1])
		} else {
			colors[0] = faceColor(home[1])
			colors[1] = faceColor(home[0])
		}
		for p := 0; p < 2; p++ {
			ref := loc.refs[p]
			g := n[ref.face]
			g[ref.row][ref.col] = colors[p]
			n[ref.face] = g
		}
	}
	return n
}

// formatNet renders n as the 9-line input format Parse reads.
func formatNet(n net) string {
	gU, gD, gL, gF, gR, gB := n[move.U], n[move.D], n[move.L], n[move.F], n[move.R], n[move.B]
	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString("   ")
		b.Write(gU[row][:])
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.Write(gL[row][:])
		b.Write(gF[row][:])
		b.Write(gR[row][:])
		b.Write(gB[row][:])
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString("   ")
		b.Write(gD[row][:])
		b.WriteByte('\n')
	}
	return b.String()
}
