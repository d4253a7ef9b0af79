// Package facelet parses the 9-line facelet-net input format into a
// cubie.Cube and validates that the result is a physically reachable
// scramble before the solver ever sees it.
package facelet

import (
	"bufio"
	"io"
	"strings"

	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/pkg/move"
)

// grid is one face's 3x3 block of raw sticker characters, row-major with
// row 0 at the top of the face as printed.
type grid [3][3]byte

// net holds the nine parsed faces keyed by move.Face.
type net map[move.Face]grid

// readNet reads exactly nine lines from r and slices them into the six
// face grids, per the layout in the external-interfaces section: three
// centered U rows, three 12-wide L-F-R-B rows, three centered D rows.
// Trailing whitespace on each line is dropped before the shape checks.
func readNet(r io.Reader) (net, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errf("reading input: %v", err)
	}
	if len(lines) != 9 {
		return nil, errf("expected 9 lines, got %d", len(lines))
	}

	n := net{}
	n[move.U] = grid{}
	n[move.D] = grid{}
	n[move.L] = grid{}
	n[move.F] = grid{}
	n[move.R] = grid{}
	n[move.B] = grid{}

	for i := 0; i < 3; i++ {
		row, err := centeredRow(lines[i])
		if err != nil {
			return nil, errf("line %d (U row): %v", i+1, err)
		}
		g := n[move.U]
		g[i] = row
		n[move.U] = g
	}
	for i := 0; i < 3; i++ {
		line := lines[3+i]
		if len(line) != 12 {
			return nil, errf("line %d: expected 12 characters, got %q", 4+i, line)
		}
		for _, b := range []byte(line) {
			if b == ' ' {
				return nil, errf("line %d: unexpected space in middle band", 4+i)
			}
		}
		var lg, fg, rg, bg grid
		lg = n[move.L]
		fg = n[move.F]
		rg = n[move.R]
		bg = n[move.B]
		lg[i] = [3]byte{line[0], line[1], line[2]}
		fg[i] = [3]byte{line[3], line[4], line[5]}
		rg[i] = [3]byte{line[6], line[7], line[8]}
		bg[i] = [3]byte{line[9], line[10], line[11]}
		n[move.L] = lg
		n[move.F] = fg
		n[move.R] = rg
		n[move.B] = bg
	}
	for i := 0; i < 3; i++ {
		row, err := centeredRow(lines[6+i])
		if err != nil {
			return nil, errf("line %d (D row): %v", 7+i, err)
		}
		g := n[move.D]
		g[i] = row
		n[move.D] = g
	}
	return n, nil
}

// centeredRow parses a "   XXX" line: three leading spaces then three
// non-space characters.
func centeredRow(line string) ([3]byte, error) {
	var row [3]byte
	if len(line) != 6 {
		return row, errf("expected 6 characters (3 spaces + 3 stickers), got %q", line)
	}
	if line[0] != ' ' || line[1] != ' ' || line[2] != ' ' {
		return row, errf("expected 3 leading spaces, got %q", line)
	}
	for i := 0; i < 3; i++ {
		if line[3+i] == ' ' {
			return row, errf("unexpected space in sticker row %q", line)
		}
		row[i] = line[3+i]
	}
	return row, nil
}

// centerColors builds the color-to-face mapping from the six face centers.
func centerColors(n net) (map[byte]move.Face, error) {
	colors := make(map[byte]move.Face, 6)
	for _, f := range move.Faces {
		c := n[f][1][1]
		if existing, ok := colors[c]; ok {
			return nil, errf("faces %s and %s share center color %q", existing, f, c)
		}
		colors[c] = f
	}
	return colors, nil
}

// Parse reads a 9-line facelet net from r, validates its shape and
// colors, and converts it into a cubie.Cube. It does not check the
// scramble-feasibility invariants; call Validate for that.
func Parse(r io.Reader) (cubie.Cube, error) {
	n, err := readNet(r)
	if err != nil {
		return cubie.Cube{}, err
	}
	colors, err := centerColors(n)
	if err != nil {
		return cubie.Cube{}, err
	}
	return toCube(n, colors)
}
