package facelet

import (
	"github.com/lindqvist/cubesolve/internal/cubie"
	"github.com/lindqvist/cubesolve/pkg/move"
)

// stickerRef locates one sticker within the parsed net.
type stickerRef struct {
	face move.Face
	row  int
	col  int
}

// cornerRef lists a corner location's three stickers in home order:
// the one on the U/D face, then other1, then other2, following the same
// fixed clockwise convention the corner-twist move tables are built on.
type cornerRef struct {
	slot  int
	refs  [3]stickerRef
	faces [3]move.Face // the home faces those three positions hold when solved
}

// edgeRef lists an edge location's two stickers in home order.
type edgeRef struct {
	slot  int
	refs  [2]stickerRef
	faces [2]move.Face
}

// cornerRefs and edgeRefs are derived from the net's physical geometry
// (U above F, L-F-R-B middle band, D below F) by tracing which printed
// sticker lands on each of the cube's eight corners and twelve edges once
// folded. Order within cornerRefs matches cubie's corner slot constants;
// same for edgeRefs and the edge slot constants.
var cornerRefs = [8]cornerRef{
	{slot: cubie.URF, refs: [3]stickerRef{{move.U, 2, 2}, {move.R, 0, 0}, {move.F, 0, 2}}, faces: [3]move.Face{move.U, move.R, move.F}},
	{slot: cubie.UFL, refs: [3]stickerRef{{move.U, 2, 0}, {move.F, 0, 0}, {move.L, 0, 2}}, faces: [3]move.Face{move.U, move.F, move.L}},
	{slot: cubie.ULB, refs: [3]stickerRef{{move.U, 0, 0}, {move.L, 0, 0}, {move.B, 0, 2}}, faces: [3]move.Face{move.U, move.L, move.B}},
	{slot: cubie.UBR, refs: [3]stickerRef{{move.U, 0, 2}, {move.B, 0, 0}, {move.R, 0, 2}}, faces: [3]move.Face{move.U, move.B, move.R}},
	{slot: cubie.DFR, refs: [3]stickerRef{{move.D, 0, 2}, {move.F, 2, 2}, {move.R, 2, 0}}, faces: [3]move.Face{move.D, move.F, move.R}},
	{slot: cubie.DLF, refs: [3]stickerRef{{move.D, 0, 0}, {move.L, 2, 2}, {move.F, 2, 0}}, faces: [3]move.Face{move.D, move.L, move.F}},
	{slot: cubie.DBL, refs: [3]stickerRef{{move.D, 2, 0}, {move.B, 2, 2}, {move.L, 2, 0}}, faces: [3]move.Face{move.D, move.B, move.L}},
	{slot: cubie.DRB, refs: [3]stickerRef{{move.D, 2, 2}, {move.R, 2, 2}, {move.B, 2, 0}}, faces: [3]move.Face{move.D, move.R, move.B}},
}

var edgeRefs = [12]edgeRef{
	{slot: cubie.UF, refs: [2]stickerRef{{move.U, 2, 1}, {move.F, 0, 1}}, faces: [2]move.Face{move.U, move.F}},
	{slot: cubie.UL, refs: [2]stickerRef{{move.U, 1, 0}, {move.L, 0, 1}}, faces: [2]move.Face{move.U, move.L}},
	{slot: cubie.UB, refs: [2]stickerRef{{move.U, 0, 1}, {move.B, 0, 1}}, faces: [2]move.Face{move.U, move.B}},
	{slot: cubie.UR, refs: [2]stickerRef{{move.U, 1, 2}, {move.R, 0, 1}}, faces: [2]move.Face{move.U, move.R}},
	{slot: cubie.FR, refs: [2]stickerRef{{move.F, 1, 2}, {move.R, 1, 0}}, faces: [2]move.Face{move.F, move.R}},
	{slot: cubie.FL, refs: [2]stickerRef{{move.F, 1, 0}, {move.L, 1, 2}}, faces: [2]move.Face{move.F, move.L}},
	{slot: cubie.BL, refs: [2]stickerRef{{move.B, 1, 2}, {move.L, 1, 0}}, faces: [2]move.Face{move.B, move.L}},
	{slot: cubie.BR, refs: [2]stickerRef{{move.B, 1, 0}, {move.R, 1, 2}}, faces: [2]move.Face{move.B, move.R}},
	{slot: cubie.DF, refs: [2]stickerRef{{move.D, 0, 1}, {move.F, 2, 1}}, faces: [2]move.Face{move.D, move.F}},
	{slot: cubie.DL, refs: [2]stickerRef{{move.D, 1, 0}, {move.L, 2, 1}}, faces: [2]move.Face{move.D, move.L}},
	{slot: cubie.DB, refs: [2]stickerRef{{move.D, 2, 1}, {move.B, 2, 1}}, faces: [2]move.Face{move.D, move.B}},
	{slot: cubie.DR, refs: [2]stickerRef{{move.D, 1, 2}, {move.R, 2, 1}}, faces: [2]move.Face{move.D, move.R}},
}

func (n net) at(s stickerRef) byte { return n[s.face][s.row][s.col] }

// toCube identifies the cubie occupying each of the 20 movable slots and
// its orientation, by matching the set of faces its stickers belong to
// (after mapping colors through the center-color table) against the
// reference home faces of each slot.
func toCube(n net, colors map[byte]move.Face) (cubie.Cube, error) {
	var c cubie.Cube

	for i, loc := range cornerRefs {
		var seen [3]move.Face
		for k, ref := range loc.refs {
			color := n.at(ref)
			f, ok := colors[color]
			if !ok {
				return c, errf("corner at slot %d: sticker color %q is not any face's center color", i, color)
			}
			seen[k] = f
		}

		// ori is the position of the U/D-colored sticker within this
		// location's fixed home-ordered triple.
		ori := -1
		for k, f := range seen {
			if f == move.U || f == move.D {
				ori = k
				break
			}
		}
		if ori == -1 {
			return c, errf("corner at slot %d: no U/D sticker found among %v", i, seen)
		}
		other1 := seen[(ori+1)%3]
		other2 := seen[(ori+2)%3]

		matched := -1
		for j, ref := range cornerRefs {
			if ref.faces[1] == other1 && ref.faces[2] == other2 {
				matched = j
				break
			}
		}
		if matched == -1 {
			return c, errf("corner at slot %d: stickers %v match no cubie", i, seen)
		}
		c.CP[i] = int8(matched)
		c.CO[i] = int8(ori)
	}

	for i, loc := range edgeRefs {
		var seen [2]move.Face
		for k, ref := range loc.refs {
			color := n.at(ref)
			f, ok := colors[color]
			if !ok {
				return c, errf("edge at slot %d: sticker color %q is not any face's center color", i, color)
			}
			seen[k] = f
		}

		matched := -1
		eo := int8(0)
		for j, ref := range edgeRefs {
			if ref.faces[0] == seen[0] && ref.faces[1] == seen[1] {
				matched = j
				eo = 0
				break
			}
			if ref.faces[0] == seen[1] && ref.faces[1] == seen[0] {
				matched = j
				eo = 1
				break
			}
		}
		if matched == -1 {
			return c, errf("edge at slot %d: stickers %v match no cubie", i, seen)
		}
		c.EP[i] = int8(matched)
		c.EO[i] = eo
	}

	return c, nil
}
