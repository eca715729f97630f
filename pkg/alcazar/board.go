package alcazar

import (
	"fmt"

	"github.com/dshills/gridpuzzle/pkg/rle"
)

// EdgeState is the committed value of one edge, kept orthogonal to the
// per-edge FIXED/ERROR flags rather than bit-packed with them.
type EdgeState int

const (
	None EdgeState = iota
	Wall
	Path
)

// Direction identifies one of the four edges incident to a grid cell, in
// the fixed iteration order up, down, left, right.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Board is the Alcazar puzzle state: horizontal and vertical edges held in
// separate arrays, each with its own committed state, FIXED clue flag, and
// transient ERROR flag.
type Board struct {
	W, H    int
	EdgeH   []EdgeState // len W*(H+1), row-major: index y*W+x
	EdgeV   []EdgeState // len (W+1)*H, row-major: index y*(W+1)+x
	FixedH  []bool
	FixedV  []bool
	ErrorH  []bool
	ErrorV  []bool
}

// NumHEdges returns w*(h+1), the count of horizontal edges.
func NumHEdges(w, h int) int { return w * (h + 1) }

// NumVEdges returns (w+1)*h, the count of vertical edges.
func NumVEdges(w, h int) int { return (w + 1) * h }

// NewBlank creates a board of the given dimensions with every edge set to
// wall, matching the generator's starting state before path carving.
func NewBlank(w, h int) *Board {
	b := &Board{
		W:      w,
		H:      h,
		EdgeH:  make([]EdgeState, NumHEdges(w, h)),
		EdgeV:  make([]EdgeState, NumVEdges(w, h)),
		FixedH: make([]bool, NumHEdges(w, h)),
		FixedV: make([]bool, NumVEdges(w, h)),
		ErrorH: make([]bool, NumHEdges(w, h)),
		ErrorV: make([]bool, NumVEdges(w, h)),
	}
	for i := range b.EdgeH {
		b.EdgeH[i] = Wall
	}
	for i := range b.EdgeV {
		b.EdgeV[i] = Wall
	}
	return b
}

// HIndex returns the index into EdgeH for the horizontal edge at column x,
// row y (y ranges over [0,h], the edge above row y).
func HIndex(x, y, w int) int { return y*w + x }

// VIndex returns the index into EdgeV for the vertical edge at column x
// (x ranges over [0,w]), row y.
func VIndex(x, y, w int) int { return y*(w+1) + x }

// edgeRef locates one edge by which array it belongs to and its index
// within that array.
type edgeRef struct {
	horizontal bool
	index      int
}

func cellEdge(cell int, dir Direction, w int) edgeRef {
	x, y := cell%w, cell/w
	switch dir {
	case DirUp:
		return edgeRef{true, HIndex(x, y, w)}
	case DirDown:
		return edgeRef{true, HIndex(x, y+1, w)}
	case DirLeft:
		return edgeRef{false, VIndex(x, y, w)}
	case DirRight:
		return edgeRef{false, VIndex(x+1, y, w)}
	}
	panic(fmt.Sprintf("alcazar: invalid direction %d", dir))
}

func (b *Board) get(ref edgeRef) EdgeState {
	if ref.horizontal {
		return b.EdgeH[ref.index]
	}
	return b.EdgeV[ref.index]
}

func (b *Board) set(ref edgeRef, v EdgeState) {
	if ref.horizontal {
		b.EdgeH[ref.index] = v
	} else {
		b.EdgeV[ref.index] = v
	}
}

func (b *Board) isFixed(ref edgeRef) bool {
	if ref.horizontal {
		return b.FixedH[ref.index]
	}
	return b.FixedV[ref.index]
}

func (b *Board) markError(ref edgeRef) {
	if ref.horizontal {
		b.ErrorH[ref.index] = true
	} else {
		b.ErrorV[ref.index] = true
	}
}

// EdgeAt returns the committed state of the edge in direction dir from
// cell (cell = x + y*w).
func (b *Board) EdgeAt(cell int, dir Direction) EdgeState {
	return b.get(cellEdge(cell, dir, b.W))
}

// Clone returns a deep copy of the board, for solver probes that must
// never mutate the canonical state.
func (b *Board) Clone() *Board {
	clone := &Board{
		W:      b.W,
		H:      b.H,
		EdgeH:  make([]EdgeState, len(b.EdgeH)),
		EdgeV:  make([]EdgeState, len(b.EdgeV)),
		FixedH: make([]bool, len(b.FixedH)),
		FixedV: make([]bool, len(b.FixedV)),
		ErrorH: make([]bool, len(b.ErrorH)),
		ErrorV: make([]bool, len(b.ErrorV)),
	}
	copy(clone.EdgeH, b.EdgeH)
	copy(clone.EdgeV, b.EdgeV)
	copy(clone.FixedH, b.FixedH)
	copy(clone.FixedV, b.FixedV)
	copy(clone.ErrorH, b.ErrorH)
	copy(clone.ErrorV, b.ErrorV)
	return clone
}

// Description run-length encodes the board's wall layout, horizontals
// followed by a comma then verticals.
func (b *Board) Description() string {
	hBits := make([]bool, len(b.EdgeH))
	for i, e := range b.EdgeH {
		hBits[i] = e == Wall
	}
	vBits := make([]bool, len(b.EdgeV))
	for i, e := range b.EdgeV {
		vBits[i] = e == Wall
	}
	return rle.Encode(hBits) + "," + rle.Encode(vBits)
}

// FromDescription decodes a puzzle description into a fresh board; every
// non-wall edge decodes to None, and a wall edge is marked FIXED.
func FromDescription(w, h int, desc string) (*Board, error) {
	var hPart, vPart string
	split := -1
	for i, c := range desc {
		if c == ',' {
			split = i
			break
		}
	}
	if split < 0 {
		return nil, fmt.Errorf("alcazar: decoding description: missing ',' separator")
	}
	hPart, vPart = desc[:split], desc[split+1:]

	hBits, err := rle.Decode(hPart, NumHEdges(w, h))
	if err != nil {
		return nil, fmt.Errorf("alcazar: decoding horizontal edges: %w", err)
	}
	vBits, err := rle.Decode(vPart, NumVEdges(w, h))
	if err != nil {
		return nil, fmt.Errorf("alcazar: decoding vertical edges: %w", err)
	}

	b := &Board{
		W:      w,
		H:      h,
		EdgeH:  make([]EdgeState, len(hBits)),
		EdgeV:  make([]EdgeState, len(vBits)),
		FixedH: make([]bool, len(hBits)),
		FixedV: make([]bool, len(vBits)),
		ErrorH: make([]bool, len(hBits)),
		ErrorV: make([]bool, len(vBits)),
	}
	for i, isWall := range hBits {
		if isWall {
			b.EdgeH[i] = Wall
			b.FixedH[i] = true
		}
	}
	for i, isWall := range vBits {
		if isWall {
			b.EdgeV[i] = Wall
			b.FixedV[i] = true
		}
	}
	return b, nil
}
