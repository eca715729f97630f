package walls

import (
	"fmt"

	"github.com/dshills/gridpuzzle/pkg/rle"
)

// EdgeState is the committed value of one edge, kept orthogonal to the
// per-edge error flag rather than bit-packed with it.
type EdgeState int

const (
	Unknown EdgeState = iota
	Wall
	Line
)

// Direction identifies one of the four edges incident to a grid cell.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// directions is the fixed L, R, U, D iteration order the validator's
// degree/connectivity loop relies on.
var directions = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// Board is the Walls puzzle state: a grid of cells separated by edges, each
// edge holding a committed state, an immutable FIXED clue flag, and a
// transient ERROR flag set by the validator.
type Board struct {
	W, H  int
	Edges []EdgeState
	Fixed []bool
	Error []bool
}

// NumEdges returns (w+1)*h + w*(h+1), the total number of vertical and
// horizontal edges.
func NumEdges(w, h int) int {
	return (w+1)*h + w*(h+1)
}

// NewBlank creates a board of the given dimensions with every edge set to
// wall, matching the generator's starting state before path carving.
func NewBlank(w, h int) *Board {
	n := NumEdges(w, h)
	b := &Board{
		W:     w,
		H:     h,
		Edges: make([]EdgeState, n),
		Fixed: make([]bool, n),
		Error: make([]bool, n),
	}
	for i := range b.Edges {
		b.Edges[i] = Wall
	}
	return b
}

// GridToWall maps a cell and direction to its edge index: verticals occupy
// [0,(w+1)*h), horizontals occupy [(w+1)*h, (w+1)*h+w*(h+1)).
func GridToWall(cell, w, h int, dir Direction) int {
	x := cell % w
	y := cell / w
	switch dir {
	case DirLeft:
		return (w+1)*y + x
	case DirRight:
		return (w+1)*y + x + 1
	case DirUp:
		return (w+1)*h + w*y + x
	case DirDown:
		return (w+1)*h + w*y + x + w
	}
	panic(fmt.Sprintf("walls: invalid direction %d", dir))
}

// IsBorderWall reports whether the given edge index lies on the grid's
// outer border.
func IsBorderWall(wall, w, h int) bool {
	ws := (w + 1) * h
	if wall < ws {
		x := wall % (w + 1)
		return x == 0 || x == w
	}
	y := (wall - ws) / w
	return y == 0 || y == h
}

// EdgeAt returns the committed state of the edge in direction dir from cell.
func (b *Board) EdgeAt(cell int, dir Direction) EdgeState {
	return b.Edges[GridToWall(cell, b.W, b.H, dir)]
}

// Clone returns a deep copy of the board, for solver probes that must never
// mutate the canonical state.
func (b *Board) Clone() *Board {
	clone := &Board{
		W:     b.W,
		H:     b.H,
		Edges: make([]EdgeState, len(b.Edges)),
		Fixed: make([]bool, len(b.Fixed)),
		Error: make([]bool, len(b.Error)),
	}
	copy(clone.Edges, b.Edges)
	copy(clone.Fixed, b.Fixed)
	copy(clone.Error, b.Error)
	return clone
}

// Description run-length encodes the board's wall layout: a digit run of k
// denotes k consecutive wall edges, a letter run denotes consecutive
// non-wall (open or line) edges.
func (b *Board) Description() string {
	bits := make([]bool, len(b.Edges))
	for i, e := range b.Edges {
		bits[i] = e == Wall
	}
	return rle.Encode(bits)
}

// FromDescription decodes a puzzle description into a fresh board; every
// non-wall edge decodes to Unknown (the player has not yet committed a
// line), every wall edge is marked Fixed (the walls the generator left in
// the final layout are the puzzle's clues), and no edge is marked Error.
func FromDescription(w, h int, desc string) (*Board, error) {
	want := NumEdges(w, h)
	bits, err := rle.Decode(desc, want)
	if err != nil {
		return nil, fmt.Errorf("walls: decoding description: %w", err)
	}

	b := &Board{
		W:     w,
		H:     h,
		Edges: make([]EdgeState, want),
		Fixed: make([]bool, want),
		Error: make([]bool, want),
	}
	for i, isWall := range bits {
		if isWall {
			b.Edges[i] = Wall
			b.Fixed[i] = true
		} else {
			b.Edges[i] = Unknown
		}
	}
	return b, nil
}
