package hamilton

import (
	"fmt"

	"github.com/dshills/gridpuzzle/pkg/rng"
)

// Point is a single grid cell coordinate.
type Point struct {
	X, Y int
}

// Path is a sequence of grid cells, each adjacent to the next.
type Path []Point

type direction int

const (
	left direction = iota
	right
	up
	down
)

var directions = [4]direction{left, right, up, down}

func step(p Point, d direction) Point {
	switch d {
	case left:
		return Point{p.X - 1, p.Y}
	case right:
		return Point{p.X + 1, p.Y}
	case up:
		return Point{p.X, p.Y - 1}
	case down:
		return Point{p.X, p.Y + 1}
	default:
		return Point{-1, -1}
	}
}

func inBounds(p Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

func onBorder(p Point, w, h int) bool {
	return p.X == 0 || p.X == w-1 || p.Y == 0 || p.Y == h-1
}

func reverse(path Path, i1, i2 int) {
	for i1 < i2 {
		path[i1], path[i2] = path[i2], path[i1]
		i1++
		i2--
	}
}

// backbiteLeft extends the path at its head by stepping in direction d from
// path[0]. If the new cell is already in the path, the path is folded
// (reversed up to that occurrence) instead of extended. Returns the new
// path length.
func backbiteLeft(path Path, n int, d direction, w, h int) int {
	neigh := step(path[0], d)
	if !inBounds(neigh, w, h) {
		return n
	}

	found := -1
	for i := 1; i < n; i += 2 {
		if path[i] == neigh {
			found = i
			break
		}
	}
	if found >= 0 {
		reverse(path, 0, found-1)
	} else {
		reverse(path, 0, n-1)
		path[n] = neigh
		n++
	}
	return n
}

// backbiteRight is the mirror of backbiteLeft at the path's tail.
func backbiteRight(path Path, n int, d direction, w, h int) int {
	neigh := step(path[n-1], d)
	if !inBounds(neigh, w, h) {
		return n
	}

	found := -1
	for i := n - 2; i >= 0; i -= 2 {
		if path[i] == neigh {
			found = i
			break
		}
	}
	if found >= 0 {
		reverse(path, found+1, n-1)
	} else {
		path[n] = neigh
		n++
	}
	return n
}

func backbite(path Path, n, w, h int, r *rng.RNG) int {
	d := directions[r.RandomUpto(4)]
	if r.RandomUpto(2) == 0 {
		return backbiteLeft(path, n, d, w, h)
	}
	return backbiteRight(path, n, d, w, h)
}

// Generate builds a Hamiltonian path over every cell of a w*h grid, using r
// as its source of randomness. Both endpoints of the returned path are
// guaranteed to lie on the grid border (x in {0,w-1} or y in {0,h-1}).
func Generate(w, h int, r *rng.RNG) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("hamilton: invalid dimensions %dx%d", w, h)
	}
	if r == nil {
		return nil, fmt.Errorf("hamilton: nil RNG")
	}

	path := make(Path, w*h)
	path[0] = Point{X: r.RandomUpto(w), Y: r.RandomUpto(h)}
	n := 1

	for n < w*h {
		n = backbite(path, n, w, h, r)
	}

	for !onBorder(path[0], w, h) {
		d := directions[r.RandomUpto(4)]
		backbiteLeft(path, n, d, w, h)
	}
	for !onBorder(path[n-1], w, h) {
		d := directions[r.RandomUpto(4)]
		backbiteRight(path, n, d, w, h)
	}

	return path, nil
}
