package walls

import (
	"github.com/dshills/gridpuzzle/pkg/dsf"
	"github.com/dshills/gridpuzzle/pkg/loopfind"
	"github.com/dshills/gridpuzzle/pkg/report"
)

// Outcome is the compact, authoritative result of validating a board.
type Outcome string

const (
	Solved    Outcome = "SOLVED"
	Ambiguous Outcome = "AMBIGUOUS"
	Invalid   Outcome = "INVALID"
)

// Validate checks b against the Walls invariants: per-cell degree bounds,
// cell connectivity, and the two-exit rule. Error positions, when found,
// are recorded on both the returned report and b.Error.
func Validate(b *Board) (Outcome, *report.Report) {
	w, h := b.W, b.H
	rep := report.New(string(Invalid)) // placeholder outcome, set before return

	// Step 1: clone and force-complete cells that already have two LINE
	// edges, simplifying the degree check below.
	clone := make([]EdgeState, len(b.Edges))
	copy(clone, b.Edges)
	for cell := 0; cell < w*h; cell++ {
		lineCount := 0
		for _, d := range directions {
			if clone[GridToWall(cell, w, h, d)] == Line {
				lineCount++
			}
		}
		if lineCount == 2 {
			for _, d := range directions {
				idx := GridToWall(cell, w, h, d)
				if clone[idx] != Line {
					clone[idx] = Wall
				}
			}
		}
	}

	invalidCells := false
	freeCells := false
	surplusExits := false
	exit1, exit2 := -1, -1

	forest := dsf.New(w * h)

	for cell := 0; cell < w*h; cell++ {
		x, y := cell%w, cell/w

		var lineCount, wallCount, freeCount int
		for _, d := range directions {
			switch clone[GridToWall(cell, w, h, d)] {
			case Unknown:
				freeCount++
			case Line:
				lineCount++
			case Wall:
				wallCount++
			}
		}
		if freeCount > 0 {
			freeCells = true
		}
		if wallCount > 2 || lineCount > 2 {
			invalidCells = true
			if lineCount > 2 {
				for _, d := range directions {
					idx := GridToWall(cell, w, h, d)
					if clone[idx] == Line {
						rep.MarkError(idx)
					}
				}
			}
		}

		if lineCount < 3 {
			if clone[GridToWall(cell, w, h, DirLeft)] != Wall && x > 0 {
				forest.Merge(cell, cell-1)
			}
			if clone[GridToWall(cell, w, h, DirRight)] != Wall && x < w-1 {
				forest.Merge(cell, cell+1)
			}
			if clone[GridToWall(cell, w, h, DirUp)] != Wall && y > 0 {
				forest.Merge(cell, cell-w)
			}
			if clone[GridToWall(cell, w, h, DirDown)] != Wall && y < h-1 {
				forest.Merge(cell, cell+w)
			}
		}

		isExit := (clone[GridToWall(cell, w, h, DirLeft)] == Line && x == 0) ||
			(clone[GridToWall(cell, w, h, DirRight)] == Line && x == w-1) ||
			(clone[GridToWall(cell, w, h, DirUp)] == Line && y == 0) ||
			(clone[GridToWall(cell, w, h, DirDown)] == Line && y == h-1)
		if isExit {
			if exit2 != -1 {
				surplusExits = true
			}
			if exit1 != -1 {
				exit2 = cell
			} else {
				exit1 = cell
			}
		}
	}

	correctExits := exit1 != -1 && exit2 != -1

	cellsConnected := true
	first := forest.Canonify(0)
	for cell := 1; cell < w*h; cell++ {
		if forest.Canonify(cell) != first {
			cellsConnected = false
			break
		}
	}

	// A closed corridor loop disconnects the grid and can never reach an
	// exit. Classify the LINE subgraph's edges and mark the ones lying on a
	// cycle, so the player sees the loop itself rather than hunting for
	// whatever the loop cut off.
	if !cellsConnected {
		loops := loopfind.Find(w*h, lineGraph{w: w, h: h, edges: clone})
		for cell := 0; cell < w*h; cell++ {
			x, y := cell%w, cell/w
			if x < w-1 {
				idx := GridToWall(cell, w, h, DirRight)
				if clone[idx] == Line && loops.IsLoopEdge(cell, cell+1) {
					rep.MarkError(idx)
				}
			}
			if y < h-1 {
				idx := GridToWall(cell, w, h, DirDown)
				if clone[idx] == Line && loops.IsLoopEdge(cell, cell+w) {
					rep.MarkError(idx)
				}
			}
		}
	}

	if surplusExits {
		for i := 0; i < w; i++ {
			markIfLine(b, rep, GridToWall(i, w, h, DirUp))
			markIfLine(b, rep, GridToWall(i+w*(h-1), w, h, DirDown))
		}
		for i := 0; i < h; i++ {
			markIfLine(b, rep, GridToWall(i*w, w, h, DirLeft))
			markIfLine(b, rep, GridToWall(i*w+(w-1), w, h, DirRight))
		}
	}

	rep.AddResult("degree", !invalidCells, "no cell exceeds two LINE or two WALL edges")
	rep.AddResult("exits", !surplusExits, "at most two border LINE edges")
	rep.AddResult("connectivity", cellsConnected, "every cell reaches a single component")

	var outcome Outcome
	switch {
	case invalidCells, surplusExits, !cellsConnected:
		outcome = Invalid
	case freeCells:
		outcome = Ambiguous
	case !correctExits:
		outcome = Invalid
	default:
		outcome = Solved
	}
	rep.Outcome = string(outcome)

	for _, idx := range rep.ErrorCells {
		b.Error[idx] = true
	}

	return outcome, rep
}

func markIfLine(b *Board, rep *report.Report, idx int) {
	if b.Edges[idx] == Line {
		rep.MarkError(idx)
	}
}

// lineGraph presents a board's cells as the graph whose edges are the
// committed LINE edges between adjacent cells, the shape loopfind.Find
// consumes.
type lineGraph struct {
	w, h  int
	edges []EdgeState
}

type neighborIter struct {
	vals []int
	i    int
}

func (it *neighborIter) Next() (int, bool) {
	if it.i >= len(it.vals) {
		return 0, false
	}
	v := it.vals[it.i]
	it.i++
	return v, true
}

func (g lineGraph) Neighbors(v int) loopfind.NeighborIter {
	x, y := v%g.w, v/g.w
	var out []int
	if x > 0 && g.edges[GridToWall(v, g.w, g.h, DirLeft)] == Line {
		out = append(out, v-1)
	}
	if x < g.w-1 && g.edges[GridToWall(v, g.w, g.h, DirRight)] == Line {
		out = append(out, v+1)
	}
	if y > 0 && g.edges[GridToWall(v, g.w, g.h, DirUp)] == Line {
		out = append(out, v-g.w)
	}
	if y < g.h-1 && g.edges[GridToWall(v, g.w, g.h, DirDown)] == Line {
		out = append(out, v+g.w)
	}
	return &neighborIter{vals: out}
}
