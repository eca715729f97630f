package alcazar

import "github.com/dshills/gridpuzzle/pkg/report"

// Outcome is the compact, authoritative result of validating a board.
// Alcazar's check is degree-only (see package doc): there is no INVALID
// outcome, only SOLVED or AMBIGUOUS.
type Outcome string

const (
	Solved    Outcome = "SOLVED"
	Ambiguous Outcome = "AMBIGUOUS"
)

// Validate checks b against the Alcazar degree invariant: every cell must
// have exactly two WALL edges and two PATH edges, or the board is
// AMBIGUOUS.
func Validate(b *Board) (Outcome, *report.Report) {
	w, h := b.W, b.H
	solved := true
	rep := report.New(string(Ambiguous))

	for cell := 0; cell < w*h; cell++ {
		wallCount, pathCount := 0, 0
		for _, d := range directions {
			switch b.EdgeAt(cell, d) {
			case Wall:
				wallCount++
			case Path:
				pathCount++
			}
		}
		if wallCount != 2 || pathCount != 2 {
			solved = false
			for _, d := range directions {
				ref := cellEdge(cell, d, w)
				rep.MarkError(encodeErrorIndex(ref, w, h))
			}
		}
	}

	outcome := Ambiguous
	if solved {
		outcome = Solved
	}
	rep.Outcome = string(outcome)
	rep.AddResult("degree", solved, "every cell has exactly two WALL and two PATH edges")

	for _, idx := range rep.ErrorCells {
		ref := decodeErrorIndex(idx, w, h)
		b.markError(ref)
	}

	return outcome, rep
}

// encodeErrorIndex/decodeErrorIndex map an edgeRef to a single flat index
// so report.Report (which is board-shape-agnostic) can deduplicate error
// positions across both the horizontal and vertical arrays.
func encodeErrorIndex(ref edgeRef, w, h int) int {
	if ref.horizontal {
		return ref.index
	}
	return NumHEdges(w, h) + ref.index
}

func decodeErrorIndex(idx, w, h int) edgeRef {
	n := NumHEdges(w, h)
	if idx < n {
		return edgeRef{true, idx}
	}
	return edgeRef{false, idx - n}
}
