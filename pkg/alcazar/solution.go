package alcazar

import (
	"fmt"
	"strings"
)

// SolutionMoves solves a clone of b and returns the move string that
// transforms b into that solution: "S" followed by one opcode per edge
// (W for wall, P for path, C for still-free), horizontal edges first and
// vertical edges offset by NumHEdges, in the same flat index space
// ApplyMove consumes.
func SolutionMoves(b *Board) string {
	solved := b.Clone()
	Solve(solved)

	voff := NumHEdges(b.W, b.H)
	var sb strings.Builder
	sb.WriteByte('S')
	for i, e := range solved.EdgeH {
		switch e {
		case Wall:
			fmt.Fprintf(&sb, ";W%d", i)
		case None:
			fmt.Fprintf(&sb, ";C%d", i)
		case Path:
			fmt.Fprintf(&sb, ";P%d", i)
		}
	}
	for i, e := range solved.EdgeV {
		switch e {
		case Wall:
			fmt.Fprintf(&sb, ";W%d", i+voff)
		case None:
			fmt.Fprintf(&sb, ";C%d", i+voff)
		case Path:
			fmt.Fprintf(&sb, ";P%d", i+voff)
		}
	}
	return sb.String()
}
