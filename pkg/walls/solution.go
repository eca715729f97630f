package walls

import (
	"fmt"
	"strings"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
)

// SolutionMoves solves a clone of b at full strength and returns the move
// string that transforms b into that solution: "S" followed by one opcode
// per edge (W for wall, L for line, C for still-unknown). The leading S
// marks the move as solver-origin so applying it does not trigger the
// completion flash.
func SolutionMoves(b *Board) string {
	solved := b.Clone()
	Solve(solved, difficulty.Hard)

	var sb strings.Builder
	sb.WriteByte('S')
	for i, e := range solved.Edges {
		switch e {
		case Unknown:
			fmt.Fprintf(&sb, ";C%d", i)
		case Wall:
			fmt.Fprintf(&sb, ";W%d", i)
		case Line:
			fmt.Fprintf(&sb, ";L%d", i)
		}
	}
	return sb.String()
}
