package stellar

import (
	"fmt"
	"strings"
)

// SolutionMoves solves a clone of b at full strength (recursive search
// allowed) and returns the move string that transforms b into that
// solution: "R" (the solver-origin marker) followed by an E-clear for every
// non-planet cell, then an S/C commit or s/c pencil marks for cells the
// solver decided. The E lands before the commit for the same cell; ops
// apply left to right, so the commit wins.
func SolutionMoves(b *Board) string {
	solved := b.Clone()
	Solve(solved, true)

	var sb strings.Builder
	sb.WriteByte('R')
	for i, c := range solved.Grid {
		if c&Planet == 0 {
			fmt.Fprintf(&sb, ";E%d", i)
		}
		switch {
		case c == Star:
			fmt.Fprintf(&sb, ";S%d", i)
		case c == Cloud:
			fmt.Fprintf(&sb, ";C%d", i)
		case c&Guess != 0:
			if c&Star != 0 {
				fmt.Fprintf(&sb, ";s%d", i)
			}
			if c&Cloud != 0 {
				fmt.Fprintf(&sb, ";c%d", i)
			}
		}
	}
	return sb.String()
}
