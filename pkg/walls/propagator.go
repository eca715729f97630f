package walls

import "github.com/dshills/gridpuzzle/pkg/difficulty"

// PropagateSingleCells applies the single-cell degree rule in one sweep over
// every cell: a cell with two WALL edges forces its remaining UNKNOWN edges to
// LINE, and a cell with two LINE edges forces its remaining UNKNOWN edges to
// WALL. Returns true if any edge changed.
func PropagateSingleCells(b *Board) bool {
	changed := false
	w, h := b.W, b.H

	for cell := 0; cell < w*h; cell++ {
		var idx [4]int
		var wallCount, lineCount, freeCount int
		for i, d := range directions {
			idx[i] = GridToWall(cell, w, h, d)
			switch b.Edges[idx[i]] {
			case Line:
				lineCount++
			case Wall:
				wallCount++
			case Unknown:
				freeCount++
			}
		}

		switch {
		case wallCount == 2 && freeCount > 0:
			for _, i := range idx {
				if b.Edges[i] == Unknown {
					b.Edges[i] = Line
				}
			}
			changed = true
		case lineCount == 2 && freeCount > 0:
			for _, i := range idx {
				if b.Edges[i] == Unknown {
					b.Edges[i] = Wall
				}
			}
			changed = true
		}
	}

	return changed
}

// HypotheticalProbe performs the "loop check" hypothetical-set pass: for
// every UNKNOWN edge, tentatively fix it to WALL (then to LINE) on a clone,
// propagate (at most two single-cell sweeps at EASY and NORMAL, to
// quiescence above that), and re-validate; if either hypothesis produces an
// INVALID board, the opposite commitment is forced on the real board.
// Returns true if any edge was committed this way.
func HypotheticalProbe(b *Board, tier difficulty.Tier) bool {
	for i, e := range b.Edges {
		if e != Unknown {
			continue
		}

		if hypothesisFails(b, i, Wall, tier) {
			b.Edges[i] = Line
			return true
		}
		if hypothesisFails(b, i, Line, tier) {
			b.Edges[i] = Wall
			return true
		}
	}
	return false
}

func hypothesisFails(b *Board, edge int, hypothesis EdgeState, tier difficulty.Tier) bool {
	trial := b.Clone()
	trial.Edges[edge] = hypothesis

	if tier == difficulty.Easy || tier == difficulty.Normal {
		for i := 0; i < 2; i++ {
			if !PropagateSingleCells(trial) {
				break
			}
		}
	} else {
		for PropagateSingleCells(trial) {
		}
	}

	outcome, _ := Validate(trial)
	return outcome == Invalid
}

// Solve runs the propagator to quiescence at the given difficulty tier,
// escalating to HypotheticalProbe above EASY, and returns the resulting
// outcome.
func Solve(b *Board, tier difficulty.Tier) Outcome {
	for {
		if PropagateSingleCells(b) {
			continue
		}
		if tier == difficulty.Easy {
			break
		}
		if HypotheticalProbe(b, tier) {
			continue
		}
		break
	}

	outcome, _ := Validate(b)
	return outcome
}
