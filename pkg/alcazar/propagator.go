package alcazar

// PropagateSingleCells applies the single-cell degree rule in one sweep
// over every cell: a cell with exactly two non-wall edges and fewer than two
// committed PATH edges commits those two to PATH and the other two to
// WALL; a cell already showing two PATH edges among more than two
// available edges forces the rest to WALL. Returns true if any edge
// changed.
func PropagateSingleCells(b *Board) bool {
	changed := false
	w, h := b.W, b.H

	for cell := 0; cell < w*h; cell++ {
		var refs [4]edgeRef
		var availableMask, pathMask uint8
		var availableCount, pathCount int

		for i, d := range directions {
			refs[i] = cellEdge(cell, d, w)
			state := b.get(refs[i])
			if state != Wall {
				availableMask |= 1 << uint(i)
				availableCount++
			}
			if state == Path {
				pathMask |= 1 << uint(i)
				pathCount++
			}
		}

		switch {
		case availableCount == 2 && pathCount < 2:
			for i, ref := range refs {
				if availableMask&(1<<uint(i)) != 0 {
					b.set(ref, Path)
				} else {
					b.set(ref, Wall)
				}
			}
			changed = true
		case pathCount == 2 && availableCount > 2:
			for i, ref := range refs {
				if pathMask&(1<<uint(i)) == 0 {
					b.set(ref, Wall)
				}
			}
			changed = true
		}
	}

	return changed
}

// Solve runs the propagator to quiescence and returns the resulting
// outcome. Unlike Walls there is no hypothetical probe, so Solve takes no
// tier argument.
func Solve(b *Board) Outcome {
	for PropagateSingleCells(b) {
	}
	outcome, _ := Validate(b)
	return outcome
}
