package stellar

// SolveOutcome is the result of a solver pass.
type SolveOutcome int

const (
	Unique SolveOutcome = iota
	SolveAmbiguous
	Impossible
	Undefined
)

// initializeSolver resets every non-planet cell to the full GUESS|STAR|
// CLOUD candidate set.
func initializeSolver(b *Board) {
	for i, c := range b.Grid {
		if c&Planet == 0 {
			b.Grid[i] = Guess | Star | Cloud
		}
	}
}

// solverCombinations narrows each line's STAR/CLOUD candidates to those
// consistent with at least one legal (star, cloud) placement given the
// line's planet illumination.
func solverCombinations(b *Board) bool {
	size := b.Size
	changed := false
	newLine := make([]CellState, size)

	for _, axis := range [2]Axis{Row, Column} {
		for line := 0; line < size; line++ {
			p := planetPosition(b, axis, line)
			for i := range newLine {
				newLine[i] = 0
			}
			if p < 0 {
				continue
			}

			planetCell := b.Grid[index(size, axis, line, p)]
			illum := dark
			switch axis {
			case Row:
				switch {
				case planetCell&Left != 0:
					illum = leftTop
				case planetCell&Right != 0:
					illum = rightBottom
				}
			case Column:
				switch {
				case planetCell&Top != 0:
					illum = leftTop
				case planetCell&Bottom != 0:
					illum = rightBottom
				}
			}

			for ts := 0; ts < size; ts++ {
				if ts == p || b.Grid[index(size, axis, line, ts)]&Star == 0 {
					continue
				}
				for tc := 0; tc < size; tc++ {
					if tc == p || b.Grid[index(size, axis, line, tc)]&Cloud == 0 {
						continue
					}
					if checkLine(ts, tc, p, illum) {
						newLine[ts] |= Star
						newLine[tc] |= Cloud
					}
				}
			}

			for i := 0; i < size; i++ {
				if i == p {
					continue
				}
				idx := index(size, axis, line, i)
				if newLine[i]&Star == 0 && b.Grid[idx]&Star != 0 {
					changed = true
					b.Grid[idx] ^= Star
				}
				if newLine[i]&Cloud == 0 && b.Grid[idx]&Cloud != 0 {
					changed = true
					b.Grid[idx] ^= Cloud
				}
			}
		}
	}
	return changed
}

// solverSingles commits any line whose STAR (or CLOUD) candidates have
// collapsed to one cell, clearing that candidate from the perpendicular
// line. Returns impossible if a line has no STAR or no CLOUD candidate
// left.
func solverSingles(b *Board) (changed, impossible bool) {
	size := b.Size
	for _, axis := range [2]Axis{Row, Column} {
		for line := 0; line < size; line++ {
			starCount, starPos := 0, -1
			cloudCount, cloudPos := 0, -1
			for i := 0; i < size; i++ {
				idx := index(size, axis, line, i)
				if b.Grid[idx]&Star != 0 {
					starCount++
					starPos = i
				}
				if b.Grid[idx]&Cloud != 0 {
					cloudCount++
					cloudPos = i
				}
			}

			if starCount == 0 {
				return changed, true
			}
			if starCount == 1 {
				idx := index(size, axis, line, starPos)
				if b.Grid[idx] != Star {
					b.Grid[idx] = Star
					changed = true
					other := otherAxis(axis)
					for i := 0; i < size; i++ {
						oidx := index(size, other, starPos, i)
						if b.Grid[oidx]&Guess != 0 && b.Grid[oidx]&Star != 0 {
							b.Grid[oidx] ^= Star
						}
					}
				}
			}

			if cloudCount == 0 {
				return changed, true
			}
			if cloudCount == 1 {
				idx := index(size, axis, line, cloudPos)
				if b.Grid[idx] != Cloud {
					b.Grid[idx] = Cloud
					changed = true
					other := otherAxis(axis)
					for i := 0; i < size; i++ {
						oidx := index(size, other, cloudPos, i)
						if b.Grid[oidx]&Guess != 0 && b.Grid[oidx]&Cloud != 0 {
							b.Grid[oidx] ^= Cloud
						}
					}
				}
			}
		}
	}
	return changed, false
}

// cleanupGrid clears conflicting GUESS pencil-marks left over after
// quiescence, then empties any cell that is pure GUESS with nothing
// committed.
func cleanupGrid(b *Board) {
	size := b.Size
	for _, axis := range [2]Axis{Row, Column} {
		for line := 0; line < size; line++ {
			for i := 0; i < size; i++ {
				idx := index(size, axis, line, i)
				other := otherAxis(axis)
				if b.Grid[idx] == Star {
					for j := 0; j < size; j++ {
						oidx := index(size, other, i, j)
						if b.Grid[oidx]&Guess != 0 && b.Grid[oidx]&Star != 0 {
							b.Grid[oidx] ^= Star
						}
					}
				}
				if b.Grid[idx] == Cloud {
					for j := 0; j < size; j++ {
						oidx := index(size, other, i, j)
						if b.Grid[oidx]&Guess != 0 && b.Grid[oidx]&Cloud != 0 {
							b.Grid[oidx] ^= Cloud
						}
					}
				}
			}
		}
	}
	for i, c := range b.Grid {
		if c == Guess {
			b.Grid[i] = 0
		}
	}
}

// SolveSequential alternates the combinations and singles rules to a fixed
// point, cleans up, and validates.
func SolveSequential(b *Board) SolveOutcome {
	for {
		if solverCombinations(b) {
			continue
		}
		changed, impossible := solverSingles(b)
		if impossible {
			return Impossible
		}
		if changed {
			continue
		}
		break
	}
	cleanupGrid(b)
	if outcome, _ := Validate(b); outcome == Solved {
		return Unique
	}
	return Undefined
}

// SolveRecursive picks each free GUESS cell in turn and branches on STAR
// versus CLOUD, comparing any two UNIQUE completions it finds for
// equality; two distinct completions mean the puzzle is ambiguous.
func SolveRecursive(b *Board, depth int) SolveOutcome {
	size := b.Size
	var solGrid []CellState
	firstSolution := false

	for i := 0; i < size*size; i++ {
		for _, branch := range [2]CellState{Star, Cloud} {
			if b.Grid[i]&Guess == 0 || b.Grid[i]&branch == 0 {
				continue
			}

			test := b.Clone()
			test.Grid[i] = branch
			sol := SolveSequential(test)

			if sol == Impossible {
				b.Grid[i] ^= branch
				if SolveSequential(b) == Impossible {
					return Impossible
				}
			}

			if sol == Undefined {
				sol = SolveRecursive(test, depth+1)
				if sol == SolveAmbiguous {
					b.Grid[i] ^= branch
					SolveSequential(b)
					return SolveAmbiguous
				}
			}

			if sol == Unique {
				if !firstSolution {
					firstSolution = true
					solGrid = append([]CellState(nil), test.Grid...)
				} else {
					for j := range test.Grid {
						if test.Grid[j] != solGrid[j] {
							return SolveAmbiguous
						}
					}
				}
			}
		}
	}

	if firstSolution {
		copy(b.Grid, solGrid)
		return Unique
	}
	return Impossible
}

// Solve runs the sequential solver, falling through to the recursive
// searcher only when allowRecursive is set (the hard tier's privilege).
func Solve(b *Board, allowRecursive bool) SolveOutcome {
	initializeSolver(b)
	sol := SolveSequential(b)
	if sol == Unique || sol == Impossible {
		return sol
	}
	if allowRecursive {
		return SolveRecursive(b, 0)
	}
	return Impossible
}
