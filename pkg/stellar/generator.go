package stellar

import (
	"errors"
	"fmt"

	"github.com/dshills/gridpuzzle/pkg/rng"
)

const maxGenerateAttempts = 10000

// ErrGenerationExhausted is returned when Generate cannot find a uniquely
// solvable planet placement within maxGenerateAttempts tries.
var ErrGenerationExhausted = errors.New("stellar: exhausted generation attempts")

// illuminationForRoll maps a 0..8 roll to one of the nine legal planet
// illumination states: fully dark, four half-illuminated, four
// three-quarter.
func illuminationForRoll(roll int) CellState {
	switch roll {
	case 0:
		return Planet
	case 1:
		return Planet | Left
	case 2:
		return Planet | Right
	case 3:
		return Planet | Top
	case 4:
		return Planet | Bottom
	case 5:
		return Planet | Left | Top
	case 6:
		return Planet | Left | Bottom
	case 7:
		return Planet | Right | Top
	default:
		return Planet | Right | Bottom
	}
}

// Generate builds a uniquely solvable Stellar board and its description.
//
// Unlike Walls and Alcazar there is no difficulty parameter: generation
// screens candidates with the sequential solver alone and keeps only boards
// it solves uniquely, so no returned board needs the recursive searcher.
// Tier only matters later, to Solve, when a player or the CLI asks for a
// solution.
func Generate(size int, r *rng.RNG) (*Board, string, error) {
	if size < 3 {
		return nil, "", fmt.Errorf("stellar: grid size must be at least 3x3")
	}

	pos := make([]int, size)
	var board *Board

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		for i := range pos {
			pos[i] = i
		}
		r.ShuffleInts(pos)

		candidate := NewBlank(size)
		for i := 0; i < size; i++ {
			idx := i + size*pos[i]
			candidate.Grid[idx] = illuminationForRoll(r.RandomUpto(9))
		}

		trial := candidate.Clone()
		if Solve(trial, false) == Unique {
			board = candidate
			break
		}
	}
	if board == nil {
		return nil, "", ErrGenerationExhausted
	}

	// Minimize: try erasing each planet in turn, keeping the erasure only if
	// the board still solves uniquely without it.
	for i := 0; i < size; i++ {
		idx := i + size*pos[i]
		saved := board.Grid[idx]
		board.Grid[idx] = 0

		trial := board.Clone()
		if Solve(trial, false) != Unique {
			board.Grid[idx] = saved
		}
	}

	return board, board.Description(), nil
}
