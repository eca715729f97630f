package walls

import (
	"errors"
	"fmt"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
	"github.com/dshills/gridpuzzle/pkg/hamilton"
	"github.com/dshills/gridpuzzle/pkg/rng"
)

// maxGenerateAttempts bounds the difficulty-monotonicity retry loop; a
// library call that never returns is unacceptable, so exhaustion surfaces
// as an error instead of looping forever.
const maxGenerateAttempts = 500

// ErrGenerationExhausted is returned when no valid puzzle was found within
// maxGenerateAttempts tries.
var ErrGenerationExhausted = errors.New("walls: exhausted generation attempts")

var tierOrder = map[difficulty.Tier]int{
	difficulty.Easy:   0,
	difficulty.Normal: 1,
	difficulty.Tricky: 2,
	difficulty.Hard:   3,
}

func prevTier(t difficulty.Tier) (difficulty.Tier, bool) {
	switch t {
	case difficulty.Hard:
		return difficulty.Tricky, true
	case difficulty.Tricky:
		return difficulty.Normal, true
	case difficulty.Normal:
		return difficulty.Easy, true
	default:
		return "", false
	}
}

// Generate builds a Walls puzzle of the given dimensions and difficulty
// tier. Hard is solved as Tricky (no solver technique beyond the full
// hypothetical probe exists yet), and on a 3x3 grid Tricky and above
// downgrade to Normal: the smallest grid cannot support the harder
// deductions.
//
// Generate runs to completion synchronously; it carries no internal
// deadline or cancellation. A caller wishing to bound cost wraps the call
// in its own deadline check and discards a result that returns too late.
func Generate(w, h int, tier difficulty.Tier, presets *difficulty.Table, r *rng.RNG) (*Board, string, error) {
	if presets == nil {
		presets = difficulty.Default()
	}

	effective := tier
	if effective == difficulty.Hard {
		effective = difficulty.Tricky
	}
	if w == 3 && h == 3 && tierOrder[effective] >= tierOrder[difficulty.Tricky] {
		effective = difficulty.Normal
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		board, err := attemptGenerate(w, h, tier, effective, presets, r)
		if err == errRetry {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return board, board.Description(), nil
	}
	return nil, "", fmt.Errorf("%w: %d attempts", ErrGenerationExhausted, maxGenerateAttempts)
}

var errRetry = errors.New("walls: retry generation")

// attemptGenerate runs one carve-and-erase round. The border-reduction
// budget follows the requested tier while every solve runs at the
// effective (possibly downgraded) tier: a hard request keeps hard's full
// border budget even when its solving falls back to tricky.
func attemptGenerate(w, h int, requested, effective difficulty.Tier, presets *difficulty.Table, r *rng.RNG) (*Board, error) {
	path, err := hamilton.Generate(w, h, r)
	if err != nil {
		return nil, fmt.Errorf("walls: generating path: %w", err)
	}

	board := NewBlank(w, h)
	for i := 0; i < len(path); i++ {
		p := path[i]
		cell := p.X + p.Y*w
		if i < len(path)-1 {
			q := path[i+1]
			switch {
			case q.X-p.X == 1:
				board.Edges[GridToWall(cell, w, h, DirRight)] = Unknown
			case q.X-p.X == -1:
				board.Edges[GridToWall(cell, w, h, DirLeft)] = Unknown
			case q.Y-p.Y == 1:
				board.Edges[GridToWall(cell, w, h, DirDown)] = Unknown
			case q.Y-p.Y == -1:
				board.Edges[GridToWall(cell, w, h, DirUp)] = Unknown
			}
		}
		if i == 0 || i == len(path)-1 {
			switch {
			case p.X == 0:
				board.Edges[GridToWall(cell, w, h, DirLeft)] = Unknown
			case p.X == w-1:
				board.Edges[GridToWall(cell, w, h, DirRight)] = Unknown
			case p.Y == 0:
				board.Edges[GridToWall(cell, w, h, DirUp)] = Unknown
			case p.Y == h-1:
				board.Edges[GridToWall(cell, w, h, DirDown)] = Unknown
			}
		}
	}

	var borderIdx, interiorIdx []int
	for i, e := range board.Edges {
		if e != Wall {
			continue
		}
		if IsBorderWall(i, w, h) {
			borderIdx = append(borderIdx, i)
		} else {
			interiorIdx = append(interiorIdx, i)
		}
	}

	r.ShuffleInts(borderIdx)

	preset, ok := presets.Walls[requested]
	if !ok {
		preset = difficulty.WallsPreset{Tier: requested, BorderReduceFraction: 1.0}
	}

	borderReduce := len(borderIdx)
	if !preset.FullBorderRemoval {
		bound := int(float64(len(borderIdx)) * preset.BorderReduceFraction)
		if bound > 0 {
			borderReduce = r.RandomUpto(bound)
		} else {
			borderReduce = 0
		}
	}
	if borderReduce > len(borderIdx) {
		borderReduce = len(borderIdx)
	}

	wallIndices := make([]int, 0, len(interiorIdx)+borderReduce)
	wallIndices = append(wallIndices, interiorIdx...)
	wallIndices = append(wallIndices, borderIdx[:borderReduce]...)
	r.ShuffleInts(wallIndices)

	for _, idx := range wallIndices {
		trial := board.Clone()
		trial.Edges[idx] = Unknown
		if Solve(trial, effective) == Solved {
			board.Edges[idx] = Unknown
		}
	}

	final := board.Clone()
	if Solve(final, effective) != Solved {
		return nil, errRetry
	}

	if effective != difficulty.Easy {
		prior, ok := prevTier(effective)
		if ok {
			weaker := board.Clone()
			if Solve(weaker, prior) == Solved {
				return nil, errRetry
			}
		}
	}

	for i, e := range board.Edges {
		if e == Wall {
			board.Fixed[i] = true
		}
	}
	return board, nil
}
