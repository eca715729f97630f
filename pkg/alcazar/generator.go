package alcazar

import (
	"errors"
	"fmt"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
	"github.com/dshills/gridpuzzle/pkg/hamilton"
	"github.com/dshills/gridpuzzle/pkg/rng"
)

// maxGenerateAttempts bounds the generator's retry loop, mirroring
// pkg/walls/generator.go's cap of the same name.
const maxGenerateAttempts = 500

// ErrGenerationExhausted is returned when no valid puzzle was found within
// maxGenerateAttempts tries.
var ErrGenerationExhausted = errors.New("alcazar: exhausted generation attempts")

var errRetry = errors.New("alcazar: retry generation")

// Generate builds an Alcazar puzzle of the given dimensions. The solver
// has a single strength, so tier only selects the AlcazarPreset's
// BorderRemovalCap, which defaults to the same value (200) across every
// tier.
//
// Generate runs to completion synchronously; a caller wishing to bound
// cost wraps the call in its own deadline check.
func Generate(w, h int, tier difficulty.Tier, presets *difficulty.Table, r *rng.RNG) (*Board, string, error) {
	if presets == nil {
		presets = difficulty.Default()
	}
	preset, ok := presets.Alcazar[tier]
	if !ok {
		preset = difficulty.AlcazarPreset{Tier: tier, BorderRemovalCap: 200}
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		board, err := attemptGenerate(w, h, preset, r)
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

func attemptGenerate(w, h int, preset difficulty.AlcazarPreset, r *rng.RNG) (*Board, error) {
	path, err := hamilton.Generate(w, h, r)
	if err != nil {
		return nil, fmt.Errorf("alcazar: generating path: %w", err)
	}

	board := NewBlank(w, h)
	for i, p := range path {
		if i < len(path)-1 {
			q := path[i+1]
			switch {
			case q.X-p.X == 1:
				board.EdgeV[VIndex(p.X+1, p.Y, w)] = None
			case q.X-p.X == -1:
				board.EdgeV[VIndex(p.X, p.Y, w)] = None
			case q.Y-p.Y == 1:
				board.EdgeH[HIndex(p.X, p.Y+1, w)] = None
			case q.Y-p.Y == -1:
				board.EdgeH[HIndex(p.X, p.Y, w)] = None
			}
		}
		if i == 0 || i == len(path)-1 {
			switch {
			case p.X == 0:
				board.EdgeV[VIndex(0, p.Y, w)] = None
			case p.X == w-1:
				board.EdgeV[VIndex(w, p.Y, w)] = None
			case p.Y == 0:
				board.EdgeH[HIndex(p.X, 0, w)] = None
			case p.Y == h-1:
				board.EdgeH[HIndex(p.X, h, w)] = None
			}
		}
	}

	var wallRefs []edgeRef
	for i, e := range board.EdgeH {
		if e == Wall {
			wallRefs = append(wallRefs, edgeRef{true, i})
		}
	}
	for i, e := range board.EdgeV {
		if e == Wall {
			wallRefs = append(wallRefs, edgeRef{false, i})
		}
	}
	r.Shuffle(len(wallRefs), func(i, j int) { wallRefs[i], wallRefs[j] = wallRefs[j], wallRefs[i] })

	bordernum := 0
	removalCap := preset.BorderRemovalCap
	if removalCap <= 0 {
		removalCap = 200
	}

	for _, ref := range wallRefs {
		onBorder, atCap := borderStatus(ref, w, h, bordernum, removalCap)
		if atCap {
			continue
		}
		if partner, ok := cornerPartner(ref, w, h); ok && board.get(partner) != Wall {
			continue
		}

		trial := board.Clone()
		trial.set(ref, None)
		if Solve(trial) == Solved {
			board.set(ref, None)
			if onBorder {
				bordernum++
			}
		}
	}

	final := board.Clone()
	if Solve(final) != Solved {
		return nil, errRetry
	}

	for i, e := range board.EdgeH {
		if e == Wall {
			board.FixedH[i] = true
		}
	}
	for i, e := range board.EdgeV {
		if e == Wall {
			board.FixedV[i] = true
		}
	}
	return board, nil
}

// borderStatus reports whether ref lies on the grid's outer border and
// whether bordernum has already reached cap, in which case it must be
// skipped regardless of the solve outcome.
func borderStatus(ref edgeRef, w, h, bordernum, cap int) (onBorder, atCap bool) {
	if ref.horizontal {
		y := ref.index / w
		onBorder = y == 0 || y == h
	} else {
		x := ref.index % (w + 1)
		onBorder = x == 0 || x == w
	}
	return onBorder, onBorder && bordernum >= cap
}

// cornerPartner returns the other border edge meeting at the same grid
// corner as ref, if ref is itself a corner edge. A corner cell may not end
// up with both of its border edges open at once: that would allow an
// ambiguous short-circuit exit.
func cornerPartner(ref edgeRef, w, h int) (edgeRef, bool) {
	if ref.horizontal {
		x, y := ref.index%w, ref.index/w
		switch {
		case x == 0 && y == 0:
			return edgeRef{false, VIndex(0, 0, w)}, true
		case x == w-1 && y == 0:
			return edgeRef{false, VIndex(w, 0, w)}, true
		case x == 0 && y == h:
			return edgeRef{false, VIndex(0, h-1, w)}, true
		case x == w-1 && y == h:
			return edgeRef{false, VIndex(w, h-1, w)}, true
		}
		return edgeRef{}, false
	}
	x, y := ref.index%(w+1), ref.index/(w+1)
	switch {
	case x == 0 && y == 0:
		return edgeRef{true, HIndex(0, 0, w)}, true
	case x == w && y == 0:
		return edgeRef{true, HIndex(w-1, 0, w)}, true
	case x == 0 && y == h-1:
		return edgeRef{true, HIndex(0, h, w)}, true
	case x == w && y == h-1:
		return edgeRef{true, HIndex(w-1, h, w)}, true
	}
	return edgeRef{}, false
}
