package walls

import (
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
	"github.com/dshills/gridpuzzle/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newGenRNG(seed uint64, stage string) *rng.RNG {
	configHash := sha256.Sum256([]byte("walls-generator-test"))
	return rng.NewRNG(seed, stage, configHash[:])
}

// TestGenerate_Deterministic: a fixed seed and parameters produce
// byte-identical descriptions across independent runs.
func TestGenerate_Deterministic(t *testing.T) {
	r1 := newGenRNG(123456, "walls_generate")
	r2 := newGenRNG(123456, "walls_generate")

	board1, desc1, err := Generate(4, 4, difficulty.Normal, nil, r1)
	require.NoError(t, err)
	board2, desc2, err := Generate(4, 4, difficulty.Normal, nil, r2)
	require.NoError(t, err)

	assert.Equal(t, desc1, desc2)
	assert.Equal(t, board1.Edges, board2.Edges)
}

func TestGenerate_ProducesSolvableBoard(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.IntRange(3, 6).Draw(rt, "w")
		h := rapid.IntRange(3, 6).Draw(rt, "h")
		tier := rapid.SampledFrom([]difficulty.Tier{difficulty.Easy, difficulty.Normal}).Draw(rt, "tier")
		seed := rapid.Uint64().Draw(rt, "seed")

		r := newGenRNG(seed, "walls_generate")
		board, desc, err := Generate(w, h, tier, nil, r)
		if err != nil {
			if errors.Is(err, ErrGenerationExhausted) {
				return
			}
			rt.Fatalf("Generate: %v", err)
		}

		trial := board.Clone()
		if outcome := Solve(trial, tier); outcome != Solved {
			rt.Fatalf("generated board for %dx%d/%s did not solve: %s", w, h, tier, outcome)
		}

		decoded, err := FromDescription(w, h, desc)
		if err != nil {
			rt.Fatalf("FromDescription: %v", err)
		}
		for i := range board.Edges {
			wantWall := board.Edges[i] == Wall
			gotWall := decoded.Edges[i] == Wall
			if wantWall != gotWall {
				rt.Fatalf("edge %d wall mismatch after roundtrip", i)
			}
		}
	})
}

// TestGenerate_NormalDoesNotSolveAtEasy: a normal-tier puzzle must need
// the hypothetical probe, not fall to single-cell propagation alone.
func TestGenerate_NormalDoesNotSolveAtEasy(t *testing.T) {
	r := newGenRNG(123456, "walls_generate")
	board, _, err := Generate(4, 4, difficulty.Normal, nil, r)
	require.NoError(t, err)

	weaker := board.Clone()
	assert.NotEqual(t, Solved, Solve(weaker, difficulty.Easy))
}

func TestGenerate_ThreeByThreeDowngradesToNormal(t *testing.T) {
	r := newGenRNG(7, "walls_generate")
	board, _, err := Generate(3, 3, difficulty.Hard, nil, r)
	require.NoError(t, err)

	// Hard downgrades to tricky, and tricky on a 3x3 downgrades to normal,
	// so the puzzle must fall to the normal-tier solver.
	trial := board.Clone()
	assert.Equal(t, Solved, Solve(trial, difficulty.Normal))
}
