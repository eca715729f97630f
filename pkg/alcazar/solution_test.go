package alcazar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// puzzle2x2 carves the path cell0->cell1->cell3->cell2 with exits at
// cell0's left border and cell2's bottom border, leaves the path edges free
// and fixes every remaining wall.
func puzzle2x2(t *testing.T) *Board {
	t.Helper()
	b := NewBlank(2, 2)
	b.EdgeV[VIndex(0, 0, 2)] = None // exit left of cell0
	b.EdgeV[VIndex(1, 0, 2)] = None // cell0 - cell1
	b.EdgeH[HIndex(1, 1, 2)] = None // cell1 - cell3
	b.EdgeV[VIndex(1, 1, 2)] = None // cell3 - cell2
	b.EdgeH[HIndex(0, 2, 2)] = None // exit below cell2
	for i, e := range b.EdgeH {
		if e == Wall {
			b.FixedH[i] = true
		}
	}
	for i, e := range b.EdgeV {
		if e == Wall {
			b.FixedV[i] = true
		}
	}
	return b
}

func TestSolutionMoves_SolvesForcedPuzzle(t *testing.T) {
	b := puzzle2x2(t)

	moves := SolutionMoves(b)
	assert.True(t, strings.HasPrefix(moves, "S;"))

	applied, completed, err := ApplyMove(b, moves)
	require.NoError(t, err)
	assert.False(t, completed, "solver-origin move must not flag completion")

	outcome, _ := Validate(applied)
	assert.Equal(t, Solved, outcome)
}

func TestSolutionMoves_MatchesDirectSolve(t *testing.T) {
	b := puzzle2x2(t)
	expected := b.Clone()
	Solve(expected)

	applied, _, err := ApplyMove(b, SolutionMoves(b))
	require.NoError(t, err)
	assert.Equal(t, expected.EdgeH, applied.EdgeH)
	assert.Equal(t, expected.EdgeV, applied.EdgeV)
}

func TestApplyMove_FixedEdgeIsSkippedSilently(t *testing.T) {
	b := puzzle2x2(t)

	// HIndex(0,0) is the wall above cell0, fixed by puzzle2x2; its flat
	// move index equals its EdgeH index.
	idx := HIndex(0, 0, 2)
	require.True(t, b.FixedH[idx])

	result, _, err := ApplyMove(b, "P0")
	require.NoError(t, err)
	assert.Equal(t, Wall, result.EdgeH[idx], "fixed edge keeps its value")
	assert.False(t, result.ErrorH[idx])
}
