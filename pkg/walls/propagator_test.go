package walls

import (
	"testing"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
	"github.com/stretchr/testify/assert"
)

func TestPropagateSingleCells_TwoWallsForceRemainingToLine(t *testing.T) {
	b := NewBlank(2, 2)
	// cell0 starts with all four edges WALL (NewBlank's default); free up
	// two of them so the single-cell rule can force them to LINE.
	left := GridToWall(0, 2, 2, DirLeft)
	right := GridToWall(0, 2, 2, DirRight)
	b.Edges[left] = Unknown
	b.Edges[right] = Unknown

	changed := PropagateSingleCells(b)
	assert.True(t, changed)
	assert.Equal(t, Line, b.Edges[left])
	assert.Equal(t, Line, b.Edges[right])
}

func TestPropagateSingleCells_TwoLinesForceRemainingToWall(t *testing.T) {
	b := solved2x2(t)
	up := GridToWall(1, 2, 2, DirUp)
	b.Edges[up] = Unknown

	changed := PropagateSingleCells(b)
	assert.True(t, changed)
	// cell1 already has two LINE edges (left from cell0, down to cell3);
	// its freed-up up edge must be forced back to WALL.
	assert.Equal(t, Wall, b.Edges[up])
}

func TestPropagateSingleCells_NoOpOnQuiescentBoard(t *testing.T) {
	b := solved2x2(t)
	changed := PropagateSingleCells(b)
	assert.False(t, changed)
}

func TestSolve_SolvedBoardStaysSolved(t *testing.T) {
	b := solved2x2(t)
	outcome := Solve(b, difficulty.Easy)
	assert.Equal(t, Solved, outcome)
}

func TestHypotheticalProbe_CommitsForcedEdgeOnSolvableBoard(t *testing.T) {
	b := solved2x2(t)
	// Free the LINE edge between cell1 and cell3; hypothesizing WALL
	// there immediately gives cell1 three WALL edges, so the probe must
	// reject that branch and commit LINE.
	edge := GridToWall(1, 2, 2, DirDown)
	b.Edges[edge] = Unknown

	changed := HypotheticalProbe(b, difficulty.Tricky)
	assert.True(t, changed)
	assert.Equal(t, Line, b.Edges[edge])
}
