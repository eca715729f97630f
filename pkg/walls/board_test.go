package walls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionRoundtrip(t *testing.T) {
	b := NewBlank(3, 3)
	b.Edges[0] = Unknown
	b.Edges[2] = Unknown

	desc := b.Description()
	decoded, err := FromDescription(3, 3, desc)
	require.NoError(t, err)

	for i := range b.Edges {
		assert.Equal(t, b.Edges[i] == Wall, decoded.Edges[i] == Wall, "edge %d", i)
	}
}

func TestFromDescription_RejectsBadLength(t *testing.T) {
	_, err := FromDescription(3, 3, "9999")
	assert.Error(t, err)
}

func TestFromDescription_MarksWallsFixed(t *testing.T) {
	b := NewBlank(2, 2)
	desc := b.Description()
	decoded, err := FromDescription(2, 2, desc)
	require.NoError(t, err)
	for i, e := range decoded.Edges {
		if e == Wall {
			assert.True(t, decoded.Fixed[i], "wall edge %d should be fixed", i)
		}
	}
}

func TestGridToWall_LeftRightAreSharedBetweenNeighbors(t *testing.T) {
	w, h := 4, 3
	for cell := 0; cell < w*h; cell++ {
		x := cell % w
		if x == w-1 {
			continue
		}
		right := GridToWall(cell, w, h, DirRight)
		neighborLeft := GridToWall(cell+1, w, h, DirLeft)
		assert.Equal(t, right, neighborLeft, "cell %d's right edge should equal its neighbor's left edge", cell)
	}
}

func TestGridToWall_UpDownAreSharedBetweenNeighbors(t *testing.T) {
	w, h := 4, 3
	for cell := 0; cell < w*h; cell++ {
		y := cell / w
		if y == h-1 {
			continue
		}
		down := GridToWall(cell, w, h, DirDown)
		neighborUp := GridToWall(cell+w, w, h, DirUp)
		assert.Equal(t, down, neighborUp, "cell %d's down edge should equal its neighbor's up edge", cell)
	}
}

func TestIsBorderWall(t *testing.T) {
	w, h := 3, 3
	assert.True(t, IsBorderWall(GridToWall(0, w, h, DirLeft), w, h))
	assert.True(t, IsBorderWall(GridToWall(0, w, h, DirUp), w, h))
	assert.False(t, IsBorderWall(GridToWall(4, w, h, DirLeft), w, h), "center cell's left edge is interior")
}

func TestClone_IsIndependentOfOriginal(t *testing.T) {
	b := NewBlank(2, 2)
	clone := b.Clone()
	clone.Edges[0] = Line
	clone.Fixed[0] = true
	clone.Error[0] = true

	assert.Equal(t, Wall, b.Edges[0])
	assert.False(t, b.Fixed[0])
	assert.False(t, b.Error[0])
}
