package walls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_AllWallBoard(t *testing.T) {
	b := NewBlank(2, 2)
	want := "+-+-+\n| | |\n+-+-+\n| | |\n+-+-+\n"
	assert.Equal(t, want, b.Render())
}

func TestRender_MarksCommittedLine(t *testing.T) {
	b := NewBlank(2, 2)
	b.Edges[GridToWall(0, 2, 2, DirRight)] = Line
	got := b.Render()
	assert.Contains(t, got, "*")
}
