package stellar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// solvedNoPlanet is a 3x3 board with a valid STAR/CLOUD permutation pair
// and no planets at all (legal: a line may hold zero planets).
func solvedNoPlanet() *Board {
	b := NewBlank(3)
	b.Grid[index(3, Row, 0, 0)] = Star
	b.Grid[index(3, Row, 0, 1)] = Cloud
	b.Grid[index(3, Row, 1, 1)] = Star
	b.Grid[index(3, Row, 1, 2)] = Cloud
	b.Grid[index(3, Row, 2, 2)] = Star
	b.Grid[index(3, Row, 2, 0)] = Cloud
	return b
}

// solvedWithDarkPlanet extends solvedNoPlanet with a fully dark planet at
// (row0, col2), hand-verified against check_line for both its row
// (star@0 < cloud@1 < planet@2, DARK) and its column (planet@0 < cloud@1 <
// star@2, DARK).
func solvedWithDarkPlanet() *Board {
	b := solvedNoPlanet()
	b.Grid[index(3, Row, 0, 2)] = Planet
	return b
}

func TestCheckLine_Table(t *testing.T) {
	tests := []struct {
		star, cloud, planet int
		illum               illumination
		want                bool
	}{
		{0, 1, 3, leftTop, true},
		{3, 1, 0, rightBottom, true},
		{0, 2, 3, dark, true},
		{3, 2, 1, leftTop, false},
	}
	for _, tc := range tests {
		got := checkLine(tc.star, tc.cloud, tc.planet, tc.illum)
		assert.Equal(t, tc.want, got,
			"checkLine(star=%d, cloud=%d, planet=%d, illum=%d)", tc.star, tc.cloud, tc.planet, tc.illum)
	}
}

func TestValidate_SolvedNoPlanet(t *testing.T) {
	outcome, rep := Validate(solvedNoPlanet())
	assert.Equal(t, Solved, outcome)
	assert.False(t, rep.HasErrors())
}

func TestValidate_SolvedWithDarkPlanet(t *testing.T) {
	outcome, rep := Validate(solvedWithDarkPlanet())
	assert.Equal(t, Solved, outcome)
	assert.False(t, rep.HasErrors())
}

func TestValidate_DuplicateStarInRowIsAmbiguous(t *testing.T) {
	b := solvedNoPlanet()
	b.Grid[index(3, Row, 0, 2)] = Star // row0 now has two stars
	outcome, rep := Validate(b)
	assert.Equal(t, Ambiguous, outcome)
	assert.True(t, rep.HasErrors())
	assert.NotEqual(t, ErrorState(0), b.Errors[index(3, Row, 0, 0)])
	assert.NotEqual(t, ErrorState(0), b.Errors[index(3, Row, 0, 2)])
}

func TestValidate_MissingCloudInRowIsAmbiguous(t *testing.T) {
	b := solvedNoPlanet()
	b.Grid[index(3, Row, 0, 1)] = 0 // row0 loses its only cloud
	outcome, _ := Validate(b)
	assert.Equal(t, Ambiguous, outcome)
}

func TestValidate_AdjacentStarWithoutIlluminationIsError(t *testing.T) {
	// Planet at (row0, col1) with star immediately to its left (col0) but
	// no LEFT bit set: violates the adjacency rule (ERROR_LEFT).
	b := NewBlank(3)
	b.Grid[index(3, Row, 0, 0)] = Star
	b.Grid[index(3, Row, 0, 1)] = Planet
	b.Grid[index(3, Row, 0, 2)] = Cloud

	outcome, _ := Validate(b)
	assert.Equal(t, Ambiguous, outcome)
	assert.NotEqual(t, ErrorState(0), b.Errors[index(3, Row, 0, 1)]&ErrorLeft)
}

func TestValidate_LineRuleViolationMarksPlanet(t *testing.T) {
	// Planet at (row0, col2) marked dark, but star/cloud order doesn't
	// satisfy DARK's ordering (cloud isn't strictly between star and
	// planet in either direction).
	b := NewBlank(3)
	b.Grid[index(3, Row, 0, 0)] = Cloud
	b.Grid[index(3, Row, 0, 1)] = Star
	b.Grid[index(3, Row, 0, 2)] = Planet

	outcome, _ := Validate(b)
	assert.Equal(t, Ambiguous, outcome)
	assert.NotEqual(t, ErrorState(0), b.Errors[index(3, Row, 0, 2)])
}
