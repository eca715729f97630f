package difficulty

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_WallsTiersMatchOriginal(t *testing.T) {
	d := Default()
	assert.Equal(t, 0.25, d.Walls[Easy].BorderReduceFraction)
	assert.Equal(t, 0.5, d.Walls[Normal].BorderReduceFraction)
	assert.Equal(t, 1.0, d.Walls[Tricky].BorderReduceFraction)
	assert.True(t, d.Walls[Hard].FullBorderRemoval)
}

func TestLoadFromFile_OverridesAndFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "difficulty.yml")
	content := []byte("walls:\n  easy:\n    tier: easy\n    border_reduce_fraction: 0.1\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	table, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.1, table.Walls[Easy].BorderReduceFraction)
	// Untouched tiers still carry the defaults.
	assert.Equal(t, 0.5, table.Walls[Normal].BorderReduceFraction)
	assert.True(t, table.Walls[Hard].FullBorderRemoval)
}

func TestValidate_RejectsOutOfRangeFraction(t *testing.T) {
	table := Default()
	table.Walls[Easy] = WallsPreset{Tier: Easy, BorderReduceFraction: 1.5}
	assert.Error(t, table.Validate())
}

func TestValidate_RejectsNegativeCap(t *testing.T) {
	table := Default()
	table.Alcazar[Easy] = AlcazarPreset{Tier: Easy, BorderRemovalCap: -1}
	assert.Error(t, table.Validate())
}
