package alcazar

import (
	"testing"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		in   string
		want Params
	}{
		{"4x4dn", Params{W: 4, H: 4, Difficulty: difficulty.Normal}},
		{"5", Params{W: 5, H: 5, Difficulty: difficulty.Easy}},
		{"3x7dh", Params{W: 3, H: 7, Difficulty: difficulty.Hard}},
	}
	for _, tc := range tests {
		got, err := ParseParams(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParamsValidate(t *testing.T) {
	p, err := ParseParams("2x5")
	require.NoError(t, err)
	assert.Error(t, p.Validate())

	// Alcazar has no tricky tier, so 't' is an unknown difficulty here.
	p, err = ParseParams("4x4dt")
	require.NoError(t, err)
	assert.Error(t, p.Validate())

	p, err = ParseParams("4x4dn")
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

func TestParamsString_Roundtrip(t *testing.T) {
	for _, in := range []string{"4x4dn", "3x3de", "9x5dh"} {
		p, err := ParseParams(in)
		require.NoError(t, err)
		assert.Equal(t, in, p.String())
	}
}
