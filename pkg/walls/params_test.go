package walls

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
		{"6x4dt", Params{W: 6, H: 4, Difficulty: difficulty.Tricky}},
		{"5", Params{W: 5, H: 5, Difficulty: difficulty.Easy}},
		{"3x7", Params{W: 3, H: 7, Difficulty: difficulty.Easy}},
		{"8x8dh", Params{W: 8, H: 8, Difficulty: difficulty.Hard}},
	}
	for _, tc := range tests {
		got, err := ParseParams(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseParams_SyntaxErrors(t *testing.T) {
	for _, in := range []string{"", "x4", "4x", "4x4d", "4x4dn!", "wide"} {
		_, err := ParseParams(in)
		assert.Error(t, err, in)
	}
}

func TestParamsValidate(t *testing.T) {
	p, err := ParseParams("4x4dn")
	require.NoError(t, err)
	assert.NoError(t, p.Validate())

	p, err = ParseParams("2x5")
	require.NoError(t, err)
	assert.Error(t, p.Validate(), "width below three")

	p, err = ParseParams("5x2")
	require.NoError(t, err)
	assert.Error(t, p.Validate(), "height below three")

	// An unknown difficulty character parses but fails validation.
	p, err = ParseParams("4x4dq")
	require.NoError(t, err)
	assert.Error(t, p.Validate(), "unknown difficulty character")
}

func TestParamsString_Roundtrip(t *testing.T) {
	for _, in := range []string{"4x4dn", "6x4dt", "3x3de", "9x5dh"} {
		p, err := ParseParams(in)
		require.NoError(t, err)
		assert.Equal(t, in, p.String())
	}
}
