package stellar

import (
	"fmt"
	"strings"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
)

// Params is the decoded form of a Stellar parameter string "S[d<c>]",
// where S is the grid size and <c> is n or h.
type Params struct {
	Size       int
	Difficulty difficulty.Tier
}

var diffChars = map[byte]difficulty.Tier{
	'n': difficulty.Normal,
	'h': difficulty.Hard,
}

var diffEncode = map[difficulty.Tier]byte{
	difficulty.Normal: 'n',
	difficulty.Hard:   'h',
}

// ParseParams decodes a parameter string. A missing difficulty suffix
// defaults to normal.
func ParseParams(s string) (Params, error) {
	p := Params{Difficulty: difficulty.Normal}

	rest := s
	size, rest, ok := leadingInt(rest)
	if !ok {
		return Params{}, fmt.Errorf("stellar: parameter string %q: expected size", s)
	}
	p.Size = size

	if strings.HasPrefix(rest, "d") {
		if len(rest) < 2 {
			return Params{}, fmt.Errorf("stellar: parameter string %q: missing difficulty character", s)
		}
		tier, ok := diffChars[rest[1]]
		if !ok {
			tier = difficulty.Tier(rest[1:2])
		}
		p.Difficulty = tier
		rest = rest[2:]
	}

	if rest != "" {
		return Params{}, fmt.Errorf("stellar: parameter string %q: trailing %q", s, rest)
	}
	return p, nil
}

func leadingInt(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:], i > 0
}

// Validate checks the decoded parameters for playable values: size at
// least 3, difficulty either normal or hard.
func (p Params) Validate() error {
	if p.Size < 3 {
		return fmt.Errorf("stellar: grid size must be at least 3x3")
	}
	if _, ok := diffEncode[p.Difficulty]; !ok {
		return fmt.Errorf("stellar: unknown puzzle difficulty level")
	}
	return nil
}

// String re-encodes the parameters.
func (p Params) String() string {
	c, ok := diffEncode[p.Difficulty]
	if !ok {
		c = 'n'
	}
	return fmt.Sprintf("%dd%c", p.Size, c)
}
