package walls

import (
	"fmt"
	"strings"

	"github.com/dshills/gridpuzzle/pkg/difficulty"
)

// Params is the decoded form of a Walls parameter string "WxH[d<c>]",
// where <c> is one of e/n/t/h.
type Params struct {
	W, H       int
	Difficulty difficulty.Tier
}

var diffChars = map[byte]difficulty.Tier{
	'e': difficulty.Easy,
	'n': difficulty.Normal,
	't': difficulty.Tricky,
	'h': difficulty.Hard,
}

var diffEncode = map[difficulty.Tier]byte{
	difficulty.Easy:   'e',
	difficulty.Normal: 'n',
	difficulty.Tricky: 't',
	difficulty.Hard:   'h',
}

// ParseParams decodes a parameter string. A missing height reuses the
// width; a missing difficulty suffix defaults to easy. Syntax errors
// (leading non-digits, trailing garbage) are reported immediately; range
// errors (dimensions below 3, unknown difficulty character) are left to
// Validate.
func ParseParams(s string) (Params, error) {
	p := Params{Difficulty: difficulty.Easy}

	rest := s
	w, rest, ok := leadingInt(rest)
	if !ok {
		return Params{}, fmt.Errorf("walls: parameter string %q: expected width", s)
	}
	p.W, p.H = w, w

	if strings.HasPrefix(rest, "x") {
		h, r, ok := leadingInt(rest[1:])
		if !ok {
			return Params{}, fmt.Errorf("walls: parameter string %q: expected height after 'x'", s)
		}
		p.H, rest = h, r
	}

	if strings.HasPrefix(rest, "d") {
		if len(rest) < 2 {
			return Params{}, fmt.Errorf("walls: parameter string %q: missing difficulty character", s)
		}
		tier, ok := diffChars[rest[1]]
		if !ok {
			// Keep the unknown character so Validate surfaces it.
			tier = difficulty.Tier(rest[1 : 2])
		}
		p.Difficulty = tier
		rest = rest[2:]
	}

	if rest != "" {
		return Params{}, fmt.Errorf("walls: parameter string %q: trailing %q", s, rest)
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

// Validate checks the decoded parameters for playable values.
func (p Params) Validate() error {
	if p.W < 3 {
		return fmt.Errorf("walls: width must be at least three")
	}
	if p.H < 3 {
		return fmt.Errorf("walls: height must be at least three")
	}
	if _, ok := diffEncode[p.Difficulty]; !ok {
		return fmt.Errorf("walls: unknown difficulty level")
	}
	return nil
}

// String re-encodes the parameters, difficulty suffix included.
func (p Params) String() string {
	c, ok := diffEncode[p.Difficulty]
	if !ok {
		c = 'e'
	}
	return fmt.Sprintf("%dx%dd%c", p.W, p.H, c)
}
