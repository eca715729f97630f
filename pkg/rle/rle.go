package rle

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode run-length encodes walls, where walls[i] true means position i is a
// wall and false means it is open. The result uses digit runs for
// consecutive walls and letter runs for consecutive open positions.
func Encode(walls []bool) string {
	var b strings.Builder
	wrun, erun := 0, 0

	for _, wall := range walls {
		switch {
		case !wall && wrun > 0:
			fmt.Fprintf(&b, "%d", wrun)
			wrun, erun = 0, 0
		case wall && erun > 0:
			for erun >= 26 {
				b.WriteByte('z')
				erun -= 26
			}
			if erun == 0 {
				wrun = 0
			} else {
				b.WriteByte(byte('a' + erun - 1))
				erun = 0
				wrun = -1
			}
		}
		if wall {
			wrun++
		} else {
			erun++
		}
	}
	if wrun > 0 {
		fmt.Fprintf(&b, "%d", wrun)
	}
	// An open run that reaches the end of the array may be arbitrarily long,
	// so chain 'z's the same way a run interrupted by a wall would.
	for erun >= 26 {
		b.WriteByte('z')
		erun -= 26
	}
	if erun > 0 {
		b.WriteByte(byte('a' + erun - 1))
	}
	return b.String()
}

// Decode parses an rle-encoded description into a []bool of exactly
// wantLen positions (true = wall, false = open). It returns an error if the
// description contains an invalid character or the decoded length does not
// equal wantLen.
func Decode(desc string, wantLen int) ([]bool, error) {
	out := make([]bool, 0, wantLen)
	i := 0
	for i < len(desc) {
		c := desc[i]
		switch {
		case c >= '0' && c <= '9':
			j := i
			for j < len(desc) && desc[j] >= '0' && desc[j] <= '9' {
				j++
			}
			k, err := strconv.Atoi(desc[i:j])
			if err != nil || k <= 0 {
				return nil, fmt.Errorf("rle: invalid run length %q", desc[i:j])
			}
			for n := 0; n < k; n++ {
				out = append(out, true)
			}
			i = j
		case c >= 'a' && c <= 'z':
			n := int(c-'a') + 1
			for k := 0; k < n; k++ {
				out = append(out, false)
			}
			i++
			if c != 'z' {
				// A non-z letter implies one trailing wall position, unless
				// this is the final token in the description and no room
				// remains: an open run that ends flush with the grid has no
				// cell left for the implicit wall, so it is dropped.
				if i < len(desc) || len(out) < wantLen {
					out = append(out, true)
				}
			}
		default:
			return nil, fmt.Errorf("rle: invalid character %q at offset %d", c, i)
		}
	}
	if len(out) != wantLen {
		return nil, fmt.Errorf("rle: decoded length %d, want %d", len(out), wantLen)
	}
	return out, nil
}

// Validate checks that desc is well-formed and decodes to exactly wantLen
// positions, without allocating the decoded slice for the caller.
func Validate(desc string, wantLen int) error {
	_, err := Decode(desc, wantLen)
	return err
}
