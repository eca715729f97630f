package stellar

import "strings"

// Render draws the board as a size x size grid of two-character cells:
// "* " for STAR, "O " for CLOUD, "x " for CROSS, ". " for empty, and a
// planet's illumination code (matching Description's XY alphabet: X in
// {L,R,X}, Y in {T,B,X}) for PLANET cells.
func (b *Board) Render() string {
	var sb strings.Builder
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			sb.WriteString(cellGlyph(b.Grid[index(b.Size, Row, y, x)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellGlyph(c CellState) string {
	if c&Planet != 0 {
		var x, t byte
		switch {
		case c&Left != 0:
			x = 'L'
		case c&Right != 0:
			x = 'R'
		default:
			x = 'X'
		}
		switch {
		case c&Top != 0:
			t = 'T'
		case c&Bottom != 0:
			t = 'B'
		default:
			t = 'X'
		}
		return string([]byte{x, t})
	}
	switch {
	case c&Star != 0:
		return "* "
	case c&Cloud != 0:
		return "O "
	case c&Cross != 0:
		return "x "
	default:
		return ". "
	}
}
