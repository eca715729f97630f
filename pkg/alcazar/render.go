package alcazar

import "strings"

// Render draws the board as a box-drawing ASCII grid: '-'/'|' mark a
// committed WALL edge, '*' marks a committed PATH edge, and a blank marks
// NONE.
func (b *Board) Render() string {
	var sb strings.Builder

	for y := 0; y <= b.H; y++ {
		for x := 0; x < b.W; x++ {
			sb.WriteByte('+')
			sb.WriteByte(horizGlyph(b.EdgeH[HIndex(x, y, b.W)]))
		}
		sb.WriteString("+\n")

		if y == b.H {
			break
		}
		for x := 0; x <= b.W; x++ {
			sb.WriteByte(vertGlyph(b.EdgeV[VIndex(x, y, b.W)]))
			if x < b.W {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func horizGlyph(e EdgeState) byte {
	switch e {
	case Wall:
		return '-'
	case Path:
		return '*'
	default:
		return ' '
	}
}

func vertGlyph(e EdgeState) byte {
	switch e {
	case Wall:
		return '|'
	case Path:
		return '*'
	default:
		return ' '
	}
}
