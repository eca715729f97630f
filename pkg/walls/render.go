package walls

import "strings"

// Render draws the board as a box-drawing ASCII grid: '-'/'|' mark a
// committed WALL edge, '*' marks a committed LINE (open corridor) edge,
// and a blank marks an UNKNOWN edge.
func (b *Board) Render() string {
	var sb strings.Builder

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			sb.WriteByte('+')
			sb.WriteByte(horizGlyph(b.Edges[GridToWall(y*b.W+x, b.W, b.H, DirUp)]))
		}
		sb.WriteString("+\n")

		for x := 0; x < b.W; x++ {
			sb.WriteByte(vertGlyph(b.Edges[GridToWall(y*b.W+x, b.W, b.H, DirLeft)]))
			sb.WriteByte(' ')
		}
		sb.WriteByte(vertGlyph(b.Edges[GridToWall(y*b.W+b.W-1, b.W, b.H, DirRight)]))
		sb.WriteByte('\n')
	}

	for x := 0; x < b.W; x++ {
		sb.WriteByte('+')
		sb.WriteByte(horizGlyph(b.Edges[GridToWall((b.H-1)*b.W+x, b.W, b.H, DirDown)]))
	}
	sb.WriteString("+\n")

	return sb.String()
}

func horizGlyph(e EdgeState) byte {
	switch e {
	case Wall:
		return '-'
	case Line:
		return '*'
	default:
		return ' '
	}
}

func vertGlyph(e EdgeState) byte {
	switch e {
	case Wall:
		return '|'
	case Line:
		return '*'
	default:
		return ' '
	}
}
