package stellar

import "github.com/dshills/gridpuzzle/pkg/report"

// Outcome is the compact result of Validate.
type Outcome string

const (
	Solved    Outcome = "SOLVED"
	Ambiguous Outcome = "AMBIGUOUS"
)

// illumination is the planet's lit side along one axis, derived from its
// LEFT/RIGHT (row axis) or TOP/BOTTOM (column axis) bits.
type illumination int

const (
	leftTop illumination = iota
	rightBottom
	dark
)

// checkLine reports whether star, cloud and planet positions (1-D indices
// along a row or column) are consistent with the planet's illumination:
// the star must sit on the lit side with the cloud not between it and the
// planet, except for a dark planet, where the cloud sits between them and
// blocks the star from either direction.
func checkLine(starPos, cloudPos, planetPos int, illum illumination) bool {
	switch illum {
	case leftTop:
		return starPos < planetPos && (cloudPos < starPos || planetPos < cloudPos)
	case rightBottom:
		return planetPos < starPos && (starPos < cloudPos || cloudPos < planetPos)
	default:
		return (starPos < cloudPos && cloudPos < planetPos) ||
			(planetPos < cloudPos && cloudPos < starPos)
	}
}

// planetPosition returns the position of the unique planet along the given
// row or column, or -1 if there is none.
func planetPosition(b *Board, axis Axis, line int) int {
	pos := -1
	for i := 0; i < b.Size; i++ {
		if b.Grid[index(b.Size, axis, line, i)]&Planet != 0 {
			pos = i
		}
	}
	return pos
}

// checkAxis validates every row (axis == Row) or every column
// (axis == Column), marking per-cell error bits and error positions on rep.
func checkAxis(b *Board, axis Axis, rep *report.Report) bool {
	solved := true
	size := b.Size

	nearErr, farErr := ErrorLeft, ErrorRight
	if axis == Column {
		nearErr, farErr = ErrorTop, ErrorBottom
	}

	for line := 0; line < size; line++ {
		numStar, numCloud := 0, 0
		posStar, posCloud, posPlanet := -1, -1, -1
		illum := dark

		for i := 0; i < size; i++ {
			idx := index(size, axis, line, i)
			cell := b.Grid[idx]
			if cell == Star {
				numStar++
				posStar = i
			}
			if cell == Cloud {
				numCloud++
				posCloud = i
			}
			if cell&Planet != 0 {
				posPlanet = i
				switch axis {
				case Row:
					switch {
					case cell&Left != 0:
						illum = leftTop
					case cell&Right != 0:
						illum = rightBottom
					default:
						illum = dark
					}
				case Column:
					switch {
					case cell&Top != 0:
						illum = leftTop
					case cell&Bottom != 0:
						illum = rightBottom
					default:
						illum = dark
					}
				}
			}
		}

		if numStar > 1 {
			for i := 0; i < size; i++ {
				idx := index(size, axis, line, i)
				if b.Grid[idx] == Star {
					b.Errors[idx] = ErrorStar
					rep.MarkError(idx)
				}
			}
		}
		if numCloud > 1 {
			for i := 0; i < size; i++ {
				idx := index(size, axis, line, i)
				if b.Grid[idx] == Cloud {
					b.Errors[idx] = ErrorCloud
					rep.MarkError(idx)
				}
			}
		}
		if numStar != 1 || numCloud != 1 {
			solved = false
		}

		var planetIdx int
		if posPlanet > -1 {
			planetIdx = index(size, axis, line, posPlanet)
		}

		if numStar == 1 && posPlanet > -1 && posStar == posPlanet-1 && illum != leftTop {
			solved = false
			b.Errors[planetIdx] |= nearErr
			rep.MarkError(planetIdx)
		} else if numStar == 1 && posPlanet > -1 && posStar == posPlanet+1 && illum != rightBottom {
			solved = false
			b.Errors[planetIdx] |= farErr
			rep.MarkError(planetIdx)
		}

		if numStar == 1 && numCloud == 1 && posStar >= 0 && posCloud >= 0 && posPlanet >= 0 {
			if !checkLine(posStar, posCloud, posPlanet, illum) {
				solved = false
				if posStar < posPlanet {
					b.Errors[planetIdx] |= nearErr
				}
				if posStar > posPlanet {
					b.Errors[planetIdx] |= farErr
				}
				rep.MarkError(planetIdx)
			}
		}
	}

	return solved
}

// Validate checks every row and column against the STAR/CLOUD uniqueness
// and planet-illumination rules.
func Validate(b *Board) (Outcome, *report.Report) {
	for i := range b.Errors {
		b.Errors[i] = 0
	}

	rep := report.New(string(Ambiguous))
	rowsOK := checkAxis(b, Row, rep)
	colsOK := checkAxis(b, Column, rep)
	rep.AddResult("row_star_cloud_rules", rowsOK, "exactly one STAR and one CLOUD per row, illumination consistent")
	rep.AddResult("column_star_cloud_rules", colsOK, "exactly one STAR and one CLOUD per column, illumination consistent")

	outcome := Ambiguous
	if rowsOK && colsOK {
		outcome = Solved
	}
	rep.Outcome = string(outcome)
	return outcome, rep
}
