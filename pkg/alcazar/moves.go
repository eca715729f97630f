package alcazar

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyMove parses and applies a semicolon-separated move string to a clone
// of b. Recognized
// opcodes: W<i> (set edge i to WALL), L<i>/P<i> (set edge i to PATH), C<i>
// (clear edge i to NONE), S (mark the move as solver-origin). Edge indices
// are a single flat space: [0,NumHEdges) addresses EdgeH, the remainder
// addresses EdgeV. Malformed input rejects the whole move and returns an
// error, leaving b untouched. An operation targeting a FIXED clue edge is
// dropped silently: the edge keeps its value and no error is raised.
//
// completed reports whether applying the move brings the board to SOLVED
// and the move was not solver-origin.
func ApplyMove(b *Board, move string) (result *Board, completed bool, err error) {
	next := b.Clone()
	solverOrigin := false
	voff := NumHEdges(b.W, b.H)

	for _, op := range strings.Split(move, ";") {
		if op == "" {
			continue
		}
		opcode := op[0]
		switch opcode {
		case 'S':
			solverOrigin = true
			if len(op) > 1 {
				return nil, false, fmt.Errorf("alcazar: malformed move %q: S takes no index", op)
			}
		case 'W', 'L', 'P', 'C':
			idx, err := strconv.Atoi(op[1:])
			if err != nil {
				return nil, false, fmt.Errorf("alcazar: malformed move %q: %w", op, err)
			}
			if idx < 0 || idx >= voff+NumVEdges(b.W, b.H) {
				return nil, false, fmt.Errorf("alcazar: malformed move %q: index out of range", op)
			}
			if idx < voff && next.FixedH[idx] {
				continue
			}
			if idx >= voff && next.FixedV[idx-voff] {
				continue
			}

			var newState EdgeState
			switch opcode {
			case 'W':
				newState = Wall
			case 'L', 'P':
				newState = Path
			case 'C':
				newState = None
			}
			if idx < voff {
				next.EdgeH[idx] = newState
			} else {
				next.EdgeV[idx-voff] = newState
			}
		default:
			return nil, false, fmt.Errorf("alcazar: malformed move %q: unknown opcode", op)
		}
	}

	outcome, _ := Validate(next.Clone())
	if outcome == Solved && !solverOrigin {
		completed = true
	}
	return next, completed, nil
}
