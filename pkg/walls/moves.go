package walls

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyMove parses and applies a semicolon-separated move string to a clone
// of b. Recognized opcodes: W<i> (set
// edge i to WALL), L<i>/P<i> (set edge i to LINE), C<i> (clear edge i to
// UNKNOWN), S (mark the move as solver-origin). Malformed input rejects the
// whole move and returns an error, leaving b untouched. An operation
// targeting a FIXED clue edge is dropped silently: the edge keeps its value
// and no error is raised.
//
// completed reports whether applying the move brings the board to SOLVED
// and the move was not solver-origin.
func ApplyMove(b *Board, move string) (result *Board, completed bool, err error) {
	next := b.Clone()
	solverOrigin := false

	for _, op := range strings.Split(move, ";") {
		if op == "" {
			continue
		}
		opcode := op[0]
		switch opcode {
		case 'S':
			solverOrigin = true
			if len(op) > 1 {
				return nil, false, fmt.Errorf("walls: malformed move %q: S takes no index", op)
			}
		case 'W', 'L', 'P', 'C':
			idx, err := strconv.Atoi(op[1:])
			if err != nil {
				return nil, false, fmt.Errorf("walls: malformed move %q: %w", op, err)
			}
			if idx < 0 || idx >= len(next.Edges) {
				return nil, false, fmt.Errorf("walls: malformed move %q: index out of range", op)
			}
			if next.Fixed[idx] {
				continue
			}
			switch opcode {
			case 'W':
				next.Edges[idx] = Wall
			case 'L', 'P':
				next.Edges[idx] = Line
			case 'C':
				next.Edges[idx] = Unknown
			}
		default:
			return nil, false, fmt.Errorf("walls: malformed move %q: unknown opcode", op)
		}
	}

	outcome, _ := Validate(next)
	if outcome == Solved && !solverOrigin {
		completed = true
	}
	return next, completed, nil
}
