package game

import (
	"errors"
	"fmt"
)

const (
	// Side is the playable board dimension.
	Side = 7

	// ExtendedSide is Side plus a two-deep border of permanently
	// blocked squares on every edge. Any neighborhood query within
	// radius 2 of an interior square stays addressable, so move logic
	// never tests for edges. Unrelated to a move that is an "extend".
	ExtendedSide = Side + 4
)

// ErrBadMove reports malformed or out-of-shape move text.
var ErrBadMove = errors.New("bad move")

// Index returns the linearized index of column col, row row on the
// extended grid, counting squares in row-major order. Columns run
// 'a'-2 through 'g'+2 and rows '1'-2 through '7'+2; coordinates
// outside 'a'..'g' and '1'..'7' land in the blocked border.
func Index(col, row byte) int {
	return (int(row)-'1'+2)*ExtendedSide + (int(col)-'a'+2)
}

// Neighbor returns the index dc columns and dr rows away from sq.
func Neighbor(sq, dc, dr int) int {
	return sq + dc + dr*ExtendedSide
}

// ColRow maps a linearized index back to its column letter and row
// digit.
func ColRow(sq int) (col, row byte) {
	return byte(sq%ExtendedSide - 2 + 'a'), byte(sq/ExtendedSide - 2 + '1')
}

// Move is either a pass or a transition between two squares within
// Chebyshev distance 2. Distance 1 is an extend, distance 2 a jump;
// the classification is derived from the coordinate delta, never
// stored. Construct moves with NewMove, Pass, or ParseMove.
type Move struct {
	pass                   bool
	col0, row0, col1, row1 byte
}

// Pass returns the pass move, rendered "-".
func Pass() Move {
	return Move{pass: true}
}

// NewMove returns the move c0r0-c1r1. The coordinate delta must be
// within the extend/jump neighborhood: at most 2 in each axis and not
// zero in both. Coordinates in the border region are accepted here;
// the board rejects such moves because border squares are never empty.
func NewMove(col0, row0, col1, row1 byte) (Move, error) {
	dc, dr := dist(col0, col1), dist(row0, row1)
	if dc > 2 || dr > 2 || (dc == 0 && dr == 0) {
		return Move{}, fmt.Errorf("%w: %c%c-%c%c is not an extend or jump",
			ErrBadMove, col0, row0, col1, row1)
	}
	return Move{col0: col0, row0: row0, col1: col1, row1: row1}, nil
}

// ParseMove parses move text: "-" is a pass, otherwise the form
// "c0r0-c1r1" with columns 'a'..'g' and rows '1'..'7'. Any other shape
// is rejected.
func ParseMove(s string) (Move, error) {
	if s == "-" {
		return Pass(), nil
	}
	if len(s) != 5 || s[2] != '-' {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	if !validCol(s[0]) || !validRow(s[1]) || !validCol(s[3]) || !validRow(s[4]) {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	return NewMove(s[0], s[1], s[3], s[4])
}

func validCol(c byte) bool { return c >= 'a' && c <= 'g' }
func validRow(r byte) bool { return r >= '1' && r <= '7' }

// IsPass reports whether m is the pass move.
func (m Move) IsPass() bool {
	return m.pass
}

// IsExtend reports whether m adds a piece adjacent to its source
// without vacating it.
func (m Move) IsExtend() bool {
	return !m.pass && m.chebyshev() == 1
}

// IsJump reports whether m relocates a piece distance 2, vacating its
// source.
func (m Move) IsJump() bool {
	return !m.pass && m.chebyshev() == 2
}

// FromIndex returns the linearized index of the source square.
func (m Move) FromIndex() int {
	return Index(m.col0, m.row0)
}

// ToIndex returns the linearized index of the destination square.
func (m Move) ToIndex() int {
	return Index(m.col1, m.row1)
}

// String renders m in the text form accepted by ParseMove.
func (m Move) String() string {
	if m.pass {
		return "-"
	}
	return fmt.Sprintf("%c%c-%c%c", m.col0, m.row0, m.col1, m.row1)
}

func (m Move) chebyshev() int {
	dc, dr := dist(m.col0, m.col1), dist(m.row0, m.row1)
	if dc > dr {
		return dc
	}
	return dr
}

func dist(a, b byte) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
