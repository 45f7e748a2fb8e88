package game

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// String renders the board without the legend.
func (b *Board) String() string {
	return b.Render(false)
}

// Render returns a text picture of the board, one line per row with
// the highest row first and squares separated by single spaces. With
// legend, each row is prefixed by its row digit and a column-label
// footer is appended.
func (b *Board) Render(legend bool) string {
	var sb strings.Builder
	for row := byte('7'); row >= '1'; row-- {
		if legend {
			sb.WriteByte(row)
		}
		sb.WriteByte(' ')
		for col := byte('a'); col <= 'g'; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.Get(col, row).Symbol())
		}
		sb.WriteByte('\n')
	}
	if legend {
		sb.WriteString("   a b c d e f g")
	}
	return sb.String()
}

// RenderColor renders like Render but colors the pieces when the
// terminal supports it. On a dumb terminal the output degrades to the
// plain rendering.
func (b *Board) RenderColor(legend bool) string {
	profile := termenv.ColorProfile()
	var sb strings.Builder
	for row := byte('7'); row >= '1'; row-- {
		if legend {
			sb.WriteByte(row)
		}
		sb.WriteByte(' ')
		for col := byte('a'); col <= 'g'; col++ {
			sb.WriteByte(' ')
			c := b.Get(col, row)
			s := termenv.String(c.Symbol())
			switch c {
			case Red:
				s = s.Foreground(profile.Color("1"))
			case Blue:
				s = s.Foreground(profile.Color("4"))
			case Blocked:
				s = s.Faint()
			}
			sb.WriteString(s.String())
		}
		sb.WriteByte('\n')
	}
	if legend {
		sb.WriteString("   a b c d e f g")
	}
	return sb.String()
}

// ParseBoard builds a board from the text form produced by Render
// without the legend: seven rows, highest first, with the symbols r,
// b, X and - separated by whitespace. whoseMove is the side to move.
// The derived counts are recomputed and the position is checked for a
// finished game, so a side parsed with no pieces yields a winner.
func ParseBoard(text string, whoseMove PieceColor) (*Board, error) {
	if !whoseMove.IsPiece() {
		return nil, fmt.Errorf("side to move must be red or blue, got %s", whoseMove)
	}
	fields := strings.Fields(text)
	if len(fields) != Side*Side {
		return nil, fmt.Errorf("board text has %d squares, want %d", len(fields), Side*Side)
	}
	b := NewBoard()
	b.numPieces = [2]int{}
	b.totalOpen = 0
	b.whoseMove = whoseMove
	i := 0
	for row := byte('7'); row >= '1'; row-- {
		for col := byte('a'); col <= 'g'; col++ {
			var c PieceColor
			switch fields[i] {
			case "r":
				c = Red
			case "b":
				c = Blue
			case "X":
				c = Blocked
			case "-":
				c = Empty
			default:
				return nil, fmt.Errorf("bad square %q at %c%c", fields[i], col, row)
			}
			b.squares[Index(col, row)] = c
			b.countTransitionUnrecorded(c)
			i++
		}
	}
	b.checkGameOver()
	return b, nil
}

// countTransitionUnrecorded tallies one square during position setup.
func (b *Board) countTransitionUnrecorded(c PieceColor) {
	switch c {
	case Red, Blue:
		b.numPieces[c]++
	case Empty:
		b.totalOpen++
	}
}
