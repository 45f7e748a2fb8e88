package game

// PieceColor is the contents of a single board square. Red and Blue are
// the two players; Empty and Blocked are non-player contents. Empty
// doubles as the draw marker returned by Board.Winner.
type PieceColor int

const (
	Red PieceColor = iota
	Blue
	Empty
	Blocked
)

// NoWinner is the Board.Winner value while the game is undecided.
const NoWinner PieceColor = -1

// Opposite returns the other player. Defined for Red and Blue only.
func (c PieceColor) Opposite() PieceColor {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	panic("no opposite for " + c.String())
}

// IsPiece reports whether c is one of the two player colors.
func (c PieceColor) IsPiece() bool {
	return c == Red || c == Blue
}

func (c PieceColor) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Empty:
		return "empty"
	case Blocked:
		return "blocked"
	case NoWinner:
		return "none"
	}
	return "unknown"
}

// Symbol is the one-character board rendering of the square contents.
func (c PieceColor) Symbol() string {
	switch c {
	case Red:
		return "r"
	case Blue:
		return "b"
	case Blocked:
		return "X"
	default:
		return "-"
	}
}
