package game

import (
	"errors"
	"fmt"
)

// JumpLimit is the number of consecutive jump moves, without an
// intervening extend, that forces the game to end.
const JumpLimit = 25

var (
	// ErrIllegalMove reports a move rejected by MakeMove. The board is
	// left untouched.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalBlock reports a block placement on an occupied square
	// or after play has begun. The board is left untouched.
	ErrIllegalBlock = errors.New("illegal block placement")
)

// undoRecord is one recorded square diff: the square's index and its
// contents before the change. Popping records in reverse order exactly
// reverses a move.
type undoRecord struct {
	sq   int
	prev PieceColor
}

// Board is an Ataxx position plus the reversible history of how it was
// reached. The grid is a flat array over the extended side, with the
// two border rings permanently Blocked. Boards are not safe for
// concurrent use; searchers must work on a private Copy.
type Board struct {
	squares   [ExtendedSide * ExtendedSide]PieceColor
	whoseMove PieceColor
	numPieces [2]int // indexed by Red, Blue
	totalOpen int    // unblocked, unoccupied squares
	numJumps  int    // consecutive jumps since the last extend
	winner    PieceColor
	allMoves  []Move

	undoSquares []undoRecord
	undoFrames  []int // start offset in undoSquares of each move's diffs
	prevJumps   []int // numJumps before each move

	notify func(*Board)
}

// NewBoard returns a board in the starting configuration: no blocks,
// two pieces per color on opposite corners, red to move.
func NewBoard() *Board {
	b := &Board{notify: func(*Board) {}}
	b.Clear()
	return b
}

// Copy returns a board holding the same position but with fresh, empty
// move and undo history and a no-op notifier.
func (b *Board) Copy() *Board {
	return &Board{
		squares:   b.squares,
		whoseMove: b.whoseMove,
		numPieces: b.numPieces,
		totalOpen: b.totalOpen,
		numJumps:  b.numJumps,
		winner:    b.winner,
		notify:    func(*Board) {},
	}
}

// Clear resets the board to the starting configuration, dropping all
// blocks and history. The registered notifier is kept and fired.
func (b *Board) Clear() {
	b.winner = NoWinner
	b.numJumps = 0
	b.whoseMove = Red
	b.allMoves = b.allMoves[:0]
	b.undoSquares = b.undoSquares[:0]
	b.undoFrames = b.undoFrames[:0]
	b.prevJumps = b.prevJumps[:0]
	for er := 0; er < ExtendedSide; er++ {
		for ec := 0; ec < ExtendedSide; ec++ {
			c := Empty
			if er < 2 || er >= ExtendedSide-2 || ec < 2 || ec >= ExtendedSide-2 {
				c = Blocked
			}
			b.squares[er*ExtendedSide+ec] = c
		}
	}
	b.squares[Index('a', '1')] = Blue
	b.squares[Index('g', '7')] = Blue
	b.squares[Index('a', '7')] = Red
	b.squares[Index('g', '1')] = Red
	b.numPieces[Red] = 2
	b.numPieces[Blue] = 2
	b.totalOpen = Side*Side - 4
	b.announce()
}

// Get returns the contents of square col row. Coordinates up to two
// outside 'a'..'g' and '1'..'7' are addressable and always Blocked.
func (b *Board) Get(col, row byte) PieceColor {
	return b.squares[Index(col, row)]
}

// GetIndex returns the contents of the square with linearized index sq.
func (b *Board) GetIndex(sq int) PieceColor {
	return b.squares[sq]
}

// NumPieces returns the number of color pieces on the board.
func (b *Board) NumPieces(color PieceColor) int {
	return b.numPieces[color]
}

// RedPieces returns the number of red pieces on the board.
func (b *Board) RedPieces() int {
	return b.numPieces[Red]
}

// BluePieces returns the number of blue pieces on the board.
func (b *Board) BluePieces() int {
	return b.numPieces[Blue]
}

// WhoseMove returns the color that moves next. The value is
// meaningless once the game is over, but it is still maintained so
// Undo stays an exact inverse.
func (b *Board) WhoseMove() PieceColor {
	return b.whoseMove
}

// Winner returns NoWinner while the game is undecided, the winning
// color on a decisive result, or Empty on a draw.
func (b *Board) Winner() PieceColor {
	return b.winner
}

// GameOver reports whether the game has ended.
func (b *Board) GameOver() bool {
	return b.winner != NoWinner
}

// NumMoves returns the number of moves and passes made since the last
// clear.
func (b *Board) NumMoves() int {
	return len(b.allMoves)
}

// NumJumps returns the number of consecutive jumps made since the last
// extend (or the start of the game). Used to detect end of game.
func (b *Board) NumJumps() int {
	return b.numJumps
}

// TotalOpen returns the number of unblocked, unoccupied squares.
func (b *Board) TotalOpen() int {
	return b.totalOpen
}

// AllMoves returns the moves made since the last clear, oldest first.
// The returned slice is a view and must not be modified.
func (b *Board) AllMoves() []Move {
	return b.allMoves
}

// Equal reports whether b and other hold identical grids.
func (b *Board) Equal(other *Board) bool {
	return other != nil && b.squares == other.squares
}

// LegalMove reports whether m is legal for the current mover. A pass
// is legal only when the mover has no other legal move; a non-pass
// move needs an empty destination, a source holding the mover's color,
// and a delta within the extend/jump neighborhood. Moves off the board
// or onto blocks fail the empty-destination test, since such squares
// are never Empty.
func (b *Board) LegalMove(m Move) bool {
	if m == (Move{}) {
		return false
	}
	if m.IsPass() {
		return !b.CanMove(b.whoseMove)
	}
	return b.squares[m.ToIndex()] == Empty && b.squares[m.FromIndex()] == b.whoseMove
}

// CanMove reports whether who has at least one legal non-pass move,
// ignoring whose turn it is and whether the game is over: who must own
// a piece with an empty square within Chebyshev distance 2.
func (b *Board) CanMove(who PieceColor) bool {
	if !who.IsPiece() || b.numPieces[who] == 0 {
		return false
	}
	for sq, c := range b.squares {
		if c != who {
			continue
		}
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				if b.squares[Neighbor(sq, dc, dr)] == Empty {
					return true
				}
			}
		}
	}
	return false
}

// MakeTextMove parses s ("-" or "c0r0-c1r1") and applies it.
func (b *Board) MakeTextMove(s string) error {
	m, err := ParseMove(s)
	if err != nil {
		return err
	}
	return b.MakeMove(m)
}

// MakeMove applies m and flips the mover. Illegal moves are rejected
// with ErrIllegalMove before any state is touched. The entire effect,
// including winner assignment and the mover flip, is reversed by one
// Undo.
func (b *Board) MakeMove(m Move) error {
	if !b.LegalMove(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	b.allMoves = append(b.allMoves, m)
	b.undoFrames = append(b.undoFrames, len(b.undoSquares))
	b.prevJumps = append(b.prevJumps, b.numJumps)

	if m.IsPass() {
		b.checkGameOver()
		b.whoseMove = b.whoseMove.Opposite()
		b.announce()
		return nil
	}

	mover := b.whoseMove
	opponent := mover.Opposite()
	b.set(m.ToIndex(), mover)
	if m.IsJump() {
		// Only an extend breaks the run; passes leave the counter alone.
		b.set(m.FromIndex(), Empty)
		b.numJumps++
	} else {
		b.numJumps = 0
	}
	to := m.ToIndex()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			if sq := Neighbor(to, dc, dr); b.squares[sq] == opponent {
				b.set(sq, mover)
			}
		}
	}
	b.checkGameOver()
	b.whoseMove = opponent
	b.announce()
	return nil
}

// Undo reverses the last move: every recorded square diff, the derived
// counts, the jump counter, the winner, the mover flip, and the move
// log entry. The game is never over after an undo. Panics when there
// is no move to undo; that is a driver bug, not a game condition.
func (b *Board) Undo() {
	if len(b.undoFrames) == 0 {
		panic("ataxx: undo with no move to undo")
	}
	last := len(b.undoFrames) - 1
	frame := b.undoFrames[last]
	for i := len(b.undoSquares) - 1; i >= frame; i-- {
		rec := b.undoSquares[i]
		b.countTransition(b.squares[rec.sq], rec.prev)
		b.squares[rec.sq] = rec.prev
	}
	b.undoSquares = b.undoSquares[:frame]
	b.undoFrames = b.undoFrames[:last]
	b.numJumps = b.prevJumps[last]
	b.prevJumps = b.prevJumps[:last]
	b.allMoves = b.allMoves[:len(b.allMoves)-1]
	b.winner = NoWinner
	b.whoseMove = b.whoseMove.Opposite()
	b.announce()
}

// LegalBlock reports whether a block may be placed at col row: only on
// an empty square, and only before the first move of the game.
func (b *Board) LegalBlock(col, row byte) bool {
	return len(b.allMoves) == 0 && b.squares[Index(col, row)] == Empty
}

// SetBlockText places a block at the two-character square cr.
func (b *Board) SetBlockText(cr string) error {
	if len(cr) != 2 || !validCol(cr[0]) || !validRow(cr[1]) {
		return fmt.Errorf("%w: %q", ErrIllegalBlock, cr)
	}
	return b.SetBlock(cr[0], cr[1])
}

// SetBlock blocks the square col row together with its reflections
// across the center row and column, skipping any reflection already
// blocked. Blocks are part of game setup, before the first move, and
// are not undoable. If afterwards neither side can move, the game ends
// in a draw.
func (b *Board) SetBlock(col, row byte) error {
	if !b.LegalBlock(col, row) {
		return fmt.Errorf("%w: %c%c", ErrIllegalBlock, col, row)
	}
	reflections := [4][2]byte{
		{col, row},
		{2*'d' - col, row},
		{col, 2*'4' - row},
		{2*'d' - col, 2*'4' - row},
	}
	for _, p := range reflections {
		sq := Index(p[0], p[1])
		if b.squares[sq] != Blocked {
			b.squares[sq] = Blocked
			b.totalOpen--
		}
	}
	if !b.CanMove(Red) && !b.CanMove(Blue) {
		b.winner = Empty
	}
	b.announce()
	return nil
}

// SetNotifier registers fn as the single change listener, replacing
// any previous one, and fires it once immediately. Every mutator
// (clear, move, pass, block placement, undo) fires the listener after
// committing its change. A nil fn restores the no-op listener.
func (b *Board) SetNotifier(fn func(*Board)) {
	if fn == nil {
		fn = func(*Board) {}
	}
	b.notify = fn
	b.announce()
}

// set changes one square, recording the prior contents for undo and
// keeping the piece and open counts consistent.
func (b *Board) set(sq int, v PieceColor) {
	b.undoSquares = append(b.undoSquares, undoRecord{sq: sq, prev: b.squares[sq]})
	b.countTransition(b.squares[sq], v)
	b.squares[sq] = v
}

// countTransition adjusts the derived counts for one square changing
// from prev to next.
func (b *Board) countTransition(prev, next PieceColor) {
	if prev == next {
		return
	}
	switch prev {
	case Red, Blue:
		b.numPieces[prev]--
	case Empty:
		b.totalOpen--
	}
	switch next {
	case Red, Blue:
		b.numPieces[next]++
	case Empty:
		b.totalOpen++
	}
}

// checkGameOver assigns the winner if the position is decided: a color
// with no pieces loses, and reaching the jump limit or a double
// stalemate ends the game by piece-count comparison, equal counts
// being a draw. Both the move path and the pass path end the game
// through this one check.
func (b *Board) checkGameOver() {
	if b.numPieces[Red] == 0 {
		b.winner = Blue
		return
	}
	if b.numPieces[Blue] == 0 {
		b.winner = Red
		return
	}
	if b.numJumps >= JumpLimit || (!b.CanMove(Red) && !b.CanMove(Blue)) {
		switch {
		case b.numPieces[Red] > b.numPieces[Blue]:
			b.winner = Red
		case b.numPieces[Blue] > b.numPieces[Red]:
			b.winner = Blue
		default:
			b.winner = Empty
		}
	}
}

func (b *Board) announce() {
	b.notify(b)
}
