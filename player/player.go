package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ataxx/game"
	"ataxx/searcher"
)

// MoveReporter is the game-level collaborator told about each chosen
// move before GetMove returns it.
type MoveReporter interface {
	ReportMove(move game.Move, color game.PieceColor)
}

// Player produces moves for one color in the surrounding game loop.
// GetMove returns the move-text form of the chosen move ("-" for a
// pass) and reports the move to the MoveReporter before returning.
type Player interface {
	Color() game.PieceColor
	IsAuto() bool
	GetMove() (string, error)
}

// AI computes its own moves by minimax search over a private copy of
// the authoritative board.
type AI struct {
	color    game.PieceColor
	board    *game.Board
	searcher *searcher.Searcher
	reporter MoveReporter
}

// NewAI returns an AI playing color on board, choosing moves with s.
func NewAI(board *game.Board, color game.PieceColor, reporter MoveReporter, s *searcher.Searcher) *AI {
	return &AI{color: color, board: board, searcher: s, reporter: reporter}
}

func (a *AI) Color() game.PieceColor { return a.color }

func (a *AI) IsAuto() bool { return true }

// GetMove searches for a move from the current position, reporting it
// before returning its text form. A position with no legal move yields
// a pass.
func (a *AI) GetMove() (string, error) {
	move := a.searcher.FindMove(a.board)
	a.reporter.ReportMove(move, a.color)
	return move.String(), nil
}

// Scripted plays move text read from r, one move per line. It backs
// both interactive play (r = stdin) and scripted games in tests.
type Scripted struct {
	color    game.PieceColor
	scanner  *bufio.Scanner
	reporter MoveReporter
}

// NewScripted returns a player for color reading moves from r.
func NewScripted(r io.Reader, color game.PieceColor, reporter MoveReporter) *Scripted {
	return &Scripted{color: color, scanner: bufio.NewScanner(r), reporter: reporter}
}

func (p *Scripted) Color() game.PieceColor { return p.color }

func (p *Scripted) IsAuto() bool { return false }

// GetMove reads the next move line. Malformed text is rejected without
// consulting the board; io.EOF signals an exhausted source.
func (p *Scripted) GetMove() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	move, err := game.ParseMove(strings.TrimSpace(p.scanner.Text()))
	if err != nil {
		return "", fmt.Errorf("%s player: %w", p.color, err)
	}
	p.reporter.ReportMove(move, p.color)
	return move.String(), nil
}
