package engine

import (
	"fmt"

	"ataxx/game"
	"ataxx/player"

	"github.com/rs/zerolog/log"
)

// Local drives a complete game between two players on the
// authoritative board, committing each chosen move. It is the
// MoveReporter for its players.
type Local struct {
	Board *game.Board
}

// NewLocal returns an engine playing on board.
func NewLocal(board *game.Board) *Local {
	return &Local{Board: board}
}

// ReportMove logs a move a player has settled on, before the engine
// commits it.
func (e *Local) ReportMove(move game.Move, color game.PieceColor) {
	if move.IsPass() {
		log.Info().Str("player", color.String()).Msg("passes")
		return
	}
	log.Info().Str("player", color.String()).Str("move", move.String()).Msg("moves")
}

// Run alternates the two players until the game is decided and
// returns the winner, Empty meaning a draw. A player error or an
// illegal committed move aborts the game.
func (e *Local) Run(red, blue player.Player) (game.PieceColor, error) {
	log.Info().Str("player", e.Board.WhoseMove().String()).Msg("game starting")
	for !e.Board.GameOver() {
		current := red
		if e.Board.WhoseMove() == game.Blue {
			current = blue
		}
		text, err := current.GetMove()
		if err != nil {
			return game.NoWinner, fmt.Errorf("%s to move: %w", e.Board.WhoseMove(), err)
		}
		if err := e.Board.MakeTextMove(text); err != nil {
			return game.NoWinner, fmt.Errorf("%s to move: %w", e.Board.WhoseMove(), err)
		}
	}
	winner := e.Board.Winner()
	score := log.Info().
		Int("red", e.Board.RedPieces()).
		Int("blue", e.Board.BluePieces()).
		Int("moves", e.Board.NumMoves())
	if winner == game.Empty {
		score.Msg("game drawn")
	} else {
		score.Str("winner", winner.String()).Msg("game over")
	}
	return winner, nil
}
