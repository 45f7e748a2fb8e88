package searcher

import (
	"ataxx/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	// DefaultDepth is the search depth used unless WithDepth overrides
	// it.
	DefaultDepth = 4

	// winningValue is the magnitude of a decided position. The depth
	// remaining is added on top so that faster wins score strictly
	// higher than slower ones.
	winningValue = 1 << 30

	// infinity bounds the alpha-beta window; larger than any position
	// value including the depth-adjusted winning magnitudes.
	infinity = 1 << 31
)

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepth sets the maximum search depth before static evaluation.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithSeed seeds the tie-breaking generator. Identical seeds produce
// identical move choices on identical positions.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics enables per-search instrumentation, reported at debug
// level after each search.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewMetricsCollector()
	}
}

// Searcher chooses moves by depth-limited minimax with alpha-beta
// pruning. Each recursive step searches a private copy of its board,
// so the authoritative game state is never touched. Among moves with
// equal scores a seeded coin flip picks the survivor, so the searcher
// does not always play the first of several equally good moves; the
// generator is owned by the Searcher, never the process-global one.
type Searcher struct {
	depth   int
	rng     *rand.Rand
	metrics MetricsCollector
	found   game.Move
}

// New returns a Searcher with the given options applied over the
// defaults: DefaultDepth, a zero-seeded generator, no metrics.
func New(options ...Option) *Searcher {
	s := &Searcher{
		depth:   DefaultDepth,
		rng:     rand.New(rand.NewSource(0)),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// FindMove returns the chosen move for the side to move on board,
// which is not mutated. A side with no legal move gets a pass without
// any search.
func (s *Searcher) FindMove(board *game.Board) game.Move {
	side := board.WhoseMove()
	if !board.CanMove(side) {
		return game.Pass()
	}
	s.metrics.Start()
	sense := 1
	if side == game.Blue {
		sense = -1
	}
	s.found = game.Pass()
	s.minimax(board.Copy(), s.depth, true, sense, -infinity, infinity)
	m := s.metrics.Complete()
	log.Debug().
		Str("side", side.String()).
		Int("depth", s.depth).
		Int64("nodes", m.Nodes).
		Int64("leaves", m.Leaves).
		Int64("cutoffs", m.Cutoffs).
		Dur("took", m.Duration).
		Str("move", s.found.String()).
		Msg("search complete")
	return s.found
}

// minimax returns the value of board searched to depth, recording the
// best move in s.found when saveMove is set (root call only). sense is
// +1 when maximizing (red to move) and -1 when minimizing. Decided or
// frozen positions evaluate statically with magnitude
// winningValue+depth, so wins reachable in fewer moves dominate.
func (s *Searcher) minimax(board *game.Board, depth int, saveMove bool, sense, alpha, beta int) int {
	if depth == 0 || board.GameOver() {
		s.metrics.AddLeaf()
		return staticScore(board, winningValue+depth)
	}

	side := game.Red
	if sense == -1 {
		side = game.Blue
	}
	moves := findAllPossibleMoves(board, side)
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		return staticScore(board, winningValue+depth)
	}
	s.metrics.AddNode()

	var best game.Move
	var haveBest bool
	bestScore := alpha
	if sense == -1 {
		bestScore = beta
	}

	for _, move := range moves {
		next := board.Copy()
		if err := next.MakeMove(move); err != nil {
			// Generation yields only legal moves.
			panic(err)
		}
		response := s.minimax(next, depth-1, false, -sense, alpha, beta)

		if sense == 1 {
			if response > bestScore || (response == bestScore && s.coinFlip()) {
				bestScore = response
				best, haveBest = move, true
				if bestScore > alpha {
					alpha = bestScore
				}
				if alpha >= beta {
					s.metrics.AddCutoff()
					return bestScore
				}
			}
		} else {
			if response < bestScore || (response == bestScore && s.coinFlip()) {
				bestScore = response
				best, haveBest = move, true
				if bestScore < beta {
					beta = bestScore
				}
				if alpha >= beta {
					s.metrics.AddCutoff()
					return bestScore
				}
			}
		}
	}

	if saveMove && haveBest {
		s.found = best
	}
	return bestScore
}

// coinFlip decides whether an equal-scoring move replaces the current
// best.
func (s *Searcher) coinFlip() bool {
	return s.rng.Intn(2) == 0
}

// findAllPossibleMoves enumerates every legal non-pass move for side:
// each owned square crossed with every destination in its extend/jump
// neighborhood, in board order. No pass is generated; an empty result
// is the caller's signal to stop or pass.
func findAllPossibleMoves(board *game.Board, side game.PieceColor) []game.Move {
	var moves []game.Move
	for sq := 0; sq < game.ExtendedSide*game.ExtendedSide; sq++ {
		if board.GetIndex(sq) != side {
			continue
		}
		col0, row0 := game.ColRow(sq)
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				move, err := game.NewMove(col0, row0,
					byte(int(col0)+dc), byte(int(row0)+dr))
				if err != nil {
					continue // the zero delta
				}
				if board.LegalMove(move) {
					moves = append(moves, move)
				}
			}
		}
	}
	return moves
}

// staticScore values board from red's perspective: the full winning
// magnitude for a decided position (negative for a blue win, zero for
// a draw), otherwise the signed piece-count differential.
func staticScore(board *game.Board, winning int) int {
	switch board.Winner() {
	case game.Red:
		return winning
	case game.Blue:
		return -winning
	case game.Empty:
		return 0
	}
	return board.RedPieces() - board.BluePieces()
}
