package searcher

import (
	"testing"

	"ataxx/game"

	"github.com/stretchr/testify/require"
)

// oneCapturePosition is one ply from a forced win: red's only piece
// sits below blue's only piece. Red to move.
const oneCapturePosition = `
	- - - - - - -
	- - - - - - -
	- - - - - - -
	- - - b - - -
	- - r - - - -
	- - - - - - -
	- - - - - - -
`

// frozenRedPosition leaves red without a legal move while blue can
// still play. Red to move.
const frozenRedPosition = `
	r X X - - - -
	X X X - - - -
	X X X - - - -
	- - - - - - -
	- - - - - - -
	- - - - - - -
	- - - - - - b
`

func TestFindMove(t *testing.T) {
	t.Run("selects the winning capture", func(t *testing.T) {
		for depth := 1; depth <= 4; depth++ {
			board, err := game.ParseBoard(oneCapturePosition, game.Red)
			require.NoError(t, err)

			move := New(WithDepth(depth), WithSeed(7)).FindMove(board)
			require.False(t, move.IsPass())

			after := board.Copy()
			require.NoError(t, after.MakeMove(move))
			require.Equal(t, game.Red, after.Winner(),
				"depth %d should find the immediate win", depth)
		}
	})

	t.Run("passes without searching when the side cannot move", func(t *testing.T) {
		board, err := game.ParseBoard(frozenRedPosition, game.Red)
		require.NoError(t, err)
		snapshot := board.Copy()

		move := New().FindMove(board)

		require.True(t, move.IsPass())
		require.True(t, board.Equal(snapshot), "the search never mutates its input")
	})

	t.Run("never mutates the authoritative board", func(t *testing.T) {
		board := game.NewBoard()
		snapshot := board.Copy()

		New(WithDepth(3)).FindMove(board)

		require.True(t, board.Equal(snapshot))
		require.Equal(t, game.Red, board.WhoseMove())
		require.Equal(t, 0, board.NumMoves())
	})

	t.Run("returns a legal move from the opening", func(t *testing.T) {
		board := game.NewBoard()
		move := New(WithDepth(2), WithSeed(99)).FindMove(board)
		require.True(t, board.LegalMove(move))
	})

	t.Run("identical seeds choose identical moves", func(t *testing.T) {
		first := New(WithDepth(3), WithSeed(42)).FindMove(game.NewBoard())
		second := New(WithDepth(3), WithSeed(42)).FindMove(game.NewBoard())
		require.Equal(t, first, second, "tie-breaking must be seed-reproducible")
	})

	t.Run("minimizing side finds its winning capture", func(t *testing.T) {
		board, err := game.ParseBoard(`
			- - - - - - -
			- - - - - - -
			- - - - - - -
			- - - r - - -
			- - b - - - -
			- - - - - - -
			- - - - - - -
		`, game.Blue)
		require.NoError(t, err)

		move := New(WithDepth(2), WithSeed(5)).FindMove(board)

		after := board.Copy()
		require.NoError(t, after.MakeMove(move))
		require.Equal(t, game.Blue, after.Winner())
	})
}

func TestFindAllPossibleMoves(t *testing.T) {
	t.Run("opening position offers each corner its neighborhood", func(t *testing.T) {
		board := game.NewBoard()

		moves := findAllPossibleMoves(board, game.Red)

		// Each red corner reaches the 8 open squares of its quadrant.
		require.Len(t, moves, 16)
		for _, m := range moves {
			require.False(t, m.IsPass(), "generation never yields a pass")
			require.True(t, board.LegalMove(m), "%s should be legal", m)
		}
	})

	t.Run("yields nothing for a frozen side", func(t *testing.T) {
		board, err := game.ParseBoard(frozenRedPosition, game.Red)
		require.NoError(t, err)
		require.Empty(t, findAllPossibleMoves(board, game.Red))
		require.NotEmpty(t, findAllPossibleMoves(board, game.Blue))
	})
}

func TestStaticScore(t *testing.T) {
	t.Run("decided positions get the full magnitude", func(t *testing.T) {
		redWin, err := game.ParseBoard(`
			- - - - - - -
			- - - - - - -
			- - - - - - -
			- - - - - - -
			- - r - - - -
			- - - - - - -
			- - - - - - -
		`, game.Blue)
		require.NoError(t, err)
		require.Equal(t, game.Red, redWin.Winner())
		require.Equal(t, 1000, staticScore(redWin, 1000))

		blueWin, err := game.ParseBoard(`
			- - - - - - -
			- - - - - - -
			- - - - - - -
			- - - - - - -
			- - b - - - -
			- - - - - - -
			- - - - - - -
		`, game.Red)
		require.NoError(t, err)
		require.Equal(t, -1000, staticScore(blueWin, 1000))
	})

	t.Run("open positions score the piece differential", func(t *testing.T) {
		require.Equal(t, 0, staticScore(game.NewBoard(), 1000))

		board, err := game.ParseBoard(`
			r - - - - - -
			r - - - - - -
			r - - - - - -
			- - - - - - -
			- - - - - - -
			- - - - - - -
			- - - - - - b
		`, game.Red)
		require.NoError(t, err)
		require.Equal(t, 2, staticScore(board, 1000))
	})
}

func TestMetricsCollector(t *testing.T) {
	m := NewMetricsCollector()
	m.Start()
	m.AddNode()
	m.AddNode()
	m.AddLeaf()
	m.AddCutoff()

	got := m.Complete()
	require.Equal(t, int64(2), got.Nodes)
	require.Equal(t, int64(1), got.Leaves)
	require.Equal(t, int64(1), got.Cutoffs)
	require.False(t, got.StartTime.IsZero())

	t.Run("search populates the collector", func(t *testing.T) {
		s := New(WithDepth(2), WithMetrics())
		s.FindMove(game.NewBoard())
		metric := s.metrics.Complete()
		require.Greater(t, metric.Leaves, int64(0))
		require.Greater(t, metric.Nodes, int64(0))
	})
}
