package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("parses a pass", func(t *testing.T) {
		m, err := ParseMove("-")
		require.NoError(t, err)
		require.True(t, m.IsPass(), "\"-\" should denote a pass")
		require.Equal(t, "-", m.String())
	})

	t.Run("parses an extend", func(t *testing.T) {
		m, err := ParseMove("a1-a2")
		require.NoError(t, err)
		require.True(t, m.IsExtend(), "distance 1 should be an extend")
		require.False(t, m.IsJump())
		require.False(t, m.IsPass())
		require.Equal(t, "a1-a2", m.String(), "String should invert parsing")
	})

	t.Run("parses a jump", func(t *testing.T) {
		m, err := ParseMove("a1-c3")
		require.NoError(t, err)
		require.True(t, m.IsJump(), "Chebyshev distance 2 should be a jump")
		require.False(t, m.IsExtend())
	})

	t.Run("diagonal distance uses the Chebyshev metric", func(t *testing.T) {
		m, err := ParseMove("b2-c4")
		require.NoError(t, err)
		require.True(t, m.IsJump(), "delta (1,2) should classify as a jump")
	})

	t.Run("rejects malformed text", func(t *testing.T) {
		for _, text := range []string{
			"", "a1", "a1a2", "a1-b2x", "a1 b2", "--", "a1-",
		} {
			_, err := ParseMove(text)
			require.ErrorIs(t, err, ErrBadMove, "%q should not parse", text)
		}
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		for _, text := range []string{"h1-h2", "a0-a1", "a7-a8", "A1-A2"} {
			_, err := ParseMove(text)
			require.ErrorIs(t, err, ErrBadMove, "%q should not parse", text)
		}
	})

	t.Run("rejects deltas outside the neighborhood", func(t *testing.T) {
		for _, text := range []string{"a1-a4", "a1-d1", "a1-d4", "a1-a1"} {
			_, err := ParseMove(text)
			require.ErrorIs(t, err, ErrBadMove, "%q should not parse", text)
		}
	})
}

func TestNewMove(t *testing.T) {
	t.Run("rejects the zero delta", func(t *testing.T) {
		_, err := NewMove('c', '3', 'c', '3')
		require.ErrorIs(t, err, ErrBadMove)
	})

	t.Run("accepts moves into the border region", func(t *testing.T) {
		// The board rejects these as moves to blocked squares; the
		// move model only checks the delta shape.
		_, err := NewMove('g', '7', 'g'+2, '7')
		require.NoError(t, err)
	})
}

func TestIndex(t *testing.T) {
	t.Run("maps corners onto the extended grid", func(t *testing.T) {
		require.Equal(t, 2*ExtendedSide+2, Index('a', '1'))
		require.Equal(t, 8*ExtendedSide+8, Index('g', '7'))
	})

	t.Run("ColRow inverts Index over the playable board", func(t *testing.T) {
		for col := byte('a'); col <= 'g'; col++ {
			for row := byte('1'); row <= '7'; row++ {
				gotCol, gotRow := ColRow(Index(col, row))
				require.Equal(t, col, gotCol)
				require.Equal(t, row, gotRow)
			}
		}
	})

	t.Run("Neighbor moves by column and row strides", func(t *testing.T) {
		sq := Index('d', '4')
		require.Equal(t, Index('e', '4'), Neighbor(sq, 1, 0))
		require.Equal(t, Index('d', '5'), Neighbor(sq, 0, 1))
		require.Equal(t, Index('b', '2'), Neighbor(sq, -2, -2))
	})
}
