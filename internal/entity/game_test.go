package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_Other(t *testing.T) {
	// Then: turns alternate strictly between the two players
	require.Equal(t, Second, First.Other())
	require.Equal(t, First, Second.Other())
	require.Equal(t, First, First.Other().Other())

	// Then: an empty cell has no opponent
	assert.Equal(t, NoPlayer, NoPlayer.Other())
}

func TestPlayer_Mark(t *testing.T) {
	assert.Equal(t, MarkX, First.Mark())
	assert.Equal(t, MarkO, Second.Mark())
	assert.Equal(t, MarkEmpty, NoPlayer.Mark())

	assert.True(t, First.IsValid())
	assert.True(t, Second.IsValid())
	assert.False(t, NoPlayer.IsValid())
}

func TestGameResult(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		// Given: a result won by the second player
		result := PlayerWon(Second)

		// Then: it is a win, not a draw, and renders with the player's mark
		require.True(t, result.IsWon())
		require.False(t, result.IsDraw())
		require.Equal(t, Second, result.Winner)
		assert.Equal(t, "O won", result.String())
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a drawn result
		result := Draw()

		// Then: nobody won
		require.True(t, result.IsDraw())
		require.False(t, result.IsWon())
		require.Equal(t, NoPlayer, result.Winner)
		assert.Equal(t, "draw", result.String())
	})
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "(2, 0)", NewMove(2, 0).String())
}
