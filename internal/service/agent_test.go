package service

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
	"github.com/rocketscienceinc/mnk-game/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstFreeAgent_SelectMove(t *testing.T) {
	ctx, _ := suite.New(t)
	agent := NewFirstFreeAgent()

	t.Run("First empty cell", func(t *testing.T) {
		// Given: a board with the first two cells taken
		board := suite.Board(t, 3, "XO.", "...", "...")

		// When: the agent selects a move
		mv, err := agent.SelectMove(ctx, board)

		// Then: the next empty cell in row-major order is chosen
		require.NoError(t, err)
		require.Equal(t, entity.NewMove(2, 0), mv)
	})

	t.Run("Full board", func(t *testing.T) {
		board := suite.Board(t, 3, "XOX", "XOO", "OXX")

		_, err := agent.SelectMove(ctx, board)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestRandomAgent_SelectMove(t *testing.T) {
	ctx, _ := suite.New(t)
	agent := NewRandomAgent(rand.New(rand.NewSource(3)))

	t.Run("Always legal", func(t *testing.T) {
		// Given: a board with a few free cells
		board := suite.Board(t, 3, "XO.", "OX.", "X.O")

		seen := map[entity.Move]bool{}
		for range 100 {
			// When: the agent selects a move
			mv, err := agent.SelectMove(ctx, board)
			require.NoError(t, err)

			// Then: the move targets an empty cell
			require.True(t, board.IsEmpty(mv), "move %s", mv)
			seen[mv] = true
		}

		// Then: every free cell gets picked eventually
		assert.Len(t, seen, 3)
	})

	t.Run("Full board", func(t *testing.T) {
		board := suite.Board(t, 1, "XO")

		_, err := agent.SelectMove(ctx, board)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestCLIAgent_SelectMove(t *testing.T) {
	ctx, _ := suite.New(t)

	t.Run("Valid input", func(t *testing.T) {
		// Given: a human typing "2 1"
		var out bytes.Buffer
		agent := NewCLIAgent(NewLineReader(strings.NewReader("2 1\n")), &out, 3)
		board := suite.EmptyBoard(t, 3, 3, 3)

		// When: the agent selects a move
		mv, err := agent.SelectMove(ctx, board)

		// Then: column 2, row 1 is returned after one prompt
		require.NoError(t, err)
		require.Equal(t, entity.NewMove(2, 1), mv)
		assert.Equal(t, 1, strings.Count(out.String(), "X to move"))
	})

	t.Run("Retries invalid input", func(t *testing.T) {
		// Given: garbage, an out-of-bounds move, an occupied cell, then a legal move
		var out bytes.Buffer
		input := "hello\n5 5\n0,0\n(1, 0)\n"
		agent := NewCLIAgent(NewLineReader(strings.NewReader(input)), &out, 5)
		board := suite.Board(t, 3, "X..", "...", "...")

		// When: the agent selects a move
		mv, err := agent.SelectMove(ctx, board)

		// Then: the legal move wins after each bad line is reported
		require.NoError(t, err)
		require.Equal(t, entity.NewMove(1, 0), mv)
		assert.Contains(t, out.String(), apperror.ErrInvalidInput.Error())
		assert.Contains(t, out.String(), apperror.ErrOutOfBounds.Error())
		assert.Contains(t, out.String(), apperror.ErrPositionOccupied.Error())
		assert.Equal(t, 4, strings.Count(out.String(), "O to move"))
	})

	t.Run("Too many retries", func(t *testing.T) {
		// Given: more bad lines than the agent accepts
		agent := NewCLIAgent(NewLineReader(strings.NewReader("a\nb\nc\n1 1\n")), io.Discard, 2)
		board := suite.EmptyBoard(t, 3, 3, 3)

		// When: the agent selects a move
		_, err := agent.SelectMove(ctx, board)

		// Then: it gives up instead of asking forever
		require.ErrorIs(t, err, apperror.ErrTooManyRetries)
	})

	t.Run("Unlimited retries", func(t *testing.T) {
		agent := NewCLIAgent(NewLineReader(strings.NewReader(strings.Repeat("x\n", 1000)+"0 0\n")), io.Discard, 0)
		board := suite.EmptyBoard(t, 3, 3, 3)

		mv, err := agent.SelectMove(ctx, board)

		require.NoError(t, err)
		require.Equal(t, entity.NewMove(0, 0), mv)
	})

	t.Run("End of input", func(t *testing.T) {
		agent := NewCLIAgent(NewLineReader(strings.NewReader("")), io.Discard, 3)
		board := suite.EmptyBoard(t, 3, 3, 3)

		_, err := agent.SelectMove(ctx, board)

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		agent := NewCLIAgent(NewLineReader(strings.NewReader("0 0\n")), io.Discard, 3)
		board := suite.EmptyBoard(t, 3, 3, 3)

		_, err := agent.SelectMove(cancelled, board)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Negative coordinates are out of bounds", func(t *testing.T) {
		// Given: a human typing a negative column, then a legal move
		var out bytes.Buffer
		agent := NewCLIAgent(NewLineReader(strings.NewReader("-1 0\n2 0\n")), &out, 3)
		board := suite.EmptyBoard(t, 3, 3, 3)

		// When: the agent selects a move
		mv, err := agent.SelectMove(ctx, board)

		// Then: the negative move is rejected instead of read as (1, 0)
		require.NoError(t, err)
		require.Equal(t, entity.NewMove(2, 0), mv)
		assert.Contains(t, out.String(), apperror.ErrOutOfBounds.Error())
	})

	t.Run("Two agents share one input", func(t *testing.T) {
		// Given: both players typing into the same terminal
		lines := NewLineReader(strings.NewReader("0 0\n1 0\n0 1\n"))
		t.Cleanup(lines.Close)
		agentX := NewCLIAgent(lines, io.Discard, 3)
		agentO := NewCLIAgent(lines, io.Discard, 3)
		board := suite.EmptyBoard(t, 3, 3, 3)

		// When: they take turns
		var moves []entity.Move
		for _, agent := range []*CLIAgent{agentX, agentO, agentX} {
			mv, err := agent.SelectMove(ctx, board)
			require.NoError(t, err)
			require.NoError(t, board.ExecuteMove(mv))
			moves = append(moves, mv)
		}

		// Then: each agent gets the next line, none is swallowed by the other
		require.Equal(t, []entity.Move{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 1}}, moves)
	})

	t.Run("Keeps buffered input between moves", func(t *testing.T) {
		agent := NewCLIAgent(NewLineReader(strings.NewReader("0 0\n1 1\n")), io.Discard, 3)
		board := suite.EmptyBoard(t, 3, 3, 3)

		first, err := agent.SelectMove(ctx, board)
		require.NoError(t, err)
		require.NoError(t, board.ExecuteMove(first))

		second, err := agent.SelectMove(ctx, board)
		require.NoError(t, err)
		require.Equal(t, entity.NewMove(1, 1), second)
	})
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		line     string
		expected entity.Move
	}{
		{line: "1 2", expected: entity.NewMove(1, 2)},
		{line: "(1, 2)", expected: entity.NewMove(1, 2)},
		{line: "col 10 row 0 extra 7", expected: entity.NewMove(10, 0)},
		{line: "-1 0", expected: entity.NewMove(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			mv, err := ParseInput(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.expected, mv)
		})
	}

	for _, line := range []string{"", "1", "a b", "99999999999999999999999 1"} {
		t.Run("invalid "+line, func(t *testing.T) {
			_, err := ParseInput(line)
			require.ErrorIs(t, err, apperror.ErrInvalidInput)
		})
	}
}

func TestNewAgent(t *testing.T) {
	for _, kind := range []string{KindCLI, KindFirstFree, KindRandom} {
		t.Run(kind, func(t *testing.T) {
			agent, err := NewAgent(kind, AgentOptions{Lines: NewLineReader(strings.NewReader("")), Out: io.Discard, Seed: 1})
			require.NoError(t, err)
			require.NotNil(t, agent)
		})
	}

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := NewAgent("minimax", AgentOptions{})
		require.ErrorIs(t, err, apperror.ErrUnknownAgent)
	})
}

func TestLineReader(t *testing.T) {
	ctx, _ := suite.New(t)

	t.Run("Lines then EOF", func(t *testing.T) {
		lines := NewLineReader(strings.NewReader("a\nb\n"))
		t.Cleanup(lines.Close)

		first, err := lines.ReadLine(ctx)
		require.NoError(t, err)
		require.Equal(t, "a", first)

		second, err := lines.ReadLine(ctx)
		require.NoError(t, err)
		require.Equal(t, "b", second)

		_, err = lines.ReadLine(ctx)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Close releases the reading goroutine", func(t *testing.T) {
		// Given: a reader whose goroutine holds an unread line
		lines := NewLineReader(strings.NewReader("a\nb\nc\n"))
		_, err := lines.ReadLine(ctx)
		require.NoError(t, err)

		// When: the reader is closed before the rest is consumed
		lines.Close()
		lines.Close()

		// Then: the goroutine exits and closes its channel
		require.Eventually(t, func() bool {
			select {
			case _, ok := <-lines.lines:
				return !ok
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)

		// Then: further reads fail instead of blocking
		_, err = lines.ReadLine(ctx)
		require.Error(t, err)
	})
}
