package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/mnk-game/internal/mnk"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New returns a context bounded by maxWaitDuration and a suite whose logger swallows output.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board builds a board from a picture, see mnk.Parse.
func Board(t *testing.T, runLength int, rows ...string) *mnk.Board {
	t.Helper()

	board, err := mnk.Parse(runLength, rows...)
	if err != nil {
		t.Fatalf("could not parse board: %v", err)
	}

	return board
}

// EmptyBoard builds a width x height board with no marks.
func EmptyBoard(t *testing.T, width, height, runLength int) *mnk.Board {
	t.Helper()

	board, err := mnk.NewBoard(width, height, runLength)
	if err != nil {
		t.Fatalf("could not create board: %v", err)
	}

	return board
}
