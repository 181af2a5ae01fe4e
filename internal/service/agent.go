package service

import (
	"context"
	"fmt"
	"io"
	"iter"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

const (
	KindCLI       = "cli"
	KindFirstFree = "first-free"
	KindRandom    = "random"
)

// BoardView - read-only part of the board an agent may look at.
type BoardView interface {
	Width() int
	Height() int
	CurrentPlayer() entity.Player
	InBounds(mv entity.Move) bool
	IsEmpty(mv entity.Move) bool
	NextMove(last *entity.Move) (entity.Move, bool)
	Moves() iter.Seq[entity.Move]
	String() string
}

// Agent chooses a move for the player to move. It must not mutate the board; the driver executes the move.
type Agent interface {
	SelectMove(ctx context.Context, board BoardView) (entity.Move, error)
}

// AgentOptions - shared by every agent of one game. Lines is the single input stream all CLI agents read from.
type AgentOptions struct {
	Lines      *LineReader
	Out        io.Writer
	MaxRetries int
	Seed       int64
}

// NewAgent - builds the agent configured under kind.
func NewAgent(kind string, opts AgentOptions) (Agent, error) {
	switch kind {
	case KindCLI:
		return NewCLIAgent(opts.Lines, opts.Out, opts.MaxRetries), nil
	case KindFirstFree:
		return NewFirstFreeAgent(), nil
	case KindRandom:
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return NewRandomAgent(rand.New(rand.NewSource(seed))), nil //nolint: gosec // game bot, not crypto
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAgent, kind)
	}
}
