package service

import (
	"context"
	"math/rand"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

// FirstFreeAgent plays the first empty cell in row-major order. It stands in for a search-based strategy.
type FirstFreeAgent struct{}

func NewFirstFreeAgent() *FirstFreeAgent {
	return &FirstFreeAgent{}
}

func (that *FirstFreeAgent) SelectMove(_ context.Context, board BoardView) (entity.Move, error) {
	mv, ok := board.NextMove(nil)
	if !ok {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return mv, nil
}

// RandomAgent picks uniformly among the empty cells.
type RandomAgent struct {
	rnd *rand.Rand
}

func NewRandomAgent(rnd *rand.Rand) *RandomAgent {
	return &RandomAgent{rnd: rnd}
}

func (that *RandomAgent) SelectMove(_ context.Context, board BoardView) (entity.Move, error) {
	availableMoves := make([]entity.Move, 0, board.Width()*board.Height())
	for mv := range board.Moves() {
		availableMoves = append(availableMoves, mv)
	}

	if len(availableMoves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return availableMoves[that.rnd.Intn(len(availableMoves))], nil
}
