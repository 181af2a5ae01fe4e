package mnk

import (
	"iter"

	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

// NextMove returns the first empty cell after last in row-major order, scanning from the top-left corner when
// last is nil. last may lie off the board: rows above and columns left of the board come before every cell,
// rows below and columns right of it after. The boolean is false once no empty cell remains.
func (that *Board) NextMove(last *entity.Move) (entity.Move, bool) {
	start := 0
	if last != nil {
		if last.Row >= that.height {
			return entity.Move{}, false
		}
		if last.Row >= 0 {
			start = last.Row*that.width + min(max(last.Col, -1), that.width-1) + 1
		}
	}

	for i := start; i < that.width*that.height; i++ {
		col, row := i%that.width, i/that.width
		if that.grid[row][col] == entity.NoPlayer {
			return entity.NewMove(col, row), true
		}
	}

	return entity.Move{}, false
}

// Moves yields every empty cell, left to right and top to bottom. Each call restarts the scan; mutating the board
// while a sequence is being consumed leaves the rest of that sequence undefined.
func (that *Board) Moves() iter.Seq[entity.Move] {
	return func(yield func(entity.Move) bool) {
		mv, ok := that.NextMove(nil)
		for ok {
			if !yield(mv) {
				return
			}
			mv, ok = that.NextMove(&mv)
		}
	}
}

// AvailableMoves collects Moves into a slice.
func (that *Board) AvailableMoves() []entity.Move {
	moves := make([]entity.Move, 0, that.width*that.height-that.Occupied())
	for mv := range that.Moves() {
		moves = append(moves, mv)
	}

	return moves
}

func (that *Board) HasMoves() bool {
	_, ok := that.NextMove(nil)
	return ok
}
