package mnk

import (
	"fmt"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

// ExecuteMove - places the current player's mark at mv and passes the turn.
// On error the board is left untouched.
func (that *Board) ExecuteMove(mv entity.Move) error {
	if err := that.validateMove(mv); err != nil {
		return err
	}

	if that.grid[mv.Row][mv.Col] != entity.NoPlayer {
		return fmt.Errorf("%w: %s", apperror.ErrPositionOccupied, mv)
	}

	that.grid[mv.Row][mv.Col] = that.currentPlayer
	that.currentPlayer = that.currentPlayer.Other()

	return nil
}

// UndoMove - clears mv and hands the turn back to the player who moved there.
// UndoMove(mv) after a successful ExecuteMove(mv) restores the exact previous board.
func (that *Board) UndoMove(mv entity.Move) error {
	if err := that.validateMove(mv); err != nil {
		return err
	}

	if that.grid[mv.Row][mv.Col] == entity.NoPlayer {
		return fmt.Errorf("%w: %s", apperror.ErrPositionEmpty, mv)
	}

	that.grid[mv.Row][mv.Col] = entity.NoPlayer
	that.currentPlayer = that.currentPlayer.Other()

	return nil
}

// validateMove - checks that mv addresses a cell of this board.
func (that *Board) validateMove(mv entity.Move) error {
	if !that.InBounds(mv) {
		return fmt.Errorf("%w: %s on a %dx%d board", apperror.ErrOutOfBounds, mv, that.width, that.height)
	}

	return nil
}
