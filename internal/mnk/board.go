// Package mnk implements the board state of an m,n,k game: an M-wide by N-tall grid where a player wins by
// placing K of their marks in an unbroken horizontal, vertical or diagonal line.
//
// A Board is not safe for concurrent use. Search code that explores several branches at once should Clone it
// per branch.
package mnk

import (
	"fmt"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

// Board holds the grid, indexed [row][col], and the player to move next.
// Width, height and run length never change after construction.
type Board struct {
	width     int
	height    int
	runLength int

	grid          [][]entity.Player
	currentPlayer entity.Player
}

// NewBoard - creates an empty board with the first player to move.
func NewBoard(width, height, runLength int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, width, height)
	}

	if runLength < 1 || runLength > max(width, height) {
		return nil, fmt.Errorf("%w: run length %d on a %dx%d board", apperror.ErrInvalidDimensions, runLength, width, height)
	}

	grid := make([][]entity.Player, height)
	for row := range grid {
		grid[row] = make([]entity.Player, width)
	}

	return &Board{
		width:         width,
		height:        height,
		runLength:     runLength,
		grid:          grid,
		currentPlayer: entity.First,
	}, nil
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

func (that *Board) RunLength() int {
	return that.runLength
}

func (that *Board) CurrentPlayer() entity.Player {
	return that.currentPlayer
}

// InBounds reports whether mv addresses a cell of this board.
func (that *Board) InBounds(mv entity.Move) bool {
	return mv.Col >= 0 && mv.Col < that.width && mv.Row >= 0 && mv.Row < that.height
}

// At returns the owner of the cell at mv, or NoPlayer when the cell is empty or out of bounds.
func (that *Board) At(mv entity.Move) entity.Player {
	if !that.InBounds(mv) {
		return entity.NoPlayer
	}

	return that.grid[mv.Row][mv.Col]
}

func (that *Board) IsEmpty(mv entity.Move) bool {
	return that.InBounds(mv) && that.grid[mv.Row][mv.Col] == entity.NoPlayer
}

// Occupied counts the cells holding a mark.
func (that *Board) Occupied() int {
	count := 0
	for _, row := range that.grid {
		for _, cell := range row {
			if cell != entity.NoPlayer {
				count++
			}
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return that.Occupied() == that.width*that.height
}

// Clone returns a deep copy that shares no memory with the original.
func (that *Board) Clone() *Board {
	grid := make([][]entity.Player, that.height)
	for row := range grid {
		grid[row] = make([]entity.Player, that.width)
		copy(grid[row], that.grid[row])
	}

	return &Board{
		width:         that.width,
		height:        that.height,
		runLength:     that.runLength,
		grid:          grid,
		currentPlayer: that.currentPlayer,
	}
}
