package mnk

import "github.com/rocketscienceinc/mnk-game/internal/entity"

type direction struct {
	dCol, dRow int
}

// lineDirections - horizontal, vertical, "\" diagonal and "/" diagonal. The opposite
// directions are covered by stepping backwards.
var lineDirections = [4]direction{
	{dCol: 1, dRow: 0},
	{dCol: 0, dRow: 1},
	{dCol: 1, dRow: 1},
	{dCol: 1, dRow: -1},
}

// CompletesLine reports whether the mark at mv is part of a run of at least RunLength same-player cells along
// any line direction. It is meant to be called right after mv was executed; an empty or out-of-bounds mv
// returns false.
func (that *Board) CompletesLine(mv entity.Move) bool {
	target := that.At(mv)
	if target == entity.NoPlayer {
		return false
	}

	for _, dir := range lineDirections {
		forward := that.countRun(mv, dir.dCol, dir.dRow, target)
		backward := that.countRun(mv, -dir.dCol, -dir.dRow, target)

		if forward+backward+1 >= that.runLength {
			return true
		}
	}

	return false
}

// countRun counts consecutive cells owned by player, starting next to mv and stepping by (dCol, dRow).
// It stops at the first foreign or empty cell, at the board edge, or once a full run is already certain.
func (that *Board) countRun(mv entity.Move, dCol, dRow int, player entity.Player) int {
	count := 0
	col, row := mv.Col+dCol, mv.Row+dRow

	for count < that.runLength && that.InBounds(entity.NewMove(col, row)) && that.grid[row][col] == player {
		count++
		col += dCol
		row += dRow
	}

	return count
}

// Winner recomputes the result from the whole board. It reports the owner of the first winning cell in
// row-major order, a draw when nobody has won and no empty cell is left, and false while the game goes on.
func (that *Board) Winner() (entity.GameResult, bool) {
	for row := range that.height {
		for col := range that.width {
			player := that.grid[row][col]
			if player == entity.NoPlayer {
				continue
			}

			if that.CompletesLine(entity.NewMove(col, row)) {
				return entity.PlayerWon(player), true
			}
		}
	}

	if !that.HasMoves() {
		return entity.Draw(), true
	}

	return entity.GameResult{}, false
}
