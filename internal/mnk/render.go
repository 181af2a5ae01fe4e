package mnk

import (
	"strings"

	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

const (
	cellSeparator = "|"
	rowSeparator  = "-"
)

// Render draws the board one glyph per cell, cells separated by "|" and rows by a dashed line as wide as the
// row. glyph maps a cell owner (NoPlayer for empty cells) to its text.
func (that *Board) Render(glyph func(entity.Player) string) string {
	var sb strings.Builder

	separator := "\n" + strings.Repeat(rowSeparator, 2*that.width-1) + "\n"
	cells := make([]string, that.width)

	for row := range that.grid {
		if row > 0 {
			sb.WriteString(separator)
		}

		for col, cell := range that.grid[row] {
			cells[col] = glyph(cell)
		}
		sb.WriteString(strings.Join(cells, cellSeparator))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (that *Board) String() string {
	return that.Render(entity.Player.Mark)
}
