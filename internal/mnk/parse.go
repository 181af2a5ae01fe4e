package mnk

import (
	"fmt"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

// Parse builds a board from one string per row, top row first: 'X' and 'O' are marks, '.' and ' ' are empty
// cells. The first player moves next unless X already has more marks than O.
func Parse(runLength int, rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", apperror.ErrInvalidBoard)
	}

	board, err := NewBoard(len(rows[0]), len(rows), runLength)
	if err != nil {
		return nil, err
	}

	counts := map[entity.Player]int{}
	for row, line := range rows {
		if len(line) != board.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidBoard, row, len(line), board.width)
		}

		for col := range len(line) {
			player, err := parseCell(line[col])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}

			board.grid[row][col] = player
			counts[player]++
		}
	}

	if counts[entity.First] > counts[entity.Second] {
		board.currentPlayer = entity.Second
	}

	return board, nil
}

func parseCell(ch byte) (entity.Player, error) {
	switch ch {
	case 'X', 'x':
		return entity.First, nil
	case 'O', 'o':
		return entity.Second, nil
	case '.', ' ':
		return entity.NoPlayer, nil
	default:
		return entity.NoPlayer, fmt.Errorf("%w: unknown cell %q", apperror.ErrInvalidBoard, ch)
	}
}
