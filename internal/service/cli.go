package service

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

var numberPattern = regexp.MustCompile(`-?\d+`)

// CLIAgent asks a human for moves, one "col row" pair per line. Invalid input is reported and asked again,
// up to maxRetries times per move; maxRetries <= 0 keeps asking until input ends.
type CLIAgent struct {
	lines      *LineReader
	out        io.Writer
	maxRetries int
}

func NewCLIAgent(lines *LineReader, out io.Writer, maxRetries int) *CLIAgent {
	return &CLIAgent{
		lines:      lines,
		out:        out,
		maxRetries: maxRetries,
	}
}

func (that *CLIAgent) SelectMove(ctx context.Context, board BoardView) (entity.Move, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, err
		}

		fmt.Fprintf(that.out, "%s to move, enter column and row: ", board.CurrentPlayer())

		line, err := that.lines.ReadLine(ctx)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		mv, err := validateInput(board, line)
		if err == nil {
			return mv, nil
		}

		fmt.Fprintf(that.out, "%v\n", err)

		if that.maxRetries > 0 && attempt >= that.maxRetries {
			return entity.Move{}, fmt.Errorf("%w: gave up after %d attempts", apperror.ErrTooManyRetries, attempt)
		}
	}
}

// ParseInput - takes the first two numbers of the line as column and row.
func ParseInput(line string) (entity.Move, error) {
	numbers := numberPattern.FindAllString(line, 2)
	if len(numbers) < 2 {
		return entity.Move{}, fmt.Errorf("%w: expected two numbers, got %q", apperror.ErrInvalidInput, line)
	}

	col, err := strconv.Atoi(numbers[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column: %w", apperror.ErrInvalidInput, err)
	}

	row, err := strconv.Atoi(numbers[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row: %w", apperror.ErrInvalidInput, err)
	}

	return entity.NewMove(col, row), nil
}

// validateInput - checks the parsed move against the board so the driver never sees an illegal move.
func validateInput(board BoardView, line string) (entity.Move, error) {
	mv, err := ParseInput(line)
	if err != nil {
		return entity.Move{}, err
	}

	if !board.InBounds(mv) {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, mv)
	}

	if !board.IsEmpty(mv) {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrPositionOccupied, mv)
	}

	return mv, nil
}
