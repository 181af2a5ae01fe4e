package usecase

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

const (
	colorFirst  = "#E06C75"
	colorSecond = "#61AFEF"
)

// Display writes boards and results for humans. Colours are only emitted when enabled and the writer is a
// terminal that supports them.
type Display struct {
	out    *termenv.Output
	colors map[entity.Player]termenv.Color
}

func NewDisplay(w io.Writer, color bool) *Display {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	out := termenv.NewOutput(w, opts...)

	return &Display{
		out: out,
		colors: map[entity.Player]termenv.Color{
			entity.First:  out.Color(colorFirst),
			entity.Second: out.Color(colorSecond),
		},
	}
}

func (that *Display) glyph(player entity.Player) string {
	color, ok := that.colors[player]
	if !ok {
		return player.Mark()
	}

	return that.out.String(player.Mark()).Foreground(color).Bold().String()
}

type renderer interface {
	Render(glyph func(entity.Player) string) string
}

func (that *Display) ShowBoard(b renderer) {
	fmt.Fprintln(that.out, b.Render(that.glyph))
}

func (that *Display) ShowResult(result entity.GameResult) {
	fmt.Fprintf(that.out, "Game over. Result: %s\n", result)
}

// NewDiscardDisplay returns a display that draws nothing, for headless games.
func NewDiscardDisplay() *Display {
	return NewDisplay(io.Discard, false)
}
