package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
	"github.com/rocketscienceinc/mnk-game/internal/service"
)

type board interface {
	service.BoardView
	renderer

	Winner() (entity.GameResult, bool)
	ExecuteMove(mv entity.Move) error
}

// Game summarises a finished game.
type Game struct {
	ID     string
	Result entity.GameResult
	Moves  []entity.Move
}

type GameManager struct {
	logger  *slog.Logger
	display *Display
	agents  map[entity.Player]service.Agent
}

func NewGameManager(logger *slog.Logger, display *Display, first, second service.Agent) *GameManager {
	return &GameManager{
		logger:  logger.With("component", "game_manager"),
		display: display,
		agents: map[entity.Player]service.Agent{
			entity.First:  first,
			entity.Second: second,
		},
	}
}

// Play - runs the game on b until it has a result. Errors from agents or from executing their moves abort the game.
func (that *GameManager) Play(ctx context.Context, b board) (*Game, error) {
	game := &Game{ID: uuid.NewString()}
	log := that.logger.With("game_id", game.ID)

	if _, over := b.Winner(); over {
		return nil, apperror.ErrGameFinished
	}

	log.Info("Game started", "width", b.Width(), "height", b.Height())

	for {
		if result, over := b.Winner(); over {
			game.Result = result
			break
		}

		if err := ctx.Err(); err != nil {
			log.Info("Game interrupted", "error", err)
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		that.display.ShowBoard(b)

		player := b.CurrentPlayer()
		mv, err := that.agents[player].SelectMove(ctx, b)
		if err != nil {
			log.Error("Agent failed to select move", "player", player.Mark(), "error", err)
			return game, fmt.Errorf("player %s failed to select move: %w", player, err)
		}

		if err = b.ExecuteMove(mv); err != nil {
			log.Error("Agent selected an illegal move", "player", player.Mark(), "move", mv.String(), "error", err)
			return game, fmt.Errorf("player %s made an illegal move: %w", player, err)
		}

		game.Moves = append(game.Moves, mv)
		log.Debug("Move executed", "player", player.Mark(), "move", mv.String())
	}

	that.display.ShowBoard(b)
	that.display.ShowResult(game.Result)

	log.Info("Game finished", "result", game.Result.String(), "moves", len(game.Moves))

	return game, nil
}
