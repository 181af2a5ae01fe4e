package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mnk-game/internal/config"
	"github.com/rocketscienceinc/mnk-game/internal/mnk"
	"github.com/rocketscienceinc/mnk-game/internal/service"
	"github.com/rocketscienceinc/mnk-game/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// run - plays one game with the configured board and agents, reading human input from in and drawing on out.
func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	board, err := mnk.NewBoard(conf.Board.Width, conf.Board.Height, conf.Board.RunLength)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	lines := service.NewLineReader(in)
	defer lines.Close()

	opts := service.AgentOptions{
		Lines:      lines,
		Out:        out,
		MaxRetries: conf.Agent.MaxInputRetries,
		Seed:       conf.Agent.Seed,
	}

	first, err := service.NewAgent(conf.Players.First, opts)
	if err != nil {
		return fmt.Errorf("could not create first agent: %w", err)
	}

	second, err := service.NewAgent(conf.Players.Second, opts)
	if err != nil {
		return fmt.Errorf("could not create second agent: %w", err)
	}

	display := usecase.NewDisplay(out, !conf.Display.NoColor)
	gameManager := usecase.NewGameManager(logger, display, first, second)

	if _, err = gameManager.Play(ctx, board); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	return nil
}
