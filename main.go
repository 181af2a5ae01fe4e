package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/mnk-game/internal"
	"github.com/rocketscienceinc/mnk-game/internal/config"
)

const (
	defaultConfigFile = "config.yml"
	configPathEnv     = "MNK_CONFIG"
)

// main - starts one game: flags and environment pick the config file, the config picks board and players.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	path, err := configPath(os.Args[1:], os.Getenv(configPathEnv))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	conf := config.MustLoad(path)
	logger := newLogger(os.Stderr, conf.LogLevel)

	if err = app.RunApp(logger, conf); err != nil {
		logger.Error("Game aborted", "error", err)
		os.Exit(1)
	}
}

// configPath - "-config" wins over MNK_CONFIG, which wins over config.yml in the working directory.
func configPath(args []string, fromEnv string) (string, error) {
	flags := flag.NewFlagSet("mnk-game", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	path := flags.String("config", fromEnv, "path to the config file")

	if err := flags.Parse(args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if *path != "" {
		return *path, nil
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return filepath.Join(baseDir, defaultConfigFile), nil
}

// newLogger - JSON records on w, which must not be stdout: stdout belongs to the board.
func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// parseLevel - unknown levels fall back to info.
func parseLevel(level string) slog.Level {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}

	return parsed
}
