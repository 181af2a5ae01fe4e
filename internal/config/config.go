package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board   `yaml:"board"`
	Players  Players `yaml:"players"`
	Agent    Agent   `yaml:"agent"`
	Display  Display `yaml:"display"`
}

type Board struct {
	Width     int `yaml:"width" env:"MNK_WIDTH" env-default:"3"`
	Height    int `yaml:"height" env:"MNK_HEIGHT" env-default:"3"`
	RunLength int `yaml:"run-length" env:"MNK_RUN_LENGTH" env-default:"3"`
}

type Players struct {
	First  string `yaml:"first" env:"MNK_FIRST_AGENT" env-default:"cli"`
	Second string `yaml:"second" env:"MNK_SECOND_AGENT" env-default:"first-free"`
}

type Agent struct {
	MaxInputRetries int   `yaml:"max-input-retries" env:"MNK_MAX_INPUT_RETRIES" env-default:"5"`
	Seed            int64 `yaml:"seed" env:"MNK_SEED" env-default:"0"`
}

type Display struct {
	NoColor bool `yaml:"no-color" env:"NO_COLOR"`
}

// MustLoad - load all configurations in config.yml file. Without the file only the environment is read.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}
