package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const RandomFirstPlayer = "random"

var (
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidFirstPlayer = errors.New("invalid first player")
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFile      string `yaml:"log-file" env:"LOG_FILE"`
	FirstPlayer  string `yaml:"first-player" env:"FIRST_PLAYER" env-default:"random"`
	NoColor      bool   `yaml:"no-color" env:"DISABLE_COLOR"`
	ExitOnFinish bool   `yaml:"exit-on-finish" env:"EXIT_ON_FINISH"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads the config file when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)

	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch strings.ToLower(that.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	switch strings.ToLower(that.FirstPlayer) {
	case "x", "o", RandomFirstPlayer:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFirstPlayer, that.FirstPlayer)
	}

	return nil
}

func (that *Config) IsRandomFirstPlayer() bool {
	return strings.EqualFold(that.FirstPlayer, RandomFirstPlayer)
}
