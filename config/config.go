package config

import (
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config configures the command line game. Lists are separated by semicolons.
type Config struct {
	Players     []string      `env:"MAKAO_PLAYERS,default=Andy;Tom;Max"`
	Seed        int64         `env:"MAKAO_SEED,default=0"`
	HumanPlayer string        `env:"MAKAO_HUMAN_PLAYER"`
	LogLevel    string        `env:"MAKAO_LOG_LEVEL,default=info"`
	TurnDelay   time.Duration `env:"MAKAO_TURN_DELAY,default=100ms"`
	MaxTurns    int           `env:"MAKAO_MAX_TURNS,default=1000"`
}

// Load reads the environment, after loading envFile into it if the file
// exists. Variables already set are not overridden by the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "cannot load %s", envFile)
		}
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, errors.Wrap(err, "cannot decode environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Players) < 2 || len(c.Players) > 4 {
		return errors.Wrapf(ErrInvalidConfig, "need 2 to 4 players, got %d", len(c.Players))
	}

	seen := map[string]bool{}
	for _, name := range c.Players {
		if name == "" {
			return errors.Wrap(ErrInvalidConfig, "player names cannot be empty")
		}
		if seen[name] {
			return errors.Wrapf(ErrInvalidConfig, "player %s appears twice", name)
		}
		seen[name] = true
	}

	if c.HumanPlayer != "" && !seen[c.HumanPlayer] {
		return errors.Wrapf(ErrInvalidConfig, "human player %s is not one of the players", c.HumanPlayer)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.TurnDelay < 0 {
		return errors.Wrap(ErrInvalidConfig, "turn delay cannot be negative")
	}
	if c.MaxTurns <= 0 {
		return errors.Wrap(ErrInvalidConfig, "max turns must be positive")
	}

	return nil
}

// Level is the parsed log level; Validate has checked it.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
