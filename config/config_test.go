package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"MAKAO_PLAYERS", "MAKAO_SEED", "MAKAO_HUMAN_PLAYER",
		"MAKAO_LOG_LEVEL", "MAKAO_TURN_DELAY", "MAKAO_MAX_TURNS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, []string{"Andy", "Tom", "Max"}, cfg.Players)
		assert.Equal(t, int64(0), cfg.Seed)
		assert.Equal(t, "", cfg.HumanPlayer)
		assert.Equal(t, logrus.InfoLevel, cfg.Level())
		assert.Equal(t, 100*time.Millisecond, cfg.TurnDelay)
		assert.Equal(t, 1000, cfg.MaxTurns)
	})

	t.Run("from the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAKAO_PLAYERS", "Ann;Bea")
		t.Setenv("MAKAO_SEED", "42")
		t.Setenv("MAKAO_HUMAN_PLAYER", "Bea")
		t.Setenv("MAKAO_LOG_LEVEL", "debug")
		t.Setenv("MAKAO_TURN_DELAY", "0s")
		t.Setenv("MAKAO_MAX_TURNS", "10")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, []string{"Ann", "Bea"}, cfg.Players)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, "Bea", cfg.HumanPlayer)
		assert.Equal(t, logrus.DebugLevel, cfg.Level())
		assert.Equal(t, time.Duration(0), cfg.TurnDelay)
		assert.Equal(t, 10, cfg.MaxTurns)
	})

	t.Run("a missing env file is fine", func(t *testing.T) {
		clearEnv(t)

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.NoError(t, err)
	})

	t.Run("from an env file", func(t *testing.T) {
		const key = "MAKAO_MAX_TURNS"
		if _, ok := os.LookupEnv(key); ok {
			t.Skipf("%s is already set", key)
		}
		t.Cleanup(func() { os.Unsetenv(key) })

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte(key+"=7\n"), 0o600))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 7, cfg.MaxTurns)
	})

	t.Run("invalid values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAKAO_PLAYERS", "Ann")

		_, err := Load("")

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Players:   []string{"Andy", "Tom"},
			LogLevel:  "info",
			TurnDelay: time.Millisecond,
			MaxTurns:  1,
		}
	}

	tt := []struct {
		name   string
		change func(c *Config)
	}{
		{"too few players", func(c *Config) { c.Players = []string{"Andy"} }},
		{"too many players", func(c *Config) { c.Players = []string{"a", "b", "c", "d", "e"} }},
		{"duplicate players", func(c *Config) { c.Players = []string{"Andy", "Andy"} }},
		{"empty name", func(c *Config) { c.Players = []string{"Andy", ""} }},
		{"unknown human", func(c *Config) { c.HumanPlayer = "Max" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative delay", func(c *Config) { c.TurnDelay = -time.Second }},
		{"no turns", func(c *Config) { c.MaxTurns = 0 }},
	}

	c := valid()
	require.NoError(t, c.Validate())

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.change(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
