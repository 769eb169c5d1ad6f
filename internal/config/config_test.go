package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navwar/seabattle/internal/config"
)

func TestParseEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.ParseEnv()
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:4239", cfg.Addr)
		assert.Empty(t, cfg.DBPath)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("SEABATTLE_ADDR", "0.0.0.0:8080")
		t.Setenv("SEABATTLE_DB_PATH", "/var/lib/seabattle/games.db")

		cfg, err := config.ParseEnv()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
		assert.Equal(t, "/var/lib/seabattle/games.db", cfg.DBPath)
	})
}
