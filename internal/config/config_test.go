package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8089", cfg.Server.WebSocket.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "wizardswar.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Game.SeedDistractionRounds)
	assert.Equal(t, 2, cfg.Game.ItemDistractionRounds)
	assert.Equal(t, []string{"ashtray", "candle", "hourglass"}, cfg.Game.TableItems)
	assert.Equal(t, "cunning", cfg.Game.Strategy)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  websocket:
    address: ":9100"
logging:
  level: debug
  format: json
game:
  strategy: novice
  seed_distraction_rounds: 3
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Server.WebSocket.Address)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "novice", cfg.Game.Strategy)
	assert.Equal(t, 3, cfg.Game.SeedDistractionRounds)
	// Untouched keys keep their defaults.
	assert.Equal(t, "wizardswar.db", cfg.Database.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("WIZWAR_LOGGING_LEVEL", "warn")
	t.Setenv("WIZWAR_DATABASE_PATH", "/tmp/history.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/history.db", cfg.Database.Path)
}
