package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	// Create a temp config file
	content := `
server:
  host: "127.0.0.1"
  port: 8080

redis:
  enabled: true
  addr: "redis:6379"
  password: "secret"
  db: 1

game:
  rounds: 5
  round_seconds: 60
  break_seconds: 5
  max_players: 8
  claim_cooldown_ms: 250
  dictionary_path: "/data/words.txt"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify loaded values
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, 5, cfg.Game.Rounds)
	assert.Equal(t, 60, cfg.Game.RoundSeconds)
	assert.Equal(t, 8, cfg.Game.MaxPlayers)
	assert.Equal(t, "/data/words.txt", cfg.Game.DictionaryPath)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")
	err := os.WriteFile(configPath, []byte("invalid: yaml: :::"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	// Empty config file - defaults should be applied
	content := `{}`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify defaults are applied
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1780, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.Redis.Enabled) // off unless requested
	assert.Equal(t, 3, cfg.Game.Rounds)
	assert.Equal(t, 90, cfg.Game.RoundSeconds)
	assert.Equal(t, 10, cfg.Game.BreakSeconds)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
	assert.Equal(t, 500, cfg.Game.ClaimCooldownMs)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1780, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Game.Rounds)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
}

func TestGameConfig_DurationMethods(t *testing.T) {
	t.Parallel()

	cfg := &GameConfig{
		RoundSeconds:    90,
		BreakSeconds:    10,
		ClaimCooldownMs: 500,
	}

	assert.Equal(t, 90*time.Second, cfg.RoundDuration())
	assert.Equal(t, 10*time.Second, cfg.BreakDuration())
	assert.Equal(t, 500*time.Millisecond, cfg.ClaimCooldown())
}
