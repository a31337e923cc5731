package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultPoolCapacity, cfg.PoolCapacity)
	assert.Equal(t, time.Duration(DefaultBoxTTLSeconds)*time.Second, cfg.BoxTTL)
	assert.Equal(t, time.Duration(DefaultGenerationIntervalSeconds)*time.Second, cfg.GenerationInterval)
	assert.Equal(t, time.Duration(DefaultFrameIntervalMillis)*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, DefaultItemsPath, cfg.ItemsPath)
	assert.Equal(t, DefaultPlayerName, cfg.PlayerName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("POOL_CAPACITY", "12")
	t.Setenv("BOX_TTL_SECONDS", "30")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PLAYER_NAME", "ada")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.PoolCapacity)
	assert.Equal(t, 30*time.Second, cfg.BoxTTL)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "ada", cfg.PlayerName)
}

func TestLoad_InvalidInt(t *testing.T) {
	t.Setenv("POOL_CAPACITY", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "POOL_CAPACITY")
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	t.Setenv("POOL_CAPACITY", "0")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_ValidationRejectsBadFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	assert.Error(t, err)
}
