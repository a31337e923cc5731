package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"required"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"oneof=dev staging prod test"`

	// Loot box economy knobs
	PoolCapacity       int           `validate:"gte=1"`
	BoxTTL             time.Duration `validate:"gt=0"`
	GenerationInterval time.Duration `validate:"gt=0"`
	FrameInterval      time.Duration `validate:"gt=0"`

	// Catalog
	ItemsPath string `validate:"required"`

	// Event resilience
	DeadLetterPath string

	// Observability; empty disables the metrics listener
	MetricsAddr string

	// Default session player
	PlayerName string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:      getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),
		ItemsPath:      getEnv("ITEMS_PATH", DefaultItemsPath),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		MetricsAddr:    getEnv("METRICS_ADDR", DefaultMetricsAddr),
		PlayerName:     getEnv("PLAYER_NAME", DefaultPlayerName),
	}

	var err error
	if cfg.PoolCapacity, err = getEnvInt("POOL_CAPACITY", DefaultPoolCapacity); err != nil {
		return nil, err
	}
	if cfg.BoxTTL, err = getEnvSeconds("BOX_TTL_SECONDS", DefaultBoxTTLSeconds); err != nil {
		return nil, err
	}
	if cfg.GenerationInterval, err = getEnvSeconds("GENERATION_INTERVAL_SECONDS", DefaultGenerationIntervalSeconds); err != nil {
		return nil, err
	}
	frameMillis, err := getEnvInt("FRAME_INTERVAL_MS", DefaultFrameIntervalMillis)
	if err != nil {
		return nil, err
	}
	cfg.FrameInterval = time.Duration(frameMillis) * time.Millisecond

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}

// getEnvSeconds retrieves a seconds-denominated env var as a duration
func getEnvSeconds(key string, defaultSeconds int) (time.Duration, error) {
	n, err := getEnvInt(key, defaultSeconds)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}
