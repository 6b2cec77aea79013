package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string // "development" or "production"
}

// GameConfig holds game-related configuration
type GameConfig struct {
	TurnDuration         time.Duration
	MaxRounds            int
	AllowSkips           bool
	SkipPenalty          int
	MaxPlayers           int // 0 means no capacity limit
	ReconnectGracePeriod time.Duration
	CleanupCheckInterval time.Duration
	BuzzTimeout          time.Duration
	RoomCodeLength       int
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load loads configuration from environment variables with defaults. A .env
// file in the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Game: GameConfig{
			TurnDuration:         time.Duration(getEnvInt("TURN_DURATION_SECONDS", 60)) * time.Second,
			MaxRounds:            getEnvInt("MAX_ROUNDS", 6),
			AllowSkips:           getEnvBool("ALLOW_SKIPS", true),
			SkipPenalty:          getEnvInt("SKIP_PENALTY", 0),
			MaxPlayers:           getEnvInt("MAX_PLAYERS", 0),
			ReconnectGracePeriod: time.Duration(getEnvInt("RECONNECT_GRACE_PERIOD_SECONDS", 30)) * time.Second,
			CleanupCheckInterval: time.Duration(getEnvInt("CLEANUP_CHECK_INTERVAL_SECONDS", 10)) * time.Second,
			BuzzTimeout:          time.Duration(getEnvInt("BUZZ_TIMEOUT_SECONDS", 10)) * time.Second,
			RoomCodeLength:       getEnvInt("ROOM_CODE_LENGTH", 5),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as a boolean or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
