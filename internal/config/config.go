package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogFile     string
	DatabaseURL string
	SQLitePath  string

	PlayerName   string
	LevelDir     string
	TickRate     int
	Seed         int64
	StartLives   int
	AudioEnabled bool

	VaccineDropPercent int
	SmartZombiePercent int
}

func Load() *Config {
	return &Config{
		Port:        getEnvInt("PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogFile:     getEnv("LOG_FILE", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", ""),

		PlayerName:   getEnv("PLAYER_NAME", "player"),
		LevelDir:     getEnv("LEVEL_DIR", "levels"),
		TickRate:     getEnvInt("TICK_RATE", 20),
		Seed:         int64(getEnvInt("SEED", 0)),
		StartLives:   getEnvInt("START_LIVES", 3),
		AudioEnabled: getEnvBool("AUDIO_ENABLED", false),

		VaccineDropPercent: getEnvPercent("VACCINE_DROP_PERCENT", 10),
		SmartZombiePercent: getEnvPercent("SMART_ZOMBIE_PERCENT", 70),
	}
}

// TickInterval converts TickRate into the ticker period.
func (c *Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 20
	}
	return time.Second / time.Duration(c.TickRate)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvPercent reads an integer in [0, 100], falling back when out of range.
func getEnvPercent(key string, fallback int) int {
	p := getEnvInt(key, fallback)
	if p < 0 || p > 100 {
		return fallback
	}
	return p
}
