package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env       string
	LogLevel  slog.Level
	Hash      bool
	MaxCount  int
	MaxLength int
}

func Load() Config {
	return Config{
		Env:       getEnv("PASSGEN_ENV", "development"),
		LogLevel:  getLevel("PASSGEN_LOG_LEVEL", slog.LevelWarn),
		Hash:      getBool("PASSGEN_HASH", false),
		MaxCount:  getInt("PASSGEN_MAX_COUNT", 1000),
		MaxLength: getInt("PASSGEN_MAX_LENGTH", 1024),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
		slog.Warn("invalid log level, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return level
}
