package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when an environment variable is set but cannot be parsed.
var ErrInvalidValue = errors.New("invalid config value")

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt is GetEnv for integers.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
	}
	return n, nil
}

// GetEnvFloat is GetEnv for floats.
func GetEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
	}
	return f, nil
}

// GetEnvBool is GetEnv for booleans. Accepts anything strconv.ParseBool does.
func GetEnvBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
	}
	return b, nil
}

// GetEnvPair reads a "x,y" pair of floats.
func GetEnvPair(key string, fallbackX, fallbackY float64) (x, y float64, err error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallbackX, fallbackY, nil
	}
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return fallbackX, fallbackY, fmt.Errorf("%s=%q: want x,y: %w", key, value, ErrInvalidValue)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return fallbackX, fallbackY, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
	}
	return x, y, nil
}
