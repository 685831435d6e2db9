// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
)

const (
	EnvCurriculum = "GRADEPOINT_CURRICULUM"
	EnvLog        = "GRADEPOINT_LOG"
	EnvPrecision  = "GRADEPOINT_PRECISION"
	EnvLetters    = "GRADEPOINT_LETTERS"
)

// Config holds process-wide settings.
type Config struct {
	// CurriculumPath points at a curriculum YAML file. Empty selects the
	// embedded curriculum.
	CurriculumPath string
	// LogUseCases writes one log line per calculation to stderr.
	LogUseCases bool
	// Precision is the number of decimals shown for SPI and CPI.
	Precision int
	// AllowLetters accepts AA..FF in place of numeric grade points.
	AllowLetters bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Precision:    3,
		AllowLetters: true,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or malformed values.
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv(EnvCurriculum); v != "" {
		cfg.CurriculumPath = v
	}
	if v := getenv(EnvLog); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := getenv(EnvPrecision); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 10 {
			cfg.Precision = n
		}
	}
	if v := getenv(EnvLetters); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AllowLetters = b
		}
	}

	return cfg
}
