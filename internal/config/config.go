package config

import (
	"os"
	"strconv"

	"statcalc/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
}

// AnalysisConfig holds statistical analysis settings
type AnalysisConfig struct {
	// Alpha is the significance threshold for the equal-variance decision.
	Alpha float64
}

// DefaultAlpha is the conventional significance threshold used when none is
// configured.
const DefaultAlpha = 0.05

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	analysisConfig, err := loadAnalysisConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analysis configuration")
	}

	return &Config{Analysis: *analysisConfig}, nil
}

func loadAnalysisConfig() (*AnalysisConfig, error) {
	cfg := &AnalysisConfig{Alpha: DefaultAlpha}

	if raw := os.Getenv("STATCALC_ALPHA"); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("STATCALC_ALPHA must be a number")
		}
		cfg.Alpha = alpha
	}

	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return nil, errors.ConfigInvalid("significance threshold must be in (0, 1)")
	}

	return cfg, nil
}
