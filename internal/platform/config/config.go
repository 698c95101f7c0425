package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config captures process level settings. Every variable is optional; the
// zero environment runs the plain demo.
type Config struct {
	LogLevel    string `env:"PEOPLE_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"PEOPLE_LOG_FORMAT" envDefault:"text"`
	MetricsDump bool   `env:"PEOPLE_METRICS_DUMP" envDefault:"false"`
	TraceLog    bool   `env:"PEOPLE_TRACE_LOG" envDefault:"false"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("PEOPLE_LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("PEOPLE_LOG_LEVEL must be debug, info, warn or error, got %q", cfg.LogLevel)
	}
	return cfg, nil
}
