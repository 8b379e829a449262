// Package config loads the application configuration from an optional .env
// file, WEBMON_* environment variables, and an optional webmon.yaml, with
// fixed defaults for everything.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	TargetsFile  string        `mapstructure:"targets_file"`
	DatabasePath string        `mapstructure:"database_path"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
	HistoryLimit int           `mapstructure:"history_limit"`
}

// Load reads configuration from the environment and an optional config file.
// A missing config file is fine; a malformed one is an error.
func Load() (*Config, error) {
	// Populate the environment from a local .env first, if one exists.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("targets_file", "urls.txt")
	v.SetDefault("database_path", "website_stats.db")
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("history_limit", 10)

	v.SetEnvPrefix("WEBMON")
	v.AutomaticEnv()

	v.SetConfigName("webmon")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TargetsFile == "" {
		return fmt.Errorf("targets_file must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be at least 1, got %d", c.HistoryLimit)
	}
	return nil
}
