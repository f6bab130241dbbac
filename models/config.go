package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds file-based defaults for the CLI. Flags override every field.
type Config struct {
	WorkerCount      int           `yaml:"workers"`
	Timeout          time.Duration `yaml:"timeout"`
	TopN             int           `yaml:"top"`
	Delimiters       string        `yaml:"delimiters"`
	Ignore           string        `yaml:"ignore"`
	DefaultStopwords bool          `yaml:"default_stopwords"`
	CacheDir         string        `yaml:"cache_dir"`
	CacheMaxAge      time.Duration `yaml:"cache_max_age"`
	DBPath           string        `yaml:"db"`
	UserAgent        string        `yaml:"user_agent"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		WorkerCount: 4,
		Timeout:     30 * time.Second,
		TopN:        25,
		CacheMaxAge: time.Hour,
		UserAgent:   "page-analyser/1.0",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
