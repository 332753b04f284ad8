package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server and solver settings. Zero-value fields fall back
// to the defaults below; command-line flags override whatever the file says.
type Config struct {
	Addr         string
	Database     string
	SolveTimeout time.Duration
	LogLevel     string
}

// fileConfig is the on-disk YAML shape. Durations are strings in
// time.ParseDuration syntax ("5s", "1m30s").
type fileConfig struct {
	Addr         string `yaml:"addr"`
	Database     string `yaml:"db"`
	SolveTimeout string `yaml:"solve_timeout"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the settings used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Addr:         ":8080",
		Database:     "./sudoku.db",
		SolveTimeout: 5 * time.Second,
		LogLevel:     "info",
	}
}

// Load reads a YAML config file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if file.Addr != "" {
		cfg.Addr = file.Addr
	}
	if file.Database != "" {
		cfg.Database = file.Database
	}
	if file.SolveTimeout != "" {
		d, err := time.ParseDuration(file.SolveTimeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid solve_timeout in %s: %w", path, err)
		}
		cfg.SolveTimeout = d
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	return cfg, nil
}
