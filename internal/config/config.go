// Package config loads application configuration.
//
// Values come from an optional YAML file (config.yaml, or the path in
// CONFIG_FILE) and are then overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fkhayef/discountsplit/internal/allocation"
)

// DefaultPath is the config file read when CONFIG_FILE is unset
const DefaultPath = "config.yaml"

// Config holds all application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Split  SplitConfig  `yaml:"split"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SplitConfig holds allocation defaults
type SplitConfig struct {
	DefaultStep float64 `yaml:"default_step"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Split: SplitConfig{
			DefaultStep: allocation.DefaultStep,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the file named by CONFIG_FILE (or
// config.yaml) when it exists, then applies environment overrides
func Load() (*Config, error) {
	path := getEnv("CONFIG_FILE", DefaultPath)

	cfg, err := LoadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFile parses a YAML config file on top of the defaults.
// ${VAR} references in the file are expanded from the environment.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	if c.Split.DefaultStep < 1 {
		return fmt.Errorf("default step must be at least 1, got %v", c.Split.DefaultStep)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func applyEnv(cfg *Config) error {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		cfg.Server.AllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("DEFAULT_STEP"); ok {
		step, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse DEFAULT_STEP %q: %w", v, err)
		}
		cfg.Split.DefaultStep = step
	}
	if v, ok := os.LookupEnv("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.Server.ShutdownTimeout = d
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
