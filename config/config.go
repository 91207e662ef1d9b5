// Package config loads the socialctl configuration.
//
// Config file locations (priority order):
//  1. $SOCIALCTL_CONFIG
//  2. ./socialctl.yaml
//
// When neither exists, defaults reproduce the console demo.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "SOCIALCTL_CONFIG"
	DefaultFile   = "socialctl.yaml"
)

// Sink types understood by the CLI.
const (
	SinkConsole  = "console"
	SinkMemory   = "memory"
	SinkNATS     = "nats"
	SinkRabbitMQ = "rabbitmq"
	SinkKafka    = "kafka"
)

const (
	defaultTitle       = "Teste supremo!"
	defaultDescription = "Realizando um teste do padrão Adapter."
)

type Config struct {
	LogLevel string        `yaml:"log_level"`
	Sink     SinkConfig    `yaml:"sink"`
	Networks []string      `yaml:"networks"`
	Content  ContentConfig `yaml:"content"`
}

type SinkConfig struct {
	Type    string   `yaml:"type"`
	URL     string   `yaml:"url,omitempty"`
	Brokers []string `yaml:"brokers,omitempty"`
	Prefix  string   `yaml:"prefix,omitempty"`
}

type ContentConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// For mocking in tests
var osGetenv = os.Getenv

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return Default(), "", nil
	}

	return LoadFromPath(path)
}

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if p := osGetenv(EnvConfigPath); p != "" {
		return p
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}

	return ""
}

// LoadFromPath loads config from a specific path and fills in defaults.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Default returns the configuration of the console demo.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}

	if c.Sink.Type == "" {
		c.Sink.Type = SinkConsole
	}

	if len(c.Networks) == 0 {
		c.Networks = []string{"twitter", "instagram"}
	}

	if c.Content.Title == "" && c.Content.Description == "" {
		c.Content.Title = defaultTitle
		c.Content.Description = defaultDescription
	}
}

// Validate checks that the sink has what it needs to be built.
func (c *Config) Validate() error {
	var errs []error

	switch c.Sink.Type {
	case SinkConsole, SinkMemory:
	case SinkNATS, SinkRabbitMQ:
		if c.Sink.URL == "" {
			errs = append(errs, fmt.Errorf("sink %s: url required", c.Sink.Type))
		}
	case SinkKafka:
		if len(c.Sink.Brokers) == 0 {
			errs = append(errs, errors.New("sink kafka: brokers required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown sink type %q", c.Sink.Type))
	}

	if len(c.Networks) == 0 {
		errs = append(errs, errors.New("at least one network required"))
	}

	return errors.Join(errs...)
}

// SlogLevel maps LogLevel onto slog, defaulting to Info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
