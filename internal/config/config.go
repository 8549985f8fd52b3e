package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080" yaml:"port"`
	Environment string `env:"ENVIRONMENT" envDefault:"local" yaml:"environment"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	ConfigFile  string `env:"CONFIG_FILE" yaml:"-"`

	Source SourceConfig `yaml:"source"`
}

// SourceConfig selects where review documents are fetched from. ServerAddr
// wins over DataDir when both are set.
type SourceConfig struct {
	ServerAddr     string        `env:"SERVER_ADDR" yaml:"server_addr"`
	DataDir        string        `env:"DATA_DIR" yaml:"data_dir"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"12s" yaml:"fetch_timeout"`
	FetchMaxElapse time.Duration `env:"FETCH_MAX_ELAPSED" envDefault:"20s" yaml:"fetch_max_elapsed"`
}

// Load reads .env, the environment and then CONFIG_FILE if set. Keys present
// in the file override environment values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.ConfigFile != "" {
		data, err := os.ReadFile(cfg.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfg.ConfigFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", cfg.ConfigFile, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Source.ServerAddr == "" && c.Source.DataDir == "" {
		return fmt.Errorf("a document source is required (set SERVER_ADDR or DATA_DIR)")
	}
	if c.Source.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.Source.FetchTimeout)
	}
	if c.Source.FetchMaxElapse <= 0 {
		return fmt.Errorf("fetch max elapsed must be positive, got %s", c.Source.FetchMaxElapse)
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	return nil
}
