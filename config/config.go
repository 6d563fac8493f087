package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top level configuration for the connector CLI and any host
// embedding it. Credentials are never stored in the YAML file; they come
// from the environment (optionally seeded from a .env file).
type Config struct {
	Exchange ExchangeConfig `yaml:"exchange"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ExchangeConfig struct {
	Name      string        `yaml:"name"`
	BaseURL   string        `yaml:"base_url"`
	Proxy     string        `yaml:"proxy"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit time.Duration `yaml:"rate_limit"`
	Debug     bool          `yaml:"debug"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Exchange: ExchangeConfig{
			Name:      "graviex",
			Timeout:   30 * time.Second,
			RateLimit: time.Second,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// Load reads the YAML configuration at path, applying defaults for missing
// values. A best-effort .env load runs first so that credentials placed next
// to the binary are picked up without exporting them manually.
func Load(path string) (*Config, error) {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Exchange.Timeout <= 0 {
		cfg.Exchange.Timeout = 30 * time.Second
	}
	if cfg.Exchange.RateLimit <= 0 {
		cfg.Exchange.RateLimit = time.Second
	}
	return cfg, nil
}

// Credentials returns the API key pair from the environment. Empty values
// mean public-only access.
func Credentials() (apiKey, secretKey string) {
	return os.Getenv("GRAVIEX_API_KEY"), os.Getenv("GRAVIEX_SECRET_KEY")
}
