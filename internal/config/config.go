// Package config loads the shop configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no config flag is given.
const DefaultPath = "configs/config.yaml"

// Config is the full application configuration
type Config struct {
	Ollama     OllamaConfig     `yaml:"ollama"`
	DataDir    string           `yaml:"data_dir"`
	MenuPath   string           `yaml:"menu"`
	Payment    PaymentConfig    `yaml:"payment"`
	Playground PlaygroundConfig `yaml:"playground"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// OllamaConfig points at the local model daemon
type OllamaConfig struct {
	Host        string  `yaml:"host"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

// PaymentConfig tunes payment processing
type PaymentConfig struct {
	// StrictAmount rejects payments that do not match the quoted total.
	StrictAmount bool `yaml:"strict_amount"`
}

// PlaygroundConfig configures the local web playground
type PlaygroundConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// MetricsConfig configures the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Ollama: OllamaConfig{
			Host:        "http://localhost:11434",
			Model:       "llama3.2",
			Temperature: 0.1,
		},
		DataDir:  "data",
		MenuPath: "data/menu.json",
		Playground: PlaygroundConfig{
			Enabled: false,
			Port:    8080,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
	}
}

// Load reads the YAML config at path, falling back to defaults when the
// default path does not exist, then applies .env and environment overrides.
func Load(path string) (*Config, error) {
	// A .env beside the binary can carry host settings; absence is fine.
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultPath:
		// Run on defaults when the stock config is simply absent.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.Ollama.Host = v
	}
	if v := os.Getenv("CHALIS_MODEL"); v != "" {
		cfg.Ollama.Model = v
	}
	if v := os.Getenv("CHALIS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CHALIS_MENU"); v != "" {
		cfg.MenuPath = v
	}
	if v := os.Getenv("CHALIS_STRICT_AMOUNT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Payment.StrictAmount = b
		}
	}
}

// OrdersPath returns the order collection file path
func (c *Config) OrdersPath() string {
	return filepath.Join(c.DataDir, "orders.json")
}

// PaymentsPath returns the payment collection file path
func (c *Config) PaymentsPath() string {
	return filepath.Join(c.DataDir, "payments.json")
}

// ProductionPath returns the production queue file path
func (c *Config) ProductionPath() string {
	return filepath.Join(c.DataDir, "production.json")
}
