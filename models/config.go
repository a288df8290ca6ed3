// Package models defines data structures for configuration and page records.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDBPath         = "./pages.db"
	DefaultBaseURL        = "https://wlw2ltj.online/"
	DefaultOutputDir      = "./qr_codes/"
	DefaultPagesDir       = "./pages/"
	DefaultConnectTimeout = 5 * time.Second
	DefaultModulePixels   = 10
	DefaultRecoveryLevel  = "medium"
	DefaultFailurePolicy  = "abort"
)

// Config holds runtime configuration for a generation run.
// Values come from CLI flags or environment variables, optionally seeded
// from a YAML file passed with --config.
type Config struct {
	DBPath         string        `yaml:"db_path"`
	BaseURL        string        `yaml:"base_url"`
	OutputDir      string        `yaml:"output_dir"`
	PagesDir       string        `yaml:"pages_dir"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	QR             QRConfig      `yaml:"qr"`
	OnError        string        `yaml:"on_error"` // abort | skip
	ManifestPath   string        `yaml:"manifest_path"`
}

// QRConfig controls symbol construction and rasterisation.
type QRConfig struct {
	ModulePixels  int    `yaml:"module_pixels"`
	RecoveryLevel string `yaml:"recovery_level"` // low | medium | high | highest
}

// DefaultConfig returns the settings used when nothing else is provided.
func DefaultConfig() *Config {
	return &Config{
		DBPath:         DefaultDBPath,
		BaseURL:        DefaultBaseURL,
		OutputDir:      DefaultOutputDir,
		PagesDir:       DefaultPagesDir,
		ConnectTimeout: DefaultConnectTimeout,
		QR: QRConfig{
			ModulePixels:  DefaultModulePixels,
			RecoveryLevel: DefaultRecoveryLevel,
		},
		OnError: DefaultFailurePolicy,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
