package common

import (
	"log/slog"
	"os"

	"github.com/dtnitsch/pageqr/models"
	"github.com/urfave/cli/v2"
)

// ResolveConfig builds the run configuration. A --config file, when given,
// replaces the defaults; any flag or env var explicitly set wins over both.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("connect-timeout") {
		cfg.ConnectTimeout = c.Duration("connect-timeout")
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("pages-dir") {
		cfg.PagesDir = c.String("pages-dir")
	}
	if c.IsSet("module-pixels") {
		cfg.QR.ModulePixels = c.Int("module-pixels")
	}
	if c.IsSet("recovery-level") {
		cfg.QR.RecoveryLevel = c.String("recovery-level")
	}
	if c.IsSet("on-error") {
		cfg.OnError = c.String("on-error")
	}
	if c.IsSet("manifest") {
		cfg.ManifestPath = c.String("manifest")
	}

	return cfg, nil
}

// NewLogger returns the JSON stderr logger used by every command.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
