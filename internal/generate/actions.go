package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/pageqr/internal/common"
	"github.com/dtnitsch/pageqr/models"
	"github.com/dtnitsch/pageqr/pkg/db"
	"github.com/dtnitsch/pageqr/pkg/manifest"
	"github.com/dtnitsch/pageqr/pkg/publisher"
	"github.com/dtnitsch/pageqr/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Exit codes
const (
	ExitUsage       = 1
	ExitUnavailable = 2 // store or output directory
	ExitPageFailed  = 3 // encoding or write failure for a page
	ExitInterrupted = 130
)

// GenerateAction reads every page record in page index order and writes
// one QR code image per page into the output directory.
func GenerateAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsage)
	}
	policy, err := publisher.ParseFailurePolicy(cfg.OnError)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsage)
	}
	encoder, err := publisher.NewQREncoder(cfg.QR.RecoveryLevel, cfg.QR.ModulePixels)
	if err != nil {
		return cli.Exit(err.Error(), ExitUsage)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := OpenStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", cfg.DBPath)
		return cli.Exit(err.Error(), ExitCode(err))
	}
	defer database.Close()

	var artifacts []models.GeneratedArtifact
	pub := publisher.NewPublisher(encoder, logger)
	pub.Policy = policy
	pub.OnProgress = func(a models.GeneratedArtifact) {
		artifacts = append(artifacts, a)
		fmt.Printf("PageIndex: %d, Filename: %s, URL: %s\n", a.PageIndex, a.Filename, a.SourceURL)
		fmt.Printf("QR Code saved to: %s\n", a.ImagePath)
	}

	pipeline := &publisher.Pipeline{
		Reader:    publisher.NewReader(database),
		Publisher: pub,
	}
	logger.Info("Generating QR codes", "base_url", cfg.BaseURL, "output_dir", cfg.OutputDir, "on_error", policy)
	res, runErr := pipeline.Run(ctx, cfg.BaseURL, cfg.OutputDir)
	if errors.Is(runErr, publisher.ErrStoreUnavailable) {
		logger.Error("failed to read page metadata", "error", runErr)
		return cli.Exit(runErr.Error(), ExitCode(runErr))
	}

	if cfg.ManifestPath != "" {
		m := manifest.Build(cfg.BaseURL, cfg.OutputDir, res.Pages, artifacts, runErr)
		if err := manifest.Save(m, cfg.ManifestPath, &storage.Storage{}); err != nil {
			logger.Error("failed to write manifest", "error", err, "path", cfg.ManifestPath)
		} else {
			logger.Info("Manifest saved", "path", cfg.ManifestPath)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "QR code generation stopped: %d of %d written\n", res.Written, res.Pages)
		return cli.Exit(runErr.Error(), ExitCode(runErr))
	}

	fmt.Printf("QR codes generation completed. %d generated.\n", res.Written)
	return nil
}

// OpenStore opens the metadata store read-only. Any failure, including a
// missing database file, matches publisher.ErrStoreUnavailable.
func OpenStore(ctx context.Context, cfg *models.Config) (*db.DB, error) {
	database, err := db.OpenReadOnly(ctx, cfg.DBPath, cfg.ConnectTimeout)
	if err != nil {
		return nil, publisher.StoreUnavailable(err)
	}
	return database, nil
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, publisher.ErrStoreUnavailable), errors.Is(err, publisher.ErrOutputUnavailable):
		return ExitUnavailable
	case errors.Is(err, publisher.ErrEncodingFailed), errors.Is(err, publisher.ErrWriteFailed):
		return ExitPageFailed
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	}
	return ExitUsage
}
