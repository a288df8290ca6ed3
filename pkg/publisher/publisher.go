// Package publisher turns ordered page records into QR code images, one
// file per page, named after the page index.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dtnitsch/pageqr/internal/common"
	"github.com/dtnitsch/pageqr/models"
	"github.com/dtnitsch/pageqr/pkg/artifact_manager"
)

// FailurePolicy decides what happens when one page cannot be encoded or written.
type FailurePolicy string

const (
	// PolicyAbort stops the run at the first failing page. Artifacts written
	// before the failure are left in place.
	PolicyAbort FailurePolicy = "abort"
	// PolicySkip logs the failing page and moves on to the next one.
	PolicySkip FailurePolicy = "skip"
)

// ParseFailurePolicy validates a policy name from flags or config.
func ParseFailurePolicy(name string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	}
	return PolicyAbort, fmt.Errorf("unknown failure policy %q (want abort or skip)", name)
}

// SourceURL is the public URL of a page: baseURL immediately followed by
// filename. Nothing is escaped or validated.
func SourceURL(baseURL, filename string) string {
	return baseURL + filename
}

// Publisher encodes page URLs and writes one image per page.
type Publisher struct {
	encoder Encoder
	logger  *slog.Logger

	// Policy defaults to PolicyAbort.
	Policy FailurePolicy
	// OnProgress, if set, is called after each artifact is written.
	OnProgress func(models.GeneratedArtifact)
}

// NewPublisher returns a Publisher using the abort policy. A nil logger discards output.
func NewPublisher(encoder Encoder, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Publisher{
		encoder: encoder,
		logger:  logger,
		Policy:  PolicyAbort,
	}
}

// PublishAll writes outputDir/qr_code_{pageIndex}.png for every page, in the
// order given, and returns how many artifacts were written.
//
// The output directory is created first; if that fails nothing is encoded and
// the error matches ErrOutputUnavailable. Per-page failures are *PageError
// values. Cancellation of ctx is honoured between pages only.
func (p *Publisher) PublishAll(ctx context.Context, pages []models.PageMetadata, baseURL, outputDir string) (int, error) {
	manager, err := artifact_manager.NewManager(outputDir)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
	}

	written := 0
	var skipped []error
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return written, fmt.Errorf("generation stopped after %d artifacts: %w", written, err)
		}

		artifact, err := p.publishOne(manager, page, baseURL)
		if err != nil {
			if p.Policy == PolicySkip {
				p.logger.Warn("Skipping page", "page_index", page.PageIndex, "error", err)
				skipped = append(skipped, err)
				continue
			}
			p.logger.Error("Aborting generation", "page_index", page.PageIndex, "written", written, "error", err)
			return written, err
		}

		written++
		p.logger.Info("QR code saved",
			"page_index", artifact.PageIndex,
			"filename", artifact.Filename,
			"url", artifact.SourceURL,
			"path", artifact.ImagePath,
		)
		if p.OnProgress != nil {
			p.OnProgress(artifact)
		}
	}

	return written, errors.Join(skipped...)
}

func (p *Publisher) publishOne(manager *artifact_manager.Manager, page models.PageMetadata, baseURL string) (models.GeneratedArtifact, error) {
	artifact := models.GeneratedArtifact{
		PageIndex: page.PageIndex,
		Filename:  page.Filename,
		SourceURL: SourceURL(baseURL, page.Filename),
	}

	png, err := p.encoder.Encode(artifact.SourceURL)
	if err != nil {
		return artifact, &PageError{PageIndex: page.PageIndex, Filename: page.Filename, Kind: ErrEncodingFailed, Err: err}
	}

	path, err := manager.SaveQRCode(page.PageIndex, png)
	if err != nil {
		return artifact, &PageError{PageIndex: page.PageIndex, Filename: page.Filename, Kind: ErrWriteFailed, Err: err}
	}

	stats, err := manager.Stat(path)
	if err != nil {
		return artifact, &PageError{PageIndex: page.PageIndex, Filename: page.Filename, Kind: ErrWriteFailed, Err: err}
	}

	artifact.ImagePath = path
	artifact.SizeBytes = stats.SizeBytes
	artifact.SHA256 = common.ContentHash(png)
	return artifact, nil
}
