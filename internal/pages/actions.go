package pages

import (
	"fmt"

	"github.com/dtnitsch/pageqr/internal/common"
	"github.com/dtnitsch/pageqr/pkg/artifact_manager"
	"github.com/dtnitsch/pageqr/pkg/db"
	"github.com/dtnitsch/pageqr/pkg/publisher"
	"github.com/urfave/cli/v2"
)

// UpdatePath is the status API endpoint, relative to the base URL.
const UpdatePath = "api/update-page"

// RenderAction writes one landing page per metadata record into the pages
// directory, named after the record's filename.
func RenderAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	database, err := db.OpenReadOnly(c.Context, cfg.DBPath, cfg.ConnectTimeout)
	if err != nil {
		return cli.Exit(publisher.StoreUnavailable(err).Error(), 2)
	}
	defer database.Close()

	pages, err := publisher.NewReader(database).FetchOrderedPages(c.Context)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	manager, err := artifact_manager.NewManager(cfg.PagesDir)
	if err != nil {
		return cli.Exit(fmt.Errorf("%w: %w", publisher.ErrOutputUnavailable, err).Error(), 2)
	}

	updateURL := publisher.SourceURL(cfg.BaseURL, UpdatePath)
	for _, p := range pages {
		html, err := Render(PageData{PageIndex: p.PageIndex, Filename: p.Filename, UpdateURL: updateURL})
		if err != nil {
			return err
		}
		path, err := manager.SavePage(p.Filename, html)
		if err != nil {
			logger.Error("failed to write page", "page_index", p.PageIndex, "filename", p.Filename, "error", err)
			return cli.Exit(fmt.Sprintf("page %d: %v", p.PageIndex, err), 3)
		}
		logger.Info("Page written", "page_index", p.PageIndex, "path", path)
	}

	fmt.Printf("Rendered %d pages into %s\n", len(pages), manager.BaseDir())
	return nil
}
