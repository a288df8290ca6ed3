package db

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/pageqr/internal/common"
	"github.com/dtnitsch/pageqr/models"
	"github.com/urfave/cli/v2"
)

// SeedAction inserts page metadata and status records. With --filename it
// inserts one page; otherwise it inserts --count pages with random filenames.
func SeedAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	if c.IsSet("filename") {
		if !c.IsSet("index") {
			return cli.Exit("--index is required with --filename", 1)
		}
		page := models.PageMetadata{PageIndex: c.Int64("index"), Filename: c.String("filename")}
		status := models.PageStatus{
			PageIndex: page.PageIndex,
			Sender:    c.String("sender"),
			Receiver:  c.String("receiver"),
			Content:   c.String("content"),
			Status:    c.Bool("status"),
		}
		if err := database.SeedPage(c.Context, page, status); err != nil {
			return fmt.Errorf("failed to seed page: %w", err)
		}
		logger.Info("Page seeded", "page_index", page.PageIndex, "filename", page.Filename)
		fmt.Printf("Seeded page %d: %s\n", page.PageIndex, page.Filename)
		return nil
	}

	count := c.Int("count")
	if count <= 0 {
		return cli.Exit("--count must be positive", 1)
	}

	start := c.Int64("start")
	if !c.IsSet("start") {
		maxIndex, err := database.MaxPageIndex(c.Context)
		if err != nil {
			return err
		}
		start = maxIndex + 1
	}

	for i := 0; i < count; i++ {
		page, status := DefaultPage(start + int64(i))
		if err := database.SeedPage(c.Context, page, status); err != nil {
			return fmt.Errorf("failed to seed page: %w", err)
		}
		logger.Info("Page seeded", "page_index", page.PageIndex, "filename", page.Filename)
	}

	fmt.Printf("Seeded %d pages (%d-%d)\n", count, start, start+int64(count)-1)
	return nil
}

// DefaultPage builds the placeholder records used by bulk seeding.
func DefaultPage(index int64) (models.PageMetadata, models.PageStatus) {
	page := models.PageMetadata{
		PageIndex: index,
		Filename:  common.RandomPageFilename(),
	}
	status := models.PageStatus{
		PageIndex: index,
		Sender:    fmt.Sprintf("Sender %d", index),
		Receiver:  fmt.Sprintf("Receiver %d", index),
		Content:   fmt.Sprintf("This is the content of page %d.", index),
		Status:    true,
	}
	return page, status
}

// ListAction prints both tables.
func ListAction(c *cli.Context) error {
	database, err := openDatabaseReadOnly(c)
	if err != nil {
		return err
	}
	defer database.Close()

	pages, err := database.ListPageMetadata(c.Context)
	if err != nil {
		return err
	}
	statuses, err := database.ListPageStatuses(c.Context)
	if err != nil {
		return err
	}

	fmt.Println("PageMetadata:")
	fmt.Printf("%-10s %-40s\n", "PageIndex", "Filename")
	fmt.Println(strings.Repeat("-", 52))
	for _, p := range pages {
		fmt.Printf("%-10d %-40s\n", p.PageIndex, p.Filename)
	}

	fmt.Println("\nPageStatus:")
	fmt.Printf("%-10s %-20s %-20s %-7s %s\n", "PageIndex", "Sender", "Receiver", "Status", "Content")
	fmt.Println(strings.Repeat("-", 90))
	for _, s := range statuses {
		fmt.Printf("%-10d %-20s %-20s %-7t %s\n", s.PageIndex, s.Sender, s.Receiver, s.Status, s.Content)
	}

	fmt.Printf("\nTotal: %d pages, %d status records\n", len(pages), len(statuses))
	return nil
}

// ResetStatusAction marks every page status as false.
func ResetStatusAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	n, err := database.ResetStatuses(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %d rows to set status = 0.\n", n)
	return nil
}
