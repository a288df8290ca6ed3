package main

import (
	"fmt"
	"os"

	dbcmd "github.com/dtnitsch/pageqr/internal/db"
	"github.com/dtnitsch/pageqr/internal/generate"
	"github.com/dtnitsch/pageqr/internal/pages"
	"github.com/dtnitsch/pageqr/models"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "pageqr",
		Usage: "publish one QR code per page, pointing at the page's public URL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file",
				EnvVars: []string{"PAGEQR_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "SQLite database holding page metadata",
				Value:   models.DefaultDBPath,
				EnvVars: []string{"PAGEQR_DB"},
			},
			&cli.DurationFlag{
				Name:    "connect-timeout",
				Usage:   "time allowed to connect to the database",
				Value:   models.DefaultConnectTimeout,
				EnvVars: []string{"PAGEQR_CONNECT_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "write qr_code_{pageIndex}.png for every page, in page order",
				Action: generate.GenerateAction,
				Flags: []cli.Flag{
					baseURLFlag(),
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "directory for QR images (created if missing)",
						Value:   models.DefaultOutputDir,
						EnvVars: []string{"PAGEQR_OUTPUT_DIR"},
					},
					&cli.IntFlag{
						Name:  "module-pixels",
						Usage: "pixels per QR module",
						Value: models.DefaultModulePixels,
					},
					&cli.StringFlag{
						Name:  "recovery-level",
						Usage: "QR error correction: low, medium, high, highest",
						Value: models.DefaultRecoveryLevel,
					},
					&cli.StringFlag{
						Name:    "on-error",
						Usage:   "per-page failure policy: abort or skip",
						Value:   models.DefaultFailurePolicy,
						EnvVars: []string{"PAGEQR_ON_ERROR"},
					},
					&cli.StringFlag{
						Name:  "manifest",
						Usage: "write a YAML run manifest to this path",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "insert page metadata and status records",
				Action: dbcmd.SeedAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Usage: "number of pages to create with random filenames", Value: 1},
					&cli.Int64Flag{Name: "start", Usage: "first page index (default: one past the current maximum)"},
					&cli.Int64Flag{Name: "index", Usage: "page index for a single page"},
					&cli.StringFlag{Name: "filename", Usage: "filename for a single page"},
					&cli.StringFlag{Name: "sender", Value: "Sender"},
					&cli.StringFlag{Name: "receiver", Value: "Receiver"},
					&cli.StringFlag{Name: "content", Value: ""},
					&cli.BoolFlag{Name: "status", Value: false},
				},
			},
			{
				Name:   "list",
				Usage:  "print page metadata and page status tables",
				Action: dbcmd.ListAction,
			},
			{
				Name:   "reset-status",
				Usage:  "set every page status to false",
				Action: dbcmd.ResetStatusAction,
			},
			{
				Name:   "pages",
				Usage:  "write an HTML landing page for every page",
				Action: pages.RenderAction,
				Flags: []cli.Flag{
					baseURLFlag(),
					&cli.StringFlag{
						Name:    "pages-dir",
						Usage:   "directory for landing pages",
						Value:   models.DefaultPagesDir,
						EnvVars: []string{"PAGEQR_PAGES_DIR"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func baseURLFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "base-url",
		Usage:   "prefix joined with each filename to form the public URL",
		Value:   models.DefaultBaseURL,
		EnvVars: []string{"PAGEQR_BASE_URL"},
	}
}
