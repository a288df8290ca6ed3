package db

import (
	"context"
	"time"

	"github.com/dtnitsch/pageqr/internal/common"
	dbpkg "github.com/dtnitsch/pageqr/pkg/db"
	"github.com/urfave/cli/v2"
)

type opener func(ctx context.Context, path string, timeout time.Duration) (*dbpkg.DB, error)

// openDatabase opens the store named by --db / --config for writing,
// creating the schema if needed.
func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	return openWith(c, dbpkg.Open)
}

// openDatabaseReadOnly opens an existing store without modifying it.
func openDatabaseReadOnly(c *cli.Context) (*dbpkg.DB, error) {
	return openWith(c, dbpkg.OpenReadOnly)
}

func openWith(c *cli.Context, open opener) (*dbpkg.DB, error) {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	database, err := open(c.Context, cfg.DBPath, cfg.ConnectTimeout)
	if err != nil {
		return nil, cli.Exit(err.Error(), 2)
	}
	return database, nil
}
