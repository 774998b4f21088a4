package db

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/item-labeler/models"
	dbpkg "github.com/dtnitsch/item-labeler/pkg/db"
)

// openDatabase opens the label database named by --db, falling back to
// db_path from the config file.
func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	path := c.String("db")
	if path == "" {
		config, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		path = config.DBPath
	}
	if path == "" {
		return nil, fmt.Errorf("--db is required (or set LABELER_DB or db_path)")
	}

	database, err := dbpkg.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}
