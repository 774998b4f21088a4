package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	dbactions "github.com/dtnitsch/item-labeler/internal/db"
	"github.com/dtnitsch/item-labeler/internal/preprocess"
)

func main() {
	// Variables from .env feed the flags' EnvVars; a missing file is fine.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "labeler",
		Usage: "Extract and normalize product labels from scraped item JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "YAML config file (optional)",
				EnvVars: []string{"LABELER_CONFIG"},
			},
			quietFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:   "preprocess",
				Usage:  "Label every item under the root directory and write the mappings",
				Action: preprocess.PreprocessAction,
				Flags: []cli.Flag{
					quietFlag(),
					&cli.StringFlag{
						Name:    "root",
						Usage:   "Directory holding one subdirectory per source",
						EnvVars: []string{"LABELER_ROOT"},
					},
					&cli.StringFlag{
						Name:    "results-dir",
						Usage:   "Directory the preprocessing outputs are written under",
						EnvVars: []string{"LABELER_RESULTS_DIR"},
					},
					&cli.IntFlag{
						Name:    "workers",
						Usage:   "Number of concurrent source workers",
						EnvVars: []string{"LABELER_WORKERS"},
					},
					&cli.Float64Flag{
						Name:  "min-percentage",
						Usage: "Share of a source's items a word must reach to be pruned",
					},
					dbFlag(),
					&cli.StringFlag{
						Name:    "cache-dir",
						Usage:   "Cache per-source results here (empty disables caching)",
						EnvVars: []string{"LABELER_CACHE_DIR"},
					},
					&cli.StringFlag{
						Name:  "max-age",
						Usage: "Maximum age of cached source results (e.g. 24h)",
					},
				},
			},
			{
				Name:      "clean",
				Usage:     "Print the cleaned text and label of ad-hoc text",
				ArgsUsage: "<text>",
				Action:    preprocess.CleanAction,
			},
			{
				Name:   "runs",
				Usage:  "List stored preprocessing runs",
				Action: dbactions.RunsAction,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of runs to list",
					},
				},
			},
			{
				Name:      "label",
				Usage:     "Show the latest stored label of items",
				ArgsUsage: "<source//item> [...]",
				Action:    dbactions.LabelAction,
				Flags:     []cli.Flag{dbFlag()},
			},
		},
	}
}

func dbFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "db",
		Usage:   "SQLite label store path (empty disables storage)",
		EnvVars: []string{"LABELER_DB"},
	}
}

func quietFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Only log errors",
	}
}
