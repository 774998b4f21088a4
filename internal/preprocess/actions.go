package preprocess

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/item-labeler/models"
	"github.com/dtnitsch/item-labeler/pkg/caching"
	"github.com/dtnitsch/item-labeler/pkg/db"
	"github.com/dtnitsch/item-labeler/pkg/storage"
	"github.com/dtnitsch/item-labeler/pkg/textclean"
)

func PreprocessAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if quiet(c) {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := LoadConfig(c)
	if err != nil {
		return err
	}

	processor, err := NewProcessor(logger, config)
	if err != nil {
		return fmt.Errorf("failed to build cleaner: %w", err)
	}

	var cache *caching.Cache
	if config.CacheDir != "" {
		maxAge, err := time.ParseDuration(config.MaxAge)
		if err != nil {
			return fmt.Errorf("invalid max-age duration %q: %w", config.MaxAge, err)
		}
		cache, err = caching.NewCache(config.CacheDir, maxAge)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	outcome, runErr := processor.ProcessSources(ctx, config.RootDir, cache)
	if outcome == nil {
		return runErr
	}
	if err := ctx.Err(); err != nil {
		logger.Error("Preprocessing canceled, previous outputs left untouched", "error", err)
		return err
	}
	if runErr != nil {
		logger.Error("Preprocessing finished with errors", "error", runErr)
	}

	outputDir := OutputDir(config)
	written, writeErr := WriteOutputs(logger, &storage.Storage{}, outputDir, config.RootDir, outcome)

	if config.DBPath != "" {
		database, err := db.Open(config.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		runID, err := Persist(database, config.RootDir, outcome)
		if err != nil {
			logger.Error("Failed to store labels", "db", database.Path(), "error", err)
			writeErr = errors.Join(writeErr, err)
		} else {
			logger.Info("Stored labels", "db", database.Path(), "run_id", runID)
		}
	}

	fmt.Printf("preprocessed sources=%d items=%d errors=%d outputs=%s duration=%s\n",
		len(outcome.Sources), len(outcome.Labels), outcome.ErrorCount(),
		strings.Join(written, ","), time.Since(startTime).Round(time.Millisecond))

	return errors.Join(runErr, writeErr)
}

// CleanAction prints the cleaned text and the label of its arguments.
func CleanAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: labeler clean <text>")
	}

	config, err := LoadConfig(c)
	if err != nil {
		return err
	}
	cleaner, err := textclean.New(config)
	if err != nil {
		return err
	}

	text := strings.Join(c.Args().Slice(), " ")
	fmt.Printf("cleaned: %s\n", cleaner.Clean(text))
	fmt.Printf("label:   %s\n", cleaner.Label(text))
	return nil
}

// LoadConfig reads the --config file and applies any flags that were set.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("root") {
		config.RootDir = c.String("root")
	}
	if c.IsSet("results-dir") {
		config.ResultsDir = c.String("results-dir")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("db") {
		config.DBPath = c.String("db")
	}
	if c.IsSet("cache-dir") {
		config.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("max-age") {
		config.MaxAge = c.String("max-age")
	}
	if c.IsSet("min-percentage") {
		config.CommonWordPercentage = c.Float64("min-percentage")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// quiet reports whether --quiet was given to the command or to the app.
func quiet(c *cli.Context) bool {
	for _, l := range c.Lineage() {
		if l.Bool("quiet") {
			return true
		}
	}
	return false
}
