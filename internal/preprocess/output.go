package preprocess

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dtnitsch/item-labeler/pkg/db"
	"github.com/dtnitsch/item-labeler/pkg/manifest"
	"github.com/dtnitsch/item-labeler/pkg/storage"
)

// WriteOutputs writes both label mappings and the run summary to outputDir.
// Every file is attempted; the first failure is returned.
func WriteOutputs(logger *slog.Logger, s *storage.Storage, outputDir, rootDir string, outcome *Outcome) ([]string, error) {
	files := []struct {
		name string
		data map[string]string
	}{
		{name: PreprocessedFile, data: outcome.Labels},
		{name: PageTitlesFile, data: outcome.PageTitles},
	}

	var written []string
	var firstErr error
	for _, f := range files {
		path := filepath.Join(outputDir, f.name)
		if err := s.SaveJSON(path, f.data); err != nil {
			logger.Error("Error writing output", "path", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if stats, err := s.GetFileStats(path); err == nil {
			logger.Info("Written output", "path", path, "items", len(f.data), "bytes", stats.SizeBytes)
		}
		written = append(written, path)
	}

	summaryPath := filepath.Join(outputDir, SummaryFile)
	summary := manifest.Build(rootDir, outcome.Sources, outcome.WordCounts, written)
	if err := manifest.GenerateSummary(summaryPath, summary, s); err != nil {
		logger.Error("Error writing summary", "path", summaryPath, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	} else {
		logger.Info("Written summary", "path", summaryPath)
	}

	return written, firstErr
}

// Persist stores the run and its labels in the label database.
func Persist(database *db.DB, rootDir string, outcome *Outcome) (int64, error) {
	runID, err := database.InsertRun(rootDir, len(outcome.Sources), len(outcome.Labels), outcome.ErrorCount())
	if err != nil {
		return 0, err
	}
	if err := database.InsertLabels(runID, outcome.Labels, outcome.PageTitles); err != nil {
		return runID, fmt.Errorf("failed to store labels for run %d: %w", runID, err)
	}
	return runID, nil
}

// ErrorCount sums the item errors of every source.
func (o *Outcome) ErrorCount() int {
	n := 0
	for _, source := range o.Sources {
		n += len(source.Errors)
	}
	return n
}
