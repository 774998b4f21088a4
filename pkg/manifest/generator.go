package manifest

import (
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/item-labeler/models"
	"github.com/dtnitsch/item-labeler/pkg/mapreduce"
	"github.com/dtnitsch/item-labeler/pkg/storage"
)

// Build assembles the summary for a run from its per-source results.
func Build(rootDir string, results []*models.SourceResult, aggregateKeywords map[string]int, outputs []string) SummaryManifest {
	manifest := SummaryManifest{
		GeneratedAt:       time.Now().Format(time.RFC3339),
		RootDir:           rootDir,
		TotalSources:      len(results),
		Outputs:           outputs,
		AggregateKeywords: mapreduce.TopKeywords(aggregateKeywords, 25),
	}

	sorted := make([]*models.SourceResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Source < sorted[j].Source
	})

	for _, result := range sorted {
		summary := SourceSummary{
			Source:      result.Source,
			Files:       result.Files,
			Labelled:    len(result.Labels),
			Skipped:     result.Skipped,
			Cached:      result.Cached,
			CommonWords: result.CommonWords,
			TopKeywords: mapreduce.TopKeywords(result.WordCounts, 10),
		}
		for _, itemErr := range result.Errors {
			summary.Errors = append(summary.Errors, ErrorSummary(itemErr))
		}

		manifest.TotalFiles += summary.Files
		manifest.Labelled += summary.Labelled
		manifest.Skipped += summary.Skipped
		manifest.Errors += len(summary.Errors)
		manifest.Sources = append(manifest.Sources, summary)
	}

	return manifest
}

// GenerateSummary writes the run summary as YAML to path.
func GenerateSummary(path string, manifest SummaryManifest, s *storage.Storage) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}

	return nil
}
