package preprocess

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dtnitsch/item-labeler/models"
	"github.com/dtnitsch/item-labeler/pkg/caching"
	"github.com/dtnitsch/item-labeler/pkg/mapreduce"
)

// cacheSettings are the config values a cached source result depends on.
type cacheSettings struct {
	LabelFields          []string
	Units                []string
	NoiseTerms           []string
	MinModelTokenLen     int
	CommonWordPercentage float64
	CommonWordMinCount   int
}

// ProcessSources fans the sources under root out to a pool of workers and
// merges their labels and page titles. A failed source is logged and left
// out of the merge; the returned error reports that at least one failed.
func (p *Processor) ProcessSources(ctx context.Context, root string, cache *caching.Cache) (*Outcome, error) {
	sources, err := ListSources(root)
	if err != nil {
		return nil, err
	}

	workerCount := p.config.Workers
	if workerCount < 1 {
		workerCount = 1
	}

	p.logger.Info("Starting concurrent preprocessing phase", "root", root, "source_count", len(sources), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(sources))
	results := make(chan Result, len(sources))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go p.worker(ctx, w, root, cache, &wg, jobs, results)
	}

	for _, source := range sources {
		jobs <- Job{Source: source}
	}
	close(jobs)

	wg.Wait()
	close(results)
	p.logger.Info("All preprocessing workers finished")

	outcome := &Outcome{}
	var runErr error
	var labelMaps, titleMaps []map[string]string
	var wordCounts []map[string]int
	for result := range results {
		if result.Error != nil {
			runErr = fmt.Errorf("one or more sources failed")
			continue
		}
		outcome.Sources = append(outcome.Sources, result.Output)
		labelMaps = append(labelMaps, result.Output.Labels)
		titleMaps = append(titleMaps, result.Output.PageTitles)
		wordCounts = append(wordCounts, mapreduce.Map(result.Output.Labels))
	}

	outcome.Labels = mapreduce.MergeLabels(labelMaps)
	outcome.PageTitles = mapreduce.MergeLabels(titleMaps)
	outcome.WordCounts = mapreduce.Reduce(wordCounts)

	if err := ctx.Err(); err != nil {
		return outcome, err
	}
	return outcome, runErr
}

func (p *Processor) worker(ctx context.Context, id int, root string, cache *caching.Cache, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		if err := ctx.Err(); err != nil {
			results <- Result{Source: job.Source, Error: err, ErrorType: "canceled"}
			continue
		}

		p.logger.Info("Worker started source", "worker_id", id, "source", job.Source)
		results <- p.processJob(root, job.Source, cache)
	}
}

func (p *Processor) processJob(root, source string, cache *caching.Cache) Result {
	var key string
	if cache != nil {
		var err error
		key, err = caching.Fingerprint(filepath.Join(root, source), p.cacheSettings())
		if err != nil {
			p.logger.Warn("Failed to fingerprint source, processing without cache", "source", source, "error", err)
		} else if cached, ok := cache.Get(key); ok {
			p.logger.Info("Source result found in cache, using it", "source", source)
			return Result{Source: source, Output: cached}
		}
	}

	output, err := p.ProcessSource(root, source)
	if err != nil {
		p.logger.Error("Error processing source", "source", source, "error", err)
		return Result{Source: source, Error: err, ErrorType: "source_error"}
	}

	if cache != nil && key != "" {
		if err := cache.Set(key, output); err != nil {
			p.logger.Warn("Failed to cache source result", "source", source, "error", err)
		}
	}

	p.logger.Info("Worker finished source", "source", source, "files", output.Files, "labelled", len(output.Labels), "skipped", output.Skipped)
	return Result{Source: source, Output: output}
}

func (p *Processor) cacheSettings() cacheSettings {
	return cacheSettings{
		LabelFields:          p.config.LabelFields,
		Units:                p.config.Units,
		NoiseTerms:           p.config.NoiseTerms,
		MinModelTokenLen:     p.config.MinModelTokenLen,
		CommonWordPercentage: p.config.CommonWordPercentage,
		CommonWordMinCount:   p.config.CommonWordMinCount,
	}
}

// OutputDir is the directory the label mappings are written to.
func OutputDir(config *models.Config) string {
	return filepath.Join(config.ResultsDir, "preprocessing")
}
