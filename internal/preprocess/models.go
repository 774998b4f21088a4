package preprocess

import "github.com/dtnitsch/item-labeler/models"

// Job defines a source directory for a worker to process.
type Job struct {
	Source string
}

// Result holds the outcome of a processed job.
type Result struct {
	Source    string
	Output    *models.SourceResult
	Error     error
	ErrorType string
}

// Output file names written under <results_dir>/preprocessing.
const (
	PreprocessedFile = "preprocessed_dataset.json"
	PageTitlesFile   = "item2pagetitle.json"
	SummaryFile      = "summary.yaml"
)

// Outcome is the merged result of a full run.
type Outcome struct {
	Sources    []*models.SourceResult
	Labels     map[string]string
	PageTitles map[string]string
	WordCounts map[string]int
}
