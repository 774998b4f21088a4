package manifest

// SummaryManifest represents the structure of the run summary YAML file.
// It gives an overview of every source, its removed common words and the
// files that could not be labelled, without reading the label mappings.
type SummaryManifest struct {
	GeneratedAt       string          `yaml:"generated_at"`
	RootDir           string          `yaml:"root_dir"`
	TotalSources      int             `yaml:"total_sources"`
	TotalFiles        int             `yaml:"total_files"`
	Labelled          int             `yaml:"labelled"`
	Skipped           int             `yaml:"skipped"`
	Errors            int             `yaml:"errors"`
	Outputs           []string        `yaml:"outputs,omitempty"`
	AggregateKeywords []string        `yaml:"aggregate_keywords"`
	Sources           []SourceSummary `yaml:"sources"`
}

// SourceSummary represents summary information for a single source directory.
type SourceSummary struct {
	Source      string         `yaml:"source"`
	Files       int            `yaml:"files"`
	Labelled    int            `yaml:"labelled"`
	Skipped     int            `yaml:"skipped"`
	Cached      bool           `yaml:"cached,omitempty"`
	CommonWords []string       `yaml:"common_words,omitempty"`
	TopKeywords []string       `yaml:"top_keywords,omitempty"`
	Errors      []ErrorSummary `yaml:"errors,omitempty"`
}

type ErrorSummary struct {
	Path      string `yaml:"path"`
	ErrorType string `yaml:"error_type"`
	Message   string `yaml:"message"`
}
