package models

// PageTitleField is the key every scraped item carries its page title under.
const PageTitleField = "<page title>"

// Item is one decoded scraped listing.
type Item map[string]any

// Error types recorded for items that could not be labelled.
const (
	ErrorTypeRead             = "read_error"
	ErrorTypeParse            = "parse_error"
	ErrorTypeEmpty            = "empty_item"
	ErrorTypeMissingPageTitle = "missing_page_title"
)

// ItemError describes why a single file was skipped.
type ItemError struct {
	Path      string `json:"path" yaml:"path"`
	ErrorType string `json:"error_type" yaml:"error_type"`
	Message   string `json:"message" yaml:"message"`
}

// SourceResult holds everything produced for one source directory.
type SourceResult struct {
	Source      string            `json:"source"`
	Labels      map[string]string `json:"labels"`
	PageTitles  map[string]string `json:"page_titles"`
	WordCounts  map[string]int    `json:"word_counts"`
	CommonWords []string          `json:"common_words"`
	Files       int               `json:"files"`
	Skipped     int               `json:"skipped"`
	Errors      []ItemError       `json:"errors,omitempty"`
	Cached      bool              `json:"-"`
}

// NewSourceResult returns an empty result for source.
func NewSourceResult(source string) *SourceResult {
	return &SourceResult{
		Source:     source,
		Labels:     make(map[string]string),
		PageTitles: make(map[string]string),
		WordCounts: make(map[string]int),
	}
}
