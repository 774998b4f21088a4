package preprocess

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dtnitsch/item-labeler/internal/common"
	"github.com/dtnitsch/item-labeler/models"
	"github.com/dtnitsch/item-labeler/pkg/analytics"
	"github.com/dtnitsch/item-labeler/pkg/extractor"
	"github.com/dtnitsch/item-labeler/pkg/textclean"
)

// Processor labels the items of source directories.
type Processor struct {
	logger  *slog.Logger
	config  *models.Config
	cleaner *textclean.Cleaner
}

func NewProcessor(logger *slog.Logger, config *models.Config) (*Processor, error) {
	cleaner, err := textclean.New(config)
	if err != nil {
		return nil, err
	}
	return &Processor{logger: logger, config: config, cleaner: cleaner}, nil
}

// ListSources returns the names of the immediate subdirectories of root.
func ListSources(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources in %s: %w", root, err)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			sources = append(sources, entry.Name())
		}
	}
	sort.Strings(sources)
	return sources, nil
}

// ProcessSource labels every JSON item directly inside root/source and prunes
// the words that are common within the source. Failures on single files are
// logged and recorded in the result; only an unreadable source directory is an error.
func (p *Processor) ProcessSource(root, source string) (*models.SourceResult, error) {
	dir := filepath.Join(root, source)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	result := models.NewSourceResult(source)
	counter := analytics.NewWordCounter()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		result.Files++

		path := filepath.Join(dir, entry.Name())
		itemName := common.ItemName(source, entry.Name())

		item, itemErr := readItem(path)
		if itemErr == nil {
			var label string
			label, itemErr = p.labelItem(path, item)
			if itemErr == nil {
				result.Labels[itemName] = label
				counter.Update(label)
			}
		}
		if itemErr != nil {
			result.Skipped++
			result.Errors = append(result.Errors, *itemErr)
			if itemErr.ErrorType == models.ErrorTypeEmpty {
				p.logger.Warn("Empty JSON file", "source", source, "path", path)
			} else {
				p.logger.Error("Error reading item", "source", source, "path", path, "error_type", itemErr.ErrorType, "error", itemErr.Message)
			}
			continue
		}

		title, err := extractor.PageTitle(item)
		if err != nil {
			result.Errors = append(result.Errors, *newItemError(path, models.ErrorTypeMissingPageTitle, err))
			p.logger.Warn("Item has no page title", "source", source, "path", path)
			continue
		}
		result.PageTitles[itemName] = title
	}

	result.WordCounts = counter.Counts()
	result.CommonWords = counter.CommonWords(len(result.Labels), p.config.CommonWordPercentage, p.config.CommonWordMinCount)
	p.logger.Info("Words to remove", "source", source, "words", result.CommonWords, "word_total", counter.Total(), "top_words", counter.MostCommon(5))
	analytics.RemoveCommonWords(result.Labels, result.CommonWords)

	return result, nil
}

// readItem decodes one item file. Empty objects are reported as errors.
func readItem(path string) (models.Item, *models.ItemError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newItemError(path, models.ErrorTypeRead, err)
	}

	var item models.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, newItemError(path, models.ErrorTypeParse, err)
	}
	if len(item) == 0 {
		return nil, newItemError(path, models.ErrorTypeEmpty, errors.New("empty item"))
	}
	return item, nil
}

// labelItem extracts the item's relevant text and cleans it into a label.
func (p *Processor) labelItem(path string, item models.Item) (string, *models.ItemError) {
	text, err := extractor.RelevantText(item, p.config.LabelFields)
	if err != nil {
		return "", newItemError(path, models.ErrorTypeMissingPageTitle, err)
	}
	return p.cleaner.Label(text), nil
}

func newItemError(path, errorType string, err error) *models.ItemError {
	return &models.ItemError{Path: path, ErrorType: errorType, Message: err.Error()}
}
