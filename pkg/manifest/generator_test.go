package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/item-labeler/models"
	"github.com/dtnitsch/item-labeler/pkg/storage"
)

func TestBuildAndGenerateSummary(t *testing.T) {
	ebay := models.NewSourceResult("www.ebay.com")
	ebay.Files = 3
	ebay.Skipped = 1
	ebay.Labels["www.ebay.com//1"] = "u2412m"
	ebay.Labels["www.ebay.com//2"] = "p2414h"
	ebay.WordCounts = map[string]int{"u2412m": 1, "p2414h": 1, "dell": 2}
	ebay.CommonWords = []string{"dell"}
	ebay.Errors = []models.ItemError{{Path: "www.ebay.com/3.json", ErrorType: models.ErrorTypeParse, Message: "bad json"}}

	buy := models.NewSourceResult("buy.net")
	buy.Files = 1
	buy.Labels["buy.net//1"] = "s24f350"

	m := Build("data", []*models.SourceResult{ebay, buy}, map[string]int{"dell": 2, "s24f350": 1}, []string{"out.json"})

	if m.TotalSources != 2 || m.TotalFiles != 4 || m.Labelled != 3 || m.Skipped != 1 || m.Errors != 1 {
		t.Errorf("totals = %+v", m)
	}
	if m.Sources[0].Source != "buy.net" {
		t.Errorf("Sources[0] = %s, want buy.net (sorted)", m.Sources[0].Source)
	}
	if len(m.AggregateKeywords) != 2 || m.AggregateKeywords[0] != "dell:2" {
		t.Errorf("AggregateKeywords = %v", m.AggregateKeywords)
	}

	path := filepath.Join(t.TempDir(), "summary.yaml")
	if err := GenerateSummary(path, m, &storage.Storage{}); err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var decoded SummaryManifest
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if decoded.Sources[1].Errors[0].ErrorType != models.ErrorTypeParse {
		t.Errorf("decoded error type = %q", decoded.Sources[1].Errors[0].ErrorType)
	}
}
