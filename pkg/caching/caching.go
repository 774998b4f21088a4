package caching

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dtnitsch/item-labeler/internal/common"
	"github.com/dtnitsch/item-labeler/models"
)

// Cache provides a simple file-based cache of per-source results with a TTL.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// Fingerprint identifies the state of a source directory: every file's name,
// size and modification time, plus the settings the result depends on.
func Fingerprint(sourceDir string, settings any) (string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", sourceDir, err)
	}

	lines := make([]string, 0, len(entries)+1)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		lines = append(lines, fmt.Sprintf("%s|%d|%d", entry.Name(), info.Size(), info.ModTime().UnixNano()))
	}
	sort.Strings(lines)

	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache settings: %w", err)
	}
	lines = append(lines, string(settingsJSON))

	return common.ContentHash([]byte(strings.Join(lines, "\n"))), nil
}

// Get retrieves a source result from the cache.
// It returns the result and true if the entry is found and not expired.
// Otherwise, it returns nil and false.
func (c *Cache) Get(key string) (*models.SourceResult, bool) {
	filePath := filepath.Join(c.path, key+".json")

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false // Cache miss
	}

	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false // Cache miss (expired)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}

	var result models.SourceResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	result.Cached = true
	return &result, true
}

// Set adds a source result to the cache.
func (c *Cache) Set(key string, result *models.SourceResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	filePath := filepath.Join(c.path, key+".json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
