package caching

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dtnitsch/item-labeler/models"
)

func TestCache_SetGet(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get() hit on empty cache")
	}

	result := models.NewSourceResult("buy.net")
	result.Labels["buy.net//1"] = "u2412m"
	result.Files = 1
	if err := cache.Set("key", result); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("Get() miss after Set")
	}
	if !got.Cached {
		t.Error("Cached = false, want true")
	}
	if got.Labels["buy.net//1"] != "u2412m" || got.Files != 1 {
		t.Errorf("Get() = %+v", got)
	}
}

func TestCache_Expired(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewCache(dir, time.Minute)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if err := cache.Set("key", models.NewSourceResult("s")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "key.json"), old, old); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	if _, ok := cache.Get("key"); ok {
		t.Error("Get() hit on expired entry")
	}
}

func TestFingerprint(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := Fingerprint(dir, []string{"model"})
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	again, _ := Fingerprint(dir, []string{"model"})
	if first != again {
		t.Error("Fingerprint() not stable")
	}

	otherSettings, _ := Fingerprint(dir, []string{"part"})
	if otherSettings == first {
		t.Error("Fingerprint() ignores settings")
	}

	if err := os.WriteFile(filepath.Join(dir, "2.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	changed, _ := Fingerprint(dir, []string{"model"})
	if changed == first {
		t.Error("Fingerprint() ignores new files")
	}
}
