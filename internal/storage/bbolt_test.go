package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestBoltSetGetRemove(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenBolt(filepath.Join(dir, "test.profiles"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing key, got %v", err)
	}

	if err := db.Set("waw:profile:rowan", "blob"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, err := db.Get("waw:profile:rowan")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "blob" {
		t.Errorf("Value mismatch: got %q, want %q", value, "blob")
	}

	// Overwrite
	if err := db.Set("waw:profile:rowan", "blob2"); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	value, _ = db.Get("waw:profile:rowan")
	if value != "blob2" {
		t.Errorf("Overwrite mismatch: got %q, want %q", value, "blob2")
	}

	if err := db.Remove("waw:profile:rowan"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := db.Get("waw:profile:rowan"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after remove, got %v", err)
	}

	// Removing an absent key is not an error
	if err := db.Remove("waw:profile:rowan"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

func TestBoltKeysPrefix(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenBolt(filepath.Join(dir, "test.profiles"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	entries := map[string]string{
		"waw:profile:rowan":   "a",
		"waw:profile:morgan":  "b",
		"waw:current-profile": "rowan",
		"theme":               "dark",
	}
	for k, v := range entries {
		if err := db.Set(k, v); err != nil {
			t.Fatalf("Set %q failed: %v", k, err)
		}
	}

	keys, err := db.Keys("waw:profile:")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Expected 2 profile keys, got %d: %v", len(keys), keys)
	}
}

func TestBoltPersistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.profiles")

	db, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Set("waw:current-profile", "rowan"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = OpenBolt(path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer db.Close()

	value, err := db.Get("waw:current-profile")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if value != "rowan" {
		t.Errorf("Value did not survive reopen: got %q", value)
	}
}
