package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSetGetRemove(t *testing.T) {
	s := openTestSQLite(t)

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing key, got %v", err)
	}

	if err := s.Set("waw:profile:rowan", "blob"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("waw:profile:rowan", "blob2"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	value, err := s.Get("waw:profile:rowan")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "blob2" {
		t.Errorf("Upsert mismatch: got %q, want %q", value, "blob2")
	}

	if err := s.Remove("waw:profile:rowan"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get("waw:profile:rowan"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after remove, got %v", err)
	}
}

func TestSQLiteKeysPrefix(t *testing.T) {
	s := openTestSQLite(t)

	for k, v := range map[string]string{
		"waw:profile:rowan":   "a",
		"waw:profile:sam":     "b",
		"waw:current-profile": "sam",
	} {
		if err := s.Set(k, v); err != nil {
			t.Fatalf("Set %q failed: %v", k, err)
		}
	}

	keys, err := s.Keys("waw:profile:")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Expected 2 profile keys, got %d: %v", len(keys), keys)
	}
}

func TestSQLitePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.db")

	s1, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("First open failed: %v", err)
	}
	if err := s1.Set("waw:current-profile", "rowan"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s1.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Second open failed: %v", err)
	}
	defer s2.Close()

	value, err := s2.Get("waw:current-profile")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if value != "rowan" {
		t.Errorf("Value did not survive reopen: got %q", value)
	}
}
