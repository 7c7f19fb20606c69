package storage

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func newTestKeyring(t *testing.T) *KeyringStore {
	t.Helper()
	keyring.MockInit()
	return NewKeyring("waw-test")
}

func TestKeyringSetGetRemove(t *testing.T) {
	s := newTestKeyring(t)

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing key, got %v", err)
	}

	if err := s.Set("waw:profile:rowan", "blob"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, err := s.Get("waw:profile:rowan")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "blob" {
		t.Errorf("Value mismatch: got %q, want %q", value, "blob")
	}

	if err := s.Remove("waw:profile:rowan"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get("waw:profile:rowan"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after remove, got %v", err)
	}
}

func TestKeyringIndexConsistency(t *testing.T) {
	s := newTestKeyring(t)

	for _, k := range []string{"waw:profile:rowan", "waw:profile:sam", "waw:current-profile"} {
		if err := s.Set(k, "v"); err != nil {
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

	// Re-setting an existing key must not duplicate it in the index
	if err := s.Set("waw:profile:rowan", "v2"); err != nil {
		t.Fatalf("Re-set failed: %v", err)
	}
	keys, _ = s.Keys("waw:profile:")
	if len(keys) != 2 {
		t.Errorf("Index duplicated key: got %v", keys)
	}

	if err := s.Remove("waw:profile:sam"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	keys, _ = s.Keys("waw:profile:")
	if len(keys) != 1 || keys[0] != "waw:profile:rowan" {
		t.Errorf("Index not updated on remove: got %v", keys)
	}
}
