package storage

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	defaultService = "witchcraft-and-wizardy.school"

	// The keyring API cannot enumerate entries, so a JSON index of known
	// keys is kept under a reserved entry name.
	keyringIndexEntry = "waw:keys"
)

// KeyringStore keeps entries in the OS keyring, one secret per key.
type KeyringStore struct {
	service string
}

// NewKeyring creates a store scoped to the given keyring service name,
// falling back to the application default when empty.
func NewKeyring(service string) *KeyringStore {
	if service == "" {
		service = defaultService
	}
	return &KeyringStore{service: service}
}

func (s *KeyringStore) Get(key string) (string, error) {
	value, err := keyring.Get(s.service, key)
	if err == keyring.ErrNotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading keyring: %v", ErrUnavailable, err)
	}
	return value, nil
}

func (s *KeyringStore) Set(key, value string) error {
	if err := keyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("%w: writing keyring: %v", ErrUnavailable, err)
	}
	return s.updateIndex(key, true)
}

func (s *KeyringStore) Remove(key string) error {
	if err := keyring.Delete(s.service, key); err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("%w: deleting from keyring: %v", ErrUnavailable, err)
	}
	return s.updateIndex(key, false)
}

func (s *KeyringStore) Keys(prefix string) ([]string, error) {
	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, k := range index {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *KeyringStore) readIndex() ([]string, error) {
	raw, err := keyring.Get(s.service, keyringIndexEntry)
	if err == keyring.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading keyring index: %v", ErrUnavailable, err)
	}
	var index []string
	if err := json.Unmarshal([]byte(raw), &index); err != nil {
		return nil, fmt.Errorf("decoding keyring index: %w", err)
	}
	return index, nil
}

func (s *KeyringStore) updateIndex(key string, present bool) error {
	index, err := s.readIndex()
	if err != nil {
		return err
	}

	i := slices.Index(index, key)
	switch {
	case present && i < 0:
		index = append(index, key)
	case !present && i >= 0:
		index = slices.Delete(index, i, i+1)
	default:
		return nil
	}

	raw, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("encoding keyring index: %w", err)
	}
	if err := keyring.Set(s.service, keyringIndexEntry, string(raw)); err != nil {
		return fmt.Errorf("%w: writing keyring index: %v", ErrUnavailable, err)
	}
	return nil
}
