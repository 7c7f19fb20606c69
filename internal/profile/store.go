package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/codec"
	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/crypto"
	"github.com/edmundmulligan/witchcraft-and-wizardy.school/internal/storage"
)

// ErrSerialization is returned when a record cannot be marshalled for
// storage. Unmarshal failures on load are downgraded to "no data".
var ErrSerialization = errors.New("serialization failed")

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Store orchestrates key derivation, authenticated encryption and the
// profile keyspace over an injected key-value backend. It is the exclusive
// owner of keys under the waw: prefix; no other component may touch them.
type Store struct {
	kv    storage.Store
	enc   *crypto.Encryptor
	log   *slog.Logger
	clock Clock
}

// New creates a Store over kv using the embedded derivation inputs.
func New(kv storage.Store) *Store {
	return NewWithKey(kv, crypto.DeriveKey())
}

// NewWithKey creates a Store with a caller-derived key, for deployments
// that supply their own passphrase.
func NewWithKey(kv storage.Store, key []byte) *Store {
	return &Store{
		kv:    kv,
		enc:   crypto.NewEncryptor(key),
		log:   slog.Default(),
		clock: realClock{},
	}
}

// SetLogger redirects the store's degraded-load warnings.
func (s *Store) SetLogger(log *slog.Logger) {
	if log != nil {
		s.log = log
	}
}

// Save encrypts record and stores it under the normalized identifier, then
// makes that profile the active one. Each save fully replaces the stored
// record. Nothing is written when serialization or encryption fails, so a
// failed save leaves any previous record untouched. Failures surface to the
// caller; silently pretending to save would be worse than reporting.
func (s *Store) Save(ctx context.Context, rawID string, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := Normalize(rawID)

	rec.SavedAt = s.clock.Now().UTC()
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	blob, err := s.enc.Encrypt(payload)
	if err != nil {
		return fmt.Errorf("encrypting profile %q: %w", id, err)
	}

	if err := s.kv.Set(StorageKeyFor(id), codec.ToText(blob)); err != nil {
		return fmt.Errorf("storing profile %q: %w", id, err)
	}

	// The pointer update is a second, independent write. A crash between
	// the two leaves the pointer and the data entry out of step, which
	// Load treats as an ordinary missing profile.
	if err := s.kv.Set(currentProfileKey, id); err != nil {
		return fmt.Errorf("updating current profile: %w", err)
	}

	s.log.Debug("profile saved", "profile", id)
	return nil
}

// Load returns the record for rawID, defaulting to the current profile when
// rawID is empty. A missing profile yields (nil, nil): absence is an
// ordinary state, not an error. Entries that fail decoding, authentication
// or parsing also yield (nil, nil) and are logged, never repaired and never
// surfaced as a corrupted record. Only ErrCryptoUnavailable propagates.
func (s *Store) Load(ctx context.Context, rawID string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var id string
	if strings.TrimSpace(rawID) == "" {
		id = s.CurrentProfile()
		if id == "" {
			return nil, nil
		}
	} else {
		id = Normalize(rawID)
	}

	text, err := s.kv.Get(StorageKeyFor(id))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Warn("profile read failed", "profile", id, "error", err)
		return nil, nil
	}

	blob, err := codec.FromText(text)
	if err != nil {
		s.log.Warn("discarding profile with malformed encoding", "profile", id, "error", err)
		return nil, nil
	}

	payload, err := s.enc.Decrypt(blob)
	if err != nil {
		if errors.Is(err, crypto.ErrCryptoUnavailable) {
			return nil, err
		}
		s.log.Warn("discarding profile that failed authentication", "profile", id, "error", err)
		return nil, nil
	}

	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		s.log.Warn("discarding profile with unreadable payload", "profile", id, "error", err)
		return nil, nil
	}
	return &rec, nil
}

// Clear removes the stored entry for rawID. When rawID is empty the
// identifier resolves via the current-profile pointer and the pointer is
// cleared as well. Clearing a profile that does not exist is a no-op.
func (s *Store) Clear(rawID string) error {
	viaPointer := strings.TrimSpace(rawID) == ""

	var id string
	if viaPointer {
		id = s.CurrentProfile()
		if id == "" {
			return nil
		}
	} else {
		id = Normalize(rawID)
	}

	if err := s.kv.Remove(StorageKeyFor(id)); err != nil {
		return fmt.Errorf("clearing profile %q: %w", id, err)
	}
	if viaPointer {
		if err := s.kv.Remove(currentProfileKey); err != nil {
			return fmt.Errorf("clearing current profile: %w", err)
		}
	}

	s.log.Debug("profile cleared", "profile", id)
	return nil
}

// SwitchProfile makes rawID the active profile without loading its data;
// loading stays a separate, explicit step.
func (s *Store) SwitchProfile(rawID string) error {
	id := Normalize(rawID)
	if err := s.kv.Set(currentProfileKey, id); err != nil {
		return fmt.Errorf("switching to profile %q: %w", id, err)
	}
	return nil
}

// CurrentProfile returns the identifier of the most recently active
// profile, or "" when none is set or the pointer cannot be read.
func (s *Store) CurrentProfile() string {
	id, err := s.kv.Get(currentProfileKey)
	if err != nil {
		return ""
	}
	return id
}

// SetCurrentProfile sets the pointer directly, or clears it when id is
// empty.
func (s *Store) SetCurrentProfile(id string) error {
	if id == "" {
		return s.kv.Remove(currentProfileKey)
	}
	return s.kv.Set(currentProfileKey, Normalize(id))
}

// List returns the identifiers of every stored profile, sorted.
func (s *Store) List() ([]string, error) {
	keys, err := s.kv.Keys(dataPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, dataPrefix))
	}
	sort.Strings(ids)
	return ids, nil
}

// Destroy clears the derived key from memory. The store is unusable
// afterwards.
func (s *Store) Destroy() {
	s.enc.Destroy()
}
