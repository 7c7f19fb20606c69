package storage

import (
	"fmt"
	"strings"

	bolt "go.etcd.io/bbolt"
)

// Entries live in a single flat bucket, mirroring the string-keyed map the
// profile store expects.
var entriesBucket = []byte("entries")

// BoltStore persists entries in a bbolt file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates a profile database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", ErrUnavailable, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(entriesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating bucket: %v", ErrUnavailable, err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(entriesBucket).Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}
		// Copy: the slice is only valid during the transaction.
		value = string(data)
		return nil
	})
	return value, err
}

func (s *BoltStore) Set(key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("%w: writing entry: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *BoltStore) Remove(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: deleting entry: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *BoltStore) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).ForEach(func(k, v []byte) error {
			if strings.HasPrefix(string(k), prefix) {
				keys = append(keys, string(k))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: listing entries: %v", ErrUnavailable, err)
	}
	return keys, nil
}
