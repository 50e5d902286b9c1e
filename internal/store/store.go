package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mmcdole/shelf/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// All values live in one bucket, keyed by the logical storage key.
var bucketLocal = []byte("local")

// Compile-time check
var _ domain.Storage = (*KVStore)(nil)

// KVStore implements domain.Storage using BoltDB.
type KVStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string]string
}

// Open opens (or creates) the database at path.
// An empty path gives a memory-only store that keeps nothing after Close.
func Open(path string) (*KVStore, error) {
	if path == "" {
		return NewMemory(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// A second instance holding the lock fails after the timeout instead of hanging
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLocal)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &KVStore{db: db, cache: make(map[string]string)}, nil
}

// NewMemory returns a memory-only store
func NewMemory() *KVStore {
	return &KVStore{cache: make(map[string]string)}
}

func (s *KVStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file, or "" in memory-only mode
func (s *KVStore) Path() string {
	if s.db == nil {
		return ""
	}
	return s.db.Path()
}

// Get returns the stored value for key
func (s *KVStore) Get(key string) (string, bool) {
	// Check memory cache first
	s.mu.RLock()
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return v, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return "", false
	}

	var (
		value string
		found bool
	)
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketLocal)
		if b == nil {
			return nil
		}
		// Bolt's slice is only valid inside the transaction; string() copies it
		if v := b.Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})

	if !found {
		return "", false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return value, true
}

// Set overwrites the value for key
func (s *KVStore) Set(key, value string) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketLocal).Put([]byte(key), []byte(value))
		})
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
	}

	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()
	return nil
}

// Delete removes key if present
func (s *KVStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLocal).Delete([]byte(key))
	})
}

// Keys returns every stored key in sorted order
func (s *KVStore) Keys() []string {
	seen := make(map[string]bool)

	s.mu.RLock()
	for k := range s.cache {
		seen[k] = true
	}
	s.mu.RUnlock()

	if s.db != nil {
		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketLocal)
			if b == nil {
				return nil
			}
			return b.ForEach(func(k, _ []byte) error {
				seen[string(k)] = true
				return nil
			})
		})
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
