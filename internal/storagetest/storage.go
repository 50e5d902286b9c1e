// Package storagetest provides an in-memory domain.Storage that records writes.
package storagetest

import (
	"errors"
	"sync"

	"github.com/mmcdole/shelf/internal/domain"
)

// ErrWriteFailed is returned by Set while FailWrites is true
var ErrWriteFailed = errors.New("storagetest: write failed")

// Storage is a map-backed domain.Storage
type Storage struct {
	mu         sync.Mutex
	values     map[string]string
	writes     map[string]int
	FailWrites bool
}

var _ domain.Storage = (*Storage)(nil)

// New returns an empty Storage, optionally seeded with key/value pairs
func New(seed map[string]string) *Storage {
	s := &Storage{values: make(map[string]string), writes: make(map[string]int)}
	for k, v := range seed {
		s.values[k] = v
	}
	return s
}

func (s *Storage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Storage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return ErrWriteFailed
	}
	s.values[key] = value
	s.writes[key]++
	return nil
}

// Writes returns how many times key has been written
func (s *Storage) Writes(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

// TotalWrites returns the number of writes across all keys
func (s *Storage) TotalWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.writes {
		n += c
	}
	return n
}
