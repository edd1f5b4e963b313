// Package prefs persists the two user preferences the dashboard remembers
// between runs: the active location and the dark-mode flag.
package prefs

import (
	"strconv"
	"sync"
)

const (
	KeyLocation = "weather-location"
	KeyDarkMode = "dark-mode"

	DefaultLocation = "Mumbai"
)

// Store is an opaque key/value preference store.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// Location reads the persisted location, falling back to DefaultLocation.
func Location(s Store) (string, error) {
	v, ok, err := s.Get(KeyLocation)
	if err != nil {
		return DefaultLocation, err
	}
	if !ok || v == "" {
		return DefaultLocation, nil
	}
	return v, nil
}

// SetLocation persists the active location.
func SetLocation(s Store, location string) error {
	return s.Set(KeyLocation, location)
}

// DarkMode reads the persisted theme flag; absent or malformed means false.
func DarkMode(s Store) (bool, error) {
	v, ok, err := s.Get(KeyDarkMode)
	if err != nil || !ok {
		return false, err
	}
	enabled, perr := strconv.ParseBool(v)
	if perr != nil {
		return false, nil
	}
	return enabled, nil
}

// SetDarkMode persists the theme flag.
func SetDarkMode(s Store, enabled bool) error {
	return s.Set(KeyDarkMode, strconv.FormatBool(enabled))
}

// MemoryStore keeps preferences for the lifetime of the process only.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
