package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/guarzo/storagemarket/internal/model"
)

// Store is a JSON file cache of market snapshots, keyed by market.
// Scraping a city is slow and rate-limited, so analysis runs reuse a
// fresh-enough snapshot instead of re-fetching.
type Store struct {
	path    string
	entries map[string]entry
	mu      sync.RWMutex
}

type entry struct {
	Snapshot  model.Snapshot `json:"snapshot"`
	Timestamp time.Time      `json:"timestamp"`
	TTL       time.Duration  `json:"ttl"`
}

// New opens the store at path, loading any existing entries. A corrupt
// file is discarded and the store starts fresh.
func New(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]entry),
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read snapshot cache: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &s.entries); err != nil {
				s.entries = make(map[string]entry)
			}
		}
	}

	return s, nil
}

// Get returns the cached snapshot for key when present and not
// expired.
func (s *Store) Get(key string) (model.Snapshot, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return model.Snapshot{}, false
	}

	if e.TTL > 0 && time.Since(e.Timestamp) > e.TTL {
		s.mu.Lock()
		if cur, exists := s.entries[key]; exists && cur.TTL > 0 && time.Since(cur.Timestamp) > cur.TTL {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return model.Snapshot{}, false
	}

	return e.Snapshot, true
}

// Put stores a snapshot under key and persists the store to disk.
// ttl 0 means the entry never expires.
func (s *Store) Put(key string, snap model.Snapshot, ttl time.Duration) error {
	s.mu.Lock()
	s.entries[key] = entry{
		Snapshot:  snap,
		Timestamp: time.Now(),
		TTL:       ttl,
	}
	s.mu.Unlock()

	return s.save()
}

// Remove deletes one entry.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return s.save()
}

// Clear removes all entries.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
	return s.save()
}

// Age reports how old the cached entry for key is. Returns false when
// the key is absent.
func (s *Store) Age(key string) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return 0, false
	}
	return time.Since(e.Timestamp), true
}

func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	s.mu.RLock()
	data, err := json.MarshalIndent(s.entries, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal snapshot cache: %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}

// MarketKey builds the cache key for one (state, city, unit size)
// market.
func MarketKey(state, citySlug, unitSize string) string {
	return state + "|" + citySlug + "|" + unitSize
}
