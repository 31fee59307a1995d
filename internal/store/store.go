// Package store caches backend data locally with BoltDB: recently fetched
// discovery pages for instant redisplay, and the last committed instance
// selection as a fallback when the backend settings endpoint is unreachable.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/requestarr/requestarr/internal/domain"
)

// Bucket names
var (
	bucketPages    = []byte("pages")
	bucketSettings = []byte("settings")
)

var keyDefaultInstances = []byte("default_instances")

// cachedPage wraps a page of cards for JSON serialization.
type cachedPage struct {
	Items    []domain.MediaCard `json:"items"`
	HasMore  *bool              `json:"has_more,omitempty"`
	RawCount int                `json:"raw_count"`
	SavedAt  int64              `json:"saved_at"`
}

// Store is the local BoltDB-backed cache. A Store opened with an empty
// directory runs memory-only and persists nothing.
type Store struct {
	db *bolt.DB

	mu    sync.RWMutex
	cache map[string][]byte
}

// Open creates or opens the cache for one backend URL. Each backend gets its
// own subdirectory so switching backends never mixes cached pages.
func Open(baseCacheDir, backendURL string) (*Store, error) {
	if baseCacheDir == "" {
		return &Store{cache: make(map[string][]byte)}, nil
	}

	dir := baseCacheDir
	if backendURL != "" {
		dir = filepath.Join(baseCacheDir, hashBackendURL(backendURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "requestarr.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketPages, bucketSettings} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, cache: make(map[string][]byte)}, nil
}

func hashBackendURL(backendURL string) string {
	normalized := strings.TrimRight(strings.ToLower(backendURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *Store) get(bucket []byte, key string, dest any) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucket).Get([]byte(key)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || data == nil {
		return false
	}

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *Store) put(bucket []byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[string(bucket)+":"+key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func pageKey(stream string, ref domain.InstanceRef, page int) string {
	return stream + "|" + ref.Encode() + "|" + strconv.Itoa(page)
}

// SavePage caches one fetched page for a stream+instance.
func (s *Store) SavePage(stream string, ref domain.InstanceRef, page int, pg domain.Page) error {
	return s.put(bucketPages, pageKey(stream, ref, page), cachedPage{
		Items:    pg.Items,
		HasMore:  pg.HasMore,
		RawCount: pg.RawCount,
		SavedAt:  time.Now().Unix(),
	})
}

// LoadPage returns a cached page, if present.
func (s *Store) LoadPage(stream string, ref domain.InstanceRef, page int) (domain.Page, bool) {
	var cached cachedPage
	if !s.get(bucketPages, pageKey(stream, ref, page), &cached) {
		return domain.Page{}, false
	}
	return domain.Page{
		Items:    cached.Items,
		HasMore:  cached.HasMore,
		RawCount: cached.RawCount,
	}, true
}

// InvalidateStream drops every cached page for a stream+instance, e.g. after
// the hidden-media sets changed.
func (s *Store) InvalidateStream(stream string, ref domain.InstanceRef) error {
	prefix := stream + "|" + ref.Encode() + "|"

	s.mu.Lock()
	for k := range s.cache {
		if strings.HasPrefix(k, string(bucketPages)+":"+prefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPages)
		c := b.Cursor()
		for k, _ := c.Seek([]byte(prefix)); k != nil && strings.HasPrefix(string(k), prefix); k, _ = c.Next() {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveDefaultInstances mirrors the committed selection locally.
// Implements service.SelectionMirror.
func (s *Store) SaveDefaultInstances(defaults domain.DefaultInstances) error {
	return s.put(bucketSettings, string(keyDefaultInstances), defaults)
}

// LoadDefaultInstances returns the locally mirrored selection, if any.
func (s *Store) LoadDefaultInstances() (domain.DefaultInstances, bool) {
	var defaults domain.DefaultInstances
	ok := s.get(bucketSettings, string(keyDefaultInstances), &defaults)
	return defaults, ok
}
