package cache

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/timshannon/badgerhold/v4"
)

// storedEntry is the on-disk record. Keyed by the cache key string.
type storedEntry struct {
	Key       string `badgerhold:"key"`
	Timestamp time.Time
	Payload   []byte
}

// BadgerCache persists entries to a Badger store so freshness survives
// restarts. Any store failure degrades per the cache contract: reads miss,
// writes are dropped with a warning.
type BadgerCache struct {
	store *badgerhold.Store
}

// NewBadgerCache opens (or creates) the Badger store at path.
func NewBadgerCache(path string) (*BadgerCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil
	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open badger cache: %w", err)
	}
	log.Printf("[INFO] badger cache opened: %s", path)
	return &BadgerCache{store: store}, nil
}

func (c *BadgerCache) Get(key string) (*Entry, bool) {
	var rec storedEntry
	if err := c.store.Get(key, &rec); err != nil {
		if err != badgerhold.ErrNotFound {
			log.Printf("[WARN] cache read failed for %s, treating as miss: %v", key, err)
		}
		return nil, false
	}
	return &Entry{Timestamp: rec.Timestamp, Payload: rec.Payload}, true
}

func (c *BadgerCache) Put(key string, payload json.RawMessage) {
	rec := storedEntry{Key: key, Timestamp: time.Now(), Payload: payload}
	if err := c.store.Upsert(key, &rec); err != nil {
		log.Printf("[WARN] cache write failed for %s: %v", key, err)
	}
}

func (c *BadgerCache) Close() error {
	return c.store.Close()
}
