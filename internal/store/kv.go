// ABOUTME: Charm KV backend for the persistence store.
// ABOUTME: Badger-backed local store with optional Charm Cloud sync after writes.
package store

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/charm/kv"
)

const kvDBName = "motiv8r"

// KVBackend stores values in Charm KV. Writes sync to Charm Cloud when
// autoSync is on and the database is writable; a second process (the MCP
// server, usually) holding the lock puts us in read-only mode.
type KVBackend struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// OpenKV opens the Charm KV database for this app.
func OpenKV() (*KVBackend, error) {
	db, err := kv.OpenWithDefaultsFallback(kvDBName)
	if err != nil {
		return nil, fmt.Errorf("open kv: %w", err)
	}

	b := &KVBackend{kv: db, autoSync: true}

	// Pull remote state on startup; skip when another process holds the lock.
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return b, nil
}

// SetAutoSync enables or disables cloud sync after each write.
func (b *KVBackend) SetAutoSync(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.autoSync = enabled
}

// Get returns the raw bytes for a key. Any failure reads as absent.
func (b *KVBackend) Get(key string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	val, err := b.kv.Get([]byte(key))
	if err != nil || val == nil {
		return nil, false
	}
	return val, true
}

// Set stores raw bytes under a key.
func (b *KVBackend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := b.kv.Set([]byte(key), value); err != nil {
		return err
	}
	b.syncIfEnabled()
	return nil
}

// Delete removes a key.
func (b *KVBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := b.kv.Delete([]byte(key)); err != nil {
		return err
	}
	b.syncIfEnabled()
	return nil
}

// Keys lists all keys in the database.
func (b *KVBackend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	raw, err := b.kv.Keys()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = string(k)
	}
	return keys, nil
}

// Close closes the KV database.
func (b *KVBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.kv != nil {
		return b.kv.Close()
	}
	return nil
}

func (b *KVBackend) syncIfEnabled() {
	if b.autoSync && !b.kv.IsReadOnly() {
		_ = b.kv.Sync()
	}
}
