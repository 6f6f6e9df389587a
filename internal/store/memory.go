// ABOUTME: In-memory backend for the persistence store.
// ABOUTME: Used by tests and as the degraded mode when durable storage is unavailable.
package store

import "sync"

// MemoryBackend keeps values in a map. No durability.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get returns the raw bytes for a key.
func (b *MemoryBackend) Get(key string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	val, ok := b.data[key]
	return val, ok
}

// Set stores raw bytes under a key.
func (b *MemoryBackend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	b.data[key] = cp
	return nil
}

// Delete removes a key.
func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

// Keys lists all stored keys.
func (b *MemoryBackend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}

// Corrupt overwrites a key with unparseable bytes. Test helper.
func (b *MemoryBackend) Corrupt(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = []byte("{not json")
}
