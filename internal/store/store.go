// ABOUTME: Key-value persistence adapter with versioned JSON envelopes.
// ABOUTME: Get never fails: missing keys, decode errors, and backend faults read as the default.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Persistence keys. Flat namespace, JSON-valued.
const (
	KeyProfile       = "sts_profile"
	KeyPrograms      = "sts_programs"
	KeyHistory       = "sts_history"
	KeyPRs           = "sts_prs"
	KeySettings      = "sts_settings"
	KeyMessages      = "sts_messages"
	KeyQuestProgress = "sts_quest_progress"
	KeyXP            = "sts_xp"
	KeyDevices       = "sts_devices"
	KeyClaims        = "sts_claims"
)

// schemaVersion tags every stored value. A value with a different schema
// (or no envelope at all) decodes as missing, so callers fall back to
// their defaults instead of reading a shape they don't understand.
const schemaVersion = 1

// Backend is a raw byte-level key-value store. Implementations: charm KV
// (default), SQLite, and an in-memory store for tests and degraded mode.
type Backend interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// envelope wraps every stored value with its schema version.
type envelope struct {
	Schema int             `json:"schema"`
	Data   json.RawMessage `json:"data"`
}

// Store decorates a Backend with JSON encoding and the envelope contract.
type Store struct {
	b Backend
}

// New wraps a backend.
func New(b Backend) *Store {
	return &Store{b: b}
}

// Get decodes the value at key into `into`. It returns false — leaving
// `into` untouched at the caller's default — when the key is missing, the
// stored bytes don't parse, or the schema version doesn't match.
func (s *Store) Get(key string, into any) bool {
	raw, ok := s.b.Get(key)
	if !ok {
		return false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	if env.Schema != schemaVersion || env.Data == nil {
		return false
	}
	if err := json.Unmarshal(env.Data, into); err != nil {
		return false
	}
	return true
}

// Set encodes and stores the value. Callers that can proceed in-memory may
// ignore the error; the CLI surfaces it as a warning only.
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	raw, err := json.Marshal(envelope{Schema: schemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("encode envelope %s: %w", key, err)
	}
	return s.b.Set(key, raw)
}

// Delete removes a key.
func (s *Store) Delete(key string) error {
	return s.b.Delete(key)
}

// Keys lists all stored keys, sorted.
func (s *Store) Keys() ([]string, error) {
	keys, err := s.b.Keys()
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// Export dumps every key's decoded payload for backup or migration.
func (s *Store) Export() (map[string]json.RawMessage, error) {
	keys, err := s.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	out := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		var data json.RawMessage
		if s.Get(key, &data) {
			out[key] = data
		}
	}
	return out, nil
}

// Import writes every payload from an Export dump.
func (s *Store) Import(dump map[string]json.RawMessage) error {
	for key, data := range dump {
		if err := s.Set(key, data); err != nil {
			return fmt.Errorf("import %s: %w", key, err)
		}
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.b.Close()
}
