// ABOUTME: Tests for the key-value store envelope contract and backends.
// ABOUTME: Verifies default-on-failure reads against memory and SQLite backends.
package store

import (
	"path/filepath"
	"testing"
)

type testProfile struct {
	Name string `json:"name"`
	XP   int    `json:"xp"`
}

func backends(t *testing.T) map[string]*Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "motiv8r.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]*Store{
		"memory": New(NewMemory()),
		"sqlite": New(sq),
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			want := testProfile{Name: "Alex", XP: 420}
			if err := s.Set(KeyProfile, want); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			var got testProfile
			if !s.Get(KeyProfile, &got) {
				t.Fatal("Get returned false for stored key")
			}
			if got != want {
				t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
			}
		})
	}
}

func TestGetMissingKeyLeavesDefault(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got := testProfile{Name: "default", XP: 7}
			if s.Get("sts_nope", &got) {
				t.Error("Get returned true for missing key")
			}
			if got.Name != "default" || got.XP != 7 {
				t.Errorf("default mutated: %+v", got)
			}
		})
	}
}

func TestGetCorruptedValueLeavesDefault(t *testing.T) {
	mem := NewMemory()
	s := New(mem)

	if err := s.Set(KeyProfile, testProfile{Name: "Alex"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	mem.Corrupt(KeyProfile)

	got := testProfile{Name: "default"}
	if s.Get(KeyProfile, &got) {
		t.Error("Get returned true for corrupted value")
	}
	if got.Name != "default" {
		t.Errorf("default mutated on corrupt read: %+v", got)
	}
}

func TestGetRejectsUnversionedValue(t *testing.T) {
	// A bare JSON value without the envelope reads as missing.
	mem := NewMemory()
	if err := mem.Set(KeyXP, []byte(`1250`)); err != nil {
		t.Fatalf("raw Set failed: %v", err)
	}

	s := New(mem)
	xp := 0
	if s.Get(KeyXP, &xp) {
		t.Error("Get accepted a value without a schema envelope")
	}
	if xp != 0 {
		t.Errorf("default mutated: %d", xp)
	}
}

func TestOverwrite(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(KeyXP, 100); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set(KeyXP, 250); err != nil {
				t.Fatalf("Set overwrite failed: %v", err)
			}
			var xp int
			if !s.Get(KeyXP, &xp) {
				t.Fatal("Get failed after overwrite")
			}
			if xp != 250 {
				t.Errorf("xp = %d, want 250", xp)
			}
		})
	}
}

func TestDeleteAndKeys(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(KeyXP, 1); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set(KeyProfile, testProfile{}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			keys, err := s.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			if len(keys) != 2 {
				t.Fatalf("Keys = %v, want 2 entries", keys)
			}
			// Keys are sorted.
			if keys[0] != KeyProfile || keys[1] != KeyXP {
				t.Errorf("Keys order = %v", keys)
			}

			if err := s.Delete(KeyXP); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			var xp int
			if s.Get(KeyXP, &xp) {
				t.Error("Get returned true after delete")
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	src := New(NewMemory())
	if err := src.Set(KeyXP, 300); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := src.Set(KeyProfile, testProfile{Name: "Alex", XP: 300}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	dump, err := src.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(dump) != 2 {
		t.Fatalf("Export = %d entries, want 2", len(dump))
	}

	dst := New(NewMemory())
	if err := dst.Import(dump); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	var xp int
	if !dst.Get(KeyXP, &xp) || xp != 300 {
		t.Errorf("imported xp = %d, want 300", xp)
	}
	var p testProfile
	if !dst.Get(KeyProfile, &p) || p.Name != "Alex" {
		t.Errorf("imported profile = %+v", p)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motiv8r.db")

	sq, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	s := New(sq)
	if err := s.Set(KeyXP, 999); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	sq2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer sq2.Close()

	var xp int
	if !New(sq2).Get(KeyXP, &xp) || xp != 999 {
		t.Errorf("xp after reopen = %d, want 999", xp)
	}
}
