// ABOUTME: Tests for exercise catalog lookup, filters, and search.
// ABOUTME: Verifies case-insensitivity and the handled not-found state.
package catalog

import (
	"strings"
	"testing"
)

func TestLookupCaseInsensitive(t *testing.T) {
	upper, ok := Lookup("BACK SQUAT")
	if !ok {
		t.Fatal("Lookup(BACK SQUAT) not found")
	}
	lower, ok := Lookup("back squat")
	if !ok {
		t.Fatal("Lookup(back squat) not found")
	}
	if upper != lower {
		t.Errorf("case variants returned different records: %p vs %p", upper, lower)
	}
	if upper.Name != "Back Squat" {
		t.Errorf("Name = %q, want Back Squat", upper.Name)
	}
	if upper.XPValue <= 0 {
		t.Errorf("XPValue = %d, want positive", upper.XPValue)
	}
}

func TestLookupNotFound(t *testing.T) {
	ex, ok := Lookup("Underwater Basket Press")
	if ok {
		t.Errorf("expected not-found, got %v", ex)
	}
	if ex != nil {
		t.Errorf("expected nil exercise on miss, got %v", ex)
	}
}

func TestLookupNoFuzzyMatch(t *testing.T) {
	// Exact match only: a substring of a real name must miss.
	if _, ok := Lookup("Squat"); ok {
		t.Error("Lookup(Squat) matched; exact-match only expected")
	}
}

func TestByCategory(t *testing.T) {
	legs := ByCategory("LEGS")
	if len(legs) == 0 {
		t.Fatal("no legs exercises found")
	}
	for _, ex := range legs {
		if !strings.EqualFold(ex.Category, "legs") {
			t.Errorf("%s has category %s, want legs", ex.Name, ex.Category)
		}
	}

	if got := ByCategory("nope"); len(got) != 0 {
		t.Errorf("unknown category returned %d exercises", len(got))
	}
}

func TestByMuscle(t *testing.T) {
	// "core" appears as a secondary muscle on several lifts and primary on plank.
	core := ByMuscle("core")
	if len(core) == 0 {
		t.Fatal("no core exercises found")
	}

	foundPrimary, foundSecondary := false, false
	for _, ex := range core {
		for _, m := range ex.PrimaryMuscles {
			if strings.EqualFold(m, "core") {
				foundPrimary = true
			}
		}
		for _, m := range ex.SecondaryMuscles {
			if strings.EqualFold(m, "core") {
				foundSecondary = true
			}
		}
	}
	if !foundPrimary || !foundSecondary {
		t.Errorf("ByMuscle should match both lists: primary=%v secondary=%v", foundPrimary, foundSecondary)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantHit  string
		wantNone bool
	}{
		{"by name substring", "squat", "Back Squat", false},
		{"by name mixed case", "SqUaT", "Front Squat", false},
		{"by category", "shoulders", "Overhead Press", false},
		{"by primary muscle", "hamstrings", "Romanian Deadlift", false},
		{"no match", "zzzz", "", true},
		{"empty query", "  ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query)
			if tt.wantNone {
				if len(got) != 0 {
					t.Errorf("Search(%q) = %d results, want 0", tt.query, len(got))
				}
				return
			}
			found := false
			for _, ex := range got {
				if ex.Name == tt.wantHit {
					found = true
				}
			}
			if !found {
				t.Errorf("Search(%q) missing %s", tt.query, tt.wantHit)
			}
		})
	}
}

func TestAllSortedAndIndexed(t *testing.T) {
	all := All()
	if len(all) < 10 {
		t.Fatalf("catalog too small: %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Errorf("All() not sorted: %s before %s", all[i-1].Name, all[i].Name)
		}
	}
	// Every entry must be reachable through Lookup.
	for _, ex := range all {
		if _, ok := Lookup(ex.Name); !ok {
			t.Errorf("Lookup(%s) missed a catalog entry", ex.Name)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	want := map[string]bool{"legs": false, "back": false, "chest": false, "shoulders": false, "arms": false, "core": false}
	for _, c := range cats {
		if _, ok := want[c]; ok {
			want[c] = true
		}
	}
	for c, seen := range want {
		if !seen {
			t.Errorf("Categories() missing %s", c)
		}
	}
}
