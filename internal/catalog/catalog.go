// ABOUTME: Case-insensitive lookup and filter operations over the exercise table.
// ABOUTME: All operations are pure and total; a miss is a handled state, not an error.
package catalog

import (
	"sort"
	"strings"

	"github.com/stslabs/motiv8r/internal/models"
)

// Lookup finds an exercise by exact name, case-insensitively.
// The second return is false when no exercise matches.
func Lookup(name string) (*models.Exercise, bool) {
	ex, ok := byLowerName[strings.ToLower(name)]
	return ex, ok
}

// ByCategory returns all exercises in a category, case-insensitively.
func ByCategory(category string) []*models.Exercise {
	var out []*models.Exercise
	for _, ex := range All() {
		if strings.EqualFold(ex.Category, category) {
			out = append(out, ex)
		}
	}
	return out
}

// ByMuscle returns exercises where the muscle appears in the primary or
// secondary muscle list.
func ByMuscle(muscle string) []*models.Exercise {
	var out []*models.Exercise
	for _, ex := range All() {
		if containsFold(ex.PrimaryMuscles, muscle) || containsFold(ex.SecondaryMuscles, muscle) {
			out = append(out, ex)
		}
	}
	return out
}

// Search matches the query as a case-insensitive substring against the
// exercise name, primary muscles, or category.
func Search(query string) []*models.Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []*models.Exercise
	for _, ex := range All() {
		if matches(ex, q) {
			out = append(out, ex)
		}
	}
	return out
}

// All returns the full catalog sorted by name.
func All() []*models.Exercise {
	out := make([]*models.Exercise, len(exercises))
	for i := range exercises {
		out[i] = &exercises[i]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Categories returns the distinct category names, sorted.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for i := range exercises {
		if !seen[exercises[i].Category] {
			seen[exercises[i].Category] = true
			out = append(out, exercises[i].Category)
		}
	}
	sort.Strings(out)
	return out
}

func matches(ex *models.Exercise, q string) bool {
	if strings.Contains(strings.ToLower(ex.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(ex.Category), q) {
		return true
	}
	for _, m := range ex.PrimaryMuscles {
		if strings.Contains(strings.ToLower(m), q) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
