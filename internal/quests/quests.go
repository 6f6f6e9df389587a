// ABOUTME: Daily quest pool, day-seeded selection, and progress event keys.
// ABOUTME: Selection is deterministic per calendar date for day-stable variety.
package quests

import (
	"sort"
	"time"

	"github.com/stslabs/motiv8r/internal/models"
)

// DateFormat is the calendar-date string the seed and the persisted
// progress/claim records are keyed by. Rollover at local midnight.
const DateFormat = "Mon Jan 02 2006"

// Progress keys. Workout events map onto these.
const (
	KeySetsCompleted     = "sets_completed"
	KeyVolumeLifted      = "volume_lifted"
	KeyWorkoutsCompleted = "workouts_completed"
	KeyPRsAttempted      = "prs_attempted"
	KeyRPELogged         = "rpe_logged"
)

// dailyCount is how many quests are offered each day.
const dailyCount = 3

// Pool is the fixed quest pool, in tie-break order.
var Pool = []models.Quest{
	{ID: "first_blood", Name: "First Blood", Description: "Log your first set of the day", XP: 50, Target: 1, Unit: "set", ProgressKey: KeySetsCompleted},
	{ID: "set_machine", Name: "Set Machine", Description: "Complete 15 working sets", XP: 100, Target: 15, Unit: "sets", ProgressKey: KeySetsCompleted},
	{ID: "volume_mover", Name: "Volume Mover", Description: "Move 5,000 in total volume", XP: 120, Target: 5000, Unit: "lbs", ProgressKey: KeyVolumeLifted},
	{ID: "heavy_hitter", Name: "Heavy Hitter", Description: "Move 10,000 in total volume", XP: 200, Target: 10000, Unit: "lbs", ProgressKey: KeyVolumeLifted},
	{ID: "finisher", Name: "Finisher", Description: "Complete a full workout", XP: 150, Target: 1, Unit: "workout", ProgressKey: KeyWorkoutsCompleted},
	{ID: "double_day", Name: "Double Day", Description: "Complete two workouts", XP: 250, Target: 2, Unit: "workouts", ProgressKey: KeyWorkoutsCompleted},
	{ID: "pr_hunter", Name: "PR Hunter", Description: "Attempt a personal record", XP: 180, Target: 1, Unit: "attempt", ProgressKey: KeyPRsAttempted},
	{ID: "rpe_honest", Name: "Honest Effort", Description: "Record RPE on 5 sets", XP: 80, Target: 5, Unit: "sets", ProgressKey: KeyRPELogged},
}

// SeedFor derives the day seed: the sum of the byte values of the
// calendar-date string. Not random, not uniform — just day-stable.
func SeedFor(dateStr string) int {
	seed := 0
	for _, b := range []byte(dateStr) {
		seed += int(b)
	}
	return seed
}

// SelectDaily picks today's 3 quests. The pool is stable-sorted by
// (seed * len(quest ID)) mod 100 ascending, ties kept in pool order, and
// the first 3 are taken. Same date always yields the same selection.
func SelectDaily(dateStr string) []models.Quest {
	seed := SeedFor(dateStr)

	picked := make([]models.Quest, len(Pool))
	copy(picked, Pool)
	sort.SliceStable(picked, func(i, j int) bool {
		return seed*len(picked[i].ID)%100 < seed*len(picked[j].ID)%100
	})

	return picked[:dailyCount]
}

// Today returns the current date string in the quest calendar format.
func Today() string {
	return time.Now().Format(DateFormat)
}

// ByID finds a quest in the pool.
func ByID(id string) (models.Quest, bool) {
	for _, q := range Pool {
		if q.ID == id {
			return q, true
		}
	}
	return models.Quest{}, false
}
