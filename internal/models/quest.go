// ABOUTME: Quest model plus persisted daily progress and claim records.
// ABOUTME: Progress and claims are keyed by calendar date and reset on rollover.
package models

// Quest is a daily objective from the fixed pool. Target is the numeric
// threshold on the progress value tracked under ProgressKey.
type Quest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	XP          int     `json:"xp"`
	Target      float64 `json:"target"`
	Unit        string  `json:"unit"`
	ProgressKey string  `json:"progress_key"`
}

// QuestProgressRecord is the persisted per-day progress map (quest ID to
// current value). A stored date different from today reads as empty.
type QuestProgressRecord struct {
	Date     string             `json:"date"`
	Progress map[string]float64 `json:"progress"`
}

// QuestClaimRecord tracks which quests were claimed on a given date, so a
// restart mid-day cannot award the same XP twice.
type QuestClaimRecord struct {
	Date    string   `json:"date"`
	Claimed []string `json:"claimed"`
}

// IsClaimed reports whether the quest ID is in the claim list.
func (r QuestClaimRecord) IsClaimed(id string) bool {
	for _, c := range r.Claimed {
		if c == id {
			return true
		}
	}
	return false
}
