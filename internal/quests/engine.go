// ABOUTME: Quest progress engine: event application, claims, and XP totals.
// ABOUTME: Progress and claims persist keyed by date; rollover is detected on read.
package quests

import (
	"fmt"
	"time"

	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/store"
)

// Event is a workout signal that advances quest progress.
type Event struct {
	Key    string
	Amount float64
}

// EventSetCompleted fires once per logged set.
func EventSetCompleted() Event { return Event{Key: KeySetsCompleted, Amount: 1} }

// EventWorkoutCompleted fires when a session finishes.
func EventWorkoutCompleted() Event { return Event{Key: KeyWorkoutsCompleted, Amount: 1} }

// EventVolumeLifted carries the tonnage of a logged set (weight * reps).
func EventVolumeLifted(amount float64) Event { return Event{Key: KeyVolumeLifted, Amount: amount} }

// EventPRAttempted fires when a logged set meets or beats the stored PR.
func EventPRAttempted() Event { return Event{Key: KeyPRsAttempted, Amount: 1} }

// EventRPELogged fires when a set is logged with an RPE value.
func EventRPELogged() Event { return Event{Key: KeyRPELogged, Amount: 1} }

// QuestStatus is one of today's quests with its live progress.
type QuestStatus struct {
	Quest    models.Quest `json:"quest"`
	Progress float64      `json:"progress"`
	Claimed  bool         `json:"claimed"`
}

// Complete reports whether the quest has hit its target.
func (s QuestStatus) Complete() bool {
	return s.Progress >= s.Quest.Target
}

// Claimable reports whether the quest can be claimed right now.
func (s QuestStatus) Claimable() bool {
	return s.Complete() && !s.Claimed
}

// Engine tracks daily quest progress against the persistence store.
type Engine struct {
	store *store.Store
	now   func() time.Time
}

// NewEngine creates an engine over the given store.
func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

// WithClock overrides the engine's clock. Test hook.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) today() string {
	return e.now().Format(DateFormat)
}

// Daily returns today's quest selection.
func (e *Engine) Daily() []models.Quest {
	return SelectDaily(e.today())
}

// Status returns today's quests with progress and claim state.
func (e *Engine) Status() []QuestStatus {
	progress := e.loadProgress()
	claims := e.loadClaims()

	daily := e.Daily()
	out := make([]QuestStatus, len(daily))
	for i, q := range daily {
		out[i] = QuestStatus{
			Quest:    q,
			Progress: progress.Progress[q.ID],
			Claimed:  claims.IsClaimed(q.ID),
		}
	}
	return out
}

// Apply advances progress on every pool quest tracking the event's key and
// persists the record. Selection only gates display and claims, so progress
// earned before checking the day's quests still counts. Store failures
// degrade to in-memory state.
func (e *Engine) Apply(ev Event) {
	progress := e.loadProgress()
	for _, q := range Pool {
		if q.ProgressKey == ev.Key {
			progress.Progress[q.ID] += ev.Amount
		}
	}
	_ = e.store.Set(store.KeyQuestProgress, progress)
}

// ProgressFor returns today's progress value for a quest ID.
func (e *Engine) ProgressFor(id string) float64 {
	return e.loadProgress().Progress[id]
}

// Claim awards a completed quest's XP and marks it claimed. Claiming an
// already-claimed quest is a no-op returning 0. Claiming an incomplete or
// unselected quest is an error.
func (e *Engine) Claim(id string) (int, error) {
	var quest *models.Quest
	for _, q := range e.Daily() {
		if q.ID == id {
			quest = &q
			break
		}
	}
	if quest == nil {
		return 0, fmt.Errorf("quest %s is not in today's selection", id)
	}

	claims := e.loadClaims()
	if claims.IsClaimed(id) {
		return 0, nil
	}

	progress := e.loadProgress()
	if progress.Progress[id] < quest.Target {
		return 0, fmt.Errorf("quest %s is not complete: %.0f of %.0f %s",
			id, progress.Progress[id], quest.Target, quest.Unit)
	}

	claims.Claimed = append(claims.Claimed, id)
	_ = e.store.Set(store.KeyClaims, claims)
	e.AwardXP(quest.XP)
	return quest.XP, nil
}

// AllClaimed reports the completion-bonus state: every daily quest claimed.
func (e *Engine) AllClaimed() bool {
	claims := e.loadClaims()
	for _, q := range e.Daily() {
		if !claims.IsClaimed(q.ID) {
			return false
		}
	}
	return true
}

// TotalXP returns the running XP total.
func (e *Engine) TotalXP() int {
	xp := 0
	e.store.Get(store.KeyXP, &xp)
	return xp
}

// AwardXP adds to the running XP total and returns the new total.
func (e *Engine) AwardXP(amount int) int {
	total := e.TotalXP() + amount
	_ = e.store.Set(store.KeyXP, total)
	return total
}

// loadProgress reads the persisted record, resetting it when the stored
// date is not today. The reset is implicit: nothing is migrated or saved
// until the next write.
func (e *Engine) loadProgress() models.QuestProgressRecord {
	var rec models.QuestProgressRecord
	e.store.Get(store.KeyQuestProgress, &rec)
	if rec.Date != e.today() || rec.Progress == nil {
		rec = models.QuestProgressRecord{Date: e.today(), Progress: map[string]float64{}}
	}
	return rec
}

// loadClaims reads the persisted claim record with the same daily reset.
func (e *Engine) loadClaims() models.QuestClaimRecord {
	var rec models.QuestClaimRecord
	e.store.Get(store.KeyClaims, &rec)
	if rec.Date != e.today() {
		rec = models.QuestClaimRecord{Date: e.today()}
	}
	return rec
}
