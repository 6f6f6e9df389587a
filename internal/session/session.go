// ABOUTME: Workout session: draft set input, set logging, and completion.
// ABOUTME: Logged sets feed quest events; finishing persists history, PRs, and XP.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stslabs/motiv8r/internal/catalog"
	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/program"
	"github.com/stslabs/motiv8r/internal/quests"
	"github.com/stslabs/motiv8r/internal/store"
)

// WeightStep is the increment for weight adjustment controls.
const WeightStep = 5.0

// Draft is the in-progress input for one set. Nothing is persisted until
// the set is logged; discarding a draft has no side effects.
type Draft struct {
	Exercise  string
	SetNumber int
	Weight    float64
	Reps      int
	RPE       *int
}

// AddWeight steps the weight by n*5 units, floored at 0.
func (d *Draft) AddWeight(steps int) {
	d.Weight += WeightStep * float64(steps)
	if d.Weight < 0 {
		d.Weight = 0
	}
}

// AddReps steps the rep count by n, floored at 0.
func (d *Draft) AddReps(steps int) {
	d.Reps += steps
	if d.Reps < 0 {
		d.Reps = 0
	}
}

// SetRPE records perceived exertion, clamped to the 6-10 scale.
func (d *Draft) SetRPE(rpe int) {
	d.RPE = clampRPE(rpe)
}

func clampRPE(rpe int) *int {
	if rpe < 6 {
		rpe = 6
	}
	if rpe > 10 {
		rpe = 10
	}
	return &rpe
}

// Session is an active workout over the current program day.
type Session struct {
	store    *store.Store
	engine   *quests.Engine
	programs []*models.Program
	prog     *models.Program
	week     *models.Week
	day      *models.Day

	startedAt time.Time
	entries   []models.SetLogEntry
	drafts    map[string]*Draft
	now       func() time.Time
}

// Start begins a workout on the program's current day, marking it
// in_progress and persisting the transition.
func Start(st *store.Store, eng *quests.Engine, programs []*models.Program, prog *models.Program) (*Session, error) {
	week, day, err := program.StartDay(prog)
	if err != nil {
		return nil, err
	}
	if err := program.SaveAll(st, programs); err != nil {
		return nil, fmt.Errorf("save program: %w", err)
	}

	return &Session{
		store:     st,
		engine:    eng,
		programs:  programs,
		prog:      prog,
		week:      week,
		day:       day,
		startedAt: time.Now(),
		drafts:    map[string]*Draft{},
		now:       time.Now,
	}, nil
}

// Day returns the day being trained.
func (s *Session) Day() *models.Day { return s.day }

// Week returns the week the day belongs to.
func (s *Session) Week() *models.Week { return s.week }

// Entries returns the sets logged so far.
func (s *Session) Entries() []models.SetLogEntry { return s.entries }

// DraftFor returns the draft for an exercise's next set, creating it from
// the prescription's target weight on first use.
func (s *Session) DraftFor(exercise string) *Draft {
	key := strings.ToLower(exercise)
	if d, ok := s.drafts[key]; ok {
		return d
	}
	d := &Draft{Exercise: exercise, SetNumber: s.nextSetNumber(exercise)}
	for _, p := range s.day.Exercises {
		if strings.EqualFold(p.Name, exercise) {
			d.Weight = p.TargetWeight
			break
		}
	}
	s.drafts[key] = d
	return d
}

// DiscardDraft throws away the in-progress input for an exercise without
// mutating any persisted state.
func (s *Session) DiscardDraft(exercise string) {
	delete(s.drafts, strings.ToLower(exercise))
}

// LogDraft logs the draft as a completed set and clears it.
func (s *Session) LogDraft(exercise string) models.SetLogEntry {
	d := s.DraftFor(exercise)
	entry := s.LogSet(d.Exercise, d.SetNumber, d.Weight, d.Reps, d.RPE)
	s.DiscardDraft(exercise)
	return entry
}

// LogSet records a completed set and fires its quest events. Weight and
// reps are floored at 0; RPE, when present, is clamped to 6-10.
func (s *Session) LogSet(exercise string, setNumber int, weight float64, reps int, rpe *int) models.SetLogEntry {
	if weight < 0 {
		weight = 0
	}
	if reps < 0 {
		reps = 0
	}
	if rpe != nil {
		rpe = clampRPE(*rpe)
	}

	entry := models.SetLogEntry{
		ExerciseName: exercise,
		SetNumber:    setNumber,
		Weight:       weight,
		Reps:         reps,
		RPE:          rpe,
	}
	s.entries = append(s.entries, entry)

	s.engine.Apply(quests.EventSetCompleted())
	s.engine.Apply(quests.EventVolumeLifted(entry.Volume()))
	if rpe != nil {
		s.engine.Apply(quests.EventRPELogged())
	}
	if s.isPRAttempt(exercise, weight) {
		s.engine.Apply(quests.EventPRAttempted())
	}

	return entry
}

// Finish completes the day: persists the workout to history, updates PRs,
// awards catalog XP for the exercises trained, and advances the program.
func (s *Session) Finish() (*models.WorkoutRecord, error) {
	if _, err := program.CompleteDay(s.prog); err != nil {
		return nil, err
	}
	if err := program.SaveAll(s.store, s.programs); err != nil {
		return nil, fmt.Errorf("save program: %w", err)
	}

	rec := &models.WorkoutRecord{
		ID:         uuid.New(),
		ProgramID:  s.prog.ID,
		WeekNum:    s.week.WeekNum,
		DayNum:     s.day.DayNum,
		DayName:    s.day.Name,
		StartedAt:  s.startedAt,
		FinishedAt: s.now(),
		Entries:    s.entries,
	}
	for _, e := range s.entries {
		rec.TotalVolume += e.Volume()
	}
	rec.XPAwarded = s.exerciseXP()

	var history []models.WorkoutRecord
	s.store.Get(store.KeyHistory, &history)
	history = append(history, *rec)
	_ = s.store.Set(store.KeyHistory, history)

	s.updatePRs()

	s.engine.Apply(quests.EventWorkoutCompleted())
	if rec.XPAwarded > 0 {
		s.engine.AwardXP(rec.XPAwarded)
	}

	return rec, nil
}

// nextSetNumber is 1 plus the sets already logged for the exercise.
func (s *Session) nextSetNumber(exercise string) int {
	n := 0
	for _, e := range s.entries {
		if strings.EqualFold(e.ExerciseName, exercise) {
			n++
		}
	}
	return n + 1
}

// exerciseXP sums catalog XP values over the distinct exercises logged.
func (s *Session) exerciseXP() int {
	seen := map[string]bool{}
	xp := 0
	for _, e := range s.entries {
		key := strings.ToLower(e.ExerciseName)
		if seen[key] {
			continue
		}
		seen[key] = true
		if ex, ok := catalog.Lookup(e.ExerciseName); ok {
			xp += ex.XPValue
		}
	}
	return xp
}

// isPRAttempt reports whether the weight meets or beats the stored PR.
// With no PR on file there is nothing to attempt against.
func (s *Session) isPRAttempt(exercise string, weight float64) bool {
	if weight <= 0 {
		return false
	}
	prs := loadPRs(s.store)
	pr, ok := prs[strings.ToLower(exercise)]
	return ok && weight >= pr.Weight
}

// updatePRs raises the stored PR for any exercise whose heaviest logged
// set beats it, and seeds PRs for exercises logged for the first time.
func (s *Session) updatePRs() {
	prs := loadPRs(s.store)
	changed := false
	for _, e := range s.entries {
		if e.Weight <= 0 || e.Reps <= 0 {
			continue
		}
		key := strings.ToLower(e.ExerciseName)
		pr, ok := prs[key]
		if !ok || e.Weight > pr.Weight {
			prs[key] = models.PersonalRecord{
				Exercise: e.ExerciseName,
				Weight:   e.Weight,
				Reps:     e.Reps,
				Date:     s.now(),
			}
			changed = true
		}
	}
	if changed {
		_ = s.store.Set(store.KeyPRs, prs)
	}
}

func loadPRs(st *store.Store) map[string]models.PersonalRecord {
	prs := map[string]models.PersonalRecord{}
	st.Get(store.KeyPRs, &prs)
	return prs
}

// LoadPRs exposes the stored PR table for display.
func LoadPRs(st *store.Store) map[string]models.PersonalRecord {
	return loadPRs(st)
}

// LoadHistory returns persisted workout history, most recent last.
func LoadHistory(st *store.Store) []models.WorkoutRecord {
	var history []models.WorkoutRecord
	st.Get(store.KeyHistory, &history)
	return history
}
