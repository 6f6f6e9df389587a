// ABOUTME: Workout history models: logged sets and completed sessions.
// ABOUTME: SetLogEntry is transient during a session, persisted on finish.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SetLogEntry records one completed set. RPE is optional (6-10 when set).
type SetLogEntry struct {
	ExerciseName string  `json:"exercise_name"`
	SetNumber    int     `json:"set_number"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	RPE          *int    `json:"rpe,omitempty"`
}

// Volume is the tonnage of the set (weight * reps).
func (e SetLogEntry) Volume() float64 {
	return e.Weight * float64(e.Reps)
}

// WorkoutRecord is a finished session as stored in workout history.
type WorkoutRecord struct {
	ID          uuid.UUID     `json:"id"`
	ProgramID   uuid.UUID     `json:"program_id,omitempty"`
	WeekNum     int           `json:"week_num"`
	DayNum      int           `json:"day_num"`
	DayName     string        `json:"day_name"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at"`
	Entries     []SetLogEntry `json:"entries"`
	TotalVolume float64       `json:"total_volume"`
	XPAwarded   int           `json:"xp_awarded"`
}

// PersonalRecord is the heaviest logged set for a lift.
type PersonalRecord struct {
	Exercise string    `json:"exercise"`
	Weight   float64   `json:"weight"`
	Reps     int       `json:"reps"`
	Date     time.Time `json:"date"`
}
