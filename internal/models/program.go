// ABOUTME: Program, Week, Day, and Prescription models for training plans.
// ABOUTME: Day and week statuses are derived by the program state machine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DayStatus is the lifecycle state of a single training day.
type DayStatus string

const (
	DayLocked     DayStatus = "locked"
	DayUpcoming   DayStatus = "upcoming"
	DayCurrent    DayStatus = "current"
	DayInProgress DayStatus = "in_progress"
	DayCompleted  DayStatus = "completed"
)

// WeekStatus is derived from the statuses of a week's days.
type WeekStatus string

const (
	WeekLocked     WeekStatus = "locked"
	WeekInProgress WeekStatus = "in_progress"
	WeekCompleted  WeekStatus = "completed"
)

// Prescription is a single exercise assignment within a day.
// Reps is a range string like "6-8". Tempo is a 4-digit phase code like
// "3010" (eccentric/pause/concentric/pause, seconds).
type Prescription struct {
	Name         string  `json:"name"`
	Sets         int     `json:"sets"`
	Reps         string  `json:"reps"`
	Tempo        string  `json:"tempo,omitempty"`
	RestSeconds  int     `json:"rest_seconds"`
	TargetWeight float64 `json:"target_weight,omitempty"`
}

// Day is one training day within a week.
type Day struct {
	DayNum    int            `json:"day_num"`
	Name      string         `json:"name"`
	Status    DayStatus      `json:"status"`
	Exercises []Prescription `json:"exercises"`
}

// Week groups days. Status is never set directly; Normalize derives it.
type Week struct {
	WeekNum int        `json:"week_num"`
	Status  WeekStatus `json:"status"`
	Days    []Day      `json:"days"`
}

// Program is a multi-week training plan assigned to an athlete.
type Program struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AthleteID string    `json:"athlete_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Weeks     []Week    `json:"weeks"`
}

// NewProgram creates a Program with generated UUID and current timestamp.
func NewProgram(name string) *Program {
	return &Program{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithAthlete assigns the program to an athlete.
func (p *Program) WithAthlete(athleteID string) *Program {
	p.AthleteID = athleteID
	return p
}
