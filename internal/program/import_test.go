// ABOUTME: Tests for YAML program import parsing and validation.
// ABOUTME: Covers numbering, normalization on import, and unknown-exercise reporting.
package program

import (
	"strings"
	"testing"

	"github.com/stslabs/motiv8r/internal/models"
)

const validPlan = `
name: Strength Block
athlete: alex@example.com
weeks:
  - days:
      - name: Lower A
        exercises:
          - name: Back Squat
            sets: 5
            reps: "5"
            tempo: "3010"
            rest: 180
            target_weight: 225
          - name: Romanian Deadlift
            sets: 3
            reps: "8-10"
            rest: 120
      - name: Upper A
        exercises:
          - name: Bench Press
            sets: 5
            reps: "5"
            rest: 180
  - days:
      - name: Lower B
        exercises:
          - name: Front Squat
            sets: 4
            reps: "6"
            rest: 150
`

func TestParseValidPlan(t *testing.T) {
	p, unknown, err := Parse([]byte(validPlan))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unexpected unknown exercises: %v", unknown)
	}

	if p.Name != "Strength Block" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.AthleteID != "alex@example.com" {
		t.Errorf("AthleteID = %q", p.AthleteID)
	}
	if len(p.Weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(p.Weeks))
	}
	if p.Weeks[0].WeekNum != 1 || p.Weeks[1].WeekNum != 2 {
		t.Errorf("week numbering wrong: %d, %d", p.Weeks[0].WeekNum, p.Weeks[1].WeekNum)
	}
	if len(p.Weeks[0].Days) != 2 {
		t.Fatalf("week 1 days = %d, want 2", len(p.Weeks[0].Days))
	}

	day := p.Weeks[0].Days[0]
	if day.DayNum != 1 || day.Name != "Lower A" {
		t.Errorf("day 1 = %d %q", day.DayNum, day.Name)
	}
	squat := day.Exercises[0]
	if squat.Sets != 5 || squat.Reps != "5" || squat.Tempo != "3010" || squat.RestSeconds != 180 || squat.TargetWeight != 225 {
		t.Errorf("squat prescription = %+v", squat)
	}

	// Import normalizes: first day current, week 2 locked.
	if day.Status != models.DayCurrent {
		t.Errorf("first day status = %s, want current", day.Status)
	}
	if p.Weeks[1].Status != models.WeekLocked {
		t.Errorf("week 2 status = %s, want locked", p.Weeks[1].Status)
	}
}

func TestParseUnknownExerciseReported(t *testing.T) {
	plan := strings.Replace(validPlan, "Back Squat", "Bck Sqat", 1)
	p, unknown, err := Parse([]byte(plan))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(unknown) != 1 || unknown[0] != "Bck Sqat" {
		t.Errorf("unknown = %v, want [Bck Sqat]", unknown)
	}
	// The prescription is still imported; a catalog miss is not fatal.
	if p.Weeks[0].Days[0].Exercises[0].Name != "Bck Sqat" {
		t.Error("unknown exercise dropped from plan")
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", ":\nthis is not yaml"},
		{"missing name", "weeks:\n  - days:\n      - exercises:\n          - name: Back Squat\n            sets: 3"},
		{"no weeks", "name: Empty"},
		{"week without days", "name: P\nweeks:\n  - days: []"},
		{"day without exercises", "name: P\nweeks:\n  - days:\n      - name: D\n        exercises: []"},
		{"exercise without name", "name: P\nweeks:\n  - days:\n      - exercises:\n          - sets: 3"},
		{"zero sets", "name: P\nweeks:\n  - days:\n      - exercises:\n          - name: Back Squat\n            sets: 0"},
		{"bad tempo", "name: P\nweeks:\n  - days:\n      - exercises:\n          - name: Back Squat\n            sets: 3\n            tempo: \"30\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Parse accepted invalid plan")
			}
		})
	}
}

func TestParseDefaultDayName(t *testing.T) {
	plan := `
name: P
weeks:
  - days:
      - exercises:
          - name: Plank
            sets: 3
            reps: "60s"
`
	p, _, err := Parse([]byte(plan))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Weeks[0].Days[0].Name != "Day 1" {
		t.Errorf("default day name = %q, want Day 1", p.Weeks[0].Days[0].Name)
	}
}
