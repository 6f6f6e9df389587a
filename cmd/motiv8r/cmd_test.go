// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers set spec parsing, truncate, and padRight.
package main

import "testing"

func TestParseSetSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		exercise string
		weight   float64
		reps     int
		rpe      *int
		wantErr  bool
	}{
		{
			name:     "basic spec",
			input:    "Back Squat:185x5",
			exercise: "Back Squat",
			weight:   185,
			reps:     5,
		},
		{
			name:     "with RPE",
			input:    "Back Squat:185x5@8",
			exercise: "Back Squat",
			weight:   185,
			reps:     5,
			rpe:      intPtr(8),
		},
		{
			name:     "decimal weight",
			input:    "Bench Press:102.5x8",
			exercise: "Bench Press",
			weight:   102.5,
			reps:     8,
		},
		{
			name:     "bodyweight",
			input:    "Plank:0x1",
			exercise: "Plank",
			weight:   0,
			reps:     1,
		},
		{
			name:     "spaces around parts",
			input:    "Deadlift: 225 x 3 @ 9",
			exercise: "Deadlift",
			weight:   225,
			reps:     3,
			rpe:      intPtr(9),
		},
		{
			name:    "missing colon",
			input:   "Back Squat 185x5",
			wantErr: true,
		},
		{
			name:    "missing reps",
			input:   "Back Squat:185",
			wantErr: true,
		},
		{
			name:    "bad weight",
			input:   "Back Squat:heavy x5",
			wantErr: true,
		},
		{
			name:    "bad RPE",
			input:   "Back Squat:185x5@hard",
			wantErr: true,
		},
		{
			name:    "empty exercise",
			input:   ":185x5",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exercise, weight, reps, rpe, err := parseSetSpec(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseSetSpec(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSetSpec(%q) unexpected error: %v", tt.input, err)
			}

			if exercise != tt.exercise {
				t.Errorf("exercise = %q, want %q", exercise, tt.exercise)
			}
			if weight != tt.weight {
				t.Errorf("weight = %v, want %v", weight, tt.weight)
			}
			if reps != tt.reps {
				t.Errorf("reps = %d, want %d", reps, tt.reps)
			}
			switch {
			case tt.rpe == nil && rpe != nil:
				t.Errorf("rpe = %d, want nil", *rpe)
			case tt.rpe != nil && rpe == nil:
				t.Errorf("rpe = nil, want %d", *tt.rpe)
			case tt.rpe != nil && rpe != nil && *rpe != *tt.rpe:
				t.Errorf("rpe = %d, want %d", *rpe, *tt.rpe)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world this is long", 10, "hello w..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight = %q", got)
	}
}

func intPtr(v int) *int { return &v }
