// ABOUTME: Exercise model and difficulty enum for the static catalog.
// ABOUTME: Exercises are immutable catalog records looked up by name.
package models

// Difficulty grades how technical an exercise is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is an immutable catalog entry. VideoRef is an opaque ID for an
// external video collaborator; it is stored and forwarded, never interpreted.
type Exercise struct {
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Equipment        []string   `json:"equipment"`
	PrimaryMuscles   []string   `json:"primary_muscles"`
	SecondaryMuscles []string   `json:"secondary_muscles"`
	Difficulty       Difficulty `json:"difficulty"`
	Instructions     []string   `json:"instructions"`
	Tips             []string   `json:"tips"`
	CommonMistakes   []string   `json:"common_mistakes"`
	VideoRef         string     `json:"video_ref,omitempty"`
	XPValue          int        `json:"xp_value"`
}
