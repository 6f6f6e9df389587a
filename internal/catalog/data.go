// ABOUTME: Static exercise table for the catalog.
// ABOUTME: Covers the main barbell, dumbbell, and bodyweight movements by category.
package catalog

import (
	"strings"

	"github.com/stslabs/motiv8r/internal/models"
)

var exercises = []models.Exercise{
	{
		Name:             "Back Squat",
		Category:         "legs",
		Equipment:        []string{"barbell", "rack"},
		PrimaryMuscles:   []string{"quadriceps", "glutes"},
		SecondaryMuscles: []string{"hamstrings", "core", "lower back"},
		Difficulty:       models.DifficultyIntermediate,
		Instructions: []string{
			"Set the bar on your upper traps and unrack with a braced core.",
			"Sit back and down until your hip crease passes your knee.",
			"Drive through mid-foot to stand, keeping your chest up.",
		},
		Tips:           []string{"Keep the bar over mid-foot", "Brace before every rep"},
		CommonMistakes: []string{"Knees caving in", "Heels lifting off the floor"},
		VideoRef:       "vid_back_squat",
		XPValue:        25,
	},
	{
		Name:             "Front Squat",
		Category:         "legs",
		Equipment:        []string{"barbell", "rack"},
		PrimaryMuscles:   []string{"quadriceps"},
		SecondaryMuscles: []string{"glutes", "core", "upper back"},
		Difficulty:       models.DifficultyAdvanced,
		Instructions: []string{
			"Rack the bar on your front delts with elbows high.",
			"Squat down keeping the torso as upright as possible.",
			"Stand up without letting the elbows drop.",
		},
		Tips:           []string{"Elbows up keeps the bar racked"},
		CommonMistakes: []string{"Dropping the elbows", "Rounding the upper back"},
		VideoRef:       "vid_front_squat",
		XPValue:        30,
	},
	{
		Name:             "Romanian Deadlift",
		Category:         "legs",
		Equipment:        []string{"barbell"},
		PrimaryMuscles:   []string{"hamstrings", "glutes"},
		SecondaryMuscles: []string{"lower back", "forearms"},
		Difficulty:       models.DifficultyIntermediate,
		Instructions: []string{
			"Start standing, bar at hip height.",
			"Push the hips back and lower the bar along your thighs.",
			"Stop when the hamstrings are fully stretched, then stand.",
		},
		Tips:           []string{"Soft knees, the hips do the work"},
		CommonMistakes: []string{"Squatting the weight down", "Rounding the back"},
		VideoRef:       "vid_rdl",
		XPValue:        20,
	},
	{
		Name:             "Deadlift",
		Category:         "back",
		Equipment:        []string{"barbell"},
		PrimaryMuscles:   []string{"hamstrings", "glutes", "lower back"},
		SecondaryMuscles: []string{"lats", "traps", "forearms", "core"},
		Difficulty:       models.DifficultyAdvanced,
		Instructions: []string{
			"Stand with mid-foot under the bar, grip just outside the knees.",
			"Brace, take the slack out of the bar, and push the floor away.",
			"Lock out with hips and knees together; reverse under control.",
		},
		Tips:           []string{"The bar stays against your legs the whole way"},
		CommonMistakes: []string{"Jerking the bar off the floor", "Hips shooting up first"},
		VideoRef:       "vid_deadlift",
		XPValue:        30,
	},
	{
		Name:             "Bench Press",
		Category:         "chest",
		Equipment:        []string{"barbell", "bench"},
		PrimaryMuscles:   []string{"chest"},
		SecondaryMuscles: []string{"triceps", "front delts"},
		Difficulty:       models.DifficultyIntermediate,
		Instructions: []string{
			"Set your shoulder blades back and down on the bench.",
			"Lower the bar to your lower chest with elbows around 45 degrees.",
			"Press back up to lockout over your shoulders.",
		},
		Tips:           []string{"Feet planted, slight arch, tight upper back"},
		CommonMistakes: []string{"Bouncing off the chest", "Flaring elbows to 90 degrees"},
		VideoRef:       "vid_bench_press",
		XPValue:        25,
	},
	{
		Name:             "Incline Dumbbell Press",
		Category:         "chest",
		Equipment:        []string{"dumbbells", "bench"},
		PrimaryMuscles:   []string{"chest", "front delts"},
		SecondaryMuscles: []string{"triceps"},
		Difficulty:       models.DifficultyBeginner,
		Instructions: []string{
			"Set the bench to 30-45 degrees.",
			"Press the dumbbells up and slightly together.",
			"Lower under control to a full stretch.",
		},
		Tips:           []string{"Don't let the dumbbells drift over your face"},
		CommonMistakes: []string{"Setting the incline too steep"},
		VideoRef:       "vid_incline_db_press",
		XPValue:        15,
	},
	{
		Name:             "Overhead Press",
		Category:         "shoulders",
		Equipment:        []string{"barbell"},
		PrimaryMuscles:   []string{"shoulders"},
		SecondaryMuscles: []string{"triceps", "upper chest", "core"},
		Difficulty:       models.DifficultyIntermediate,
		Instructions: []string{
			"Grip just outside shoulders, bar on the front delts.",
			"Brace and press straight up, moving your head back out of the way.",
			"Lock out with the bar over the back of your head.",
		},
		Tips:           []string{"Squeeze glutes to protect the lower back"},
		CommonMistakes: []string{"Leaning back into a standing incline press"},
		VideoRef:       "vid_ohp",
		XPValue:        20,
	},
	{
		Name:             "Lateral Raise",
		Category:         "shoulders",
		Equipment:        []string{"dumbbells"},
		PrimaryMuscles:   []string{"side delts"},
		SecondaryMuscles: []string{"traps"},
		Difficulty:       models.DifficultyBeginner,
		Instructions: []string{
			"Raise the dumbbells out to your sides to shoulder height.",
			"Lead with the elbows, slight bend in the arms.",
			"Lower slowly; no swinging.",
		},
		Tips:           []string{"Lighter than you think, stricter than you want"},
		CommonMistakes: []string{"Shrugging the traps into the movement"},
		VideoRef:       "vid_lateral_raise",
		XPValue:        10,
	},
	{
		Name:             "Barbell Row",
		Category:         "back",
		Equipment:        []string{"barbell"},
		PrimaryMuscles:   []string{"lats", "mid back"},
		SecondaryMuscles: []string{"biceps", "rear delts", "lower back"},
		Difficulty:       models.DifficultyIntermediate,
		Instructions: []string{
			"Hinge to roughly 45 degrees with a flat back.",
			"Pull the bar to your lower ribs.",
			"Lower under control without dropping the chest.",
		},
		Tips:           []string{"Pull with the elbows, not the hands"},
		CommonMistakes: []string{"Standing up as the set gets heavy"},
		VideoRef:       "vid_barbell_row",
		XPValue:        20,
	},
	{
		Name:             "Pull Up",
		Category:         "back",
		Equipment:        []string{"pull-up bar"},
		PrimaryMuscles:   []string{"lats"},
		SecondaryMuscles: []string{"biceps", "core"},
		Difficulty:       models.DifficultyIntermediate,
		Instructions: []string{
			"Hang from the bar with a full grip, shoulders engaged.",
			"Pull your chin over the bar without kipping.",
			"Lower to a full hang each rep.",
		},
		Tips:           []string{"Think about driving the elbows to your hips"},
		CommonMistakes: []string{"Half reps at the bottom"},
		VideoRef:       "vid_pull_up",
		XPValue:        20,
	},
	{
		Name:             "Barbell Curl",
		Category:         "arms",
		Equipment:        []string{"barbell"},
		PrimaryMuscles:   []string{"biceps"},
		SecondaryMuscles: []string{"forearms"},
		Difficulty:       models.DifficultyBeginner,
		Instructions: []string{
			"Curl the bar with elbows pinned to your sides.",
			"Squeeze at the top, lower slowly.",
		},
		Tips:           []string{"No hip swing"},
		CommonMistakes: []string{"Turning it into a standing row"},
		VideoRef:       "vid_barbell_curl",
		XPValue:        10,
	},
	{
		Name:             "Tricep Pushdown",
		Category:         "arms",
		Equipment:        []string{"cable machine"},
		PrimaryMuscles:   []string{"triceps"},
		SecondaryMuscles: []string{},
		Difficulty:       models.DifficultyBeginner,
		Instructions: []string{
			"Elbows tucked, push the handle down to full lockout.",
			"Control the return to chest height.",
		},
		Tips:           []string{"Lean slightly forward for a stronger line of pull"},
		CommonMistakes: []string{"Letting the elbows drift forward"},
		VideoRef:       "vid_pushdown",
		XPValue:        10,
	},
	{
		Name:             "Plank",
		Category:         "core",
		Equipment:        []string{},
		PrimaryMuscles:   []string{"core"},
		SecondaryMuscles: []string{"shoulders", "glutes"},
		Difficulty:       models.DifficultyBeginner,
		Instructions: []string{
			"Forearms down, body in a straight line from head to heels.",
			"Brace your abs and glutes; breathe.",
		},
		Tips:           []string{"Squeeze everything, don't just hang out"},
		CommonMistakes: []string{"Hips sagging or piking"},
		VideoRef:       "vid_plank",
		XPValue:        10,
	},
	{
		Name:             "Hanging Leg Raise",
		Category:         "core",
		Equipment:        []string{"pull-up bar"},
		PrimaryMuscles:   []string{"core", "hip flexors"},
		SecondaryMuscles: []string{"forearms"},
		Difficulty:       models.DifficultyIntermediate,
		Instructions: []string{
			"Hang from the bar and raise your legs to parallel or higher.",
			"Curl the pelvis at the top; lower without swinging.",
		},
		Tips:           []string{"Exhale as you lift"},
		CommonMistakes: []string{"Using momentum from a swing"},
		VideoRef:       "vid_hanging_leg_raise",
		XPValue:        15,
	},
}

// byLowerName indexes the table for case-insensitive exact lookup.
var byLowerName = func() map[string]*models.Exercise {
	m := make(map[string]*models.Exercise, len(exercises))
	for i := range exercises {
		m[strings.ToLower(exercises[i].Name)] = &exercises[i]
	}
	return m
}()
