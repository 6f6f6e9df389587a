// ABOUTME: CLI commands for running workouts and reviewing history.
// ABOUTME: Runs a full session in one shot; sets are given as compact specs.
package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/program"
	"github.com/stslabs/motiv8r/internal/session"
)

var (
	workoutProgram string
	workoutSets    []string
	historyLimit   int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Run workouts and review history",
	Long: `Run a workout on your program's current day and review past sessions.

SET SPECS:

  Each --set takes a compact spec:  EXERCISE:WEIGHTxREPS[@RPE]

    "Back Squat:185x5"       185 for 5 reps
    "Back Squat:185x5@8"     same, with RPE 8
    "Plank:0x1"              bodyweight work logs weight 0

  RPE is the 6-10 perceived exertion scale; out-of-range values clamp.
  Negative weight or reps floor to 0.

WORKFLOW:

  1. motiv8r workout run --set "Back Squat:185x5@8" --set "Back Squat:185x5"
  2. The day is marked completed, the next day unlocks
  3. Sets feed the daily quest board; claim with 'motiv8r quests claim'

Each completed workout awards the catalog XP of every distinct exercise
trained, records history, and updates personal records.`,
}

var workoutRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the current day as one session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(workoutSets) == 0 {
			return fmt.Errorf("no sets given; use --set \"EXERCISE:WEIGHTxREPS[@RPE]\"")
		}

		programs := program.LoadAll(appStore)
		if len(programs) == 0 {
			return fmt.Errorf("no programs imported; run 'motiv8r program import <file>'")
		}
		var prog *models.Program
		if workoutProgram == "" {
			if len(programs) > 1 {
				return fmt.Errorf("%d programs stored; pick one with --program", len(programs))
			}
			prog = programs[0]
		} else {
			var err error
			prog, err = program.Find(programs, workoutProgram)
			if err != nil {
				return err
			}
		}

		sess, err := session.Start(appStore, engine, programs, prog)
		if err != nil {
			return err
		}

		fmt.Printf("Week %d, day %d: %s\n\n", sess.Week().WeekNum, sess.Day().DayNum, sess.Day().Name)

		faint := color.New(color.Faint)
		for _, spec := range workoutSets {
			exercise, weight, reps, rpe, err := parseSetSpec(spec)
			if err != nil {
				return err
			}
			d := sess.DraftFor(exercise)
			setNumber := d.SetNumber
			sess.DiscardDraft(exercise)

			entry := sess.LogSet(exercise, setNumber, weight, reps, rpe)
			rpeNote := ""
			if entry.RPE != nil {
				rpeNote = faint.Sprintf(" RPE %d", *entry.RPE)
			}
			fmt.Printf("  %s set %d: %.1f x %d%s\n", entry.ExerciseName, entry.SetNumber, entry.Weight, entry.Reps, rpeNote)
		}

		rec, err := sess.Finish()
		if err != nil {
			return err
		}

		fmt.Println()
		color.Green("✓ Completed %s", rec.DayName)
		fmt.Printf("  %s %d sets, %.0f total volume, %d XP\n",
			faint.Sprint(rec.ID.String()[:8]),
			len(rec.Entries), rec.TotalVolume, rec.XPAwarded)
		return nil
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "List completed workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		history := session.LoadHistory(appStore)
		if len(history) == 0 {
			fmt.Println("No workouts recorded.")
			return nil
		}

		// Most recent first.
		faint := color.New(color.Faint)
		shown := 0
		for i := len(history) - 1; i >= 0 && shown < historyLimit; i-- {
			rec := history[i]
			fmt.Printf("%s %s %s %d sets  %.0f volume  %d XP\n",
				faint.Sprint(rec.ID.String()[:8]),
				faint.Sprint(rec.FinishedAt.Format("2006-01-02 15:04")),
				padRight(rec.DayName, 20),
				len(rec.Entries), rec.TotalVolume, rec.XPAwarded)
			shown++
		}
		return nil
	},
}

var workoutPRsCmd = &cobra.Command{
	Use:   "prs",
	Short: "Show personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		prs := session.LoadPRs(appStore)
		if len(prs) == 0 {
			fmt.Println("No personal records yet.")
			return nil
		}

		names := make([]string, 0, len(prs))
		for name := range prs {
			names = append(names, name)
		}
		sort.Strings(names)

		faint := color.New(color.Faint)
		for _, name := range names {
			pr := prs[name]
			fmt.Printf("%s %.1f x %d  %s\n",
				padRight(pr.Exercise, 24),
				pr.Weight, pr.Reps,
				faint.Sprint(pr.Date.Format("2006-01-02")))
		}
		return nil
	},
}

// parseSetSpec parses "EXERCISE:WEIGHTxREPS[@RPE]".
func parseSetSpec(spec string) (exercise string, weight float64, reps int, rpe *int, err error) {
	idx := strings.LastIndex(spec, ":")
	if idx <= 0 {
		return "", 0, 0, nil, fmt.Errorf("bad set spec %q: want EXERCISE:WEIGHTxREPS[@RPE]", spec)
	}
	exercise = strings.TrimSpace(spec[:idx])
	rest := spec[idx+1:]

	if at := strings.Index(rest, "@"); at >= 0 {
		v, perr := strconv.Atoi(strings.TrimSpace(rest[at+1:]))
		if perr != nil {
			return "", 0, 0, nil, fmt.Errorf("bad RPE in %q", spec)
		}
		rpe = &v
		rest = rest[:at]
	}

	parts := strings.SplitN(rest, "x", 2)
	if len(parts) != 2 {
		return "", 0, 0, nil, fmt.Errorf("bad set spec %q: want EXERCISE:WEIGHTxREPS[@RPE]", spec)
	}
	weight, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return "", 0, 0, nil, fmt.Errorf("bad weight in %q", spec)
	}
	reps, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", 0, 0, nil, fmt.Errorf("bad reps in %q", spec)
	}
	return exercise, weight, reps, rpe, nil
}

func init() {
	workoutRunCmd.Flags().StringVarP(&workoutProgram, "program", "p", "", "program name or ID prefix")
	workoutRunCmd.Flags().StringArrayVarP(&workoutSets, "set", "s", nil, "set spec EXERCISE:WEIGHTxREPS[@RPE] (repeatable)")

	workoutHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutRunCmd)
	workoutCmd.AddCommand(workoutHistoryCmd)
	workoutCmd.AddCommand(workoutPRsCmd)
	rootCmd.AddCommand(workoutCmd)
}
