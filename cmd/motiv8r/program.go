// ABOUTME: CLI commands for managing training programs.
// ABOUTME: Supports YAML import, list, show, and delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/program"
)

var programCmd = &cobra.Command{
	Use:     "program",
	Aliases: []string{"p"},
	Short:   "Manage training programs",
	Long: `Manage multi-week training programs.

Programs are imported from YAML plans written by a coach. Each program is
a list of weeks, each week a list of days, each day a list of exercise
prescriptions (sets, reps, tempo, rest, target weight).

PLAN FORMAT:

  name: Strength Block
  weeks:
    - days:
        - name: Lower A
          exercises:
            - name: Back Squat
              sets: 3
              reps: "5"
              tempo: "3010"
              rest: 180
              target_weight: 185

PROGRESSION:

  Exactly one day is "current" at a time. Completing a day unlocks the
  next; completing every day in a week unlocks the next week. Earlier
  days stay completed, later weeks stay locked.

EXAMPLES:

  motiv8r program import plan.yaml
  motiv8r program list
  motiv8r program show "Strength Block"
  motiv8r program delete 3f2a`,
}

var programImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a YAML training plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, unknown, err := program.ParseFile(args[0])
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		programs := program.LoadAll(appStore)
		programs = append(programs, p)
		if err := program.SaveAll(appStore, programs); err != nil {
			return fmt.Errorf("failed to save program: %w", err)
		}

		color.Green("✓ Imported %s", p.Name)
		fmt.Printf("  %s %d weeks\n",
			color.New(color.Faint).Sprint(p.ID.String()[:8]),
			len(p.Weeks))
		for _, name := range unknown {
			color.Yellow("⚠ Not in catalog: %s", name)
		}
		return nil
	},
}

var programListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		programs := program.LoadAll(appStore)
		if len(programs) == 0 {
			fmt.Println("No programs imported.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range programs {
			status := "in progress"
			if program.Completed(p) {
				status = "completed"
			}
			fmt.Printf("%s %s %d weeks  %s\n",
				faint.Sprint(p.ID.String()[:8]),
				padRight(p.Name, 24),
				len(p.Weeks),
				faint.Sprint(status))
		}
		return nil
	},
}

var programShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a program's weeks and days",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		p, err := resolveProgram(query)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", color.New(color.Bold).Sprint(p.Name))
		for _, w := range p.Weeks {
			fmt.Printf("\nWeek %d  %s\n", w.WeekNum, statusColor(string(w.Status)))
			for _, d := range w.Days {
				fmt.Printf("  Day %d  %s %s\n",
					d.DayNum,
					padRight(d.Name, 20),
					statusColor(string(d.Status)))
				for _, ex := range d.Exercises {
					line := fmt.Sprintf("%s %dx%s", padRight(ex.Name, 24), ex.Sets, ex.Reps)
					if ex.TargetWeight > 0 {
						line += fmt.Sprintf(" @ %.0f", ex.TargetWeight)
					}
					fmt.Printf("    %s\n", color.New(color.Faint).Sprint(line))
				}
			}
		}
		return nil
	},
}

var programDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		programs := program.LoadAll(appStore)
		p, err := program.Find(programs, args[0])
		if err != nil {
			return err
		}

		kept := programs[:0]
		for _, q := range programs {
			if q.ID != p.ID {
				kept = append(kept, q)
			}
		}
		if err := program.SaveAll(appStore, kept); err != nil {
			return fmt.Errorf("failed to save programs: %w", err)
		}

		color.Green("✓ Deleted %s", p.Name)
		return nil
	},
}

// resolveProgram finds by name or ID prefix, defaulting to the single
// stored program when the query is empty.
func resolveProgram(query string) (*models.Program, error) {
	programs := program.LoadAll(appStore)
	if len(programs) == 0 {
		return nil, fmt.Errorf("no programs imported; run 'motiv8r program import <file>'")
	}
	if query == "" {
		if len(programs) > 1 {
			return nil, fmt.Errorf("%d programs stored; name one", len(programs))
		}
		return programs[0], nil
	}
	return program.Find(programs, query)
}

func statusColor(status string) string {
	switch status {
	case "current", "in_progress":
		return color.CyanString(status)
	case "completed":
		return color.GreenString(status)
	case "locked":
		return color.New(color.Faint).Sprint(status)
	default:
		return status
	}
}

func init() {
	programCmd.AddCommand(programImportCmd)
	programCmd.AddCommand(programListCmd)
	programCmd.AddCommand(programShowCmd)
	programCmd.AddCommand(programDeleteCmd)
	rootCmd.AddCommand(programCmd)
}
