// ABOUTME: CLI commands for browsing the exercise catalog.
// ABOUTME: Supports list with filters, search, and case-insensitive show.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stslabs/motiv8r/internal/catalog"
	"github.com/stslabs/motiv8r/internal/models"
)

var (
	exerciseCategory string
	exerciseMuscle   string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse the exercise catalog",
	Long: `Browse the built-in exercise catalog.

Every exercise has a category, target muscles, equipment, a difficulty
rating, and an XP value awarded when you train it in a workout.

EXAMPLES:

  motiv8r exercise list                   # Whole catalog
  motiv8r exercise list --category legs   # One category
  motiv8r exercise list --muscle lats     # Exercises hitting a muscle
  motiv8r exercise search press           # Free-text search
  motiv8r exercise show "back squat"      # Full details, any casing`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		var exercises []*models.Exercise
		switch {
		case exerciseCategory != "":
			exercises = catalog.ByCategory(exerciseCategory)
		case exerciseMuscle != "":
			exercises = catalog.ByMuscle(exerciseMuscle)
		default:
			exercises = catalog.All()
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		printExercises(exercises)
		return nil
	},
}

var exerciseSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search exercises by name, category, or muscle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises := catalog.Search(args[0])
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}
		printExercises(exercises)
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show exercise details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, ok := catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("exercise not found: %s", args[0])
		}

		fmt.Printf("%s\n", color.New(color.Bold).Sprint(ex.Name))
		fmt.Printf("  Category:   %s\n", ex.Category)
		fmt.Printf("  Primary:    %s\n", strings.Join(ex.PrimaryMuscles, ", "))
		if len(ex.SecondaryMuscles) > 0 {
			fmt.Printf("  Secondary:  %s\n", strings.Join(ex.SecondaryMuscles, ", "))
		}
		fmt.Printf("  Equipment:  %s\n", strings.Join(ex.Equipment, ", "))
		fmt.Printf("  Difficulty: %s\n", ex.Difficulty)
		fmt.Printf("  XP value:   %d\n", ex.XPValue)

		if len(ex.Instructions) > 0 {
			fmt.Println("\nInstructions:")
			for i, step := range ex.Instructions {
				fmt.Printf("  %d. %s\n", i+1, step)
			}
		}
		if len(ex.Tips) > 0 {
			fmt.Println("\nTips:")
			for _, tip := range ex.Tips {
				fmt.Printf("  - %s\n", tip)
			}
		}
		if len(ex.CommonMistakes) > 0 {
			fmt.Println("\nCommon mistakes:")
			for _, m := range ex.CommonMistakes {
				fmt.Printf("  - %s\n", m)
			}
		}
		return nil
	},
}

func printExercises(exercises []*models.Exercise) {
	faint := color.New(color.Faint)
	for _, ex := range exercises {
		fmt.Printf("%s %s %s %s\n",
			padRight(ex.Name, 24),
			padRight(ex.Category, 10),
			faint.Sprint(padRight(strings.Join(ex.PrimaryMuscles, ","), 28)),
			faint.Sprintf("%d XP", ex.XPValue))
	}
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "filter by category")
	exerciseListCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "filter by target muscle")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseSearchCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	rootCmd.AddCommand(exerciseCmd)
}
