// ABOUTME: CLI commands for the daily quest board.
// ABOUTME: Shows today's selection, claims rewards, and reports XP.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var questsCmd = &cobra.Command{
	Use:     "quests",
	Aliases: []string{"q"},
	Short:   "Daily quests and XP",
	Long: `Check and claim daily quests.

Three quests are offered each calendar day, picked deterministically from
the quest pool: the same date always shows the same three. Progress
accrues automatically as you log sets and finish workouts; at midnight
the board resets and progress starts over.

Each quest's XP must be claimed explicitly, once. Claiming all three in
one day is the daily sweep.

EXAMPLES:

  motiv8r quests today
  motiv8r quests claim first_blood
  motiv8r quests xp`,
}

var questsTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's quest board",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, st := range engine.Status() {
			marker := " "
			switch {
			case st.Claimed:
				marker = color.GreenString("✓")
			case st.Complete():
				marker = color.CyanString("!")
			}
			fmt.Printf("%s %s %s %s\n",
				marker,
				padRight(st.Quest.Name, 16),
				padRight(fmt.Sprintf("%.0f/%.0f %s", st.Progress, st.Quest.Target, st.Quest.Unit), 20),
				faint.Sprintf("%d XP  (%s)", st.Quest.XP, st.Quest.ID))
		}

		if engine.AllClaimed() {
			color.Green("\n✓ Daily sweep: every quest claimed")
		}
		fmt.Printf("\nTotal XP: %d\n", engine.TotalXP())
		return nil
	},
}

var questsClaimCmd = &cobra.Command{
	Use:   "claim <quest-id>",
	Short: "Claim a completed quest's XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		xp, err := engine.Claim(args[0])
		if err != nil {
			return err
		}
		if xp == 0 {
			fmt.Printf("%s was already claimed.\n", args[0])
			return nil
		}

		color.Green("✓ Claimed %s for %d XP", args[0], xp)
		fmt.Printf("  Total XP: %d\n", engine.TotalXP())
		if engine.AllClaimed() {
			color.Green("✓ Daily sweep: every quest claimed")
		}
		return nil
	},
}

var questsXPCmd = &cobra.Command{
	Use:   "xp",
	Short: "Show the running XP total",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Total XP: %d\n", engine.TotalXP())
		return nil
	},
}

func init() {
	questsCmd.AddCommand(questsTodayCmd)
	questsCmd.AddCommand(questsClaimCmd)
	questsCmd.AddCommand(questsXPCmd)
	rootCmd.AddCommand(questsCmd)
}
