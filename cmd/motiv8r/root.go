// ABOUTME: Root Cobra command for motiv8r CLI.
// ABOUTME: Handles store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stslabs/motiv8r/internal/auth"
	"github.com/stslabs/motiv8r/internal/config"
	"github.com/stslabs/motiv8r/internal/quests"
	"github.com/stslabs/motiv8r/internal/store"
)

var (
	cfg      *config.Config
	appStore *store.Store
	engine   *quests.Engine
	provider auth.Provider
)

var rootCmd = &cobra.Command{
	Use:   "motiv8r",
	Short: "Strength training tracker with daily quests",
	Long: `motiv8r is a CLI strength training companion: programs, set logging,
daily quests, and XP.

QUICK START:

  $ motiv8r program import plan.yaml          # Import a training plan
  $ motiv8r program show                      # See weeks, days, and the current day
  $ motiv8r workout run --set "Back Squat:185x5@8" --set "Back Squat:185x5"
  $ motiv8r quests today                      # Check today's quest board
  $ motiv8r quests claim first_blood          # Claim completed quests for XP

EXERCISE CATALOG:

  $ motiv8r exercise list                     # Browse the built-in catalog
  $ motiv8r exercise show "bench press"       # Details (lookup is case-insensitive)
  $ motiv8r exercise list --category legs     # Filter by category

MCP INTEGRATION:

  Run 'motiv8r mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "motiv8r": { "command": "motiv8r", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  By default data lives in Charm KV at ~/.local/share/charm/kv/motiv8r and
  syncs automatically on each write. Set "backend": "sqlite" in the config
  file to use a local SQLite database instead:

  $ cat ~/.config/motiv8r/config.json
  {"backend": "sqlite"}`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the store skip the open.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		engine = quests.NewEngine(appStore)
		provider = auth.NewDemoProvider(appStore)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appStore != nil {
			return appStore.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
