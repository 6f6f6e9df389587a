// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stslabs/motiv8r/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Add it to an MCP-compatible
client config:

  {
    "mcpServers": {
      "motiv8r": {
        "command": "motiv8r",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  search_exercises   Search the exercise catalog
  get_exercise       Get one exercise's details
  today_quests       Today's quest board with progress
  claim_quest        Claim a completed quest's XP
  program_status     A program's weeks, days, and current day
  start_workout      Start the current day
  log_set            Log a set in the active workout
  finish_workout     Finish and persist the workout
  xp_total           Running XP total

AVAILABLE RESOURCES:

  motiv8r://catalog   The full exercise catalog
  motiv8r://quests    Today's quest selection
  motiv8r://history   Workout history and PRs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appStore, engine)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
