// ABOUTME: CLI command for migrating between storage backends.
// ABOUTME: Copies every key from Charm KV into the SQLite backend.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stslabs/motiv8r/internal/store"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate from Charm KV to SQLite",
	Long: `Copy every key from the Charm KV backend into the SQLite backend.

Use this when switching "backend" from "kv" to "sqlite" in the config
file. Existing SQLite values for the same keys are overwritten.

USAGE:

  motiv8r migrate --dry-run   # Preview what would be copied
  motiv8r migrate             # Perform the migration

AFTER MIGRATION:

  Set "backend": "sqlite" in ~/.config/motiv8r/config.json. The old
  Charm data stays at ~/.local/share/charm/kv/motiv8r until you remove
  it yourself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kvBackend, err := store.OpenKV()
		if err != nil {
			return fmt.Errorf("failed to open charm kv: %w", err)
		}
		source := store.New(kvBackend)
		defer func() { _ = source.Close() }()

		dump, err := source.Export()
		if err != nil {
			return fmt.Errorf("failed to read kv data: %w", err)
		}
		if len(dump) == 0 {
			fmt.Println("Nothing to migrate.")
			return nil
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			for key := range dump {
				fmt.Printf("  would copy %s\n", key)
			}
			return nil
		}

		dbPath := filepath.Join(cfg.GetDataDir(), "motiv8r.db")
		sqlBackend, err := store.OpenSQLite(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}
		dest := store.New(sqlBackend)
		defer func() { _ = dest.Close() }()

		if err := dest.Import(dump); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d keys to %s", len(dump), dbPath)
		fmt.Println("  Set \"backend\": \"sqlite\" in your config to use it.")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
