// ABOUTME: CLI commands for exporting and importing store data.
// ABOUTME: Supports JSON and YAML dumps of every persisted key.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export store data",
	Long: `Export every persisted key in one dump.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  motiv8r export json                 # Dump everything to stdout
  motiv8r export json -o backup.json  # Save to file
  motiv8r export yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, err := appStore.Export()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch args[0] {
		case "json":
			data, err = json.MarshalIndent(dump, "", "  ")
		case "yaml":
			// Decode raw JSON payloads so YAML shows structure, not strings.
			decoded := make(map[string]any, len(dump))
			for key, raw := range dump {
				var v any
				if jerr := json.Unmarshal(raw, &v); jerr != nil {
					return fmt.Errorf("decode %s: %w", key, jerr)
				}
				decoded[key] = v
			}
			data, err = yaml.Marshal(decoded)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import store data from a JSON export",
	Long: `Import a JSON dump produced by 'motiv8r export json'.

Existing keys are overwritten by the imported values.

EXAMPLES:

  motiv8r import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var dump map[string]json.RawMessage
		if err := json.Unmarshal(data, &dump); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := appStore.Import(dump); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d keys from %s", len(dump), args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
