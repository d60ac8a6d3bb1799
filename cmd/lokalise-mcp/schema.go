package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/schema"
)

// schemaCmd outputs the CLI schema for LLM/tooling integration.
func schemaCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "schema",
		GroupID: groupServer,
		Short:   "Output the CLI schema for LLM/tooling integration",
		Long: `Output a machine-readable description of every CLI command.

FORMATS:
  json     - Commands, flags, examples and workflows (default)
  yaml     - The same document as YAML
  markdown - Reference documentation grouped by domain
  llm      - Compact single-file reference for LLM context windows`,
		Example: `  lokalise-mcp schema
  lokalise-mcp schema --format markdown > CLI.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := schema.Render(schema.GetCLISchema(cmd.Root(), version), format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", schema.FormatJSON, "Output format: "+strings.Join(schema.Formats, ", "))
	return cmd
}

// versionCmd shows version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: groupServer,
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "lokalise-mcp %s\n", version)
			fmt.Fprintf(w, "Commit: %s\n", commit)
			fmt.Fprintf(w, "Built:  %s\n", date)
		},
	}
}
