package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/handler"
	"github.com/lokalise/lokalise-mcp/internal/logging"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		GroupID: groupServer,
		Short:   "Inspect the merged configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show every setting and the source it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(context.Context) (string, error) {
				return formatConfig(a.cfg), nil
			})
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Show the .env and global config file paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(context.Context) (string, error) {
				return formatPaths(a.cfg), nil
			})
		},
	}

	cmd.AddCommand(show, path)
	return cmd
}

// secret reports whether key holds a credential.
func secret(key string) bool {
	k := strings.ToUpper(key)
	return strings.Contains(k, "KEY") || strings.Contains(k, "TOKEN") || strings.Contains(k, "SECRET")
}

func formatConfig(cfg *config.Loader) string {
	rows := make([][]string, 0, len(cfg.Keys()))
	for _, k := range cfg.Keys() {
		v := cfg.Get(k, "")
		if secret(k) {
			v = logging.MaskSecret(v)
		}
		rows = append(rows, []string{markdown.Code(k), markdown.Cell(v), string(cfg.SourceOf(k))})
	}

	doc := markdown.New().H1("Configuration")
	if _, err := cfg.APIKey(); err != nil {
		doc.Paragraph("**Warning:** %s is not set. Lokalise commands will fail until it is.", config.KeyAPIKey)
	}
	doc.Table([]string{"Key", "Value", "Source"}, rows)
	doc.Fields(
		markdown.F("Transport", string(cfg.TransportMode())),
		markdown.F("Port", markdown.Int(int64(cfg.Port()))),
		markdown.F("API host", cfg.APIHostname()),
	)
	return doc.String()
}

func formatPaths(cfg *config.Loader) string {
	return markdown.New().
		H1("Configuration Files").
		Fields(
			markdown.F(".env", cfg.DotenvPath()),
			markdown.F("Global", cfg.GlobalPath()),
		).
		Paragraph("The global file is JSON keyed by package name, e.g. `{\"%s\": {\"environments\": {\"%s\": \"...\"}}}`.", config.PackageName, config.KeyAPIKey).
		String()
}
