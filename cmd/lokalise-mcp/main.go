// Package main provides the entry point for lokalise-mcp.
//
// lokalise-mcp is both an MCP server that exposes the Lokalise API to AI
// assistants and a CLI with one command per API operation. Run without a
// subcommand it starts the server on the configured transport.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/breml/rootcerts"
	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/domains"
	"github.com/lokalise/lokalise-mcp/internal/handler"
	"github.com/lokalise/lokalise-mcp/internal/logging"
	"github.com/lokalise/lokalise-mcp/internal/ui"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var log = logging.For("cli")

// groupServer holds the commands that are not Lokalise API operations.
const groupServer = "server"

// app is the state shared by the built-in commands.
type app struct {
	cfg     *config.Loader
	domains []domains.Domain
}

// newRootCmd builds the command tree around cfg.
//
// Parameters:
//   - cfg: The configuration loader every command reads from
//
// Returns:
//   - *cobra.Command: The root command with every domain registered
func newRootCmd(cfg *config.Loader) *cobra.Command {
	provider := api.NewProvider(cfg)
	a := &app{
		cfg:     cfg,
		domains: domains.All(domain.Deps{Clients: provider, Config: cfg}),
	}

	root := &cobra.Command{
		Use:           "lokalise-mcp",
		Short:         "Lokalise MCP server and CLI",
		Long:          ui.GetHelpText(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg.Load()
			logging.Configure(cfg.Debug())
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logging.ForceDebug(true)
				log.Debug("debug logging enabled")
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			ui.SetQuiet(quiet)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), "", 0)
		},
	}

	root.PersistentFlags().Bool("debug", false, "Enable debug logging for every module")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	root.AddGroup(&cobra.Group{ID: groupServer, Title: "Server and tooling:"})
	root.AddCommand(a.serveCmd(), a.configCmd(), schemaCmd(), versionCmd())
	domains.RegisterCommands(root, a.domains)
	return root
}

// execute runs root with args and returns the process exit code.
//
// Errors the domain commands already printed are not printed again. For an
// unknown command it also suggests a command with the words reordered
// (e.g. "keys list" becomes "list-keys").
func execute(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if handler.Reported(err) {
		return 1
	}

	errStr := err.Error()
	if strings.Contains(errStr, "unknown command") {
		if start := strings.Index(errStr, `unknown command "`); start != -1 {
			start += len(`unknown command "`)
			if end := strings.Index(errStr[start:], `"`); end != -1 {
				if suggestion, found := suggestCorrectCommand(errStr[start:start+end], args, root); found {
					ui.PrintError("unknown command %q", errStr[start:start+end])
					printCommandSuggestion(suggestion)
					return 1
				}
			}
		}
	}
	handler.Report(err)
	return 1
}

func main() {
	api.UserAgent = "lokalise-mcp/" + version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, newRootCmd(config.New()), os.Args[1:])
	stop()
	os.Exit(code)
}
