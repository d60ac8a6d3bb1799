package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/mcp"
	"github.com/lokalise/lokalise-mcp/internal/telemetry"
	"github.com/lokalise/lokalise-mcp/internal/ui"
)

func (a *app) serveCmd() *cobra.Command {
	var (
		transport string
		port      int
	)
	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: groupServer,
		Short:   "Start the MCP server",
		Long: `Start the Lokalise MCP server.

The transport defaults to TRANSPORT_MODE (stdio unless set to http). Over
HTTP the Streamable HTTP endpoint is served at /mcp and a health document
at /. Changes to the .env file or the global config file are picked up
without a restart.

Example client configuration:
  {
    "mcpServers": {
      "lokalise": {
        "command": "lokalise-mcp",
        "env": { "LOKALISE_API_KEY": "your-api-token" }
      }
    }
  }`,
		Example: `  lokalise-mcp serve
  lokalise-mcp serve --transport http --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), config.TransportMode(transport), port)
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "", "Transport: stdio or http (default from TRANSPORT_MODE)")
	cmd.Flags().IntVar(&port, "port", 0, "HTTP port (default from PORT, 3000)")
	return cmd
}

// serve runs the MCP server until ctx ends or, over stdio, the client
// disconnects. Cancellation is a clean stop. An empty transport or zero port falls back to the
// configuration.
func (a *app) serve(ctx context.Context, transport config.TransportMode, port int) error {
	if transport == "" {
		transport = a.cfg.TransportMode()
	}
	if transport != config.TransportStdio && transport != config.TransportHTTP {
		return apperr.Validation("unknown transport %q: must be stdio or http", transport)
	}
	if port == 0 {
		port = a.cfg.Port()
	}
	if port < 1 || port > 65535 {
		return apperr.Validation("port must be between 1 and 65535, got %d", port)
	}

	shutdown, err := telemetry.Setup(ctx, mcp.ServerName, version)
	if err != nil {
		log.Warn("tracing disabled", "err", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "err", err)
		}
	}()

	srv := mcp.NewServer(a.cfg, a.domains, version)

	g, ctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(ctx)
	g.Go(func() error {
		if err := a.cfg.Watch(watchCtx); err != nil {
			log.Warn("config file watching disabled", "err", err)
		}
		return nil
	})
	g.Go(func() error {
		defer stopWatch()
		if transport == config.TransportHTTP {
			ui.PrintBanner(version, string(transport), fmt.Sprintf("localhost:%d", port))
			return srv.ServeHTTP(ctx, port)
		}
		ui.PrintBanner(version, string(transport), "")
		return srv.Run(ctx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
