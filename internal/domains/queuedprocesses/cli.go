package queuedprocesses

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the queued process CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	var list ListArgs
	listCmd := &cobra.Command{
		Use:   "list-queued-processes",
		Short: "List a project's background jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list.Limit = handler.OptionalInt(cmd, "limit")
			list.Page = handler.OptionalInt(cmd, "page")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.List(ctx, list)
			})
		},
	}
	listCmd.Flags().StringVar(&list.ProjectID, "project-id", "", "Project ID (required)")
	listCmd.Flags().Int("limit", domain.DefaultLimit, "Number of processes to return (1-500)")
	listCmd.Flags().Int("page", 1, "Page number")

	var get GetArgs
	getCmd := &cobra.Command{
		Use:   "get-queued-process",
		Short: "Show a background job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, get)
			})
		},
	}
	getCmd.Flags().StringVar(&get.ProjectID, "project-id", "", "Project ID (required)")
	getCmd.Flags().StringVar(&get.ProcessID, "process-id", "", "Process ID (required)")

	return []*cobra.Command{listCmd, getCmd}
}
