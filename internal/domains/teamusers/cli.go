package teamusers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the teamusers CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{d.listCmd(), d.getCmd(), d.updateCmd(), d.deleteCmd()}
}

func (d *Domain) listCmd() *cobra.Command {
	var in ListArgs
	cmd := &cobra.Command{
		Use:   "list-team-users",
		Short: "List the users of a team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			in.Page = handler.OptionalInt(cmd, "page")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.List(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int("limit", domain.DefaultLimit, "Number of users to return (1-500)")
	cmd.Flags().Int("page", 1, "Page number")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "get-team-user",
		Short: "Show a team user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int64Var(&in.UserID, "user-id", 0, "User ID (required)")
	return cmd
}

func (d *Domain) updateCmd() *cobra.Command {
	var in UpdateArgs
	cmd := &cobra.Command{
		Use:     "update-team-user",
		Short:   "Change a team user's role",
		Example: "  lokalise-mcp update-team-user --team-id 18 --user-id 420 --role admin",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Update(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int64Var(&in.UserID, "user-id", 0, "User ID (required)")
	cmd.Flags().StringVar(&in.Role, "role", "", "owner, admin, member or biller (required)")
	return cmd
}

func (d *Domain) deleteCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "delete-team-user",
		Short: "Remove a user from a team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("remove user %d from team %d", in.UserID, in.TeamID), func(ctx context.Context) (string, error) {
				return d.ctl.Delete(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int64Var(&in.UserID, "user-id", 0, "User ID (required)")
	handler.RequireConfirm(cmd)
	return cmd
}
