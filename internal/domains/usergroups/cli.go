package usergroups

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the usergroups CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{
		d.listCmd(),
		d.getCmd(),
		d.createCmd(),
		d.updateCmd(),
		d.deleteCmd(),
		d.membersCmd("add-members-to-group", "Add team users to a group", d.ctl.AddMembers),
		d.membersCmd("remove-members-from-group", "Remove team users from a group", d.ctl.RemoveMembers),
		d.projectsCmd("add-projects-to-group", "Grant a group access to projects", d.ctl.AddProjects),
		d.projectsCmd("remove-projects-from-group", "Revoke a group's access to projects", d.ctl.RemoveProjects),
	}
}

func bindGroupData(cmd *cobra.Command, g *GroupData) {
	f := cmd.Flags()
	f.StringVar(&g.Name, "name", "", "Group name (required)")
	f.BoolVar(&g.IsAdmin, "admin", false, "Members are project admins")
	f.BoolVar(&g.IsReviewer, "reviewer", false, "Members can mark translations reviewed")
	f.StringSliceVar(&g.AdminRights, "admin-rights", nil, "Admin rights")
	f.Int64SliceVar(&g.ReferenceLanguages, "reference-languages", nil, "Language IDs members can read")
	f.Int64SliceVar(&g.ContributableLanguages, "contributable-languages", nil, "Language IDs members can translate")
}

func (d *Domain) listCmd() *cobra.Command {
	var in ListArgs
	cmd := &cobra.Command{
		Use:   "list-usergroups",
		Short: "List a team's user groups",
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
	cmd.Flags().Int("limit", domain.DefaultLimit, "Number of groups to return (1-500)")
	cmd.Flags().Int("page", 1, "Page number")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "get-usergroup",
		Short: "Show a user group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int64Var(&in.GroupID, "group-id", 0, "Group ID (required)")
	return cmd
}

func (d *Domain) createCmd() *cobra.Command {
	var in CreateArgs
	cmd := &cobra.Command{
		Use:     "create-usergroup",
		Short:   "Create a user group",
		Example: "  lokalise-mcp create-usergroup --team-id 1 --name Translators --contributable-languages 640,597",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Create(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	bindGroupData(cmd, &in.GroupData)
	return cmd
}

func (d *Domain) updateCmd() *cobra.Command {
	var in UpdateArgs
	cmd := &cobra.Command{
		Use:   "update-usergroup",
		Short: "Replace a user group's name and permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Update(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int64Var(&in.GroupID, "group-id", 0, "Group ID (required)")
	bindGroupData(cmd, &in.GroupData)
	return cmd
}

func (d *Domain) deleteCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "delete-usergroup",
		Short: "Delete a user group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("delete user group %d", in.GroupID), func(ctx context.Context) (string, error) {
				return d.ctl.Delete(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int64Var(&in.GroupID, "group-id", 0, "Group ID (required)")
	handler.RequireConfirm(cmd)
	return cmd
}

func (d *Domain) membersCmd(use, short string, run func(context.Context, MembersArgs) (string, error)) *cobra.Command {
	var in MembersArgs
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return run(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int64Var(&in.GroupID, "group-id", 0, "Group ID (required)")
	cmd.Flags().Int64SliceVar(&in.UserIDs, "user-ids", nil, "Team user IDs (required)")
	return cmd
}

func (d *Domain) projectsCmd(use, short string, run func(context.Context, ProjectsArgs) (string, error)) *cobra.Command {
	var in ProjectsArgs
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return run(ctx, in)
			})
		},
	}
	cmd.Flags().Int64Var(&in.TeamID, "team-id", 0, "Team ID (required)")
	cmd.Flags().Int64Var(&in.GroupID, "group-id", 0, "Group ID (required)")
	cmd.Flags().StringSliceVar(&in.ProjectIDs, "project-ids", nil, "Project IDs (required)")
	return cmd
}
