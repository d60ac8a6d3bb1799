package projects

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the projects CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{
		d.listCmd(),
		d.getCmd(),
		d.createCmd(),
		d.updateCmd(),
		d.deleteCmd(),
		d.emptyCmd(),
	}
}

func (d *Domain) listCmd() *cobra.Command {
	var in ListArgs
	cmd := &cobra.Command{
		Use:     "list-projects",
		Short:   "List projects",
		Example: "  lokalise-mcp list-projects --limit 20 --page 2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			in.Page = handler.OptionalInt(cmd, "page")
			in.IncludeStatistics = handler.OptionalBool(cmd, "include-statistics")
			in.IncludeSettings = handler.OptionalBool(cmd, "include-settings")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.List(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.Int("limit", domain.DefaultLimit, "Number of projects to return (1-500)")
	f.Int("page", 1, "Page number")
	f.Int64Var(&in.FilterTeamID, "team-id", 0, "Only list projects of this team")
	f.StringSliceVar(&in.FilterNames, "names", nil, "Only list projects with these names")
	f.Bool("include-statistics", true, "Include progress statistics")
	f.Bool("include-settings", false, "Include project settings")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:     "get-project",
		Short:   "Show project details",
		Example: "  lokalise-mcp get-project --project-id 3002780358964f9bab5a92.87762498",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	return cmd
}

func (d *Domain) createCmd() *cobra.Command {
	var in CreateArgs
	var langs []string
	cmd := &cobra.Command{
		Use:     "create-project",
		Short:   "Create a project",
		Example: "  lokalise-mcp create-project --name Website --base-lang en --languages fr,de",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, l := range langs {
				in.Languages = append(in.Languages, LanguageArgs{LangISO: l})
			}
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Create(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "Project name (required)")
	f.StringVar(&in.Description, "description", "", "Project description")
	f.Int64Var(&in.TeamID, "team-id", 0, "Team ID")
	f.StringVar(&in.BaseLangISO, "base-lang", "", "Base language code")
	f.StringSliceVar(&langs, "languages", nil, "Language codes to add")
	f.StringVar(&in.ProjectType, "type", "", "Project type: localization_files, paged_documents, marketing, content_integration")
	return cmd
}

func (d *Domain) updateCmd() *cobra.Command {
	var in UpdateArgs
	cmd := &cobra.Command{
		Use:   "update-project",
		Short: "Rename a project or change its description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Update(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.StringVar(&in.Name, "name", "", "New name (required)")
	f.StringVar(&in.Description, "description", "", "New description")
	return cmd
}

func (d *Domain) deleteCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "delete-project",
		Short: "Permanently delete a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, "delete project "+in.ProjectID, func(ctx context.Context) (string, error) {
				return d.ctl.Delete(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	handler.RequireConfirm(cmd)
	return cmd
}

func (d *Domain) emptyCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "empty-project",
		Short: "Delete every key of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, "delete all keys of project "+in.ProjectID, func(ctx context.Context) (string, error) {
				return d.ctl.Empty(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	handler.RequireConfirm(cmd)
	return cmd
}
