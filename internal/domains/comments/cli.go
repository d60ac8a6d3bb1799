package comments

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the comments CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{
		d.listProjectCmd(),
		d.listKeyCmd(),
		d.createCmd(),
		d.getCmd(),
		d.deleteCmd(),
	}
}

func (d *Domain) listProjectCmd() *cobra.Command {
	var in ProjectListArgs
	cmd := &cobra.Command{
		Use:   "list-project-comments",
		Short: "List every comment in a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			in.Page = handler.OptionalInt(cmd, "page")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.ListProject(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int("limit", domain.DefaultLimit, "Number of comments to return (1-500)")
	cmd.Flags().Int("page", 1, "Page number")
	return cmd
}

func (d *Domain) listKeyCmd() *cobra.Command {
	var in KeyListArgs
	cmd := &cobra.Command{
		Use:   "list-key-comments",
		Short: "List the comments on a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			in.Page = handler.OptionalInt(cmd, "page")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.ListKey(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.KeyID, "key-id", 0, "Key ID (required)")
	cmd.Flags().Int("limit", domain.DefaultLimit, "Number of comments to return (1-500)")
	cmd.Flags().Int("page", 1, "Page number")
	return cmd
}

func (d *Domain) createCmd() *cobra.Command {
	var in CreateArgs
	cmd := &cobra.Command{
		Use:     "create-comments",
		Short:   "Add comments to a key",
		Example: `  lokalise-mcp create-comments --project-id <id> --key-id 123 --comment "Please check the tone" --comment "Max 20 chars"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Create(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.KeyID, "key-id", 0, "Key ID (required)")
	cmd.Flags().StringArrayVar(&in.Comments, "comment", nil, "Comment text (repeatable)")
	return cmd
}

func commentFlags(cmd *cobra.Command, in *CommentArgs) {
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.KeyID, "key-id", 0, "Key ID (required)")
	cmd.Flags().Int64Var(&in.CommentID, "comment-id", 0, "Comment ID (required)")
}

func (d *Domain) getCmd() *cobra.Command {
	var in CommentArgs
	cmd := &cobra.Command{
		Use:   "get-comment",
		Short: "Show one comment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	commentFlags(cmd, &in)
	return cmd
}

func (d *Domain) deleteCmd() *cobra.Command {
	var in CommentArgs
	cmd := &cobra.Command{
		Use:   "delete-comment",
		Short: "Permanently delete a comment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("delete comment %d", in.CommentID), func(ctx context.Context) (string, error) {
				return d.ctl.Delete(ctx, in)
			})
		},
	}
	commentFlags(cmd, &in)
	handler.RequireConfirm(cmd)
	return cmd
}
