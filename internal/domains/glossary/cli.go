package glossary

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the glossary CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{
		d.listCmd(),
		d.getCmd(),
		d.createCmd(),
		d.updateCmd(),
		d.deleteCmd(),
	}
}

func (d *Domain) listCmd() *cobra.Command {
	var in ListArgs
	cmd := &cobra.Command{
		Use:   "list-glossary-terms",
		Short: "List glossary terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.List(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int("limit", domain.DefaultLimit, "Number of terms to return (1-500)")
	cmd.Flags().StringVar(&in.Cursor, "cursor", "", "Cursor from a previous page")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "get-glossary-term",
		Short: "Show a glossary term",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.TermID, "term-id", 0, "Term ID (required)")
	return cmd
}

func (d *Domain) createCmd() *cobra.Command {
	var (
		in        CreateArgs
		termsJSON string
		single    TermInput
	)
	cmd := &cobra.Command{
		Use:   "create-glossary-terms",
		Short: "Create glossary terms from flags or JSON",
		Example: `  lokalise-mcp create-glossary-terms --project-id <id> --term Lokalise --translatable=false
  lokalise-mcp create-glossary-terms --project-id <id> --terms @terms.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				if termsJSON != "" {
					if err := handler.DecodeJSON("terms", termsJSON, &in.Terms); err != nil {
						return "", err
					}
				} else {
					single.CaseSensitive = handler.OptionalBool(cmd, "case-sensitive")
					single.Translatable = handler.OptionalBool(cmd, "translatable")
					single.Forbidden = handler.OptionalBool(cmd, "forbidden")
					in.Terms = []TermInput{single}
				}
				return d.ctl.Create(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.StringVar(&termsJSON, "terms", "", "JSON array of terms, @file or - for stdin")
	f.StringVar(&single.Term, "term", "", "Term")
	f.StringVar(&single.Description, "description", "", "Description")
	f.StringSliceVar(&single.Tags, "tags", nil, "Tags")
	f.Bool("case-sensitive", false, "Match case")
	f.Bool("translatable", true, "Term can be translated")
	f.Bool("forbidden", false, "Term is forbidden")
	return cmd
}

func (d *Domain) updateCmd() *cobra.Command {
	var (
		in        UpdateArgs
		termsJSON string
	)
	cmd := &cobra.Command{
		Use:     "update-glossary-terms",
		Short:   "Update glossary terms from JSON",
		Example: `  lokalise-mcp update-glossary-terms --project-id <id> --terms '[{"id":5,"forbidden":true}]'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				if err := handler.DecodeJSON("terms", termsJSON, &in.Terms); err != nil {
					return "", err
				}
				return d.ctl.Update(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().StringVar(&termsJSON, "terms", "", "JSON array of terms with id, @file or - for stdin (required)")
	return cmd
}

func (d *Domain) deleteCmd() *cobra.Command {
	var in DeleteArgs
	cmd := &cobra.Command{
		Use:   "delete-glossary-terms",
		Short: "Permanently delete glossary terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("delete %d glossary terms", len(in.TermIDs)), func(ctx context.Context) (string, error) {
				return d.ctl.Delete(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64SliceVar(&in.TermIDs, "term-ids", nil, "Term IDs (required)")
	handler.RequireConfirm(cmd)
	return cmd
}
