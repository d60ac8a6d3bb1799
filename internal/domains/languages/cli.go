package languages

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the languages CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{
		d.listSystemCmd(),
		d.listProjectCmd(),
		d.addCmd(),
		d.getCmd(),
		d.updateCmd(),
		d.removeCmd(),
	}
}

func (d *Domain) listSystemCmd() *cobra.Command {
	var in SystemListArgs
	cmd := &cobra.Command{
		Use:   "list-system-languages",
		Short: "List every language Lokalise supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			in.Page = handler.OptionalInt(cmd, "page")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.ListSystem(ctx, in)
			})
		},
	}
	cmd.Flags().Int("limit", domain.DefaultLimit, "Number of languages to return (1-500)")
	cmd.Flags().Int("page", 1, "Page number")
	return cmd
}

func (d *Domain) listProjectCmd() *cobra.Command {
	var in ProjectListArgs
	cmd := &cobra.Command{
		Use:   "list-project-languages",
		Short: "List the languages of a project",
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
	cmd.Flags().Int("limit", domain.DefaultLimit, "Number of languages to return (1-500)")
	cmd.Flags().Int("page", 1, "Page number")
	return cmd
}

func (d *Domain) addCmd() *cobra.Command {
	var (
		in        AddArgs
		isoCodes  []string
		langsJSON string
	)
	cmd := &cobra.Command{
		Use:   "add-project-languages",
		Short: "Add languages to a project",
		Example: `  lokalise-mcp add-project-languages --project-id <id> --iso fr,de,pt_BR
  lokalise-mcp add-project-languages --project-id <id> --languages '[{"langIso":"en","customIso":"en-GB"}]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				if langsJSON != "" {
					if err := handler.DecodeJSON("languages", langsJSON, &in.Languages); err != nil {
						return "", err
					}
				}
				for _, iso := range isoCodes {
					in.Languages = append(in.Languages, NewLanguage{LangISO: iso})
				}
				return d.ctl.Add(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().StringSliceVar(&isoCodes, "iso", nil, "Language codes to add")
	cmd.Flags().StringVar(&langsJSON, "languages", "", "JSON array of {langIso, customIso, customName, customPluralForms}, @file or - for stdin")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "get-language",
		Short: "Show a project language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.LanguageID, "language-id", 0, "Language ID (required)")
	return cmd
}

func (d *Domain) updateCmd() *cobra.Command {
	var in UpdateArgs
	cmd := &cobra.Command{
		Use:     "update-language",
		Short:   "Update a project language",
		Example: "  lokalise-mcp update-language --project-id <id> --language-id 640 --name \"British English\"",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Update(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.Int64Var(&in.LanguageID, "language-id", 0, "Language ID (required)")
	f.StringVar(&in.LangISO, "iso", "", "New language code")
	f.StringVar(&in.LangName, "name", "", "New language name")
	f.StringSliceVar(&in.PluralForms, "plural-forms", nil, "New plural forms")
	return cmd
}

func (d *Domain) removeCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "remove-language",
		Short: "Remove a language and its translations from a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("remove language %d and its translations", in.LanguageID), func(ctx context.Context) (string, error) {
				return d.ctl.Remove(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.LanguageID, "language-id", 0, "Language ID (required)")
	handler.RequireConfirm(cmd)
	return cmd
}
