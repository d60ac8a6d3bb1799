package translations

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
	"github.com/lokalise/lokalise-mcp/internal/ui"
)

// Commands returns the translations CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{
		d.listCmd(),
		d.getCmd(),
		d.updateCmd(),
		d.bulkUpdateCmd(),
	}
}

func (d *Domain) listCmd() *cobra.Command {
	var in ListArgs
	cmd := &cobra.Command{
		Use:   "list-translations",
		Short: "List translations in a project",
		Example: `  lokalise-mcp list-translations --project-id <id> --use-cursor --limit 1000
  lokalise-mcp list-translations --project-id <id> --lang-id 640 --untranslated`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			in.Page = handler.OptionalInt(cmd, "page")
			in.FilterIsReviewed = handler.OptionalBool(cmd, "reviewed")
			in.FilterUnverified = handler.OptionalBool(cmd, "unverified")
			in.FilterUntranslated = handler.OptionalBool(cmd, "untranslated")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.List(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.Int("limit", domain.DefaultLimit, "Number of translations to return (1-5000)")
	f.Int("page", 1, "Page number")
	f.StringVar(&in.Cursor, "cursor", "", "Cursor from a previous page")
	f.BoolVar(&in.UseCursor, "use-cursor", false, "Use cursor pagination")
	f.BoolVar(&in.DisableReferences, "disable-references", false, "Do not resolve key references")
	f.Int64Var(&in.FilterLangID, "lang-id", 0, "Only this language ID")
	f.Bool("reviewed", false, "Only reviewed (or --reviewed=false for unreviewed)")
	f.Bool("unverified", false, "Only unverified (or --unverified=false for verified)")
	f.Bool("untranslated", false, "Only empty (or --untranslated=false for filled)")
	f.StringSliceVar(&in.FilterQAIssues, "qa-issues", nil, "Only translations with these QA issues")
	f.Int64Var(&in.FilterActiveTaskID, "task-id", 0, "Only translations in this active task")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "get-translation",
		Short: "Show one translation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.TranslationID, "translation-id", 0, "Translation ID (required)")
	return cmd
}

func (d *Domain) updateCmd() *cobra.Command {
	var in UpdateArgs
	cmd := &cobra.Command{
		Use:     "update-translation",
		Short:   "Update one translation",
		Example: `  lokalise-mcp update-translation --project-id <id> --translation-id 123 --text "Bonjour" --reviewed`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Data.Translation = handler.OptionalString(cmd, "text")
			in.Data.IsReviewed = handler.OptionalBool(cmd, "reviewed")
			in.Data.IsUnverified = handler.OptionalBool(cmd, "unverified")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Update(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.Int64Var(&in.TranslationID, "translation-id", 0, "Translation ID (required)")
	f.String("text", "", "New text")
	f.Bool("reviewed", false, "Mark as reviewed")
	f.Bool("unverified", false, "Mark as unverified")
	f.Int64SliceVar(&in.Data.CustomTranslationStatusIDs, "status-ids", nil, "Custom translation status IDs")
	return cmd
}

func (d *Domain) bulkUpdateCmd() *cobra.Command {
	var (
		in          BulkUpdateArgs
		updatesJSON string
	)
	cmd := &cobra.Command{
		Use:   "bulk-update-translations",
		Short: "Update up to 100 translations one after another",
		Example: `  lokalise-mcp bulk-update-translations --project-id <id> \
    --updates '[{"translationId":1,"translationData":{"translation":"Hallo","isReviewed":true}}]'
  lokalise-mcp bulk-update-translations --project-id <id> --updates @updates.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				if err := handler.DecodeJSON("updates", updatesJSON, &in.Updates); err != nil {
					return "", err
				}
				bar := ui.NewProgressBar(len(in.Updates), 30)
				ctx = handler.WithProgress(ctx, func(done, failed, _ int, message string) {
					bar.Update(done, failed, message)
				})
				defer bar.Complete()
				return d.ctl.BulkUpdate(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().StringVar(&updatesJSON, "updates", "", "JSON array of {translationId, translationData}, @file or - for stdin (required)")
	return cmd
}
