package keys

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the keys CLI commands.
func (d *Domain) Commands() []*cobra.Command {
	return []*cobra.Command{
		d.listCmd(),
		d.getCmd(),
		d.createCmd(),
		d.updateCmd(),
		d.bulkUpdateCmd(),
		d.deleteCmd(),
		d.bulkDeleteCmd(),
	}
}

func (d *Domain) listCmd() *cobra.Command {
	var in ListArgs
	cmd := &cobra.Command{
		Use:   "list-keys",
		Short: "List keys in a project",
		Example: `  lokalise-mcp list-keys --project-id <id> --limit 500
  lokalise-mcp list-keys --project-id <id> --tags onboarding --include-translations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Limit = handler.OptionalInt(cmd, "limit")
			in.Page = handler.OptionalInt(cmd, "page")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.List(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.Int("limit", domain.DefaultLimit, "Number of keys to return (1-5000)")
	f.Int("page", 1, "Page number")
	f.StringVar(&in.Cursor, "cursor", "", "Cursor from a previous page")
	f.BoolVar(&in.IncludeTranslations, "include-translations", false, "Include translations")
	f.StringSliceVar(&in.FilterKeys, "keys", nil, "Only keys with these names")
	f.StringSliceVar(&in.FilterTags, "tags", nil, "Only keys with these tags")
	f.StringSliceVar(&in.FilterPlatforms, "platforms", nil, "Only keys on these platforms")
	f.StringSliceVar(&in.FilterFilenames, "filenames", nil, "Only keys attached to these filenames")
	f.BoolVar(&in.FilterUntranslated, "untranslated", false, "Only keys with untranslated languages")
	f.StringVar(&in.FilterArchived, "archived", "", "include, exclude or only")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "get-key",
		Short: "Show a key with its translations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.KeyID, "key-id", 0, "Key ID (required)")
	return cmd
}

func (d *Domain) createCmd() *cobra.Command {
	var (
		in           CreateArgs
		keysJSON     string
		single       KeyInput
		translations map[string]string
	)
	cmd := &cobra.Command{
		Use:   "create-keys",
		Short: "Create one key from flags or many from JSON",
		Example: `  lokalise-mcp create-keys --project-id <id> --name welcome.title --platforms web --translation en="Welcome"
  lokalise-mcp create-keys --project-id <id> --keys @keys.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				if keysJSON != "" {
					if err := handler.DecodeJSON("keys", keysJSON, &in.Keys); err != nil {
						return "", err
					}
				} else {
					single.Translations = translationInputs(translations)
					in.Keys = []KeyInput{single}
				}
				return d.ctl.Create(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.StringVar(&keysJSON, "keys", "", "JSON array of keys, @file or - for stdin")
	f.BoolVar(&in.UseAutomations, "use-automations", false, "Run project automations")
	f.StringVar(&single.KeyName, "name", "", "Key name")
	f.StringSliceVar(&single.Platforms, "platforms", []string{"web"}, "Platforms")
	f.StringVar(&single.Description, "description", "", "Description")
	f.StringVar(&single.Filename, "filename", "", "Filename")
	f.StringSliceVar(&single.Tags, "tags", nil, "Tags")
	f.StringToStringVar(&translations, "translation", nil, "Initial translation as lang=text (repeatable)")
	return cmd
}

func translationInputs(m map[string]string) []TranslationInput {
	langs := make([]string, 0, len(m))
	for l := range m {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	out := make([]TranslationInput, 0, len(langs))
	for _, l := range langs {
		out = append(out, TranslationInput{LanguageISO: l, Translation: m[l]})
	}
	return out
}

func (d *Domain) updateCmd() *cobra.Command {
	var in UpdateArgs
	cmd := &cobra.Command{
		Use:     "update-key",
		Short:   "Update a key",
		Example: "  lokalise-mcp update-key --project-id <id> --key-id 123 --tags release-2 --merge-tags",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Data = changesFromFlags(cmd)
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Update(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.Int64Var(&in.KeyID, "key-id", 0, "Key ID (required)")
	addChangeFlags(cmd)
	return cmd
}

func addChangeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "New key name")
	f.String("description", "", "New description")
	f.StringSlice("platforms", nil, "Replace platforms")
	f.StringSlice("tags", nil, "Tags to set")
	f.Bool("merge-tags", false, "Add tags instead of replacing them")
	f.Bool("hidden", false, "Hide the key")
	f.Bool("archived", false, "Archive the key")
	f.String("context", "", "New context")
	f.Int("char-limit", 0, "New character limit")
}

func changesFromFlags(cmd *cobra.Command) KeyChanges {
	f := cmd.Flags()
	c := KeyChanges{
		KeyName:     handler.OptionalString(cmd, "name"),
		Description: handler.OptionalString(cmd, "description"),
		MergeTags:   handler.OptionalBool(cmd, "merge-tags"),
		IsHidden:    handler.OptionalBool(cmd, "hidden"),
		IsArchived:  handler.OptionalBool(cmd, "archived"),
		Context:     handler.OptionalString(cmd, "context"),
	}
	c.Platforms, _ = f.GetStringSlice("platforms")
	c.Tags, _ = f.GetStringSlice("tags")
	if f.Changed("char-limit") {
		n, _ := f.GetInt("char-limit")
		c.CharLimit = &n
	}
	return c
}

func (d *Domain) bulkUpdateCmd() *cobra.Command {
	var (
		in       BulkUpdateArgs
		keysJSON string
	)
	cmd := &cobra.Command{
		Use:     "bulk-update-keys",
		Short:   "Update many keys from JSON",
		Example: `  lokalise-mcp bulk-update-keys --project-id <id> --keys '[{"keyId":1,"data":{"tags":["v2"]}}]'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				if err := handler.DecodeJSON("keys", keysJSON, &in.Keys); err != nil {
					return "", err
				}
				return d.ctl.BulkUpdate(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().StringVar(&keysJSON, "keys", "", "JSON array of {keyId, data}, @file or - for stdin (required)")
	return cmd
}

func (d *Domain) deleteCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "delete-key",
		Short: "Permanently delete a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("delete key %d", in.KeyID), func(ctx context.Context) (string, error) {
				return d.ctl.Delete(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.KeyID, "key-id", 0, "Key ID (required)")
	handler.RequireConfirm(cmd)
	return cmd
}

func (d *Domain) bulkDeleteCmd() *cobra.Command {
	var in BulkDeleteArgs
	cmd := &cobra.Command{
		Use:     "bulk-delete-keys",
		Short:   "Permanently delete many keys",
		Example: "  lokalise-mcp bulk-delete-keys --project-id <id> --key-ids 11,12,13 --confirm",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("delete %d keys", len(in.KeyIDs)), func(ctx context.Context) (string, error) {
				return d.ctl.BulkDelete(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64SliceVar(&in.KeyIDs, "key-ids", nil, "Key IDs to delete (required)")
	handler.RequireConfirm(cmd)
	return cmd
}
