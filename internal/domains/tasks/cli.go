package tasks

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Commands returns the tasks CLI commands.
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
		Use:     "list-tasks",
		Short:   "List tasks in a project",
		Example: "  lokalise-mcp list-tasks --project-id <id> --status in_progress",
		Args:    cobra.NoArgs,
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
	f.Int("limit", domain.DefaultLimit, "Number of tasks to return (1-500)")
	f.Int("page", 1, "Page number")
	f.StringVar(&in.FilterTitle, "title", "", "Only tasks whose title contains this text")
	f.StringSliceVar(&in.FilterStatuses, "status", nil, "Only tasks in these statuses")
	return cmd
}

func (d *Domain) getCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "get-task",
		Short: "Show a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				return d.ctl.Get(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.TaskID, "task-id", 0, "Task ID (required)")
	return cmd
}

// languageFlags collects target languages either as JSON or as a language
// list sharing one set of assignees.
type languageFlags struct {
	json   string
	langs  []string
	users  []int64
	groups []int64
}

func (l *languageFlags) add(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&l.json, "languages-json", "", "JSON array of {languageIso, users, groups}, @file or - for stdin")
	f.StringSliceVar(&l.langs, "languages", nil, "Target language codes")
	f.Int64SliceVar(&l.users, "users", nil, "User IDs assigned to every language")
	f.Int64SliceVar(&l.groups, "groups", nil, "Group IDs assigned to every language")
}

func (l *languageFlags) resolve() ([]LanguageAssignment, error) {
	if l.json != "" {
		var out []LanguageAssignment
		if err := handler.DecodeJSON("languages-json", l.json, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	out := make([]LanguageAssignment, 0, len(l.langs))
	for _, iso := range l.langs {
		out = append(out, LanguageAssignment{LanguageISO: iso, Users: l.users, Groups: l.groups})
	}
	return out, nil
}

func (d *Domain) createCmd() *cobra.Command {
	var (
		in    CreateArgs
		langs languageFlags
	)
	cmd := &cobra.Command{
		Use:   "create-task",
		Short: "Create a task",
		Example: `  lokalise-mcp create-task --project-id <id> --title "Release 2.1" --languages fr,de --users 1001 --keys 11,12
  lokalise-mcp create-task --project-id <id> --title "Review" --task-type review --languages-json @langs.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.AutoCloseLanguages = handler.OptionalBool(cmd, "auto-close-languages")
			in.AutoCloseTask = handler.OptionalBool(cmd, "auto-close-task")
			in.AutoCloseItems = handler.OptionalBool(cmd, "auto-close-items")
			in.InitialTMLeverage = handler.OptionalBool(cmd, "initial-tm-leverage")
			in.DoLockTranslations = handler.OptionalBool(cmd, "lock-translations")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				var err error
				if in.Languages, err = langs.resolve(); err != nil {
					return "", err
				}
				return d.ctl.Create(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.StringVar(&in.Title, "title", "", "Task title (required)")
	f.StringVar(&in.Description, "description", "", "Task description")
	f.StringVar(&in.DueDate, "due-date", "", "Due date in UTC, e.g. \"2025-12-31 18:00:00\"")
	f.Int64SliceVar(&in.Keys, "keys", nil, "Key IDs")
	f.StringVar(&in.SourceLanguageISO, "source-language", "", "Source language code")
	f.StringVar(&in.TaskType, "task-type", "", "translation, automatic_translation or review")
	f.Int64Var(&in.ParentTaskID, "parent-task-id", 0, "Parent task ID")
	f.StringSliceVar(&in.ClosingTags, "closing-tags", nil, "Tags added to keys when the task closes")
	f.Int64SliceVar(&in.CustomTranslationStatusIDs, "status-ids", nil, "Custom translation status IDs")
	f.Bool("auto-close-languages", false, "Close a language once its items are done")
	f.Bool("auto-close-task", false, "Close the task once all languages are done")
	f.Bool("auto-close-items", false, "Mark items done when saved")
	f.Bool("initial-tm-leverage", false, "Compute TM leverage at creation")
	f.Bool("lock-translations", false, "Lock translations for non-assignees")
	langs.add(cmd)
	return cmd
}

func (d *Domain) updateCmd() *cobra.Command {
	var (
		in    UpdateArgs
		langs languageFlags
	)
	cmd := &cobra.Command{
		Use:     "update-task",
		Short:   "Update a task",
		Example: "  lokalise-mcp update-task --project-id <id> --task-id 42 --close",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.AutoCloseLanguages = handler.OptionalBool(cmd, "auto-close-languages")
			in.AutoCloseTask = handler.OptionalBool(cmd, "auto-close-task")
			in.AutoCloseItems = handler.OptionalBool(cmd, "auto-close-items")
			in.CloseTask = handler.OptionalBool(cmd, "close")
			in.DoLockTranslations = handler.OptionalBool(cmd, "lock-translations")
			return handler.Run(cmd, func(ctx context.Context) (string, error) {
				var err error
				if in.Languages, err = langs.resolve(); err != nil {
					return "", err
				}
				return d.ctl.Update(ctx, in)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	f.Int64Var(&in.TaskID, "task-id", 0, "Task ID (required)")
	f.StringVar(&in.Title, "title", "", "New title")
	f.StringVar(&in.Description, "description", "", "New description")
	f.StringVar(&in.DueDate, "due-date", "", "New due date in UTC")
	f.StringSliceVar(&in.ClosingTags, "closing-tags", nil, "Tags added to keys when the task closes")
	f.Bool("auto-close-languages", false, "Close a language once its items are done")
	f.Bool("auto-close-task", false, "Close the task once all languages are done")
	f.Bool("auto-close-items", false, "Mark items done when saved")
	f.Bool("close", false, "Close the task now")
	f.Bool("lock-translations", false, "Lock translations for non-assignees")
	langs.add(cmd)
	return cmd
}

func (d *Domain) deleteCmd() *cobra.Command {
	var in GetArgs
	cmd := &cobra.Command{
		Use:   "delete-task",
		Short: "Permanently delete a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handler.RunDestructive(cmd, fmt.Sprintf("delete task %d", in.TaskID), func(ctx context.Context) (string, error) {
				return d.ctl.Delete(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.ProjectID, "project-id", "", "Project ID (required)")
	cmd.Flags().Int64Var(&in.TaskID, "task-id", 0, "Task ID (required)")
	handler.RequireConfirm(cmd)
	return cmd
}
