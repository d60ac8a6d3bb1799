package tasks

import (
	"strings"
	"time"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// DueDateLayout is the due date format Lokalise accepts.
const DueDateLayout = "2006-01-02 15:04:05"

var (
	taskTypes = []string{"translation", "automatic_translation", "review"}
	statuses  = []string{"created", "queued", "in_progress", "completed"}
)

// ListArgs are the arguments of list-tasks.
type ListArgs struct {
	ProjectID      string   `json:"projectId" jsonschema:"Project ID"`
	Limit          *int     `json:"limit,omitempty" jsonschema:"Number of tasks to return (1-500, default 100)"`
	Page           *int     `json:"page,omitempty" jsonschema:"Page number, starting at 1"`
	FilterTitle    string   `json:"filterTitle,omitempty" jsonschema:"Only tasks whose title contains this text"`
	FilterStatuses []string `json:"filterStatuses,omitempty" jsonschema:"Only tasks in these statuses: created, queued, in_progress, completed"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	var err error
	if a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit); err != nil {
		return err
	}
	for _, s := range a.FilterStatuses {
		if err := domain.OneOf("filterStatuses", s, statuses...); err != nil {
			return err
		}
	}
	return nil
}

func (a ListArgs) params() api.ListTasksParams {
	return api.ListTasksParams{
		PageOptions:    api.PageOptions{Limit: a.limit, Page: a.page},
		FilterTitle:    a.FilterTitle,
		FilterStatuses: a.FilterStatuses,
	}
}

// GetArgs identify one task.
type GetArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	TaskID    int64  `json:"taskId" jsonschema:"Task ID"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.ID("taskId", a.TaskID)
}

// LanguageAssignment assigns people to one target language.
type LanguageAssignment struct {
	LanguageISO string  `json:"languageIso" jsonschema:"Target language code"`
	Users       []int64 `json:"users,omitempty" jsonschema:"Assignee user IDs"`
	Groups      []int64 `json:"groups,omitempty" jsonschema:"Assignee group IDs"`
}

func validLanguages(langs []LanguageAssignment) error {
	for i, l := range langs {
		if strings.TrimSpace(l.LanguageISO) == "" {
			return apperr.Validation("languages[%d].languageIso is required", i)
		}
	}
	return nil
}

func assignments(langs []LanguageAssignment) []api.TaskLanguageAssignment {
	if len(langs) == 0 {
		return nil
	}
	out := make([]api.TaskLanguageAssignment, len(langs))
	for i, l := range langs {
		out[i] = api.TaskLanguageAssignment{LanguageISO: l.LanguageISO, Users: l.Users, Groups: l.Groups}
	}
	return out
}

func validDueDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DueDateLayout, s); err != nil {
		return apperr.Validation("dueDate must look like %q, got %q", DueDateLayout, s)
	}
	return nil
}

// CreateArgs are the arguments of create-task.
type CreateArgs struct {
	ProjectID                  string               `json:"projectId" jsonschema:"Project ID"`
	Title                      string               `json:"title" jsonschema:"Task title"`
	Description                string               `json:"description,omitempty" jsonschema:"Task description"`
	DueDate                    string               `json:"dueDate,omitempty" jsonschema:"Due date in UTC, e.g. 2025-12-31 18:00:00"`
	Keys                       []int64              `json:"keys,omitempty" jsonschema:"Key IDs included in the task"`
	Languages                  []LanguageAssignment `json:"languages" jsonschema:"Target languages with their assignees"`
	SourceLanguageISO          string               `json:"sourceLanguageIso,omitempty" jsonschema:"Source language code, defaults to the project base language"`
	TaskType                   string               `json:"taskType,omitempty" jsonschema:"translation (default), automatic_translation or review"`
	ParentTaskID               int64                `json:"parentTaskId,omitempty" jsonschema:"Parent task for a review chain"`
	AutoCloseLanguages         *bool                `json:"autoCloseLanguages,omitempty" jsonschema:"Close a language once all its items are done"`
	AutoCloseTask              *bool                `json:"autoCloseTask,omitempty" jsonschema:"Close the task once all languages are done"`
	AutoCloseItems             *bool                `json:"autoCloseItems,omitempty" jsonschema:"Mark items done when a translation is saved"`
	InitialTMLeverage          *bool                `json:"initialTmLeverage,omitempty" jsonschema:"Compute translation memory leverage at creation"`
	DoLockTranslations         *bool                `json:"doLockTranslations,omitempty" jsonschema:"Lock translations for non-assignees"`
	ClosingTags                []string             `json:"closingTags,omitempty" jsonschema:"Tags added to keys when the task closes"`
	CustomTranslationStatusIDs []int64              `json:"customTranslationStatusIds,omitempty" jsonschema:"Statuses applied when items are completed"`
}

// Validate checks required fields and enums.
func (a *CreateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.Required("title", a.Title); err != nil {
		return err
	}
	if err := domain.Count("languages", len(a.Languages), 1, 0); err != nil {
		return err
	}
	if err := validLanguages(a.Languages); err != nil {
		return err
	}
	if err := domain.IDs("keys", a.Keys, 0, 0); err != nil {
		return err
	}
	if err := domain.OneOf("taskType", a.TaskType, taskTypes...); err != nil {
		return err
	}
	return validDueDate(a.DueDate)
}

func (a CreateArgs) request() *api.CreateTaskRequest {
	return &api.CreateTaskRequest{
		Title:                      a.Title,
		Description:                a.Description,
		DueDate:                    a.DueDate,
		Keys:                       a.Keys,
		Languages:                  assignments(a.Languages),
		SourceLanguageISO:          a.SourceLanguageISO,
		AutoCloseLanguages:         a.AutoCloseLanguages,
		AutoCloseTask:              a.AutoCloseTask,
		AutoCloseItems:             a.AutoCloseItems,
		InitialTMLeverage:          a.InitialTMLeverage,
		TaskType:                   a.TaskType,
		ParentTaskID:               a.ParentTaskID,
		ClosingTags:                a.ClosingTags,
		DoLockTranslations:         a.DoLockTranslations,
		CustomTranslationStatusIDs: a.CustomTranslationStatusIDs,
	}
}

// UpdateArgs are the arguments of update-task.
type UpdateArgs struct {
	ProjectID          string               `json:"projectId" jsonschema:"Project ID"`
	TaskID             int64                `json:"taskId" jsonschema:"Task ID"`
	Title              string               `json:"title,omitempty" jsonschema:"New title"`
	Description        string               `json:"description,omitempty" jsonschema:"New description"`
	DueDate            string               `json:"dueDate,omitempty" jsonschema:"New due date in UTC, e.g. 2025-12-31 18:00:00"`
	Languages          []LanguageAssignment `json:"languages,omitempty" jsonschema:"Replace language assignments"`
	AutoCloseLanguages *bool                `json:"autoCloseLanguages,omitempty" jsonschema:"Close a language once all its items are done"`
	AutoCloseTask      *bool                `json:"autoCloseTask,omitempty" jsonschema:"Close the task once all languages are done"`
	AutoCloseItems     *bool                `json:"autoCloseItems,omitempty" jsonschema:"Mark items done when a translation is saved"`
	CloseTask          *bool                `json:"closeTask,omitempty" jsonschema:"Close the task now"`
	DoLockTranslations *bool                `json:"doLockTranslations,omitempty" jsonschema:"Lock translations for non-assignees"`
	ClosingTags        []string             `json:"closingTags,omitempty" jsonschema:"Tags added to keys when the task closes"`
}

// Validate checks the identifiers and that something changes.
func (a *UpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.ID("taskId", a.TaskID); err != nil {
		return err
	}
	if a.isZero() {
		return apperr.Validation("nothing to update: pass at least one field")
	}
	if err := validLanguages(a.Languages); err != nil {
		return err
	}
	return validDueDate(a.DueDate)
}

func (a UpdateArgs) isZero() bool {
	return a.Title == "" && a.Description == "" && a.DueDate == "" && len(a.Languages) == 0 &&
		a.AutoCloseLanguages == nil && a.AutoCloseTask == nil && a.AutoCloseItems == nil &&
		a.CloseTask == nil && a.DoLockTranslations == nil && len(a.ClosingTags) == 0
}

func (a UpdateArgs) request() *api.UpdateTaskRequest {
	return &api.UpdateTaskRequest{
		Title:              a.Title,
		Description:        a.Description,
		DueDate:            a.DueDate,
		Languages:          assignments(a.Languages),
		AutoCloseLanguages: a.AutoCloseLanguages,
		AutoCloseTask:      a.AutoCloseTask,
		AutoCloseItems:     a.AutoCloseItems,
		CloseTask:          a.CloseTask,
		ClosingTags:        a.ClosingTags,
		DoLockTranslations: a.DoLockTranslations,
	}
}
