package api

import (
	"context"
	"net/http"
	"net/url"
)

// Task is a project task.
type Task struct {
	TaskID                     int64          `json:"task_id"`
	Title                      string         `json:"title"`
	Description                string         `json:"description,omitempty"`
	Status                     string         `json:"status"`
	Progress                   int            `json:"progress"`
	DueDate                    string         `json:"due_date,omitempty"`
	KeysCount                  int            `json:"keys_count"`
	WordsCount                 int            `json:"words_count"`
	CreatedAt                  string         `json:"created_at,omitempty"`
	CreatedBy                  int64          `json:"created_by,omitempty"`
	CreatedByEmail             string         `json:"created_by_email,omitempty"`
	TaskType                   string         `json:"task_type"`
	ParentTaskID               int64          `json:"parent_task_id,omitempty"`
	ClosingTags                []string       `json:"closing_tags,omitempty"`
	DoLockTranslations         bool           `json:"do_lock_translations"`
	SourceLanguageISO          string         `json:"source_language_iso,omitempty"`
	AutoCloseLanguages         bool           `json:"auto_close_languages"`
	AutoCloseTask              bool           `json:"auto_close_task"`
	AutoCloseItems             bool           `json:"auto_close_items"`
	CompletedAt                string         `json:"completed_at,omitempty"`
	CompletedByEmail           string         `json:"completed_by_email,omitempty"`
	Languages                  []TaskLanguage `json:"languages,omitempty"`
	CustomTranslationStatusIDs []int64        `json:"custom_translation_status_ids,omitempty"`
}

// TaskLanguage is one target language of a task.
type TaskLanguage struct {
	LanguageISO      string      `json:"language_iso"`
	Users            []TaskUser  `json:"users,omitempty"`
	Groups           []TaskGroup `json:"groups,omitempty"`
	Keys             []int64     `json:"keys,omitempty"`
	Status           string      `json:"status,omitempty"`
	Progress         int         `json:"progress,omitempty"`
	KeysCount        int         `json:"keys_count,omitempty"`
	WordsCount       int         `json:"words_count,omitempty"`
	CompletedAt      string      `json:"completed_at,omitempty"`
	CompletedByEmail string      `json:"completed_by_email,omitempty"`
}

// TaskUser is a task assignee.
type TaskUser struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email,omitempty"`
	Fullname string `json:"fullname,omitempty"`
}

// TaskGroup is a group assigned to a task language.
type TaskGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// ListTasksParams filters the task list.
type ListTasksParams struct {
	PageOptions
	FilterTitle    string
	FilterStatuses []string
}

// TaskLanguageAssignment assigns users or groups to a language in a new
// task.
type TaskLanguageAssignment struct {
	LanguageISO string  `json:"language_iso"`
	Users       []int64 `json:"users,omitempty"`
	Groups      []int64 `json:"groups,omitempty"`
}

// CreateTaskRequest is the body for creating a task.
type CreateTaskRequest struct {
	Title                      string                   `json:"title"`
	Description                string                   `json:"description,omitempty"`
	DueDate                    string                   `json:"due_date,omitempty"`
	Keys                       []int64                  `json:"keys,omitempty"`
	Languages                  []TaskLanguageAssignment `json:"languages"`
	SourceLanguageISO          string                   `json:"source_language_iso,omitempty"`
	AutoCloseLanguages         *bool                    `json:"auto_close_languages,omitempty"`
	AutoCloseTask              *bool                    `json:"auto_close_task,omitempty"`
	AutoCloseItems             *bool                    `json:"auto_close_items,omitempty"`
	InitialTMLeverage          *bool                    `json:"initial_tm_leverage,omitempty"`
	TaskType                   string                   `json:"task_type,omitempty"`
	ParentTaskID               int64                    `json:"parent_task_id,omitempty"`
	ClosingTags                []string                 `json:"closing_tags,omitempty"`
	DoLockTranslations         *bool                    `json:"do_lock_translations,omitempty"`
	CustomTranslationStatusIDs []int64                  `json:"custom_translation_status_ids,omitempty"`
}

// UpdateTaskRequest is the body for updating a task.
type UpdateTaskRequest struct {
	Title              string                   `json:"title,omitempty"`
	Description        string                   `json:"description,omitempty"`
	DueDate            string                   `json:"due_date,omitempty"`
	Languages          []TaskLanguageAssignment `json:"languages,omitempty"`
	AutoCloseLanguages *bool                    `json:"auto_close_languages,omitempty"`
	AutoCloseTask      *bool                    `json:"auto_close_task,omitempty"`
	AutoCloseItems     *bool                    `json:"auto_close_items,omitempty"`
	CloseTask          *bool                    `json:"close_task,omitempty"`
	ClosingTags        []string                 `json:"closing_tags,omitempty"`
	DoLockTranslations *bool                    `json:"do_lock_translations,omitempty"`
}

// DeleteTaskResponse reports a task deletion.
type DeleteTaskResponse struct {
	ProjectID   string `json:"project_id"`
	TaskDeleted bool   `json:"task_deleted"`
}

// ListTasks lists a project's tasks.
func (c *Client) ListTasks(ctx context.Context, projectID string, params ListTasksParams) ([]Task, Pagination, error) {
	q := url.Values{}
	params.PageOptions.apply(q)
	setString(q, "filter_title", params.FilterTitle)
	setList(q, "filter_statuses", params.FilterStatuses)

	var result struct {
		Tasks []Task `json:"tasks"`
	}
	page, err := c.do(ctx, http.MethodGet, projectPath(projectID, "tasks"), q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.Tasks, page, nil
}

// GetTask retrieves a task by ID.
func (c *Client) GetTask(ctx context.Context, projectID string, taskID int64) (*Task, error) {
	var result struct {
		Task Task `json:"task"`
	}
	if _, err := c.do(ctx, http.MethodGet, projectPath(projectID, "tasks", id(taskID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.Task, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, projectID string, req *CreateTaskRequest) (*Task, error) {
	var result struct {
		Task Task `json:"task"`
	}
	if _, err := c.do(ctx, http.MethodPost, projectPath(projectID, "tasks"), nil, req, &result); err != nil {
		return nil, err
	}
	return &result.Task, nil
}

// UpdateTask updates a task.
func (c *Client) UpdateTask(ctx context.Context, projectID string, taskID int64, req *UpdateTaskRequest) (*Task, error) {
	var result struct {
		Task Task `json:"task"`
	}
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID, "tasks", id(taskID)), nil, req, &result); err != nil {
		return nil, err
	}
	return &result.Task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, projectID string, taskID int64) (*DeleteTaskResponse, error) {
	var result DeleteTaskResponse
	if _, err := c.do(ctx, http.MethodDelete, projectPath(projectID, "tasks", id(taskID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
