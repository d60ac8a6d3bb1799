package api

import (
	"context"
	"net/http"
	"net/url"
)

// Project is a Lokalise project.
type Project struct {
	ProjectID       string             `json:"project_id"`
	ProjectType     string             `json:"project_type,omitempty"`
	Name            string             `json:"name"`
	Description     string             `json:"description,omitempty"`
	CreatedAt       string             `json:"created_at,omitempty"`
	CreatedBy       int64              `json:"created_by,omitempty"`
	CreatedByEmail  string             `json:"created_by_email,omitempty"`
	TeamID          int64              `json:"team_id,omitempty"`
	BaseLanguageID  int64              `json:"base_language_id,omitempty"`
	BaseLanguageISO string             `json:"base_language_iso,omitempty"`
	Settings        map[string]any     `json:"settings,omitempty"`
	Statistics      *ProjectStatistics `json:"statistics,omitempty"`
}

// ProjectStatistics is the statistics block returned with include_statistics.
type ProjectStatistics struct {
	ProgressTotal int                  `json:"progress_total"`
	Keys          int                  `json:"keys_total"`
	Team          int                  `json:"team"`
	BaseWords     int                  `json:"base_words"`
	QAIssuesTotal int                  `json:"qa_issues_total"`
	Languages     []LanguageStatistics `json:"languages,omitempty"`
}

// LanguageStatistics is per-language progress within a project.
type LanguageStatistics struct {
	LanguageID  int64  `json:"language_id"`
	LanguageISO string `json:"language_iso"`
	Progress    int    `json:"progress"`
	WordsToDo   int    `json:"words_to_do"`
}

// ListProjectsParams filters the project list.
type ListProjectsParams struct {
	PageOptions
	FilterTeamID      int64
	FilterNames       []string
	IncludeStatistics *bool
	IncludeSettings   *bool
}

// CreateProjectRequest is the body for creating a project.
type CreateProjectRequest struct {
	Name           string            `json:"name"`
	TeamID         int64             `json:"team_id,omitempty"`
	Description    string            `json:"description,omitempty"`
	Languages      []ProjectLanguage `json:"languages,omitempty"`
	BaseLangISO    string            `json:"base_lang_iso,omitempty"`
	ProjectType    string            `json:"project_type,omitempty"`
	IsSegmentation *bool             `json:"is_segmentation_enabled,omitempty"`
}

// ProjectLanguage is a language entry in a project create request.
type ProjectLanguage struct {
	LangISO    string `json:"lang_iso"`
	CustomISO  string `json:"custom_iso,omitempty"`
	CustomName string `json:"custom_name,omitempty"`
}

// UpdateProjectRequest is the body for updating a project.
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DeleteProjectResponse reports a project deletion.
type DeleteProjectResponse struct {
	ProjectID      string `json:"project_id"`
	ProjectDeleted bool   `json:"project_deleted"`
}

// EmptyProjectResponse reports a project being emptied.
type EmptyProjectResponse struct {
	ProjectID   string `json:"project_id"`
	KeysDeleted bool   `json:"keys_deleted"`
}

// ListProjects lists the projects the token can access.
//
// Parameters:
//   - ctx: Context for cancellation
//   - params: Filters and paging
//
// Returns:
//   - []Project: The page of projects
//   - Pagination: Paging state from the response headers
//   - error: Any error that occurred
func (c *Client) ListProjects(ctx context.Context, params ListProjectsParams) ([]Project, Pagination, error) {
	q := url.Values{}
	params.PageOptions.apply(q)
	setInt(q, "filter_team_id", params.FilterTeamID)
	setList(q, "filter_names", params.FilterNames)
	setBool(q, "include_statistics", params.IncludeStatistics)
	setBool(q, "include_settings", params.IncludeSettings)

	var result struct {
		Projects []Project `json:"projects"`
	}
	page, err := c.do(ctx, http.MethodGet, "projects", q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.Projects, page, nil
}

// GetProject retrieves a project by ID.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var result Project
	if _, err := c.do(ctx, http.MethodGet, projectPath(projectID), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	var result Project
	if _, err := c.do(ctx, http.MethodPost, "projects", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProject updates a project's name and description.
func (c *Client) UpdateProject(ctx context.Context, projectID string, req *UpdateProjectRequest) (*Project, error) {
	var result Project
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID), nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) (*DeleteProjectResponse, error) {
	var result DeleteProjectResponse
	if _, err := c.do(ctx, http.MethodDelete, projectPath(projectID), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EmptyProject deletes every key in a project, keeping the project itself.
func (c *Client) EmptyProject(ctx context.Context, projectID string) (*EmptyProjectResponse, error) {
	var result EmptyProjectResponse
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID, "empty"), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
