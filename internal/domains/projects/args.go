package projects

import (
	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Project types accepted by the create call.
var projectTypes = []string{"localization_files", "paged_documents", "marketing", "content_integration"}

// ListArgs are the arguments of list-projects.
type ListArgs struct {
	Limit             *int     `json:"limit,omitempty" jsonschema:"Number of projects to return (1-500, default 100)"`
	Page              *int     `json:"page,omitempty" jsonschema:"Page number, starting at 1"`
	FilterTeamID      int64    `json:"filterTeamId,omitempty" jsonschema:"Only list projects of this team"`
	FilterNames       []string `json:"filterNames,omitempty" jsonschema:"Only list projects with one of these names"`
	IncludeStatistics *bool    `json:"includeStatistics,omitempty" jsonschema:"Include progress statistics (default true)"`
	IncludeSettings   *bool    `json:"includeSettings,omitempty" jsonschema:"Include project settings"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ListArgs) Validate() error {
	var err error
	a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit)
	return err
}

func (a ListArgs) params() api.ListProjectsParams {
	stats := a.IncludeStatistics
	if stats == nil {
		yes := true
		stats = &yes
	}
	return api.ListProjectsParams{
		PageOptions:       api.PageOptions{Limit: a.limit, Page: a.page},
		FilterTeamID:      a.FilterTeamID,
		FilterNames:       a.FilterNames,
		IncludeStatistics: stats,
		IncludeSettings:   a.IncludeSettings,
	}
}

// GetArgs identify one project.
type GetArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
}

// Validate checks the project ID.
func (a *GetArgs) Validate() error {
	return domain.ProjectID(a.ProjectID)
}

// LanguageArgs describe a language added at project creation.
type LanguageArgs struct {
	LangISO    string `json:"langIso" jsonschema:"Language code, e.g. fr or pt_BR"`
	CustomISO  string `json:"customIso,omitempty" jsonschema:"Override the language code"`
	CustomName string `json:"customName,omitempty" jsonschema:"Override the language name"`
}

// CreateArgs are the arguments of create-project.
type CreateArgs struct {
	Name        string         `json:"name" jsonschema:"Project name"`
	Description string         `json:"description,omitempty" jsonschema:"Project description"`
	TeamID      int64          `json:"teamId,omitempty" jsonschema:"Team to create the project in (defaults to the token's team)"`
	BaseLangISO string         `json:"baseLangIso,omitempty" jsonschema:"Base language code (default en)"`
	Languages   []LanguageArgs `json:"languages,omitempty" jsonschema:"Languages to add; the base language is added automatically"`
	ProjectType string         `json:"projectType,omitempty" jsonschema:"One of localization_files, paged_documents, marketing, content_integration"`
}

// Validate checks required fields.
func (a *CreateArgs) Validate() error {
	if err := domain.Required("name", a.Name); err != nil {
		return err
	}
	for _, l := range a.Languages {
		if err := domain.Required("languages[].langIso", l.LangISO); err != nil {
			return err
		}
	}
	return domain.OneOf("projectType", a.ProjectType, projectTypes...)
}

func (a CreateArgs) request() *api.CreateProjectRequest {
	req := &api.CreateProjectRequest{
		Name:        a.Name,
		Description: a.Description,
		TeamID:      a.TeamID,
		BaseLangISO: a.BaseLangISO,
		ProjectType: a.ProjectType,
	}
	for _, l := range a.Languages {
		req.Languages = append(req.Languages, api.ProjectLanguage{
			LangISO:    l.LangISO,
			CustomISO:  l.CustomISO,
			CustomName: l.CustomName,
		})
	}
	return req
}

// UpdateArgs are the arguments of update-project.
type UpdateArgs struct {
	ProjectID   string `json:"projectId" jsonschema:"Project ID"`
	Name        string `json:"name" jsonschema:"New project name"`
	Description string `json:"description,omitempty" jsonschema:"New project description"`
}

// Validate checks required fields.
func (a *UpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.Required("name", a.Name)
}

func (a UpdateArgs) request() *api.UpdateProjectRequest {
	return &api.UpdateProjectRequest{Name: a.Name, Description: a.Description}
}
