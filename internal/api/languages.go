package api

import (
	"context"
	"net/http"
	"net/url"
)

// Language is a system or project language.
type Language struct {
	LangID      int64    `json:"lang_id"`
	LangISO     string   `json:"lang_iso"`
	LangName    string   `json:"lang_name"`
	IsRTL       bool     `json:"is_rtl"`
	PluralForms []string `json:"plural_forms,omitempty"`
}

// NewLanguage is a language to add to a project.
type NewLanguage struct {
	LangISO           string   `json:"lang_iso"`
	CustomISO         string   `json:"custom_iso,omitempty"`
	CustomName        string   `json:"custom_name,omitempty"`
	CustomPluralForms []string `json:"custom_plural_forms,omitempty"`
}

// UpdateLanguageRequest changes a project language.
type UpdateLanguageRequest struct {
	LangISO     string   `json:"lang_iso,omitempty"`
	LangName    string   `json:"lang_name,omitempty"`
	PluralForms []string `json:"plural_forms,omitempty"`
}

// DeleteLanguageResponse reports a language removal.
type DeleteLanguageResponse struct {
	ProjectID       string `json:"project_id"`
	LanguageDeleted bool   `json:"language_deleted"`
}

// ListSystemLanguages lists every language Lokalise supports.
func (c *Client) ListSystemLanguages(ctx context.Context, opts PageOptions) ([]Language, Pagination, error) {
	return c.listLanguages(ctx, "system/languages", opts)
}

// ListProjectLanguages lists the languages of a project.
func (c *Client) ListProjectLanguages(ctx context.Context, projectID string, opts PageOptions) ([]Language, Pagination, error) {
	return c.listLanguages(ctx, projectPath(projectID, "languages"), opts)
}

func (c *Client) listLanguages(ctx context.Context, path string, opts PageOptions) ([]Language, Pagination, error) {
	q := url.Values{}
	opts.apply(q)
	var result struct {
		Languages []Language `json:"languages"`
	}
	page, err := c.do(ctx, http.MethodGet, path, q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.Languages, page, nil
}

// AddProjectLanguages adds languages to a project.
func (c *Client) AddProjectLanguages(ctx context.Context, projectID string, languages []NewLanguage) ([]Language, error) {
	var result struct {
		Languages []Language `json:"languages"`
	}
	body := map[string]any{"languages": languages}
	if _, err := c.do(ctx, http.MethodPost, projectPath(projectID, "languages"), nil, body, &result); err != nil {
		return nil, err
	}
	return result.Languages, nil
}

// GetLanguage retrieves one project language.
func (c *Client) GetLanguage(ctx context.Context, projectID string, languageID int64) (*Language, error) {
	var result struct {
		Language Language `json:"language"`
	}
	if _, err := c.do(ctx, http.MethodGet, projectPath(projectID, "languages", id(languageID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.Language, nil
}

// UpdateLanguage updates a project language.
func (c *Client) UpdateLanguage(ctx context.Context, projectID string, languageID int64, req *UpdateLanguageRequest) (*Language, error) {
	var result struct {
		Language Language `json:"language"`
	}
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID, "languages", id(languageID)), nil, req, &result); err != nil {
		return nil, err
	}
	return &result.Language, nil
}

// DeleteLanguage removes a language from a project.
func (c *Client) DeleteLanguage(ctx context.Context, projectID string, languageID int64) (*DeleteLanguageResponse, error) {
	var result DeleteLanguageResponse
	if _, err := c.do(ctx, http.MethodDelete, projectPath(projectID, "languages", id(languageID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
