package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

// GlossaryTerm is a project glossary entry. The glossary endpoints use
// camelCase field names, unlike the rest of the API.
type GlossaryTerm struct {
	ID            int64                     `json:"id"`
	ProjectID     string                    `json:"projectId,omitempty"`
	Term          string                    `json:"term"`
	Description   string                    `json:"description,omitempty"`
	CaseSensitive bool                      `json:"caseSensitive"`
	Translatable  bool                      `json:"translatable"`
	Forbidden     bool                      `json:"forbidden"`
	Translations  []GlossaryTermTranslation `json:"translations,omitempty"`
	Tags          []string                  `json:"tags,omitempty"`
	CreatedAt     string                    `json:"createdAt,omitempty"`
	UpdatedAt     string                    `json:"updatedAt,omitempty"`
}

// GlossaryTermTranslation is a term's translation into one language.
type GlossaryTermTranslation struct {
	LangID      int64  `json:"langId"`
	LangName    string `json:"langName,omitempty"`
	LangISO     string `json:"langIso,omitempty"`
	Translation string `json:"translation"`
	Description string `json:"description,omitempty"`
}

// GlossaryTermInput creates or, with ID set, updates a term.
type GlossaryTermInput struct {
	ID            int64                     `json:"id,omitempty"`
	Term          string                    `json:"term,omitempty"`
	Description   string                    `json:"description,omitempty"`
	CaseSensitive *bool                     `json:"caseSensitive,omitempty"`
	Translatable  *bool                     `json:"translatable,omitempty"`
	Forbidden     *bool                     `json:"forbidden,omitempty"`
	Translations  []GlossaryTermTranslation `json:"translations,omitempty"`
	Tags          []string                  `json:"tags,omitempty"`
}

// DeleteGlossaryTermsResponse reports a bulk term deletion.
type DeleteGlossaryTermsResponse struct {
	DeletedCount int
	DeletedIDs   []int64
	Failed       []GlossaryDeleteFailure
}

// GlossaryDeleteFailure is one term that could not be deleted.
type GlossaryDeleteFailure struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ListGlossaryTerms lists glossary terms with cursor pagination.
//
// Parameters:
//   - ctx: Context for cancellation
//   - projectID: The project ID
//   - limit: Page size; 0 uses the API default
//   - cursor: Continuation token from a previous page, or empty
//
// Returns:
//   - []GlossaryTerm: The page of terms
//   - Pagination: Paging state, NextCursor set when more terms exist
//   - error: Any error that occurred
func (c *Client) ListGlossaryTerms(ctx context.Context, projectID string, limit int, cursor string) ([]GlossaryTerm, Pagination, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", id(int64(limit)))
	}
	setString(q, "cursor", cursor)

	var raw json.RawMessage
	page, err := c.do(ctx, http.MethodGet, projectPath(projectID, "glossary-terms"), q, nil, &raw)
	if err != nil {
		return nil, page, err
	}

	var result struct {
		Data []GlossaryTerm `json:"data"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, page, err
	}
	if page.NextCursor == "" {
		page.NextCursor = gjson.GetBytes(raw, "meta.nextCursor").String()
	}
	if page.Limit == 0 {
		page.Limit = int(gjson.GetBytes(raw, "meta.limit").Int())
	}
	return result.Data, page, nil
}

// GetGlossaryTerm retrieves one term.
func (c *Client) GetGlossaryTerm(ctx context.Context, projectID string, termID int64) (*GlossaryTerm, error) {
	var result struct {
		Data GlossaryTerm `json:"data"`
	}
	if _, err := c.do(ctx, http.MethodGet, projectPath(projectID, "glossary-terms", id(termID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// CreateGlossaryTerms creates terms in bulk.
func (c *Client) CreateGlossaryTerms(ctx context.Context, projectID string, terms []GlossaryTermInput) ([]GlossaryTerm, error) {
	var result struct {
		Data []GlossaryTerm `json:"data"`
	}
	body := map[string]any{"terms": terms}
	if _, err := c.do(ctx, http.MethodPost, projectPath(projectID, "glossary-terms"), nil, body, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// UpdateGlossaryTerms updates terms in bulk. Each input must carry its ID.
func (c *Client) UpdateGlossaryTerms(ctx context.Context, projectID string, terms []GlossaryTermInput) ([]GlossaryTerm, error) {
	var result struct {
		Data []GlossaryTerm `json:"data"`
	}
	body := map[string]any{"terms": terms}
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID, "glossary-terms"), nil, body, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// DeleteGlossaryTerms deletes terms in bulk.
func (c *Client) DeleteGlossaryTerms(ctx context.Context, projectID string, termIDs []int64) (*DeleteGlossaryTermsResponse, error) {
	var raw json.RawMessage
	body := map[string]any{"terms": termIDs}
	if _, err := c.do(ctx, http.MethodDelete, projectPath(projectID, "glossary-terms"), nil, body, &raw); err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(raw)
	out := &DeleteGlossaryTermsResponse{
		DeletedCount: int(parsed.Get("data.deleted.count").Int()),
	}
	for _, v := range parsed.Get("data.deleted.ids").Array() {
		out.DeletedIDs = append(out.DeletedIDs, v.Int())
	}
	for _, v := range parsed.Get("data.failed").Array() {
		out.Failed = append(out.Failed, GlossaryDeleteFailure{
			ID:      v.Get("id").Int(),
			Message: v.Get("message").String(),
		})
	}
	if out.DeletedCount == 0 {
		out.DeletedCount = len(out.DeletedIDs)
	}
	return out, nil
}
