package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tidwall/sjson"
)

// Translation is one key's text in one language.
type Translation struct {
	TranslationID             int64                     `json:"translation_id"`
	SegmentNumber             int                       `json:"segment_number,omitempty"`
	KeyID                     int64                     `json:"key_id"`
	LanguageISO               string                    `json:"language_iso"`
	Translation               string                    `json:"translation"`
	ModifiedAt                string                    `json:"modified_at,omitempty"`
	ModifiedBy                int64                     `json:"modified_by,omitempty"`
	ModifiedByEmail           string                    `json:"modified_by_email,omitempty"`
	IsReviewed                bool                      `json:"is_reviewed"`
	ReviewedBy                int64                     `json:"reviewed_by,omitempty"`
	IsUnverified              bool                      `json:"is_unverified"`
	Words                     int                       `json:"words,omitempty"`
	TaskID                    int64                     `json:"task_id,omitempty"`
	CustomTranslationStatuses []CustomTranslationStatus `json:"custom_translation_statuses,omitempty"`
}

// CustomTranslationStatus is a project-defined translation status.
type CustomTranslationStatus struct {
	StatusID int64  `json:"status_id"`
	Title    string `json:"title"`
	Color    string `json:"color,omitempty"`
}

// ListTranslationsParams filters the translation list.
type ListTranslationsParams struct {
	PageOptions
	DisableReferences  bool
	FilterLangID       int64
	FilterIsReviewed   *bool
	FilterUnverified   *bool
	FilterUntranslated *bool
	FilterQAIssues     []string
	FilterActiveTaskID int64
}

// UpdateTranslationRequest is a sparse translation update; nil fields are
// left unchanged.
type UpdateTranslationRequest struct {
	Translation                *string
	IsUnverified               *bool
	IsReviewed                 *bool
	CustomTranslationStatusIDs []int64
}

// body encodes only the fields that were set.
func (r UpdateTranslationRequest) body() ([]byte, error) {
	out := []byte(`{}`)
	var err error
	if r.Translation != nil {
		if out, err = sjson.SetBytes(out, "translation", *r.Translation); err != nil {
			return nil, err
		}
	}
	if r.IsUnverified != nil {
		if out, err = sjson.SetBytes(out, "is_unverified", *r.IsUnverified); err != nil {
			return nil, err
		}
	}
	if r.IsReviewed != nil {
		if out, err = sjson.SetBytes(out, "is_reviewed", *r.IsReviewed); err != nil {
			return nil, err
		}
	}
	if len(r.CustomTranslationStatusIDs) > 0 {
		if out, err = sjson.SetBytes(out, "custom_translation_status_ids", r.CustomTranslationStatusIDs); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ListTranslations lists translations in a project.
//
// Parameters:
//   - ctx: Context for cancellation
//   - projectID: The project ID
//   - params: Filters and paging (cursor or page)
//
// Returns:
//   - []Translation: The page of translations
//   - Pagination: Paging state, including the next cursor
//   - error: Any error that occurred
func (c *Client) ListTranslations(ctx context.Context, projectID string, params ListTranslationsParams) ([]Translation, Pagination, error) {
	q := url.Values{}
	params.PageOptions.apply(q)
	if params.DisableReferences {
		q.Set("disable_references", "1")
	}
	setInt(q, "filter_lang_id", params.FilterLangID)
	setBool(q, "filter_is_reviewed", params.FilterIsReviewed)
	setBool(q, "filter_unverified", params.FilterUnverified)
	setBool(q, "filter_untranslated", params.FilterUntranslated)
	setList(q, "filter_qa_issues", params.FilterQAIssues)
	setInt(q, "filter_active_task_id", params.FilterActiveTaskID)

	var result struct {
		Translations []Translation `json:"translations"`
	}
	page, err := c.do(ctx, http.MethodGet, projectPath(projectID, "translations"), q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.Translations, page, nil
}

// GetTranslation retrieves a translation by ID.
func (c *Client) GetTranslation(ctx context.Context, projectID string, translationID int64) (*Translation, error) {
	var result struct {
		Translation Translation `json:"translation"`
	}
	if _, err := c.do(ctx, http.MethodGet, projectPath(projectID, "translations", id(translationID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.Translation, nil
}

// UpdateTranslation applies a sparse update to a translation.
func (c *Client) UpdateTranslation(ctx context.Context, projectID string, translationID int64, req UpdateTranslationRequest) (*Translation, error) {
	body, err := req.body()
	if err != nil {
		return nil, err
	}
	var result struct {
		Translation Translation `json:"translation"`
	}
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID, "translations", id(translationID)), nil, body, &result); err != nil {
		return nil, err
	}
	return &result.Translation, nil
}
