package translations

import (
	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// MaxBulk is the largest batch bulk-update-translations accepts.
const MaxBulk = 100

var qaIssues = []string{
	"spelling_and_grammar", "placeholders", "html", "url_count", "url",
	"email_count", "email", "brackets", "numbers", "leading_whitespace",
	"trailing_whitespace", "double_space", "special_placeholder", "unbalanced_brackets",
}

// ListArgs are the arguments of list-translations.
type ListArgs struct {
	ProjectID          string   `json:"projectId" jsonschema:"Project ID"`
	Limit              *int     `json:"limit,omitempty" jsonschema:"Number of translations to return (1-5000, default 100)"`
	Page               *int     `json:"page,omitempty" jsonschema:"Page number for offset pagination"`
	Cursor             string   `json:"cursor,omitempty" jsonschema:"Cursor from a previous page"`
	UseCursor          bool     `json:"useCursor,omitempty" jsonschema:"Start cursor pagination; the result carries the next cursor"`
	DisableReferences  bool     `json:"disableReferences,omitempty" jsonschema:"Return key references literally instead of resolving them"`
	FilterLangID       int64    `json:"filterLangId,omitempty" jsonschema:"Only translations in this language (numeric language ID)"`
	FilterIsReviewed   *bool    `json:"filterIsReviewed,omitempty" jsonschema:"Only reviewed or only unreviewed translations"`
	FilterUnverified   *bool    `json:"filterUnverified,omitempty" jsonschema:"Only unverified or only verified translations"`
	FilterUntranslated *bool    `json:"filterUntranslated,omitempty" jsonschema:"Only empty or only filled translations"`
	FilterQAIssues     []string `json:"filterQaIssues,omitempty" jsonschema:"Only translations with these QA issues, e.g. placeholders, html, spelling_and_grammar"`
	FilterActiveTaskID int64    `json:"filterActiveTaskId,omitempty" jsonschema:"Only translations in this active task"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	var err error
	if a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxKeyLimit); err != nil {
		return err
	}
	for _, q := range a.FilterQAIssues {
		if err := domain.OneOf("filterQaIssues", q, qaIssues...); err != nil {
			return err
		}
	}
	return nil
}

func (a ListArgs) params() api.ListTranslationsParams {
	return api.ListTranslationsParams{
		PageOptions:        api.PageOptions{Limit: a.limit, Page: a.page, Cursor: a.Cursor, UseCursor: a.UseCursor},
		DisableReferences:  a.DisableReferences,
		FilterLangID:       a.FilterLangID,
		FilterIsReviewed:   a.FilterIsReviewed,
		FilterUnverified:   a.FilterUnverified,
		FilterUntranslated: a.FilterUntranslated,
		FilterQAIssues:     a.FilterQAIssues,
		FilterActiveTaskID: a.FilterActiveTaskID,
	}
}

// GetArgs identify one translation.
type GetArgs struct {
	ProjectID     string `json:"projectId" jsonschema:"Project ID"`
	TranslationID int64  `json:"translationId" jsonschema:"Translation ID"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.ID("translationId", a.TranslationID)
}

// TranslationData is a sparse change to one translation.
type TranslationData struct {
	Translation                *string `json:"translation,omitempty" jsonschema:"New text; plural forms as a JSON object string"`
	IsUnverified               *bool   `json:"isUnverified,omitempty" jsonschema:"Mark as unverified (fuzzy)"`
	IsReviewed                 *bool   `json:"isReviewed,omitempty" jsonschema:"Mark as reviewed"`
	CustomTranslationStatusIDs []int64 `json:"customTranslationStatusIds,omitempty" jsonschema:"Custom translation status IDs to assign"`
}

// IsZero reports whether d changes nothing.
func (d TranslationData) IsZero() bool {
	return d.Translation == nil && d.IsUnverified == nil && d.IsReviewed == nil && len(d.CustomTranslationStatusIDs) == 0
}

func (d TranslationData) request() api.UpdateTranslationRequest {
	return api.UpdateTranslationRequest{
		Translation:                d.Translation,
		IsUnverified:               d.IsUnverified,
		IsReviewed:                 d.IsReviewed,
		CustomTranslationStatusIDs: d.CustomTranslationStatusIDs,
	}
}

// UpdateArgs are the arguments of update-translation.
type UpdateArgs struct {
	ProjectID     string          `json:"projectId" jsonschema:"Project ID"`
	TranslationID int64           `json:"translationId" jsonschema:"Translation ID"`
	Data          TranslationData `json:"translationData" jsonschema:"Fields to change"`
}

// Validate checks the identifiers and that something changes.
func (a *UpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.ID("translationId", a.TranslationID); err != nil {
		return err
	}
	if a.Data.IsZero() {
		return apperr.Validation("translationData must change at least one field")
	}
	return nil
}

// Item is one entry of a bulk update.
type Item struct {
	TranslationID int64           `json:"translationId" jsonschema:"Translation ID"`
	Data          TranslationData `json:"translationData" jsonschema:"Fields to change"`
}

// BulkUpdateArgs are the arguments of bulk-update-translations.
type BulkUpdateArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	Updates   []Item `json:"updates" jsonschema:"Translations to update (1-100), applied one after another"`
}

// Validate checks the batch size and every entry.
func (a *BulkUpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.Count("updates", len(a.Updates), 1, MaxBulk); err != nil {
		return err
	}
	for i, u := range a.Updates {
		if u.TranslationID <= 0 {
			return apperr.Validation("updates[%d].translationId must be a positive integer", i)
		}
		if u.Data.IsZero() {
			return apperr.Validation("updates[%d].translationData must change at least one field", i)
		}
	}
	return nil
}
