package glossary

import (
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// MaxTerms bounds one create, update or delete batch.
const MaxTerms = 1000

// ListArgs are the arguments of list-glossary-terms.
type ListArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"Number of terms to return (1-500, default 100)"`
	Cursor    string `json:"cursor,omitempty" jsonschema:"Cursor from a previous page"`

	limit int
}

// Validate checks ranges and fills defaults.
func (a *ListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	var err error
	a.limit, err = domain.Limit(a.Limit, domain.MaxLimit)
	return err
}

// GetArgs identify one term.
type GetArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	TermID    int64  `json:"termId" jsonschema:"Glossary term ID"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.ID("termId", a.TermID)
}

// TermTranslation is a term's translation into one language.
type TermTranslation struct {
	LangID      int64  `json:"langId" jsonschema:"Numeric language ID"`
	Translation string `json:"translation" jsonschema:"Translated term"`
	Description string `json:"description,omitempty" jsonschema:"Usage note for this language"`
}

// TermInput describes a term to create or update.
type TermInput struct {
	ID            int64             `json:"id,omitempty" jsonschema:"Term ID, required for updates"`
	Term          string            `json:"term,omitempty" jsonschema:"The term, required for creates"`
	Description   string            `json:"description,omitempty" jsonschema:"What the term means"`
	CaseSensitive *bool             `json:"caseSensitive,omitempty" jsonschema:"Match case when checking translations"`
	Translatable  *bool             `json:"translatable,omitempty" jsonschema:"False for brand names that must stay as-is"`
	Forbidden     *bool             `json:"forbidden,omitempty" jsonschema:"Flag translations that use this term"`
	Translations  []TermTranslation `json:"translations,omitempty" jsonschema:"Approved translations per language"`
	Tags          []string          `json:"tags,omitempty" jsonschema:"Tags"`
}

func (t TermInput) changes() bool {
	return t.Term != "" || t.Description != "" || t.CaseSensitive != nil || t.Translatable != nil ||
		t.Forbidden != nil || len(t.Translations) > 0 || len(t.Tags) > 0
}

func (t TermInput) request() api.GlossaryTermInput {
	var trs []api.GlossaryTermTranslation
	for _, tr := range t.Translations {
		trs = append(trs, api.GlossaryTermTranslation{LangID: tr.LangID, Translation: tr.Translation, Description: tr.Description})
	}
	return api.GlossaryTermInput{
		ID:            t.ID,
		Term:          t.Term,
		Description:   t.Description,
		CaseSensitive: t.CaseSensitive,
		Translatable:  t.Translatable,
		Forbidden:     t.Forbidden,
		Translations:  trs,
		Tags:          t.Tags,
	}
}

func requests(terms []TermInput) []api.GlossaryTermInput {
	out := make([]api.GlossaryTermInput, len(terms))
	for i, t := range terms {
		out[i] = t.request()
	}
	return out
}

func validTranslations(i int, trs []TermTranslation) error {
	for j, tr := range trs {
		if tr.LangID <= 0 {
			return apperr.Validation("terms[%d].translations[%d].langId must be a positive integer", i, j)
		}
	}
	return nil
}

// CreateArgs are the arguments of create-glossary-terms.
type CreateArgs struct {
	ProjectID string      `json:"projectId" jsonschema:"Project ID"`
	Terms     []TermInput `json:"terms" jsonschema:"Terms to create"`
}

// Validate checks that every term has text.
func (a *CreateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.Count("terms", len(a.Terms), 1, MaxTerms); err != nil {
		return err
	}
	for i, t := range a.Terms {
		if strings.TrimSpace(t.Term) == "" {
			return apperr.Validation("terms[%d].term is required", i)
		}
		if t.ID != 0 {
			return apperr.Validation("terms[%d].id must not be set when creating", i)
		}
		if err := validTranslations(i, t.Translations); err != nil {
			return err
		}
	}
	return nil
}

// UpdateArgs are the arguments of update-glossary-terms.
type UpdateArgs struct {
	ProjectID string      `json:"projectId" jsonschema:"Project ID"`
	Terms     []TermInput `json:"terms" jsonschema:"Terms to update, each with its id"`
}

// Validate checks that every term names an ID and a change.
func (a *UpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.Count("terms", len(a.Terms), 1, MaxTerms); err != nil {
		return err
	}
	for i, t := range a.Terms {
		if t.ID <= 0 {
			return apperr.Validation("terms[%d].id must be a positive integer", i)
		}
		if !t.changes() {
			return apperr.Validation("terms[%d] changes nothing", i)
		}
		if err := validTranslations(i, t.Translations); err != nil {
			return err
		}
	}
	return nil
}

// DeleteArgs are the arguments of delete-glossary-terms.
type DeleteArgs struct {
	ProjectID string  `json:"projectId" jsonschema:"Project ID"`
	TermIDs   []int64 `json:"termIds" jsonschema:"Term IDs to delete"`
}

// Validate checks the IDs.
func (a *DeleteArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.IDs("termIds", a.TermIDs, 1, MaxTerms)
}
