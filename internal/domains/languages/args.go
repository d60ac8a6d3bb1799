package languages

import (
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// pluralForms are the CLDR plural categories.
var pluralForms = []string{"zero", "one", "two", "few", "many", "other"}

func validPluralForms(name string, forms []string) error {
	for _, f := range forms {
		if err := domain.OneOf(name, f, pluralForms...); err != nil {
			return err
		}
	}
	return nil
}

// SystemListArgs are the arguments of list-system-languages.
type SystemListArgs struct {
	Limit *int `json:"limit,omitempty" jsonschema:"Number of languages to return (1-500, default 100)"`
	Page  *int `json:"page,omitempty" jsonschema:"Page number, starting at 1"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *SystemListArgs) Validate() error {
	var err error
	a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit)
	return err
}

// ProjectListArgs are the arguments of list-project-languages.
type ProjectListArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"Number of languages to return (1-500, default 100)"`
	Page      *int   `json:"page,omitempty" jsonschema:"Page number, starting at 1"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ProjectListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	var err error
	a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit)
	return err
}

// NewLanguage describes a language to add.
type NewLanguage struct {
	LangISO           string   `json:"langIso" jsonschema:"Language code, e.g. fr or pt_BR"`
	CustomISO         string   `json:"customIso,omitempty" jsonschema:"Override the language code"`
	CustomName        string   `json:"customName,omitempty" jsonschema:"Override the language name"`
	CustomPluralForms []string `json:"customPluralForms,omitempty" jsonschema:"Override plural forms: zero, one, two, few, many, other"`
}

// AddArgs are the arguments of add-project-languages.
type AddArgs struct {
	ProjectID string        `json:"projectId" jsonschema:"Project ID"`
	Languages []NewLanguage `json:"languages" jsonschema:"Languages to add"`
}

// Validate checks that every language has a code.
func (a *AddArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.Count("languages", len(a.Languages), 1, 0); err != nil {
		return err
	}
	for i, l := range a.Languages {
		if strings.TrimSpace(l.LangISO) == "" {
			return apperr.Validation("languages[%d].langIso is required", i)
		}
		if err := validPluralForms("customPluralForms", l.CustomPluralForms); err != nil {
			return err
		}
	}
	return nil
}

func (a AddArgs) request() []api.NewLanguage {
	out := make([]api.NewLanguage, len(a.Languages))
	for i, l := range a.Languages {
		out[i] = api.NewLanguage{LangISO: l.LangISO, CustomISO: l.CustomISO, CustomName: l.CustomName, CustomPluralForms: l.CustomPluralForms}
	}
	return out
}

// GetArgs identify one project language.
type GetArgs struct {
	ProjectID  string `json:"projectId" jsonschema:"Project ID"`
	LanguageID int64  `json:"languageId" jsonschema:"Numeric language ID"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.ID("languageId", a.LanguageID)
}

// UpdateArgs are the arguments of update-language.
type UpdateArgs struct {
	ProjectID   string   `json:"projectId" jsonschema:"Project ID"`
	LanguageID  int64    `json:"languageId" jsonschema:"Numeric language ID"`
	LangISO     string   `json:"langIso,omitempty" jsonschema:"New language code"`
	LangName    string   `json:"langName,omitempty" jsonschema:"New language name"`
	PluralForms []string `json:"pluralForms,omitempty" jsonschema:"New plural forms: zero, one, two, few, many, other"`
}

// Validate checks the identifiers and that something changes.
func (a *UpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.ID("languageId", a.LanguageID); err != nil {
		return err
	}
	if a.LangISO == "" && a.LangName == "" && len(a.PluralForms) == 0 {
		return apperr.Validation("nothing to update: pass langIso, langName or pluralForms")
	}
	return validPluralForms("pluralForms", a.PluralForms)
}

func (a UpdateArgs) request() *api.UpdateLanguageRequest {
	return &api.UpdateLanguageRequest{LangISO: a.LangISO, LangName: a.LangName, PluralForms: a.PluralForms}
}
