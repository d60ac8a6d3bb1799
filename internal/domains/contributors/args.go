package contributors

import (
	"net/mail"
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// adminRights are the permissions an admin contributor can hold.
var adminRights = []string{"upload", "activity", "download", "settings", "statistics", "keys", "screenshots", "contributors", "languages", "tasks"}

// ListArgs are the arguments of list-contributors.
type ListArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"Number of contributors to return (1-500, default 100)"`
	Page      *int   `json:"page,omitempty" jsonschema:"Page number, starting at 1"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	var err error
	a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit)
	return err
}

// GetArgs identify one contributor.
type GetArgs struct {
	ProjectID     string `json:"projectId" jsonschema:"Project ID"`
	ContributorID int64  `json:"contributorId" jsonschema:"Contributor user ID"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.ID("contributorId", a.ContributorID)
}

// CurrentArgs are the arguments of get-current-contributor.
type CurrentArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
}

// Validate checks the project ID.
func (a *CurrentArgs) Validate() error {
	return domain.ProjectID(a.ProjectID)
}

// LanguageAccess grants access to one language.
type LanguageAccess struct {
	LangISO    string `json:"langIso" jsonschema:"Language code"`
	IsWritable bool   `json:"isWritable,omitempty" jsonschema:"Whether the contributor can edit this language"`
}

// Permissions are the shared fields of add and update.
type Permissions struct {
	Fullname    string           `json:"fullname,omitempty" jsonschema:"Display name"`
	IsAdmin     *bool            `json:"isAdmin,omitempty" jsonschema:"Project admin"`
	IsReviewer  *bool            `json:"isReviewer,omitempty" jsonschema:"Can mark translations reviewed"`
	Languages   []LanguageAccess `json:"languages,omitempty" jsonschema:"Language access; ignored for admins"`
	AdminRights []string         `json:"adminRights,omitempty" jsonschema:"Admin rights: upload, activity, download, settings, statistics, keys, screenshots, contributors, languages, tasks"`
}

func (p Permissions) validate(prefix string) error {
	for i, l := range p.Languages {
		if strings.TrimSpace(l.LangISO) == "" {
			return apperr.Validation("%slanguages[%d].langIso is required", prefix, i)
		}
	}
	for _, r := range p.AdminRights {
		if err := domain.OneOf(prefix+"adminRights", r, adminRights...); err != nil {
			return err
		}
	}
	return nil
}

func (p Permissions) isZero() bool {
	return p.Fullname == "" && p.IsAdmin == nil && p.IsReviewer == nil && len(p.Languages) == 0 && len(p.AdminRights) == 0
}

func (p Permissions) input(email string) api.ContributorInput {
	in := api.ContributorInput{
		Email:       email,
		Fullname:    p.Fullname,
		IsAdmin:     p.IsAdmin,
		IsReviewer:  p.IsReviewer,
		AdminRights: p.AdminRights,
	}
	for _, l := range p.Languages {
		in.Languages = append(in.Languages, api.ContributorLanguage{LangISO: l.LangISO, IsWritable: l.IsWritable})
	}
	return in
}

// NewContributor is one contributor to invite.
type NewContributor struct {
	Email string `json:"email" jsonschema:"Email address to invite"`
	Permissions
}

// AddArgs are the arguments of add-contributors.
type AddArgs struct {
	ProjectID    string           `json:"projectId" jsonschema:"Project ID"`
	Contributors []NewContributor `json:"contributors" jsonschema:"Contributors to invite"`
}

// Validate checks every invitation. Non-admins need at least one language.
func (a *AddArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.Count("contributors", len(a.Contributors), 1, 0); err != nil {
		return err
	}
	for i, c := range a.Contributors {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return apperr.Validation("contributors[%d].email %q is not a valid email address", i, c.Email)
		}
		admin := c.IsAdmin != nil && *c.IsAdmin
		if !admin && len(c.Languages) == 0 {
			return apperr.Validation("contributors[%d] needs at least one language unless isAdmin is true", i)
		}
		if err := c.validate(""); err != nil {
			return err
		}
	}
	return nil
}

func (a AddArgs) request() []api.ContributorInput {
	out := make([]api.ContributorInput, len(a.Contributors))
	for i, c := range a.Contributors {
		out[i] = c.input(c.Email)
	}
	return out
}

// UpdateArgs are the arguments of update-contributor.
type UpdateArgs struct {
	ProjectID     string `json:"projectId" jsonschema:"Project ID"`
	ContributorID int64  `json:"contributorId" jsonschema:"Contributor user ID"`
	Permissions
}

// Validate checks the identifiers and that something changes.
func (a *UpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.ID("contributorId", a.ContributorID); err != nil {
		return err
	}
	if a.isZero() {
		return apperr.Validation("nothing to update: pass at least one permission field")
	}
	return a.validate("")
}

func (a UpdateArgs) request() *api.ContributorInput {
	in := a.input("")
	return &in
}
