package teamusers

import (
	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

var roles = []string{api.RoleOwner, api.RoleAdmin, api.RoleMember, api.RoleBiller}

// ListArgs are the arguments of list-team-users.
type ListArgs struct {
	TeamID int64 `json:"teamId" jsonschema:"Numeric team ID"`
	Limit  *int  `json:"limit,omitempty" jsonschema:"Number of users to return (1-500, default 100)"`
	Page   *int  `json:"page,omitempty" jsonschema:"Page number, starting at 1"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ListArgs) Validate() error {
	if err := domain.ID("teamId", a.TeamID); err != nil {
		return err
	}
	var err error
	a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit)
	return err
}

// GetArgs identify one team user.
type GetArgs struct {
	TeamID int64 `json:"teamId" jsonschema:"Numeric team ID"`
	UserID int64 `json:"userId" jsonschema:"Numeric user ID"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ID("teamId", a.TeamID); err != nil {
		return err
	}
	return domain.ID("userId", a.UserID)
}

// UpdateArgs are the arguments of update-team-user.
type UpdateArgs struct {
	TeamID int64  `json:"teamId" jsonschema:"Numeric team ID"`
	UserID int64  `json:"userId" jsonschema:"Numeric user ID"`
	Role   string `json:"role" jsonschema:"New role: owner, admin, member or biller"`
}

// Validate checks the identifiers and role.
func (a *UpdateArgs) Validate() error {
	if err := domain.ID("teamId", a.TeamID); err != nil {
		return err
	}
	if err := domain.ID("userId", a.UserID); err != nil {
		return err
	}
	if a.Role == "" {
		return apperr.Validation("role is required")
	}
	return domain.OneOf("role", a.Role, roles...)
}
