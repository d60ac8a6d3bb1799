package usergroups

import (
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

var adminRights = []string{"upload", "activity", "download", "settings", "statistics", "keys", "screenshots", "contributors", "languages", "tasks"}

// ListArgs are the arguments of list-usergroups.
type ListArgs struct {
	TeamID int64 `json:"teamId" jsonschema:"Numeric team ID"`
	Limit  *int  `json:"limit,omitempty" jsonschema:"Number of groups to return (1-500, default 100)"`
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

// GetArgs identify one group.
type GetArgs struct {
	TeamID  int64 `json:"teamId" jsonschema:"Numeric team ID"`
	GroupID int64 `json:"groupId" jsonschema:"Numeric group ID"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ID("teamId", a.TeamID); err != nil {
		return err
	}
	return domain.ID("groupId", a.GroupID)
}

// GroupData is the body of create and update. Lokalise replaces the whole
// permission set on update, so every field is sent.
type GroupData struct {
	Name                   string   `json:"name" jsonschema:"Group name"`
	IsReviewer             bool     `json:"isReviewer,omitempty" jsonschema:"Members can mark translations reviewed"`
	IsAdmin                bool     `json:"isAdmin,omitempty" jsonschema:"Members are project admins"`
	AdminRights            []string `json:"adminRights,omitempty" jsonschema:"Admin rights when isAdmin is true"`
	ReferenceLanguages     []int64  `json:"referenceLanguages,omitempty" jsonschema:"Language IDs members can read"`
	ContributableLanguages []int64  `json:"contributableLanguages,omitempty" jsonschema:"Language IDs members can translate"`
}

func (g GroupData) validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return apperr.Validation("name is required")
	}
	if !g.IsAdmin && len(g.AdminRights) > 0 {
		return apperr.Validation("adminRights require isAdmin")
	}
	for _, r := range g.AdminRights {
		if err := domain.OneOf("adminRights", r, adminRights...); err != nil {
			return err
		}
	}
	if !g.IsAdmin && len(g.ContributableLanguages) == 0 {
		return apperr.Validation("contributableLanguages is required unless isAdmin is true")
	}
	if err := domain.IDs("referenceLanguages", g.ReferenceLanguages, 0, 0); err != nil {
		return err
	}
	return domain.IDs("contributableLanguages", g.ContributableLanguages, 0, 0)
}

func (g GroupData) request() *api.UserGroupInput {
	in := &api.UserGroupInput{
		Name:        g.Name,
		IsReviewer:  g.IsReviewer,
		IsAdmin:     g.IsAdmin,
		AdminRights: g.AdminRights,
	}
	if len(g.ReferenceLanguages)+len(g.ContributableLanguages) > 0 {
		in.Languages = &api.GroupLanguages{Reference: g.ReferenceLanguages, Contributable: g.ContributableLanguages}
	}
	return in
}

// CreateArgs are the arguments of create-usergroup.
type CreateArgs struct {
	TeamID int64 `json:"teamId" jsonschema:"Numeric team ID"`
	GroupData
}

// Validate checks the team and group data.
func (a *CreateArgs) Validate() error {
	if err := domain.ID("teamId", a.TeamID); err != nil {
		return err
	}
	return a.validate()
}

// UpdateArgs are the arguments of update-usergroup.
type UpdateArgs struct {
	TeamID  int64 `json:"teamId" jsonschema:"Numeric team ID"`
	GroupID int64 `json:"groupId" jsonschema:"Numeric group ID"`
	GroupData
}

// Validate checks the identifiers and group data.
func (a *UpdateArgs) Validate() error {
	if err := domain.ID("teamId", a.TeamID); err != nil {
		return err
	}
	if err := domain.ID("groupId", a.GroupID); err != nil {
		return err
	}
	return a.validate()
}

// MembersArgs add or remove group members.
type MembersArgs struct {
	TeamID  int64   `json:"teamId" jsonschema:"Numeric team ID"`
	GroupID int64   `json:"groupId" jsonschema:"Numeric group ID"`
	UserIDs []int64 `json:"userIds" jsonschema:"Team user IDs"`
}

// Validate checks the identifiers.
func (a *MembersArgs) Validate() error {
	if err := domain.ID("teamId", a.TeamID); err != nil {
		return err
	}
	if err := domain.ID("groupId", a.GroupID); err != nil {
		return err
	}
	return domain.IDs("userIds", a.UserIDs, 1, 0)
}

// ProjectsArgs add or remove group projects.
type ProjectsArgs struct {
	TeamID     int64    `json:"teamId" jsonschema:"Numeric team ID"`
	GroupID    int64    `json:"groupId" jsonschema:"Numeric group ID"`
	ProjectIDs []string `json:"projectIds" jsonschema:"Project IDs"`
}

// Validate checks the identifiers.
func (a *ProjectsArgs) Validate() error {
	if err := domain.ID("teamId", a.TeamID); err != nil {
		return err
	}
	if err := domain.ID("groupId", a.GroupID); err != nil {
		return err
	}
	if err := domain.Count("projectIds", len(a.ProjectIDs), 1, 0); err != nil {
		return err
	}
	for _, id := range a.ProjectIDs {
		if err := domain.ProjectID(id); err != nil {
			return err
		}
	}
	return nil
}
