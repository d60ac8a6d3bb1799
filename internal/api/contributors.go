package api

import (
	"context"
	"net/http"
	"net/url"
)

// Contributor is a project member.
type Contributor struct {
	UserID      int64                 `json:"user_id"`
	Email       string                `json:"email"`
	Fullname    string                `json:"fullname"`
	CreatedAt   string                `json:"created_at,omitempty"`
	IsAdmin     bool                  `json:"is_admin"`
	IsReviewer  bool                  `json:"is_reviewer"`
	Languages   []ContributorLanguage `json:"languages,omitempty"`
	AdminRights []string              `json:"admin_rights,omitempty"`
	RoleID      int64                 `json:"role_id,omitempty"`
}

// ContributorLanguage is a contributor's access to one language.
type ContributorLanguage struct {
	LangID     int64  `json:"lang_id,omitempty"`
	LangISO    string `json:"lang_iso"`
	LangName   string `json:"lang_name,omitempty"`
	IsWritable bool   `json:"is_writable"`
}

// ContributorInput adds or updates a contributor. Email is required when
// adding.
type ContributorInput struct {
	Email       string                `json:"email,omitempty"`
	Fullname    string                `json:"fullname,omitempty"`
	IsAdmin     *bool                 `json:"is_admin,omitempty"`
	IsReviewer  *bool                 `json:"is_reviewer,omitempty"`
	Languages   []ContributorLanguage `json:"languages,omitempty"`
	AdminRights []string              `json:"admin_rights,omitempty"`
}

// DeleteContributorResponse reports a contributor removal.
type DeleteContributorResponse struct {
	ProjectID          string `json:"project_id"`
	ContributorDeleted bool   `json:"contributor_deleted"`
}

// ListContributors lists a project's contributors.
func (c *Client) ListContributors(ctx context.Context, projectID string, opts PageOptions) ([]Contributor, Pagination, error) {
	q := url.Values{}
	opts.apply(q)
	var result struct {
		Contributors []Contributor `json:"contributors"`
	}
	page, err := c.do(ctx, http.MethodGet, projectPath(projectID, "contributors"), q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.Contributors, page, nil
}

// GetContributor retrieves a contributor by user ID.
func (c *Client) GetContributor(ctx context.Context, projectID string, userID int64) (*Contributor, error) {
	return c.getContributor(ctx, projectPath(projectID, "contributors", id(userID)))
}

// GetCurrentContributor retrieves the contributor the API token belongs to.
func (c *Client) GetCurrentContributor(ctx context.Context, projectID string) (*Contributor, error) {
	return c.getContributor(ctx, projectPath(projectID, "contributors", "me"))
}

func (c *Client) getContributor(ctx context.Context, path string) (*Contributor, error) {
	var result struct {
		Contributor Contributor `json:"contributor"`
	}
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.Contributor, nil
}

// AddContributors adds contributors to a project.
func (c *Client) AddContributors(ctx context.Context, projectID string, contributors []ContributorInput) ([]Contributor, error) {
	var result struct {
		Contributors []Contributor `json:"contributors"`
	}
	body := map[string]any{"contributors": contributors}
	if _, err := c.do(ctx, http.MethodPost, projectPath(projectID, "contributors"), nil, body, &result); err != nil {
		return nil, err
	}
	return result.Contributors, nil
}

// UpdateContributor changes a contributor's permissions.
func (c *Client) UpdateContributor(ctx context.Context, projectID string, userID int64, req *ContributorInput) (*Contributor, error) {
	var result struct {
		Contributor Contributor `json:"contributor"`
	}
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID, "contributors", id(userID)), nil, req, &result); err != nil {
		return nil, err
	}
	return &result.Contributor, nil
}

// DeleteContributor removes a contributor from a project.
func (c *Client) DeleteContributor(ctx context.Context, projectID string, userID int64) (*DeleteContributorResponse, error) {
	var result DeleteContributorResponse
	if _, err := c.do(ctx, http.MethodDelete, projectPath(projectID, "contributors", id(userID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
