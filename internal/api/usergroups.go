package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

// UserGroup is a team's user group.
type UserGroup struct {
	GroupID     int64            `json:"group_id"`
	Name        string           `json:"name"`
	Permissions GroupPermissions `json:"permissions"`
	CreatedAt   string           `json:"created_at,omitempty"`
	TeamID      int64            `json:"team_id,omitempty"`
	Projects    []string         `json:"projects,omitempty"`
	Members     []int64          `json:"members,omitempty"`
}

// GroupPermissions are the rights a group grants its members.
type GroupPermissions struct {
	IsAdmin     bool                  `json:"is_admin"`
	IsReviewer  bool                  `json:"is_reviewer"`
	AdminRights []string              `json:"admin_rights,omitempty"`
	Languages   []ContributorLanguage `json:"languages,omitempty"`
}

// GroupLanguages selects the languages a group can read and write.
type GroupLanguages struct {
	Reference     []int64 `json:"reference,omitempty"`
	Contributable []int64 `json:"contributable,omitempty"`
}

// UserGroupInput creates or updates a group.
type UserGroupInput struct {
	Name        string          `json:"name"`
	IsReviewer  bool            `json:"is_reviewer"`
	IsAdmin     bool            `json:"is_admin"`
	AdminRights []string        `json:"admin_rights,omitempty"`
	Languages   *GroupLanguages `json:"languages,omitempty"`
}

// DeleteUserGroupResponse reports a group deletion.
type DeleteUserGroupResponse struct {
	TeamID       int64 `json:"team_id"`
	GroupDeleted bool  `json:"group_deleted"`
}

// ListUserGroups lists a team's groups.
func (c *Client) ListUserGroups(ctx context.Context, teamID int64, opts PageOptions) ([]UserGroup, Pagination, error) {
	q := url.Values{}
	opts.apply(q)
	var result struct {
		UserGroups []UserGroup `json:"user_groups"`
	}
	page, err := c.do(ctx, http.MethodGet, teamPath(teamID, "groups"), q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.UserGroups, page, nil
}

// GetUserGroup retrieves a group.
func (c *Client) GetUserGroup(ctx context.Context, teamID, groupID int64) (*UserGroup, error) {
	return c.groupRequest(ctx, http.MethodGet, teamPath(teamID, "groups", id(groupID)), nil)
}

// CreateUserGroup creates a group.
func (c *Client) CreateUserGroup(ctx context.Context, teamID int64, req *UserGroupInput) (*UserGroup, error) {
	return c.groupRequest(ctx, http.MethodPost, teamPath(teamID, "groups"), req)
}

// UpdateUserGroup updates a group.
func (c *Client) UpdateUserGroup(ctx context.Context, teamID, groupID int64, req *UserGroupInput) (*UserGroup, error) {
	return c.groupRequest(ctx, http.MethodPut, teamPath(teamID, "groups", id(groupID)), req)
}

// DeleteUserGroup deletes a group.
func (c *Client) DeleteUserGroup(ctx context.Context, teamID, groupID int64) (*DeleteUserGroupResponse, error) {
	var result DeleteUserGroupResponse
	if _, err := c.do(ctx, http.MethodDelete, teamPath(teamID, "groups", id(groupID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddMembersToGroup adds team users to a group.
func (c *Client) AddMembersToGroup(ctx context.Context, teamID, groupID int64, userIDs []int64) (*UserGroup, error) {
	body := map[string]any{"users": userIDs}
	return c.groupRequest(ctx, http.MethodPut, teamPath(teamID, "groups", id(groupID), "members", "add"), body)
}

// RemoveMembersFromGroup removes team users from a group.
func (c *Client) RemoveMembersFromGroup(ctx context.Context, teamID, groupID int64, userIDs []int64) (*UserGroup, error) {
	body := map[string]any{"users": userIDs}
	return c.groupRequest(ctx, http.MethodPut, teamPath(teamID, "groups", id(groupID), "members", "remove"), body)
}

// AddProjectsToGroup grants a group access to projects.
func (c *Client) AddProjectsToGroup(ctx context.Context, teamID, groupID int64, projectIDs []string) (*UserGroup, error) {
	body := map[string]any{"projects": projectIDs}
	return c.groupRequest(ctx, http.MethodPut, teamPath(teamID, "groups", id(groupID), "projects", "add"), body)
}

// RemoveProjectsFromGroup revokes a group's access to projects.
func (c *Client) RemoveProjectsFromGroup(ctx context.Context, teamID, groupID int64, projectIDs []string) (*UserGroup, error) {
	body := map[string]any{"projects": projectIDs}
	return c.groupRequest(ctx, http.MethodPut, teamPath(teamID, "groups", id(groupID), "projects", "remove"), body)
}

// groupRequest sends a request whose response carries a group either under
// "group" or at the top level, depending on the endpoint.
func (c *Client) groupRequest(ctx context.Context, method, path string, body any) (*UserGroup, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, method, path, nil, body, &raw); err != nil {
		return nil, err
	}

	payload := []byte(raw)
	if g := gjson.GetBytes(raw, "group"); g.IsObject() {
		payload = []byte(g.Raw)
	}
	var group UserGroup
	if err := json.Unmarshal(payload, &group); err != nil {
		return nil, err
	}
	if group.TeamID == 0 {
		group.TeamID = gjson.GetBytes(raw, "team_id").Int()
	}
	return &group, nil
}
