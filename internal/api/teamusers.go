package api

import (
	"context"
	"net/http"
	"net/url"
)

// TeamUser roles.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleBiller = "biller"
)

// TeamUser is a member of a team.
type TeamUser struct {
	UserID             int64  `json:"user_id"`
	Email              string `json:"email"`
	Fullname           string `json:"fullname"`
	CreatedAt          string `json:"created_at,omitempty"`
	CreatedAtTimestamp int64  `json:"created_at_timestamp,omitempty"`
	Role               string `json:"role"`
}

// DeleteTeamUserResponse reports a team user removal.
type DeleteTeamUserResponse struct {
	TeamID          int64 `json:"team_id"`
	TeamUserDeleted bool  `json:"team_user_deleted"`
}

// ListTeamUsers lists a team's users.
func (c *Client) ListTeamUsers(ctx context.Context, teamID int64, opts PageOptions) ([]TeamUser, Pagination, error) {
	q := url.Values{}
	opts.apply(q)
	var result struct {
		TeamUsers []TeamUser `json:"team_users"`
	}
	page, err := c.do(ctx, http.MethodGet, teamPath(teamID, "users"), q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.TeamUsers, page, nil
}

// GetTeamUser retrieves a team user.
func (c *Client) GetTeamUser(ctx context.Context, teamID, userID int64) (*TeamUser, error) {
	var result struct {
		TeamUser TeamUser `json:"team_user"`
	}
	if _, err := c.do(ctx, http.MethodGet, teamPath(teamID, "users", id(userID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.TeamUser, nil
}

// UpdateTeamUser changes a team user's role.
func (c *Client) UpdateTeamUser(ctx context.Context, teamID, userID int64, role string) (*TeamUser, error) {
	var result struct {
		TeamUser TeamUser `json:"team_user"`
	}
	body := map[string]string{"role": role}
	if _, err := c.do(ctx, http.MethodPut, teamPath(teamID, "users", id(userID)), nil, body, &result); err != nil {
		return nil, err
	}
	return &result.TeamUser, nil
}

// DeleteTeamUser removes a user from a team.
func (c *Client) DeleteTeamUser(ctx context.Context, teamID, userID int64) (*DeleteTeamUserResponse, error) {
	var result DeleteTeamUserResponse
	if _, err := c.do(ctx, http.MethodDelete, teamPath(teamID, "users", id(userID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
