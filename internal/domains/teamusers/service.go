package teamusers

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise team user endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns a page of team users.
func (s *Service) List(ctx context.Context, teamID int64, opts api.PageOptions) ([]api.TeamUser, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	out, page, err := c.ListTeamUsers(ctx, teamID, opts)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list team users")
	}
	return out, page, nil
}

// Get returns one team user.
func (s *Service) Get(ctx context.Context, teamID, userID int64) (*api.TeamUser, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.GetTeamUser(ctx, teamID, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get team user")
	}
	return out, nil
}

// Update changes a team user's role.
func (s *Service) Update(ctx context.Context, teamID, userID int64, role string) (*api.TeamUser, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.UpdateTeamUser(ctx, teamID, userID, role)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update team user")
	}
	return out, nil
}

// Delete removes a user from the team.
func (s *Service) Delete(ctx context.Context, teamID, userID int64) (*api.DeleteTeamUserResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.DeleteTeamUser(ctx, teamID, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to delete team user")
	}
	return out, nil
}
