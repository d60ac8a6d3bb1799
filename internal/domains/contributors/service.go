package contributors

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise contributors endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns a page of contributors.
func (s *Service) List(ctx context.Context, projectID string, opts api.PageOptions) ([]api.Contributor, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	out, page, err := c.ListContributors(ctx, projectID, opts)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list contributors")
	}
	return out, page, nil
}

// Get returns one contributor.
func (s *Service) Get(ctx context.Context, projectID string, userID int64) (*api.Contributor, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.GetContributor(ctx, projectID, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get contributor")
	}
	return out, nil
}

// Current returns the contributor that owns the API token.
func (s *Service) Current(ctx context.Context, projectID string) (*api.Contributor, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.GetCurrentContributor(ctx, projectID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get current contributor")
	}
	return out, nil
}

// Add invites contributors.
func (s *Service) Add(ctx context.Context, projectID string, in []api.ContributorInput) ([]api.Contributor, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.AddContributors(ctx, projectID, in)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to add contributors")
	}
	return out, nil
}

// Update changes a contributor's permissions.
func (s *Service) Update(ctx context.Context, projectID string, userID int64, in *api.ContributorInput) (*api.Contributor, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.UpdateContributor(ctx, projectID, userID, in)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update contributor")
	}
	return out, nil
}

// Remove removes a contributor from a project.
func (s *Service) Remove(ctx context.Context, projectID string, userID int64) (*api.DeleteContributorResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.DeleteContributor(ctx, projectID, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to remove contributor")
	}
	return out, nil
}
