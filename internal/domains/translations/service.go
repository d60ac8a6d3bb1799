package translations

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise translations endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns a page of translations.
func (s *Service) List(ctx context.Context, projectID string, params api.ListTranslationsParams) ([]api.Translation, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	ts, page, err := c.ListTranslations(ctx, projectID, params)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list translations")
	}
	return ts, page, nil
}

// Get returns one translation.
func (s *Service) Get(ctx context.Context, projectID string, translationID int64) (*api.Translation, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	t, err := c.GetTranslation(ctx, projectID, translationID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get translation")
	}
	return t, nil
}

// Update applies a sparse update to one translation.
func (s *Service) Update(ctx context.Context, projectID string, translationID int64, req api.UpdateTranslationRequest) (*api.Translation, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	t, err := c.UpdateTranslation(ctx, projectID, translationID, req)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update translation")
	}
	return t, nil
}
