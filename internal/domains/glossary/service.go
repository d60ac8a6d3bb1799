package glossary

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise glossary endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns one cursor page of terms.
func (s *Service) List(ctx context.Context, projectID string, limit int, cursor string) ([]api.GlossaryTerm, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	terms, page, err := c.ListGlossaryTerms(ctx, projectID, limit, cursor)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list glossary terms")
	}
	return terms, page, nil
}

// Get returns one term.
func (s *Service) Get(ctx context.Context, projectID string, termID int64) (*api.GlossaryTerm, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	term, err := c.GetGlossaryTerm(ctx, projectID, termID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get glossary term")
	}
	return term, nil
}

// Create creates terms.
func (s *Service) Create(ctx context.Context, projectID string, terms []api.GlossaryTermInput) ([]api.GlossaryTerm, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.CreateGlossaryTerms(ctx, projectID, terms)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create glossary terms")
	}
	return out, nil
}

// Update updates terms.
func (s *Service) Update(ctx context.Context, projectID string, terms []api.GlossaryTermInput) ([]api.GlossaryTerm, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.UpdateGlossaryTerms(ctx, projectID, terms)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update glossary terms")
	}
	return out, nil
}

// Delete deletes terms.
func (s *Service) Delete(ctx context.Context, projectID string, ids []int64) (*api.DeleteGlossaryTermsResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.DeleteGlossaryTerms(ctx, projectID, ids)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to delete glossary terms")
	}
	return res, nil
}
