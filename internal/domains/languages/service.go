package languages

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise languages endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// ListSystem returns a page of the languages Lokalise supports.
func (s *Service) ListSystem(ctx context.Context, opts api.PageOptions) ([]api.Language, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	langs, page, err := c.ListSystemLanguages(ctx, opts)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list system languages")
	}
	return langs, page, nil
}

// ListProject returns a page of a project's languages.
func (s *Service) ListProject(ctx context.Context, projectID string, opts api.PageOptions) ([]api.Language, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	langs, page, err := c.ListProjectLanguages(ctx, projectID, opts)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list project languages")
	}
	return langs, page, nil
}

// Add adds languages to a project.
func (s *Service) Add(ctx context.Context, projectID string, langs []api.NewLanguage) ([]api.Language, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.AddProjectLanguages(ctx, projectID, langs)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to add project languages")
	}
	return out, nil
}

// Get returns one project language.
func (s *Service) Get(ctx context.Context, projectID string, languageID int64) (*api.Language, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	l, err := c.GetLanguage(ctx, projectID, languageID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get language")
	}
	return l, nil
}

// Update updates a project language.
func (s *Service) Update(ctx context.Context, projectID string, languageID int64, req *api.UpdateLanguageRequest) (*api.Language, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	l, err := c.UpdateLanguage(ctx, projectID, languageID, req)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update language")
	}
	return l, nil
}

// Remove removes a language and its translations from a project.
func (s *Service) Remove(ctx context.Context, projectID string, languageID int64) (*api.DeleteLanguageResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.DeleteLanguage(ctx, projectID, languageID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to remove language")
	}
	return res, nil
}
