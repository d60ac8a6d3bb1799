package projects

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise projects endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns a page of projects.
func (s *Service) List(ctx context.Context, params api.ListProjectsParams) ([]api.Project, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	projects, page, err := c.ListProjects(ctx, params)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list projects")
	}
	return projects, page, nil
}

// Get returns one project with statistics.
func (s *Service) Get(ctx context.Context, projectID string) (*api.Project, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	p, err := c.GetProject(ctx, projectID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get project")
	}
	return p, nil
}

// Create creates a project.
func (s *Service) Create(ctx context.Context, req *api.CreateProjectRequest) (*api.Project, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	p, err := c.CreateProject(ctx, req)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create project")
	}
	return p, nil
}

// Update renames a project or changes its description.
func (s *Service) Update(ctx context.Context, projectID string, req *api.UpdateProjectRequest) (*api.Project, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	p, err := c.UpdateProject(ctx, projectID, req)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update project")
	}
	return p, nil
}

// Delete deletes a project.
func (s *Service) Delete(ctx context.Context, projectID string) (*api.DeleteProjectResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.DeleteProject(ctx, projectID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to delete project")
	}
	return res, nil
}

// Empty deletes every key of a project.
func (s *Service) Empty(ctx context.Context, projectID string) (*api.EmptyProjectResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.EmptyProject(ctx, projectID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to empty project")
	}
	return res, nil
}
