package queuedprocesses

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise queued process endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns a page of a project's processes.
func (s *Service) List(ctx context.Context, projectID string, opts api.PageOptions) ([]api.QueuedProcess, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	out, page, err := c.ListQueuedProcesses(ctx, projectID, opts)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list queued processes")
	}
	return out, page, nil
}

// Get returns one process.
func (s *Service) Get(ctx context.Context, projectID, processID string) (*api.QueuedProcess, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	out, err := c.GetQueuedProcess(ctx, projectID, processID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get queued process")
	}
	return out, nil
}
