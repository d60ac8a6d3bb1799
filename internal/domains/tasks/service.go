package tasks

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise tasks endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns a page of tasks.
func (s *Service) List(ctx context.Context, projectID string, params api.ListTasksParams) ([]api.Task, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	tasks, page, err := c.ListTasks(ctx, projectID, params)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list tasks")
	}
	return tasks, page, nil
}

// Get returns one task.
func (s *Service) Get(ctx context.Context, projectID string, taskID int64) (*api.Task, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	task, err := c.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get task")
	}
	return task, nil
}

// Create creates a task.
func (s *Service) Create(ctx context.Context, projectID string, req *api.CreateTaskRequest) (*api.Task, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	task, err := c.CreateTask(ctx, projectID, req)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create task")
	}
	return task, nil
}

// Update updates a task.
func (s *Service) Update(ctx context.Context, projectID string, taskID int64, req *api.UpdateTaskRequest) (*api.Task, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	task, err := c.UpdateTask(ctx, projectID, taskID, req)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update task")
	}
	return task, nil
}

// Delete deletes a task.
func (s *Service) Delete(ctx context.Context, projectID string, taskID int64) (*api.DeleteTaskResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.DeleteTask(ctx, projectID, taskID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to delete task")
	}
	return res, nil
}
