package keys

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise keys endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// List returns a page of keys.
func (s *Service) List(ctx context.Context, projectID string, params api.ListKeysParams) ([]api.Key, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	keys, page, err := c.ListKeys(ctx, projectID, params)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list keys")
	}
	return keys, page, nil
}

// Get returns one key.
func (s *Service) Get(ctx context.Context, projectID string, keyID int64) (*api.Key, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	k, err := c.GetKey(ctx, projectID, keyID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get key")
	}
	return k, nil
}

// Create creates keys.
func (s *Service) Create(ctx context.Context, projectID string, keys []api.CreateKeyRequest, useAutomations bool) (*api.BulkKeysResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.CreateKeys(ctx, projectID, keys, useAutomations)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create keys")
	}
	return res, nil
}

// Update updates one key.
func (s *Service) Update(ctx context.Context, projectID string, keyID int64, req api.UpdateKeyRequest) (*api.Key, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	k, err := c.UpdateKey(ctx, projectID, keyID, &req)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update key")
	}
	return k, nil
}

// BulkUpdate updates several keys in one request.
func (s *Service) BulkUpdate(ctx context.Context, projectID string, reqs []api.UpdateKeyRequest) (*api.BulkKeysResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.BulkUpdateKeys(ctx, projectID, reqs)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to update keys")
	}
	return res, nil
}

// Delete deletes one key.
func (s *Service) Delete(ctx context.Context, projectID string, keyID int64) (*api.DeleteKeysResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.DeleteKey(ctx, projectID, keyID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to delete key")
	}
	return res, nil
}

// BulkDelete deletes several keys.
func (s *Service) BulkDelete(ctx context.Context, projectID string, keyIDs []int64) (*api.DeleteKeysResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.BulkDeleteKeys(ctx, projectID, keyIDs)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to delete keys")
	}
	return res, nil
}
