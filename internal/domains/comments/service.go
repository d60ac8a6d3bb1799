package comments

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Service calls the Lokalise comments endpoints.
type Service struct {
	clients api.ClientSource
}

// NewService creates a Service.
func NewService(clients api.ClientSource) *Service {
	return &Service{clients: clients}
}

// ListProject returns a page of every comment in a project.
func (s *Service) ListProject(ctx context.Context, projectID string, opts api.PageOptions) ([]api.Comment, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	comments, page, err := c.ListProjectComments(ctx, projectID, opts)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list project comments")
	}
	return comments, page, nil
}

// ListKey returns a page of one key's comments.
func (s *Service) ListKey(ctx context.Context, projectID string, keyID int64, opts api.PageOptions) ([]api.Comment, api.Pagination, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, api.Pagination{}, err
	}
	comments, page, err := c.ListKeyComments(ctx, projectID, keyID, opts)
	if err != nil {
		return nil, page, apperr.Wrap(err, "failed to list key comments")
	}
	return comments, page, nil
}

// Create adds comments to a key.
func (s *Service) Create(ctx context.Context, projectID string, keyID int64, texts []string) ([]api.Comment, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	comments, err := c.CreateComments(ctx, projectID, keyID, texts)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create comments")
	}
	return comments, nil
}

// Get returns one comment.
func (s *Service) Get(ctx context.Context, projectID string, keyID, commentID int64) (*api.Comment, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	comment, err := c.GetComment(ctx, projectID, keyID, commentID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get comment")
	}
	return comment, nil
}

// Delete deletes one comment.
func (s *Service) Delete(ctx context.Context, projectID string, keyID, commentID int64) (*api.DeleteCommentResponse, error) {
	c, err := s.clients.Get()
	if err != nil {
		return nil, err
	}
	res, err := c.DeleteComment(ctx, projectID, keyID, commentID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to delete comment")
	}
	return res, nil
}
