package api

import (
	"context"
	"net/http"
	"net/url"
)

// Comment is a comment attached to a key.
type Comment struct {
	CommentID        int64  `json:"comment_id"`
	KeyID            int64  `json:"key_id"`
	Comment          string `json:"comment"`
	AddedBy          int64  `json:"added_by"`
	AddedByEmail     string `json:"added_by_email"`
	AddedAt          string `json:"added_at"`
	AddedAtTimestamp int64  `json:"added_at_timestamp,omitempty"`
}

// DeleteCommentResponse reports a comment deletion.
type DeleteCommentResponse struct {
	ProjectID      string `json:"project_id"`
	CommentDeleted bool   `json:"comment_deleted"`
}

// ListProjectComments lists every comment in a project.
func (c *Client) ListProjectComments(ctx context.Context, projectID string, opts PageOptions) ([]Comment, Pagination, error) {
	return c.listComments(ctx, projectPath(projectID, "comments"), opts)
}

// ListKeyComments lists the comments on one key.
func (c *Client) ListKeyComments(ctx context.Context, projectID string, keyID int64, opts PageOptions) ([]Comment, Pagination, error) {
	return c.listComments(ctx, projectPath(projectID, "keys", id(keyID), "comments"), opts)
}

func (c *Client) listComments(ctx context.Context, path string, opts PageOptions) ([]Comment, Pagination, error) {
	q := url.Values{}
	opts.apply(q)
	var result struct {
		Comments []Comment `json:"comments"`
	}
	page, err := c.do(ctx, http.MethodGet, path, q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.Comments, page, nil
}

// CreateComments adds comments to a key.
//
// Parameters:
//   - ctx: Context for cancellation
//   - projectID: The project ID
//   - keyID: The key to comment on
//   - comments: Comment texts, one comment each
//
// Returns:
//   - []Comment: The created comments
//   - error: Any error that occurred
func (c *Client) CreateComments(ctx context.Context, projectID string, keyID int64, comments []string) ([]Comment, error) {
	type newComment struct {
		Comment string `json:"comment"`
	}
	items := make([]newComment, len(comments))
	for i, text := range comments {
		items[i] = newComment{Comment: text}
	}

	var result struct {
		Comments []Comment `json:"comments"`
	}
	body := map[string]any{"comments": items}
	if _, err := c.do(ctx, http.MethodPost, projectPath(projectID, "keys", id(keyID), "comments"), nil, body, &result); err != nil {
		return nil, err
	}
	return result.Comments, nil
}

// GetComment retrieves one comment on a key.
func (c *Client) GetComment(ctx context.Context, projectID string, keyID, commentID int64) (*Comment, error) {
	var result struct {
		Comment Comment `json:"comment"`
	}
	if _, err := c.do(ctx, http.MethodGet, projectPath(projectID, "keys", id(keyID), "comments", id(commentID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.Comment, nil
}

// DeleteComment deletes one comment on a key.
func (c *Client) DeleteComment(ctx context.Context, projectID string, keyID, commentID int64) (*DeleteCommentResponse, error) {
	var result DeleteCommentResponse
	if _, err := c.do(ctx, http.MethodDelete, projectPath(projectID, "keys", id(keyID), "comments", id(commentID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
