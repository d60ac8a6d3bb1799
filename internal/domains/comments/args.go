package comments

import (
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// ProjectListArgs are the arguments of list-project-comments.
type ProjectListArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"Number of comments to return (1-500, default 100)"`
	Page      *int   `json:"page,omitempty" jsonschema:"Page number, starting at 1"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ProjectListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	var err error
	a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit)
	return err
}

func (a ProjectListArgs) pageOptions() api.PageOptions {
	return api.PageOptions{Limit: a.limit, Page: a.page}
}

// KeyListArgs are the arguments of list-key-comments.
type KeyListArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	KeyID     int64  `json:"keyId" jsonschema:"Key ID"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"Number of comments to return (1-500, default 100)"`
	Page      *int   `json:"page,omitempty" jsonschema:"Page number, starting at 1"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *KeyListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.ID("keyId", a.KeyID); err != nil {
		return err
	}
	var err error
	a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit)
	return err
}

func (a KeyListArgs) pageOptions() api.PageOptions {
	return api.PageOptions{Limit: a.limit, Page: a.page}
}

// CreateArgs are the arguments of create-comments.
type CreateArgs struct {
	ProjectID string   `json:"projectId" jsonschema:"Project ID"`
	KeyID     int64    `json:"keyId" jsonschema:"Key ID to comment on"`
	Comments  []string `json:"comments" jsonschema:"Comment texts; each becomes a separate comment"`
}

// Validate checks that there is at least one non-blank comment.
func (a *CreateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.ID("keyId", a.KeyID); err != nil {
		return err
	}
	if err := domain.Count("comments", len(a.Comments), 1, 0); err != nil {
		return err
	}
	for i, c := range a.Comments {
		if strings.TrimSpace(c) == "" {
			return apperr.Validation("comments[%d] is empty", i)
		}
	}
	return nil
}

// CommentArgs identify one comment.
type CommentArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	KeyID     int64  `json:"keyId" jsonschema:"Key ID the comment belongs to"`
	CommentID int64  `json:"commentId" jsonschema:"Comment ID"`
}

// Validate checks the identifiers.
func (a *CommentArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.ID("keyId", a.KeyID); err != nil {
		return err
	}
	return domain.ID("commentId", a.CommentID)
}
