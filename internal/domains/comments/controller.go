package comments

import (
	"context"
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Controller validates arguments, calls the service and formats results.
type Controller struct {
	svc  *Service
	deps domain.Deps
}

// NewController creates a Controller.
func NewController(deps domain.Deps) *Controller {
	return &Controller{svc: NewService(deps.Clients), deps: deps}
}

func fail(err error, op, entity string, id int64) error {
	c := apperr.Context{Operation: op, EntityType: entity}
	if id > 0 {
		c.EntityID = strconv.FormatInt(id, 10)
	}
	return apperr.WithContext(err, c)
}

// ListProject lists every comment in a project.
func (c *Controller) ListProject(ctx context.Context, args ProjectListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list project comments", "project", 0)
	}
	comments, page, err := c.svc.ListProject(ctx, args.ProjectID, args.pageOptions())
	if err != nil {
		return "", fail(err, "list project comments", "project", 0)
	}
	return formatList("Comments in Project "+args.ProjectID, comments, page, true), nil
}

// ListKey lists the comments on one key.
func (c *Controller) ListKey(ctx context.Context, args KeyListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list key comments", "key", args.KeyID)
	}
	comments, page, err := c.svc.ListKey(ctx, args.ProjectID, args.KeyID, args.pageOptions())
	if err != nil {
		return "", fail(err, "list key comments", "key", args.KeyID)
	}
	return formatList("Comments on Key "+strconv.FormatInt(args.KeyID, 10), comments, page, false), nil
}

// Create adds comments to a key.
func (c *Controller) Create(ctx context.Context, args CreateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "create comments", "key", args.KeyID)
	}
	comments, err := c.svc.Create(ctx, args.ProjectID, args.KeyID, args.Comments)
	if err != nil {
		return "", fail(err, "create comments", "key", args.KeyID)
	}
	return formatCreated(args.KeyID, comments), nil
}

// Get shows one comment.
func (c *Controller) Get(ctx context.Context, args CommentArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get comment", "comment", args.CommentID)
	}
	comment, err := c.svc.Get(ctx, args.ProjectID, args.KeyID, args.CommentID)
	if err != nil {
		return "", fail(err, "get comment", "comment", args.CommentID)
	}
	return formatComment(comment), nil
}

// Delete deletes one comment.
func (c *Controller) Delete(ctx context.Context, args CommentArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "delete comment", "comment", args.CommentID)
	}
	res, err := c.svc.Delete(ctx, args.ProjectID, args.KeyID, args.CommentID)
	if err != nil {
		return "", fail(err, "delete comment", "comment", args.CommentID)
	}
	return formatDeleted(args, res.CommentDeleted), nil
}
