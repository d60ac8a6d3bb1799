package projects

import (
	"context"

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

func fail(err error, op, id string) error {
	return apperr.WithContext(err, apperr.Context{Operation: op, EntityType: "project", EntityID: id})
}

// List lists projects.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list projects", "")
	}
	projects, page, err := c.svc.List(ctx, args.params())
	if err != nil {
		return "", fail(err, "list projects", "")
	}
	return formatList(projects, page, c.deps.Hostname()), nil
}

// Get shows one project.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get project", args.ProjectID)
	}
	p, err := c.svc.Get(ctx, args.ProjectID)
	if err != nil {
		return "", fail(err, "get project", args.ProjectID)
	}
	return formatProject(p, c.deps.Hostname()), nil
}

// Create creates a project.
func (c *Controller) Create(ctx context.Context, args CreateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "create project", "")
	}
	p, err := c.svc.Create(ctx, args.request())
	if err != nil {
		return "", fail(err, "create project", "")
	}
	return formatCreated(p, c.deps.Hostname()), nil
}

// Update updates a project.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update project", args.ProjectID)
	}
	p, err := c.svc.Update(ctx, args.ProjectID, args.request())
	if err != nil {
		return "", fail(err, "update project", args.ProjectID)
	}
	return formatUpdated(p, c.deps.Hostname()), nil
}

// Delete deletes a project.
func (c *Controller) Delete(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "delete project", args.ProjectID)
	}
	res, err := c.svc.Delete(ctx, args.ProjectID)
	if err != nil {
		return "", fail(err, "delete project", args.ProjectID)
	}
	return formatDeleted(res), nil
}

// Empty deletes every key of a project.
func (c *Controller) Empty(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "empty project", args.ProjectID)
	}
	res, err := c.svc.Empty(ctx, args.ProjectID)
	if err != nil {
		return "", fail(err, "empty project", args.ProjectID)
	}
	return formatEmptied(res), nil
}
