package queuedprocesses

import (
	"context"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Controller validates arguments, calls the service and formats results.
type Controller struct {
	svc *Service
}

// NewController creates a Controller.
func NewController(deps domain.Deps) *Controller {
	return &Controller{svc: NewService(deps.Clients)}
}

func fail(err error, op, processID string) error {
	return apperr.WithContext(err, apperr.Context{Operation: op, EntityType: "queued process", EntityID: processID})
}

// List lists a project's queued processes.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list queued processes", "")
	}
	procs, page, err := c.svc.List(ctx, args.ProjectID, api.PageOptions{Limit: args.limit, Page: args.page})
	if err != nil {
		return "", fail(err, "list queued processes", "")
	}
	return formatList(args.ProjectID, procs, page), nil
}

// Get shows one queued process with its details.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get queued process", args.ProcessID)
	}
	p, err := c.svc.Get(ctx, args.ProjectID, args.ProcessID)
	if err != nil {
		return "", fail(err, "get queued process", args.ProcessID)
	}
	return formatProcess(p), nil
}
