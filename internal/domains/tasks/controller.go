package tasks

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

func fail(err error, op string, taskID int64) error {
	c := apperr.Context{Operation: op, EntityType: "task"}
	if taskID > 0 {
		c.EntityID = strconv.FormatInt(taskID, 10)
	}
	return apperr.WithContext(err, c)
}

// List lists tasks.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list tasks", 0)
	}
	tasks, page, err := c.svc.List(ctx, args.ProjectID, args.params())
	if err != nil {
		return "", fail(err, "list tasks", 0)
	}
	return formatList(args.ProjectID, tasks, page), nil
}

// Get shows one task.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get task", args.TaskID)
	}
	task, err := c.svc.Get(ctx, args.ProjectID, args.TaskID)
	if err != nil {
		return "", fail(err, "get task", args.TaskID)
	}
	return formatTask("Task: "+task.Title, args.ProjectID, task, c.deps.Hostname()), nil
}

// Create creates a task.
func (c *Controller) Create(ctx context.Context, args CreateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "create task", 0)
	}
	task, err := c.svc.Create(ctx, args.ProjectID, args.request())
	if err != nil {
		return "", fail(err, "create task", 0)
	}
	return formatTask("Task Created", args.ProjectID, task, c.deps.Hostname()), nil
}

// Update updates a task.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update task", args.TaskID)
	}
	task, err := c.svc.Update(ctx, args.ProjectID, args.TaskID, args.request())
	if err != nil {
		return "", fail(err, "update task", args.TaskID)
	}
	return formatTask("Task Updated", args.ProjectID, task, c.deps.Hostname()), nil
}

// Delete deletes a task.
func (c *Controller) Delete(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "delete task", args.TaskID)
	}
	res, err := c.svc.Delete(ctx, args.ProjectID, args.TaskID)
	if err != nil {
		return "", fail(err, "delete task", args.TaskID)
	}
	return formatDeleted(args.TaskID, res.TaskDeleted), nil
}
