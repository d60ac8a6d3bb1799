package keys

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

func fail(err error, op string, keyID int64) error {
	c := apperr.Context{Operation: op, EntityType: "key"}
	if keyID > 0 {
		c.EntityID = strconv.FormatInt(keyID, 10)
	}
	return apperr.WithContext(err, c)
}

// List lists keys.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list keys", 0)
	}
	keys, page, err := c.svc.List(ctx, args.ProjectID, args.params())
	if err != nil {
		return "", fail(err, "list keys", 0)
	}
	return formatList(args.ProjectID, keys, page, args.IncludeTranslations), nil
}

// Get shows one key with its translations.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get key", args.KeyID)
	}
	k, err := c.svc.Get(ctx, args.ProjectID, args.KeyID)
	if err != nil {
		return "", fail(err, "get key", args.KeyID)
	}
	return formatKey(args.ProjectID, k, c.deps.Hostname()), nil
}

// Create creates keys.
func (c *Controller) Create(ctx context.Context, args CreateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "create keys", 0)
	}
	res, err := c.svc.Create(ctx, args.ProjectID, args.requests(), args.UseAutomations)
	if err != nil {
		return "", fail(err, "create keys", 0)
	}
	return formatBulk("Keys Created", "created", len(args.Keys), res), nil
}

// Update updates one key.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update key", args.KeyID)
	}
	k, err := c.svc.Update(ctx, args.ProjectID, args.KeyID, args.Data.request(0))
	if err != nil {
		return "", fail(err, "update key", args.KeyID)
	}
	return formatUpdated(args.ProjectID, k), nil
}

// BulkUpdate updates several keys.
func (c *Controller) BulkUpdate(ctx context.Context, args BulkUpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "bulk update keys", 0)
	}
	res, err := c.svc.BulkUpdate(ctx, args.ProjectID, args.requests())
	if err != nil {
		return "", fail(err, "bulk update keys", 0)
	}
	return formatBulk("Keys Updated", "updated", len(args.Keys), res), nil
}

// Delete deletes one key.
func (c *Controller) Delete(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "delete key", args.KeyID)
	}
	res, err := c.svc.Delete(ctx, args.ProjectID, args.KeyID)
	if err != nil {
		return "", fail(err, "delete key", args.KeyID)
	}
	return formatDeleted(res, []int64{args.KeyID}), nil
}

// BulkDelete deletes several keys.
func (c *Controller) BulkDelete(ctx context.Context, args BulkDeleteArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "bulk delete keys", 0)
	}
	res, err := c.svc.BulkDelete(ctx, args.ProjectID, args.KeyIDs)
	if err != nil {
		return "", fail(err, "bulk delete keys", 0)
	}
	return formatDeleted(res, args.KeyIDs), nil
}
