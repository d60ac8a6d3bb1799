package translations

import (
	"context"
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// Controller validates arguments, calls the service and formats results.
type Controller struct {
	svc  *Service
	deps domain.Deps
	bulk BulkOptions
}

// NewController creates a Controller with the default bulk pacing.
func NewController(deps domain.Deps) *Controller {
	return &Controller{svc: NewService(deps.Clients), deps: deps, bulk: DefaultBulkOptions()}
}

func fail(err error, op string, translationID int64) error {
	c := apperr.Context{Operation: op, EntityType: "translation"}
	if translationID > 0 {
		c.EntityID = strconv.FormatInt(translationID, 10)
	}
	return apperr.WithContext(err, c)
}

// List lists translations.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list translations", 0)
	}
	ts, page, err := c.svc.List(ctx, args.ProjectID, args.params())
	if err != nil {
		return "", fail(err, "list translations", 0)
	}
	return formatList(args.ProjectID, ts, page), nil
}

// Get shows one translation.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get translation", args.TranslationID)
	}
	t, err := c.svc.Get(ctx, args.ProjectID, args.TranslationID)
	if err != nil {
		return "", fail(err, "get translation", args.TranslationID)
	}
	return formatTranslation(args.ProjectID, t), nil
}

// Update updates one translation.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update translation", args.TranslationID)
	}
	t, err := c.svc.Update(ctx, args.ProjectID, args.TranslationID, args.Data.request())
	if err != nil {
		return "", fail(err, "update translation", args.TranslationID)
	}
	return formatUpdated(args.ProjectID, t), nil
}

// BulkUpdate applies the updates one at a time and reports every outcome.
// Per-item failures are part of the result, not an error.
func (c *Controller) BulkUpdate(ctx context.Context, args BulkUpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "bulk update translations", 0)
	}
	if _, err := c.deps.Clients.Get(); err != nil {
		return "", fail(err, "bulk update translations", 0)
	}

	opts := c.bulk
	progress := handler.Progress(ctx)
	opts.OnProgress = func(done, failed, total int) {
		progress(done, failed, total, "translations updated")
	}
	res := RunBulk(ctx, args.Updates, func(ctx context.Context, item Item) (*api.Translation, error) {
		return c.svc.Update(ctx, args.ProjectID, item.TranslationID, item.Data.request())
	}, opts)
	return formatBulk(args.ProjectID, res), nil
}
