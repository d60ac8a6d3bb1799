package contributors

import (
	"context"
	"strconv"

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

func fail(err error, op string, userID int64) error {
	c := apperr.Context{Operation: op, EntityType: "contributor"}
	if userID > 0 {
		c.EntityID = strconv.FormatInt(userID, 10)
	}
	return apperr.WithContext(err, c)
}

// List lists a project's contributors.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list contributors", 0)
	}
	out, page, err := c.svc.List(ctx, args.ProjectID, api.PageOptions{Limit: args.limit, Page: args.page})
	if err != nil {
		return "", fail(err, "list contributors", 0)
	}
	return formatList(args.ProjectID, out, page), nil
}

// Get shows one contributor.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get contributor", args.ContributorID)
	}
	out, err := c.svc.Get(ctx, args.ProjectID, args.ContributorID)
	if err != nil {
		return "", fail(err, "get contributor", args.ContributorID)
	}
	return formatContributor("Contributor: "+displayName(out), out), nil
}

// Current shows the contributor that owns the API token.
func (c *Controller) Current(ctx context.Context, args CurrentArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get current contributor", 0)
	}
	out, err := c.svc.Current(ctx, args.ProjectID)
	if err != nil {
		return "", fail(err, "get current contributor", 0)
	}
	return formatContributor("Current Contributor: "+displayName(out), out), nil
}

// Add invites contributors to a project.
func (c *Controller) Add(ctx context.Context, args AddArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "add contributors", 0)
	}
	out, err := c.svc.Add(ctx, args.ProjectID, args.request())
	if err != nil {
		return "", fail(err, "add contributors", 0)
	}
	return formatAdded(len(args.Contributors), out), nil
}

// Update changes a contributor's permissions.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update contributor", args.ContributorID)
	}
	out, err := c.svc.Update(ctx, args.ProjectID, args.ContributorID, args.request())
	if err != nil {
		return "", fail(err, "update contributor", args.ContributorID)
	}
	return formatContributor("Contributor Updated", out), nil
}

// Remove removes a contributor from a project.
func (c *Controller) Remove(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "remove contributor", args.ContributorID)
	}
	res, err := c.svc.Remove(ctx, args.ProjectID, args.ContributorID)
	if err != nil {
		return "", fail(err, "remove contributor", args.ContributorID)
	}
	return formatRemoved(args, res.ContributorDeleted), nil
}
