package teamusers

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
	c := apperr.Context{Operation: op, EntityType: "team user"}
	if userID > 0 {
		c.EntityID = strconv.FormatInt(userID, 10)
	}
	return apperr.WithContext(err, c)
}

// List lists a team's users.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list team users", 0)
	}
	users, page, err := c.svc.List(ctx, args.TeamID, api.PageOptions{Limit: args.limit, Page: args.page})
	if err != nil {
		return "", fail(err, "list team users", 0)
	}
	return formatList(args.TeamID, users, page), nil
}

// Get shows one team user.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get team user", args.UserID)
	}
	u, err := c.svc.Get(ctx, args.TeamID, args.UserID)
	if err != nil {
		return "", fail(err, "get team user", args.UserID)
	}
	return formatUser("Team User: "+name(u), u), nil
}

// Update changes a team user's role.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update team user", args.UserID)
	}
	u, err := c.svc.Update(ctx, args.TeamID, args.UserID, args.Role)
	if err != nil {
		return "", fail(err, "update team user", args.UserID)
	}
	return formatUser("Team User Updated", u), nil
}

// Delete removes a user from the team.
func (c *Controller) Delete(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "delete team user", args.UserID)
	}
	res, err := c.svc.Delete(ctx, args.TeamID, args.UserID)
	if err != nil {
		return "", fail(err, "delete team user", args.UserID)
	}
	return formatDeleted(args, res.TeamUserDeleted), nil
}
