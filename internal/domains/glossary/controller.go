package glossary

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

func fail(err error, op string, termID int64) error {
	c := apperr.Context{Operation: op, EntityType: "glossary term"}
	if termID > 0 {
		c.EntityID = strconv.FormatInt(termID, 10)
	}
	return apperr.WithContext(err, c)
}

// List lists glossary terms.
func (c *Controller) List(ctx context.Context, args ListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list glossary terms", 0)
	}
	terms, page, err := c.svc.List(ctx, args.ProjectID, args.limit, args.Cursor)
	if err != nil {
		return "", fail(err, "list glossary terms", 0)
	}
	return formatList(args.ProjectID, terms, page), nil
}

// Get shows one term.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get glossary term", args.TermID)
	}
	term, err := c.svc.Get(ctx, args.ProjectID, args.TermID)
	if err != nil {
		return "", fail(err, "get glossary term", args.TermID)
	}
	return formatTerm(term), nil
}

// Create creates terms.
func (c *Controller) Create(ctx context.Context, args CreateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "create glossary terms", 0)
	}
	terms, err := c.svc.Create(ctx, args.ProjectID, requests(args.Terms))
	if err != nil {
		return "", fail(err, "create glossary terms", 0)
	}
	return formatChanged("Glossary Terms Created", "created", len(args.Terms), terms), nil
}

// Update updates terms.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update glossary terms", 0)
	}
	terms, err := c.svc.Update(ctx, args.ProjectID, requests(args.Terms))
	if err != nil {
		return "", fail(err, "update glossary terms", 0)
	}
	return formatChanged("Glossary Terms Updated", "updated", len(args.Terms), terms), nil
}

// Delete deletes terms.
func (c *Controller) Delete(ctx context.Context, args DeleteArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "delete glossary terms", 0)
	}
	res, err := c.svc.Delete(ctx, args.ProjectID, args.TermIDs)
	if err != nil {
		return "", fail(err, "delete glossary terms", 0)
	}
	return formatDeleted(len(args.TermIDs), res), nil
}
