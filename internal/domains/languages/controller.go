package languages

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

func fail(err error, op string, languageID int64) error {
	c := apperr.Context{Operation: op, EntityType: "language"}
	if languageID > 0 {
		c.EntityID = strconv.FormatInt(languageID, 10)
	}
	return apperr.WithContext(err, c)
}

// ListSystem lists every language Lokalise supports.
func (c *Controller) ListSystem(ctx context.Context, args SystemListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list system languages", 0)
	}
	langs, page, err := c.svc.ListSystem(ctx, api.PageOptions{Limit: args.limit, Page: args.page})
	if err != nil {
		return "", fail(err, "list system languages", 0)
	}
	return formatList("System Languages", langs, page), nil
}

// ListProject lists a project's languages.
func (c *Controller) ListProject(ctx context.Context, args ProjectListArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "list project languages", 0)
	}
	langs, page, err := c.svc.ListProject(ctx, args.ProjectID, api.PageOptions{Limit: args.limit, Page: args.page})
	if err != nil {
		return "", fail(err, "list project languages", 0)
	}
	return formatList("Languages in Project "+args.ProjectID, langs, page), nil
}

// Add adds languages to a project.
func (c *Controller) Add(ctx context.Context, args AddArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "add project languages", 0)
	}
	langs, err := c.svc.Add(ctx, args.ProjectID, args.request())
	if err != nil {
		return "", fail(err, "add project languages", 0)
	}
	return formatAdded(len(args.Languages), langs), nil
}

// Get shows one project language.
func (c *Controller) Get(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "get language", args.LanguageID)
	}
	l, err := c.svc.Get(ctx, args.ProjectID, args.LanguageID)
	if err != nil {
		return "", fail(err, "get language", args.LanguageID)
	}
	return formatLanguage("Language: "+l.LangName, l), nil
}

// Update updates a project language.
func (c *Controller) Update(ctx context.Context, args UpdateArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "update language", args.LanguageID)
	}
	l, err := c.svc.Update(ctx, args.ProjectID, args.LanguageID, args.request())
	if err != nil {
		return "", fail(err, "update language", args.LanguageID)
	}
	return formatLanguage("Language Updated", l), nil
}

// Remove removes a language from a project.
func (c *Controller) Remove(ctx context.Context, args GetArgs) (string, error) {
	if err := args.Validate(); err != nil {
		return "", fail(err, "remove language", args.LanguageID)
	}
	res, err := c.svc.Remove(ctx, args.ProjectID, args.LanguageID)
	if err != nil {
		return "", fail(err, "remove language", args.LanguageID)
	}
	return formatRemoved(args, res.LanguageDeleted), nil
}
