package keys

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the keys resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-keys",
		Title:       "Project keys",
		Description: "Keys of a project. Query: limit, page, cursor, includeTranslations, filterTags, filterPlatforms.",
		URITemplate: "lokalise://keys/{projectId}{?limit,page,cursor,includeTranslations,filterTags,filterPlatforms}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		args, err := listArgsFromQuery(p)
		if err != nil {
			return "", err
		}
		return d.ctl.List(ctx, args)
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-key",
		Title:       "Key",
		Description: "One key with its translations.",
		URITemplate: "lokalise://keys/{projectId}/{keyId}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		keyID, err := strconv.ParseInt(p.Var("keyId"), 10, 64)
		if err != nil {
			return "", apperr.New(apperr.KindInvalidID, "keyId %q is not numeric", p.Var("keyId"))
		}
		return d.ctl.Get(ctx, GetArgs{ProjectID: p.Var("projectId"), KeyID: keyID})
	})
}

func listArgsFromQuery(p handler.Params) (ListArgs, error) {
	args := ListArgs{
		ProjectID:       p.Var("projectId"),
		Cursor:          p.String("cursor"),
		FilterTags:      p.Strings("filterTags"),
		FilterPlatforms: p.Strings("filterPlatforms"),
	}
	var err error
	if args.Limit, err = p.OptionalInt("limit"); err != nil {
		return args, err
	}
	if args.Page, err = p.OptionalInt("page"); err != nil {
		return args, err
	}
	include, err := p.Bool("includeTranslations")
	if err != nil {
		return args, err
	}
	args.IncludeTranslations = include != nil && *include
	return args, nil
}
