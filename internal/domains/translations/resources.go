package translations

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the translations resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-translations",
		Title:       "Project translations",
		Description: "Translations of a project. Query: limit, page, cursor, filterLangId, filterIsReviewed, filterUntranslated.",
		URITemplate: "lokalise://translations/{projectId}{?limit,page,cursor,filterLangId,filterIsReviewed,filterUntranslated}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		args, err := listArgsFromQuery(p)
		if err != nil {
			return "", err
		}
		return d.ctl.List(ctx, args)
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-translation",
		Title:       "Translation",
		Description: "One translation.",
		URITemplate: "lokalise://translations/{projectId}/{translationId}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		id, err := strconv.ParseInt(p.Var("translationId"), 10, 64)
		if err != nil {
			return "", apperr.New(apperr.KindInvalidID, "translationId %q is not numeric", p.Var("translationId"))
		}
		return d.ctl.Get(ctx, GetArgs{ProjectID: p.Var("projectId"), TranslationID: id})
	})
}

func listArgsFromQuery(p handler.Params) (ListArgs, error) {
	args := ListArgs{ProjectID: p.Var("projectId"), Cursor: p.String("cursor")}
	var err error
	if args.Limit, err = p.OptionalInt("limit"); err != nil {
		return args, err
	}
	if args.Page, err = p.OptionalInt("page"); err != nil {
		return args, err
	}
	lang, err := p.Int("filterLangId")
	if err != nil {
		return args, err
	}
	args.FilterLangID = int64(lang)
	if args.FilterIsReviewed, err = p.Bool("filterIsReviewed"); err != nil {
		return args, err
	}
	if args.FilterUntranslated, err = p.Bool("filterUntranslated"); err != nil {
		return args, err
	}
	return args, nil
}
