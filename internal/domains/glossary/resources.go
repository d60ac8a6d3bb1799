package glossary

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the glossary resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-glossary",
		Title:       "Project glossary",
		Description: "Glossary terms of a project. Query: limit, cursor.",
		URITemplate: "lokalise://glossary/{projectId}{?limit,cursor}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		limit, err := p.OptionalInt("limit")
		if err != nil {
			return "", err
		}
		return d.ctl.List(ctx, ListArgs{ProjectID: p.Var("projectId"), Limit: limit, Cursor: p.String("cursor")})
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-glossary-term",
		Title:       "Glossary term",
		Description: "One glossary term.",
		URITemplate: "lokalise://glossary/{projectId}/{termId}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		termID, err := p.ID("termId")
		if err != nil {
			return "", err
		}
		return d.ctl.Get(ctx, GetArgs{ProjectID: p.Var("projectId"), TermID: termID})
	})
}
