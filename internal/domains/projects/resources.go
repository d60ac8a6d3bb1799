package projects

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the projects resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-projects",
		Title:       "Lokalise projects",
		Description: "Projects the API token can access. Query: limit, page.",
		URITemplate: "lokalise://projects{?limit,page}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		limit, page, err := p.Paging()
		if err != nil {
			return "", err
		}
		return d.ctl.List(ctx, ListArgs{Limit: limit, Page: page})
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-project",
		Title:       "Lokalise project",
		Description: "One project with statistics.",
		URITemplate: "lokalise://projects/{projectId}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		return d.ctl.Get(ctx, GetArgs{ProjectID: p.Var("projectId")})
	})
}
