package contributors

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the contributors resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-contributors",
		Title:       "Project contributors",
		Description: "Contributors of a project. Query: limit, page.",
		URITemplate: "lokalise://contributors/{projectId}{?limit,page}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		limit, page, err := p.Paging()
		if err != nil {
			return "", err
		}
		return d.ctl.List(ctx, ListArgs{ProjectID: p.Var("projectId"), Limit: limit, Page: page})
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-contributor",
		Title:       "Contributor",
		Description: "One contributor.",
		URITemplate: "lokalise://contributors/{projectId}/{contributorId}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		id, err := p.ID("contributorId")
		if err != nil {
			return "", err
		}
		return d.ctl.Get(ctx, GetArgs{ProjectID: p.Var("projectId"), ContributorID: id})
	})
}
