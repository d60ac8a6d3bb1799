package languages

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the languages resources to s. The system list is
// a static resource so it takes precedence over the project template.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-system-languages",
		Title:       "System languages",
		Description: "Every language Lokalise supports.",
		URITemplate: "lokalise://languages/system",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		return d.ctl.ListSystem(ctx, SystemListArgs{Limit: domain.Int(domain.MaxLimit)})
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-project-languages",
		Title:       "Project languages",
		Description: "Languages of a project. Query: limit, page.",
		URITemplate: "lokalise://languages/{projectId}{?limit,page}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		limit, page, err := p.Paging()
		if err != nil {
			return "", err
		}
		return d.ctl.ListProject(ctx, ProjectListArgs{ProjectID: p.Var("projectId"), Limit: limit, Page: page})
	})
}
