package queuedprocesses

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the queued process resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-processes",
		Title:       "Queued processes",
		Description: "Background jobs of a project. Query: limit, page.",
		URITemplate: "lokalise://processes/{projectId}{?limit,page}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		limit, page, err := p.Paging()
		if err != nil {
			return "", err
		}
		return d.ctl.List(ctx, ListArgs{ProjectID: p.Var("projectId"), Limit: limit, Page: page})
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-process",
		Title:       "Queued process",
		Description: "One background job.",
		URITemplate: "lokalise://processes/{projectId}/{processId}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		return d.ctl.Get(ctx, GetArgs{ProjectID: p.Var("projectId"), ProcessID: p.Var("processId")})
	})
}
