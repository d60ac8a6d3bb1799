package comments

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the comments resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-project-comments",
		Title:       "Project comments",
		Description: "Every comment in a project. Query: limit, page.",
		URITemplate: "lokalise://comments/{projectId}{?limit,page}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		limit, page, err := p.Paging()
		if err != nil {
			return "", err
		}
		return d.ctl.ListProject(ctx, ProjectListArgs{ProjectID: p.Var("projectId"), Limit: limit, Page: page})
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-key-comments",
		Title:       "Key comments",
		Description: "Comments on one key. Query: limit, page.",
		URITemplate: "lokalise://comments/{projectId}/{keyId}{?limit,page}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		keyID, err := p.ID("keyId")
		if err != nil {
			return "", err
		}
		limit, page, err := p.Paging()
		if err != nil {
			return "", err
		}
		return d.ctl.ListKey(ctx, KeyListArgs{ProjectID: p.Var("projectId"), KeyID: keyID, Limit: limit, Page: page})
	})
}
