package teamusers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the teamusers resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-team-users",
		Title:       "Team users",
		Description: "Users of a team. Query: limit, page.",
		URITemplate: "lokalise://teamusers/{teamId}{?limit,page}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		teamID, err := p.ID("teamId")
		if err != nil {
			return "", err
		}
		limit, page, err := p.Paging()
		if err != nil {
			return "", err
		}
		return d.ctl.List(ctx, ListArgs{TeamID: teamID, Limit: limit, Page: page})
	})
}
