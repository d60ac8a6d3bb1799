package usergroups

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the usergroups resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-usergroups",
		Title:       "Team user groups",
		Description: "User groups of a team. Query: limit, page.",
		URITemplate: "lokalise://usergroups/{teamId}{?limit,page}",
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

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-usergroup",
		Title:       "User group",
		Description: "One user group.",
		URITemplate: "lokalise://usergroups/{teamId}/{groupId}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		teamID, err := p.ID("teamId")
		if err != nil {
			return "", err
		}
		groupID, err := p.ID("groupId")
		if err != nil {
			return "", err
		}
		return d.ctl.Get(ctx, GetArgs{TeamID: teamID, GroupID: groupID})
	})
}
