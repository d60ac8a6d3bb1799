package tasks

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterResources adds the tasks resources to s.
func (d *Domain) RegisterResources(s *mcp.Server) {
	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-tasks",
		Title:       "Project tasks",
		Description: "Tasks of a project. Query: limit, page, filterStatuses.",
		URITemplate: "lokalise://tasks/{projectId}{?limit,page,filterStatuses}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		limit, page, err := p.Paging()
		if err != nil {
			return "", err
		}
		return d.ctl.List(ctx, ListArgs{
			ProjectID:      p.Var("projectId"),
			Limit:          limit,
			Page:           page,
			FilterStatuses: p.Strings("filterStatuses"),
		})
	})

	handler.AddResource(s, handler.Resource{
		Name:        "lokalise-task",
		Title:       "Task",
		Description: "One task with its languages.",
		URITemplate: "lokalise://tasks/{projectId}/{taskId}",
	}, func(ctx context.Context, p handler.Params) (string, error) {
		taskID, err := p.ID("taskId")
		if err != nil {
			return "", err
		}
		return d.ctl.Get(ctx, GetArgs{ProjectID: p.Var("projectId"), TaskID: taskID})
	})
}
