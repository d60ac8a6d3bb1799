package comments

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the comments tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_project_comments",
		Title:       "List project comments",
		Description: "Lists every comment left on any key of a project, newest first.",
		ReadOnly:    true,
	}, d.ctl.ListProject)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_key_comments",
		Title:       "List key comments",
		Description: "Lists the comments on one key.",
		ReadOnly:    true,
	}, d.ctl.ListKey)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_create_comments",
		Title:       "Add comments",
		Description: "Adds one or more comments to a key.",
	}, d.ctl.Create)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_comment",
		Title:       "Get comment",
		Description: "Shows one comment on a key.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_delete_comment",
		Title:       "Delete comment",
		Description: "Permanently deletes one comment from a key.",
		Destructive: true,
	}, d.ctl.Delete)
}
