package tasks

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the tasks tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_tasks",
		Title:       "List tasks",
		Description: "Lists a project's tasks with status, progress and target languages. Filter by title or status.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_task",
		Title:       "Get task",
		Description: "Shows one task with per-language progress and assignees.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_create_task",
		Title:       "Create task",
		Description: "Creates a translation, automatic_translation or review task for a set of keys and target languages, with assignees per language.",
	}, d.ctl.Create)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_task",
		Title:       "Update task",
		Description: "Changes a task's title, description, due date, assignees or settings, or closes it.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_delete_task",
		Title:       "Delete task",
		Description: "Permanently deletes a task. Translations made in the task are kept.",
		Destructive: true,
	}, d.ctl.Delete)
}
