package queuedprocesses

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the queued process tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_queued_processes",
		Title:       "List queued processes",
		Description: "Lists a project's background jobs such as file imports, newest first, with their status.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_queued_process",
		Title:       "Get queued process",
		Description: "Shows one background job with its full details, e.g. per-file import results.",
		ReadOnly:    true,
	}, d.ctl.Get)
}
