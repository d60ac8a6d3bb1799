// Package handler adapts domain controllers to the two outer surfaces: MCP
// tools and resources, and cobra commands.
//
// Controllers return Markdown or a classified error. This package turns that
// pair into MCP results, resource contents, or stdout/stderr output with the
// right exit status.
package handler

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/logging"
)

var log = logging.For("handler")

// boolPtr returns a pointer to a bool value. Used for ToolAnnotations fields.
func boolPtr(b bool) *bool { return &b }

// Tool describes an MCP tool backed by a controller call.
type Tool struct {
	// Name is the tool name, e.g. "lokalise_list_keys".
	Name string

	// Title is the human-readable title shown by clients.
	Title string

	// Description is the natural-language description sent to the model.
	Description string

	// ReadOnly marks tools that never modify Lokalise data.
	ReadOnly bool

	// Destructive marks tools that delete or overwrite data.
	Destructive bool
}

// Annotations returns the MCP annotations for t.
func (t Tool) Annotations() *mcp.ToolAnnotations {
	a := &mcp.ToolAnnotations{
		Title:         t.Title,
		ReadOnlyHint:  t.ReadOnly,
		OpenWorldHint: boolPtr(true),
	}
	if !t.ReadOnly {
		a.DestructiveHint = boolPtr(t.Destructive)
	}
	return a
}

// ToolFunc produces the Markdown answer for one tool call.
type ToolFunc[In any] func(ctx context.Context, in In) (string, error)

// AddTool registers fn as an MCP tool. The input schema is inferred from
// In. A controller error becomes an IsError result carrying the error
// classification in _meta; it is never returned as a protocol error.
//
// Parameters:
//   - s: The MCP server
//   - t: Tool metadata
//   - fn: The controller call
func AddTool[In any](s *mcp.Server, t Tool, fn ToolFunc[In]) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        t.Name,
		Title:       t.Title,
		Description: t.Description,
		Annotations: t.Annotations(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		log.Debug("tool call", "tool", t.Name)
		md, err := fn(mcpProgress(ctx, req), in)
		if err != nil {
			log.Debug("tool failed", "tool", t.Name, "kind", apperr.KindOf(err), "err", err)
			return apperr.ToolResult(err), nil, nil
		}
		return TextResult(md), nil, nil
	})
}

// TextResult wraps Markdown in a successful tool result.
func TextResult(md string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: md}},
	}
}
