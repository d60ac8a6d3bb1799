package apperr

import (
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolResult converts err into the MCP tool error payload: a Markdown text
// body plus errorType, statusCode and errorDetails metadata.
func ToolResult(err error) *mcp.CallToolResult {
	kind := KindOf(err)
	status := StatusOf(err)

	meta := mcp.Meta{
		"errorType":    string(kind),
		"errorDetails": Details(err),
	}
	if status != 0 {
		meta["statusCode"] = status
	}

	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: Markdown(err)}},
		Meta:    meta,
	}
}

// Markdown renders err for an MCP client.
func Markdown(err error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Error (%s)**: %s", KindOf(err), err.Error())
	if e, ok := As(err); ok && e.Context != nil && e.Context.EntityID != "" {
		fmt.Fprintf(&b, "\n\n- **%s**: `%s`", entityLabel(e.Context.EntityType), e.Context.EntityID)
	}
	return b.String()
}

func entityLabel(entity string) string {
	if entity == "" {
		return "ID"
	}
	return strings.ToUpper(entity[:1]) + entity[1:] + " ID"
}
