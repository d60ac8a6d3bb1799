package apperr

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestToolResult(t *testing.T) {
	cause := &statusErr{status: 404, msg: "Not Found"}
	err := WithContext(Wrap(cause, "get key"), Context{Operation: "get key", EntityType: "key", EntityID: "42"})

	res := ToolResult(err)
	if !res.IsError {
		t.Fatal("IsError = false, want true")
	}
	if got := res.Meta["errorType"]; got != string(KindNotFound) {
		t.Errorf("errorType = %v, want %s", got, KindNotFound)
	}
	if got := res.Meta["statusCode"]; got != 404 {
		t.Errorf("statusCode = %v, want 404", got)
	}
	if got := res.Meta["errorDetails"]; got != "Not Found" {
		t.Errorf("errorDetails = %v, want vendor message", got)
	}

	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want *mcp.TextContent", res.Content[0])
	}
	for _, want := range []string{"NOT_FOUND", "get key", "**Key ID**: `42`"} {
		if !strings.Contains(text.Text, want) {
			t.Errorf("text %q missing %q", text.Text, want)
		}
	}
}

func TestToolResultOmitsZeroStatus(t *testing.T) {
	res := ToolResult(Validation("limit must be between 1 and 500"))
	if _, ok := res.Meta["statusCode"]; ok {
		t.Error("statusCode present for an error without HTTP status")
	}
	if got := res.Meta["errorType"]; got != string(KindValidation) {
		t.Errorf("errorType = %v, want %s", got, KindValidation)
	}
}
