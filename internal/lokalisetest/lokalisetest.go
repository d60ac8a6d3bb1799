// Package lokalisetest provides a fake Lokalise API and an in-memory MCP
// client for tests.
package lokalisetest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/ui"
)

// Token is the API key the fake server expects.
const Token = "test-token"

// Fake is a running fake Lokalise API.
type Fake struct {
	Server   *httptest.Server
	Config   *config.Loader
	Provider *api.Provider

	calls atomic.Int64
}

// New starts a fake serving mux under /api2/ and returns a loader and
// provider pointed at it. Requests without the test token get a 401.
func New(t *testing.T, mux *http.ServeMux) *Fake {
	t.Helper()

	f := &Fake{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		if r.Header.Get("X-Api-Token") != Token {
			JSON(w, http.StatusUnauthorized, map[string]any{
				"error": map[string]any{"code": 401, "message": "Invalid `X-Api-Token` header"},
			})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Server.Close)

	f.Config = Loader(t, map[string]string{
		config.KeyAPIKey:      Token,
		config.KeyAPIHostname: f.Server.URL + "/api2/",
	})
	f.Provider = api.NewProvider(f.Config)
	return f
}

// Calls returns the number of requests the fake received.
func (f *Fake) Calls() int {
	return int(f.calls.Load())
}

// Loader builds a config loader that reads only env, with file sources in
// a temp directory.
func Loader(t *testing.T, env map[string]string) *config.Loader {
	t.Helper()
	dir := t.TempDir()
	return config.New(
		config.WithEnvironment(env),
		config.WithDotenvPath(filepath.Join(dir, ".env")),
		config.WithGlobalPath(filepath.Join(dir, "configs.json")),
	)
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Paginate sets the X-Pagination-* headers.
func Paginate(w http.ResponseWriter, total, pages, limit, page string) {
	w.Header().Set("X-Pagination-Total-Count", total)
	w.Header().Set("X-Pagination-Page-Count", pages)
	w.Header().Set("X-Pagination-Limit", limit)
	w.Header().Set("X-Pagination-Page", page)
}

// Connect connects an in-memory MCP client to s.
func Connect(t *testing.T, s *mcp.Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	ct, st := mcp.NewInMemoryTransports()
	ss, err := s.Connect(ctx, st, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { cs.Close() })
	return cs
}

// NewServer returns an empty MCP server for registering tools under test.
func NewServer() *mcp.Server {
	return mcp.NewServer(&mcp.Implementation{Name: "lokalise-test", Version: "test"}, nil)
}

// CallTool calls a tool and returns its text and error flag.
func CallTool(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (string, *mcp.CallToolResult) {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s) error = %v", name, err)
	}
	return Text(t, res.Content), res
}

// ReadResource reads a resource and returns its text.
func ReadResource(t *testing.T, cs *mcp.ClientSession, uri string) string {
	t.Helper()
	res, err := cs.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: uri})
	if err != nil {
		t.Fatalf("ReadResource(%s) error = %v", uri, err)
	}
	if len(res.Contents) != 1 {
		t.Fatalf("ReadResource(%s) returned %d contents, want 1", uri, len(res.Contents))
	}
	return res.Contents[0].Text
}

// Text returns the first text content.
func Text(t *testing.T, content []mcp.Content) string {
	t.Helper()
	if len(content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want *mcp.TextContent", content[0])
	}
	return text.Text
}

// RunCommand executes one CLI command from cmds with args and returns what
// it printed to stdout and stderr.
func RunCommand(t *testing.T, cmds []*cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	t.Cleanup(func() { ui.SetOutput(os.Stdout, os.Stderr) })

	root := &cobra.Command{Use: "lokalise-mcp", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(cmds...)
	root.SetArgs(args)
	root.SetOut(&errOut)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
