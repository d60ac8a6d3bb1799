package queuedprocesses

import (
	"net/http"
	"strings"
	"testing"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/lokalisetest"
)

const projectID = "3002780358964f9bab5a92.87762498"

func newDomain(t *testing.T, mux *http.ServeMux) (*Domain, *lokalisetest.Fake) {
	t.Helper()
	f := lokalisetest.New(t, mux)
	return New(domain.Deps{Clients: f.Provider, Config: f.Config}), f
}

func TestListQueuedProcesses(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/processes", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"processes": []map[string]any{
			{"process_id": "abc123", "type": "file-import", "status": "finished", "created_by_email": "ana@example.com"},
		}})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	md := lokalisetest.ReadResource(t, cs, "lokalise://processes/"+projectID)
	if !strings.Contains(md, "| `abc123` |") || !strings.Contains(md, "| Finished |") || !strings.Contains(md, "ana@example.com") {
		t.Errorf("resource = %q", md)
	}
}

func TestGetQueuedProcessDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/processes/{pid}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("pid") != "abc123" {
			t.Errorf("process = %q", r.PathValue("pid"))
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"process": map[string]any{
			"process_id": "abc123",
			"type":       "file-import",
			"status":     "finished",
			"details": map[string]any{
				"total_number_of_keys": 12,
				"files":                []any{map[string]any{"name_original": "en.json", "status": "finished"}},
			},
		}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "get-queued-process", "--project-id", projectID, "--process-id", "abc123")
	if err != nil {
		t.Fatalf("get-queued-process error = %v", err)
	}
	for _, want := range []string{"# Queued Process abc123", "- **Total Number Of Keys**: 12", "```yaml", "name_original: en.json"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestGetQueuedProcessRequiresID(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	s := lokalisetest.NewServer()
	d.RegisterTools(s)
	cs := lokalisetest.Connect(t, s)

	_, res := lokalisetest.CallTool(t, cs, "lokalise_get_queued_process", map[string]any{"projectId": projectID, "processId": " "})
	if !res.IsError || res.Meta["errorType"] != string(apperr.KindValidation) {
		t.Errorf("meta = %v, want validation error", res.Meta)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}
