package projects

import (
	"context"
	"encoding/json"
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

func projectsMux(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("include_statistics"); got != "1" {
			t.Errorf("include_statistics = %q, want 1 by default", got)
		}
		lokalisetest.Paginate(w, "2", "1", "100", "1")
		lokalisetest.JSON(w, http.StatusOK, map[string]any{
			"projects": []map[string]any{
				{"project_id": projectID, "name": "Website", "base_language_iso": "en", "created_at": "2024-03-01 10:00:00 (Etc/UTC)",
					"statistics": map[string]any{"progress_total": 75, "keys_total": 120}},
				{"project_id": "2.b", "name": "Mobile | iOS", "base_language_iso": "de"},
			},
		})
	})
	mux.HandleFunc("GET /api2/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != projectID {
			lokalisetest.JSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{"code": 404, "message": "Not Found"}})
			return
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{
			"project_id": projectID, "name": "Website", "project_type": "localization_files",
			"statistics": map[string]any{"progress_total": 75, "keys_total": 120,
				"languages": []map[string]any{{"language_iso": "fr", "progress": 50, "words_to_do": 30}}},
		})
	})
	return mux
}

func TestListProjects(t *testing.T) {
	d, _ := newDomain(t, projectsMux(t))

	md, err := d.ctl.List(context.Background(), ListArgs{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, want := range []string{
		"# Lokalise Projects",
		"| Name | Project ID | Base | Keys | Progress | Created |",
		"`" + projectID + "`",
		"75%",
		`Mobile \| iOS`,
		"2024-03-01 10:00 UTC",
		"Showing 2 of 2",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("List() output missing %q:\n%s", want, md)
		}
	}
}

func TestListProjectsRejectsLimit(t *testing.T) {
	d, f := newDomain(t, projectsMux(t))

	_, err := d.ctl.List(context.Background(), ListArgs{Limit: domain.Int(501)})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("List(limit=501) error = %v, want validation", err)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestGetProjectNotFound(t *testing.T) {
	d, _ := newDomain(t, projectsMux(t))

	_, err := d.ctl.Get(context.Background(), GetArgs{ProjectID: "missing.1"})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("Get() kind = %s, want not found (err %v)", apperr.KindOf(err), err)
	}
	e, _ := apperr.As(err)
	if e.Context == nil || e.Context.EntityID != "missing.1" || e.Context.Operation != "get project" {
		t.Errorf("context = %+v", e.Context)
	}
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Errorf("StatusOf() = %d, want 404", apperr.StatusOf(err))
	}
}

func TestCreateProjectSendsLanguages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api2/projects", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "Docs" || body["base_lang_iso"] != "en" {
			t.Errorf("body = %v", body)
		}
		langs, _ := body["languages"].([]any)
		if len(langs) != 2 {
			t.Errorf("languages = %v, want 2 entries", body["languages"])
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"project_id": "9.z", "name": "Docs", "base_language_iso": "en"})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "create-project", "--name", "Docs", "--base-lang", "en", "--languages", "fr,de")
	if err != nil {
		t.Fatalf("create-project error = %v", err)
	}
	if !strings.Contains(stdout, "# Project Created") || !strings.Contains(stdout, "`9.z`") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())

	if _, err := d.ctl.Create(context.Background(), CreateArgs{}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Create(no name) error = %v", err)
	}
	if _, err := d.ctl.Create(context.Background(), CreateArgs{Name: "x", ProjectType: "game"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Create(bad type) error = %v", err)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestDeleteProjectRequiresConfirm(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())

	stdout, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "delete-project", "--project-id", projectID)
	if err == nil {
		t.Fatal("delete-project without --confirm succeeded")
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "--confirm") {
		t.Errorf("stderr = %q, want safety message", stderr)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestDeleteProjectConfirmed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api2/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"project_id": r.PathValue("id"), "project_deleted": true})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "delete-project", "--project-id", projectID, "--confirm")
	if err != nil {
		t.Fatalf("delete-project error = %v", err)
	}
	if !strings.Contains(stdout, "were deleted") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestToolsAndResources(t *testing.T) {
	d, _ := newDomain(t, projectsMux(t))
	s := lokalisetest.NewServer()
	d.RegisterTools(s)
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	text, res := lokalisetest.CallTool(t, cs, "lokalise_get_project", map[string]any{"projectId": projectID})
	if res.IsError {
		t.Fatalf("get_project IsError, text %q", text)
	}
	if !strings.Contains(text, "# Project: Website") || !strings.Contains(text, "| fr | 50% | 30 |") {
		t.Errorf("get_project text = %q", text)
	}

	text, res = lokalisetest.CallTool(t, cs, "lokalise_get_project", map[string]any{"projectId": "nope.1"})
	if !res.IsError || res.Meta["errorType"] != string(apperr.KindNotFound) {
		t.Errorf("missing project result = %+v, text %q", res.Meta, text)
	}

	md := lokalisetest.ReadResource(t, cs, "lokalise://projects?limit=10")
	if !strings.Contains(md, "# Lokalise Projects") {
		t.Errorf("projects resource = %q", md)
	}
	md = lokalisetest.ReadResource(t, cs, "lokalise://projects/"+projectID)
	if !strings.Contains(md, "# Project: Website") {
		t.Errorf("project resource = %q", md)
	}
}
