package contributors

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

func TestListContributors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/contributors", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "2" {
			t.Errorf("limit = %q, want 2", got)
		}
		lokalisetest.Paginate(w, "3", "2", "2", "1")
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"contributors": []map[string]any{
			{"user_id": 1, "email": "ana@example.com", "fullname": "Ana", "is_admin": true, "is_reviewer": true},
			{"user_id": 2, "email": "bo@example.com", "fullname": "Bo", "languages": []map[string]any{
				{"lang_iso": "en", "is_writable": true}, {"lang_iso": "de"},
			}},
		}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "list-contributors", "--project-id", projectID, "--limit", "2")
	if err != nil {
		t.Fatalf("list-contributors error = %v", err)
	}
	for _, want := range []string{
		"| 1 | Ana | ana@example.com | Admin, Reviewer |  |",
		"| 2 | Bo | bo@example.com | Translator | en (rw), de (r) |",
		"use page 2 for more",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestCurrentContributorResource(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/contributors/me", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"contributor": map[string]any{"user_id": 7, "email": "me@example.com", "admin_rights": []string{"keys", "tasks"}}})
	})
	mux.HandleFunc("GET /api2/projects/{id}/contributors/{uid}", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{"code": 404, "message": "Not found"}})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterTools(s)
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	text, res := lokalisetest.CallTool(t, cs, "lokalise_get_current_contributor", map[string]any{"projectId": projectID})
	if res.IsError {
		t.Fatalf("tool error: %s", text)
	}
	if !strings.Contains(text, "# Current Contributor: me@example.com") || !strings.Contains(text, "- **Admin rights**: keys, tasks") {
		t.Errorf("text = %q", text)
	}

	md := lokalisetest.ReadResource(t, cs, "lokalise://contributors/"+projectID+"/99")
	if !strings.Contains(md, "NOT_FOUND") {
		t.Errorf("resource = %q, want NOT_FOUND", md)
	}
}

func TestAddContributorFromFlags(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api2/projects/{id}/contributors", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contributors []struct {
				Email     string           `json:"email"`
				Languages []map[string]any `json:"languages"`
			} `json:"contributors"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Contributors) != 1 || body.Contributors[0].Email != "ana@example.com" {
			t.Errorf("contributors = %+v", body.Contributors)
		} else if l := body.Contributors[0].Languages; len(l) != 2 || l[0]["is_writable"] != true || l[1]["is_writable"] != false {
			t.Errorf("languages = %v", l)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"contributors": []map[string]any{{"user_id": 11, "email": "ana@example.com"}}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "add-contributors", "--project-id", projectID, "--email", "ana@example.com", "--languages", "en:rw,de")
	if err != nil {
		t.Fatalf("add-contributors error = %v", err)
	}
	if !strings.Contains(stdout, "Added 1 of 1 contributors.") || !strings.Contains(stdout, "ana@example.com (ID 11, Translator)") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestContributorValidation(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	ctx := context.Background()
	yes := true

	cases := []struct {
		name string
		call func() error
	}{
		{"bad email", func() error {
			_, err := d.ctl.Add(ctx, AddArgs{ProjectID: projectID, Contributors: []NewContributor{{Email: "nope", Permissions: Permissions{IsAdmin: &yes}}}})
			return err
		}},
		{"no languages", func() error {
			_, err := d.ctl.Add(ctx, AddArgs{ProjectID: projectID, Contributors: []NewContributor{{Email: "a@example.com"}}})
			return err
		}},
		{"bad right", func() error {
			_, err := d.ctl.Add(ctx, AddArgs{ProjectID: projectID, Contributors: []NewContributor{{Email: "a@example.com", Permissions: Permissions{IsAdmin: &yes, AdminRights: []string{"everything"}}}}})
			return err
		}},
		{"empty update", func() error {
			_, err := d.ctl.Update(ctx, UpdateArgs{ProjectID: projectID, ContributorID: 3})
			return err
		}},
		{"bad id", func() error {
			_, err := d.ctl.Get(ctx, GetArgs{ProjectID: projectID})
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("error = %v, want validation", err)
			}
		})
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestRemoveContributorRequiresConfirm(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	_, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "remove-contributor", "--project-id", projectID, "--contributor-id", "5")
	if err == nil || !strings.Contains(stderr, "refusing to remove contributor 5") {
		t.Errorf("err = %v, stderr = %q", err, stderr)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}
