package teamusers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/lokalisetest"
)

func newDomain(t *testing.T, mux *http.ServeMux) (*Domain, *lokalisetest.Fake) {
	t.Helper()
	f := lokalisetest.New(t, mux)
	return New(domain.Deps{Clients: f.Provider, Config: f.Config}), f
}

func TestListTeamUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/teams/18/users", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"team_id": 18, "team_users": []map[string]any{
			{"user_id": 420, "email": "ana@example.com", "fullname": "Ana", "role": "owner", "created_at": "2024-05-01 10:30:00 (Etc/UTC)"},
		}})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	md := lokalisetest.ReadResource(t, cs, "lokalise://teamusers/18")
	if !strings.Contains(md, "| 420 | Ana | ana@example.com | Owner | 2024-05-01 10:30 UTC |") {
		t.Errorf("resource = %q", md)
	}
}

func TestUpdateTeamUserRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api2/teams/18/users/420", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["role"] != "admin" {
			t.Errorf("role = %q, want admin", body["role"])
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"team_id": 18, "team_user": map[string]any{"user_id": 420, "email": "ana@example.com", "role": "admin"}})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterTools(s)
	cs := lokalisetest.Connect(t, s)

	text, res := lokalisetest.CallTool(t, cs, "lokalise_update_team_user", map[string]any{"teamId": 18, "userId": 420, "role": "admin"})
	if res.IsError {
		t.Fatalf("tool error: %s", text)
	}
	if !strings.Contains(text, "# Team User Updated") || !strings.Contains(text, "- **Role**: Admin") {
		t.Errorf("text = %q", text)
	}

	text, res = lokalisetest.CallTool(t, cs, "lokalise_update_team_user", map[string]any{"teamId": 18, "userId": 420, "role": "superuser"})
	if !res.IsError || res.Meta["errorType"] != string(apperr.KindValidation) {
		t.Errorf("bad role result = %q (meta %v)", text, res.Meta)
	}
}

func TestDeleteTeamUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api2/teams/18/users/420", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"team_id": 18, "team_user_deleted": true})
	})
	d, f := newDomain(t, mux)

	_, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "delete-team-user", "--team-id", "18", "--user-id", "420")
	if err == nil || !strings.Contains(stderr, "refusing to remove user 420 from team 18 without --confirm") {
		t.Errorf("err = %v, stderr = %q", err, stderr)
	}
	if f.Calls() != 0 {
		t.Fatalf("fake received %d calls before confirm", f.Calls())
	}

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "delete-team-user", "--team-id", "18", "--user-id", "420", "--confirm")
	if err != nil {
		t.Fatalf("delete-team-user error = %v", err)
	}
	if !strings.Contains(stdout, "Removed user 420 from team 18.") {
		t.Errorf("stdout = %q", stdout)
	}
}
