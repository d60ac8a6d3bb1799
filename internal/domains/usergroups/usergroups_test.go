package usergroups

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

func newDomain(t *testing.T, mux *http.ServeMux) (*Domain, *lokalisetest.Fake) {
	t.Helper()
	f := lokalisetest.New(t, mux)
	return New(domain.Deps{Clients: f.Provider, Config: f.Config}), f
}

var group = map[string]any{
	"group_id": 50,
	"name":     "Translators",
	"team_id":  18,
	"permissions": map[string]any{
		"is_reviewer": true,
		"languages":   []map[string]any{{"lang_iso": "de", "lang_name": "German", "is_writable": true}},
	},
	"projects": []string{"p1.a", "p2.b"},
	"members":  []int64{7, 8},
}

func TestListUserGroupsResource(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/teams/18/groups", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q, want 2", got)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"team_id": 18, "user_groups": []any{group}})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	md := lokalisetest.ReadResource(t, cs, "lokalise://usergroups/18?page=2")
	if !strings.Contains(md, "| 50 | Translators | No | Yes | 2 | 2 |") {
		t.Errorf("resource = %q", md)
	}

	md = lokalisetest.ReadResource(t, cs, "lokalise://usergroups/team")
	if !strings.Contains(md, string(apperr.KindInvalidID)) {
		t.Errorf("resource with bad team = %q", md)
	}
}

func TestGroupEnvelopes(t *testing.T) {
	mux := http.NewServeMux()
	// get returns the group at the top level, adding members wraps it.
	mux.HandleFunc("GET /api2/teams/18/groups/50", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, group)
	})
	mux.HandleFunc("PUT /api2/teams/18/groups/50/members/add", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Users []int64 `json:"users"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Users) != 2 || body.Users[1] != 9 {
			t.Errorf("users = %v", body.Users)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"team_id": 18, "group": map[string]any{"group_id": 50, "name": "Translators", "members": []int64{7, 8, 9}}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "get-usergroup", "--team-id", "18", "--group-id", "50")
	if err != nil {
		t.Fatalf("get-usergroup error = %v", err)
	}
	for _, want := range []string{"# User Group: Translators", "- **Members**: 7, 8", "- `p2.b`", "| de | German | Yes |"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = lokalisetest.RunCommand(t, d.Commands(), "add-members-to-group", "--team-id", "18", "--group-id", "50", "--user-ids", "8,9")
	if err != nil {
		t.Fatalf("add-members-to-group error = %v", err)
	}
	if !strings.Contains(stdout, "Added 2 member(s).") || !strings.Contains(stdout, "- **Team ID**: 18") || !strings.Contains(stdout, "- **Members**: 7, 8, 9") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCreateUserGroup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api2/teams/18/groups", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		langs, _ := body["languages"].(map[string]any)
		if body["name"] != "Reviewers" || body["is_reviewer"] != true || langs == nil {
			t.Errorf("body = %v", body)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"team_id": 18, "group": map[string]any{"group_id": 51, "name": "Reviewers"}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "create-usergroup", "--team-id", "18", "--name", "Reviewers", "--reviewer", "--contributable-languages", "640")
	if err != nil {
		t.Fatalf("create-usergroup error = %v", err)
	}
	if !strings.Contains(stdout, "# User Group Created") || !strings.Contains(stdout, "- **Group ID**: 51") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestUserGroupValidation(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	ctx := context.Background()

	if _, err := d.ctl.Create(ctx, CreateArgs{TeamID: 18, GroupData: GroupData{Name: "X"}}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Create() without languages error = %v", err)
	}
	if _, err := d.ctl.Create(ctx, CreateArgs{TeamID: 18, GroupData: GroupData{Name: "X", AdminRights: []string{"keys"}, ContributableLanguages: []int64{1}}}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Create() with rights but no admin error = %v", err)
	}
	if _, err := d.ctl.AddMembers(ctx, MembersArgs{TeamID: 18, GroupID: 50}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("AddMembers() without users error = %v", err)
	}
	if _, err := d.ctl.AddProjects(ctx, ProjectsArgs{TeamID: 18, GroupID: 50, ProjectIDs: []string{"a/b"}}); apperr.KindOf(err) != apperr.KindInvalidID {
		t.Errorf("AddProjects() with bad id error = %v", err)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}

	_, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "delete-usergroup", "--team-id", "18", "--group-id", "50")
	if err == nil || !strings.Contains(stderr, "refusing to delete user group 50") {
		t.Errorf("err = %v, stderr = %q", err, stderr)
	}
}
