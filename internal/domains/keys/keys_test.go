package keys

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

func listMux(t *testing.T, wantLimit string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/keys", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != wantLimit {
			t.Errorf("limit = %q, want %q", got, wantLimit)
		}
		lokalisetest.Paginate(w, "3", "2", wantLimit, "1")
		lokalisetest.JSON(w, http.StatusOK, map[string]any{
			"project_id": r.PathValue("id"),
			"keys": []map[string]any{
				{"key_id": 11, "key_name": "welcome.title", "platforms": []string{"web"}, "tags": []string{"onboarding"},
					"translations": []map[string]any{{"language_iso": "en", "translation": "Welcome"}, {"language_iso": "fr", "translation": "Bienvenue"}}},
				{"key_id": 12, "key_name": map[string]string{"ios": "WELCOME", "android": "welcome", "web": "welcome", "other": "welcome"}, "is_archived": true},
			},
		})
	})
	return mux
}

func TestListKeysCLIAcceptsMaxLimit(t *testing.T) {
	d, f := newDomain(t, listMux(t, "5000"))

	stdout, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "list-keys", "--project-id", projectID, "--limit", "5000", "--include-translations")
	if err != nil {
		t.Fatalf("list-keys error = %v, stderr %q", err, stderr)
	}
	if f.Calls() != 1 {
		t.Errorf("fake received %d calls, want 1", f.Calls())
	}
	for _, want := range []string{
		"# Keys in Project " + projectID,
		"| 11 | `welcome.title` | web | onboarding | en: Welcome; fr: Bienvenue |",
		"`welcome (archived)`",
		"use page 2 for more",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestListKeysRejectsLimitBeforeNetwork(t *testing.T) {
	for _, limit := range []string{"5001", "0", "-1"} {
		t.Run(limit, func(t *testing.T) {
			d, f := newDomain(t, listMux(t, limit))

			stdout, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "list-keys", "--project-id", projectID, "--limit", limit)
			if err == nil {
				t.Fatal("list-keys succeeded, want error")
			}
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("kind = %s, want validation", apperr.KindOf(err))
			}
			if stdout != "" || !strings.Contains(stderr, "limit must be between 1 and 5000") {
				t.Errorf("stdout %q stderr %q", stdout, stderr)
			}
			if f.Calls() != 0 {
				t.Errorf("fake received %d calls, want 0", f.Calls())
			}
		})
	}
}

func TestListKeysRejectsZeroPage(t *testing.T) {
	d, f := newDomain(t, listMux(t, "100"))

	_, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "list-keys", "--project-id", projectID, "--page", "0")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("list-keys --page 0 error = %v, want validation", err)
	}
	if !strings.Contains(stderr, "page must be 1 or greater, got 0") {
		t.Errorf("stderr = %q", stderr)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestListKeysOmittedLimitUsesDefault(t *testing.T) {
	d, f := newDomain(t, listMux(t, "100"))

	if _, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "list-keys", "--project-id", projectID); err != nil {
		t.Fatalf("list-keys error = %v, stderr %q", err, stderr)
	}
	if f.Calls() != 1 {
		t.Errorf("fake received %d calls, want 1", f.Calls())
	}
}

func TestBulkDeleteKeysRequiresConfirm(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api2/projects/{id}/keys", func(w http.ResponseWriter, r *http.Request) {
		t.Error("bulk delete reached the API without --confirm")
	})
	d, f := newDomain(t, mux)

	_, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "bulk-delete-keys", "--project-id", projectID, "--key-ids", "1,2,3")
	if err == nil {
		t.Fatal("bulk-delete-keys succeeded without --confirm")
	}
	if !strings.Contains(stderr, "refusing to delete 3 keys without --confirm") {
		t.Errorf("stderr = %q", stderr)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestBulkDeleteKeysConfirmed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api2/projects/{id}/keys", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Keys []int64 `json:"keys"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Keys) != 3 {
			t.Errorf("keys = %v, want 3 ids", body.Keys)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"project_id": projectID, "keys_removed": true, "keys_locked": 1})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "bulk-delete-keys", "--project-id", projectID, "--key-ids", "1,2,3", "--confirm")
	if err != nil {
		t.Fatalf("bulk-delete-keys error = %v", err)
	}
	if !strings.Contains(stdout, "Removed 3 key(s)") || !strings.Contains(stdout, "1 key(s) are locked") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCreateKeysFromFlags(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api2/projects/{id}/keys", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Keys []struct {
				KeyName      string   `json:"key_name"`
				Platforms    []string `json:"platforms"`
				Translations []struct {
					LanguageISO string `json:"language_iso"`
					Translation string `json:"translation"`
				} `json:"translations"`
			} `json:"keys"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Keys) != 1 || body.Keys[0].KeyName != "welcome.title" {
			t.Fatalf("keys = %+v", body.Keys)
		}
		k := body.Keys[0]
		if len(k.Translations) != 2 || k.Translations[0].LanguageISO != "de" || k.Translations[1].Translation != "Welcome" {
			t.Errorf("translations = %+v", k.Translations)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{
			"project_id": projectID,
			"keys":       []map[string]any{{"key_id": 99, "key_name": "welcome.title", "platforms": k.Platforms}},
			"errors":     []map[string]any{{"message": "This key name is already taken", "code": 400, "key": map[string]any{"key_name": "dup"}}},
		})
	})
	d, _ := newDomain(t, mux)

	stdout, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "create-keys", "--project-id", projectID,
		"--name", "welcome.title", "--translation", "en=Welcome", "--translation", "de=Willkommen")
	if err != nil {
		t.Fatalf("create-keys error = %v, stderr %q", err, stderr)
	}
	for _, want := range []string{"# Keys Created", "1 of 1 keys created.", "| 99 | `welcome.title` | web |", "`dup`: This key name is already taken (code 400)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestCreateKeysValidation(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	ctx := context.Background()

	tests := []struct {
		name string
		args CreateArgs
	}{
		{"empty", CreateArgs{ProjectID: projectID}},
		{"no name", CreateArgs{ProjectID: projectID, Keys: []KeyInput{{Platforms: []string{"web"}}}}},
		{"no platform", CreateArgs{ProjectID: projectID, Keys: []KeyInput{{KeyName: "a"}}}},
		{"bad platform", CreateArgs{ProjectID: projectID, Keys: []KeyInput{{KeyName: "a", Platforms: []string{"desktop"}}}}},
		{"too many", CreateArgs{ProjectID: projectID, Keys: make([]KeyInput, MaxCreate+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.ctl.Create(ctx, tt.args); apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("Create() error = %v, want validation", err)
			}
		})
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestUpdateKeySendsOnlyChangedFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api2/projects/{id}/keys/{key}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if _, ok := body["description"]; ok {
			t.Errorf("description sent although not set: %v", body)
		}
		if body["is_hidden"] != false || body["merge_tags"] != true {
			t.Errorf("body = %v", body)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"project_id": projectID, "key": map[string]any{"key_id": 5, "key_name": "a", "tags": []string{"x", "y"}}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "update-key", "--project-id", projectID, "--key-id", "5", "--hidden=false", "--tags", "y", "--merge-tags")
	if err != nil {
		t.Fatalf("update-key error = %v", err)
	}
	if !strings.Contains(stdout, "# Key Updated") || !strings.Contains(stdout, "x, y") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestUpdateKeyRequiresChange(t *testing.T) {
	d, _ := newDomain(t, http.NewServeMux())
	_, err := d.ctl.Update(context.Background(), UpdateArgs{ProjectID: projectID, KeyID: 5})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Update() error = %v, want validation", err)
	}
}

func TestGetKeyRendersPlurals(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/keys/{key}", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"key": map[string]any{
			"key_id": 7, "key_name": "items.count", "is_plural": true, "platforms": []string{"ios", "web"},
			"translations": []map[string]any{{"translation_id": 70, "language_iso": "en", "translation": `{"one":"1 item","other":"%d items"}`, "is_reviewed": true}},
		}})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterTools(s)
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	text, res := lokalisetest.CallTool(t, cs, "lokalise_get_key", map[string]any{"projectId": projectID, "keyId": 7})
	if res.IsError {
		t.Fatalf("get_key error: %s", text)
	}
	if !strings.Contains(text, "| en | one: 1 item; other: %d items | Yes | No | 70 |") {
		t.Errorf("text = %q", text)
	}

	md := lokalisetest.ReadResource(t, cs, "lokalise://keys/"+projectID+"/7")
	if !strings.Contains(md, "# Key: items.count") {
		t.Errorf("resource = %q", md)
	}
	md = lokalisetest.ReadResource(t, cs, "lokalise://keys/"+projectID+"/abc")
	if !strings.Contains(md, string(apperr.KindInvalidID)) {
		t.Errorf("resource with bad key id = %q", md)
	}
}

func TestListKeysToolValidation(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	s := lokalisetest.NewServer()
	d.RegisterTools(s)
	cs := lokalisetest.Connect(t, s)

	for _, args := range []map[string]any{
		{"projectId": projectID, "limit": 6000},
		{"projectId": projectID, "limit": 0},
		{"projectId": projectID, "page": 0},
	} {
		_, res := lokalisetest.CallTool(t, cs, "lokalise_list_keys", args)
		if !res.IsError || res.Meta["errorType"] != string(apperr.KindValidation) {
			t.Errorf("%v: result meta = %v", args, res.Meta)
		}
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}
