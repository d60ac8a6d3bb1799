package glossary

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

func TestListGlossaryCursor(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/glossary-terms", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cursor"); got != "abc" {
			t.Errorf("cursor = %q", got)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{
			"data": []map[string]any{{"id": 5, "term": "Lokalise", "translatable": false, "caseSensitive": true, "tags": []string{"brand"}}},
			"meta": map[string]any{"count": 1, "limit": 100, "cursor": "abc", "nextCursor": "def"},
		})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	md := lokalisetest.ReadResource(t, cs, "lokalise://glossary/"+projectID+"?cursor=abc")
	for _, want := range []string{"| 5 | Lokalise |  | case-sensitive, not translatable | 0 | brand |", "next cursor `def`"} {
		if !strings.Contains(md, want) {
			t.Errorf("resource missing %q:\n%s", want, md)
		}
	}
}

func TestListGlossaryRejectsLimit(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	_, err := d.ctl.List(context.Background(), ListArgs{ProjectID: projectID, Limit: domain.Int(501)})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("List() error = %v, want validation", err)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestCreateGlossaryTermFromFlags(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api2/projects/{id}/glossary-terms", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Terms []map[string]any `json:"terms"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Terms) != 1 || body.Terms[0]["term"] != "Lokalise" || body.Terms[0]["translatable"] != false {
			t.Errorf("terms = %v", body.Terms)
		}
		if _, ok := body.Terms[0]["forbidden"]; ok {
			t.Errorf("forbidden sent although not set")
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"data": []map[string]any{{"id": 9, "term": "Lokalise"}}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "create-glossary-terms", "--project-id", projectID, "--term", "Lokalise", "--translatable=false")
	if err != nil {
		t.Fatalf("create-glossary-terms error = %v", err)
	}
	if !strings.Contains(stdout, "1 of 1 terms created.") || !strings.Contains(stdout, "`Lokalise` (ID 9)") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestUpdateGlossaryValidation(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	yes := true
	tests := []struct {
		name  string
		terms []TermInput
	}{
		{"no id", []TermInput{{Forbidden: &yes}}},
		{"no change", []TermInput{{ID: 3}}},
		{"bad lang", []TermInput{{ID: 3, Translations: []TermTranslation{{Translation: "x"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.ctl.Update(context.Background(), UpdateArgs{ProjectID: projectID, Terms: tt.terms})
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("Update() error = %v, want validation", err)
			}
		})
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestDeleteGlossaryTerms(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api2/projects/{id}/glossary-terms", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{
			"deleted": map[string]any{"count": 1, "ids": []int{5}},
			"failed":  []map[string]any{{"id": 6, "message": "Term not found"}},
		}})
	})
	d, f := newDomain(t, mux)

	if _, _, err := lokalisetest.RunCommand(t, d.Commands(), "delete-glossary-terms", "--project-id", projectID, "--term-ids", "5,6"); err == nil {
		t.Fatal("delete succeeded without --confirm")
	}
	if f.Calls() != 0 {
		t.Fatalf("fake received %d calls before confirmation", f.Calls())
	}

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "delete-glossary-terms", "--project-id", projectID, "--term-ids", "5,6", "--confirm")
	if err != nil {
		t.Fatalf("delete-glossary-terms error = %v", err)
	}
	if !strings.Contains(stdout, "Deleted 1 of 2 terms.") || !strings.Contains(stdout, "- 6: Term not found") {
		t.Errorf("stdout = %q", stdout)
	}
}
