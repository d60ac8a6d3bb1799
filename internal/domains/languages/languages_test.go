package languages

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

func TestSystemAndProjectResources(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/system/languages", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"languages": []map[string]any{
			{"lang_id": 640, "lang_iso": "en", "lang_name": "English", "plural_forms": []string{"one", "other"}},
			{"lang_id": 622, "lang_iso": "ar", "lang_name": "Arabic", "is_rtl": true},
		}})
	})
	mux.HandleFunc("GET /api2/projects/{id}/languages", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != projectID {
			t.Errorf("project = %q", r.PathValue("id"))
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"languages": []map[string]any{{"lang_id": 673, "lang_iso": "fr", "lang_name": "French"}}})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	md := lokalisetest.ReadResource(t, cs, "lokalise://languages/system")
	for _, want := range []string{"# System Languages", "| 640 | `en` | English | No | one, other |", "| 622 | `ar` | Arabic | Yes |  |"} {
		if !strings.Contains(md, want) {
			t.Errorf("system resource missing %q:\n%s", want, md)
		}
	}
	md = lokalisetest.ReadResource(t, cs, "lokalise://languages/"+projectID)
	if !strings.Contains(md, "# Languages in Project "+projectID) || !strings.Contains(md, "`fr`") {
		t.Errorf("project resource = %q", md)
	}
}

func TestAddLanguages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api2/projects/{id}/languages", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Languages []map[string]any `json:"languages"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Languages) != 2 || body.Languages[1]["lang_iso"] != "de" {
			t.Errorf("languages = %v", body.Languages)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"languages": []map[string]any{
			{"lang_id": 673, "lang_iso": "fr", "lang_name": "French"},
			{"lang_id": 597, "lang_iso": "de", "lang_name": "German"},
		}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "add-project-languages", "--project-id", projectID, "--iso", "fr,de")
	if err != nil {
		t.Fatalf("add-project-languages error = %v", err)
	}
	if !strings.Contains(stdout, "Added 2 of 2 languages.") || !strings.Contains(stdout, "`de` German (ID 597)") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestLanguageValidation(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	ctx := context.Background()

	if _, err := d.ctl.Add(ctx, AddArgs{ProjectID: projectID}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Add() without languages error = %v", err)
	}
	if _, err := d.ctl.Add(ctx, AddArgs{ProjectID: projectID, Languages: []NewLanguage{{LangISO: " "}}}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Add() with blank iso error = %v", err)
	}
	if _, err := d.ctl.Update(ctx, UpdateArgs{ProjectID: projectID, LanguageID: 1}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Update() without changes error = %v", err)
	}
	if _, err := d.ctl.Update(ctx, UpdateArgs{ProjectID: projectID, LanguageID: 1, PluralForms: []string{"several"}}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Update() with bad plural form error = %v", err)
	}
	if _, err := d.ctl.ListSystem(ctx, SystemListArgs{Limit: domain.Int(501)}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("ListSystem() limit error = %v", err)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestRemoveLanguageRequiresConfirm(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	_, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "remove-language", "--project-id", projectID, "--language-id", "673")
	if err == nil || !strings.Contains(stderr, "refusing to remove language 673") {
		t.Errorf("err = %v, stderr = %q", err, stderr)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}
