package translations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/lokalisetest"
)

const projectID = "3002780358964f9bab5a92.87762498"

func strPtr(s string) *string { return &s }

func items(ids ...int64) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = Item{TranslationID: id, Data: TranslationData{Translation: strPtr(fmt.Sprintf("text %d", id))}}
	}
	return out
}

func TestRunBulk(t *testing.T) {
	calls := map[int64]int{}
	var order []int64
	update := func(_ context.Context, item Item) (*api.Translation, error) {
		calls[item.TranslationID]++
		order = append(order, item.TranslationID)
		switch {
		case item.TranslationID == 2 && calls[2] < 3:
			return nil, errors.New("temporary failure")
		case item.TranslationID == 3:
			return nil, errors.New("permanent failure")
		}
		return &api.Translation{TranslationID: item.TranslationID, Translation: *item.Data.Translation}, nil
	}

	var progress [][3]int
	res := RunBulk(context.Background(), items(1, 2, 3, 4), update, BulkOptions{
		MaxAttempts: 3,
		OnProgress: func(done, failed, total int) {
			progress = append(progress, [3]int{done, failed, total})
		},
	})

	if res.Total != 4 || res.Succeeded != 3 || res.Failed != 1 {
		t.Errorf("summary = %d/%d/%d, want 4/3/1", res.Total, res.Succeeded, res.Failed)
	}
	want := []struct {
		id       int64
		success  bool
		attempts int
	}{
		{1, true, 1},
		{2, true, 3},
		{3, false, 3},
		{4, true, 1},
	}
	if len(res.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(res.Results), len(want))
	}
	for i, w := range want {
		r := res.Results[i]
		if r.TranslationID != w.id || r.Success != w.success || r.Attempts != w.attempts {
			t.Errorf("results[%d] = %+v, want id %d success %v attempts %d", i, r, w.id, w.success, w.attempts)
		}
	}
	if res.Results[2].Error != "permanent failure" {
		t.Errorf("error = %q", res.Results[2].Error)
	}
	if got := fmt.Sprint(order); got != "[1 2 2 2 3 3 3 4]" {
		t.Errorf("call order = %s", got)
	}
	if got := fmt.Sprint(progress); got != "[[1 0 4] [2 0 4] [3 1 4] [4 1 4]]" {
		t.Errorf("progress = %s", got)
	}
}

func TestRunBulkWaitsBetweenItemsOnly(t *testing.T) {
	var stamps []time.Time
	update := func(_ context.Context, item Item) (*api.Translation, error) {
		stamps = append(stamps, time.Now())
		return &api.Translation{TranslationID: item.TranslationID}, nil
	}

	delay := 20 * time.Millisecond
	res := RunBulk(context.Background(), items(1, 2, 3), update, BulkOptions{Delay: delay, MaxAttempts: 3})

	for i := 1; i < len(stamps); i++ {
		if gap := stamps[i].Sub(stamps[i-1]); gap < delay {
			t.Errorf("gap before item %d = %v, want at least %v", i+1, gap, delay)
		}
	}
	if res.Duration < 2*delay {
		t.Errorf("duration = %v, want at least %v", res.Duration, 2*delay)
	}
	if res.Duration >= 3*delay+time.Second {
		t.Errorf("duration = %v, a delay followed the last item", res.Duration)
	}
}

func TestRunBulkRetryBackoff(t *testing.T) {
	var stamps []time.Time
	update := func(context.Context, Item) (*api.Translation, error) {
		stamps = append(stamps, time.Now())
		return nil, errors.New("down")
	}

	backoff := 15 * time.Millisecond
	res := RunBulk(context.Background(), items(1), update, BulkOptions{RetryBackoff: backoff, MaxAttempts: 3})

	if len(stamps) != 3 || res.Results[0].Attempts != 3 {
		t.Fatalf("attempts = %d (%d recorded), want 3", len(stamps), res.Results[0].Attempts)
	}
	for i := 1; i < len(stamps); i++ {
		if gap := stamps[i].Sub(stamps[i-1]); gap < backoff {
			t.Errorf("retry %d came after %v, want at least %v", i, gap, backoff)
		}
	}
}

func TestRunBulkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	update := func(_ context.Context, item Item) (*api.Translation, error) {
		if item.TranslationID == 2 {
			cancel()
		}
		return &api.Translation{TranslationID: item.TranslationID}, nil
	}

	res := RunBulk(ctx, items(1, 2, 3, 4), update, BulkOptions{MaxAttempts: 3})

	if res.Total != 4 || len(res.Results) != 4 {
		t.Fatalf("results = %d, want every item accounted for", len(res.Results))
	}
	if res.Succeeded != 2 || res.Failed != 2 {
		t.Errorf("succeeded %d failed %d, want 2 and 2", res.Succeeded, res.Failed)
	}
	for _, r := range res.Results[2:] {
		if r.Attempts != 0 || r.Error != context.Canceled.Error() {
			t.Errorf("cancelled item = %+v", r)
		}
	}
}

func newDomain(t *testing.T, mux *http.ServeMux) (*Domain, *lokalisetest.Fake) {
	t.Helper()
	f := lokalisetest.New(t, mux)
	d := New(domain.Deps{Clients: f.Provider, Config: f.Config})
	d.ctl.bulk = BulkOptions{MaxAttempts: DefaultMaxAttempts}
	return d, f
}

func TestBulkUpdateCLI(t *testing.T) {
	var (
		mu   sync.Mutex
		seen = map[string]int{}
	)
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api2/projects/{project}/translations/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		mu.Lock()
		seen[id]++
		n := seen[id]
		mu.Unlock()

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)

		switch {
		case id == "2" && n == 1:
			lokalisetest.JSON(w, http.StatusInternalServerError, map[string]any{"error": map[string]any{"code": 500, "message": "Server error"}})
		case id == "3":
			lokalisetest.JSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{"code": 404, "message": "Not Found"}})
		default:
			lokalisetest.JSON(w, http.StatusOK, map[string]any{"translation": map[string]any{
				"translation_id": json.Number(id), "language_iso": "fr", "translation": body["translation"],
			}})
		}
	})
	d, f := newDomain(t, mux)

	updates := `[
		{"translationId":1,"translationData":{"translation":"Bonjour"}},
		{"translationId":2,"translationData":{"translation":"Salut","isReviewed":true}},
		{"translationId":3,"translationData":{"translation":"Coucou"}}
	]`
	stdout, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "bulk-update-translations", "--project-id", projectID, "--updates", updates)
	if err != nil {
		t.Fatalf("bulk-update-translations error = %v, stderr %q", err, stderr)
	}
	if f.Calls() != 1+2+3 {
		t.Errorf("fake received %d calls, want 6", f.Calls())
	}
	for _, want := range []string{
		"# Bulk Translation Update",
		"- **Requested**: 3",
		"- **Succeeded**: 2",
		"- **Failed**: 1",
		"| 1 | Updated | 1 | fr: Bonjour |",
		"| 2 | Updated | 2 | fr: Salut |",
		"| 3 | Failed | 3 |",
		"1 update(s) failed",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestBulkUpdateValidation(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	ctx := context.Background()

	tests := []struct {
		name string
		args BulkUpdateArgs
		want string
	}{
		{"empty", BulkUpdateArgs{ProjectID: projectID}, "at least one item"},
		{"too many", BulkUpdateArgs{ProjectID: projectID, Updates: make([]Item, MaxBulk+1)}, "at most 100 items"},
		{"bad id", BulkUpdateArgs{ProjectID: projectID, Updates: []Item{{Data: TranslationData{Translation: strPtr("x")}}}}, "updates[0].translationId"},
		{"no change", BulkUpdateArgs{ProjectID: projectID, Updates: []Item{{TranslationID: 1}}}, "updates[0].translationData"},
		{"no project", BulkUpdateArgs{Updates: items(1)}, "projectId is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.ctl.BulkUpdate(ctx, tt.args)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Fatalf("BulkUpdate() error = %v, want validation", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestBulkUpdateWithoutAPIKey(t *testing.T) {
	loader := lokalisetest.Loader(t, nil)
	d := New(domain.Deps{Clients: api.NewProvider(loader), Config: loader})

	_, err := d.ctl.BulkUpdate(context.Background(), BulkUpdateArgs{ProjectID: projectID, Updates: items(1)})
	if apperr.KindOf(err) != apperr.KindAuthMissing {
		t.Errorf("BulkUpdate() error = %v, want %s", err, apperr.KindAuthMissing)
	}
}

func TestListTranslations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/translations", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("pagination") != "cursor" || q.Get("limit") != "5000" || q.Get("filter_is_reviewed") != "0" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		w.Header().Set("X-Pagination-Next-Cursor", "eyIxIjo1fQ==")
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"translations": []map[string]any{
			{"translation_id": 1, "key_id": 10, "language_iso": "en", "translation": "Hello", "is_reviewed": false},
			{"translation_id": 2, "key_id": 11, "language_iso": "en", "translation": `{"one":"1 file","other":"%d files"}`},
		}})
	})
	d, _ := newDomain(t, mux)

	stdout, _, err := lokalisetest.RunCommand(t, d.Commands(), "list-translations", "--project-id", projectID,
		"--use-cursor", "--limit", "5000", "--reviewed=false")
	if err != nil {
		t.Fatalf("list-translations error = %v", err)
	}
	for _, want := range []string{
		"| 1 | 10 | en | Hello | No | No |",
		"one: 1 file; other: %d files",
		"next cursor `eyIxIjo1fQ==`",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestListTranslationsRejectsLimit(t *testing.T) {
	d, f := newDomain(t, http.NewServeMux())
	_, stderr, err := lokalisetest.RunCommand(t, d.Commands(), "list-translations", "--project-id", projectID, "--limit", "5001")
	if err == nil || !strings.Contains(stderr, "limit must be between 1 and 5000") {
		t.Errorf("err = %v, stderr = %q", err, stderr)
	}
	if f.Calls() != 0 {
		t.Errorf("fake received %d calls, want 0", f.Calls())
	}
}

func TestTranslationToolsAndResources(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects/{id}/translations/{tid}", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"translation": map[string]any{
			"translation_id": 44, "key_id": 4, "language_iso": "de", "translation": "Hallo", "is_reviewed": true,
			"custom_translation_statuses": []map[string]any{{"status_id": 1, "title": "Approved"}},
		}})
	})
	mux.HandleFunc("PUT /api2/projects/{id}/translations/{tid}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if len(body) != 1 || body["is_reviewed"] != true {
			t.Errorf("update body = %v", body)
		}
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"translation": map[string]any{"translation_id": 44, "language_iso": "de", "translation": "Hallo", "is_reviewed": true}})
	})
	d, _ := newDomain(t, mux)
	s := lokalisetest.NewServer()
	d.RegisterTools(s)
	d.RegisterResources(s)
	cs := lokalisetest.Connect(t, s)

	text, res := lokalisetest.CallTool(t, cs, "lokalise_update_translation", map[string]any{
		"projectId": projectID, "translationId": 44, "translationData": map[string]any{"isReviewed": true},
	})
	if res.IsError || !strings.Contains(text, "# Translation Updated") {
		t.Errorf("update result = %q", text)
	}

	_, res = lokalisetest.CallTool(t, cs, "lokalise_update_translation", map[string]any{
		"projectId": projectID, "translationId": 44, "translationData": map[string]any{},
	})
	if !res.IsError || res.Meta["errorType"] != string(apperr.KindValidation) {
		t.Errorf("empty update meta = %v", res.Meta)
	}

	md := lokalisetest.ReadResource(t, cs, "lokalise://translations/"+projectID+"/44")
	for _, want := range []string{"# Translation 44", "- **Statuses**: Approved", "Hallo"} {
		if !strings.Contains(md, want) {
			t.Errorf("resource missing %q:\n%s", want, md)
		}
	}
}
