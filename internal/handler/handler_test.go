package handler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/yosida95/uritemplate/v3"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/lokalisetest"
	"github.com/lokalise/lokalise-mcp/internal/ui"
)

type echoArgs struct {
	Name  string `json:"name" jsonschema:"Name to greet"`
	Fail  bool   `json:"fail,omitempty" jsonschema:"Return a validation error"`
	Limit int    `json:"limit,omitempty" jsonschema:"Unused"`
}

func TestAddToolSuccessAndError(t *testing.T) {
	s := lokalisetest.NewServer()
	AddTool(s, Tool{Name: "lokalise_echo", Description: "Echo", ReadOnly: true}, func(ctx context.Context, in echoArgs) (string, error) {
		if in.Fail {
			return "", apperr.Validation("name %q rejected", in.Name)
		}
		return "# Hello " + in.Name, nil
	})
	cs := lokalisetest.Connect(t, s)

	text, res := lokalisetest.CallTool(t, cs, "lokalise_echo", map[string]any{"name": "Ann"})
	if res.IsError {
		t.Fatalf("IsError = true, text %q", text)
	}
	if text != "# Hello Ann" {
		t.Errorf("text = %q, want greeting", text)
	}

	text, res = lokalisetest.CallTool(t, cs, "lokalise_echo", map[string]any{"name": "Bob", "fail": true})
	if !res.IsError {
		t.Fatal("IsError = false, want true")
	}
	if got := res.Meta["errorType"]; got != string(apperr.KindValidation) {
		t.Errorf("errorType = %v, want %s", got, apperr.KindValidation)
	}
	if !strings.Contains(text, `name "Bob" rejected`) {
		t.Errorf("text = %q, missing message", text)
	}
}

func TestToolAnnotations(t *testing.T) {
	read := Tool{ReadOnly: true}.Annotations()
	if !read.ReadOnlyHint || read.DestructiveHint != nil {
		t.Errorf("read-only annotations = %+v", read)
	}

	del := Tool{Destructive: true}.Annotations()
	if del.ReadOnlyHint || del.DestructiveHint == nil || !*del.DestructiveHint {
		t.Errorf("destructive annotations = %+v", del)
	}

	create := Tool{}.Annotations()
	if create.DestructiveHint == nil || *create.DestructiveHint {
		t.Errorf("create annotations = %+v, want DestructiveHint false", create)
	}
}

func TestParseURI(t *testing.T) {
	tmpl := uritemplate.MustNew("lokalise://keys/{projectId}/{keyId}")

	p, ok := ParseURI(tmpl, "lokalise://keys/123abc.456/789?includeTranslations=true&limit=5")
	if !ok {
		t.Fatal("ParseURI() did not match")
	}
	if p.Var("projectId") != "123abc.456" || p.Var("keyId") != "789" {
		t.Errorf("vars = %v", p.Vars)
	}
	if n, err := p.Int("limit"); err != nil || n != 5 {
		t.Errorf("Int(limit) = %d, %v", n, err)
	}
	if b, err := p.Bool("includeTranslations"); err != nil || b == nil || !*b {
		t.Errorf("Bool(includeTranslations) = %v, %v", b, err)
	}

	if _, ok := ParseURI(tmpl, "lokalise://keys/123abc.456"); ok {
		t.Error("ParseURI() matched a URI missing keyId")
	}
	if _, ok := ParseURI(tmpl, "lokalise://tasks/1/2"); ok {
		t.Error("ParseURI() matched another domain")
	}
}

func TestParamsValidation(t *testing.T) {
	p, _ := ParseURI(nil, "lokalise://projects?limit=ten&tags=a,b&tags=c&flag=maybe")

	if _, err := p.Int("limit"); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Int(limit) error = %v, want validation", err)
	}
	if _, err := p.Bool("flag"); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Bool(flag) error = %v, want validation", err)
	}
	if got := strings.Join(p.Strings("tags"), "|"); got != "a|b|c" {
		t.Errorf("Strings(tags) = %q, want a|b|c", got)
	}
	if n, err := p.Int("page"); err != nil || n != 0 {
		t.Errorf("Int(page) = %d, %v, want 0 when absent", n, err)
	}
}

func TestParamsPaging(t *testing.T) {
	p, _ := ParseURI(nil, "lokalise://projects")
	if limit, page, err := p.Paging(); err != nil || limit != nil || page != nil {
		t.Errorf("Paging() = %v, %v, %v, want nil when absent", limit, page, err)
	}

	p, _ = ParseURI(nil, "lokalise://projects?limit=0&page=0")
	limit, page, err := p.Paging()
	if err != nil {
		t.Fatalf("Paging() error = %v", err)
	}
	if limit == nil || *limit != 0 || page == nil || *page != 0 {
		t.Errorf("Paging() = %v, %v, want explicit zeros", limit, page)
	}

	p, _ = ParseURI(nil, "lokalise://projects?page=two")
	if _, _, err := p.Paging(); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Paging(page=two) error = %v, want validation", err)
	}
}

func TestAddResource(t *testing.T) {
	s := lokalisetest.NewServer()
	AddResource(s, Resource{Name: "project", URITemplate: "lokalise://projects/{projectId}{?limit}"}, func(ctx context.Context, p Params) (string, error) {
		if p.Var("projectId") == "missing" {
			return "", apperr.New(apperr.KindNotFound, "project not found")
		}
		return "# Project " + p.Var("projectId") + " limit=" + p.String("limit"), nil
	})
	AddResource(s, Resource{Name: "system", URITemplate: "lokalise://languages/system"}, func(ctx context.Context, p Params) (string, error) {
		return "# System languages", nil
	})
	cs := lokalisetest.Connect(t, s)

	if got := lokalisetest.ReadResource(t, cs, "lokalise://projects/p1?limit=3"); got != "# Project p1 limit=3" {
		t.Errorf("read = %q", got)
	}
	if got := lokalisetest.ReadResource(t, cs, "lokalise://projects/missing"); !strings.Contains(got, "NOT_FOUND") {
		t.Errorf("read = %q, want rendered error", got)
	}
	if got := lokalisetest.ReadResource(t, cs, "lokalise://languages/system"); got != "# System languages" {
		t.Errorf("read = %q", got)
	}
}

func captureUI(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	t.Cleanup(func() { ui.SetOutput(os.Stdout, os.Stderr) })
	return &out, &errOut
}

func TestRun(t *testing.T) {
	out, errOut := captureUI(t)
	cmd := &cobra.Command{Use: "x"}

	if err := Run(cmd, func(ctx context.Context) (string, error) { return "# ok", nil }); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "# ok\n" || errOut.Len() != 0 {
		t.Errorf("stdout %q stderr %q", out.String(), errOut.String())
	}

	out.Reset()
	err := Run(cmd, func(ctx context.Context) (string, error) {
		return "", apperr.New(apperr.KindAuthMissing, "LOKALISE_API_KEY is not set")
	})
	if err == nil {
		t.Fatal("Run() error = nil, want error")
	}
	if !Reported(err) || apperr.KindOf(err) != apperr.KindAuthMissing {
		t.Errorf("Run() error = %v, want reported auth error", err)
	}
	if Reported(errors.New("plain")) {
		t.Error("Reported(plain error) = true")
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty on error", out.String())
	}
	if !strings.Contains(errOut.String(), "LOKALISE_API_KEY is not set") || !strings.Contains(errOut.String(), "Tip:") {
		t.Errorf("stderr = %q, want message and tip", errOut.String())
	}
}

func TestConfirmed(t *testing.T) {
	cmd := &cobra.Command{Use: "delete"}
	RequireConfirm(cmd)

	err := Confirmed(cmd, "delete key 1")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("Confirmed() error = %v, want validation", err)
	}
	if !strings.Contains(apperr.Tip(err), "--confirm") {
		t.Errorf("Tip() = %q, want --confirm hint", apperr.Tip(err))
	}

	if err := cmd.Flags().Set(ConfirmFlag, "true"); err != nil {
		t.Fatal(err)
	}
	if err := Confirmed(cmd, "delete key 1"); err != nil {
		t.Errorf("Confirmed() error = %v after --confirm", err)
	}
}

func TestOptionalFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().Bool("reviewed", false, "")
	cmd.Flags().String("title", "", "")
	cmd.Flags().Int("limit", 100, "")

	if OptionalBool(cmd, "reviewed") != nil || OptionalString(cmd, "title") != nil || OptionalInt(cmd, "limit") != nil {
		t.Fatal("unset flags returned values")
	}
	cmd.Flags().Set("reviewed", "false")
	cmd.Flags().Set("title", "")
	if b := OptionalBool(cmd, "reviewed"); b == nil || *b {
		t.Errorf("OptionalBool() = %v, want pointer to false", b)
	}
	if s := OptionalString(cmd, "title"); s == nil || *s != "" {
		t.Errorf("OptionalString() = %v, want pointer to empty", s)
	}
	cmd.Flags().Set("limit", "0")
	if n := OptionalInt(cmd, "limit"); n == nil || *n != 0 {
		t.Errorf("OptionalInt() = %v, want pointer to 0", n)
	}
}

func TestDecodeJSON(t *testing.T) {
	type item struct {
		ID int `json:"id"`
	}

	var items []item
	if err := DecodeJSON("items", `[{"id":1},{"id":2}]`, &items); err != nil || len(items) != 2 {
		t.Fatalf("literal: %v %v", items, err)
	}

	path := filepath.Join(t.TempDir(), "items.json")
	os.WriteFile(path, []byte(`[{"id":3}]`), 0o600)
	items = nil
	if err := DecodeJSON("items", "@"+path, &items); err != nil || items[0].ID != 3 {
		t.Fatalf("file: %v %v", items, err)
	}

	stdin = strings.NewReader(`[{"id":4}]`)
	t.Cleanup(func() { stdin = os.Stdin })
	items = nil
	if err := DecodeJSON("items", "-", &items); err != nil || items[0].ID != 4 {
		t.Fatalf("stdin: %v %v", items, err)
	}

	if err := DecodeJSON("items", "{not json", &items); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("invalid JSON error = %v, want validation", err)
	}
}
