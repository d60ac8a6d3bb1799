package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/domains"
	"github.com/lokalise/lokalise-mcp/internal/lokalisetest"
)

// newServer returns a server whose loader points at a fake Lokalise but has
// no API key of its own.
func newServer(t *testing.T) (*Server, *config.Loader) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api2/projects", func(w http.ResponseWriter, r *http.Request) {
		lokalisetest.JSON(w, http.StatusOK, map[string]any{"projects": []map[string]any{
			{"project_id": "p1.abc", "name": "Website"},
		}})
	})
	fake := lokalisetest.New(t, mux)

	cfg := lokalisetest.Loader(t, map[string]string{config.KeyAPIHostname: fake.Server.URL + "/api2/"})
	deps := domain.Deps{Clients: api.NewProvider(cfg), Config: cfg}
	return NewServer(cfg, domains.All(deps), "test"), cfg
}

func TestInitConfig(t *testing.T) {
	cfg := map[string]any{config.KeyAPIKey: "k"}
	tests := []struct {
		name   string
		params *mcp.InitializeParams
		want   bool
	}{
		{"nil", nil, false},
		{"meta", &mcp.InitializeParams{Meta: mcp.Meta{"config": cfg}}, true},
		{"experimental", &mcp.InitializeParams{Capabilities: &mcp.ClientCapabilities{Experimental: map[string]any{"config": cfg}}}, true},
		{"wrong type", &mcp.InitializeParams{Meta: mcp.Meta{"config": "LOKALISE_API_KEY=k"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitConfig(tt.params)
			if (got != nil) != tt.want {
				t.Fatalf("InitConfig() = %v, want present=%v", got, tt.want)
			}
			if got != nil && got[config.KeyAPIKey] != "k" {
				t.Errorf("InitConfig()[%s] = %v", config.KeyAPIKey, got[config.KeyAPIKey])
			}
		})
	}
}

func TestHealthAndRequestID(t *testing.T) {
	s, _ := newServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET / error = %v", err)
	}
	defer res.Body.Close()
	var h health
	if err := json.NewDecoder(res.Body).Decode(&h); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if h.Status != "ok" || h.Name != ServerName || h.Endpoint != Endpoint {
		t.Errorf("health = %+v", h)
	}
	if res.Header.Get(RequestIDHeader) == "" {
		t.Error("response has no request id")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET / error = %v", err)
	}
	res2.Body.Close()
	if got := res2.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+Endpoint, nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS error = %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", res.StatusCode)
	}
	if res.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("allow origin = %q", res.Header.Get("Access-Control-Allow-Origin"))
	}
	if !strings.Contains(res.Header.Get("Access-Control-Expose-Headers"), "Mcp-Session-Id") {
		t.Errorf("expose headers = %q", res.Header.Get("Access-Control-Expose-Headers"))
	}
}

func TestRequestConfigLayers(t *testing.T) {
	s, cfg := newServer(t)
	h := s.withRequestConfig(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	smithery := base64.StdEncoding.EncodeToString([]byte(`{"LOKALISE_API_KEY":"from-smithery"}`))
	req := httptest.NewRequest(http.MethodPost, Endpoint+"?LOKALISE_API_KEY=from-query&config="+smithery, nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	key, err := cfg.APIKey()
	if err != nil || key != "from-smithery" {
		t.Errorf("APIKey() = %q, %v; want from-smithery", key, err)
	}
	if cfg.SourceOf(config.KeyAPIKey) != config.SourceSmithery {
		t.Errorf("source = %s, want smithery", cfg.SourceOf(config.KeyAPIKey))
	}

	req = httptest.NewRequest(http.MethodPost, Endpoint+"?LOKALISE_API_KEY=from-query", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if key, _ := cfg.APIKey(); key != "from-query" {
		t.Errorf("APIKey() = %q, want from-query", key)
	}
}

func TestStreamableHTTPEndToEnd(t *testing.T) {
	s, _ := newServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: ts.URL + Endpoint + "?LOKALISE_API_KEY=" + lokalisetest.Token,
	}, nil)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer cs.Close()

	if got := cs.InitializeResult().ServerInfo.Name; got != ServerName {
		t.Errorf("server name = %q", got)
	}

	text, res := lokalisetest.CallTool(t, cs, "lokalise_list_projects", map[string]any{})
	if res.IsError {
		t.Fatalf("tool error: %s", text)
	}
	if !strings.Contains(text, "# Lokalise Projects") || !strings.Contains(text, "Website") {
		t.Errorf("text = %q", text)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	s, _ := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ServeHTTP(ctx, 0) }()
	cancel()
	if err := <-done; err != nil {
		t.Errorf("ServeHTTP() error = %v", err)
	}
}
