package api

import (
	"path/filepath"
	"testing"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/config"
)

func newLoader(t *testing.T, env map[string]string) *config.Loader {
	t.Helper()
	dir := t.TempDir()
	return config.New(
		config.WithEnvironment(env),
		config.WithDotenvPath(filepath.Join(dir, ".env")),
		config.WithGlobalPath(filepath.Join(dir, "configs.json")),
	)
}

func TestProviderRequiresAPIKey(t *testing.T) {
	p := NewProvider(newLoader(t, map[string]string{}))

	_, err := p.Get()
	if err == nil {
		t.Fatal("Get() error = nil, want error")
	}
	if got := apperr.KindOf(err); got != apperr.KindAuthMissing {
		t.Errorf("KindOf() = %s, want %s", got, apperr.KindAuthMissing)
	}
}

func TestProviderCachesUntilReload(t *testing.T) {
	env := map[string]string{
		config.KeyAPIKey:      "first-key",
		config.KeyAPIHostname: "https://api.stage.lokalise.cloud/api2/",
	}
	cfg := newLoader(t, env)
	p := NewProvider(cfg)

	first, err := p.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if first.APIKey() != "first-key" || first.BaseURL() != "https://api.stage.lokalise.cloud/api2/" {
		t.Errorf("client = %s %s", first.APIKey(), first.BaseURL())
	}

	again, _ := p.Get()
	if again != first {
		t.Error("Get() returned a new client without a reload")
	}

	env[config.KeyAPIKey] = "second-key"
	cfg.Reload()

	rebuilt, err := p.Get()
	if err != nil {
		t.Fatalf("Get() after reload error = %v", err)
	}
	if rebuilt == first {
		t.Error("Get() returned the cached client after a reload")
	}
	if rebuilt.APIKey() != "second-key" {
		t.Errorf("APIKey() = %q, want second-key", rebuilt.APIKey())
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("k", "")
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
	c = NewClient("k", "http://localhost:8080/api2")
	if c.BaseURL() != "http://localhost:8080/api2/" {
		t.Errorf("BaseURL() = %q, want trailing slash", c.BaseURL())
	}
}
