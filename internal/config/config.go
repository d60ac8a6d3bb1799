// Package config provides the merged runtime configuration for the Lokalise
// MCP server and CLI.
//
// Configuration is assembled from independent sources, lowest priority
// first:
//
//   - schema defaults
//   - the global file ~/.mcp/configs.json (the "environments" map under the
//     package's key)
//   - the project-local .env file
//   - process environment variables
//   - the MCP client's initialization payload
//   - HTTP query-string parameters
//   - the Smithery base64-encoded JSON config parameter
//
// A Loader is constructed explicitly and handed to whoever needs it; there is
// no package-level singleton.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/logging"
)

// Recognized configuration keys.
const (
	KeyAPIKey        = "LOKALISE_API_KEY"
	KeyAPIHostname   = "LOKALISE_API_HOSTNAME"
	KeyTransportMode = "TRANSPORT_MODE"
	KeyPort          = "PORT"
	KeyDebug         = "DEBUG"
	KeyEnvironment   = "NODE_ENV"
	KeyServerMode    = "MCP_SERVER_MODE"

	// keyDebugMode is the alias some hosts send; within a source it
	// overrides DEBUG.
	keyDebugMode = "debug_mode"
)

// Defaults.
const (
	DefaultAPIHostname = "https://api.lokalise.com/api2/"
	DefaultPort        = 3000
	DefaultEnvironment = "production"
)

// PackageName is the key this program reads from the global config file.
const PackageName = "lokalise-mcp"

// packageAliases are alternative keys accepted in the global config file.
var packageAliases = []string{PackageName, "@lokalise/mcp", "lokalise-mcp-server"}

// TransportMode selects how the MCP server talks to its client.
type TransportMode string

// Transport modes.
const (
	TransportStdio TransportMode = "stdio"
	TransportHTTP  TransportMode = "http"
)

// Source names a configuration layer.
type Source string

// Sources, from lowest to highest priority.
const (
	SourceDefault   Source = "default"
	SourceGlobal    Source = "global-file"
	SourceDotenv    Source = "dotenv"
	SourceEnv       Source = "env"
	SourceMCPInit   Source = "mcp-init"
	SourceHTTPQuery Source = "http-query"
	SourceSmithery  Source = "smithery"
)

// priority lists the non-default layers, lowest first.
var priority = []Source{SourceGlobal, SourceDotenv, SourceEnv, SourceMCPInit, SourceHTTPQuery, SourceSmithery}

var log = logging.For("config")

// defaults returns the schema defaults.
func defaults() map[string]string {
	return map[string]string{
		KeyAPIHostname:   DefaultAPIHostname,
		KeyTransportMode: string(TransportStdio),
		KeyPort:          strconv.Itoa(DefaultPort),
		KeyDebug:         "false",
		KeyEnvironment:   DefaultEnvironment,
		KeyServerMode:    "false",
	}
}

// Loader merges configuration sources and exposes typed getters. It is safe
// for concurrent use.
type Loader struct {
	mu sync.RWMutex

	dotenvPath string
	globalPath string
	environ    func() map[string]string

	// filesLoaded guards the file-backed sources so Load reads them once.
	filesLoaded bool
	loaded      bool

	layers map[Source]map[string]string
	merged map[string]string
	origin map[string]Source

	hooks []func()
}

// Option configures a Loader.
type Option func(*Loader)

// WithDotenvPath overrides the .env location (default ./.env).
func WithDotenvPath(path string) Option {
	return func(l *Loader) { l.dotenvPath = path }
}

// WithGlobalPath overrides the global config file location.
func WithGlobalPath(path string) Option {
	return func(l *Loader) { l.globalPath = path }
}

// WithEnvironment replaces the process environment, mainly for tests.
func WithEnvironment(env map[string]string) Option {
	return func(l *Loader) {
		l.environ = func() map[string]string { return env }
	}
}

// New creates a Loader. Nothing is read until Load is called.
//
// Parameters:
//   - opts: Optional overrides for file locations and the environment
//
// Returns:
//   - *Loader: A new, empty loader
func New(opts ...Option) *Loader {
	l := &Loader{
		dotenvPath: ".env",
		globalPath: DefaultGlobalPath(),
		environ:    processEnvironment,
		layers:     make(map[Source]map[string]string),
		merged:     defaults(),
		origin:     make(map[string]Source),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultGlobalPath returns ~/.mcp/configs.json.
func DefaultGlobalPath() string {
	home := xdg.Home
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".mcp", "configs.json")
}

// DotenvPath returns the .env path this loader reads.
func (l *Loader) DotenvPath() string { return l.dotenvPath }

// GlobalPath returns the global config path this loader reads.
func (l *Loader) GlobalPath() string { return l.globalPath }

// OnReload registers fn to run after every Reload.
func (l *Loader) OnReload(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, fn)
}

// Load reads the file-backed sources (once per Loader) and the environment,
// then merges every layer. Calling it again is a no-op; use Reload to pick
// up changes.
func (l *Loader) Load() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return
	}
	l.readLocked()
	l.loaded = true
}

// Reload re-reads the file-backed sources and the environment, re-merges
// every layer including those set with the Set*Config methods, and runs
// the OnReload hooks.
func (l *Loader) Reload() {
	l.mu.Lock()
	l.filesLoaded = false
	l.readLocked()
	l.loaded = true
	hooks := append([]func(){}, l.hooks...)
	l.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

func (l *Loader) readLocked() {
	if !l.filesLoaded {
		l.layers[SourceGlobal] = readGlobalFile(l.globalPath)
		l.layers[SourceDotenv] = readDotenv(l.dotenvPath)
		l.filesLoaded = true
	}
	l.layers[SourceEnv] = readEnvironment(l.environ())
	l.mergeLocked()
}

func (l *Loader) mergeLocked() {
	merged := defaults()
	origin := make(map[string]Source, len(merged))
	for k := range merged {
		origin[k] = SourceDefault
	}

	for _, src := range priority {
		for k, v := range l.layers[src] {
			merged[k] = v
			origin[k] = src
		}
	}

	l.merged = merged
	l.origin = origin
	log.Debug("configuration merged", "keys", len(merged), "api_key", logging.MaskSecret(merged[KeyAPIKey]))
}

// SetSmitheryConfig validates a base64-encoded JSON payload and stores it as
// the highest priority layer. An empty payload clears the layer. A
// malformed payload is logged and treated as no contribution. Call Reload
// to apply.
//
// Returns:
//   - bool: True if the stored layer changed
func (l *Loader) SetSmitheryConfig(encoded string) bool {
	values, err := parseSmithery(encoded)
	if err != nil {
		log.Warn("ignoring Smithery config", "err", err)
		values = nil
	}
	return l.setLayer(SourceSmithery, values)
}

// SetHTTPQueryConfig stores query-string parameters as a layer. The
// Smithery "config" parameter is ignored here; pass it to
// SetSmitheryConfig. Call Reload to apply.
//
// Returns:
//   - bool: True if the stored layer changed
func (l *Loader) SetHTTPQueryConfig(query url.Values) bool {
	values, err := parseQuery(query)
	if err != nil {
		log.Warn("ignoring HTTP query config", "err", err)
		values = nil
	}
	return l.setLayer(SourceHTTPQuery, values)
}

// SetMCPInitConfig stores the configuration object an MCP client sent while
// initializing. Call Reload to apply.
//
// Returns:
//   - bool: True if the stored layer changed
func (l *Loader) SetMCPInitConfig(payload map[string]any) bool {
	values, err := parseObject(payload, false)
	if err != nil {
		log.Warn("ignoring MCP init config", "err", err)
		values = nil
	}
	return l.setLayer(SourceMCPInit, values)
}

func (l *Loader) setLayer(src Source, values map[string]string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if equalMaps(l.layers[src], values) {
		return false
	}
	if len(values) == 0 {
		delete(l.layers, src)
	} else {
		l.layers[src] = values
	}
	return true
}

// Get returns the merged value for key, or def if no source supplied it.
func (l *Loader) Get(key, def string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if v, ok := l.merged[key]; ok && v != "" {
		return v
	}
	return def
}

// GetBoolean returns true for "true" or "1" (any case), false for any other
// value, and def if the key is absent.
func (l *Loader) GetBoolean(key string, def bool) bool {
	v := l.Get(key, "")
	if v == "" {
		return def
	}
	return parseBool(v)
}

// GetInt returns the merged value parsed as an integer, or def if absent or
// not a number.
func (l *Loader) GetInt(key string, def int) int {
	v := l.Get(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// SourceOf returns the layer that supplied key's merged value.
func (l *Loader) SourceOf(key string) Source {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if src, ok := l.origin[key]; ok {
		return src
	}
	return ""
}

// Keys returns every merged key, sorted.
func (l *Loader) Keys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.merged))
	for k := range l.merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// APIKey returns the Lokalise API token.
//
// Returns:
//   - string: The API token
//   - error: A KindAuthMissing error if no source supplied it
func (l *Loader) APIKey() (string, error) {
	key := strings.TrimSpace(l.Get(KeyAPIKey, ""))
	if key == "" {
		return "", apperr.WithHint(
			apperr.New(apperr.KindAuthMissing, "%s is required but was not provided by any configuration source", KeyAPIKey),
			"Set LOKALISE_API_KEY in your environment, a .env file, ~/.mcp/configs.json, or pass it as a query parameter to the HTTP transport.",
		)
	}
	return key, nil
}

// APIHostname returns the Lokalise API base URL.
func (l *Loader) APIHostname() string {
	return l.Get(KeyAPIHostname, DefaultAPIHostname)
}

// LokaliseHostname returns the bare Lokalise domain derived from the API
// base URL, e.g. "lokalise.com" for "https://api.lokalise.com/api2/".
func (l *Loader) LokaliseHostname() string {
	return HostnameFromAPIURL(l.APIHostname())
}

// HostnameFromAPIURL strips the scheme, path, port and a leading "api."
// label from an API base URL.
func HostnameFromAPIURL(apiURL string) string {
	raw := strings.TrimSpace(apiURL)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "lokalise.com"
	}
	return strings.TrimPrefix(u.Hostname(), "api.")
}

// TransportMode returns the configured transport, stdio if unrecognized.
func (l *Loader) TransportMode() TransportMode {
	switch TransportMode(strings.ToLower(strings.TrimSpace(l.Get(KeyTransportMode, "")))) {
	case TransportHTTP:
		return TransportHTTP
	default:
		return TransportStdio
	}
}

// Port returns the HTTP port, DefaultPort if outside 1-65535.
func (l *Loader) Port() int {
	p := l.GetInt(KeyPort, DefaultPort)
	if p < 1 || p > 65535 {
		return DefaultPort
	}
	return p
}

// Debug returns the raw DEBUG setting: a boolean string or a module pattern.
func (l *Loader) Debug() string {
	return l.Get(KeyDebug, "false")
}

// DebugEnabled reports whether DEBUG enables any debug output.
func (l *Loader) DebugEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(l.Debug()))
	return v != "" && v != "false" && v != "0"
}

// Environment returns NODE_ENV.
func (l *Loader) Environment() string {
	return l.Get(KeyEnvironment, DefaultEnvironment)
}

// ServerMode reports whether MCP_SERVER_MODE is set.
func (l *Loader) ServerMode() bool {
	return l.GetBoolean(KeyServerMode, false)
}

// processEnvironment snapshots os.Environ.
func processEnvironment() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

func equalMaps(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
