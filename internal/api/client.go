// Package api provides the HTTP client for the Lokalise API v2.
//
// The client is a thin wire adapter: one method per endpoint, JSON in and
// out, with the vendor's pagination headers surfaced as Pagination and
// error envelopes decoded into *Error. Domain services obtain a client
// through a Provider, which rebuilds it whenever the configuration reloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lokalise/lokalise-mcp/internal/logging"
)

const (
	// DefaultBaseURL is the production Lokalise API base URL.
	DefaultBaseURL = "https://api.lokalise.com/api2/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	tracerName = "github.com/lokalise/lokalise-mcp/internal/api"
)

// UserAgent is sent with every request. The binary overrides it with its
// build version.
var UserAgent = "lokalise-mcp/dev"

var log = logging.For("api")

// Client is the Lokalise API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a new API client.
//
// Parameters:
//   - apiKey: The Lokalise API token, sent as X-Api-Token
//   - baseURL: The API base URL; empty selects DefaultBaseURL
//   - opts: Optional overrides
//
// Returns:
//   - *Client: A new client instance
func NewClient(apiKey, baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIKey returns the API token used by this client.
func (c *Client) APIKey() string {
	return c.apiKey
}

// Error is an error response from the Lokalise API.
type Error struct {
	Status  int
	Code    int
	Message string
	Detail  string
}

// Error returns a human-readable error message.
//
// Returns:
//   - string: The error message, with fallback to HTTP status if no message available
func (e *Error) Error() string {
	if e.Message != "" && e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, http.StatusText(e.Status))
}

// StatusCode returns the HTTP status of the failed response.
func (e *Error) StatusCode() int {
	return e.Status
}

// Pagination is the paging state Lokalise reports in response headers.
type Pagination struct {
	TotalCount int
	PageCount  int
	Limit      int
	Page       int
	NextCursor string
}

// HasNextPage reports whether another page or cursor is available.
func (p Pagination) HasNextPage() bool {
	if p.NextCursor != "" {
		return true
	}
	return p.Page > 0 && p.Page < p.PageCount
}

func paginationFrom(h http.Header) Pagination {
	atoi := func(name string) int {
		n, _ := strconv.Atoi(h.Get(name))
		return n
	}
	return Pagination{
		TotalCount: atoi("X-Pagination-Total-Count"),
		PageCount:  atoi("X-Pagination-Page-Count"),
		Limit:      atoi("X-Pagination-Limit"),
		Page:       atoi("X-Pagination-Page"),
		NextCursor: h.Get("X-Pagination-Next-Cursor"),
	}
}

// PageOptions are the common paging parameters of list endpoints. Zero
// values are omitted from the query. UseCursor requests the first page of a
// cursor walk; a non-empty Cursor implies it.
type PageOptions struct {
	Limit     int
	Page      int
	Cursor    string
	UseCursor bool
}

func (o PageOptions) apply(q url.Values) {
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	switch {
	case o.Cursor != "":
		q.Set("pagination", "cursor")
		q.Set("cursor", o.Cursor)
	case o.UseCursor:
		q.Set("pagination", "cursor")
	case o.Page > 0:
		q.Set("page", strconv.Itoa(o.Page))
	}
}

// do performs an authenticated request and decodes the response into
// target. body may be nil, a []byte of pre-encoded JSON, or any value
// encoding/json can marshal.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, target any) (Pagination, error) {
	endpoint := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		bodyReader = bytes.NewReader(b)
	case json.RawMessage:
		bodyReader = bytes.NewReader(b)
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return Pagination{}, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	ctx, span := c.tracer.Start(ctx, "lokalise "+method+" "+routeOf(path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return Pagination{}, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Api-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		log.Debug("request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return Pagination{}, fmt.Errorf("request failed: %w", err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	log.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	page := paginationFrom(resp.Header)
	if err := parseResponse(resp, target); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return page, err
	}
	return page, nil
}

// routeOf replaces identifier segments with placeholders so span names stay
// low-cardinality.
func routeOf(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i := range parts {
		if i > 0 && isCollection(parts[i-1]) {
			parts[i] = "{id}"
		}
	}
	return "/" + strings.Join(parts, "/")
}

func isCollection(segment string) bool {
	switch segment {
	case "projects", "keys", "translations", "comments", "tasks", "glossary-terms",
		"languages", "contributors", "teams", "groups", "users", "processes":
		return true
	}
	return false
}

// parseResponse decodes a Lokalise response. Error envelopes come in a few
// shapes: {"error":{"message","code"}}, a bare {"message","code"}, or plain
// text from a proxy.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode}
		if gjson.ValidBytes(body) {
			parsed := gjson.ParseBytes(body)
			apiErr.Message = firstString(parsed, "error.message", "message", "error")
			apiErr.Code = int(firstInt(parsed, "error.code", "code"))
			if details := parsed.Get("error.details"); details.Exists() {
				apiErr.Detail = details.Raw
			}
		}
		if apiErr.Message == "" && apiErr.Detail == "" {
			bodyStr := strings.TrimSpace(string(body))
			if len(bodyStr) > 200 {
				bodyStr = bodyStr[:200] + "..."
			}
			apiErr.Detail = bodyStr
		}
		if apiErr.Code == 0 {
			apiErr.Code = resp.StatusCode
		}
		return apiErr
	}

	if target == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func firstString(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := r.Get(p); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}

func firstInt(r gjson.Result, paths ...string) int64 {
	for _, p := range paths {
		if v := r.Get(p); v.Type == gjson.Number {
			return v.Int()
		}
	}
	return 0
}

// projectPath builds a path under /projects/{projectID}.
func projectPath(projectID string, segments ...string) string {
	parts := append([]string{"projects", url.PathEscape(projectID)}, segments...)
	return strings.Join(parts, "/")
}

// teamPath builds a path under /teams/{teamID}.
func teamPath(teamID int64, segments ...string) string {
	parts := append([]string{"teams", strconv.FormatInt(teamID, 10)}, segments...)
	return strings.Join(parts, "/")
}

func id(n int64) string {
	return strconv.FormatInt(n, 10)
}

func setBool(q url.Values, name string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		q.Set(name, "1")
	} else {
		q.Set(name, "0")
	}
}

func setInt(q url.Values, name string, v int64) {
	if v != 0 {
		q.Set(name, strconv.FormatInt(v, 10))
	}
}

func setString(q url.Values, name, v string) {
	if v != "" {
		q.Set(name, v)
	}
}

func setList(q url.Values, name string, v []string) {
	if len(v) > 0 {
		q.Set(name, strings.Join(v, ","))
	}
}
