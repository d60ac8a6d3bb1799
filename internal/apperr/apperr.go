// Package apperr provides the classified error type shared by every layer of
// the Lokalise MCP server and CLI.
//
// Services wrap vendor failures with Wrap, controllers attach call context
// with WithContext, and the CLI and MCP boundaries turn the result into a
// stderr message or a protocol error payload.
package apperr

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind classifies an error.
type Kind string

// Error kinds.
const (
	KindAuthMissing             Kind = "AUTH_MISSING"
	KindAuthInvalid             Kind = "AUTH_INVALID"
	KindAPI                     Kind = "API_ERROR"
	KindNetwork                 Kind = "NETWORK_ERROR"
	KindRateLimit               Kind = "RATE_LIMIT_ERROR"
	KindNotFound                Kind = "NOT_FOUND"
	KindInvalidID               Kind = "INVALID_ID"
	KindInsufficientPermissions Kind = "INSUFFICIENT_PERMISSIONS"
	KindValidation              Kind = "VALIDATION_ERROR"
	KindTimeout                 Kind = "TIMEOUT"
	KindUnexpected              Kind = "UNEXPECTED_ERROR"
)

// Context describes where an error surfaced.
type Context struct {
	// Operation is a short human label, e.g. "list keys".
	Operation string

	// EntityType is the kind of entity being operated on, e.g. "project".
	EntityType string

	// EntityID identifies the entity, if known.
	EntityID string

	// Source is the file:line of the controller that attached the context.
	Source string
}

// Error is the classified error carried across all layers.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
	Context    *Context
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Context != nil && e.Context.Operation != "" {
		return fmt.Sprintf("%s: %s", e.Context.Operation, e.Message)
	}
	return e.Message
}

// Unwrap exposes the original cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// statusCoder is implemented by errors that carry an HTTP status, such as
// the Lokalise client's API error.
type statusCoder interface {
	StatusCode() int
}

// New creates a classified error.
//
// Parameters:
//   - kind: The error classification
//   - format: Printf format string for the message
//   - args: Printf arguments
//
// Returns:
//   - error: A classified error with a captured stack
func New(kind Kind, format string, args ...interface{}) error {
	return errors.WithStackDepth(&Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}, 1)
}

// Validation creates a KindValidation error.
func Validation(format string, args ...interface{}) error {
	return errors.WithStackDepth(&Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
	}, 1)
}

// WithHint attaches a human-readable tip shown by the CLI.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return errors.WithHint(err, hint)
}

// Wrap classifies err and wraps it with message. An error that is already
// classified keeps its kind and status code; anything else is classified
// from its status code and message text.
//
// Parameters:
//   - err: The error to wrap (nil returns nil)
//   - message: Context describing the failed action
//
// Returns:
//   - error: A classified error whose cause is err
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return errors.WithStackDepth(&Error{
			Kind:       existing.Kind,
			Message:    message + ": " + existing.Message,
			StatusCode: existing.StatusCode,
			Cause:      err,
		}, 1)
	}

	status := 0
	var sc statusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	return errors.WithStackDepth(&Error{
		Kind:       Classify(status, err.Error()),
		Message:    message + ": " + err.Error(),
		StatusCode: status,
		Cause:      err,
	}, 1)
}

// WithContext attaches operation context to err and records the caller's
// source location. Unclassified errors are classified first.
func WithContext(err error, c Context) error {
	if err == nil {
		return nil
	}
	if _, file, line, ok := runtime.Caller(1); ok {
		c.Source = fmt.Sprintf("%s:%d", trimPath(file), line)
	}

	var existing *Error
	if !errors.As(err, &existing) {
		status := 0
		var sc statusCoder
		if errors.As(err, &sc) {
			status = sc.StatusCode()
		}
		return &Error{
			Kind:       Classify(status, err.Error()),
			Message:    err.Error(),
			StatusCode: status,
			Cause:      err,
			Context:    &c,
		}
	}

	return &Error{
		Kind:       existing.Kind,
		Message:    existing.Message,
		StatusCode: existing.StatusCode,
		Cause:      err,
		Context:    &c,
	}
}

// As returns the outermost classified error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the classification of err, KindUnexpected if none.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindUnexpected
}

// StatusOf returns the HTTP status attached to err, 0 if none.
func StatusOf(err error) int {
	if e, ok := As(err); ok && e.StatusCode != 0 {
		return e.StatusCode
	}
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return 0
}

// Details returns the message of the innermost cause, which is usually the
// vendor's own wording.
func Details(err error) string {
	if err == nil {
		return ""
	}
	return errors.UnwrapAll(err).Error()
}

// Tip returns the CLI tip for err: any attached hints, or a default based
// on the error kind.
func Tip(err error) string {
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		return strings.Join(hints, "\n")
	}
	switch KindOf(err) {
	case KindAuthMissing:
		return "Set LOKALISE_API_KEY in your environment, a .env file, or ~/.mcp/configs.json."
	case KindAuthInvalid:
		return "Check that your Lokalise API token is valid and has not been revoked."
	case KindInsufficientPermissions:
		return "Your API token does not have access to this resource. Ask a project admin for the required rights."
	case KindNotFound:
		return "Double-check the IDs you passed; list the parent resource to find valid values."
	case KindInvalidID:
		return "Lokalise project IDs look like 123456789abcdef.12345678; key, task and user IDs are numeric."
	case KindRateLimit:
		return "Lokalise allows about 6 requests per second. Wait a moment and try again."
	case KindNetwork, KindTimeout:
		return "Check your network connection and LOKALISE_API_HOSTNAME."
	case KindValidation:
		return "Run the command with --help to see the accepted flags and ranges."
	default:
		return "Run again with --debug for more details."
	}
}

func trimPath(file string) string {
	if i := strings.Index(file, "/internal/"); i >= 0 {
		return file[i+1:]
	}
	if i := strings.LastIndex(file, "/"); i >= 0 {
		return file[i+1:]
	}
	return file
}
