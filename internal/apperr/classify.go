package apperr

import (
	"net/http"
	"strings"
)

// Classify maps an HTTP status code and error message to a Kind. A non-zero
// status decides on its own; message matching is the fallback for errors
// that never reached the server.
func Classify(status int, message string) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuthInvalid
	case status == http.StatusForbidden:
		return KindInsufficientPermissions
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return KindTimeout
	case status == http.StatusBadRequest, status == http.StatusNotAcceptable, status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 400:
		return KindAPI
	}

	msg := strings.ToLower(message)
	switch {
	case containsAny(msg, "rate limit", "too many requests"):
		return KindRateLimit
	case containsAny(msg, "deadline exceeded", "timed out", "timeout"):
		return KindTimeout
	case containsAny(msg, "econnrefused", "connection refused", "no such host", "enotfound", "connection reset", "network is unreachable"):
		return KindNetwork
	case containsAny(msg, "api key", "api token", "unauthorized", "unauthenticated"):
		return KindAuthInvalid
	case containsAny(msg, "forbidden", "permission"):
		return KindInsufficientPermissions
	case strings.Contains(msg, "invalid") && strings.Contains(msg, "id"):
		return KindInvalidID
	case strings.Contains(msg, "not found"):
		return KindNotFound
	}
	return KindUnexpected
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
