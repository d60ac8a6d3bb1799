package domain

import (
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// Paging limits.
const (
	DefaultLimit = 100

	// MaxLimit applies to every list endpoint except keys and translations.
	MaxLimit = 500

	// MaxKeyLimit applies to keys and translations.
	MaxKeyLimit = 5000
)

// Int returns a pointer to n, for optional paging inputs.
func Int(n int) *int { return &n }

// Limit validates an optional page size. Nil selects DefaultLimit; an
// explicit value outside 1-max is rejected.
func Limit(limit *int, max int) (int, error) {
	if limit == nil {
		return DefaultLimit, nil
	}
	if *limit < 1 || *limit > max {
		return 0, apperr.Validation("limit must be between 1 and %d, got %d", max, *limit)
	}
	return *limit, nil
}

// Page validates an optional page number. Nil returns 0, which leaves the
// page to the API (the first page).
func Page(page *int) (int, error) {
	if page == nil {
		return 0, nil
	}
	if *page < 1 {
		return 0, apperr.Validation("page must be 1 or greater, got %d", *page)
	}
	return *page, nil
}

// Paging validates limit and page together and returns the normalized
// values.
func Paging(limit, page *int, max int) (int, int, error) {
	l, err := Limit(limit, max)
	if err != nil {
		return 0, 0, err
	}
	p, err := Page(page)
	if err != nil {
		return 0, 0, err
	}
	return l, p, nil
}

// Required fails when v is blank.
func Required(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return apperr.Validation("%s is required", name)
	}
	return nil
}

// ProjectID validates a Lokalise project ID.
func ProjectID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validation("projectId is required")
	}
	if strings.ContainsAny(id, "/?# ") {
		return apperr.New(apperr.KindInvalidID, "projectId %q is not a valid project ID", id)
	}
	return nil
}

// ID validates a positive numeric identifier.
func ID(name string, id int64) error {
	if id <= 0 {
		return apperr.Validation("%s must be a positive integer", name)
	}
	return nil
}

// IDs validates a list of numeric identifiers and its length.
func IDs(name string, ids []int64, min, max int) error {
	if err := Count(name, len(ids), min, max); err != nil {
		return err
	}
	for _, id := range ids {
		if id <= 0 {
			return apperr.Validation("%s must contain positive integers, got %d", name, id)
		}
	}
	return nil
}

// Count validates the number of items in a batch.
func Count(name string, n, min, max int) error {
	if n < min {
		if min == 1 {
			return apperr.Validation("%s must contain at least one item", name)
		}
		return apperr.Validation("%s must contain at least %d items, got %d", name, min, n)
	}
	if max > 0 && n > max {
		return apperr.Validation("%s must contain at most %d items, got %d", name, max, n)
	}
	return nil
}

// OneOf validates enum membership. An empty value is accepted.
func OneOf(name, v string, allowed ...string) error {
	if v == "" {
		return nil
	}
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return apperr.Validation("%s must be one of %s, got %q", name, strings.Join(allowed, ", "), v)
}
