package queuedprocesses

import (
	"strings"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// ListArgs are the arguments of list-queued-processes.
type ListArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"Number of processes to return (1-500, default 100)"`
	Page      *int   `json:"page,omitempty" jsonschema:"Page number, starting at 1"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	var err error
	a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxLimit)
	return err
}

// GetArgs identify one process.
type GetArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	ProcessID string `json:"processId" jsonschema:"Process ID returned by an upload or other async operation"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if strings.TrimSpace(a.ProcessID) == "" {
		return apperr.Validation("processId is required")
	}
	return nil
}
