package api

import (
	"context"
	"net/http"
	"net/url"
)

// QueuedProcess is an asynchronous job such as a file import.
type QueuedProcess struct {
	ProcessID          string         `json:"process_id"`
	Type               string         `json:"type"`
	Status             string         `json:"status"`
	Message            string         `json:"message,omitempty"`
	CreatedBy          int64          `json:"created_by,omitempty"`
	CreatedByEmail     string         `json:"created_by_email,omitempty"`
	CreatedAt          string         `json:"created_at,omitempty"`
	CreatedAtTimestamp int64          `json:"created_at_timestamp,omitempty"`
	Details            map[string]any `json:"details,omitempty"`
}

// ListQueuedProcesses lists a project's queued processes.
func (c *Client) ListQueuedProcesses(ctx context.Context, projectID string, opts PageOptions) ([]QueuedProcess, Pagination, error) {
	q := url.Values{}
	opts.apply(q)
	var result struct {
		Processes []QueuedProcess `json:"processes"`
	}
	page, err := c.do(ctx, http.MethodGet, projectPath(projectID, "processes"), q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.Processes, page, nil
}

// GetQueuedProcess retrieves a queued process.
func (c *Client) GetQueuedProcess(ctx context.Context, projectID, processID string) (*QueuedProcess, error) {
	var result struct {
		Process QueuedProcess `json:"process"`
	}
	if _, err := c.do(ctx, http.MethodGet, projectPath(projectID, "processes", url.PathEscape(processID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result.Process, nil
}
