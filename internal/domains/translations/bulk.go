package translations

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/logging"
)

var bulkLog = logging.For("domain.translations.bulk")

// Bulk update pacing.
const (
	// DefaultDelay is the pause between two items.
	DefaultDelay = 100 * time.Millisecond

	// DefaultRetryBackoff is the pause before retrying a failed item.
	DefaultRetryBackoff = time.Second

	// DefaultMaxAttempts bounds the attempts per item, counting the first.
	DefaultMaxAttempts = 3
)

// BulkOptions control how a bulk update is paced.
type BulkOptions struct {
	Delay        time.Duration
	RetryBackoff time.Duration
	MaxAttempts  int

	// OnProgress, if set, is called after every item.
	OnProgress func(done, failed, total int)
}

// DefaultBulkOptions returns the production pacing.
func DefaultBulkOptions() BulkOptions {
	return BulkOptions{
		Delay:        DefaultDelay,
		RetryBackoff: DefaultRetryBackoff,
		MaxAttempts:  DefaultMaxAttempts,
	}
}

// UpdateFunc applies one item.
type UpdateFunc func(ctx context.Context, item Item) (*api.Translation, error)

// ItemResult is the outcome of one item.
type ItemResult struct {
	TranslationID int64
	Success       bool
	Translation   *api.Translation
	Error         string
	Attempts      int
}

// BulkResult summarizes a bulk update.
type BulkResult struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []ItemResult
	Duration  time.Duration
}

// RunBulk applies items one at a time in order, waiting opts.Delay between
// them. A failing item is retried up to opts.MaxAttempts times in total,
// opts.RetryBackoff apart, and then recorded as failed; the batch carries
// on with the next item. Once ctx is done the remaining items are recorded
// as failed without being attempted.
//
// Parameters:
//   - ctx: Context for cancellation
//   - items: The updates, in order
//   - update: Applies one item
//   - opts: Pacing
//
// Returns:
//   - BulkResult: One result per item, in input order
func RunBulk(ctx context.Context, items []Item, update UpdateFunc, opts BulkOptions) BulkResult {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	start := time.Now()
	res := BulkResult{Total: len(items), Results: make([]ItemResult, 0, len(items))}

	for i, item := range items {
		r := ItemResult{TranslationID: item.TranslationID}
		if err := ctx.Err(); err != nil {
			r.Error = err.Error()
		} else {
			r = runItem(ctx, item, update, opts)
		}

		if r.Success {
			res.Succeeded++
		} else {
			res.Failed++
			bulkLog.Debug("item failed", "translation", item.TranslationID, "attempts", r.Attempts, "err", r.Error)
		}
		res.Results = append(res.Results, r)
		if opts.OnProgress != nil {
			opts.OnProgress(i+1, res.Failed, len(items))
		}

		if i < len(items)-1 && opts.Delay > 0 {
			sleep(ctx, opts.Delay)
		}
	}

	res.Duration = time.Since(start)
	return res
}

func runItem(ctx context.Context, item Item, update UpdateFunc, opts BulkOptions) ItemResult {
	r := ItemResult{TranslationID: item.TranslationID}
	t, err := backoff.Retry(ctx, func() (*api.Translation, error) {
		r.Attempts++
		return update(ctx, item)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(opts.RetryBackoff)),
		backoff.WithMaxTries(uint(opts.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
	)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Success = true
	r.Translation = t
	return r
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
