package handler

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProgressFunc receives progress of a long-running operation.
type ProgressFunc func(done, failed, total int, message string)

type progressKey struct{}

// WithProgress returns a context carrying fn.
func WithProgress(ctx context.Context, fn ProgressFunc) context.Context {
	return context.WithValue(ctx, progressKey{}, fn)
}

// Progress returns the ProgressFunc carried by ctx, or a no-op.
func Progress(ctx context.Context) ProgressFunc {
	if fn, ok := ctx.Value(progressKey{}).(ProgressFunc); ok && fn != nil {
		return fn
	}
	return func(int, int, int, string) {}
}

// mcpProgress forwards progress to the client as notifications/progress
// when the call carried a progress token.
func mcpProgress(ctx context.Context, req *mcp.CallToolRequest) context.Context {
	if req == nil || req.Params == nil || req.Session == nil {
		return ctx
	}
	token := req.Params.Meta["progressToken"]
	if token == nil {
		return ctx
	}
	return WithProgress(ctx, func(done, _, total int, message string) {
		err := req.Session.NotifyProgress(ctx, &mcp.ProgressNotificationParams{
			ProgressToken: token,
			Progress:      float64(done),
			Total:         float64(total),
			Message:       message,
		})
		if err != nil {
			log.Debug("progress notification failed", "err", err)
		}
	})
}
