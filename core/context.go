package core

import "context"

// Context keys for run options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	runUUIDKey        contextKey = "runUUID"
)

// withSuppressHeader marks the context so the run header is not printed
func withSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// withRunUUID stores the identifier of the current report run
func withRunUUID(ctx context.Context, runUUID string) context.Context {
	return context.WithValue(ctx, runUUIDKey, runUUID)
}

// getRunUUID returns the identifier of the current report run, if any
func getRunUUID(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(runUUIDKey).(string)
	return val, ok && val != ""
}
