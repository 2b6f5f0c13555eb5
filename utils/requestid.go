package utils

import "context"

type requestIDKey struct{}

// WithRequestID stores the per-request identifier on the context so the
// audit logger can stamp it on every entry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request identifier, or "" when the
// context was not produced by the request-id middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
