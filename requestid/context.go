package requestid

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying the request ID header value.
func NewContext(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, contextKey{}, value)
}

// FromContext returns the request ID header value stored by the middleware.
func FromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(contextKey{}).(string)
	return value, ok
}

// IDs returns the individual request IDs in their original order.
func IDs(ctx context.Context) []string {
	value, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return Tokens(value)
}
