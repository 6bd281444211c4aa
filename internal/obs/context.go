package obs

import "context"

type ctxKey int

const routePatternCtxKey ctxKey = iota

// WithRoutePattern records the matched router pattern so downstream logging
// and metrics can label by route template rather than raw URL.
func WithRoutePattern(ctx context.Context, pattern string) context.Context {
	return context.WithValue(ctx, routePatternCtxKey, pattern)
}

// RoutePattern returns the recorded route pattern, or "" when none was set.
func RoutePattern(ctx context.Context) string {
	pattern, _ := ctx.Value(routePatternCtxKey).(string)
	return pattern
}
