package contracts

import "context"

// ResourceLimiter throttles a named action per caller key, such as login
// attempts per client IP.
type ResourceLimiter interface {
	Allow(ctx context.Context, group, key string) (bool, error)
	Reset(ctx context.Context, group, key string) error
}
