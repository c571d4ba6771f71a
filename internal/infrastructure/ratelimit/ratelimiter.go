package ratelimit

import (
	"context"
	"time"
)

// Policy allows Limit calls per key within any sliding Window.
type Policy struct {
	Limit  int
	Window time.Duration
}

func (p Policy) Enabled() bool {
	return p.Limit > 0 && p.Window > 0
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (bool, error)
	GetRemaining(ctx context.Context, key string, policy Policy) (int64, error)
	Reset(ctx context.Context, key string) error
}
