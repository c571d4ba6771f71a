package request

import (
	"fmt"
	"time"
)

// Draft carries validated request details between the form and the
// confirmation step. It is never stored; it travels as a signed token.
type Draft struct {
	Details   Details
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func NewDraft(d Details, now time.Time, ttl time.Duration) (*Draft, error) {
	if missing := d.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("draft is incomplete: %v", missing)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("draft ttl must be positive")
	}
	return &Draft{
		Details:   d,
		IssuedAt:  now.UTC(),
		ExpiresAt: now.UTC().Add(ttl),
	}, nil
}

func (d *Draft) Expired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}
