package request

import (
	"context"

	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, r *Request) error
	// Update persists status, report location, summary and updated time.
	Update(ctx context.Context, r *Request) error
	// GetByRequestID returns ErrRequestNotFound when nothing matches.
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	List(ctx context.Context, filter Filter) ([]*Request, int64, error)
}

// Filter narrows List. Zero values mean "no constraint"; a Limit of zero
// returns every match.
type Filter struct {
	RequestID string
	Status    *vo.RequestStatus
	Page      int
	Limit     int
}
