package request

import "errors"

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrInvalidStatus     = errors.New("invalid request status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidSummary    = errors.New("invalid AI summary")
)
