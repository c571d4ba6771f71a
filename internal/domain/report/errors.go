package report

import (
	"errors"
	"fmt"
)

// Reason names why a report could not be fetched.
type Reason string

const (
	ReasonLocationMissing   Reason = "location_missing"
	ReasonLocationMalformed Reason = "location_malformed"
	ReasonObjectNotFound    Reason = "object_not_found"
	ReasonBucketNotFound    Reason = "bucket_not_found"
	ReasonEmptyBody         Reason = "empty_body"
	ReasonNetwork           Reason = "network"
	ReasonParse             Reason = "parse"
)

// FetchError is returned by every failed fetch path.
type FetchError struct {
	Reason   Reason
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("report fetch failed (%s) for %q: %v", e.Reason, e.Location, e.Err)
	}
	return fmt.Sprintf("report fetch failed (%s) for %q", e.Reason, e.Location)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(reason Reason, location string, err error) *FetchError {
	return &FetchError{Reason: reason, Location: location, Err: err}
}

// ReasonOf extracts the reason from err, defaulting to network for foreign errors.
func ReasonOf(err error) Reason {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ReasonNetwork
}
