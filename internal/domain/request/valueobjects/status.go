package valueobjects

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusSubmitted RequestStatus = "submitted" // legacy spelling of pending
	StatusAccepted  RequestStatus = "accepted"
	StatusRejected  RequestStatus = "rejected"
	// StatusClientApproved contains a space; it is stored and sent verbatim.
	StatusClientApproved RequestStatus = "client approved"
	StatusImplementation RequestStatus = "implementation"
)

var validRequestStatuses = map[RequestStatus]bool{
	StatusPending:        true,
	StatusSubmitted:      true,
	StatusAccepted:       true,
	StatusRejected:       true,
	StatusClientApproved: true,
	StatusImplementation: true,
}

var requestStatusTransitions = map[RequestStatus][]RequestStatus{
	StatusPending: {
		StatusAccepted,
		StatusRejected,
	},
	StatusSubmitted: {
		StatusAccepted,
		StatusRejected,
	},
	StatusAccepted: {
		StatusClientApproved,
	},
	StatusClientApproved: {
		StatusImplementation,
	},
}

// AllStatuses lists every enumerated status in workflow order.
func AllStatuses() []RequestStatus {
	return []RequestStatus{
		StatusPending,
		StatusSubmitted,
		StatusAccepted,
		StatusRejected,
		StatusClientApproved,
		StatusImplementation,
	}
}

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	return validRequestStatuses[s]
}

// Canonical folds the legacy submitted spelling into pending.
func (s RequestStatus) Canonical() RequestStatus {
	if s == StatusSubmitted {
		return StatusPending
	}
	return s
}

// Equivalent reports whether s and other name the same workflow state.
func (s RequestStatus) Equivalent(other RequestStatus) bool {
	return s.Canonical() == other.Canonical()
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Staying in an equivalent state is always allowed.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	if s.Equivalent(next) {
		return true
	}
	for _, allowed := range requestStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no other state is reachable from s.
func (s RequestStatus) IsTerminal() bool {
	return s.IsValid() && len(requestStatusTransitions[s]) == 0
}

func (s RequestStatus) IsPending() bool {
	return s == StatusPending || s == StatusSubmitted
}

func (s RequestStatus) IsAccepted() bool {
	return s == StatusAccepted
}

func (s RequestStatus) IsRejected() bool {
	return s == StatusRejected
}

// DisplayName returns a title-cased label, e.g. "Client Approved".
func (s RequestStatus) DisplayName() string {
	return cases.Title(language.English).String(string(s.Canonical()))
}

func NewRequestStatus(s string) (RequestStatus, error) {
	rs := RequestStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return rs, nil
}
