package request

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/shared/biztime"
)

const (
	MinDescriptionLength = 10
	MaxTitleLength       = 200
	MaxDescriptionLength = 10000

	SourceWebsite = "website"
)

// Details is the caller-supplied content of a request.
type Details struct {
	FullName     string
	Email        string
	Company      string
	Phone        string
	RequestType  string
	ProjectTitle string
	Description  string
	Timeline     string
	Budget       string
	Priority     vo.Priority
}

// Missing returns the names of required fields that are blank, plus
// description when it is shorter than MinDescriptionLength.
func (d Details) Missing() []string {
	var out []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			out = append(out, name)
		}
	}
	check("full_name", d.FullName)
	check("email", d.Email)
	check("request_type", d.RequestType)
	check("project_title", d.ProjectTitle)
	if len([]rune(strings.TrimSpace(d.Description))) < MinDescriptionLength {
		out = append(out, "description")
	}
	return out
}

// Request is a customer-submitted project ask tracked from intake to implementation.
type Request struct {
	id             uint
	requestID      string
	details        Details
	status         vo.RequestStatus
	source         string
	reportLocation string
	summary        *Summary
	createdAt      time.Time
	updatedAt      time.Time
}

// NewRequest creates a pending request. createdAt and updatedAt are truncated
// to millisecond precision, which is what storage keeps.
func NewRequest(requestID string, d Details, now time.Time) (*Request, error) {
	if requestID == "" {
		return nil, fmt.Errorf("request ID is required")
	}
	if missing := d.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing or invalid fields: %s", strings.Join(missing, ", "))
	}
	if len(d.ProjectTitle) > MaxTitleLength {
		return nil, fmt.Errorf("project title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(d.Description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if d.Priority == "" {
		d.Priority = vo.PriorityMedium
	}
	if !d.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	ts := biztime.FromMillis(now.UnixMilli())
	return &Request{
		requestID: requestID,
		details:   d,
		status:    vo.StatusPending,
		source:    SourceWebsite,
		createdAt: ts,
		updatedAt: ts,
	}, nil
}

// ReconstructRequest rebuilds a request from storage.
func ReconstructRequest(
	id uint,
	requestID string,
	d Details,
	status vo.RequestStatus,
	source string,
	reportLocation string,
	summary *Summary,
	createdAt, updatedAt time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if requestID == "" {
		return nil, fmt.Errorf("request identifier is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if d.Priority == "" {
		d.Priority = vo.PriorityMedium
	}

	return &Request{
		id:             id,
		requestID:      requestID,
		details:        d,
		status:         status,
		source:         source,
		reportLocation: reportLocation,
		summary:        summary,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Request) ID() uint                 { return r.id }
func (r *Request) RequestID() string        { return r.requestID }
func (r *Request) Details() Details         { return r.details }
func (r *Request) FullName() string         { return r.details.FullName }
func (r *Request) Email() string            { return r.details.Email }
func (r *Request) Company() string          { return r.details.Company }
func (r *Request) Phone() string            { return r.details.Phone }
func (r *Request) RequestType() string      { return r.details.RequestType }
func (r *Request) ProjectTitle() string     { return r.details.ProjectTitle }
func (r *Request) Description() string      { return r.details.Description }
func (r *Request) Timeline() string         { return r.details.Timeline }
func (r *Request) Budget() string           { return r.details.Budget }
func (r *Request) Priority() vo.Priority    { return r.details.Priority }
func (r *Request) Status() vo.RequestStatus { return r.status }
func (r *Request) Source() string           { return r.source }
func (r *Request) ReportLocation() string   { return r.reportLocation }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }
func (r *Request) UpdatedAt() time.Time     { return r.updatedAt }

// Summary returns a copy of the attached AI summary, or nil.
func (r *Request) Summary() *Summary {
	return r.summary.Clone()
}

func (r *Request) HasSummary() bool {
	return r.summary != nil
}

// SetID is called by the repository after insert.
func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// ChangeStatus moves the request to next. Moving to an equivalent status is
// allowed and only stamps the update time.
func (r *Request) ChangeStatus(next vo.RequestStatus, now time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, next)
	}
	if !r.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.status, next)
	}
	r.status = next
	r.touch(now)
	return nil
}

// AttachReportLocation records where the generated report lives.
func (r *Request) AttachReportLocation(location string, now time.Time) {
	r.reportLocation = strings.TrimSpace(location)
	r.touch(now)
}

// AttachSummary replaces the AI summary as a whole.
func (r *Request) AttachSummary(s *Summary, now time.Time) error {
	if s == nil {
		return fmt.Errorf("%w: summary is required", ErrInvalidSummary)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	r.summary = s.Clone()
	r.touch(now)
	return nil
}

func (r *Request) touch(now time.Time) {
	r.updatedAt = biztime.FromMillis(biztime.NextMillis(r.updatedAt.UnixMilli(), now))
}
