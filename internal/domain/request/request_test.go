package request

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validDetails() Details {
	return Details{
		FullName:     "Aisha Rahman",
		Email:        "aisha@example.com",
		Company:      "Kedai Digital",
		RequestType:  "integration",
		ProjectTitle: "Payment gateway sync",
		Description:  "Sync settlements from the payment gateway every hour",
		Timeline:     "3 months",
		Budget:       "flexible",
	}
}

func newValidRequest(t *testing.T) *Request {
	t.Helper()
	r, err := NewRequest("REQ-LOYW3V28-aB3dE5gH", validDetails(), time.UnixMilli(1_700_000_000_000))
	require.NoError(t, err)
	return r
}

func reconstructed(t *testing.T, status vo.RequestStatus) *Request {
	t.Helper()
	ts := time.UnixMilli(1_700_000_000_000).UTC()
	r, err := ReconstructRequest(7, "REQ-LOYW3V28-aB3dE5gH", validDetails(), status, SourceWebsite, "", nil, ts, ts)
	require.NoError(t, err)
	return r
}

// ---------------------------------------------------------------------------
// Constructor
// ---------------------------------------------------------------------------

func TestNewRequest_Defaults(t *testing.T) {
	r := newValidRequest(t)

	assert.Equal(t, vo.StatusPending, r.Status())
	assert.Equal(t, vo.PriorityMedium, r.Priority())
	assert.Equal(t, SourceWebsite, r.Source())
	assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
	assert.False(t, r.HasSummary())
	assert.Zero(t, r.ID())
}

func TestNewRequest_KeepsGivenPriority(t *testing.T) {
	d := validDetails()
	d.Priority = vo.PriorityUrgent
	r, err := NewRequest("REQ-1-aaaaaaaa", d, time.Now())
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityUrgent, r.Priority())
}

func TestNewRequest_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Details)
		field  string
	}{
		{"no name", func(d *Details) { d.FullName = "" }, "full_name"},
		{"blank email", func(d *Details) { d.Email = "   " }, "email"},
		{"no category", func(d *Details) { d.RequestType = "" }, "request_type"},
		{"no title", func(d *Details) { d.ProjectTitle = "" }, "project_title"},
		{"short description", func(d *Details) { d.Description = "too short" }, "description"},
		{"empty description", func(d *Details) { d.Description = "" }, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)

			assert.Equal(t, []string{tt.field}, d.Missing())
			_, err := NewRequest("REQ-1-aaaaaaaa", d, time.Now())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNewRequest_DescriptionBoundary(t *testing.T) {
	d := validDetails()
	d.Description = strings.Repeat("x", MinDescriptionLength)
	_, err := NewRequest("REQ-1-aaaaaaaa", d, time.Now())
	assert.NoError(t, err)
}

func TestReconstructRequest_RejectsUnknownStatus(t *testing.T) {
	ts := time.Now()
	_, err := ReconstructRequest(1, "REQ-1", validDetails(), vo.RequestStatus("archived"), SourceWebsite, "", nil, ts, ts)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

// ---------------------------------------------------------------------------
// Status changes
// ---------------------------------------------------------------------------

func TestChangeStatus_Allowed(t *testing.T) {
	r := reconstructed(t, vo.StatusSubmitted)
	before := r.UpdatedAt()

	require.NoError(t, r.ChangeStatus(vo.StatusAccepted, before.Add(time.Second)))
	assert.Equal(t, vo.StatusAccepted, r.Status())
	assert.True(t, r.UpdatedAt().After(before))

	require.NoError(t, r.ChangeStatus(vo.StatusClientApproved, time.Now()))
	require.NoError(t, r.ChangeStatus(vo.StatusImplementation, time.Now()))
	assert.True(t, r.Status().IsTerminal())
}

func TestChangeStatus_InvalidStatusLeavesStateUnchanged(t *testing.T) {
	r := reconstructed(t, vo.StatusPending)
	before := r.UpdatedAt()

	err := r.ChangeStatus(vo.RequestStatus("done"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, vo.StatusPending, r.Status())
	assert.Equal(t, before, r.UpdatedAt())
}

func TestChangeStatus_DisallowedTransition(t *testing.T) {
	r := reconstructed(t, vo.StatusRejected)

	err := r.ChangeStatus(vo.StatusAccepted, time.Now())
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, vo.StatusRejected, r.Status())
}

func TestChangeStatus_SameStatusStillStamps(t *testing.T) {
	r := reconstructed(t, vo.StatusPending)
	before := r.UpdatedAt()

	// clock has not advanced
	require.NoError(t, r.ChangeStatus(vo.StatusPending, before))
	assert.Equal(t, before.Add(time.Millisecond), r.UpdatedAt())
}

func TestUpdatedAt_StrictlyIncreasesAcrossMutations(t *testing.T) {
	r := reconstructed(t, vo.StatusPending)
	frozen := r.UpdatedAt()

	prev := r.UpdatedAt()
	r.AttachReportLocation("s3://reports/REQ-1.json", frozen)
	assert.True(t, r.UpdatedAt().After(prev))

	prev = r.UpdatedAt()
	require.NoError(t, r.AttachSummary(&Summary{ExecutiveSummary: "ok"}, frozen))
	assert.True(t, r.UpdatedAt().After(prev))

	prev = r.UpdatedAt()
	require.NoError(t, r.ChangeStatus(vo.StatusAccepted, frozen))
	assert.True(t, r.UpdatedAt().After(prev))
	assert.Equal(t, frozen, r.CreatedAt())
}

// ---------------------------------------------------------------------------
// Summary
// ---------------------------------------------------------------------------

func TestAttachSummary_ReplacesWhole(t *testing.T) {
	r := reconstructed(t, vo.StatusPending)

	first := &Summary{ExecutiveSummary: "first", RiskAssessment: "low", NextSteps: []string{"a", "b"}}
	require.NoError(t, r.AttachSummary(first, time.Now()))

	second := &Summary{ExecutiveSummary: "second", NextSteps: []string{"c"}}
	require.NoError(t, r.AttachSummary(second, time.Now()))

	got := r.Summary()
	assert.Equal(t, "second", got.ExecutiveSummary)
	assert.Empty(t, got.RiskAssessment)
	assert.Equal(t, []string{"c"}, got.NextSteps)

	// the returned copy does not alias internal state
	got.NextSteps[0] = "mutated"
	assert.Equal(t, []string{"c"}, r.Summary().NextSteps)
}

func TestAttachSummary_Invalid(t *testing.T) {
	r := reconstructed(t, vo.StatusPending)
	assert.ErrorIs(t, r.AttachSummary(nil, time.Now()), ErrInvalidSummary)
	assert.ErrorIs(t, r.AttachSummary(&Summary{}, time.Now()), ErrInvalidSummary)
	assert.False(t, r.HasSummary())
}

func TestNextStepsEncoding(t *testing.T) {
	raw, err := EncodeNextSteps([]string{"Kickoff", "Scope review"})
	require.NoError(t, err)
	assert.Equal(t, `["Kickoff","Scope review"]`, raw)

	steps, err := DecodeNextSteps(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kickoff", "Scope review"}, steps)

	empty, err := EncodeNextSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	steps, err = DecodeNextSteps("")
	require.NoError(t, err)
	assert.Empty(t, steps)

	_, err = DecodeNextSteps("not json")
	assert.Error(t, err)
}

func TestSetID(t *testing.T) {
	r := newValidRequest(t)
	require.NoError(t, r.SetID(3))
	assert.Equal(t, uint(3), r.ID())
	assert.Error(t, r.SetID(4))
}
