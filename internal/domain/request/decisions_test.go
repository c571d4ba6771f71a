package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
)

func TestDecideFor(t *testing.T) {
	tests := []struct {
		status vo.RequestStatus
		want   Decisions
	}{
		{vo.StatusPending, Decisions{ReviewControls: true}},
		{vo.StatusSubmitted, Decisions{ReviewControls: true}},
		{vo.StatusAccepted, Decisions{ReviewedBanner: true, FinancialApproval: true}},
		{vo.StatusRejected, Decisions{ReviewedBanner: true}},
		{vo.StatusClientApproved, Decisions{ReviewedBanner: true, FinancialApproval: true, InvoiceUnlocked: true}},
		{vo.StatusImplementation, Decisions{ReviewedBanner: true, FinancialApproval: true, InvoiceUnlocked: true}},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, DecideFor(tt.status))
		})
	}
}

func states(steps []ProgressStep) []StepState {
	out := make([]StepState, len(steps))
	for i, s := range steps {
		out[i] = s.State
	}
	return out
}

func TestProgress(t *testing.T) {
	C, N, P, R := StepCompleted, StepCurrent, StepPending, StepRejected

	tests := []struct {
		name       string
		status     vo.RequestStatus
		hasSummary bool
		want       []StepState
	}{
		{"fresh submission", vo.StatusPending, false, []StepState{C, N, P, P, P, P}},
		{"analysed", vo.StatusSubmitted, true, []StepState{C, C, N, P, P, P}},
		{"rejected", vo.StatusRejected, true, []StepState{C, C, R, P, P, P}},
		{"accepted", vo.StatusAccepted, true, []StepState{C, C, C, C, N, P}},
		{"client approved", vo.StatusClientApproved, true, []StepState{C, C, C, C, C, N}},
		{"implementation", vo.StatusImplementation, true, []StepState{C, C, C, C, C, C}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := Progress(tt.status, tt.hasSummary)
			assert.Equal(t, tt.want, states(steps))
			assert.Equal(t, "Request Submitted", steps[0].Name)
			assert.Equal(t, "Implementation", steps[5].Name)
		})
	}
}

func TestDraft(t *testing.T) {
	now := time.Now()
	d, err := NewDraft(validDetails(), now, time.Hour)
	require.NoError(t, err)
	assert.False(t, d.Expired(now))
	assert.True(t, d.Expired(now.Add(time.Hour)))

	incomplete := validDetails()
	incomplete.Email = ""
	_, err = NewDraft(incomplete, now, time.Hour)
	assert.Error(t, err)

	_, err = NewDraft(validDetails(), now, 0)
	assert.Error(t, err)
}
