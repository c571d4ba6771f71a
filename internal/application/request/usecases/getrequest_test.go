package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/shared/errors"
)

func TestGetRequestUseCase_Execute(t *testing.T) {
	repo := newMockRequestRepository()
	seedRequest(t, repo, "REQ-1-AAAAAAAA", vo.StatusPending, time.Now())
	uc := NewGetRequestUseCase(repo, newRenderer(), newTestLogger())

	got, err := uc.Execute(context.Background(), GetRequestQuery{RequestID: "REQ-1-AAAAAAAA"})
	require.NoError(t, err)
	assert.Equal(t, "REQ-1-AAAAAAAA", got.RequestID)
	assert.Nil(t, got.Summary)
}

func TestGetRequestUseCase_Execute_NotFound(t *testing.T) {
	uc := NewGetRequestUseCase(newMockRequestRepository(), nil, newTestLogger())

	_, err := uc.Execute(context.Background(), GetRequestQuery{RequestID: "REQ-404-AAAAAAAA"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetRequestUseCase_Execute_StoreFailure(t *testing.T) {
	repo := newMockRequestRepository()
	repo.GetByRequestIDFunc = func(context.Context, string) (*request.Request, error) {
		return nil, stderrors.New("timeout")
	}
	uc := NewGetRequestUseCase(repo, nil, newTestLogger())

	_, err := uc.Execute(context.Background(), GetRequestQuery{RequestID: "REQ-1-AAAAAAAA"})
	assert.True(t, errors.IsPersistenceError(err))
}

func TestGetRequestUseCase_ClientView(t *testing.T) {
	repo := newMockRequestRepository()
	r := seedRequest(t, repo, "REQ-1-AAAAAAAA", vo.StatusAccepted, time.Now())
	require.NoError(t, r.AttachSummary(&request.Summary{
		ExecutiveSummary: "**Go** for it",
		NextSteps:        []string{"Kick off"},
	}, time.Now()))
	uc := NewGetRequestUseCase(repo, newRenderer(), newTestLogger())

	view, err := uc.ClientView(context.Background(), GetRequestQuery{RequestID: "REQ-1-AAAAAAAA"})
	require.NoError(t, err)

	assert.Equal(t, "Accepted", view.StatusLabel)
	assert.False(t, view.Decisions.ReviewControls)
	assert.True(t, view.Decisions.FinancialApproval)
	assert.False(t, view.Decisions.InvoiceUnlocked)
	assert.Len(t, view.Progress, 6)
	require.NotNil(t, view.SummaryHTML)
	assert.Contains(t, view.SummaryHTML.ExecutiveSummary, "<strong>Go</strong>")
	assert.Len(t, view.SummaryHTML.NextSteps, 1)
}
