package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/id"
	"github.com/saase/requesthub/internal/shared/services/markdown"
)

func TestCreateRequestUseCase_Execute_Success(t *testing.T) {
	repo := newMockRequestRepository()
	mailer := &mockMailer{sent: make(chan *dto.RequestDTO, 1)}
	recorder := &mockRecorder{}
	uc := NewCreateRequestUseCase(repo, markdown.NewRenderer(), mailer, recorder, newTestLogger())

	result, err := uc.Execute(context.Background(), validCommand())
	require.NoError(t, err)

	assert.True(t, id.IsRequestID(result.RequestID))
	assert.Equal(t, result.RequestID, result.Request.RequestID)
	assert.Equal(t, "pending", result.Request.Status)
	assert.Equal(t, "medium", result.Request.Priority)
	assert.Equal(t, "website", result.Request.Source)
	assert.Equal(t, result.Request.CreatedAt, result.Request.UpdatedAt)
	assert.Equal(t, 1, repo.count())
	assert.Equal(t, 1, recorder.created)

	select {
	case sent := <-mailer.sent:
		assert.Equal(t, result.RequestID, sent.RequestID)
	case <-time.After(time.Second):
		t.Fatal("acknowledgement was not sent")
	}
}

func TestCreateRequestUseCase_Execute_StripsMarkup(t *testing.T) {
	repo := newMockRequestRepository()
	uc := NewCreateRequestUseCase(repo, markdown.NewRenderer(), nil, nil, newTestLogger())

	cmd := validCommand()
	cmd.ProjectTitle = "<b>Fleet</b> dashboard"
	cmd.Description = "<script>alert(1)</script>Track R&D trucks in real time."

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "Fleet dashboard", result.Request.ProjectTitle)
	assert.Equal(t, "Track R&D trucks in real time.", result.Request.Description)
}

func TestCreateRequestUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateRequestCommand)
		fields []string
	}{
		{
			name:   "missing name",
			mutate: func(c *CreateRequestCommand) { c.FullName = "" },
			fields: []string{"full_name"},
		},
		{
			name:   "bad email",
			mutate: func(c *CreateRequestCommand) { c.Email = "not-an-email" },
			fields: []string{"email"},
		},
		{
			name:   "short description",
			mutate: func(c *CreateRequestCommand) { c.Description = "too short" },
			fields: []string{"description"},
		},
		{
			name:   "markup-only title",
			mutate: func(c *CreateRequestCommand) { c.ProjectTitle = "<p></p>" },
			fields: []string{"project_title"},
		},
		{
			name:   "unknown priority",
			mutate: func(c *CreateRequestCommand) { c.Priority = "critical" },
			fields: []string{"priority"},
		},
		{
			name: "every required field",
			mutate: func(c *CreateRequestCommand) {
				*c = CreateRequestCommand{}
			},
			fields: []string{"full_name", "email", "request_type", "project_title", "description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRequestRepository()
			uc := NewCreateRequestUseCase(repo, markdown.NewRenderer(), nil, nil, newTestLogger())

			cmd := validCommand()
			tt.mutate(&cmd)

			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			appErr := errors.GetAppError(err)
			var got []string
			for _, f := range appErr.Fields {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
			assert.Equal(t, 0, repo.count(), "nothing is persisted")
		})
	}
}

func TestCreateRequestUseCase_Execute_PersistenceError(t *testing.T) {
	repo := newMockRequestRepository()
	repo.CreateFunc = func(context.Context, *request.Request) error {
		return stderrors.New("connection refused")
	}
	uc := NewCreateRequestUseCase(repo, nil, nil, nil, newTestLogger())

	_, err := uc.Execute(context.Background(), validCommand())
	require.Error(t, err)
	assert.True(t, errors.IsPersistenceError(err))
}

func TestCreateRequestUseCase_Execute_KeepsPriority(t *testing.T) {
	uc := NewCreateRequestUseCase(newMockRequestRepository(), nil, nil, nil, newTestLogger())

	cmd := validCommand()
	cmd.Priority = "Urgent"
	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "urgent", result.Request.Priority)
}
