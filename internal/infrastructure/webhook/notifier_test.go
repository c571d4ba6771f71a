package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/shared/config"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
)

func sampleRequest() *dto.RequestDTO {
	return &dto.RequestDTO{
		RequestID:    "REQ-ABC-12345678",
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		RequestType:  "feature",
		ProjectTitle: "Analytics",
		Description:  "Build an analytics dashboard",
		Status:       "pending",
		Priority:     "medium",
		Source:       "website",
		Summary:      &dto.SummaryDTO{ExecutiveSummary: "Looks good", NextSteps: []string{"Kickoff"}},
	}
}

func TestNotifier_PostsFullRecord(t *testing.T) {
	var got dto.RequestDTO
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewNotifier(config.NotificationConfig{WebhookURL: srv.URL}, logger.Discard())
	require.NoError(t, n.NotifyRequestUpdated(context.Background(), sampleRequest()))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "REQ-ABC-12345678", got.RequestID)
	require.NotNil(t, got.Summary)
	assert.Equal(t, []string{"Kickoff"}, got.Summary.NextSteps)
}

func TestNotifier_Non2xxIsNotificationError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewNotifier(config.NotificationConfig{WebhookURL: srv.URL}, logger.Discard())
	err := n.NotifyRequestUpdated(context.Background(), sampleRequest())

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotification, appErr.Type)
	assert.Equal(t, 1, calls, "no retry")
}

func TestNotifier_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(3 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	n := NewNotifier(config.NotificationConfig{WebhookURL: srv.URL, TimeoutSeconds: 1}, logger.Discard())
	start := time.Now()
	err := n.NotifyRequestUpdated(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestNotifier_DisabledWithoutURL(t *testing.T) {
	n := NewNotifier(config.NotificationConfig{}, logger.Discard())
	assert.False(t, n.Enabled())
	assert.NoError(t, n.NotifyRequestUpdated(context.Background(), sampleRequest()))
}
