package usecases

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	reportdto "github.com/saase/requesthub/internal/application/report/dto"
	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/report"
	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/services/markdown"
)

// mockRequestRepository keeps requests in memory unless a func field
// overrides the call.
type mockRequestRepository struct {
	CreateFunc         func(ctx context.Context, r *request.Request) error
	UpdateFunc         func(ctx context.Context, r *request.Request) error
	GetByRequestIDFunc func(ctx context.Context, requestID string) (*request.Request, error)
	ListFunc           func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error)

	mu      sync.Mutex
	rows    map[string]*request.Request
	nextID  uint
	updates int
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{rows: map[string]*request.Request{}}
}

func (m *mockRequestRepository) Create(ctx context.Context, r *request.Request) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := r.SetID(m.nextID); err != nil {
		return err
	}
	m.rows[r.RequestID()] = r
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	m.rows[r.RequestID()] = r
	return nil
}

func (m *mockRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*request.Request, error) {
	if m.GetByRequestIDFunc != nil {
		return m.GetByRequestIDFunc(ctx, requestID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[requestID]
	if !ok {
		return nil, request.ErrRequestNotFound
	}
	return r, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*request.Request
	for _, r := range m.rows {
		if filter.RequestID != "" && r.RequestID() != filter.RequestID {
			continue
		}
		if filter.Status != nil && r.Status() != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })

	total := int64(len(out))
	if filter.Limit > 0 {
		start := (filter.Page - 1) * filter.Limit
		if start > len(out) {
			start = len(out)
		}
		end := start + filter.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (m *mockRequestRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type mockNotifier struct {
	NotifyFunc func(ctx context.Context, r *dto.RequestDTO) error
	calls      chan *dto.RequestDTO
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{calls: make(chan *dto.RequestDTO, 8)}
}

func (m *mockNotifier) NotifyRequestUpdated(ctx context.Context, r *dto.RequestDTO) error {
	m.calls <- r
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, r)
	}
	return nil
}

type mockMailer struct {
	sent chan *dto.RequestDTO
}

func (m *mockMailer) SendRequestAcknowledgement(_ context.Context, r *dto.RequestDTO) error {
	m.sent <- r
	return nil
}

// roleAuthorizer allows the admin targets and the client approval target.
type roleAuthorizer struct{}

func (roleAuthorizer) CanTransition(role string, target vo.RequestStatus) (bool, error) {
	switch role {
	case "admin":
		return target == vo.StatusAccepted || target == vo.StatusRejected || target == vo.StatusImplementation, nil
	case "client":
		return target == vo.StatusClientApproved, nil
	}
	return false, nil
}

type mockResolver struct {
	locations []string
}

func (m *mockResolver) ResolveReport(_ context.Context, location string) *reportdto.ResolvedReportDTO {
	m.locations = append(m.locations, location)
	return reportdto.ToResolvedReportDTO(report.Resolved{
		Report:         report.Fallback(),
		Source:         report.SourceFallback,
		FallbackReason: report.ReasonLocationMissing,
	}, "MYR")
}

type staticRate float64

func (r staticRate) HourlyRate(context.Context) float64 { return float64(r) }

type mockRecorder struct {
	mu            sync.Mutex
	created       int
	changes       [][2]vo.RequestStatus
	notifications []bool
}

func (m *mockRecorder) RequestCreated(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *mockRecorder) StatusChanged(from, to vo.RequestStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, [2]vo.RequestStatus{from, to})
}

func (m *mockRecorder) NotificationSent(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, ok)
}

func newTestLogger() logger.Interface {
	return logger.Discard()
}

func validCommand() CreateRequestCommand {
	return CreateRequestCommand{
		FullName:     "Aisha Rahman",
		Email:        "aisha@example.com",
		Company:      "Rahman Logistics",
		RequestType:  "feature",
		ProjectTitle: "Fleet dashboard",
		Description:  "A dashboard showing live truck positions.",
		Timeline:     "3 months",
		Budget:       "flexible",
	}
}

func seedRequest(t *testing.T, repo *mockRequestRepository, requestID string, status vo.RequestStatus, createdAt time.Time) *request.Request {
	t.Helper()
	r, err := request.ReconstructRequest(
		uint(repo.count()+1),
		requestID,
		request.Details{
			FullName:     "Test Client",
			Email:        "client@example.com",
			RequestType:  "feature",
			ProjectTitle: "Test project",
			Description:  "A description long enough.",
			Priority:     vo.PriorityMedium,
		},
		status,
		request.SourceWebsite,
		"",
		nil,
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	repo.mu.Lock()
	repo.rows[requestID] = r
	repo.mu.Unlock()
	return r
}

func newRenderer() HTMLRenderer {
	return markdown.NewRenderer()
}
