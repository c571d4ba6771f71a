package usecases

import (
	"context"
	"sync"

	"github.com/saase/requesthub/internal/domain/report"
	"github.com/saase/requesthub/internal/shared/logger"
)

type mockObjectFetcher struct {
	GetObjectFunc func(ctx context.Context, loc report.Location) ([]byte, error)
	calls         int
}

func (m *mockObjectFetcher) GetObject(ctx context.Context, loc report.Location) ([]byte, error) {
	m.calls++
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, loc)
	}
	return nil, report.NewFetchError(report.ReasonObjectNotFound, loc.String(), nil)
}

type staticCurrency string

func (c staticCurrency) BaseCurrency(context.Context) string { return string(c) }

type recordedResolution struct {
	source report.Source
	reason report.Reason
}

type mockRecorder struct {
	mu   sync.Mutex
	seen []recordedResolution
}

func (m *mockRecorder) ReportResolved(source report.Source, reason report.Reason) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, recordedResolution{source, reason})
}

type staticStorageInfo struct {
	region, endpoint string
	creds            bool
}

func (s staticStorageInfo) Region() string             { return s.region }
func (s staticStorageInfo) Endpoint() string           { return s.endpoint }
func (s staticStorageInfo) HasStaticCredentials() bool { return s.creds }

func newTestLogger() logger.Interface {
	return logger.Discard()
}
