package usecases

import (
	"context"

	"github.com/saase/requesthub/internal/application/report/dto"
	"github.com/saase/requesthub/internal/domain/report"
)

// ObjectFetcher reads one object from storage. Failures are *report.FetchError
// with the not-found, empty-body or network reasons.
type ObjectFetcher interface {
	GetObject(ctx context.Context, loc report.Location) ([]byte, error)
}

// StorageInfo describes the configured object store.
type StorageInfo interface {
	Region() string
	Endpoint() string
	HasStaticCredentials() bool
}

// CurrencyProvider supplies the base currency used for display strings.
type CurrencyProvider interface {
	BaseCurrency(ctx context.Context) string
}

// Recorder counts resolution outcomes.
type Recorder interface {
	ReportResolved(source report.Source, reason report.Reason)
}

type FetchReportExecutor interface {
	Execute(ctx context.Context, query FetchReportQuery) (*report.Report, error)
}

type ResolveReportExecutor interface {
	Execute(ctx context.Context, query ResolveReportQuery) *dto.ResolvedReportDTO
}
