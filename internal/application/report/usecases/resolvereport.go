package usecases

import (
	"context"

	"github.com/saase/requesthub/internal/application/report/dto"
	"github.com/saase/requesthub/internal/domain/report"
	"github.com/saase/requesthub/internal/shared/logger"
)

type ResolveReportQuery struct {
	Location string
}

// ResolveReportUseCase never fails: any fetch failure yields the fixed
// fallback report tagged with the failure reason.
type ResolveReportUseCase struct {
	fetch    *FetchReportUseCase
	currency CurrencyProvider
	recorder Recorder
	logger   logger.Interface
}

func NewResolveReportUseCase(
	fetcher ObjectFetcher,
	currency CurrencyProvider,
	recorder Recorder,
	logger logger.Interface,
) *ResolveReportUseCase {
	return &ResolveReportUseCase{
		fetch:    NewFetchReportUseCase(fetcher, logger),
		currency: currency,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *ResolveReportUseCase) Execute(ctx context.Context, query ResolveReportQuery) *dto.ResolvedReportDTO {
	res := uc.resolve(ctx, query.Location)
	if uc.recorder != nil {
		uc.recorder.ReportResolved(res.Source, res.FallbackReason)
	}
	return dto.ToResolvedReportDTO(res, uc.baseCurrency(ctx))
}

func (uc *ResolveReportUseCase) resolve(ctx context.Context, location string) report.Resolved {
	r, err := uc.fetch.fetch(ctx, location)
	if err != nil {
		reason := report.ReasonOf(err)
		uc.logger.Warnw("using fallback report", "location", location, "reason", reason, "error", err)
		return report.Resolved{
			Report:         report.Fallback(),
			Source:         report.SourceFallback,
			FallbackReason: reason,
		}
	}
	return report.Resolved{Report: r, Source: report.SourceRemote}
}

func (uc *ResolveReportUseCase) baseCurrency(ctx context.Context) string {
	if uc.currency == nil {
		return ""
	}
	return uc.currency.BaseCurrency(ctx)
}

// ResolveReport is Execute keyed by a raw location.
func (uc *ResolveReportUseCase) ResolveReport(ctx context.Context, location string) *dto.ResolvedReportDTO {
	return uc.Execute(ctx, ResolveReportQuery{Location: location})
}
