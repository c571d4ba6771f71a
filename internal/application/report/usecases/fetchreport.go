package usecases

import (
	"context"
	"net/http"

	"github.com/saase/requesthub/internal/domain/report"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
)

type FetchReportQuery struct {
	Location string
}

// FetchReportUseCase reads and normalizes a stored report, failing with a
// remote fetch error that names the reason.
type FetchReportUseCase struct {
	fetcher ObjectFetcher
	logger  logger.Interface
}

func NewFetchReportUseCase(fetcher ObjectFetcher, logger logger.Interface) *FetchReportUseCase {
	return &FetchReportUseCase{fetcher: fetcher, logger: logger}
}

func (uc *FetchReportUseCase) Execute(ctx context.Context, query FetchReportQuery) (*report.Report, error) {
	r, err := uc.fetch(ctx, query.Location)
	if err != nil {
		reason := report.ReasonOf(err)
		uc.logger.Warnw("report fetch failed", "location", query.Location, "reason", reason, "error", err)
		return nil, toAppError(reason).WithCause(err)
	}
	uc.logger.Infow("report fetched", "location", r.Location)
	return &r, nil
}

func (uc *FetchReportUseCase) fetch(ctx context.Context, raw string) (report.Report, error) {
	loc, err := report.ParseLocation(raw)
	if err != nil {
		return report.Report{}, err
	}
	body, err := uc.fetcher.GetObject(ctx, loc)
	if err != nil {
		return report.Report{}, err
	}
	return report.Parse(body, loc.String())
}

func toAppError(reason report.Reason) *errors.AppError {
	switch reason {
	case report.ReasonLocationMissing:
		return errors.NewRemoteFetchError(http.StatusBadRequest, "Report location is required", string(reason))
	case report.ReasonLocationMalformed:
		return errors.NewRemoteFetchError(http.StatusBadRequest, "Invalid report location, expected s3://bucket/key", string(reason))
	case report.ReasonParse:
		return errors.NewRemoteFetchError(http.StatusBadRequest, "Report file is not a valid report document", string(reason))
	case report.ReasonObjectNotFound:
		return errors.NewRemoteFetchError(http.StatusNotFound, "Report file not found in S3", string(reason))
	case report.ReasonBucketNotFound:
		return errors.NewRemoteFetchError(http.StatusNotFound, "S3 bucket not found", string(reason))
	case report.ReasonEmptyBody:
		return errors.NewRemoteFetchError(http.StatusBadGateway, "Report file is empty", string(reason))
	default:
		return errors.NewRemoteFetchError(http.StatusBadGateway, "Failed to fetch report from S3", string(report.ReasonNetwork))
	}
}
