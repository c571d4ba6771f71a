package usecases

import (
	"context"
	"time"

	reportdto "github.com/saase/requesthub/internal/application/report/dto"
	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/shared/biztime"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/goroutine"
	"github.com/saase/requesthub/internal/shared/logger"
)

// UpdateStatusCommand changes a request's status. ReportLocation and Summary
// are optional extras; a Summary triggers the webhook notification.
type UpdateStatusCommand struct {
	RequestID      string
	Status         string
	ReportLocation *string
	Summary        *dto.SummaryDTO
	Role           string
}

type UpdateStatusResult struct {
	Request        *dto.RequestDTO              `json:"request"`
	PreviousStatus string                       `json:"previous_status"`
	Report         *reportdto.ResolvedReportDTO `json:"report,omitempty"`
}

type UpdateStatusUseCase struct {
	repo       request.Repository
	authorizer TransitionAuthorizer
	resolver   ReportResolver
	notifier   Notifier
	recorder   Recorder
	logger     logger.Interface
	now        func() time.Time
}

func NewUpdateStatusUseCase(
	repo request.Repository,
	authorizer TransitionAuthorizer,
	resolver ReportResolver,
	notifier Notifier,
	recorder Recorder,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		repo:       repo,
		authorizer: authorizer,
		resolver:   resolver,
		notifier:   notifier,
		recorder:   recorderOrNoop(recorder),
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case", "request_id", cmd.RequestID, "new_status", cmd.Status)

	next, err := vo.NewRequestStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	summary := cmd.Summary.ToSummary()
	if summary != nil {
		if err := summary.Validate(); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	r, err := loadRequest(ctx, uc.repo, uc.logger, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	previous := r.Status()

	if !previous.Equivalent(next) {
		if err := uc.authorize(cmd.Role, next); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	if err := r.ChangeStatus(next, now); err != nil {
		uc.logger.Warnw("failed to change request status", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.ReportLocation != nil {
		r.AttachReportLocation(*cmd.ReportLocation, now)
	}
	if summary != nil {
		if err := r.AttachSummary(summary, now); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.repo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewPersistenceError("failed to update request").WithCause(err)
	}

	uc.recorder.StatusChanged(previous, r.Status())
	uc.logger.Infow("request status changed successfully",
		"request_id", cmd.RequestID,
		"old_status", previous,
		"new_status", r.Status(),
	)

	out := dto.ToRequestDTO(r)
	result := &UpdateStatusResult{Request: out, PreviousStatus: previous.String()}

	if r.Status().IsAccepted() && uc.resolver != nil {
		result.Report = uc.resolver.ResolveReport(ctx, r.ReportLocation())
	}
	if summary != nil {
		uc.notify(ctx, out)
	}

	return result, nil
}

func (uc *UpdateStatusUseCase) authorize(role string, next vo.RequestStatus) error {
	if uc.authorizer == nil {
		return nil
	}
	allowed, err := uc.authorizer.CanTransition(role, next)
	if err != nil {
		uc.logger.Errorw("failed to check transition permission", "role", role, "status", next, "error", err)
		return errors.NewInternalError("failed to check permission")
	}
	if !allowed {
		return errors.NewForbiddenError("status change not permitted", next.String())
	}
	return nil
}

// notify sends exactly one webhook for r without blocking the caller.
// Failures are logged and counted, never returned.
func (uc *UpdateStatusUseCase) notify(ctx context.Context, r *dto.RequestDTO) {
	if uc.notifier == nil {
		return
	}
	bg := context.WithoutCancel(ctx)
	goroutine.SafeGo(uc.logger, "request-webhook", func() {
		err := uc.notifier.NotifyRequestUpdated(bg, r)
		uc.recorder.NotificationSent(err == nil)
		if err != nil {
			uc.logger.Warnw("failed to notify request update", "request_id", r.RequestID, "error", err)
		}
	})
}
