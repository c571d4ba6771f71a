package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/shared/biztime"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/goroutine"
	"github.com/saase/requesthub/internal/shared/id"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/utils"
)

type CreateRequestCommand struct {
	FullName     string `json:"full_name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email,max=254"`
	Company      string `json:"company" validate:"omitempty,max=200"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	RequestType  string `json:"request_type" validate:"required,max=100"`
	ProjectTitle string `json:"project_title" validate:"required,max=200"`
	Description  string `json:"description" validate:"required,min=10,max=10000"`
	Timeline     string `json:"timeline" validate:"omitempty,max=100"`
	Budget       string `json:"budget" validate:"omitempty,max=100"`
	Priority     string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type CreateRequestResult struct {
	RequestID string          `json:"request_id"`
	Request   *dto.RequestDTO `json:"request"`
}

type CreateRequestUseCase struct {
	repo      request.Repository
	sanitizer Sanitizer
	mailer    Mailer
	recorder  Recorder
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateRequestUseCase(
	repo request.Repository,
	sanitizer Sanitizer,
	mailer Mailer,
	recorder Recorder,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		repo:      repo,
		sanitizer: sanitizer,
		mailer:    mailer,
		recorder:  recorderOrNoop(recorder),
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case", "request_type", cmd.RequestType)

	details, err := prepareDetails(uc.sanitizer, cmd)
	if err != nil {
		uc.logger.Warnw("invalid create request command", "error", err)
		return nil, err
	}

	now := uc.now()
	requestID, err := id.NewRequestID(now)
	if err != nil {
		uc.logger.Errorw("failed to generate request id", "error", err)
		return nil, errors.NewInternalError("failed to generate request id")
	}

	r, err := request.NewRequest(requestID, details, now)
	if err != nil {
		uc.logger.Warnw("failed to create request entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to save request", "request_id", requestID, "error", err)
		return nil, errors.NewPersistenceError("failed to save request").WithCause(err)
	}

	uc.recorder.RequestCreated(r.Source())
	uc.logger.Infow("request created successfully", "request_id", requestID)

	out := dto.ToRequestDTO(r)
	uc.acknowledge(ctx, out)

	return &CreateRequestResult{RequestID: requestID, Request: out}, nil
}

func (uc *CreateRequestUseCase) acknowledge(ctx context.Context, r *dto.RequestDTO) {
	if uc.mailer == nil {
		return
	}
	bg := context.WithoutCancel(ctx)
	goroutine.SafeGo(uc.logger, "request-acknowledgement", func() {
		if err := uc.mailer.SendRequestAcknowledgement(bg, r); err != nil {
			uc.logger.Warnw("failed to send request acknowledgement", "request_id", r.RequestID, "error", err)
		}
	})
}

// prepareDetails strips markup, trims, and validates the command, returning
// a field-level validation error listing every invalid field.
func prepareDetails(s Sanitizer, cmd CreateRequestCommand) (request.Details, error) {
	clean := func(v string) string {
		if s != nil {
			v = s.StripTags(v)
		}
		return strings.TrimSpace(v)
	}

	cmd.FullName = clean(cmd.FullName)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Company = clean(cmd.Company)
	cmd.Phone = clean(cmd.Phone)
	cmd.RequestType = clean(cmd.RequestType)
	cmd.ProjectTitle = clean(cmd.ProjectTitle)
	cmd.Description = clean(cmd.Description)
	cmd.Timeline = clean(cmd.Timeline)
	cmd.Budget = clean(cmd.Budget)
	cmd.Priority = strings.ToLower(strings.TrimSpace(cmd.Priority))

	if err := utils.ValidateStruct(cmd); err != nil {
		return request.Details{}, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return request.Details{}, errors.NewValidationError(err.Error())
	}

	return request.Details{
		FullName:     cmd.FullName,
		Email:        cmd.Email,
		Company:      cmd.Company,
		Phone:        cmd.Phone,
		RequestType:  cmd.RequestType,
		ProjectTitle: cmd.ProjectTitle,
		Description:  cmd.Description,
		Timeline:     cmd.Timeline,
		Budget:       cmd.Budget,
		Priority:     priority,
	}, nil
}

func commandFromDetails(d request.Details) CreateRequestCommand {
	return CreateRequestCommand{
		FullName:     d.FullName,
		Email:        d.Email,
		Company:      d.Company,
		Phone:        d.Phone,
		RequestType:  d.RequestType,
		ProjectTitle: d.ProjectTitle,
		Description:  d.Description,
		Timeline:     d.Timeline,
		Budget:       d.Budget,
		Priority:     d.Priority.String(),
	}
}
