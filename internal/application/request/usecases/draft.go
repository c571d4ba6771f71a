package usecases

import (
	"context"
	"time"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/shared/biztime"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
)

type CreateDraftResult struct {
	Token   string               `json:"token"`
	Preview *dto.DraftPreviewDTO `json:"preview"`
}

// CreateDraftUseCase validates request input and returns it as a signed
// token for the confirmation step. Nothing is stored.
type CreateDraftUseCase struct {
	sanitizer Sanitizer
	codec     DraftCodec
	ttl       time.Duration
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateDraftUseCase(sanitizer Sanitizer, codec DraftCodec, ttl time.Duration, logger logger.Interface) *CreateDraftUseCase {
	return &CreateDraftUseCase{
		sanitizer: sanitizer,
		codec:     codec,
		ttl:       ttl,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *CreateDraftUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateDraftResult, error) {
	details, err := prepareDetails(uc.sanitizer, cmd)
	if err != nil {
		return nil, err
	}

	d, err := request.NewDraft(details, uc.now(), uc.ttl)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	token, err := uc.codec.EncodeDraft(d)
	if err != nil {
		uc.logger.Errorw("failed to encode draft", "error", err)
		return nil, errors.NewInternalError("failed to create draft")
	}

	return &CreateDraftResult{Token: token, Preview: dto.ToDraftPreviewDTO(d)}, nil
}

type CommitDraftCommand struct {
	Token string `json:"token" binding:"required"`
}

// CommitDraftUseCase verifies a draft token and creates the request it carries.
type CommitDraftUseCase struct {
	codec  DraftCodec
	create CreateRequestExecutor
	logger logger.Interface
	now    func() time.Time
}

func NewCommitDraftUseCase(codec DraftCodec, create CreateRequestExecutor, logger logger.Interface) *CommitDraftUseCase {
	return &CommitDraftUseCase{
		codec:  codec,
		create: create,
		logger: logger,
		now:    biztime.NowUTC,
	}
}

func (uc *CommitDraftUseCase) Execute(ctx context.Context, cmd CommitDraftCommand) (*CreateRequestResult, error) {
	if cmd.Token == "" {
		return nil, errors.NewValidationError("draft token is required")
	}

	d, err := uc.codec.DecodeDraft(cmd.Token)
	if err != nil {
		uc.logger.Warnw("rejected draft token", "error", err)
		return nil, errors.NewValidationError("invalid or expired draft token")
	}
	if d.Expired(uc.now()) {
		return nil, errors.NewValidationError("invalid or expired draft token")
	}

	return uc.create.Execute(ctx, commandFromDetails(d.Details))
}
