package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/saase/requesthub/internal/application/setting/dto"
	"github.com/saase/requesthub/internal/domain/setting"
	"github.com/saase/requesthub/internal/shared/biztime"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
)

// UpdateSettingsUseCase applies one settings group at a time.
type UpdateSettingsUseCase struct {
	repo     setting.Repository
	provider *SettingProvider
	logger   logger.Interface
	now      func() time.Time
}

func NewUpdateSettingsUseCase(repo setting.Repository, provider *SettingProvider, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		repo:     repo,
		provider: provider,
		logger:   logger,
		now:      biztime.NowUTC,
	}
}

func (uc *UpdateSettingsUseCase) UpdateProfile(ctx context.Context, p dto.ProfileDTO) (*dto.CompanySettingsDTO, error) {
	return uc.apply(ctx, "profile", func(s *setting.CompanySettings, now time.Time) error {
		return s.SetProfile(p.ToDomain(), now)
	})
}

func (uc *UpdateSettingsUseCase) UpdateFeaturePricing(ctx context.Context, fp dto.FeaturePricingDTO) (*dto.CompanySettingsDTO, error) {
	return uc.apply(ctx, "feature_pricing", func(s *setting.CompanySettings, now time.Time) error {
		return s.SetFeaturePricing(fp.ToDomain(), now)
	})
}

func (uc *UpdateSettingsUseCase) UpdatePaymentTerms(ctx context.Context, pt dto.PaymentTermsDTO) (*dto.CompanySettingsDTO, error) {
	return uc.apply(ctx, "payment_terms", func(s *setting.CompanySettings, now time.Time) error {
		return s.SetPaymentTerms(pt.ToDomain(), now)
	})
}

func (uc *UpdateSettingsUseCase) apply(
	ctx context.Context,
	group string,
	set func(*setting.CompanySettings, time.Time) error,
) (*dto.CompanySettingsDTO, error) {
	current, err := uc.repo.Get(ctx)
	switch {
	case stderrors.Is(err, setting.ErrSettingsNotFound):
		current = setting.Defaults()
	case err != nil:
		uc.logger.Errorw("failed to load company settings", "group", group, "error", err)
		return nil, errors.NewPersistenceError("failed to load company settings").WithCause(err)
	}

	if err := set(current, uc.now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, current); err != nil {
		uc.logger.Errorw("failed to save company settings", "group", group, "error", err)
		return nil, errors.NewPersistenceError("failed to save company settings").WithCause(err)
	}
	uc.provider.Invalidate()

	uc.logger.Infow("company settings updated", "group", group)
	return dto.ToCompanySettingsDTO(current), nil
}
