package usecases

import (
	"context"

	"github.com/saase/requesthub/internal/application/setting/dto"
)

// GetSettingsUseCase returns the company settings, defaults included.
type GetSettingsUseCase struct {
	provider *SettingProvider
}

func NewGetSettingsUseCase(provider *SettingProvider) *GetSettingsUseCase {
	return &GetSettingsUseCase{provider: provider}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) *dto.CompanySettingsDTO {
	return dto.ToCompanySettingsDTO(uc.provider.Current(ctx))
}
