package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saase/requesthub/internal/application/setting/dto"
	"github.com/saase/requesthub/internal/domain/setting"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
)

type mockSettingRepository struct {
	GetFunc  func(ctx context.Context) (*setting.CompanySettings, error)
	SaveFunc func(ctx context.Context, s *setting.CompanySettings) error
	gets     int
}

func (m *mockSettingRepository) Get(ctx context.Context) (*setting.CompanySettings, error) {
	m.gets++
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, setting.ErrSettingsNotFound
}

func (m *mockSettingRepository) Save(ctx context.Context, s *setting.CompanySettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func TestSettingProvider_DefaultsAndCache(t *testing.T) {
	repo := &mockSettingRepository{}
	p := NewSettingProvider(repo, logger.Discard())

	assert.Equal(t, "MYR", p.BaseCurrency(context.Background()))
	assert.Equal(t, 150.0, p.HourlyRate(context.Background()))
	assert.Equal(t, 1, repo.gets, "second read is served from cache")

	p.Invalidate()
	p.Current(context.Background())
	assert.Equal(t, 2, repo.gets)
}

func TestSettingProvider_StoreFailureNotCached(t *testing.T) {
	repo := &mockSettingRepository{
		GetFunc: func(context.Context) (*setting.CompanySettings, error) { return nil, stderrors.New("db down") },
	}
	p := NewSettingProvider(repo, logger.Discard())

	assert.Equal(t, "Saas E", p.Current(context.Background()).Profile().CompanyName)
	p.Current(context.Background())
	assert.Equal(t, 2, repo.gets)
}

func TestUpdateSettings_Profile(t *testing.T) {
	var saved *setting.CompanySettings
	repo := &mockSettingRepository{
		SaveFunc: func(_ context.Context, s *setting.CompanySettings) error {
			saved = s
			return nil
		},
	}
	provider := NewSettingProvider(repo, logger.Discard())
	provider.Current(context.Background())
	uc := NewUpdateSettingsUseCase(repo, provider, logger.Discard())

	out, err := uc.UpdateProfile(context.Background(), dto.ProfileDTO{
		CompanyName:  "Saas E Sdn Bhd",
		BaseCurrency: "sgd",
		TaxRate:      8,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "SGD", out.Profile.BaseCurrency)
	assert.NotEmpty(t, out.UpdatedAt)
	assert.Equal(t, 150.0, out.FeaturePricing.DevelopmentHourlyRate, "other groups keep their values")

	repo.GetFunc = func(context.Context) (*setting.CompanySettings, error) { return saved, nil }
	assert.Equal(t, "SGD", provider.BaseCurrency(context.Background()), "cache invalidated after save")
}

func TestUpdateSettings_ValidationError(t *testing.T) {
	repo := &mockSettingRepository{
		SaveFunc: func(context.Context, *setting.CompanySettings) error {
			t.Fatal("must not save invalid settings")
			return nil
		},
	}
	uc := NewUpdateSettingsUseCase(repo, NewSettingProvider(repo, logger.Discard()), logger.Discard())

	_, err := uc.UpdateFeaturePricing(context.Background(), dto.FeaturePricingDTO{
		DevelopmentHourlyRate: 100,
		ComplexityMultiplier:  dto.ComplexityMultiplierDTO{Low: 3, Medium: 2, High: 1},
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateSettings_PersistenceError(t *testing.T) {
	repo := &mockSettingRepository{
		SaveFunc: func(context.Context, *setting.CompanySettings) error { return stderrors.New("disk full") },
	}
	uc := NewUpdateSettingsUseCase(repo, NewSettingProvider(repo, logger.Discard()), logger.Discard())

	_, err := uc.UpdatePaymentTerms(context.Background(), dto.PaymentTermsDTO{DefaultPaymentDays: 14, InstallmentOptions: []int{3}})
	assert.True(t, errors.IsPersistenceError(err))
}

func TestGetSettings(t *testing.T) {
	repo := &mockSettingRepository{}
	uc := NewGetSettingsUseCase(NewSettingProvider(repo, logger.Discard()))

	got := uc.Execute(context.Background())
	assert.Equal(t, []int{2, 3, 6, 12}, got.PaymentTerms.InstallmentOptions)
	assert.Empty(t, got.UpdatedAt)
}
