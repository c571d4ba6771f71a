package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/saase/requesthub/internal/domain/setting"
	"github.com/saase/requesthub/internal/shared/logger"
)

// SettingProvider caches the company settings, loading them lazily from the
// repository and falling back to defaults when nothing is stored or the store
// fails.
type SettingProvider struct {
	repo   setting.Repository
	logger logger.Interface

	mu     sync.RWMutex
	cached *setting.CompanySettings
}

func NewSettingProvider(repo setting.Repository, logger logger.Interface) *SettingProvider {
	return &SettingProvider{repo: repo, logger: logger}
}

// Current returns the active settings. The returned value must not be mutated.
func (p *SettingProvider) Current(ctx context.Context) *setting.CompanySettings {
	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()
	if cached != nil {
		return cached
	}

	s, err := p.repo.Get(ctx)
	switch {
	case errors.Is(err, setting.ErrSettingsNotFound):
		s = setting.Defaults()
	case err != nil:
		p.logger.Warnw("failed to load company settings, using defaults", "error", err)
		// not cached so the next call retries the store
		return setting.Defaults()
	}

	p.mu.Lock()
	p.cached = s
	p.mu.Unlock()
	return s
}

// Invalidate drops the cache after an update.
func (p *SettingProvider) Invalidate() {
	p.mu.Lock()
	p.cached = nil
	p.mu.Unlock()
}

// BaseCurrency is the currency used for report display strings.
func (p *SettingProvider) BaseCurrency(ctx context.Context) string {
	return p.Current(ctx).Profile().BaseCurrency
}

// HourlyRate is the development rate used for cost estimates.
func (p *SettingProvider) HourlyRate(ctx context.Context) float64 {
	return p.Current(ctx).FeaturePricing().DevelopmentHourlyRate
}
