package setting

import (
	"context"
)

// Repository persists the single company settings document.
type Repository interface {
	// Get returns ErrSettingsNotFound when nothing has been saved.
	Get(ctx context.Context) (*CompanySettings, error)

	// Save creates or replaces the document.
	Save(ctx context.Context, s *CompanySettings) error
}
