package http

import (
	"gorm.io/gorm"

	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/domain/setting"
	"github.com/saase/requesthub/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	requestRepo request.Repository
	settingRepo setting.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		requestRepo: repository.NewRequestRepository(db),
		settingRepo: repository.NewCompanySettingsRepository(db),
	}
}
