package models

import (
	"gorm.io/datatypes"

	"github.com/saase/requesthub/internal/shared/constants"
)

// DefaultSettingsKey names the single settings row.
const DefaultSettingsKey = "default"

// CompanySettingsModel keeps every settings group in one JSON document.
type CompanySettingsModel struct {
	ID          uint           `gorm:"primaryKey"`
	SettingsKey string         `gorm:"uniqueIndex;size:50;not null"`
	Document    datatypes.JSON `gorm:"not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:false;not null"`
}

func (CompanySettingsModel) TableName() string {
	return constants.TableCompanySettings
}

// All lists the models managed by auto migration.
func All() []interface{} {
	return []interface{}{
		&RequestModel{},
		&CompanySettingsModel{},
	}
}
