package models

import "github.com/saase/requesthub/internal/shared/constants"

// RequestModel stores one request row. The AI summary lives in nullable text
// columns; a NULL executive_summary means no summary is attached.
type RequestModel struct {
	ID                     uint    `gorm:"primaryKey"`
	RequestID              string  `gorm:"uniqueIndex;size:64;not null"`
	FullName               string  `gorm:"size:200;not null"`
	Email                  string  `gorm:"size:254;not null;index"`
	Company                string  `gorm:"size:200"`
	Phone                  string  `gorm:"size:50"`
	RequestType            string  `gorm:"size:100;not null"`
	ProjectTitle           string  `gorm:"size:200;not null"`
	Description            string  `gorm:"type:text;not null"`
	Timeline               string  `gorm:"size:100"`
	Budget                 string  `gorm:"size:100"`
	Status                 string  `gorm:"size:32;not null;index"`
	Priority               string  `gorm:"size:20;not null;default:medium"`
	Source                 string  `gorm:"size:50;not null;default:website"`
	ReportLocation         string  `gorm:"size:1024"`
	ExecutiveSummary       *string `gorm:"type:text"`
	TechnicalAnalysis      *string `gorm:"type:text"`
	ImplementationStrategy *string `gorm:"type:text"`
	FinancialOptimization  *string `gorm:"type:text"`
	RiskAssessment         *string `gorm:"type:text"`
	NextSteps              *string `gorm:"type:text"`

	// Stamps are set by the domain; gorm must not overwrite them.
	CreatedAt int64 `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt int64 `gorm:"autoUpdateTime:false;not null"`
}

func (RequestModel) TableName() string {
	return constants.TableRequests
}
