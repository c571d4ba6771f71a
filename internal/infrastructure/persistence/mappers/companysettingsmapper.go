package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/saase/requesthub/internal/domain/setting"
	"github.com/saase/requesthub/internal/infrastructure/persistence/models"
	"github.com/saase/requesthub/internal/shared/biztime"
)

type settingsDocument struct {
	Profile        setting.Profile        `json:"profile"`
	FeaturePricing setting.FeaturePricing `json:"feature_pricing"`
	PaymentTerms   setting.PaymentTerms   `json:"payment_terms"`
}

// CompanySettingsMapper converts settings to and from the JSON document row.
type CompanySettingsMapper interface {
	ToModel(s *setting.CompanySettings) (*models.CompanySettingsModel, error)
	ToDomain(model *models.CompanySettingsModel) (*setting.CompanySettings, error)
}

type CompanySettingsMapperImpl struct{}

func NewCompanySettingsMapper() CompanySettingsMapper {
	return &CompanySettingsMapperImpl{}
}

func (m *CompanySettingsMapperImpl) ToModel(s *setting.CompanySettings) (*models.CompanySettingsModel, error) {
	doc, err := json.Marshal(settingsDocument{
		Profile:        s.Profile(),
		FeaturePricing: s.FeaturePricing(),
		PaymentTerms:   s.PaymentTerms(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode company settings: %w", err)
	}

	updatedAt := s.UpdatedAt()
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	return &models.CompanySettingsModel{
		SettingsKey: models.DefaultSettingsKey,
		Document:    doc,
		UpdatedAt:   updatedAt.UnixMilli(),
	}, nil
}

// ToDomain starts from the defaults so groups missing from an older document
// keep their default values.
func (m *CompanySettingsMapperImpl) ToDomain(model *models.CompanySettingsModel) (*setting.CompanySettings, error) {
	doc := settingsDocument{
		Profile:        setting.DefaultProfile(),
		FeaturePricing: setting.DefaultFeaturePricing(),
		PaymentTerms:   setting.DefaultPaymentTerms(),
	}
	if len(model.Document) > 0 {
		if err := json.Unmarshal(model.Document, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode company settings: %w", err)
		}
	}

	return setting.Reconstruct(doc.Profile, doc.FeaturePricing, doc.PaymentTerms, biztime.FromMillis(model.UpdatedAt)), nil
}
