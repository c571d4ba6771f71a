package dto

import (
	"github.com/saase/requesthub/internal/domain/setting"
	"github.com/saase/requesthub/internal/shared/biztime"
)

type ProfileDTO struct {
	CompanyName     string  `json:"company_name" binding:"required"`
	Industry        string  `json:"industry"`
	BusinessModel   string  `json:"business_model"`
	BaseCurrency    string  `json:"base_currency" binding:"required,len=3"`
	MinimumRevenue  float64 `json:"minimum_revenue" binding:"gte=0"`
	TaxRate         float64 `json:"tax_rate" binding:"gte=0,lte=100"`
	DefaultDiscount float64 `json:"default_discount" binding:"gte=0,lte=100"`
}

type ComplexityMultiplierDTO struct {
	Low    float64 `json:"low" binding:"gt=0"`
	Medium float64 `json:"medium" binding:"gt=0"`
	High   float64 `json:"high" binding:"gt=0"`
}

type FeaturePricingDTO struct {
	BasePrice             float64                 `json:"base_price" binding:"gte=0"`
	DevelopmentHourlyRate float64                 `json:"development_hourly_rate" binding:"gt=0"`
	ComplexityMultiplier  ComplexityMultiplierDTO `json:"complexity_multiplier"`
}

type PaymentTermsDTO struct {
	DefaultPaymentDays   int     `json:"default_payment_days" binding:"gte=0"`
	InstallmentOptions   []int   `json:"installment_options" binding:"dive,gte=1"`
	EarlyPaymentDiscount float64 `json:"early_payment_discount" binding:"gte=0,lte=100"`
}

type CompanySettingsDTO struct {
	Profile        ProfileDTO        `json:"profile"`
	FeaturePricing FeaturePricingDTO `json:"feature_pricing"`
	PaymentTerms   PaymentTermsDTO   `json:"payment_terms"`
	UpdatedAt      string            `json:"updated_at,omitempty"`
}

func ToCompanySettingsDTO(s *setting.CompanySettings) *CompanySettingsDTO {
	p := s.Profile()
	fp := s.FeaturePricing()
	pt := s.PaymentTerms()

	out := &CompanySettingsDTO{
		Profile: ProfileDTO{
			CompanyName:     p.CompanyName,
			Industry:        p.Industry,
			BusinessModel:   p.BusinessModel,
			BaseCurrency:    p.BaseCurrency,
			MinimumRevenue:  p.MinimumRevenue,
			TaxRate:         p.TaxRate,
			DefaultDiscount: p.DefaultDiscount,
		},
		FeaturePricing: FeaturePricingDTO{
			BasePrice:             fp.BasePrice,
			DevelopmentHourlyRate: fp.DevelopmentHourlyRate,
			ComplexityMultiplier: ComplexityMultiplierDTO{
				Low:    fp.ComplexityMultiplier.Low,
				Medium: fp.ComplexityMultiplier.Medium,
				High:   fp.ComplexityMultiplier.High,
			},
		},
		PaymentTerms: PaymentTermsDTO{
			DefaultPaymentDays:   pt.DefaultPaymentDays,
			InstallmentOptions:   pt.InstallmentOptions,
			EarlyPaymentDiscount: pt.EarlyPaymentDiscount,
		},
	}
	if !s.UpdatedAt().IsZero() {
		out.UpdatedAt = biztime.FormatRFC3339(s.UpdatedAt())
	}
	return out
}

func (p ProfileDTO) ToDomain() setting.Profile {
	return setting.Profile{
		CompanyName:     p.CompanyName,
		Industry:        p.Industry,
		BusinessModel:   p.BusinessModel,
		BaseCurrency:    p.BaseCurrency,
		MinimumRevenue:  p.MinimumRevenue,
		TaxRate:         p.TaxRate,
		DefaultDiscount: p.DefaultDiscount,
	}
}

func (fp FeaturePricingDTO) ToDomain() setting.FeaturePricing {
	return setting.FeaturePricing{
		BasePrice:             fp.BasePrice,
		DevelopmentHourlyRate: fp.DevelopmentHourlyRate,
		ComplexityMultiplier: setting.ComplexityMultiplier{
			Low:    fp.ComplexityMultiplier.Low,
			Medium: fp.ComplexityMultiplier.Medium,
			High:   fp.ComplexityMultiplier.High,
		},
	}
}

func (pt PaymentTermsDTO) ToDomain() setting.PaymentTerms {
	return setting.PaymentTerms{
		DefaultPaymentDays:   pt.DefaultPaymentDays,
		InstallmentOptions:   pt.InstallmentOptions,
		EarlyPaymentDiscount: pt.EarlyPaymentDiscount,
	}
}
