package setting

import (
	"fmt"
	"strings"
	"time"
)

type Profile struct {
	CompanyName     string  `json:"company_name"`
	Industry        string  `json:"industry"`
	BusinessModel   string  `json:"business_model"`
	BaseCurrency    string  `json:"base_currency"`
	MinimumRevenue  float64 `json:"minimum_revenue"`
	TaxRate         float64 `json:"tax_rate"`
	DefaultDiscount float64 `json:"default_discount"`
}

type ComplexityMultiplier struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

type FeaturePricing struct {
	BasePrice             float64              `json:"base_price"`
	DevelopmentHourlyRate float64              `json:"development_hourly_rate"`
	ComplexityMultiplier  ComplexityMultiplier `json:"complexity_multiplier"`
}

type PaymentTerms struct {
	DefaultPaymentDays   int     `json:"default_payment_days"`
	InstallmentOptions   []int   `json:"installment_options"`
	EarlyPaymentDiscount float64 `json:"early_payment_discount"`
}

// CompanySettings is edited one group at a time through its setters.
type CompanySettings struct {
	profile        Profile
	featurePricing FeaturePricing
	paymentTerms   PaymentTerms
	updatedAt      time.Time
}

func DefaultProfile() Profile {
	return Profile{
		CompanyName:     "Saas E",
		Industry:        "Software as a Service",
		BusinessModel:   "B2B SaaS",
		BaseCurrency:    "MYR",
		MinimumRevenue:  50000,
		TaxRate:         6,
		DefaultDiscount: 0,
	}
}

func DefaultFeaturePricing() FeaturePricing {
	return FeaturePricing{
		BasePrice:             5000,
		DevelopmentHourlyRate: 150,
		ComplexityMultiplier:  ComplexityMultiplier{Low: 1.0, Medium: 1.5, High: 2.5},
	}
}

func DefaultPaymentTerms() PaymentTerms {
	return PaymentTerms{
		DefaultPaymentDays:   30,
		InstallmentOptions:   []int{2, 3, 6, 12},
		EarlyPaymentDiscount: 5,
	}
}

// Defaults returns the settings used before anything has been saved.
func Defaults() *CompanySettings {
	return &CompanySettings{
		profile:        DefaultProfile(),
		featurePricing: DefaultFeaturePricing(),
		paymentTerms:   DefaultPaymentTerms(),
	}
}

// Reconstruct rebuilds settings from storage without validation.
func Reconstruct(p Profile, fp FeaturePricing, pt PaymentTerms, updatedAt time.Time) *CompanySettings {
	pt.InstallmentOptions = append([]int(nil), pt.InstallmentOptions...)
	return &CompanySettings{profile: p, featurePricing: fp, paymentTerms: pt, updatedAt: updatedAt}
}

func (s *CompanySettings) Profile() Profile               { return s.profile }
func (s *CompanySettings) FeaturePricing() FeaturePricing { return s.featurePricing }
func (s *CompanySettings) UpdatedAt() time.Time           { return s.updatedAt }

func (s *CompanySettings) PaymentTerms() PaymentTerms {
	pt := s.paymentTerms
	pt.InstallmentOptions = append([]int(nil), pt.InstallmentOptions...)
	return pt
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSettings, fmt.Sprintf(format, args...))
}

func (s *CompanySettings) SetProfile(p Profile, now time.Time) error {
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.BaseCurrency = strings.ToUpper(strings.TrimSpace(p.BaseCurrency))
	if p.CompanyName == "" {
		return invalid("company name is required")
	}
	if len(p.BaseCurrency) != 3 {
		return invalid("base currency must be a 3-letter ISO code")
	}
	if p.MinimumRevenue < 0 {
		return invalid("minimum revenue cannot be negative")
	}
	if p.TaxRate < 0 || p.TaxRate > 100 {
		return invalid("tax rate must be between 0 and 100")
	}
	if p.DefaultDiscount < 0 || p.DefaultDiscount > 100 {
		return invalid("default discount must be between 0 and 100")
	}
	s.profile = p
	s.updatedAt = now.UTC()
	return nil
}

func (s *CompanySettings) SetFeaturePricing(fp FeaturePricing, now time.Time) error {
	if fp.BasePrice < 0 {
		return invalid("base price cannot be negative")
	}
	if fp.DevelopmentHourlyRate <= 0 {
		return invalid("development hourly rate must be positive")
	}
	m := fp.ComplexityMultiplier
	if m.Low <= 0 || m.Medium <= 0 || m.High <= 0 {
		return invalid("complexity multipliers must be positive")
	}
	if m.Low > m.Medium || m.Medium > m.High {
		return invalid("complexity multipliers must not decrease from low to high")
	}
	s.featurePricing = fp
	s.updatedAt = now.UTC()
	return nil
}

func (s *CompanySettings) SetPaymentTerms(pt PaymentTerms, now time.Time) error {
	if pt.DefaultPaymentDays < 0 {
		return invalid("default payment days cannot be negative")
	}
	for _, n := range pt.InstallmentOptions {
		if n < 1 {
			return invalid("installment options must be at least 1")
		}
	}
	if pt.EarlyPaymentDiscount < 0 || pt.EarlyPaymentDiscount > 100 {
		return invalid("early payment discount must be between 0 and 100")
	}
	pt.InstallmentOptions = append([]int(nil), pt.InstallmentOptions...)
	s.paymentTerms = pt
	s.updatedAt = now.UTC()
	return nil
}

// MultiplierFor maps a 1..10 complexity score onto the configured multiplier.
func (s *CompanySettings) MultiplierFor(complexity float64) float64 {
	m := s.featurePricing.ComplexityMultiplier
	switch {
	case complexity > 7:
		return m.High
	case complexity > 4:
		return m.Medium
	default:
		return m.Low
	}
}
