package dto

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/saase/requesthub/internal/domain/report"
)

// DisplayDTO carries preformatted strings for the financial approval view.
type DisplayDTO struct {
	Currency             string `json:"currency"`
	CurrentPayment       string `json:"current_payment"`
	OriginalPresentValue string `json:"original_present_value"`
	NewEquivalentPayment string `json:"new_equivalent_payment"`
	PresentValueChange   string `json:"present_value_change"`
	InflationRate        string `json:"inflation_rate"`
	RiskFreeRate         string `json:"risk_free_rate"`
}

type ResolvedReportDTO struct {
	Report         report.Report `json:"report"`
	Source         string        `json:"source"`
	FallbackReason string        `json:"fallback_reason,omitempty"`
	Display        DisplayDTO    `json:"display"`
}

const defaultCurrency = money.MYR

var hundred = decimal.NewFromInt(100)

// FormatAmount renders v in currency, e.g. "RM1,000.00". Unknown codes fall
// back to MYR.
func FormatAmount(v float64, currency string) string {
	if money.GetCurrency(currency) == nil {
		currency = defaultCurrency
	}
	minor := decimal.NewFromFloat(v).Mul(hundred).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// FormatRate renders a fractional rate as a percentage with one decimal, e.g. "3.2%".
func FormatRate(r float64) string {
	return decimal.NewFromFloat(r).Mul(hundred).StringFixed(1) + "%"
}

func ToDisplay(r report.Report, currency string) DisplayDTO {
	if money.GetCurrency(currency) == nil {
		currency = defaultCurrency
	}
	change := decimal.NewFromFloat(r.CalculationResults.NewEquivalentPayment).
		Sub(decimal.NewFromFloat(r.CalculationResults.OriginalPresentValue))
	changeMinor := change.Mul(hundred).Round(0).IntPart()
	return DisplayDTO{
		Currency:             currency,
		CurrentPayment:       FormatAmount(r.Inputs.CurrentPayment, currency),
		OriginalPresentValue: FormatAmount(r.CalculationResults.OriginalPresentValue, currency),
		NewEquivalentPayment: FormatAmount(r.CalculationResults.NewEquivalentPayment, currency),
		PresentValueChange:   money.New(changeMinor, currency).Display(),
		InflationRate:        FormatRate(r.EconomicAssumptions.InflationRate),
		RiskFreeRate:         FormatRate(r.EconomicAssumptions.RiskFreeRate),
	}
}

func ToResolvedReportDTO(res report.Resolved, currency string) *ResolvedReportDTO {
	return &ResolvedReportDTO{
		Report:         res.Report,
		Source:         string(res.Source),
		FallbackReason: string(res.FallbackReason),
		Display:        ToDisplay(res.Report, currency),
	}
}

// StorageHealthDTO describes the configured object store.
type StorageHealthDTO struct {
	Region         string `json:"region"`
	Endpoint       string `json:"endpoint,omitempty"`
	HasCredentials bool   `json:"has_credentials"`
}
