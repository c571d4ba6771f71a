// Package report models the financial report documents kept in object storage.
package report

// Inputs are the payment parameters the report was computed from.
type Inputs struct {
	CurrentPayment   float64 `json:"current_payment"`
	CurrentFrequency string  `json:"current_frequency"`
	NewFrequency     string  `json:"new_frequency"`
	RemainingYears   float64 `json:"remaining_years"`
}

type CalculationResults struct {
	OriginalPresentValue float64 `json:"original_present_value"`
	NewEquivalentPayment float64 `json:"new_equivalent_payment"`
}

type EconomicAssumptions struct {
	InflationRate float64 `json:"inflation_rate"`
	RiskFreeRate  float64 `json:"risk_free_rate"`
}

// Report is the normalized document regardless of the stored shape.
type Report struct {
	Status              string              `json:"status"`
	Inputs              Inputs              `json:"inputs"`
	CalculationResults  CalculationResults  `json:"calculation_results"`
	EconomicAssumptions EconomicAssumptions `json:"economic_assumptions"`
	Location            string              `json:"location,omitempty"`
}

const StatusSuccess = "Success"

// Fallback is the fixed report shown whenever the stored one is unavailable.
func Fallback() Report {
	return Report{
		Status: StatusSuccess,
		Inputs: Inputs{
			CurrentPayment:   1000,
			CurrentFrequency: "monthly",
			NewFrequency:     "quarterly",
			RemainingYears:   5,
		},
		CalculationResults: CalculationResults{
			OriginalPresentValue: 12100,
			NewEquivalentPayment: 11900,
		},
		EconomicAssumptions: EconomicAssumptions{
			InflationRate: 0.032,
			RiskFreeRate:  0.035,
		},
	}
}

// Source tells whether a resolved report came from storage.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Resolved is the outcome of resolving a location; it never carries an error.
type Resolved struct {
	Report         Report `json:"report"`
	Source         Source `json:"source"`
	FallbackReason Reason `json:"fallback_reason,omitempty"`
}
