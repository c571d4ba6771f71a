package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the stored JSON in one of its two shapes.
type Document interface {
	normalize() Report
}

// FlatDocument holds the sections at the top level.
type FlatDocument struct {
	Status              string         `json:"status"`
	Inputs              rawInputs      `json:"inputs"`
	CalculationResults  rawResults     `json:"calculation_results"`
	EconomicAssumptions rawAssumptions `json:"economic_assumptions"`
}

// WrappedDocument nests a flat document under report_data.
type WrappedDocument struct {
	Status     string       `json:"status"`
	ReportData FlatDocument `json:"report_data"`
}

// Stored reports suffix currency amounts with the currency code; both
// spellings are read, the unsuffixed one wins when both are present.
type rawInputs struct {
	CurrentPayment    *float64 `json:"current_payment"`
	CurrentPaymentMYR *float64 `json:"current_payment_MYR"`
	CurrentFrequency  string   `json:"current_frequency"`
	NewFrequency      string   `json:"new_frequency"`
	RemainingYears    float64  `json:"remaining_years"`
}

type rawResults struct {
	OriginalPresentValue    *float64 `json:"original_present_value"`
	OriginalPresentValueMYR *float64 `json:"original_present_value_MYR"`
	NewEquivalentPayment    *float64 `json:"new_equivalent_payment"`
	NewEquivalentPaymentMYR *float64 `json:"new_equivalent_payment_MYR"`
}

type rawAssumptions struct {
	InflationRate float64 `json:"inflation_rate"`
	RiskFreeRate  float64 `json:"risk_free_rate"`
}

func firstOf(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func (d FlatDocument) normalize() Report {
	status := d.Status
	if status == "" {
		status = StatusSuccess
	}
	return Report{
		Status: status,
		Inputs: Inputs{
			CurrentPayment:   firstOf(d.Inputs.CurrentPayment, d.Inputs.CurrentPaymentMYR),
			CurrentFrequency: d.Inputs.CurrentFrequency,
			NewFrequency:     d.Inputs.NewFrequency,
			RemainingYears:   d.Inputs.RemainingYears,
		},
		CalculationResults: CalculationResults{
			OriginalPresentValue: firstOf(d.CalculationResults.OriginalPresentValue, d.CalculationResults.OriginalPresentValueMYR),
			NewEquivalentPayment: firstOf(d.CalculationResults.NewEquivalentPayment, d.CalculationResults.NewEquivalentPaymentMYR),
		},
		EconomicAssumptions: EconomicAssumptions{
			InflationRate: d.EconomicAssumptions.InflationRate,
			RiskFreeRate:  d.EconomicAssumptions.RiskFreeRate,
		},
	}
}

func (d WrappedDocument) normalize() Report {
	inner := d.ReportData
	if inner.Status == "" {
		inner.Status = d.Status
	}
	return inner.normalize()
}

// DecodeDocument picks the document variant by the presence of report_data.
func DecodeDocument(body []byte) (Document, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}

	if raw, ok := probe["report_data"]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		var w WrappedDocument
		if err := json.Unmarshal(body, &w); err != nil {
			return nil, fmt.Errorf("invalid wrapped document: %w", err)
		}
		return w, nil
	}

	if _, ok := probe["inputs"]; !ok {
		if _, ok := probe["calculation_results"]; !ok {
			return nil, fmt.Errorf("document has neither report_data nor inputs")
		}
	}
	var f FlatDocument
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("invalid flat document: %w", err)
	}
	return f, nil
}

// Normalize returns the single report shape for either document variant.
func Normalize(d Document) Report {
	return d.normalize()
}

// Parse decodes and normalizes a stored document, stamping its location.
func Parse(body []byte, location string) (Report, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Report{}, NewFetchError(ReasonEmptyBody, location, nil)
	}
	doc, err := DecodeDocument(body)
	if err != nil {
		return Report{}, NewFetchError(ReasonParse, location, err)
	}
	r := Normalize(doc)
	r.Location = location
	return r, nil
}
