package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flatJSON = `{
  "status": "Success",
  "inputs": {"current_payment": 2500, "current_frequency": "monthly", "new_frequency": "annually", "remaining_years": 3},
  "calculation_results": {"original_present_value": 84000.5, "new_equivalent_payment": 29500},
  "economic_assumptions": {"inflation_rate": 0.03, "risk_free_rate": 0.04}
}`

const wrappedJSON = `{
  "report_data": {
    "status": "Success",
    "inputs": {"current_payment": 2500, "current_frequency": "monthly", "new_frequency": "annually", "remaining_years": 3},
    "calculation_results": {"original_present_value": 84000.5, "new_equivalent_payment": 29500},
    "economic_assumptions": {"inflation_rate": 0.03, "risk_free_rate": 0.04}
  }
}`

func TestNormalize_FlatAndWrappedAreIdentical(t *testing.T) {
	flat, err := DecodeDocument([]byte(flatJSON))
	require.NoError(t, err)
	wrapped, err := DecodeDocument([]byte(wrappedJSON))
	require.NoError(t, err)

	assert.IsType(t, FlatDocument{}, flat)
	assert.IsType(t, WrappedDocument{}, wrapped)
	assert.Equal(t, Normalize(flat), Normalize(wrapped))

	r := Normalize(flat)
	assert.Equal(t, 2500.0, r.Inputs.CurrentPayment)
	assert.Equal(t, "annually", r.Inputs.NewFrequency)
	assert.Equal(t, 84000.5, r.CalculationResults.OriginalPresentValue)
	assert.Equal(t, 0.04, r.EconomicAssumptions.RiskFreeRate)
}

func TestNormalize_CurrencySuffixedKeys(t *testing.T) {
	body := `{"report_data": {
	  "inputs": {"current_payment_MYR": 1200, "current_frequency": "monthly", "new_frequency": "quarterly", "remaining_years": 4},
	  "calculation_results": {"original_present_value_MYR": 50000, "new_equivalent_payment_MYR": 3600}
	}, "status": "Success"}`

	r, err := Parse([]byte(body), "s3://b/k.json")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, r.Inputs.CurrentPayment)
	assert.Equal(t, 50000.0, r.CalculationResults.OriginalPresentValue)
	assert.Equal(t, 3600.0, r.CalculationResults.NewEquivalentPayment)
	assert.Equal(t, "Success", r.Status)
	assert.Equal(t, "s3://b/k.json", r.Location)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Reason
	}{
		{"empty body", "", ReasonEmptyBody},
		{"whitespace body", " \n", ReasonEmptyBody},
		{"not json", "<html>", ReasonParse},
		{"json array", "[1,2]", ReasonParse},
		{"unrelated object", `{"hello": "world"}`, ReasonParse},
		{"wrong types", `{"inputs": {"current_payment": "lots"}}`, ReasonParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body), "s3://b/k.json")
			require.Error(t, err)
			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.want, fe.Reason)
		})
	}
}

func TestFallback(t *testing.T) {
	f := Fallback()
	assert.Equal(t, 1000.0, f.Inputs.CurrentPayment)
	assert.Equal(t, "monthly", f.Inputs.CurrentFrequency)
	assert.Equal(t, "quarterly", f.Inputs.NewFrequency)
	assert.Equal(t, 5.0, f.Inputs.RemainingYears)
	assert.Equal(t, 12100.0, f.CalculationResults.OriginalPresentValue)
	assert.Equal(t, 11900.0, f.CalculationResults.NewEquivalentPayment)
	assert.Equal(t, 0.032, f.EconomicAssumptions.InflationRate)
	assert.Equal(t, 0.035, f.EconomicAssumptions.RiskFreeRate)
	assert.Equal(t, StatusSuccess, f.Status)
}

func TestReasonOf_ForeignError(t *testing.T) {
	assert.Equal(t, ReasonNetwork, ReasonOf(errors.New("dial tcp: i/o timeout")))
}
