package request

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Summary is the AI-enhanced summary attached to a request. It is always
// replaced as a whole.
type Summary struct {
	ExecutiveSummary       string   `json:"executive_summary"`
	TechnicalAnalysis      string   `json:"technical_analysis"`
	ImplementationStrategy string   `json:"implementation_strategy"`
	FinancialOptimization  string   `json:"financial_optimization"`
	RiskAssessment         string   `json:"risk_assessment"`
	NextSteps              []string `json:"next_steps"`
}

// Validate requires an executive summary; the remaining sections are optional.
func (s *Summary) Validate() error {
	if strings.TrimSpace(s.ExecutiveSummary) == "" {
		return fmt.Errorf("%w: executive summary is required", ErrInvalidSummary)
	}
	return nil
}

// Clone returns a deep copy.
func (s *Summary) Clone() *Summary {
	if s == nil {
		return nil
	}
	c := *s
	c.NextSteps = append([]string(nil), s.NextSteps...)
	return &c
}

// EncodeNextSteps serializes next steps to the JSON array text stored on the row.
func EncodeNextSteps(steps []string) (string, error) {
	if steps == nil {
		steps = []string{}
	}
	b, err := json.Marshal(steps)
	if err != nil {
		return "", fmt.Errorf("failed to encode next steps: %w", err)
	}
	return string(b), nil
}

// DecodeNextSteps parses the stored JSON array text. Empty text yields no steps.
func DecodeNextSteps(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var steps []string
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, fmt.Errorf("failed to decode next steps: %w", err)
	}
	return steps, nil
}
