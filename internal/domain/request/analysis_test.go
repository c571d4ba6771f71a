package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_KeywordScoring(t *testing.T) {
	tests := []struct {
		name        string
		details     Details
		complexity  float64
		feasibility float64
		action      Action
		risk        RiskLevel
	}{
		{
			name:        "plain description",
			details:     Details{ProjectTitle: "Site", Description: "Landing page refresh"},
			complexity:  5,
			feasibility: 7,
			action:      ActionReview,
			risk:        RiskMedium,
		},
		{
			name:        "simple with flexible budget",
			details:     Details{ProjectTitle: "Form", Description: "simple basic minimal form", Timeline: "within a year", Budget: "flexible"},
			complexity:  3.5,
			feasibility: 9,
			action:      ActionReview,
			risk:        RiskLow,
		},
		{
			name:        "heavy tech urgent",
			details:     Details{ProjectTitle: "Platform", Description: "AI blockchain microservices with real-time big data", Timeline: "ASAP", Budget: "tight"},
			complexity:  10,
			feasibility: 4,
			action:      ActionRequestMoreInfo,
			risk:        RiskHigh,
		},
		{
			name:        "auto approval",
			details:     Details{ProjectTitle: "Page", Description: "simple basic standard minimal straightforward page", Timeline: "6 months", Budget: "unlimited"},
			complexity:  2.5,
			feasibility: 9,
			action:      ActionApprove,
			risk:        RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.details, 0)
			assert.Equal(t, tt.complexity, a.Complexity)
			assert.Equal(t, tt.feasibility, a.Feasibility)
			assert.Equal(t, tt.action, a.Action)
			assert.Equal(t, tt.risk, a.RiskLevel)
			assert.Equal(t, AnalysisModel, a.Model)
		})
	}
}

func TestAnalyze_CostAndConfidence(t *testing.T) {
	a := Analyze(Details{ProjectTitle: "Site", Description: "Landing page refresh"}, 0)
	assert.Equal(t, int64(200), a.EstimatedHours)
	assert.Equal(t, int64(30000), a.EstimatedCost)
	assert.InDelta(t, 0.88, a.Confidence, 1e-9)
	assert.False(t, a.AutoApproval)

	a = Analyze(Details{ProjectTitle: "Site", Description: "Landing page refresh"}, 100)
	assert.Equal(t, int64(20000), a.EstimatedCost)
}

func TestAnalyze_AutoApprovalAndClamp(t *testing.T) {
	a := Analyze(Details{
		ProjectTitle: "Tiny",
		Description:  "simple basic standard minimal straightforward",
		Timeline:     "next year",
		Budget:       "flexible",
	}, 150)
	assert.Equal(t, 2.5, a.Complexity)
	assert.True(t, a.AutoApproval)
	assert.Equal(t, 0.95, a.Confidence)
}

func TestAnalyze_RejectOnLowFeasibility(t *testing.T) {
	assert.Equal(t, ActionReject, actionFor(5, 3))
	assert.Equal(t, 1.0, clampScore(-4))
}

func TestAnalysis_Summary(t *testing.T) {
	d := Details{ProjectTitle: "Portal", Description: strings.Repeat("x", 150)}
	s := Analyze(d, 0).Summary()

	assert.NoError(t, s.Validate())
	assert.Contains(t, s.TechnicalAnalysis, `Technical analysis of "Portal"`)
	assert.Contains(t, s.TechnicalAnalysis, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, s.TechnicalAnalysis, strings.Repeat("x", 101))
	assert.Equal(t, "Risk level: medium", s.RiskAssessment)
	assert.Contains(t, s.FinancialOptimization, "200 hours")
	assert.Len(t, s.NextSteps, 3)
}
