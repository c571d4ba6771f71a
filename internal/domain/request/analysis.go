package request

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	AnalysisModel     = "mock-ai-v1.0"
	DefaultHourlyRate = 150.0
	hoursPerPoint     = 40
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Action string

const (
	ActionApprove         Action = "approve"
	ActionReview          Action = "review"
	ActionRequestMoreInfo Action = "request-more-info"
	ActionReject          Action = "reject"
)

var (
	highComplexityKeywords   = []string{"ai", "machine learning", "blockchain", "real-time", "big data", "microservices"}
	mediumComplexityKeywords = []string{"integration", "api", "dashboard", "analytics", "mobile", "security"}
	lowComplexityKeywords    = []string{"simple", "basic", "standard", "minimal", "straightforward"}

	analysisSteps = []string{
		"Text analysis",
		"Complexity assessment",
		"Feasibility evaluation",
		"Cost estimation",
		"Risk analysis",
		"Business impact assessment",
	}
)

// Analysis is the keyword-scored assessment of a request. Scores are on a
// 1..10 scale.
type Analysis struct {
	Complexity       float64
	Feasibility      float64
	EstimatedHours   int64
	HourlyRate       float64
	EstimatedCost    int64
	RiskLevel        RiskLevel
	AutoApproval     bool
	Action           Action
	Confidence       float64
	TechnicalSummary string
	BusinessImpact   string
	Approach         string
	Steps            []string
	Model            string
}

// Analyze scores d with canned heuristics. hourlyRate <= 0 uses DefaultHourlyRate.
func Analyze(d Details, hourlyRate float64) Analysis {
	if hourlyRate <= 0 {
		hourlyRate = DefaultHourlyRate
	}

	c := complexityScore(d.Description)
	f := feasibilityScore(d.Timeline, d.Budget)

	cost := decimal.NewFromFloat(c).
		Mul(decimal.NewFromInt(hoursPerPoint)).
		Mul(decimal.NewFromFloat(hourlyRate)).
		Round(0).
		IntPart()

	return Analysis{
		Complexity:       c,
		Feasibility:      f,
		EstimatedHours:   int64(math.Round(c * hoursPerPoint)),
		HourlyRate:       hourlyRate,
		EstimatedCost:    cost,
		RiskLevel:        riskFor(c),
		AutoApproval:     c <= 3 && f >= 8,
		Action:           actionFor(c, f),
		Confidence:       math.Min(0.95, 0.6+(f/10)*0.4),
		TechnicalSummary: technicalSummary(d, c),
		BusinessImpact:   "Expected business impact: This initiative could significantly improve operational efficiency and user experience. Based on the scope described, we estimate potential ROI within 12-18 months through improved processes and reduced manual work.",
		Approach:         approachFor(c),
		Steps:            append([]string(nil), analysisSteps...),
		Model:            AnalysisModel,
	}
}

func complexityScore(description string) float64 {
	text := strings.ToLower(description)
	score := 5.0
	for _, k := range highComplexityKeywords {
		if strings.Contains(text, k) {
			score += 1.5
		}
	}
	for _, k := range mediumComplexityKeywords {
		if strings.Contains(text, k) {
			score += 0.5
		}
	}
	for _, k := range lowComplexityKeywords {
		if strings.Contains(text, k) {
			score -= 0.5
		}
	}
	return clampScore(score)
}

func feasibilityScore(timeline, budget string) float64 {
	tl := strings.ToLower(timeline)
	bg := strings.ToLower(budget)
	score := 7.0

	switch {
	case strings.Contains(tl, "urgent") || strings.Contains(tl, "asap"):
		score -= 2
	case strings.Contains(tl, "6 months") || strings.Contains(tl, "year"):
		score++
	}

	switch {
	case strings.Contains(bg, "unlimited") || strings.Contains(bg, "flexible"):
		score++
	case strings.Contains(bg, "tight") || strings.Contains(bg, "limited"):
		score--
	}
	return clampScore(score)
}

func clampScore(v float64) float64 {
	return math.Max(1, math.Min(10, v))
}

func riskFor(c float64) RiskLevel {
	switch {
	case c > 7:
		return RiskHigh
	case c > 4:
		return RiskMedium
	default:
		return RiskLow
	}
}

func actionFor(c, f float64) Action {
	switch {
	case f < 4:
		return ActionReject
	case c > 8 || f < 6:
		return ActionRequestMoreInfo
	case c <= 3 && f >= 8:
		return ActionApprove
	default:
		return ActionReview
	}
}

func approachFor(c float64) string {
	switch {
	case c > 7:
		return "Recommended phased approach with MVP first, followed by iterative improvements. Consider proof-of-concept phase."
	case c > 4:
		return "Standard development approach with regular milestones and stakeholder reviews."
	default:
		return "Straightforward implementation approach with standard methodologies."
	}
}

func technicalSummary(d Details, c float64) string {
	excerpt := []rune(d.Description)
	if len(excerpt) > 100 {
		excerpt = excerpt[:100]
	}
	kind := "standard"
	if c > 6 {
		kind = "complex"
	}
	return fmt.Sprintf(
		"Technical analysis of %q: The request involves %s... This appears to be a %s implementation requiring careful planning and execution.",
		d.ProjectTitle, string(excerpt), kind,
	)
}

// Summary renders the analysis as an AI-enhanced summary.
func (a Analysis) Summary() *Summary {
	return &Summary{
		ExecutiveSummary: fmt.Sprintf(
			"Complexity %.1f/10, feasibility %.1f/10. Recommended action: %s (confidence %.0f%%).",
			a.Complexity, a.Feasibility, a.Action, a.Confidence*100,
		),
		TechnicalAnalysis:      a.TechnicalSummary,
		ImplementationStrategy: a.Approach,
		FinancialOptimization: fmt.Sprintf(
			"Estimated effort: %d hours at %s per hour, about %d in total. %s",
			a.EstimatedHours, decimal.NewFromFloat(a.HourlyRate).StringFixed(2), a.EstimatedCost, a.BusinessImpact,
		),
		RiskAssessment: fmt.Sprintf("Risk level: %s", a.RiskLevel),
		NextSteps:      nextStepsFor(a.Action),
	}
}

func nextStepsFor(a Action) []string {
	switch a {
	case ActionApprove:
		return []string{"Confirm scope with the client", "Prepare the implementation plan", "Schedule the kickoff"}
	case ActionReject:
		return []string{"Notify the client of the decision", "Suggest alternatives within the current constraints"}
	case ActionRequestMoreInfo:
		return []string{"Request clarification on scope and requirements", "Re-run the analysis with the additional details"}
	default:
		return []string{"Development review of the technical approach", "Finance review of the estimate", "Share the proposal with the client"}
	}
}
