package dto

import (
	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/shared/biztime"
)

// RequestDTO is the canonical wire and webhook shape of a request.
type RequestDTO struct {
	RequestID      string      `json:"request_id"`
	FullName       string      `json:"full_name"`
	Email          string      `json:"email"`
	Company        string      `json:"company,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	RequestType    string      `json:"request_type"`
	ProjectTitle   string      `json:"project_title"`
	Description    string      `json:"description"`
	Timeline       string      `json:"timeline,omitempty"`
	Budget         string      `json:"budget,omitempty"`
	Status         string      `json:"status"`
	Priority       string      `json:"priority"`
	Source         string      `json:"source"`
	ReportLocation string      `json:"report_location,omitempty"`
	Summary        *SummaryDTO `json:"ai_summary,omitempty"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
}

type SummaryDTO struct {
	ExecutiveSummary       string   `json:"executive_summary"`
	TechnicalAnalysis      string   `json:"technical_analysis"`
	ImplementationStrategy string   `json:"implementation_strategy"`
	FinancialOptimization  string   `json:"financial_optimization"`
	RiskAssessment         string   `json:"risk_assessment"`
	NextSteps              []string `json:"next_steps"`
}

// ClientViewDTO is what the client hub renders for one request.
type ClientViewDTO struct {
	Request     *RequestDTO            `json:"request"`
	StatusLabel string                 `json:"status_label"`
	Decisions   request.Decisions      `json:"decisions"`
	Progress    []request.ProgressStep `json:"progress"`
	// SummaryHTML holds the summary sections rendered from markdown.
	SummaryHTML *SummaryDTO `json:"ai_summary_html,omitempty"`
}

type AnalysisDTO struct {
	ComplexityScore  float64  `json:"complexity_score"`
	FeasibilityScore float64  `json:"feasibility_score"`
	EstimatedHours   int64    `json:"estimated_hours"`
	HourlyRate       float64  `json:"hourly_rate"`
	EstimatedCost    int64    `json:"estimated_cost"`
	RiskLevel        string   `json:"risk_level"`
	AutoApproval     bool     `json:"auto_approval_eligible"`
	Action           string   `json:"recommended_action"`
	Confidence       float64  `json:"confidence"`
	ProcessingSteps  []string `json:"processing_steps"`
	Model            string   `json:"model"`
}

// DraftPreviewDTO echoes the details a draft token carries.
type DraftPreviewDTO struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Company      string `json:"company,omitempty"`
	Phone        string `json:"phone,omitempty"`
	RequestType  string `json:"request_type"`
	ProjectTitle string `json:"project_title"`
	Description  string `json:"description"`
	Timeline     string `json:"timeline,omitempty"`
	Budget       string `json:"budget,omitempty"`
	Priority     string `json:"priority"`
	ExpiresAt    string `json:"expires_at"`
}

func ToRequestDTO(r *request.Request) *RequestDTO {
	if r == nil {
		return nil
	}
	return &RequestDTO{
		RequestID:      r.RequestID(),
		FullName:       r.FullName(),
		Email:          r.Email(),
		Company:        r.Company(),
		Phone:          r.Phone(),
		RequestType:    r.RequestType(),
		ProjectTitle:   r.ProjectTitle(),
		Description:    r.Description(),
		Timeline:       r.Timeline(),
		Budget:         r.Budget(),
		Status:         r.Status().String(),
		Priority:       r.Priority().String(),
		Source:         r.Source(),
		ReportLocation: r.ReportLocation(),
		Summary:        ToSummaryDTO(r.Summary()),
		CreatedAt:      biztime.FormatRFC3339(r.CreatedAt()),
		UpdatedAt:      biztime.FormatRFC3339(r.UpdatedAt()),
	}
}

func ToRequestDTOs(rs []*request.Request) []*RequestDTO {
	out := make([]*RequestDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToRequestDTO(r))
	}
	return out
}

func ToSummaryDTO(s *request.Summary) *SummaryDTO {
	if s == nil {
		return nil
	}
	steps := s.NextSteps
	if steps == nil {
		steps = []string{}
	}
	return &SummaryDTO{
		ExecutiveSummary:       s.ExecutiveSummary,
		TechnicalAnalysis:      s.TechnicalAnalysis,
		ImplementationStrategy: s.ImplementationStrategy,
		FinancialOptimization:  s.FinancialOptimization,
		RiskAssessment:         s.RiskAssessment,
		NextSteps:              steps,
	}
}

// ToSummary converts an inbound payload to the domain value.
func (s *SummaryDTO) ToSummary() *request.Summary {
	if s == nil {
		return nil
	}
	return &request.Summary{
		ExecutiveSummary:       s.ExecutiveSummary,
		TechnicalAnalysis:      s.TechnicalAnalysis,
		ImplementationStrategy: s.ImplementationStrategy,
		FinancialOptimization:  s.FinancialOptimization,
		RiskAssessment:         s.RiskAssessment,
		NextSteps:              append([]string(nil), s.NextSteps...),
	}
}

func ToClientView(r *request.Request) *ClientViewDTO {
	if r == nil {
		return nil
	}
	return &ClientViewDTO{
		Request:     ToRequestDTO(r),
		StatusLabel: r.Status().DisplayName(),
		Decisions:   request.DecideFor(r.Status()),
		Progress:    request.Progress(r.Status(), r.HasSummary()),
	}
}

func ToAnalysisDTO(a request.Analysis) *AnalysisDTO {
	return &AnalysisDTO{
		ComplexityScore:  a.Complexity,
		FeasibilityScore: a.Feasibility,
		EstimatedHours:   a.EstimatedHours,
		HourlyRate:       a.HourlyRate,
		EstimatedCost:    a.EstimatedCost,
		RiskLevel:        string(a.RiskLevel),
		AutoApproval:     a.AutoApproval,
		Action:           string(a.Action),
		Confidence:       a.Confidence,
		ProcessingSteps:  a.Steps,
		Model:            a.Model,
	}
}

func ToDraftPreviewDTO(d *request.Draft) *DraftPreviewDTO {
	priority := d.Details.Priority.String()
	if priority == "" {
		priority = "medium"
	}
	return &DraftPreviewDTO{
		FullName:     d.Details.FullName,
		Email:        d.Details.Email,
		Company:      d.Details.Company,
		Phone:        d.Details.Phone,
		RequestType:  d.Details.RequestType,
		ProjectTitle: d.Details.ProjectTitle,
		Description:  d.Details.Description,
		Timeline:     d.Details.Timeline,
		Budget:       d.Details.Budget,
		Priority:     priority,
		ExpiresAt:    biztime.FormatRFC3339(d.ExpiresAt),
	}
}
