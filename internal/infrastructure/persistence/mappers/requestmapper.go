package mappers

import (
	"fmt"

	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/infrastructure/persistence/models"
	"github.com/saase/requesthub/internal/shared/biztime"
)

// RequestMapper converts between Request entities and persistence models.
type RequestMapper interface {
	ToModel(r *request.Request) (*models.RequestModel, error)
	ToDomain(model *models.RequestModel) (*request.Request, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.Request) (*models.RequestModel, error) {
	model := &models.RequestModel{
		ID:             r.ID(),
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
		CreatedAt:      r.CreatedAt().UnixMilli(),
		UpdatedAt:      r.UpdatedAt().UnixMilli(),
	}

	if s := r.Summary(); s != nil {
		steps, err := request.EncodeNextSteps(s.NextSteps)
		if err != nil {
			return nil, err
		}
		model.ExecutiveSummary = &s.ExecutiveSummary
		model.TechnicalAnalysis = &s.TechnicalAnalysis
		model.ImplementationStrategy = &s.ImplementationStrategy
		model.FinancialOptimization = &s.FinancialOptimization
		model.RiskAssessment = &s.RiskAssessment
		model.NextSteps = &steps
	}

	return model, nil
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	if model == nil {
		return nil, fmt.Errorf("request model is nil")
	}

	summary, err := summaryFromModel(model)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", model.RequestID, err)
	}

	details := request.Details{
		FullName:     model.FullName,
		Email:        model.Email,
		Company:      model.Company,
		Phone:        model.Phone,
		RequestType:  model.RequestType,
		ProjectTitle: model.ProjectTitle,
		Description:  model.Description,
		Timeline:     model.Timeline,
		Budget:       model.Budget,
		Priority:     vo.Priority(model.Priority),
	}

	return request.ReconstructRequest(
		model.ID,
		model.RequestID,
		details,
		vo.RequestStatus(model.Status),
		model.Source,
		model.ReportLocation,
		summary,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func summaryFromModel(model *models.RequestModel) (*request.Summary, error) {
	if model.ExecutiveSummary == nil {
		return nil, nil
	}

	var steps []string
	if model.NextSteps != nil {
		var err error
		if steps, err = request.DecodeNextSteps(*model.NextSteps); err != nil {
			return nil, err
		}
	}

	return &request.Summary{
		ExecutiveSummary:       *model.ExecutiveSummary,
		TechnicalAnalysis:      deref(model.TechnicalAnalysis),
		ImplementationStrategy: deref(model.ImplementationStrategy),
		FinancialOptimization:  deref(model.FinancialOptimization),
		RiskAssessment:         deref(model.RiskAssessment),
		NextSteps:              steps,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
