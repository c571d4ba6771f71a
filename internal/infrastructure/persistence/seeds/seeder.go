// Package seeds loads demo requests and company settings from YAML files.
package seeds

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/domain/setting"
	"github.com/saase/requesthub/internal/shared/biztime"
	"github.com/saase/requesthub/internal/shared/id"
	"github.com/saase/requesthub/internal/shared/logger"
)

type File struct {
	Settings *SettingsSeed `yaml:"settings"`
	Requests []RequestSeed `yaml:"requests"`
}

type SettingsSeed struct {
	Profile *struct {
		CompanyName     string  `yaml:"company_name"`
		Industry        string  `yaml:"industry"`
		BusinessModel   string  `yaml:"business_model"`
		BaseCurrency    string  `yaml:"base_currency"`
		MinimumRevenue  float64 `yaml:"minimum_revenue"`
		TaxRate         float64 `yaml:"tax_rate"`
		DefaultDiscount float64 `yaml:"default_discount"`
	} `yaml:"profile"`
	DevelopmentHourlyRate float64 `yaml:"development_hourly_rate"`
}

type RequestSeed struct {
	RequestID      string       `yaml:"request_id"`
	FullName       string       `yaml:"full_name"`
	Email          string       `yaml:"email"`
	Company        string       `yaml:"company"`
	Phone          string       `yaml:"phone"`
	RequestType    string       `yaml:"request_type"`
	ProjectTitle   string       `yaml:"project_title"`
	Description    string       `yaml:"description"`
	Timeline       string       `yaml:"timeline"`
	Budget         string       `yaml:"budget"`
	Priority       string       `yaml:"priority"`
	Status         string       `yaml:"status"`
	ReportLocation string       `yaml:"report_location"`
	CreatedAt      time.Time    `yaml:"created_at"`
	Summary        *SummarySeed `yaml:"summary"`
}

type SummarySeed struct {
	ExecutiveSummary       string   `yaml:"executive_summary"`
	TechnicalAnalysis      string   `yaml:"technical_analysis"`
	ImplementationStrategy string   `yaml:"implementation_strategy"`
	FinancialOptimization  string   `yaml:"financial_optimization"`
	RiskAssessment         string   `yaml:"risk_assessment"`
	NextSteps              []string `yaml:"next_steps"`
}

// Result counts what a run changed.
type Result struct {
	Created         int
	Skipped         int
	SettingsUpdated bool
}

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Seeder struct {
	requests request.Repository
	settings setting.Repository
	tx       TransactionRunner
	logger   logger.Interface
}

func NewSeeder(requests request.Repository, settings setting.Repository, tx TransactionRunner, logger logger.Interface) *Seeder {
	return &Seeder{
		requests: requests,
		settings: settings,
		tx:       tx,
		logger:   logger,
	}
}

func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// statusPath lists the transitions that take a new request to each status.
var statusPath = map[vo.RequestStatus][]vo.RequestStatus{
	vo.StatusPending:        nil,
	vo.StatusSubmitted:      nil,
	vo.StatusAccepted:       {vo.StatusAccepted},
	vo.StatusRejected:       {vo.StatusRejected},
	vo.StatusClientApproved: {vo.StatusAccepted, vo.StatusClientApproved},
	vo.StatusImplementation: {vo.StatusAccepted, vo.StatusClientApproved, vo.StatusImplementation},
}

// Apply writes the file in one transaction. Requests whose request_id
// already exists are skipped.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Result, error) {
	result := &Result{}
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if f.Settings != nil {
			if err := s.applySettings(ctx, f.Settings); err != nil {
				return err
			}
			result.SettingsUpdated = true
		}
		for i, seed := range f.Requests {
			created, err := s.applyRequest(ctx, seed)
			if err != nil {
				return fmt.Errorf("request #%d (%s): %w", i+1, seed.ProjectTitle, err)
			}
			if created {
				result.Created++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("seed applied",
		"created", result.Created,
		"skipped", result.Skipped,
		"settings_updated", result.SettingsUpdated)
	return result, nil
}

func (s *Seeder) applySettings(ctx context.Context, seed *SettingsSeed) error {
	current, err := s.settings.Get(ctx)
	if errors.Is(err, setting.ErrSettingsNotFound) {
		current = setting.Defaults()
	} else if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	now := biztime.NowUTC()
	if p := seed.Profile; p != nil {
		if err := current.SetProfile(setting.Profile{
			CompanyName:     p.CompanyName,
			Industry:        p.Industry,
			BusinessModel:   p.BusinessModel,
			BaseCurrency:    p.BaseCurrency,
			MinimumRevenue:  p.MinimumRevenue,
			TaxRate:         p.TaxRate,
			DefaultDiscount: p.DefaultDiscount,
		}, now); err != nil {
			return err
		}
	}
	if seed.DevelopmentHourlyRate > 0 {
		fp := current.FeaturePricing()
		fp.DevelopmentHourlyRate = seed.DevelopmentHourlyRate
		if err := current.SetFeaturePricing(fp, now); err != nil {
			return err
		}
	}

	return s.settings.Save(ctx, current)
}

func (s *Seeder) applyRequest(ctx context.Context, seed RequestSeed) (bool, error) {
	requestID := seed.RequestID
	if requestID != "" {
		_, err := s.requests.GetByRequestID(ctx, requestID)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, request.ErrRequestNotFound) {
			return false, err
		}
	}

	createdAt := seed.CreatedAt
	if createdAt.IsZero() {
		createdAt = biztime.NowUTC()
	}
	if requestID == "" {
		var err error
		if requestID, err = id.NewRequestID(createdAt); err != nil {
			return false, err
		}
	}

	var priority vo.Priority
	if seed.Priority != "" {
		p, err := vo.NewPriority(seed.Priority)
		if err != nil {
			return false, err
		}
		priority = p
	}

	r, err := request.NewRequest(requestID, request.Details{
		FullName:     seed.FullName,
		Email:        seed.Email,
		Company:      seed.Company,
		Phone:        seed.Phone,
		RequestType:  seed.RequestType,
		ProjectTitle: seed.ProjectTitle,
		Description:  seed.Description,
		Timeline:     seed.Timeline,
		Budget:       seed.Budget,
		Priority:     priority,
	}, createdAt)
	if err != nil {
		return false, err
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return false, err
	}

	if !s.needsUpdate(seed) {
		return true, nil
	}

	status := vo.StatusPending
	if seed.Status != "" {
		status, err = vo.NewRequestStatus(seed.Status)
		if err != nil {
			return false, err
		}
	}
	// the aggregate bumps updated_at by 1ms per mutation at the same instant
	for _, next := range statusPath[status] {
		if err := r.ChangeStatus(next, createdAt); err != nil {
			return false, err
		}
	}
	if seed.ReportLocation != "" {
		r.AttachReportLocation(seed.ReportLocation, createdAt)
	}
	if seed.Summary != nil {
		if err := r.AttachSummary(&request.Summary{
			ExecutiveSummary:       seed.Summary.ExecutiveSummary,
			TechnicalAnalysis:      seed.Summary.TechnicalAnalysis,
			ImplementationStrategy: seed.Summary.ImplementationStrategy,
			FinancialOptimization:  seed.Summary.FinancialOptimization,
			RiskAssessment:         seed.Summary.RiskAssessment,
			NextSteps:              seed.Summary.NextSteps,
		}, createdAt); err != nil {
			return false, err
		}
	}

	return true, s.requests.Update(ctx, r)
}

func (s *Seeder) needsUpdate(seed RequestSeed) bool {
	return (seed.Status != "" && seed.Status != vo.StatusPending.String()) ||
		seed.ReportLocation != "" ||
		seed.Summary != nil
}
