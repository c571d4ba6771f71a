package http

import (
	"time"

	reportUsecases "github.com/saase/requesthub/internal/application/report/usecases"
	requestUsecases "github.com/saase/requesthub/internal/application/request/usecases"
	settingUsecases "github.com/saase/requesthub/internal/application/setting/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Reports
	fetchReportUC   *reportUsecases.FetchReportUseCase
	resolveReportUC *reportUsecases.ResolveReportUseCase
	storageHealthUC *reportUsecases.StorageHealthUseCase

	// Requests
	createRequestUC  *requestUsecases.CreateRequestUseCase
	createDraftUC    *requestUsecases.CreateDraftUseCase
	commitDraftUC    *requestUsecases.CommitDraftUseCase
	getRequestUC     *requestUsecases.GetRequestUseCase
	listRequestsUC   *requestUsecases.ListRequestsUseCase
	updateStatusUC   *requestUsecases.UpdateStatusUseCase
	processAIUC      *requestUsecases.ProcessAIUseCase
	exportRequestsUC *requestUsecases.ExportRequestsUseCase
	requestReportUC  *requestUsecases.RequestReportUseCase

	// Settings
	getSettingsUC    *settingUsecases.GetSettingsUseCase
	updateSettingsUC *settingUsecases.UpdateSettingsUseCase
}

func (c *Container) initUseCases() {
	log := c.log
	repo := c.repos.requestRepo

	ucs := &allUseCases{}

	ucs.fetchReportUC = reportUsecases.NewFetchReportUseCase(c.storage, log)
	ucs.resolveReportUC = reportUsecases.NewResolveReportUseCase(c.storage, c.settingProvider, c.metrics, log)
	ucs.storageHealthUC = reportUsecases.NewStorageHealthUseCase(c.storage)

	ucs.createRequestUC = requestUsecases.NewCreateRequestUseCase(repo, c.renderer, c.mailer, c.metrics, log)
	ucs.createDraftUC = requestUsecases.NewCreateDraftUseCase(c.renderer, c.draftCodec, draftTTL(c.cfg.Auth.Draft.ExpHours), log)
	ucs.commitDraftUC = requestUsecases.NewCommitDraftUseCase(c.draftCodec, ucs.createRequestUC, log)
	ucs.getRequestUC = requestUsecases.NewGetRequestUseCase(repo, c.renderer, log)
	ucs.listRequestsUC = requestUsecases.NewListRequestsUseCase(repo, log)
	ucs.updateStatusUC = requestUsecases.NewUpdateStatusUseCase(repo, c.enforcer, ucs.resolveReportUC, c.notifier, c.metrics, log)
	ucs.processAIUC = requestUsecases.NewProcessAIUseCase(repo, ucs.updateStatusUC, c.settingProvider, log)
	ucs.exportRequestsUC = requestUsecases.NewExportRequestsUseCase(repo, c.exporter, log)
	ucs.requestReportUC = requestUsecases.NewRequestReportUseCase(repo, ucs.resolveReportUC, log)

	ucs.getSettingsUC = settingUsecases.NewGetSettingsUseCase(c.settingProvider)
	ucs.updateSettingsUC = settingUsecases.NewUpdateSettingsUseCase(c.repos.settingRepo, c.settingProvider, log)

	c.ucs = ucs
}

func draftTTL(hours int) time.Duration {
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
