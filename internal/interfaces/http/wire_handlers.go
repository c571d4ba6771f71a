package http

import (
	"github.com/saase/requesthub/internal/interfaces/http/handlers"
	reportHandlers "github.com/saase/requesthub/internal/interfaces/http/handlers/report"
	requestHandlers "github.com/saase/requesthub/internal/interfaces/http/handlers/request"
	settingHandlers "github.com/saase/requesthub/internal/interfaces/http/handlers/setting"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	requestHandler      *requestHandlers.RequestHandler
	adminRequestHandler *requestHandlers.AdminRequestHandler
	reportHandler       *reportHandlers.ReportHandler
	settingHandler      *settingHandlers.SettingHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs
	log := c.log

	h := &allHandlers{}

	h.healthHandler = handlers.NewHealthHandler(c.sqlDB, log)

	h.requestHandler = requestHandlers.NewRequestHandler(
		ucs.createRequestUC,
		ucs.createDraftUC,
		ucs.commitDraftUC,
		ucs.getRequestUC,
		ucs.updateStatusUC,
		ucs.requestReportUC,
		log,
	)
	h.adminRequestHandler = requestHandlers.NewAdminRequestHandler(
		ucs.listRequestsUC,
		ucs.exportRequestsUC,
		ucs.getRequestUC,
		ucs.updateStatusUC,
		ucs.processAIUC,
		ucs.requestReportUC,
		log,
	)
	h.reportHandler = reportHandlers.NewReportHandler(ucs.fetchReportUC, ucs.storageHealthUC)
	h.settingHandler = settingHandlers.NewSettingHandler(ucs.getSettingsUC, ucs.updateSettingsUC, log)

	c.hdlrs = h
}
