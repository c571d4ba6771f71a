package setting

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/application/setting/dto"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/utils"
)

type SettingsGetter interface {
	Execute(ctx context.Context) *dto.CompanySettingsDTO
}

type SettingsUpdater interface {
	UpdateProfile(ctx context.Context, p dto.ProfileDTO) (*dto.CompanySettingsDTO, error)
	UpdateFeaturePricing(ctx context.Context, fp dto.FeaturePricingDTO) (*dto.CompanySettingsDTO, error)
	UpdatePaymentTerms(ctx context.Context, pt dto.PaymentTermsDTO) (*dto.CompanySettingsDTO, error)
}

type SettingHandler struct {
	getUC    SettingsGetter
	updateUC SettingsUpdater
	logger   logger.Interface
}

func NewSettingHandler(getUC SettingsGetter, updateUC SettingsUpdater, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		getUC:    getUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

// Get handles GET /api/admin/settings
func (h *SettingHandler) Get(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.getUC.Execute(c.Request.Context()))
}

// UpdateProfile handles PUT /api/admin/settings/profile
func (h *SettingHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileDTO
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, func(ctx context.Context) (*dto.CompanySettingsDTO, error) {
		return h.updateUC.UpdateProfile(ctx, req)
	})
}

// UpdatePricing handles PUT /api/admin/settings/pricing
func (h *SettingHandler) UpdatePricing(c *gin.Context) {
	var req dto.FeaturePricingDTO
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, func(ctx context.Context) (*dto.CompanySettingsDTO, error) {
		return h.updateUC.UpdateFeaturePricing(ctx, req)
	})
}

// UpdatePaymentTerms handles PUT /api/admin/settings/payment-terms
func (h *SettingHandler) UpdatePaymentTerms(c *gin.Context) {
	var req dto.PaymentTermsDTO
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, func(ctx context.Context) (*dto.CompanySettingsDTO, error) {
		return h.updateUC.UpdatePaymentTerms(ctx, req)
	})
}

func (h *SettingHandler) bind(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		h.logger.Warnw("invalid settings payload", "path", c.FullPath(), "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

func (h *SettingHandler) respond(c *gin.Context, update func(ctx context.Context) (*dto.CompanySettingsDTO, error)) {
	result, err := update(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Settings updated", result)
}
