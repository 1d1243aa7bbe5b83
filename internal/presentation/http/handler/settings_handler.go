package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// settingsView flattens the settings row for the API, expanding the
// comma-joined payment methods
func settingsView(s *entity.Settings) gin.H {
	return gin.H{
		"settings":        s,
		"payment_methods": s.Methods(),
	}
}

// Get returns the current settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved", settingsView(settings))
}

// Update applies a partial settings change
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateSettingsInput{
		IVARate:        req.IVARate,
		LoyaltyRate:    req.LoyaltyRate,
		CommissionCap:  req.CommissionCap,
		PaymentMethods: req.PaymentMethods,
	}
	if req.PayrollBaseFreq != nil {
		f := enum.PayFrequency(*req.PayrollBaseFreq)
		input.PayrollBaseFreq = &f
	}
	if req.PayrollCommFreq != nil {
		f := enum.PayFrequency(*req.PayrollCommFreq)
		input.PayrollCommFreq = &f
	}
	if req.PayrollTipFreq != nil {
		f := enum.PayFrequency(*req.PayrollTipFreq)
		input.PayrollTipFreq = &f
	}

	settings, err := h.settingsService.Update(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated", settingsView(settings))
}
