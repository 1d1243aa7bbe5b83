package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// StylistHandler handles stylist roster HTTP requests
type StylistHandler struct {
	stylistService *service.StylistService
}

// NewStylistHandler creates a new stylist handler
func NewStylistHandler(stylistService *service.StylistService) *StylistHandler {
	return &StylistHandler{stylistService: stylistService}
}

// List returns the full roster
func (h *StylistHandler) List(c *gin.Context) {
	stylists, err := h.stylistService.ListStylists(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stylists retrieved", stylists)
}

// Get retrieves one stylist
func (h *StylistHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	stylist, err := h.stylistService.GetStylist(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stylist retrieved", stylist)
}

func stylistInput(req *request.StylistRequest) *service.StylistInput {
	return &service.StylistInput{
		Name:       req.Name,
		Role:       req.Role,
		Phone:      req.Phone,
		Pct:        req.Pct,
		BaseSalary: req.BaseSalary,
	}
}

// Create adds a stylist
func (h *StylistHandler) Create(c *gin.Context) {
	var req request.StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	stylist, err := h.stylistService.CreateStylist(c.Request.Context(), stylistInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Stylist created", stylist)
}

// Update replaces a stylist's editable fields
func (h *StylistHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	stylist, err := h.stylistService.UpdateStylist(c.Request.Context(), id, stylistInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stylist updated", stylist)
}

// Delete removes a stylist
func (h *StylistHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.stylistService.DeleteStylist(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
