package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayrollHandler handles payroll HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// Summary returns each stylist's dues over a range, optionally for a
// single stylist
func (h *PayrollHandler) Summary(c *gin.Context) {
	from, to, err := RangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var stylistID *uuid.UUID
	if raw := c.Query("stylist_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid stylist ID")
			return
		}
		stylistID = &id
	}
	summary, err := h.payrollService.Summary(c.Request.Context(), from, to, stylistID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payroll summary", summary)
}

// ListEntries returns payroll entries matching filters
func (h *PayrollHandler) ListEntries(c *gin.Context) {
	params := &repository.PayrollFilterParams{
		Search: c.Query("search"),
		Status: enum.PayrollStatus(c.Query("status")),
	}
	if c.Query("from") != "" || c.Query("to") != "" {
		from, to, err := RangeFromQuery(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.From = &from
		params.To = &to
	}
	if raw := c.Query("stylist_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid stylist ID")
			return
		}
		params.StylistID = &id
	}

	entries, err := h.payrollService.ListEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payroll entries retrieved", entries)
}

// CreateEntry records a manual payroll payment
func (h *PayrollHandler) CreateEntry(c *gin.Context) {
	var req request.PayrollEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	stylistID, err := uuid.Parse(req.StylistID)
	if err != nil {
		response.BadRequest(c, "Invalid stylist ID")
		return
	}
	date, err := ParseOptionalDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	entry, err := h.payrollService.CreateEntry(c.Request.Context(), &service.CreateEntryInput{
		StylistID: stylistID,
		Date:      date,
		Amount:    req.Amount,
		Concept:   req.Concept,
		Method:    req.Method,
		Status:    enum.PayrollStatus(req.Status),
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payroll entry created", entry)
}

// RegisterPending snapshots a stylist's pending dues for a range
func (h *PayrollHandler) RegisterPending(c *gin.Context) {
	var req request.RegisterPendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	stylistID, err := uuid.Parse(req.StylistID)
	if err != nil {
		response.BadRequest(c, "Invalid stylist ID")
		return
	}
	from, err := ParseOptionalDate(req.From)
	if err != nil {
		response.BadRequest(c, "Invalid from date")
		return
	}
	to, err := ParseOptionalDate(req.To)
	if err != nil {
		response.BadRequest(c, "Invalid to date")
		return
	}

	entry, err := h.payrollService.RegisterPending(c.Request.Context(), stylistID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Pending dues registered", entry)
}

// MarkPaid marks a payroll entry paid
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.payrollService.MarkPaid(c.Request.Context(), id, req.Method)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Entry marked paid", entry)
}

// DeleteEntry removes a payroll entry
func (h *PayrollHandler) DeleteEntry(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.payrollService.DeleteEntry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
