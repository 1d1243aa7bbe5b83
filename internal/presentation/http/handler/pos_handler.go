package handler

import (
	"strconv"

	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/ticket"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PosHandler drives the active ticket over HTTP
type PosHandler struct {
	posService *service.PosService
}

// NewPosHandler creates a new POS handler
func NewPosHandler(posService *service.PosService) *PosHandler {
	return &PosHandler{posService: posService}
}

// State returns the active ticket with fresh totals
func (h *PosHandler) State(c *gin.Context) {
	response.OK(c, "Ticket state", h.posService.State(c.Request.Context()))
}

// NewTicket discards the active ticket
func (h *PosHandler) NewTicket(c *gin.Context) {
	response.OK(c, "Ticket cleared", h.posService.NewTicket(c.Request.Context()))
}

// AddLine adds a catalog variant
func (h *PosHandler) AddLine(c *gin.Context) {
	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	variantID, _ := uuid.Parse(req.VariantID)

	state, err := h.posService.AddVariant(c.Request.Context(), variantID, req.Qty)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line added", state)
}

func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid line index")
		return 0, false
	}
	return index, true
}

// RemoveLine drops a line by index
func (h *PosHandler) RemoveLine(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	state, err := h.posService.RemoveLine(c.Request.Context(), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line removed", state)
}

// UpdateQty changes a line's quantity
func (h *PosHandler) UpdateQty(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	var req request.LineQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	state, err := h.posService.UpdateLineQty(c.Request.Context(), index, req.Qty)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", state)
}

// SetDiscount sets a flat discount on a line
func (h *PosHandler) SetDiscount(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	var req request.LineDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	state, err := h.posService.SetLineDiscount(c.Request.Context(), index, req.Discount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discount updated", state)
}

// SetAdjust sets or clears a signed adjustment on a line
func (h *PosHandler) SetAdjust(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	var req request.LineAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var adjust *ticket.Adjust
	if !req.Clear {
		sign := req.Sign
		if sign == "" {
			sign = "+"
		}
		adjust = &ticket.Adjust{Amount: req.Amount, Sign: sign}
	}
	state, err := h.posService.SetLineAdjust(c.Request.Context(), index, adjust)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Adjustment updated", state)
}

// SetLineStylists replaces the stylist assignment on a line
func (h *PosHandler) SetLineStylists(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	var req request.LineStylistsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shares := make([]ticket.StylistShare, 0, len(req.Stylists))
	for _, s := range req.Stylists {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			response.BadRequest(c, "Invalid stylist ID")
			return
		}
		shares = append(shares, ticket.StylistShare{ID: id, Name: s.Name, Pct: s.Pct})
	}

	state, err := h.posService.SetLineStylists(c.Request.Context(), index, shares)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stylists updated", state)
}

// SetCustomer attaches a customer to the ticket
func (h *PosHandler) SetCustomer(c *gin.Context) {
	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	customerID, _ := uuid.Parse(req.CustomerID)

	state, err := h.posService.SetCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer attached", state)
}

// ClearCustomer detaches the customer
func (h *PosHandler) ClearCustomer(c *gin.Context) {
	response.OK(c, "Customer detached", h.posService.ClearCustomer(c.Request.Context()))
}

// ApplyCoupon sets the coupon code
func (h *PosHandler) ApplyCoupon(c *gin.Context) {
	var req request.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.OK(c, "Coupon applied", h.posService.ApplyCoupon(c.Request.Context(), req.Code))
}

// ClearCoupon removes the coupon code
func (h *PosHandler) ClearCoupon(c *gin.Context) {
	response.OK(c, "Coupon removed", h.posService.ClearCoupon(c.Request.Context()))
}

// SetPoints requests a loyalty points redemption
func (h *PosHandler) SetPoints(c *gin.Context) {
	var req request.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.OK(c, "Points updated", h.posService.SetPointsUsed(c.Request.Context(), req.Points))
}

// SetTip sets a tip for one stylist
func (h *PosHandler) SetTip(c *gin.Context) {
	var req request.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	stylistID, _ := uuid.Parse(req.StylistID)
	response.OK(c, "Tip updated", h.posService.SetTip(c.Request.Context(), stylistID, req.Amount))
}

// RemoveTip removes a stylist's tip allocation
func (h *PosHandler) RemoveTip(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("stylistId"))
	if err != nil {
		response.BadRequest(c, "Invalid stylist ID")
		return
	}
	response.OK(c, "Tip removed", h.posService.RemoveTip(c.Request.Context(), stylistID))
}

// DistributeTip splits a tip total across the ticket's recipients
func (h *PosHandler) DistributeTip(c *gin.Context) {
	var req request.DistributeTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	state, err := h.posService.DistributeTip(c.Request.Context(), req.Total)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Tip distributed", state)
}

// ToggleStylist adds or removes a stylist in the global selection
func (h *PosHandler) ToggleStylist(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("stylistId"))
	if err != nil {
		response.BadRequest(c, "Invalid stylist ID")
		return
	}
	state, err := h.posService.ToggleGlobalStylist(c.Request.Context(), stylistID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stylist selection updated", state)
}

// AutoBalance rescales the global stylist shares to 100
func (h *PosHandler) AutoBalance(c *gin.Context) {
	response.OK(c, "Shares rebalanced", h.posService.AutoBalanceStylists(c.Request.Context()))
}

// SetGlobalDiscount sets the ticket-wide discount
func (h *PosHandler) SetGlobalDiscount(c *gin.Context) {
	var req request.GlobalDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	state, err := h.posService.SetGlobalDiscount(c.Request.Context(), req.Amount, ticket.DiscountType(req.Type))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discount updated", state)
}

// RegisterPayments validates and stores the ticket's payment list
func (h *PosHandler) RegisterPayments(c *gin.Context) {
	var req request.PaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.OK(c, "Payments registered", h.posService.RegisterPayments(c.Request.Context(), req.ToInput()))
}

// Close settles the active ticket into an immutable order
func (h *PosHandler) Close(c *gin.Context) {
	order, err := h.posService.CloseTicket(c.Request.Context(), GetCashierID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Ticket closed", order)
}
