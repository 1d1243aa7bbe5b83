package handler

import (
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CouponHandler handles coupon HTTP requests
type CouponHandler struct {
	couponService *service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponService *service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// List returns all coupons
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.couponService.ListCoupons(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Coupons retrieved", coupons)
}

func couponInput(req *request.CouponUpsertRequest) (*service.CouponInput, error) {
	input := &service.CouponInput{
		Code:        req.Code,
		Type:        req.Type,
		Value:       req.Value,
		MinPurchase: req.MinPurchase,
		MaxDiscount: req.MaxDiscount,
		Active:      true,
	}
	if req.Active != nil {
		input.Active = *req.Active
	}
	if req.StartDate != "" {
		t, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			return nil, err
		}
		input.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			return nil, err
		}
		input.EndDate = &t
	}
	return input, nil
}

// Create creates a coupon
func (h *CouponHandler) Create(c *gin.Context) {
	var req request.CouponUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input, err := couponInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid coupon dates")
		return
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Coupon created", coupon)
}

// Update replaces a coupon's fields
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.CouponUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input, err := couponInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid coupon dates")
		return
	}

	coupon, err := h.couponService.UpdateCoupon(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Coupon updated", coupon)
}

// Toggle flips a coupon's active flag
func (h *CouponHandler) Toggle(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	coupon, err := h.couponService.ToggleCoupon(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Coupon toggled", coupon)
}

// Delete removes a coupon
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.couponService.DeleteCoupon(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
