package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PurchaseHandler handles purchase and supplier HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
	supplierService *service.SupplierService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService, supplierService *service.SupplierService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		supplierService: supplierService,
	}
}

// List lists purchases with pagination
func (h *PurchaseHandler) List(c *gin.Context) {
	result, err := h.purchaseService.ListPurchases(c.Request.Context(), PaginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Purchases retrieved", result)
}

func purchaseInput(req *request.PurchaseRequest) (*service.PurchaseInput, error) {
	date, err := ParseOptionalDate(req.Date)
	if err != nil {
		return nil, err
	}
	input := &service.PurchaseInput{
		Concept: req.Concept,
		Amount:  req.Amount,
		Date:    date,
		Status:  enum.ExpenseStatus(req.Status),
	}
	if req.SupplierID != "" {
		id, err := uuid.Parse(req.SupplierID)
		if err != nil {
			return nil, err
		}
		input.SupplierID = &id
	}
	return input, nil
}

// Create records a supplier purchase
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input, err := purchaseInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid purchase payload")
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Purchase created", purchase)
}

// Update replaces a purchase's fields
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input, err := purchaseInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid purchase payload")
		return
	}

	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase updated", purchase)
}

// Delete removes a purchase
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListSuppliers lists suppliers with pagination
func (h *PurchaseHandler) ListSuppliers(c *gin.Context) {
	result, err := h.supplierService.ListSuppliers(c.Request.Context(), PaginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Suppliers retrieved", result)
}

func supplierInput(req *request.SupplierRequest) *service.SupplierInput {
	return &service.SupplierInput{
		Name:    req.Name,
		Contact: req.Contact,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}
}

// CreateSupplier adds a supplier
func (h *PurchaseHandler) CreateSupplier(c *gin.Context) {
	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), supplierInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Supplier created", supplier)
}

// UpdateSupplier replaces a supplier's fields
func (h *PurchaseHandler) UpdateSupplier(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), id, supplierInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Supplier updated", supplier)
}

// DeleteSupplier removes a supplier
func (h *PurchaseHandler) DeleteSupplier(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
