package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List lists customers with pagination and search
func (h *CustomerHandler) List(c *gin.Context) {
	result, err := h.customerService.ListCustomers(c.Request.Context(), PaginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Customers retrieved", result)
}

// Get retrieves one customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved", customer)
}

// Create creates a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Customer created", customer)
}

// Update applies a partial customer update
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &service.UpdateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated", customer)
}

// AdjustPoints applies a manual loyalty balance correction
func (h *CustomerHandler) AdjustPoints(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.AdjustPoints(c.Request.Context(), id, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Points adjusted", customer)
}

// Delete removes a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
