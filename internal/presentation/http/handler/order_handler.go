package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles closed order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List lists closed orders with range and search filters
func (h *OrderHandler) List(c *gin.Context) {
	params := &repository.OrderFilterParams{
		Pagination: PaginationFromQuery(c),
		Search:     c.Query("search"),
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

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// Get retrieves a closed order with its lines and tips
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved", order)
}

// Print sends the order receipt to the configured printer
func (h *OrderHandler) Print(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.orderService.PrintReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed", nil)
}
