package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List returns expenses matching the filters
func (h *ExpenseHandler) List(c *gin.Context) {
	params := &repository.ExpenseFilterParams{Search: c.Query("search")}
	if c.Query("from") != "" || c.Query("to") != "" {
		from, to, err := RangeFromQuery(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.From = &from
		params.To = &to
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expenses retrieved", expenses)
}

func expenseInput(req *request.ExpenseRequest) (*service.ExpenseInput, error) {
	date, err := ParseOptionalDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &service.ExpenseInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Status:      enum.ExpenseStatus(req.Status),
	}, nil
}

// Create records a new expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input, err := expenseInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense created", expense)
}

// Update replaces an expense's fields
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input, err := expenseInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid date")
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense updated", expense)
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
