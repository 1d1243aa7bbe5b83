package handler

import (
	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/request"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles cashier login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"cashier": out.Cashier,
		"token":   out.Token,
	})
}

// Register handles cashier registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterCashierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cashier, err := h.authService.RegisterCashier(c.Request.Context(), &service.RegisterCashierInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cashier created", cashier)
}
