package service

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/utils"
)

// AuthService handles cashier authentication
type AuthService struct {
	cashierRepo repository.CashierRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(cashierRepo repository.CashierRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		cashierRepo: cashierRepo,
		jwtManager:  jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Cashier *entity.Cashier
	Token   string
}

// Login authenticates a cashier and returns a session token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	cashier, err := s.cashierRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, cashier.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(cashier.ID, cashier.Username)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Cashier: cashier, Token: token}, nil
}

// RegisterCashierInput represents the cashier registration input
type RegisterCashierInput struct {
	Name     string
	Username string
	Password string
}

// RegisterCashier creates a new cashier account
func (s *AuthService) RegisterCashier(ctx context.Context, input *RegisterCashierInput) (*entity.Cashier, error) {
	if input.Username == "" {
		return nil, apperror.NewFieldError("username", "required")
	}
	if len(input.Password) < 6 {
		return nil, apperror.NewFieldError("password", "must be at least 6 characters")
	}

	existing, err := s.cashierRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username is taken")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	cashier := &entity.Cashier{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: hash,
	}
	if err := s.cashierRepo.Create(ctx, cashier); err != nil {
		return nil, err
	}
	return cashier, nil
}
