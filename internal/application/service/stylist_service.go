package service

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/google/uuid"
)

// StylistService handles stylist roster operations
type StylistService struct {
	stylistRepo repository.StylistRepository
}

// NewStylistService creates a new stylist service
func NewStylistService(stylistRepo repository.StylistRepository) *StylistService {
	return &StylistService{stylistRepo: stylistRepo}
}

// StylistInput represents the create/update stylist input
type StylistInput struct {
	Name       string
	Role       string
	Phone      string
	Pct        float64
	BaseSalary float64
}

func (in *StylistInput) validate() error {
	if in.Name == "" {
		return apperror.NewFieldError("name", "required")
	}
	if in.Pct < 0 || in.Pct > 100 {
		return apperror.NewFieldError("pct", "must be in [0, 100]")
	}
	if in.BaseSalary < 0 {
		return apperror.NewFieldError("base_salary", "must not be negative")
	}
	return nil
}

// CreateStylist adds a stylist to the roster
func (s *StylistService) CreateStylist(ctx context.Context, input *StylistInput) (*entity.Stylist, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	stylist := &entity.Stylist{
		Name:       input.Name,
		Role:       input.Role,
		Phone:      input.Phone,
		Pct:        input.Pct,
		BaseSalary: input.BaseSalary,
	}
	if err := s.stylistRepo.Create(ctx, stylist); err != nil {
		return nil, err
	}
	return stylist, nil
}

// GetStylist retrieves a stylist by ID
func (s *StylistService) GetStylist(ctx context.Context, id uuid.UUID) (*entity.Stylist, error) {
	stylist, err := s.stylistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stylist == nil {
		return nil, apperror.NewNotFoundError("Stylist")
	}
	return stylist, nil
}

// ListStylists returns the full roster
func (s *StylistService) ListStylists(ctx context.Context) ([]entity.Stylist, error) {
	return s.stylistRepo.List(ctx)
}

// UpdateStylist replaces a stylist's editable fields
func (s *StylistService) UpdateStylist(ctx context.Context, id uuid.UUID, input *StylistInput) (*entity.Stylist, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	stylist, err := s.GetStylist(ctx, id)
	if err != nil {
		return nil, err
	}

	stylist.Name = input.Name
	stylist.Role = input.Role
	stylist.Phone = input.Phone
	stylist.Pct = input.Pct
	stylist.BaseSalary = input.BaseSalary

	if err := s.stylistRepo.Update(ctx, stylist); err != nil {
		return nil, err
	}
	return stylist, nil
}

// DeleteStylist removes a stylist from the roster. Historic orders keep
// their snapshot of the stylist's name and percentage.
func (s *StylistService) DeleteStylist(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetStylist(ctx, id); err != nil {
		return err
	}
	return s.stylistRepo.Delete(ctx, id)
}
