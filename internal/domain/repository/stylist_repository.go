package repository

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/google/uuid"
)

// StylistRepository defines the interface for stylist data access
type StylistRepository interface {
	Create(ctx context.Context, stylist *entity.Stylist) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Stylist, error)
	Update(ctx context.Context, stylist *entity.Stylist) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Stylist, error)
}

// CashierRepository defines the interface for cashier data access
type CashierRepository interface {
	Create(ctx context.Context, cashier *entity.Cashier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cashier, error)
	GetByUsername(ctx context.Context, username string) (*entity.Cashier, error)
	List(ctx context.Context) ([]entity.Cashier, error)
}
