package repository

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/google/uuid"
)

// CouponRepository defines the interface for coupon data access
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	// FindActiveByCode matches an active coupon by uppercased code;
	// nil with nil error means no match
	FindActiveByCode(ctx context.Context, code string) (*entity.Coupon, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Coupon, error)
}
