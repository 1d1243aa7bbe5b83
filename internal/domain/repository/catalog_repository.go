package repository

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/google/uuid"
)

// CatalogRepository defines the interface for product and variant data access
type CatalogRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, search string) ([]entity.Product, error)

	CreateVariant(ctx context.Context, variant *entity.Variant) error
	GetVariant(ctx context.Context, id uuid.UUID) (*entity.Variant, error)
	UpdateVariant(ctx context.Context, variant *entity.Variant) error
	DeleteVariant(ctx context.Context, id uuid.UUID) error
}
