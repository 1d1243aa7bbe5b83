package service

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/google/uuid"
)

// CatalogService handles products and their priced variants
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// VariantInput represents a priced option in a product input
type VariantInput struct {
	Name  string
	Price float64
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Category string
	Variants []VariantInput
}

// CreateProduct creates a product with its variants
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewFieldError("name", "required")
	}
	if len(input.Variants) == 0 {
		return nil, apperror.NewFieldError("variants", "at least one variant required")
	}
	for _, v := range input.Variants {
		if v.Name == "" {
			return nil, apperror.NewFieldError("variants", "variant name required")
		}
		if v.Price < 0 {
			return nil, apperror.NewFieldError("variants", "variant price must not be negative")
		}
	}

	product := &entity.Product{
		Name:     input.Name,
		Category: input.Category,
	}
	for _, v := range input.Variants {
		product.Variants = append(product.Variants, entity.Variant{
			Name:  v.Name,
			Price: v.Price,
		})
	}
	if err := s.catalogRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product with its variants
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the catalog, optionally filtered by search
func (s *CatalogService) ListProducts(ctx context.Context, search string) ([]entity.Product, error) {
	return s.catalogRepo.ListProducts(ctx, search)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name     *string
	Category *string
}

// UpdateProduct applies a partial update to a product
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewFieldError("name", "required")
		}
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}

	if err := s.catalogRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product and its variants. Past order lines keep
// their own price and name snapshots.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.catalogRepo.DeleteProduct(ctx, id)
}

// AddVariant adds a priced option to an existing product
func (s *CatalogService) AddVariant(ctx context.Context, productID uuid.UUID, input *VariantInput) (*entity.Variant, error) {
	if input.Name == "" {
		return nil, apperror.NewFieldError("name", "required")
	}
	if input.Price < 0 {
		return nil, apperror.NewFieldError("price", "must not be negative")
	}
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	variant := &entity.Variant{
		ProductID: productID,
		Name:      input.Name,
		Price:     input.Price,
	}
	if err := s.catalogRepo.CreateVariant(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// UpdateVariant replaces a variant's name and price
func (s *CatalogService) UpdateVariant(ctx context.Context, id uuid.UUID, input *VariantInput) (*entity.Variant, error) {
	if input.Name == "" {
		return nil, apperror.NewFieldError("name", "required")
	}
	if input.Price < 0 {
		return nil, apperror.NewFieldError("price", "must not be negative")
	}

	variant, err := s.catalogRepo.GetVariant(ctx, id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, apperror.NewNotFoundError("Variant")
	}

	variant.Name = input.Name
	variant.Price = input.Price
	if err := s.catalogRepo.UpdateVariant(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes a variant
func (s *CatalogService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	variant, err := s.catalogRepo.GetVariant(ctx, id)
	if err != nil {
		return err
	}
	if variant == nil {
		return apperror.NewNotFoundError("Variant")
	}
	return s.catalogRepo.DeleteVariant(ctx, id)
}
