package repository

import (
	"context"
	"errors"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	domainRepo "github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) domainRepo.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *catalogRepository) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Preload("Variants").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Variant{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Product{}, "id = ?", id).Error
	})
}

func (r *catalogRepository) ListProducts(ctx context.Context, search string) ([]entity.Product, error) {
	var products []entity.Product

	query := r.db.WithContext(ctx).Preload("Variants")
	if search != "" {
		query = query.Where("name ILIKE ? OR category ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	err := query.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *catalogRepository) CreateVariant(ctx context.Context, variant *entity.Variant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *catalogRepository) GetVariant(ctx context.Context, id uuid.UUID) (*entity.Variant, error) {
	var variant entity.Variant
	err := r.db.WithContext(ctx).Preload("Product").First(&variant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &variant, err
}

func (r *catalogRepository) UpdateVariant(ctx context.Context, variant *entity.Variant) error {
	return r.db.WithContext(ctx).Save(variant).Error
}

func (r *catalogRepository) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Variant{}, "id = ?", id).Error
}
