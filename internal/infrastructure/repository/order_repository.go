package repository

import (
	"context"
	"errors"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	domainRepo "github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithDerived(ctx context.Context, order *entity.Order, lines []entity.OrderLine, tips []entity.Tip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		for i := range tips {
			tips[i].OrderID = order.ID
			tips[i].ClosedAt = order.ClosedAt
			if err := tx.Create(&tips[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Tips").
		Preload("Customer").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.From != nil {
		query = query.Where("closed_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("closed_at <= ?", *params.To)
	}
	if params.Search != "" {
		query = query.Where("folio ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("closed_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("closed_at >= ? AND closed_at <= ?", from, to).
		Order("closed_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListLinesInRange(ctx context.Context, from, to time.Time) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.db.WithContext(ctx).
		Joins("JOIN pos_orders ON pos_orders.id = pos_lines.order_id").
		Where("pos_orders.closed_at >= ? AND pos_orders.closed_at <= ?", from, to).
		Find(&lines).Error
	return lines, err
}

func (r *orderRepository) ListTipsInRange(ctx context.Context, from, to time.Time) ([]entity.Tip, error) {
	var tips []entity.Tip
	err := r.db.WithContext(ctx).
		Where("closed_at >= ? AND closed_at <= ?", from, to).
		Find(&tips).Error
	return tips, err
}
