package repository

import (
	"context"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/pkg/pagination"
	"github.com/google/uuid"
)

// OrderFilterParams carries the order list filters
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	From       *time.Time
	To         *time.Time
	Search     string // matches folio or customer name
}

// OrderRepository defines the interface for order data access. Orders are
// immutable: there is no update operation.
type OrderRepository interface {
	// CreateWithDerived persists the order together with its derived line
	// and tip records in a single transaction
	CreateWithDerived(ctx context.Context, order *entity.Order, lines []entity.OrderLine, tips []entity.Tip) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error)
	// ListLinesInRange returns persisted lines whose order closed inside
	// the range; payroll commission aggregation reads from these
	ListLinesInRange(ctx context.Context, from, to time.Time) ([]entity.OrderLine, error)
	ListTipsInRange(ctx context.Context, from, to time.Time) ([]entity.Tip, error)
}
