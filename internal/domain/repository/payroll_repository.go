package repository

import (
	"context"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/google/uuid"
)

// PayrollFilterParams carries the payroll listing filters
type PayrollFilterParams struct {
	From      *time.Time
	To        *time.Time
	StylistID *uuid.UUID
	Status    enum.PayrollStatus // empty = all
	Search    string             // matches concept, notes, method
}

// PayrollRepository defines the interface for payroll entry data access
type PayrollRepository interface {
	Create(ctx context.Context, entry *entity.PayrollEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollEntry, error)
	Update(ctx context.Context, entry *entity.PayrollEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PayrollFilterParams) ([]entity.PayrollEntry, error)
}
