package entity

import (
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase is a supplier purchase; executed purchases are treated as
// expenses in reporting
type Purchase struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID *uuid.UUID         `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Concept    string             `gorm:"size:255;not null" json:"concept"`
	Amount     float64            `gorm:"not null" json:"amount"`
	Date       time.Time          `gorm:"not null;index" json:"date"`
	Status     enum.ExpenseStatus `gorm:"size:20;default:'ejecutado'" json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
