package entity

import (
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayrollEntry is a payroll payment record, either hand-entered or a
// snapshot of a stylist's pending dues generated from the payroll summary
type PayrollEntry struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StylistID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"stylist_id"`
	StylistName string             `gorm:"size:255" json:"stylist_name"`
	Date        time.Time          `gorm:"not null;index" json:"date"`
	Amount      float64            `gorm:"not null" json:"amount"`
	Concept     string             `gorm:"size:255" json:"concept"`
	Method      string             `gorm:"size:100" json:"method"`
	Status      enum.PayrollStatus `gorm:"size:20;default:'pendiente'" json:"status"`
	Notes       string             `gorm:"size:1000" json:"notes"`
	Kind        enum.PayrollKind   `gorm:"size:20;default:'manual'" json:"kind"`
	PaidAt      *time.Time         `json:"paid_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payroll entry
func (p *PayrollEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PayrollEntry model
func (PayrollEntry) TableName() string {
	return "payroll"
}
