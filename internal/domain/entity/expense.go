package entity

import (
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is an outgoing money record; executed expenses count against
// net income in reports
type Expense struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name        string             `gorm:"size:255;not null" json:"name"`
	Description string             `gorm:"size:1000" json:"description"`
	Category    string             `gorm:"size:100" json:"category"`
	Amount      float64            `gorm:"not null" json:"amount"`
	Date        time.Time          `gorm:"not null;index" json:"date"`
	Status      enum.ExpenseStatus `gorm:"size:20;default:'ejecutado'" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
