package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stylist represents a stylist with a default commission percentage and a
// base salary. The percentage actually applied on a ticket can differ per
// assignment and is always clamped to the configured commission cap.
type Stylist struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Role       string         `gorm:"size:100" json:"role"`
	Phone      string         `gorm:"size:50" json:"phone"`
	Pct        float64        `gorm:"default:0" json:"pct"`
	BaseSalary float64        `gorm:"default:0" json:"base_salary"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stylist
func (s *Stylist) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Stylist model
func (Stylist) TableName() string {
	return "stylists"
}
