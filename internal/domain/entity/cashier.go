package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cashier is a terminal operator account; closed orders record which
// cashier committed them
type Cashier struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Username     string         `gorm:"size:100;unique;not null" json:"username"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cashier
func (c *Cashier) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cashier model
func (Cashier) TableName() string {
	return "cashiers"
}
