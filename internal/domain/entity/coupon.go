package entity

import (
	"strings"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/ticket"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Coupon is a named, time-bounded discount rule. Codes are stored
// uppercased and matched case-insensitively.
type Coupon struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code        string         `gorm:"size:100;unique;not null" json:"code"`
	Type        string         `gorm:"size:20;not null" json:"type"` // amount | percent
	Value       float64        `gorm:"not null" json:"value"`
	MinPurchase float64        `gorm:"default:0" json:"min_purchase"`
	MaxDiscount float64        `gorm:"default:0" json:"max_discount"` // 0 = unlimited
	StartDate   *time.Time     `json:"start_date,omitempty"`          // nil = unbounded
	EndDate     *time.Time     `json:"end_date,omitempty"`            // nil = unbounded
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID and uppercases the code
func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	return nil
}

// TableName returns the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}

// ToTicket converts the stored record to the view the pricing engine uses
func (c *Coupon) ToTicket() *ticket.Coupon {
	out := &ticket.Coupon{
		Code:        c.Code,
		Type:        ticket.CouponType(c.Type),
		Value:       c.Value,
		MinPurchase: c.MinPurchase,
		MaxDiscount: c.MaxDiscount,
		Active:      c.Active,
	}
	if c.StartDate != nil {
		out.StartDate = *c.StartDate
	}
	if c.EndDate != nil {
		out.EndDate = *c.EndDate
	}
	return out
}
