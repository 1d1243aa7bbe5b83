package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is an immutable closed ticket. It is created exactly once at
// settlement and never mutated afterward.
type Order struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Folio           string           `gorm:"size:50;not null;index" json:"folio"`
	ClosedAt        time.Time        `gorm:"not null;index" json:"closed_at"`
	CustomerID      *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName    string           `gorm:"size:255" json:"customer_name"`
	CashierID       *uuid.UUID       `gorm:"type:uuid;index" json:"cashier_id,omitempty"`
	Subtotal        float64          `gorm:"not null" json:"subtotal"`
	CouponCode      string           `gorm:"size:100" json:"coupon_code"`
	CouponCut       float64          `gorm:"default:0" json:"coupon_cut"`
	PointsUsed      float64          `gorm:"default:0" json:"points_used"`
	PointsEarned    float64          `gorm:"default:0" json:"points_earned"`
	IVA             float64          `gorm:"default:0" json:"iva"`
	TipTotal        float64          `gorm:"default:0" json:"tip_total"`
	CommissionTotal float64          `gorm:"default:0" json:"commission_total"`
	GlobalDiscount  float64          `gorm:"default:0" json:"global_discount"`
	Total           float64          `gorm:"not null" json:"total"`
	Payments        PaymentList      `gorm:"type:jsonb" json:"payments"`
	StylistsGlobal  StylistShareList `gorm:"type:jsonb" json:"stylists_global"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
	Tips     []Tip       `gorm:"foreignKey:OrderID" json:"tips,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "pos_orders"
}

// OrderLine is a persisted ticket line with its totals and commission
// re-derived at settlement time
type OrderLine struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"order_id"`
	VariantID   uuid.UUID        `gorm:"type:uuid" json:"variant_id"`
	VariantName string           `gorm:"size:255" json:"variant_name"`
	UnitPrice   float64          `gorm:"not null" json:"unit_price"`
	Qty         int              `gorm:"not null" json:"qty"`
	Discount    float64          `gorm:"default:0" json:"discount"`
	Adjust      float64          `gorm:"default:0" json:"adjust"` // signed
	Base        float64          `gorm:"not null" json:"base"`
	LineTotal   float64          `gorm:"not null" json:"line_total"`
	Commission  float64          `gorm:"default:0" json:"commission"`
	Stylists    StylistShareList `gorm:"type:jsonb" json:"stylists"`
	CreatedAt   time.Time        `json:"created_at"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order line
func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "pos_lines"
}

// Tip is a persisted tip allocation for one stylist on a closed order
type Tip struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	StylistID uuid.UUID `gorm:"type:uuid;not null;index" json:"stylist_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	ClosedAt  time.Time `gorm:"not null;index" json:"closed_at"`
	CreatedAt time.Time `json:"created_at"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tip
func (t *Tip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Tip model
func (Tip) TableName() string {
	return "pos_tips"
}
