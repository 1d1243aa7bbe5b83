package entity

import "time"

// CartSnapshot is the periodic dump of the active in-memory ticket, kept
// purely for crash recovery, never for correctness. One row per terminal.
type CartSnapshot struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Payload   string    `gorm:"type:text" json:"payload"`
	SavedAt   time.Time `gorm:"not null" json:"saved_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the CartSnapshot model
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
