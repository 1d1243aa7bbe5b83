package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/ticket"
)

// PaymentList stores an order's payment snapshot as a jsonb column
type PaymentList []ticket.Payment

// Value implements driver.Valuer
func (p PaymentList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	return string(b), err
}

// Scan implements sql.Scanner
func (p *PaymentList) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// StylistShareList stores stylist assignment snapshots as a jsonb column
type StylistShareList []ticket.StylistShare

// Value implements driver.Valuer
func (s StylistShareList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

// Scan implements sql.Scanner
func (s *StylistShareList) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported jsonb source type")
	}
}
