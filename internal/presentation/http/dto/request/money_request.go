package request

// ExpenseRequest represents the create/update expense request body
type ExpenseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date"` // RFC 3339, empty = now
	Status      string  `json:"status" binding:"omitempty,oneof=ejecutado pendiente"`
}

// PurchaseRequest represents the create/update purchase request body
type PurchaseRequest struct {
	SupplierID string  `json:"supplier_id" binding:"omitempty,uuid"`
	Concept    string  `json:"concept" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Date       string  `json:"date"`
	Status     string  `json:"status" binding:"omitempty,oneof=ejecutado pendiente"`
}

// PayrollEntryRequest represents a manual payroll record
type PayrollEntryRequest struct {
	StylistID string  `json:"stylist_id" binding:"required,uuid"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Concept   string  `json:"concept"`
	Method    string  `json:"method"`
	Status    string  `json:"status" binding:"omitempty,oneof=pendiente pagado"`
	Notes     string  `json:"notes"`
}

// RegisterPendingRequest snapshots a stylist's pending dues for a range
type RegisterPendingRequest struct {
	StylistID string `json:"stylist_id" binding:"required,uuid"`
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
}

// MarkPaidRequest marks a payroll entry paid
type MarkPaidRequest struct {
	Method string `json:"method"`
}
