package request

// CreateCustomerRequest represents the create customer request body
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

// UpdateCustomerRequest represents the partial customer update body
type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
}

// AdjustPointsRequest applies a manual loyalty balance correction
type AdjustPointsRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}

// StylistRequest represents the create/update stylist request body
type StylistRequest struct {
	Name       string  `json:"name" binding:"required"`
	Role       string  `json:"role"`
	Phone      string  `json:"phone"`
	Pct        float64 `json:"pct" binding:"min=0,max=100"`
	BaseSalary float64 `json:"base_salary" binding:"min=0"`
}

// SupplierRequest represents the create/update supplier request body
type SupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}
