package request

// VariantRequest is one priced option in a product request
type VariantRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

// CreateProductRequest represents the create product request body
type CreateProductRequest struct {
	Name     string           `json:"name" binding:"required"`
	Category string           `json:"category"`
	Variants []VariantRequest `json:"variants" binding:"required,min=1,dive"`
}

// UpdateProductRequest represents the partial product update body
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// CouponUpsertRequest represents the create/update coupon request body
type CouponUpsertRequest struct {
	Code        string  `json:"code" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=amount percent"`
	Value       float64 `json:"value" binding:"required,gt=0"`
	MinPurchase float64 `json:"min_purchase"`
	MaxDiscount float64 `json:"max_discount"`
	StartDate   string  `json:"start_date"` // RFC 3339, empty = unbounded
	EndDate     string  `json:"end_date"`
	Active      *bool   `json:"active"`
}
