package enum

// ExpenseStatus marks whether an outgoing record already hit the cash flow
type ExpenseStatus string

const (
	ExpenseExecuted ExpenseStatus = "ejecutado"
	ExpensePending  ExpenseStatus = "pendiente"
)

// IsValid checks if the expense status is a known value
func (s ExpenseStatus) IsValid() bool {
	return s == ExpenseExecuted || s == ExpensePending
}
