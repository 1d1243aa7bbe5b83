package request

// UpdateSettingsRequest represents the partial settings update body
type UpdateSettingsRequest struct {
	IVARate         *float64 `json:"iva_rate"`
	LoyaltyRate     *float64 `json:"loyalty_rate"`
	CommissionCap   *float64 `json:"commission_cap"`
	PaymentMethods  []string `json:"payment_methods"`
	PayrollBaseFreq *string  `json:"payroll_base_freq" binding:"omitempty,oneof=semanal quincenal mensual"`
	PayrollCommFreq *string  `json:"payroll_comm_freq" binding:"omitempty,oneof=semanal quincenal mensual"`
	PayrollTipFreq  *string  `json:"payroll_tip_freq" binding:"omitempty,oneof=semanal quincenal mensual"`
}
