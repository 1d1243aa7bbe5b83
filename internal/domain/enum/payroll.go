package enum

// PayrollStatus tracks whether a payroll entry has been paid out
type PayrollStatus string

const (
	PayrollPending PayrollStatus = "pendiente"
	PayrollPaid    PayrollStatus = "pagado"
)

// IsValid checks if the payroll status is a known value
func (s PayrollStatus) IsValid() bool {
	return s == PayrollPending || s == PayrollPaid
}

// PayrollKind distinguishes hand-entered payroll records from the
// auto-generated period snapshots
type PayrollKind string

const (
	PayrollManual PayrollKind = "manual"
	PayrollAuto   PayrollKind = "auto"
)

// PayFrequency is a payroll period length used to prorate base salary
type PayFrequency string

const (
	FreqWeekly   PayFrequency = "semanal"
	FreqBiweekly PayFrequency = "quincenal"
	FreqMonthly  PayFrequency = "mensual"
)

// PeriodDays returns the period length in days for the frequency.
// Monthly is approximated at 30 days.
func (f PayFrequency) PeriodDays() int {
	switch f {
	case FreqWeekly:
		return 7
	case FreqBiweekly:
		return 15
	case FreqMonthly:
		return 30
	default:
		return 15
	}
}

// IsValid checks if the frequency is a known value
func (f PayFrequency) IsValid() bool {
	return f == FreqWeekly || f == FreqBiweekly || f == FreqMonthly
}
