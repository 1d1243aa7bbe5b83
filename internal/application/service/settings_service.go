package service

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
)

// SettingsService manages the salon's single configuration row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get loads the settings, backfilling and persisting any missing defaults
func (s *SettingsService) Get(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{}
		settings.Backfill()
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
		return settings, nil
	}
	if settings.Backfill() {
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the settings update input; nil fields
// are left untouched
type UpdateSettingsInput struct {
	IVARate         *float64
	LoyaltyRate     *float64
	CommissionCap   *float64
	PaymentMethods  []string
	PayrollBaseFreq *enum.PayFrequency
	PayrollCommFreq *enum.PayFrequency
	PayrollTipFreq  *enum.PayFrequency
}

// Update applies a partial settings change
func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.IVARate != nil {
		if *input.IVARate < 0 || *input.IVARate >= 1 {
			return nil, apperror.NewFieldError("iva_rate", "must be in [0, 1)")
		}
		settings.IVARate = *input.IVARate
		settings.IVARateSet = true
	}
	if input.LoyaltyRate != nil {
		if *input.LoyaltyRate < 0 || *input.LoyaltyRate >= 1 {
			return nil, apperror.NewFieldError("loyalty_rate", "must be in [0, 1)")
		}
		settings.LoyaltyRate = *input.LoyaltyRate
	}
	if input.CommissionCap != nil {
		if *input.CommissionCap < 0 || *input.CommissionCap > 100 {
			return nil, apperror.NewFieldError("commission_cap", "must be in [0, 100]")
		}
		settings.CommissionCap = *input.CommissionCap
	}
	if input.PaymentMethods != nil {
		if len(input.PaymentMethods) == 0 {
			return nil, apperror.NewFieldError("payment_methods", "at least one method required")
		}
		settings.SetMethods(input.PaymentMethods)
	}
	if input.PayrollBaseFreq != nil {
		if !input.PayrollBaseFreq.IsValid() {
			return nil, apperror.NewFieldError("payroll_base_freq", "unknown frequency")
		}
		settings.PayrollBaseFreq = *input.PayrollBaseFreq
	}
	if input.PayrollCommFreq != nil {
		if !input.PayrollCommFreq.IsValid() {
			return nil, apperror.NewFieldError("payroll_comm_freq", "unknown frequency")
		}
		settings.PayrollCommFreq = *input.PayrollCommFreq
	}
	if input.PayrollTipFreq != nil {
		if !input.PayrollTipFreq.IsValid() {
			return nil, apperror.NewFieldError("payroll_tip_freq", "unknown frequency")
		}
		settings.PayrollTipFreq = *input.PayrollTipFreq
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
