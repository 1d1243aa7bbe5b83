package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
)

func TestGetBackfillsMissingDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.IVARate != 0.16 || settings.LoyaltyRate != 0.02 || settings.CommissionCap != 20 {
		t.Errorf("unexpected defaults %+v", settings)
	}
	if !reflect.DeepEqual(settings.Methods(), []string{"Efectivo", "Tarjeta", "Transferencia"}) {
		t.Errorf("unexpected default methods %v", settings.Methods())
	}
	if settings.PayrollBaseFreq != enum.FreqBiweekly {
		t.Errorf("expected biweekly base frequency, got %s", settings.PayrollBaseFreq)
	}
	if repo.saves != 1 {
		t.Errorf("expected backfilled defaults persisted once, got %d saves", repo.saves)
	}

	// Second read finds a complete row and does not write again
	if _, err := svc.Get(context.Background()); err != nil {
		t.Fatalf("get: %v", err)
	}
	if repo.saves != 1 {
		t.Errorf("expected no save on a complete row, got %d", repo.saves)
	}
}

func TestUpdateValidatesRates(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	bad := 1.5
	if _, err := svc.Update(context.Background(), &UpdateSettingsInput{IVARate: &bad}); err == nil {
		t.Fatalf("expected IVA rate above 1 to fail")
	}
	over := 120.0
	if _, err := svc.Update(context.Background(), &UpdateSettingsInput{CommissionCap: &over}); err == nil {
		t.Fatalf("expected cap above 100 to fail")
	}
	if _, err := svc.Update(context.Background(), &UpdateSettingsInput{PaymentMethods: []string{}}); err == nil {
		t.Fatalf("expected empty method list to fail")
	}

	rate := 0.08
	methods := []string{"Efectivo", "Tarjeta"}
	settings, err := svc.Update(context.Background(), &UpdateSettingsInput{
		IVARate:        &rate,
		PaymentMethods: methods,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if settings.IVARate != 0.08 {
		t.Errorf("expected IVA rate updated, got %v", settings.IVARate)
	}
	if !reflect.DeepEqual(settings.Methods(), methods) {
		t.Errorf("expected methods replaced, got %v", settings.Methods())
	}
	// Untouched fields keep their backfilled values
	if settings.LoyaltyRate != 0.02 {
		t.Errorf("expected loyalty rate untouched, got %v", settings.LoyaltyRate)
	}
}

func TestUpdateKeepsExplicitZeroIVARate(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	zero := 0.0
	settings, err := svc.Update(context.Background(), &UpdateSettingsInput{IVARate: &zero})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if settings.IVARate != 0 {
		t.Fatalf("expected IVA rate 0 accepted, got %v", settings.IVARate)
	}

	// A reload must not backfill the configured 0 back to the default
	settings, err = svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.IVARate != 0 {
		t.Errorf("expected configured 0%% rate to survive reload, got %v", settings.IVARate)
	}
}
