package service

import (
	"context"
	"testing"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeCashierRepo) {
	t.Helper()
	repo := &fakeCashierRepo{}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(repo, jwtManager)

	hash, err := utils.HashPassword("secreto1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := repo.Create(context.Background(), &entity.Cashier{
		Name:         "Caja",
		Username:     "caja",
		PasswordHash: hash,
	}); err != nil {
		t.Fatalf("seed cashier: %v", err)
	}
	return svc, repo
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	out, err := svc.Login(context.Background(), &LoginInput{Username: "caja", Password: "secreto1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.Token == "" {
		t.Errorf("expected a session token")
	}
	if out.Cashier.Username != "caja" {
		t.Errorf("unexpected cashier %q", out.Cashier.Username)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), &LoginInput{Username: "caja", Password: "equivocada"}); err != apperror.ErrInvalidCredentials {
		t.Errorf("expected invalid credentials for bad password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), &LoginInput{Username: "nadie", Password: "secreto1"}); err != apperror.ErrInvalidCredentials {
		t.Errorf("expected invalid credentials for unknown user, got %v", err)
	}
}

func TestRegisterCashier(t *testing.T) {
	svc, repo := newAuthFixture(t)

	if _, err := svc.RegisterCashier(context.Background(), &RegisterCashierInput{Username: "nueva", Password: "corta"}); err == nil {
		t.Fatalf("expected short password to fail")
	}
	if _, err := svc.RegisterCashier(context.Background(), &RegisterCashierInput{Username: "caja", Password: "secreto2"}); err == nil {
		t.Fatalf("expected taken username to fail")
	}

	cashier, err := svc.RegisterCashier(context.Background(), &RegisterCashierInput{
		Name:     "Turno tarde",
		Username: "tarde",
		Password: "secreto2",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if cashier.PasswordHash == "secreto2" || cashier.PasswordHash == "" {
		t.Errorf("expected the password stored hashed")
	}
	if len(repo.cashiers) != 2 {
		t.Errorf("expected 2 cashiers stored, got %d", len(repo.cashiers))
	}
}
