package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/model"
	testhelpers "github.com/mrcash/rewards/internal/test"
)

func TestAccountUseCaseRegisterSuccess(t *testing.T) {
	accounts := testhelpers.NewAccountRepositoryStub()
	uc := NewAccountUseCase(accounts, testhelpers.HasherStub{}, testhelpers.StrategyStub{IssueFn: func(userID int64) (string, error) {
		return "issued", nil
	}})

	password := testhelpers.RandomASCIIString(8, 16)
	account, token, err := uc.Register(context.Background(), "alice@example.com", password, "Alice", "https://img.example/alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "issued" {
		t.Fatalf("unexpected token: %q", token)
	}
	if account.Email != "alice@example.com" || account.DisplayName != "Alice" {
		t.Fatalf("unexpected account: %+v", account)
	}
	if account.Balance != 0 {
		t.Fatalf("new accounts start with zero balance, got %d", account.Balance)
	}
}

func TestAccountUseCaseRegisterDefaultsDisplayName(t *testing.T) {
	accounts := testhelpers.NewAccountRepositoryStub()
	uc := NewAccountUseCase(accounts, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	account, _, err := uc.Register(context.Background(), "bob@example.com", "secret", "   ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.DisplayName != "User" {
		t.Fatalf("expected fallback display name, got %q", account.DisplayName)
	}
}

func TestAccountUseCaseRegisterValidation(t *testing.T) {
	uc := NewAccountUseCase(testhelpers.NewAccountRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "  ", "secret", "", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for empty email, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "a@b.c", "", "", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}
}

func TestAccountUseCaseRegisterDuplicate(t *testing.T) {
	accounts := testhelpers.NewAccountRepositoryStub()
	uc := NewAccountUseCase(accounts, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "dup@example.com", "secret", "", ""); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "dup@example.com", "secret", "", ""); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAccountUseCaseAuthenticate(t *testing.T) {
	accounts := testhelpers.NewAccountRepositoryStub()
	uc := NewAccountUseCase(accounts, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "carol@example.com", "secret", "Carol", ""); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	account, token, err := uc.Authenticate(context.Background(), "carol@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" || account.DisplayName != "Carol" {
		t.Fatalf("unexpected result: token=%q account=%+v", token, account)
	}

	if _, _, err := uc.Authenticate(context.Background(), "carol@example.com", "wrong"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "nobody@example.com", "secret"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestAccountUseCaseAuthenticateRepositoryError(t *testing.T) {
	storeErr := errors.New("store down")
	accounts := testhelpers.NewAccountRepositoryStub()
	accounts.GetByEmailFn = func(context.Context, string) (*model.Account, error) {
		return nil, storeErr
	}
	uc := NewAccountUseCase(accounts, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Authenticate(context.Background(), "a@b.c", "secret"); err != storeErr {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestAccountUseCaseCredit(t *testing.T) {
	accounts := testhelpers.NewAccountRepositoryStub()
	accounts.Seed(&model.Account{ID: 1, Email: "a@b.c", Balance: 100})
	uc := NewAccountUseCase(accounts, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if err := uc.Credit(context.Background(), 1, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := accounts.Balance(1); got != 150 {
		t.Fatalf("expected balance 150, got %d", got)
	}
	if err := uc.Credit(context.Background(), 1, 0); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if err := uc.Credit(context.Background(), 9, 10); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAccountUseCaseProfileAndParseToken(t *testing.T) {
	accounts := testhelpers.NewAccountRepositoryStub()
	accounts.Seed(&model.Account{ID: 5, Email: "p@example.com", DisplayName: "Pat"})
	uc := NewAccountUseCase(accounts, testhelpers.HasherStub{}, testhelpers.StrategyStub{ParseFn: func(token string) (int64, error) {
		if token != "good" {
			return 0, errors.New("bad token")
		}
		return 5, nil
	}})

	userID, err := uc.ParseToken("good")
	if err != nil || userID != 5 {
		t.Fatalf("unexpected parse result: %d %v", userID, err)
	}
	account, err := uc.Profile(context.Background(), userID)
	if err != nil || account.DisplayName != "Pat" {
		t.Fatalf("unexpected profile: %+v %v", account, err)
	}
}
