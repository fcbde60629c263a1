package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/domain/repository"
)

var _ repository.Factory = (*Storage)(nil)

func newMockStorage(t *testing.T) (*Storage, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmock.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS accounts",
		"CREATE TABLE IF NOT EXISTS withdraw_requests",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	}
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_withdraw_requests_user ON withdraw_requests").WillReturnResult(pgxmock.NewResult("CREATE", 0))
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("parse error", func(t *testing.T) {
		if _, err := New(context.Background(), ":://bad", logger); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("init schema failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaError(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS accounts").WillReturnError(errors.New("boom"))

	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestAccountRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Accounts()

	created := time.Now()
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("user@example.com", "hash", "User", "https://img").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

	account, err := repo.Create(context.Background(), "user@example.com", "hash", "User", "https://img")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if account.ID != 1 || account.Email != "user@example.com" || account.DisplayName != "User" {
		t.Fatalf("unexpected account: %+v", account)
	}
	if account.Balance != 0 {
		t.Fatalf("expected zero initial balance, got %d", account.Balance)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepositoryCreateDuplicate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Accounts()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("user@example.com", "hash", "User", "").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if _, err := repo.Create(context.Background(), "user@example.com", "hash", "User", ""); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAccountRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Accounts()

	created := time.Now()
	mock.ExpectQuery("SELECT id, email, password_hash, display_name, photo_url, balance, created_at").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "display_name", "photo_url", "balance", "created_at"}).
			AddRow(int64(7), "user@example.com", "hash", "User", "", int64(6000), created))

	account, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if account.Balance != 6000 {
		t.Fatalf("expected balance 6000, got %d", account.Balance)
	}

	mock.ExpectQuery("SELECT id, email, password_hash, display_name, photo_url, balance, created_at").
		WithArgs(int64(8)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), 8); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepositoryDebitBalance(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Accounts()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM accounts").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(6000)))
	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(int64(1), int64(5000)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	remaining, err := repo.DebitBalance(context.Background(), 1, 5000)
	if err != nil {
		t.Fatalf("debit failed: %v", err)
	}
	if remaining != 1000 {
		t.Fatalf("expected remaining 1000, got %d", remaining)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepositoryDebitBalanceInsufficient(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Accounts()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM accounts").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(1000)))
	mock.ExpectRollback()

	if _, err := repo.DebitBalance(context.Background(), 1, 5000); !errors.Is(err, domainErrors.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepositoryDebitBalanceMissingAccount(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Accounts()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT balance FROM accounts").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	if _, err := repo.DebitBalance(context.Background(), 99, 10); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepositoryCreditBalance(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Accounts()

	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(int64(1), int64(250)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.CreditBalance(context.Background(), 1, 250); err != nil {
		t.Fatalf("credit failed: %v", err)
	}

	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(int64(2), int64(250)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := repo.CreditBalance(context.Background(), 2, 250); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing account, got %v", err)
	}
}

func TestWithdrawalRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Withdrawals()

	created := time.Now()
	mock.ExpectQuery("INSERT INTO withdraw_requests").
		WithArgs(int64(1), "User", "PayPal", "user@paypal.com", int64(5000)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "status", "created_at"}).
			AddRow(int64(11), string(model.WithdrawalStatusPending), created))

	req, err := repo.Create(context.Background(), model.WithdrawalRequest{
		UserID:         1,
		DisplayName:    "User",
		PaymentMethod:  "PayPal",
		AccountDetails: "user@paypal.com",
		Amount:         5000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if req.ID != 11 || req.Status != model.WithdrawalStatusPending || req.Amount != 5000 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.CreatedAt.IsZero() {
		t.Fatal("expected store assigned timestamp")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithdrawalRepositoryListByUser(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Withdrawals()

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, display_name, payment_method, account_details, amount, status, created_at").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "display_name", "payment_method", "account_details", "amount", "status", "created_at"}).
			AddRow(int64(2), int64(1), "User", "PayPal", "a@b.c", int64(5000), string(model.WithdrawalStatusPending), now).
			AddRow(int64(1), int64(1), "User", "Binance (USDT)", "0xabc", int64(100), string(model.WithdrawalStatusPaid), now.Add(-time.Hour)))

	list, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected two withdrawals, got %d", len(list))
	}
	if list[0].PaymentMethod != "PayPal" || list[1].Status != model.WithdrawalStatusPaid {
		t.Fatalf("unexpected rows: %+v", list)
	}
}

func TestWithdrawalRepositoryListByUserQueryError(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Withdrawals()

	mock.ExpectQuery("SELECT id, user_id, display_name, payment_method, account_details, amount, status, created_at").
		WithArgs(int64(1)).
		WillReturnError(errors.New("boom"))

	if _, err := repo.ListByUser(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("fail inside")
	err := storage.WithinTransaction(context.Background(), func(pgx.Tx) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectPing().WillReturnError(errors.New("ping"))
	if err := storage.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
