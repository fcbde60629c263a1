package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage uses. Narrowed to an
// interface so tests can substitute a mock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type accountRepository struct {
	storage *Storage
}

type withdrawalRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Withdrawals() repository.WithdrawalRepository {
	return &withdrawalRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            id BIGSERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            display_name TEXT NOT NULL DEFAULT '',
            photo_url TEXT NOT NULL DEFAULT '',
            balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS withdraw_requests (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES accounts(id),
            display_name TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL,
            account_details TEXT NOT NULL,
            amount BIGINT NOT NULL CHECK (amount > 0),
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_withdraw_requests_user ON withdraw_requests(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- AccountRepository implementation ---

func (r *accountRepository) Create(ctx context.Context, email, passwordHash, displayName, photoURL string) (*model.Account, error) {
	const query = `INSERT INTO accounts (email, password_hash, display_name, photo_url)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var a model.Account
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, displayName, photoURL).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	a.Email = email
	a.PasswordHash = passwordHash
	a.DisplayName = displayName
	a.PhotoURL = photoURL
	return &a, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	const query = `SELECT id, email, password_hash, display_name, photo_url, balance, created_at
                   FROM accounts WHERE email=$1`
	return r.scanAccount(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `SELECT id, email, password_hash, display_name, photo_url, balance, created_at
                   FROM accounts WHERE id=$1`
	return r.scanAccount(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *accountRepository) scanAccount(row pgx.Row) (*model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.PhotoURL, &a.Balance, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// DebitBalance re-reads the authoritative balance under a row lock, rejects
// when it is below amount, and writes the decremented value back. Concurrent
// debits on the same account serialize on the lock, so two over-budget
// requests can never both commit.
func (r *accountRepository) DebitBalance(ctx context.Context, userID int64, amount int64) (int64, error) {
	var remaining int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const balanceQuery = `SELECT balance FROM accounts WHERE id=$1 FOR UPDATE`
		var current int64
		if err := tx.QueryRow(ctx, balanceQuery, userID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if current < amount {
			return domainErrors.ErrInsufficientBalance
		}

		const updateBalance = `UPDATE accounts SET balance = balance - $2 WHERE id=$1`
		if _, err := tx.Exec(ctx, updateBalance, userID, amount); err != nil {
			return err
		}
		remaining = current - amount
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *accountRepository) CreditBalance(ctx context.Context, userID int64, amount int64) error {
	const query = `UPDATE accounts SET balance = balance + $2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- WithdrawalRepository implementation ---

func (r *withdrawalRepository) Create(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalRequest, error) {
	const query = `INSERT INTO withdraw_requests (user_id, display_name, payment_method, account_details, amount)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, status, created_at`
	created := req
	err := r.storage.pool.QueryRow(ctx, query, req.UserID, req.DisplayName, req.PaymentMethod, req.AccountDetails, req.Amount).
		Scan(&created.ID, &created.Status, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *withdrawalRepository) ListByUser(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	const query = `SELECT id, user_id, display_name, payment_method, account_details, amount, status, created_at
                   FROM withdraw_requests WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.WithdrawalRequest
	for rows.Next() {
		var w model.WithdrawalRequest
		if err := rows.Scan(&w.ID, &w.UserID, &w.DisplayName, &w.PaymentMethod, &w.AccountDetails, &w.Amount, &w.Status, &w.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
