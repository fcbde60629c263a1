package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests. Balance
// operations take the internal mutex, so the conditional debit behaves like
// the real store under concurrent submissions.
type AccountRepositoryStub struct {
	GetByIDFn    func(context.Context, int64) (*model.Account, error)
	GetByEmailFn func(context.Context, string) (*model.Account, error)
	DebitFn      func(context.Context, int64, int64) (int64, error)
	CreditFn     func(context.Context, int64, int64) error

	mu          sync.Mutex
	Accounts    map[int64]*model.Account
	ByEmail     map[string]*model.Account
	Next        int64
	Err         error
	DebitCalls  int
	CreditCalls int
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		Accounts: make(map[int64]*model.Account),
		ByEmail:  make(map[string]*model.Account),
		Next:     1,
	}
}

// Seed registers an account with the given identifier and balance.
func (s *AccountRepositoryStub) Seed(account *model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Accounts == nil {
		s.Accounts = make(map[int64]*model.Account)
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.Account)
	}
	s.Accounts[account.ID] = account
	if account.Email != "" {
		s.ByEmail[account.Email] = account
	}
	if account.ID >= s.Next {
		s.Next = account.ID + 1
	}
}

// Create registers account unless the email already exists.
func (s *AccountRepositoryStub) Create(ctx context.Context, email, passwordHash, displayName, photoURL string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Accounts == nil {
		s.Accounts = make(map[int64]*model.Account)
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.Account)
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	account := &model.Account{
		ID:           s.Next,
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		PhotoURL:     photoURL,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.Accounts[account.ID] = account
	s.ByEmail[email] = account
	return account, nil
}

// GetByEmail fetches account by email or returns not found.
func (s *AccountRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	if s.GetByEmailFn != nil {
		return s.GetByEmailFn(ctx, email)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.ByEmail[email]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches account by identifier or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.Accounts[id]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// DebitBalance performs the conditional read-check-write under the stub mutex.
func (s *AccountRepositoryStub) DebitBalance(ctx context.Context, userID int64, amount int64) (int64, error) {
	s.mu.Lock()
	s.DebitCalls++
	s.mu.Unlock()
	if s.DebitFn != nil {
		return s.DebitFn(ctx, userID, amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.Accounts[userID]
	if !ok {
		return 0, domainErrors.ErrNotFound
	}
	if account.Balance < amount {
		return 0, domainErrors.ErrInsufficientBalance
	}
	account.Balance -= amount
	return account.Balance, nil
}

// CreditBalance adds points to an existing account.
func (s *AccountRepositoryStub) CreditBalance(ctx context.Context, userID int64, amount int64) error {
	s.mu.Lock()
	s.CreditCalls++
	s.mu.Unlock()
	if s.CreditFn != nil {
		return s.CreditFn(ctx, userID, amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.Accounts[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	account.Balance += amount
	return nil
}

// Balance reads the stored balance directly, bypassing overrides.
func (s *AccountRepositoryStub) Balance(userID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.Accounts[userID]; ok {
		return account.Balance
	}
	return 0
}

// SetBalance overwrites the stored balance directly.
func (s *AccountRepositoryStub) SetBalance(userID int64, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account, ok := s.Accounts[userID]; ok {
		account.Balance = balance
	}
}

// StoreCalls reports how many balance-mutating store operations occurred.
func (s *AccountRepositoryStub) StoreCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.DebitCalls + s.CreditCalls
}

// WithdrawalRepositoryStub records withdrawal requests for tests.
type WithdrawalRepositoryStub struct {
	CreateFn func(context.Context, model.WithdrawalRequest) (*model.WithdrawalRequest, error)
	ListFn   func(context.Context, int64) ([]model.WithdrawalRequest, error)

	mu      sync.Mutex
	Items   []model.WithdrawalRequest
	NextID  int64
	Created []model.WithdrawalRequest
}

// Create assigns an identifier, the pending status, and a timestamp, like the
// real store does.
func (s *WithdrawalRepositoryStub) Create(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NextID++
	req.ID = s.NextID
	req.Status = model.WithdrawalStatusPending
	req.CreatedAt = time.Now()
	s.Items = append(s.Items, req)
	s.Created = append(s.Created, req)
	return &req, nil
}

// ListByUser returns recorded withdrawals for the user.
func (s *WithdrawalRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WithdrawalRequest, len(s.Items))
	copy(out, s.Items)
	return out, nil
}
