package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/domain/repository"
	pkgAuth "github.com/mrcash/rewards/internal/pkg/auth"
)

// AccountUseCase handles account lifecycle, session tokens, and balance reads
// and credits.
type AccountUseCase struct {
	accounts repository.AccountRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, hasher: hasher, tokens: strategy}
}

// Register creates a new account with profile data and returns a session token.
func (u *AccountUseCase) Register(ctx context.Context, email, password, displayName, photoURL string) (*model.Account, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if strings.TrimSpace(displayName) == "" {
		displayName = "User"
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	account, err := u.accounts.Create(ctx, email, hash, displayName, photoURL)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Authenticate validates credentials and returns a session token.
func (u *AccountUseCase) Authenticate(ctx context.Context, email, password string) (*model.Account, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	account, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// ParseToken resolves a session token into a user identifier.
func (u *AccountUseCase) ParseToken(token string) (int64, error) {
	return u.tokens.ParseToken(token)
}

// Profile fetches the account snapshot by user identifier.
func (u *AccountUseCase) Profile(ctx context.Context, userID int64) (*model.Account, error) {
	return u.accounts.GetByID(ctx, userID)
}

// Credit adds earned points to the account balance.
func (u *AccountUseCase) Credit(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.accounts.CreditBalance(ctx, userID, amount)
}
