package repository

import (
	"context"

	"github.com/mrcash/rewards/internal/domain/model"
)

// WithdrawalRepository appends and lists auditable withdrawal requests.
// Create assigns the identifier, the pending status, and the creation
// timestamp at commit time.
type WithdrawalRepository interface {
	Create(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error)
}
