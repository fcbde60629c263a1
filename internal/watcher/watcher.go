package watcher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/repository"
)

// Update is one observed balance snapshot. Delta is positive only when the
// balance rose compared to the previous observation and that previous
// observation was non-zero; the first snapshot and decreases carry Delta 0.
type Update struct {
	Balance int64
	Delta   int64
}

// Watcher exposes a live view of account balances as a cancellable stream of
// snapshots. Rapid successive changes between polls coalesce into a single
// update.
type Watcher struct {
	accounts repository.AccountRepository
	interval time.Duration
	logger   *slog.Logger
}

// New constructs a Watcher polling the account store at the given interval.
func New(accounts repository.AccountRepository, interval time.Duration, logger *slog.Logger) *Watcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Watcher{accounts: accounts, interval: interval, logger: logger}
}

// Watch starts observing one account. The first snapshot is always delivered
// so the caller can render the current balance; afterwards an update is sent
// whenever the observed value changes. The channel closes when ctx is done.
func (w *Watcher) Watch(ctx context.Context, userID int64) <-chan Update {
	updates := make(chan Update, 1)

	go func() {
		defer close(updates)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		var (
			previous int64
			seen     bool
		)

		for {
			balance, ok := w.observe(ctx, userID)
			if ok {
				switch {
				case !seen:
					seen = true
					previous = balance
					if !w.send(ctx, updates, Update{Balance: balance}) {
						return
					}
				case balance != previous:
					var delta int64
					if balance > previous && previous > 0 {
						delta = balance - previous
					}
					previous = balance
					if !w.send(ctx, updates, Update{Balance: balance, Delta: delta}) {
						return
					}
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return updates
}

// observe reads the current balance; a missing account reads as zero.
func (w *Watcher) observe(ctx context.Context, userID int64) (int64, bool) {
	account, err := w.accounts.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return 0, true
		}
		if ctx.Err() == nil {
			w.logger.Error("balance snapshot failed",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
		return 0, false
	}
	return account.Balance, true
}

func (w *Watcher) send(ctx context.Context, updates chan<- Update, u Update) bool {
	select {
	case <-ctx.Done():
		return false
	case updates <- u:
		return true
	}
}
