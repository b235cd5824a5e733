package port

import (
	"context"

	"tally.dev/internal/domain/entity"
)

// LedgerRepository is the port for ledger operations. Implementations must
// serialize mutations: at most one deposit or withdrawal is in flight at a
// time, and reads never observe a partially applied mutation.
type LedgerRepository interface {
	Deposit(ctx context.Context, amount int64) (int64, error)
	Withdraw(ctx context.Context, amount int64) (int64, error)
	Balance(ctx context.Context) (*entity.BalanceResponse, error)
}
