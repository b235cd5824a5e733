package repository

import (
	"context"
	"sync"

	"tally.dev/internal/domain/entity"
	"tally.dev/internal/domain/port"
	"tally.dev/internal/infrastructure/logger"
)

// InMemoryLedger implements the LedgerRepository port. It owns the single
// Ledger instance and reproduces the host-environment guarantee the entity
// relies on: mutations are serialized behind a write lock, reads share a
// read lock and never run concurrently with a mutation.
type InMemoryLedger struct {
	mu     sync.RWMutex
	ledger *entity.Ledger
	logger logger.Logger
}

// NewInMemoryLedger creates the in-memory ledger with the given opening
// balance and mode.
func NewInMemoryLedger(opening int64, strict bool, logger logger.Logger) port.LedgerRepository {
	return &InMemoryLedger{
		ledger: entity.NewLedger(opening, strict),
		logger: logger,
	}
}

// Deposit adds amount to the balance and returns the new balance.
func (l *InMemoryLedger) Deposit(ctx context.Context, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.ledger.Deposit(amount)
	if err != nil {
		l.logger.LogError(ctx, "Deposit rejected", err,
			"amount", amount,
			"balance", balance)
		return balance, err
	}

	l.logger.LogInfo(ctx, "Balance updated",
		"operation", "deposit",
		"amount", amount,
		"new_balance", balance)

	return balance, nil
}

// Withdraw subtracts amount from the balance and returns the new balance.
func (l *InMemoryLedger) Withdraw(ctx context.Context, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.ledger.Withdraw(amount)
	if err != nil {
		l.logger.LogError(ctx, "Withdrawal rejected", err,
			"amount", amount,
			"balance", balance)
		return balance, err
	}

	l.logger.LogInfo(ctx, "Balance updated",
		"operation", "withdraw",
		"amount", amount,
		"new_balance", balance)

	return balance, nil
}

// Balance returns the current balance.
func (l *InMemoryLedger) Balance(ctx context.Context) (*entity.BalanceResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return entity.NewBalanceResponse(l.ledger.Balance()), nil
}
