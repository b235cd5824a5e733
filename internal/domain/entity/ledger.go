package entity

import "math"

// DefaultOpeningBalance is the balance a Ledger starts with when the
// operator does not configure one.
const DefaultOpeningBalance int64 = 1

// Ledger holds a single signed integer balance. It is the entire state of
// the service. Methods are not safe for concurrent use; callers serialize
// access (see infrastructure/repository).
//
// Two modes exist:
//   - unchecked (default): deposit and withdraw apply unconditionally, the
//     amount may be zero or negative and the balance may go negative.
//   - strict: amounts must be positive and a withdrawal may not exceed the
//     current balance.
//
// In both modes an operation whose result would not fit in int64 fails with
// ErrBalanceOverflow and leaves the balance unchanged.
type Ledger struct {
	balance int64
	strict  bool
}

// NewLedger creates a Ledger with the given opening balance.
func NewLedger(opening int64, strict bool) *Ledger {
	return &Ledger{
		balance: opening,
		strict:  strict,
	}
}

// Balance returns the current balance.
func (l *Ledger) Balance() int64 {
	return l.balance
}

// Deposit adds amount to the balance and returns the new balance.
// A failed deposit leaves the balance unchanged.
func (l *Ledger) Deposit(amount int64) (int64, error) {
	if l.strict && amount <= 0 {
		return l.balance, ErrAmountMustBePositive
	}

	next, err := addChecked(l.balance, amount)
	if err != nil {
		return l.balance, err
	}

	l.balance = next
	return l.balance, nil
}

// Withdraw subtracts amount from the balance and returns the new balance.
// A failed withdrawal leaves the balance unchanged.
func (l *Ledger) Withdraw(amount int64) (int64, error) {
	if l.strict {
		if amount <= 0 {
			return l.balance, ErrAmountMustBePositive
		}
		if l.balance < amount {
			return l.balance, ErrInsufficientBalance
		}
	}

	next, err := subChecked(l.balance, amount)
	if err != nil {
		return l.balance, err
	}

	l.balance = next
	return l.balance, nil
}

// addChecked returns a+b, or ErrBalanceOverflow if the sum wraps.
func addChecked(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrBalanceOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrBalanceOverflow
	}
	return a + b, nil
}

// subChecked returns a-b, or ErrBalanceOverflow if the difference wraps.
// Note: -b itself overflows when b == math.MinInt64, so this cannot be
// written as addChecked(a, -b).
func subChecked(a, b int64) (int64, error) {
	if b < 0 && a > math.MaxInt64+b {
		return 0, ErrBalanceOverflow
	}
	if b > 0 && a < math.MinInt64+b {
		return 0, ErrBalanceOverflow
	}
	return a - b, nil
}
