package usecase

import (
	"context"

	"tally.dev/internal/domain/entity"
	"tally.dev/internal/domain/port"
)

// DepositUseCase handles balance increases.
type DepositUseCase struct {
	repository port.LedgerRepository
}

// NewDepositUseCase creates a new DepositUseCase.
func NewDepositUseCase(repository port.LedgerRepository) *DepositUseCase {
	return &DepositUseCase{
		repository: repository,
	}
}

// Execute applies a deposit and returns the resulting balance.
func (uc *DepositUseCase) Execute(ctx context.Context, req *entity.AdjustmentRequest) (*entity.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	amount, err := req.AmountValue()
	if err != nil {
		return nil, err
	}

	balance, err := uc.repository.Deposit(ctx, amount)
	if err != nil {
		return nil, err
	}

	return entity.NewAdjustmentResponse(balance), nil
}
