package usecase

import (
	"context"

	"tally.dev/internal/domain/entity"
	"tally.dev/internal/domain/port"
)

// WithdrawUseCase handles balance decreases.
type WithdrawUseCase struct {
	repository port.LedgerRepository
}

// NewWithdrawUseCase creates a new WithdrawUseCase.
func NewWithdrawUseCase(repository port.LedgerRepository) *WithdrawUseCase {
	return &WithdrawUseCase{
		repository: repository,
	}
}

// Execute applies a withdrawal and returns the resulting balance.
func (uc *WithdrawUseCase) Execute(ctx context.Context, req *entity.AdjustmentRequest) (*entity.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	amount, err := req.AmountValue()
	if err != nil {
		return nil, err
	}

	balance, err := uc.repository.Withdraw(ctx, amount)
	if err != nil {
		return nil, err
	}

	return entity.NewAdjustmentResponse(balance), nil
}
