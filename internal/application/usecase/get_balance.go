package usecase

import (
	"context"

	"tally.dev/internal/domain/entity"
	"tally.dev/internal/domain/port"
)

// GetBalanceUseCase handles balance retrieval.
type GetBalanceUseCase struct {
	repository port.LedgerRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase.
func NewGetBalanceUseCase(repository port.LedgerRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		repository: repository,
	}
}

// Execute retrieves the current balance.
func (uc *GetBalanceUseCase) Execute(ctx context.Context) (*entity.BalanceResponse, error) {
	return uc.repository.Balance(ctx)
}
