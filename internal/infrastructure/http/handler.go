package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"tally.dev/internal/application/usecase"
	"tally.dev/internal/domain/entity"
	"tally.dev/internal/infrastructure/logger"
)

// Handler holds HTTP handlers and their dependencies
type Handler struct {
	depositUseCase    *usecase.DepositUseCase
	withdrawUseCase   *usecase.WithdrawUseCase
	getBalanceUseCase *usecase.GetBalanceUseCase
	logger            logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	depositUseCase *usecase.DepositUseCase,
	withdrawUseCase *usecase.WithdrawUseCase,
	getBalanceUseCase *usecase.GetBalanceUseCase,
	logger logger.Logger,
) *Handler {
	return &Handler{
		depositUseCase:    depositUseCase,
		withdrawUseCase:   withdrawUseCase,
		getBalanceUseCase: getBalanceUseCase,
		logger:            logger,
	}
}

// HandleDeposit handles POST /deposit requests
func (h *Handler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	h.handleAdjustment(w, r, "deposit", h.depositUseCase.Execute)
}

// HandleWithdraw handles POST /withdraw requests
func (h *Handler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	h.handleAdjustment(w, r, "withdraw", h.withdrawUseCase.Execute)
}

type adjustmentFunc func(ctx context.Context, req *entity.AdjustmentRequest) (*entity.AdjustmentResponse, error)

func (h *Handler) handleAdjustment(w http.ResponseWriter, r *http.Request, operation string, execute adjustmentFunc) {
	ctx := r.Context()
	requestLogger := ctx.Value("logger").(logger.Logger)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		requestLogger.LogError(ctx, "Failed to read request body", err)
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var adjustReq entity.AdjustmentRequest
	if err := json.Unmarshal(body, &adjustReq); err != nil {
		requestLogger.LogError(ctx, "Failed to parse JSON body", err)
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	resp, err := execute(ctx, &adjustReq)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			requestLogger.LogError(ctx, "Failed to apply adjustment", err,
				"operation", operation)
		} else {
			requestLogger.LogWarning(ctx, "Adjustment rejected",
				"operation", operation,
				"reason", err.Error())
		}
		http.Error(w, fmt.Sprintf("Failed to %s: %v", operation, err), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)

	requestLogger.LogInfo(ctx, "Adjustment processed",
		"operation", operation,
		"amount", adjustReq.Amount,
		"balance", resp.Balance)
}

// HandleBalance handles GET /balance requests
func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestLogger := ctx.Value("logger").(logger.Logger)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	balance, err := h.getBalanceUseCase.Execute(ctx)
	if err != nil {
		requestLogger.LogError(ctx, "Failed to get balance", err)
		http.Error(w, "Failed to get balance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(balance); err != nil {
		requestLogger.LogError(ctx, "Failed to encode balance response", err)
		return
	}

	requestLogger.LogInfo(ctx, "Balance retrieved",
		"balance", balance.Balance)
}

// statusFromError maps domain errors to HTTP status codes. Malformed input
// is the client's fault (400), a well-formed request the ledger refuses is
// unprocessable (422), everything else is a server error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrMissingAmount),
		errors.Is(err, entity.ErrInvalidAmount),
		errors.Is(err, entity.ErrFractionalAmount),
		errors.Is(err, entity.ErrAmountOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrAmountMustBePositive),
		errors.Is(err, entity.ErrInsufficientBalance),
		errors.Is(err, entity.ErrBalanceOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	depositHandler := RequestIDMiddleware(
		LoggingMiddleware(h.HandleDeposit, h.logger),
		h.logger,
	)
	withdrawHandler := RequestIDMiddleware(
		LoggingMiddleware(h.HandleWithdraw, h.logger),
		h.logger,
	)
	balanceHandler := RequestIDMiddleware(
		LoggingMiddleware(h.HandleBalance, h.logger),
		h.logger,
	)

	mux.HandleFunc("/deposit", depositHandler)
	mux.HandleFunc("/withdraw", withdrawHandler)
	mux.HandleFunc("/balance", balanceHandler)

	return mux
}
