package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tally.dev/internal/application/usecase"
	"tally.dev/internal/domain/entity"
	"tally.dev/internal/infrastructure/logger"
	"tally.dev/internal/infrastructure/repository"
)

// mockRepository implements port.LedgerRepository
type mockRepository struct {
	depositFunc  func(ctx context.Context, amount int64) (int64, error)
	withdrawFunc func(ctx context.Context, amount int64) (int64, error)
	balanceFunc  func(ctx context.Context) (*entity.BalanceResponse, error)
}

func (m *mockRepository) Deposit(ctx context.Context, amount int64) (int64, error) {
	if m.depositFunc != nil {
		return m.depositFunc(ctx, amount)
	}
	return 0, nil
}

func (m *mockRepository) Withdraw(ctx context.Context, amount int64) (int64, error) {
	if m.withdrawFunc != nil {
		return m.withdrawFunc(ctx, amount)
	}
	return 0, nil
}

func (m *mockRepository) Balance(ctx context.Context) (*entity.BalanceResponse, error) {
	if m.balanceFunc != nil {
		return m.balanceFunc(ctx)
	}
	return entity.NewBalanceResponse(0), nil
}

func newTestHandler(repo *mockRepository, log logger.Logger) *Handler {
	return NewHandler(
		usecase.NewDepositUseCase(repo),
		usecase.NewWithdrawUseCase(repo),
		usecase.NewGetBalanceUseCase(repo),
		log,
	)
}

func withLogger(req *http.Request, log logger.Logger) *http.Request {
	ctx := context.WithValue(req.Context(), "logger", log)
	return req.WithContext(ctx)
}

func TestHandler_HandleDeposit(t *testing.T) {
	log := logger.NewLogger()

	tests := []struct {
		name        string
		method      string
		body        string
		repoBalance int64
		repoErr     error
		wantStatus  int
		wantBalance string
	}{
		{
			name:        "valid deposit",
			method:      http.MethodPost,
			body:        `{"amount":"5"}`,
			repoBalance: 6,
			wantStatus:  http.StatusOK,
			wantBalance: "6",
		},
		{
			name:       "wrong HTTP method",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       `invalid json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing amount",
			method:     http.MethodPost,
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "fractional amount",
			method:     http.MethodPost,
			body:       `{"amount":"2.5"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "overflow",
			method:     http.MethodPost,
			body:       `{"amount":"1"}`,
			repoErr:    entity.ErrBalanceOverflow,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{
				depositFunc: func(ctx context.Context, amount int64) (int64, error) {
					return tt.repoBalance, tt.repoErr
				},
			}
			handler := newTestHandler(repo, log)

			req := httptest.NewRequest(tt.method, "/deposit", bytes.NewBufferString(tt.body))
			req = withLogger(req, log)

			w := httptest.NewRecorder()
			handler.HandleDeposit(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Handler.HandleDeposit() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var resp entity.AdjustmentResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Status != "ok" {
					t.Errorf("response status = %v, want ok", resp.Status)
				}
				if resp.Balance != tt.wantBalance {
					t.Errorf("response balance = %v, want %v", resp.Balance, tt.wantBalance)
				}
			}
		})
	}
}

func TestHandler_HandleWithdraw(t *testing.T) {
	log := logger.NewLogger()

	tests := []struct {
		name        string
		method      string
		body        string
		repoBalance int64
		repoErr     error
		wantStatus  int
		wantBalance string
	}{
		{
			name:        "valid withdrawal",
			method:      http.MethodPost,
			body:        `{"amount":"10"}`,
			repoBalance: -4,
			wantStatus:  http.StatusOK,
			wantBalance: "-4",
		},
		{
			name:       "wrong HTTP method",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "insufficient balance in strict mode",
			method:     http.MethodPost,
			body:       `{"amount":"10"}`,
			repoErr:    entity.ErrInsufficientBalance,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{
				withdrawFunc: func(ctx context.Context, amount int64) (int64, error) {
					return tt.repoBalance, tt.repoErr
				},
			}
			handler := newTestHandler(repo, log)

			req := httptest.NewRequest(tt.method, "/withdraw", bytes.NewBufferString(tt.body))
			req = withLogger(req, log)

			w := httptest.NewRecorder()
			handler.HandleWithdraw(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Handler.HandleWithdraw() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var resp entity.AdjustmentResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Balance != tt.wantBalance {
					t.Errorf("response balance = %v, want %v", resp.Balance, tt.wantBalance)
				}
			}
		})
	}
}

func TestHandler_HandleBalance(t *testing.T) {
	log := logger.NewLogger()

	tests := []struct {
		name        string
		method      string
		repoRes     *entity.BalanceResponse
		wantStatus  int
		wantBalance string
	}{
		{
			name:        "valid balance request",
			method:      http.MethodGet,
			repoRes:     entity.NewBalanceResponse(6),
			wantStatus:  http.StatusOK,
			wantBalance: "6",
		},
		{
			name:       "wrong HTTP method",
			method:     http.MethodPost,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{
				balanceFunc: func(ctx context.Context) (*entity.BalanceResponse, error) {
					return tt.repoRes, nil
				},
			}
			handler := newTestHandler(repo, log)

			req := httptest.NewRequest(tt.method, "/balance", nil)
			req = withLogger(req, log)

			w := httptest.NewRecorder()
			handler.HandleBalance(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Handler.HandleBalance() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var resp entity.BalanceResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Balance != tt.wantBalance {
					t.Errorf("response balance = %v, want %v", resp.Balance, tt.wantBalance)
				}
			}
		})
	}
}

func TestHandler_Integration_UncheckedScenario(t *testing.T) {
	// Full stack against the real repository: initialize -> 1,
	// deposit 5 -> 6, withdraw 10 -> -4.
	log := logger.NewLogger()
	ledgerRepo := repository.NewInMemoryLedger(entity.DefaultOpeningBalance, false, log)

	handler := NewHandler(
		usecase.NewDepositUseCase(ledgerRepo),
		usecase.NewWithdrawUseCase(ledgerRepo),
		usecase.NewGetBalanceUseCase(ledgerRepo),
		log,
	)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		req = withLogger(req, log)
		w := httptest.NewRecorder()
		switch path {
		case "/deposit":
			handler.HandleDeposit(w, req)
		case "/withdraw":
			handler.HandleWithdraw(w, req)
		case "/balance":
			handler.HandleBalance(w, req)
		}
		return w
	}

	w := do(http.MethodGet, "/balance", "")
	if w.Code != http.StatusOK {
		t.Fatalf("initial balance status = %v", w.Code)
	}
	var balance entity.BalanceResponse
	json.Unmarshal(w.Body.Bytes(), &balance)
	if balance.Balance != "1" {
		t.Errorf("initial balance = %v, want 1", balance.Balance)
	}

	w = do(http.MethodPost, "/deposit", `{"amount":"5"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("deposit status = %v: %s", w.Code, w.Body.String())
	}
	var adj entity.AdjustmentResponse
	json.Unmarshal(w.Body.Bytes(), &adj)
	if adj.Balance != "6" {
		t.Errorf("balance after deposit = %v, want 6", adj.Balance)
	}

	w = do(http.MethodPost, "/withdraw", `{"amount":"10"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("withdraw status = %v: %s", w.Code, w.Body.String())
	}
	json.Unmarshal(w.Body.Bytes(), &adj)
	if adj.Balance != "-4" {
		t.Errorf("balance after withdrawal = %v, want -4", adj.Balance)
	}
}

func TestHandler_Integration_StrictScenario(t *testing.T) {
	// Same scenario in strict mode: the over-withdrawal is rejected and the
	// balance stays at 6.
	log := logger.NewLogger()
	ledgerRepo := repository.NewInMemoryLedger(entity.DefaultOpeningBalance, true, log)

	handler := NewHandler(
		usecase.NewDepositUseCase(ledgerRepo),
		usecase.NewWithdrawUseCase(ledgerRepo),
		usecase.NewGetBalanceUseCase(ledgerRepo),
		log,
	)

	req := httptest.NewRequest(http.MethodPost, "/deposit", bytes.NewBufferString(`{"amount":"5"}`))
	req = withLogger(req, log)
	w := httptest.NewRecorder()
	handler.HandleDeposit(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("deposit status = %v: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/withdraw", bytes.NewBufferString(`{"amount":"10"}`))
	req = withLogger(req, log)
	w = httptest.NewRecorder()
	handler.HandleWithdraw(w, req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("strict over-withdrawal status = %v, want 422", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/balance", nil)
	req = withLogger(req, log)
	w = httptest.NewRecorder()
	handler.HandleBalance(w, req)

	var balance entity.BalanceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &balance); err != nil {
		t.Fatalf("failed to unmarshal balance: %v", err)
	}
	if balance.Balance != "6" {
		t.Errorf("balance after rejected withdrawal = %v, want 6", balance.Balance)
	}
}

func TestHandler_SetupRoutes(t *testing.T) {
	// Routes go through the middleware chain, which must inject the request
	// logger the handlers rely on.
	log := logger.NewLogger()
	ledgerRepo := repository.NewInMemoryLedger(entity.DefaultOpeningBalance, false, log)

	handler := NewHandler(
		usecase.NewDepositUseCase(ledgerRepo),
		usecase.NewWithdrawUseCase(ledgerRepo),
		usecase.NewGetBalanceUseCase(ledgerRepo),
		log,
	)
	mux := handler.SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /balance via mux status = %v", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set by middleware")
	}

	var balance entity.BalanceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &balance); err != nil {
		t.Fatalf("failed to unmarshal balance: %v", err)
	}
	if balance.Balance != "1" {
		t.Errorf("balance = %v, want 1", balance.Balance)
	}
}
