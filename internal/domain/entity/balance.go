package entity

import "strconv"

// BalanceResponse represents the current balance. The value travels as a
// decimal string so clients never lose precision on 64-bit values.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// NewBalanceResponse formats a balance for the wire.
func NewBalanceResponse(balance int64) *BalanceResponse {
	return &BalanceResponse{
		Balance: strconv.FormatInt(balance, 10),
	}
}

// AdjustmentResponse is returned after a successful deposit or withdrawal.
type AdjustmentResponse struct {
	Status  string `json:"status"`
	Balance string `json:"balance"`
}

// NewAdjustmentResponse formats the post-mutation balance for the wire.
func NewAdjustmentResponse(balance int64) *AdjustmentResponse {
	return &AdjustmentResponse{
		Status:  "ok",
		Balance: strconv.FormatInt(balance, 10),
	}
}
