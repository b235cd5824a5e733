package entity

import "github.com/shopspring/decimal"

// AdjustmentRequest represents an incoming deposit or withdrawal payload.
// The amount travels as a decimal string.
type AdjustmentRequest struct {
	Amount string `json:"amount"`
}

// Validate validates the adjustment request.
func (r *AdjustmentRequest) Validate() error {
	if r.Amount == "" {
		return ErrMissingAmount
	}
	return nil
}

// AmountValue parses the amount into an int64. Fractional values and values
// outside the int64 range are rejected; the sign is preserved so the
// unchecked ledger mode can receive negative adjustments.
func (r *AdjustmentRequest) AmountValue() (int64, error) {
	d, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if !d.IsInteger() {
		return 0, ErrFractionalAmount
	}
	bi := d.BigInt()
	if !bi.IsInt64() {
		return 0, ErrAmountOutOfRange
	}
	return bi.Int64(), nil
}
