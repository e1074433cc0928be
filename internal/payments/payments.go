package payments

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeRequest is a single card charge. AmountMinor is in the currency's
// smallest unit (cents for usd).
type ChargeRequest struct {
	AmountMinor  int64
	Currency     string
	SourceToken  string
	ReceiptEmail string
	Description  string
	OrderID      string
}

// ChargeResult is what the processor reports for a settled charge.
type ChargeResult struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// Processor charges a card.
type Processor interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a two-decimal amount to minor units, rounding half
// away from zero.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart()
}

// FormatMinorUnits renders minor units back as a two-decimal string.
func FormatMinorUnits(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
