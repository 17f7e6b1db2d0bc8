package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable ledger record. "Updates" never mutate a value
// in place; the With* methods construct a new Transaction instead.
type Transaction struct {
	Date       time.Time
	CustomerID string
	Amount     decimal.Decimal
}

// WithAmount returns a copy of t with a replaced amount.
func (t Transaction) WithAmount(amount decimal.Decimal) Transaction {
	t.Amount = amount
	return t
}

// WithDate returns a copy of t with a replaced date.
func (t Transaction) WithDate(date time.Time) Transaction {
	t.Date = date
	return t
}

// WithCustomerID returns a copy of t with a replaced customer identifier.
func (t Transaction) WithCustomerID(id string) Transaction {
	t.CustomerID = id
	return t
}

// Validate checks the ledger invariants: a customer is required and the
// amount is a non-negative currency value.
func (t Transaction) Validate() error {
	if t.CustomerID == "" {
		return &OpError{
			Op:   "transaction.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("%w: customer id is required", ErrInvalidConfig),
		}
	}
	if t.Amount.IsNegative() {
		return &OpError{
			Op:   "transaction.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("%w: amount must be non-negative", ErrInvalidConfig),
		}
	}
	return nil
}
