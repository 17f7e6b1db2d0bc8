package domain

import "github.com/shopspring/decimal"

// Ledger is an ordered set of transactions loaded from a single source.
// Insertion order is significant for positional access; aggregates ignore it.
type Ledger struct {
	Name         string
	Currency     string
	Transactions []Transaction
	Contacts     map[string]ContactMethod // keyed by customer ID
}

// LedgerRef points at a loadable ledger without loading it.
type LedgerRef struct {
	Name string
	Path string
}

// TotalAmount sums the amounts of txs with exact decimal arithmetic.
// An empty input sums to zero.
func TotalAmount(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Amount)
	}
	return total
}

// AverageAmount returns the mean transaction amount. Averaging an empty
// input is an error, never a silent zero or a division by zero.
func AverageAmount(txs []Transaction) (decimal.Decimal, error) {
	if len(txs) == 0 {
		return decimal.Zero, &OpError{
			Op:   "ledger.average",
			Kind: KindEmptyAggregate,
			Err:  ErrEmptyAggregate,
		}
	}
	return TotalAmount(txs).Div(decimal.NewFromInt(int64(len(txs)))), nil
}
