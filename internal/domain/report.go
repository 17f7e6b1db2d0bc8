package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTotal aggregates one customer's share of a report, in order of
// first appearance in the filtered view.
type CustomerTotal struct {
	CustomerID string
	Count      int
	Total      decimal.Decimal
	Contact    string // rendered contact line, empty when none on file
}

// Report is a derived, read-only view over a ledger.
type Report struct {
	LedgerName string
	Currency   string

	GeneratedAt time.Time

	// Transactions is the filtered view, sorted by date descending.
	// Ties keep the ledger's insertion order.
	Transactions []Transaction

	Total   decimal.Decimal
	Average decimal.Decimal

	Customers []CustomerTotal
}

// ReportArtifact is a persisted report for later inspection.
type ReportArtifact struct {
	ID         string
	LedgerPath string
	Report     Report
}
