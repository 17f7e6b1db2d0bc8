package ports

import "github.com/srazash/linkledger/internal/domain"

// LedgerLoader loads ledgers from a source (e.g., filesystem).
type LedgerLoader interface {
	LoadLedger(path string) (domain.Ledger, error)
	ListLedgers(root string) ([]domain.LedgerRef, error)
}
