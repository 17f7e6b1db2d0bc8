package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/srazash/linkledger/internal/domain"
	"github.com/srazash/linkledger/internal/pipeline"
	"github.com/srazash/linkledger/internal/ports"
)

// ReportOptions narrows which transactions a report covers.
type ReportOptions struct {
	// Customer keeps only this customer's transactions when non-empty.
	Customer string
	// MinAmount keeps only transactions with amount >= MinAmount when set.
	MinAmount *decimal.Decimal
}

// BuildReport loads a ledger and derives a report view from it through the
// transaction pipeline. When a store is present the report is also persisted.
type BuildReport struct {
	ledgers ports.LedgerLoader
	store   ports.ReportStore // optional, may be nil
	now     func() time.Time
}

func NewBuildReport(ledgers ports.LedgerLoader, store ports.ReportStore) *BuildReport {
	return &BuildReport{
		ledgers: ledgers,
		store:   store,
		now:     time.Now,
	}
}

func (uc *BuildReport) Execute(ledgerPath string, opts ReportOptions) (domain.Report, string, error) {
	ledger, err := uc.ledgers.LoadLedger(ledgerPath)
	if err != nil {
		return domain.Report{}, "", err
	}

	report := Derive(ledger, opts, uc.now().UTC())

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(domain.ReportArtifact{
		LedgerPath: ledgerPath,
		Report:     report,
	})
	if err != nil {
		return report, "", err
	}
	return report, id, nil
}

// Derive builds the report view from an in-memory ledger. It is a pure
// function: the ledger's transaction list is never modified.
func Derive(ledger domain.Ledger, opts ReportOptions, generatedAt time.Time) domain.Report {
	txs := pipeline.Seq[domain.Transaction](ledger.Transactions)

	if opts.Customer != "" {
		txs = pipeline.Filter(txs, func(t domain.Transaction) bool {
			return t.CustomerID == opts.Customer
		})
	}
	if opts.MinAmount != nil {
		threshold := *opts.MinAmount
		txs = pipeline.Filter(txs, func(t domain.Transaction) bool {
			return t.Amount.GreaterThanOrEqual(threshold)
		})
	}

	sorted := pipeline.SortByDescending(txs, func(t domain.Transaction) int64 {
		return t.Date.UnixNano()
	})

	report := domain.Report{
		LedgerName:   ledger.Name,
		Currency:     ledger.Currency,
		GeneratedAt:  generatedAt,
		Transactions: sorted,
		Total:        domain.TotalAmount(sorted),
		Average:      decimal.Zero,
		Customers:    customerTotals(sorted, ledger.Contacts),
	}

	// Averaging an empty view is undefined; the report simply leaves the
	// average at zero alongside the empty transaction list.
	if avg, err := domain.AverageAmount(sorted); err == nil {
		report.Average = avg
	}

	return report
}

// customerTotals aggregates per customer, ordered by first appearance in the
// (already sorted) view.
func customerTotals(txs []domain.Transaction, contacts map[string]domain.ContactMethod) []domain.CustomerTotal {
	byID := map[string]int{}
	out := []domain.CustomerTotal{}

	for _, t := range txs {
		i, seen := byID[t.CustomerID]
		if !seen {
			i = len(out)
			byID[t.CustomerID] = i

			contact := ""
			if cm, ok := contacts[t.CustomerID]; ok {
				contact = domain.Describe(cm)
			}
			out = append(out, domain.CustomerTotal{
				CustomerID: t.CustomerID,
				Total:      decimal.Zero,
				Contact:    contact,
			})
		}
		out[i].Count++
		out[i].Total = out[i].Total.Add(t.Amount)
	}

	return out
}
