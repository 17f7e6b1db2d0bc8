package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/srazash/linkledger/internal/domain"
	"github.com/srazash/linkledger/internal/infra/logger"
	"github.com/srazash/linkledger/internal/usecase"
)

func reportCmd() *cobra.Command {
	var workspace string
	var ledger string
	var customer string
	var minAmount string
	var save bool
	var format string

	c := &cobra.Command{
		Use:   "report",
		Short: "Derive totals, averages and sorted views from a ledger",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			ledgerPath, err := resolveLedgerPath(ws, ledger)
			if err != nil {
				return err
			}

			opts := usecase.ReportOptions{Customer: customer}
			if minAmount != "" {
				threshold, err := decimal.NewFromString(minAmount)
				if err != nil {
					return fmt.Errorf("invalid --min-amount %q: %w", minAmount, err)
				}
				opts.MinAmount = &threshold
			}

			store := ws.store
			if !save {
				store = nil
			}

			uc := usecase.NewBuildReport(ws.ledgers, store)
			report, id, err := uc.Execute(ledgerPath, opts)
			if err != nil {
				logger.L().Error("report.failed", "ledger", ledgerPath, "err", err)
				return err
			}
			logger.L().Info("report.derived",
				"ledger", ledgerPath,
				"transactions", len(report.Transactions),
				"total", report.Total.String(),
				"saved_as", id,
			)

			return printReport(os.Stdout, report, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&ledger, "ledger", "l", "", "Ledger name or path (required)")
	c.Flags().StringVar(&customer, "customer", "", "Only include this customer")
	c.Flags().StringVar(&minAmount, "min-amount", "", "Only include transactions with amount >= this value")
	c.Flags().BoolVar(&save, "save", false, "Save report artifact under reports/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("ledger")
	return c
}

func printReport(w io.Writer, report domain.Report, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"report_id": id,
			"report":    report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, report, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.Report, id string) {
	fmt.Fprintf(w, "Ledger:    %s\n", report.LedgerName)
	fmt.Fprintf(w, "Currency:  %s\n", report.Currency)
	fmt.Fprintf(w, "Generated: %s\n", report.GeneratedAt.Format(time.RFC3339))
	if id != "" {
		fmt.Fprintf(w, "Report ID: %s\n", id)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Transactions: %d\n", len(report.Transactions))
	fmt.Fprintf(w, "Total:        %s\n", report.Total.StringFixed(2))
	if len(report.Transactions) > 0 {
		fmt.Fprintf(w, "Average:      %s\n", report.Average.StringFixed(2))
	}
	fmt.Fprintln(w)

	for _, t := range report.Transactions {
		fmt.Fprintf(w, "- %s  %-16s %12s\n", t.Date.Format("2006-01-02"), t.CustomerID, t.Amount.StringFixed(2))
	}

	if len(report.Customers) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Per customer:")
		for _, c := range report.Customers {
			fmt.Fprintf(w, "- %-16s %12s  (%d transaction(s))\n", c.CustomerID, c.Total.StringFixed(2), c.Count)
			if c.Contact != "" {
				fmt.Fprintf(w, "  contact: %s\n", c.Contact)
			}
		}
	}
}
