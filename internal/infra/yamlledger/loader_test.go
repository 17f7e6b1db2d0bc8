package yamlledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/srazash/linkledger/internal/domain"
)

const validLedger = `name: august
currency: usd

contacts:
  Acme:
    method: email
    value: billing@acme.example
  LoonyTunes:
    method: sms
    value: "+15550100"

transactions:
  - date: 2024-08-02
    customer: Acme
    amount: "2400.00"
  - date: 2024-08-03
    customer: LoonyTunes
    amount: "1500.00"
  - date: 2024-08-03
    customer: Acme
    amount: "1800.00"
`

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadLedger_Valid(t *testing.T) {
	ledger, err := NewLoader().LoadLedger(writeLedger(t, validLedger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ledger.Name != "august" {
		t.Fatalf("expected name august, got %q", ledger.Name)
	}
	if ledger.Currency != "USD" {
		t.Fatalf("expected currency normalized to USD, got %q", ledger.Currency)
	}
	if len(ledger.Transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(ledger.Transactions))
	}

	first := ledger.Transactions[0]
	if first.CustomerID != "Acme" {
		t.Fatalf("expected Acme, got %q", first.CustomerID)
	}
	if !first.Amount.Equal(decimal.RequireFromString("2400.00")) {
		t.Fatalf("expected amount 2400.00, got %s", first.Amount)
	}
	if !first.Date.Equal(time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", first.Date)
	}

	if _, ok := ledger.Contacts["Acme"].(domain.Email); !ok {
		t.Fatalf("expected email contact for Acme, got %T", ledger.Contacts["Acme"])
	}
	if _, ok := ledger.Contacts["LoonyTunes"].(domain.SMS); !ok {
		t.Fatalf("expected sms contact for LoonyTunes, got %T", ledger.Contacts["LoonyTunes"])
	}
}

func TestLoadLedger_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadLedger(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoadLedger_InvalidCases(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing name", "transactions: []\n"},
		{"not yaml", "::: nope {{{\n"},
		{
			"negative amount",
			"name: x\ntransactions:\n  - date: 2024-08-02\n    customer: Acme\n    amount: \"-1.00\"\n",
		},
		{
			"missing customer",
			"name: x\ntransactions:\n  - date: 2024-08-02\n    amount: \"1.00\"\n",
		},
		{
			"bad date",
			"name: x\ntransactions:\n  - date: yesterday\n    customer: Acme\n    amount: \"1.00\"\n",
		},
		{
			"bad amount",
			"name: x\ntransactions:\n  - date: 2024-08-02\n    customer: Acme\n    amount: lots\n",
		},
		{
			"unknown contact method",
			"name: x\ncontacts:\n  Acme:\n    method: pigeon\n    value: coo\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().LoadLedger(writeLedger(t, tc.content))
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
		})
	}
}

func TestLoadLedger_RFC3339Date(t *testing.T) {
	content := "name: x\ntransactions:\n  - date: 2024-08-02T13:30:00Z\n    customer: Acme\n    amount: \"1.00\"\n"
	ledger, err := NewLoader().LoadLedger(writeLedger(t, content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 8, 2, 13, 30, 0, 0, time.UTC)
	if !ledger.Transactions[0].Date.Equal(want) {
		t.Fatalf("expected %s, got %s", want, ledger.Transactions[0].Date)
	}
}

func TestListLedgers_SortedByName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "ledgers")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	write := func(file, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
	write("b.yaml", "name: beta\n")
	write("a.yaml", "name: alpha\n")
	write("notes.txt", "ignored")

	refs, err := NewLoader().ListLedgers(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].Name != "alpha" || refs[1].Name != "beta" {
		t.Fatalf("expected sorted order, got %+v", refs)
	}
}

func TestListLedgers_MissingDir(t *testing.T) {
	_, err := NewLoader().ListLedgers(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestListLedgers_FallbackNameFromFilename(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "ledgers")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "q3.yaml"), []byte("transactions: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	refs, err := NewLoader().ListLedgers(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 1 || refs[0].Name != "q3" {
		t.Fatalf("expected fallback name q3, got %+v", refs)
	}
}
