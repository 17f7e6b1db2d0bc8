package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/srazash/linkledger/internal/infra/yamlledger"
)

func TestInit_ScaffoldsWorkspace(t *testing.T) {
	root := t.TempDir()

	if err := NewInitializer().Init(root, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range []string{
		"linkledger.yaml",
		filepath.Join("ledgers", "sample.yaml"),
		".gitignore",
	} {
		if _, err := os.Stat(filepath.Join(root, p)); err != nil {
			t.Fatalf("expected %s to exist: %v", p, err)
		}
	}
	for _, d := range []string{"ledgers", "reports", filepath.Join(".linkledger", "logs")} {
		info, err := os.Stat(filepath.Join(root, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", d, err)
		}
	}
}

func TestInit_SampleLedgerLoads(t *testing.T) {
	root := t.TempDir()
	if err := NewInitializer().Init(root, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ledger, err := yamlledger.NewLoader().LoadLedger(filepath.Join(root, "ledgers", "sample.yaml"))
	if err != nil {
		t.Fatalf("sample ledger does not load: %v", err)
	}
	if len(ledger.Transactions) != 3 {
		t.Fatalf("expected 3 sample transactions, got %d", len(ledger.Transactions))
	}
}

func TestInit_KeepsExistingFilesWithoutForce(t *testing.T) {
	root := t.TempDir()
	custom := []byte("# mine\n")
	if err := os.WriteFile(filepath.Join(root, "linkledger.yaml"), custom, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := NewInitializer().Init(root, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, "linkledger.yaml"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != string(custom) {
		t.Fatalf("expected existing config untouched, got %q", b)
	}
}

func TestInit_ForceOverwrites(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "linkledger.yaml"), []byte("# mine\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := NewInitializer().Init(root, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, "linkledger.yaml"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "timeout_seconds") {
		t.Fatalf("expected scaffold config, got %q", b)
	}
}

func TestInit_GitignoreAppendsMissingEntries(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("node_modules/\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := NewInitializer().Init(root, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "node_modules/") {
		t.Fatalf("expected existing entries kept, got %q", s)
	}
	if !strings.Contains(s, ".linkledger/") || !strings.Contains(s, "reports/") {
		t.Fatalf("expected linkledger entries appended, got %q", s)
	}
}
