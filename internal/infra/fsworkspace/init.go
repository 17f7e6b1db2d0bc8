// Package fsworkspace scaffolds a linkledger workspace on the filesystem.
package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/srazash/linkledger/internal/ports"
)

const defaultConfig = `# linkledger workspace configuration
http:
  timeout_seconds: 30

paths:
  ledgers_dir: ledgers
  reports_dir: reports
`

const sampleLedger = `name: sample
currency: USD

contacts:
  Acme:
    method: email
    value: billing@acme.example

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

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)

	dirs := []string{
		filepath.Join(root, "ledgers"),
		filepath.Join(root, "reports"),
		filepath.Join(root, ".linkledger", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	files := map[string]string{
		filepath.Join(root, "linkledger.yaml"):        defaultConfig,
		filepath.Join(root, "ledgers", "sample.yaml"): sampleLedger,
	}
	for dst, content := range files {
		if !force {
			if _, err := os.Stat(dst); err == nil {
				continue
			}
		}
		if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
			return err
		}
	}

	return ensureGitignore(root)
}

func ensureGitignore(root string) error {
	const header = "# linkledger"
	entries := []string{
		"reports/",
		".linkledger/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
