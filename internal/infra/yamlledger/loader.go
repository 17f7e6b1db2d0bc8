// Package yamlledger loads transaction ledgers from YAML files.
package yamlledger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/srazash/linkledger/internal/domain"
	"github.com/srazash/linkledger/internal/ports"
)

type Loader struct {
	ledgersDir string
}

type Option func(*Loader)

func WithLedgersDir(dir string) Option {
	return func(l *Loader) { l.ledgersDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{ledgersDir: "ledgers"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.LedgerLoader = (*Loader)(nil)

func (l *Loader) LoadLedger(path string) (domain.Ledger, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Ledger{}, &domain.OpError{
			Op:   "yamlledger.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yl yamlLedger
	if err := yaml.Unmarshal(b, &yl); err != nil {
		return domain.Ledger{}, &domain.OpError{
			Op:   "yamlledger.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yl)
}

func (l *Loader) ListLedgers(root string) ([]domain.LedgerRef, error) {
	dir := filepath.Join(root, l.ledgersDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlledger.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.LedgerRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readLedgerName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.LedgerRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readLedgerName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlLedger struct {
	Name         string                 `yaml:"name"`
	Currency     string                 `yaml:"currency"`
	Contacts     map[string]yamlContact `yaml:"contacts"`
	Transactions []yamlTransaction      `yaml:"transactions"`
}

type yamlTransaction struct {
	Date     string `yaml:"date"`
	Customer string `yaml:"customer"`
	Amount   string `yaml:"amount"`
}

type yamlContact struct {
	Method string `yaml:"method"`
	Value  string `yaml:"value"`

	// Postal-only fields.
	Street     string `yaml:"street"`
	City       string `yaml:"city"`
	PostalCode string `yaml:"postal_code"`
}

// dateLayouts accepted for transaction dates, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func mapAndValidate(path string, yl yamlLedger) (domain.Ledger, error) {
	if strings.TrimSpace(yl.Name) == "" {
		return domain.Ledger{}, invalidField(path, "name", "ledger name is required")
	}

	currency := strings.ToUpper(strings.TrimSpace(yl.Currency))
	if currency == "" {
		currency = "USD"
	}

	ledger := domain.Ledger{
		Name:         yl.Name,
		Currency:     currency,
		Transactions: make([]domain.Transaction, 0, len(yl.Transactions)),
		Contacts:     map[string]domain.ContactMethod{},
	}

	for i, yt := range yl.Transactions {
		fieldPrefix := fmt.Sprintf("transactions[%d]", i)

		if strings.TrimSpace(yt.Customer) == "" {
			return domain.Ledger{}, invalidField(path, fieldPrefix+".customer", "customer is required")
		}

		date, err := parseDate(yt.Date)
		if err != nil {
			return domain.Ledger{}, invalidField(path, fieldPrefix+".date", err.Error())
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(yt.Amount))
		if err != nil {
			return domain.Ledger{}, invalidField(path, fieldPrefix+".amount", fmt.Sprintf("invalid amount %q", yt.Amount))
		}

		tx := domain.Transaction{
			Date:       date,
			CustomerID: strings.TrimSpace(yt.Customer),
			Amount:     amount,
		}
		if err := tx.Validate(); err != nil {
			return domain.Ledger{}, invalidField(path, fieldPrefix, err.Error())
		}

		ledger.Transactions = append(ledger.Transactions, tx)
	}

	for customer, yc := range yl.Contacts {
		cm, err := mapContact(yc)
		if err != nil {
			return domain.Ledger{}, invalidField(path, "contacts."+customer, err.Error())
		}
		ledger.Contacts[customer] = cm
	}

	return ledger, nil
}

func parseDate(raw string) (time.Time, error) {
	in := strings.TrimSpace(raw)
	if in == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC3339)", raw)
}

func mapContact(yc yamlContact) (domain.ContactMethod, error) {
	switch strings.ToLower(strings.TrimSpace(yc.Method)) {
	case "email":
		if strings.TrimSpace(yc.Value) == "" {
			return nil, fmt.Errorf("email contact requires a value")
		}
		return domain.Email{Address: yc.Value}, nil
	case "sms":
		if strings.TrimSpace(yc.Value) == "" {
			return nil, fmt.Errorf("sms contact requires a value")
		}
		return domain.SMS{Number: domain.PhoneNumber(yc.Value)}, nil
	case "voicemail":
		if strings.TrimSpace(yc.Value) == "" {
			return nil, fmt.Errorf("voicemail contact requires a value")
		}
		return domain.VoiceMail{Number: domain.PhoneNumber(yc.Value)}, nil
	case "postal":
		if strings.TrimSpace(yc.Street) == "" || strings.TrimSpace(yc.City) == "" {
			return nil, fmt.Errorf("postal contact requires street and city")
		}
		return domain.PostalMail{Address: domain.Address{
			Street:     yc.Street,
			City:       yc.City,
			PostalCode: yc.PostalCode,
		}}, nil
	default:
		return nil, fmt.Errorf("unsupported contact method %q", yc.Method)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlledger.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
