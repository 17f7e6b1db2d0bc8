// Package extract evaluates named JSONPath rules over a JSON document body.
package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/srazash/linkledger/internal/domain"
)

// Apply runs every rule against body and reports one result per rule, in
// sorted rule-name order.
//
// Policy:
// - If body is not JSON -> every rule fails (no values extracted).
// - If a rule fails -> it is reported in its result; other rules still run.
func Apply(body []byte, rules domain.ExtractRules) []domain.ExtractResult {
	if len(rules) == 0 {
		return []domain.ExtractResult{}
	}

	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names) // stable output for tests/CLI

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		out := make([]domain.ExtractResult, 0, len(names))
		for _, name := range names {
			out = append(out, failure(name, "document body is not valid JSON"))
		}
		return out
	}

	out := make([]domain.ExtractResult, 0, len(names))
	for _, name := range names {
		out = append(out, applyRule(doc, name, strings.TrimSpace(rules[name])))
	}
	return out
}

func applyRule(doc any, name, expr string) domain.ExtractResult {
	if expr == "" {
		return failure(name, "empty jsonpath expression")
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return failure(name, fmt.Sprintf("jsonpath error: %v", err))
	}
	if isEmptyValue(val) {
		return failure(name, fmt.Sprintf("no value at %s", expr))
	}

	s, err := renderValue(val)
	if err != nil {
		return failure(name, fmt.Sprintf("cannot render value: %v", err))
	}

	return domain.ExtractResult{
		Name:    name,
		Success: true,
		Value:   s,
		Message: fmt.Sprintf("extracted %q", name),
	}
}

func failure(name, msg string) domain.ExtractResult {
	return domain.ExtractResult{
		Name:    name,
		Success: false,
		Message: fmt.Sprintf("extract %q: %s", name, msg),
	}
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func renderValue(v any) (string, error) {
	// jsonpath often returns a single-element slice for index access.
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return renderValue(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
