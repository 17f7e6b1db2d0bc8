package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srazash/linkledger/internal/domain"
	"github.com/srazash/linkledger/internal/infra/logger"
	"github.com/srazash/linkledger/internal/usecase/extract"
)

func extractCmd() *cobra.Command {
	var rules []string

	c := &cobra.Command{
		Use:   "extract <url|path>",
		Short: "Extract values from a JSON document via JSONPath rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]

			parsed, err := parseRules(rules)
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				return fmt.Errorf("at least one --rule name=$.path is required")
			}

			reader := newSourceReader(loadConfigOrDefault(), source)
			body, err := reader.ReadSource(cmd.Context(), source)
			if err != nil {
				return err
			}

			results := extract.Apply(body, parsed)
			printExtractResults(os.Stdout, results)

			if n := countExtractFailures(results); n > 0 {
				logger.L().Warn("extract.failed_rules", "source", source, "failed", n, "total", len(results))
				return fmt.Errorf("extract failed for %d rule(s)", n)
			}
			logger.L().Info("extract.done", "source", source, "rules", len(results))
			return nil
		},
	}

	c.Flags().StringArrayVar(&rules, "rule", nil, "Extraction rule, name=$.json.path (repeatable)")
	return c
}

func parseRules(raw []string) (domain.ExtractRules, error) {
	out := domain.ExtractRules{}
	for _, r := range raw {
		name, expr, ok := strings.Cut(r, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid rule %q (expected name=$.json.path)", r)
		}
		out[name] = strings.TrimSpace(expr)
	}
	return out, nil
}

func printExtractResults(w io.Writer, results []domain.ExtractResult) {
	for _, r := range results {
		mark := "✓"
		if !r.Success {
			mark = "✗"
		}
		if r.Success {
			fmt.Fprintf(w, "%s %s = %s\n", mark, r.Name, r.Value)
		} else {
			fmt.Fprintf(w, "%s %s — %s\n", mark, r.Name, r.Message)
		}
	}
}

func countExtractFailures(results []domain.ExtractResult) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}
