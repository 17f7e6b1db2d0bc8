package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/srazash/linkledger/internal/domain"
	"github.com/srazash/linkledger/internal/infra/logger"
	"github.com/srazash/linkledger/internal/usecase"
)

func linksCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "links <url|path>",
		Short: "Resolve a document and list its anchor elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]

			resolver := newDocumentResolver(loadConfigOrDefault())
			doc, err := resolver.Execute(cmd.Context(), source)
			if err != nil {
				logger.L().Error("links.resolve_failed", "source", source, "err", err)
				return err
			}

			anchors := usecase.Links(doc)
			logger.L().Info("links.resolved", "source", source, "count", len(anchors))

			return printLinks(os.Stdout, source, anchors, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

type linkView struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

func linkViews(anchors []domain.Element) []linkView {
	out := make([]linkView, 0, len(anchors))
	for _, a := range anchors {
		href, _ := a.Attr("href")
		out = append(out, linkView{Href: href, Text: a.Text()})
	}
	return out
}

func printLinks(w io.Writer, source string, anchors []domain.Element, format string) error {
	views := linkViews(anchors)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"source": source,
			"links":  views,
		})
	case "pretty", "":
		fmt.Fprintf(w, "Source: %s\n", source)
		fmt.Fprintf(w, "Links:  %d\n\n", len(views))
		for _, v := range views {
			if v.Text != "" {
				fmt.Fprintf(w, "- %s  (%s)\n", v.Href, v.Text)
			} else {
				fmt.Fprintf(w, "- %s\n", v.Href)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
