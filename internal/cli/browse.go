package cli

import (
	"github.com/spf13/cobra"

	"github.com/srazash/linkledger/internal/tui"
	"github.com/srazash/linkledger/internal/usecase"
)

func browseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "browse <url|path>",
		Short: "Browse a document's links interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]

			resolver := newDocumentResolver(loadConfigOrDefault())
			doc, err := resolver.Execute(cmd.Context(), source)
			if err != nil {
				return err
			}

			return tui.Browse(source, usecase.Links(doc))
		},
	}
	return c
}
