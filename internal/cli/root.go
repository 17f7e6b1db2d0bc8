package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srazash/linkledger/internal/buildinfo"
	"github.com/srazash/linkledger/internal/infra/logger"
	"github.com/srazash/linkledger/internal/infra/workspacefinder"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "linkledger",
		Short:        "linkledger — fetch documents, list links, report on transaction ledgers",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}

			logRoot := wd
			if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ = logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if debug {
				fmt.Fprintf(os.Stderr, "debug logging to %s\n", logger.Path())
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .linkledger/logs/linkledger.log")

	cmd.AddCommand(linksCmd())
	cmd.AddCommand(browseCmd())
	cmd.AddCommand(extractCmd())
	cmd.AddCommand(reportCmd())
	cmd.AddCommand(ledgersCmd())
	cmd.AddCommand(initCmd())

	return cmd
}
