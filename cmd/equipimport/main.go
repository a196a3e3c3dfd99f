// Package main provides the CLI entry point for equipimport.
package main

import (
	"os"

	"github.com/dersesut/equipimport/internal/config"
	"github.com/dersesut/equipimport/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFile string

	cfg    *config.Config
	logger *logrus.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "equipimport",
		Short: "Import CPU and monitor inventories from Excel workbooks",
		Long: `equipimport recovers CPU and monitor records from inventory workbooks,
both header-row sheets and the legacy "CPU'S - DER-<dept>" section layout,
and outputs JSON or serves an import API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if envFile != "" {
				cfg, err = config.Load(envFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			logger, err = logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Environment file to load (default: .env when present)")

	rootCmd.AddCommand(newParseCmd(), newTemplateCmd(), newServeCmd())
	return rootCmd
}
