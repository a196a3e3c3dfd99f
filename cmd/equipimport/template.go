package main

import (
	"fmt"
	"os"

	"github.com/dersesut/equipimport/pkg/ingest/export"
	"github.com/spf13/cobra"
)

var templatePath string

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an import template workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := export.Template()
			if err != nil {
				return fmt.Errorf("template failed: %w", err)
			}
			if err := os.WriteFile(templatePath, data, 0644); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
			logger.WithField("path", templatePath).Info("template written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&templatePath, "output", "o", "template_importacao_equipamentos.xlsx", "Output file path")
	return cmd
}
