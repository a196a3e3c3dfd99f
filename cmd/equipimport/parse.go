package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dersesut/equipimport/pkg/ingest"
	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/dersesut/equipimport/pkg/ingest/output"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	outputPath     string
	pretty         bool
	diagnostics    bool
	shape          string
	departmentsDir string
	jobs           int
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse workbooks and print the recovered records as JSON",
		Long: `parse reads one or more .xlsx/.xls workbooks and prints
{"cpus": [...], "monitors": [...]}. Records from several files are merged in
argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "Include diagnostics and per-sheet reports")
	cmd.Flags().StringVar(&shape, "shape", "", "Sheet shape: auto, keyed, positional (default: IMPORT_SHAPE)")
	cmd.Flags().StringVar(&departmentsDir, "departments-dir", "", "Directory for per-department output files")
	cmd.Flags().IntVar(&jobs, "jobs", 4, "Number of workbooks parsed concurrently")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	shapeName := cfg.Import.Shape
	if shape != "" {
		shapeName = shape
	}
	sheetShape, ok := ingest.ParseShape(shapeName)
	if !ok {
		return fmt.Errorf("invalid shape: %s (must be auto, keyed, or positional)", shapeName)
	}

	opts := ingest.Options{
		Shape:              sheetShape,
		IncludeDiagnostics: &diagnostics,
		Logger:             logger,
	}

	results, err := parseFiles(args, opts, jobs)
	if err != nil {
		return err
	}
	merged := merge(results)

	jsonData, err := output.ToJSON(merged, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if departmentsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if departmentsDir != "" {
		if err := writeDepartmentFiles(merged.EquipmentData, departmentsDir); err != nil {
			return fmt.Errorf("failed to write department files: %w", err)
		}
	}

	logger.WithField("files", len(args)).
		WithField("cpus", len(merged.CPUs)).
		WithField("monitors", len(merged.Monitors)).
		Info("parse complete")
	return nil
}

// parseFiles parses every path with at most limit files in flight and returns
// results in path order. The first failure is returned.
func parseFiles(paths []string, opts ingest.Options, limit int) ([]*ingest.Result, error) {
	results := make([]*ingest.Result, len(paths))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			fileOpts := opts
			if opts.Logger != nil {
				fileOpts.Logger = opts.Logger.WithField("file", filepath.Base(path))
			}
			res, err := ingest.ParseFile(path, fileOpts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func merge(results []*ingest.Result) *ingest.Result {
	merged := &ingest.Result{EquipmentData: models.EquipmentData{CPUs: []models.CPU{}, Monitors: []models.Monitor{}}}
	for _, res := range results {
		merged.CPUs = append(merged.CPUs, res.CPUs...)
		merged.Monitors = append(merged.Monitors, res.Monitors...)
		merged.Diagnostics = append(merged.Diagnostics, res.Diagnostics...)
		merged.Sheets = append(merged.Sheets, res.Sheets...)
	}
	return merged
}

func writeDepartmentFiles(data models.EquipmentData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	files, err := output.DepartmentsToJSON(data, pretty)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0644); err != nil {
			return err
		}
	}
	return nil
}
