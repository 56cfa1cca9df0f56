package main

import (
	"fmt"

	"github.com/IMPERIALX7/cosmic-resume/internal/observability"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the seed document to PDF or HTML",
	Long:  "Renders the resume preview of the seed document and writes it into the output directory. PDF export requires Chrome or Chromium.",
	RunE:  runExport,
}

var exportFormat string

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: pdf or html (default from config, pdf)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(settings)
	if err != nil {
		return err
	}
	exporter, err := newExporter(settings, exportFormat)
	if err != nil {
		return err
	}

	doc := sess.Snapshot()
	out := cmd.OutOrStdout()
	if settings.Verbose {
		observability.NewPrinter(out).PrintDocument(doc)
	}

	path, err := exporter.Export(cmd.Context(), doc, settings.OutputDir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Output: %s\n", path)
	return nil
}
