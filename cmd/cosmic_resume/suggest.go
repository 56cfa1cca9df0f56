package main

import (
	"encoding/json"
	"fmt"

	"github.com/IMPERIALX7/cosmic-resume/internal/enhance"
	"github.com/IMPERIALX7/cosmic-resume/internal/observability"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest alternative professional summaries",
	Long:  "Asks Gemini for up to three alternative professional summaries for the seed document and lists them.",
	RunE:  runSuggest,
}

var suggestJSON bool

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Print the options as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if settings.Seed == "" {
		return fmt.Errorf("a seed document is required (use --seed)")
	}
	if settings.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := cmd.Context()
	sess, err := openSession(settings)
	if err != nil {
		return err
	}
	svc, closeSvc, err := newEnhanceService(ctx, settings)
	if err != nil {
		return err
	}
	defer closeSvc()

	wf := enhance.NewWorkflow(svc, sess, logger)
	req, err := wf.SuggestSummaryOptions(ctx)
	if err != nil {
		return fmt.Errorf("cannot suggest summaries: %w", err)
	}
	if _, err := req.Wait(ctx); err != nil {
		return err
	}
	// Suggesting never changes the document
	wf.Close()

	out := cmd.OutOrStdout()
	if suggestJSON {
		jsonBytes, err := json.MarshalIndent(req.Options(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(jsonBytes))
		return nil
	}
	observability.NewPrinter(out).PrintSummaryOptions(req.Options())
	return nil
}
