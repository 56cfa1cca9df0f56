package main

import (
	"fmt"

	"github.com/IMPERIALX7/cosmic-resume/internal/enhance"
	"github.com/IMPERIALX7/cosmic-resume/internal/observability"
	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Rewrite the summary or an experience description with AI",
	Long:  "Rewrites the professional summary, or the description of one experience entry, of the seed document and prints the new text.",
	RunE:  runEnhance,
}

var enhanceTarget string

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceTarget, "target", "t", "summary", `"summary" or the id of an experience entry`)
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, _ []string) error {
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
	var req *enhance.Request
	if enhanceTarget == "summary" {
		req, err = wf.EnhanceSummary(ctx)
	} else {
		req, err = wf.EnhanceExperience(ctx, enhanceTarget)
	}
	if err != nil {
		return fmt.Errorf("cannot enhance %s: %w", enhanceTarget, err)
	}

	outcome, err := req.Wait(ctx)
	if err != nil {
		return err
	}
	if outcome != enhance.OutcomeResolved {
		return fmt.Errorf("enhancement %s, text left unchanged", outcome)
	}

	out := cmd.OutOrStdout()
	if settings.Verbose {
		observability.NewPrinter(out).PrintEnhancement(req.Original(), req.Text())
		return nil
	}
	_, _ = fmt.Fprintln(out, req.Text())
	return nil
}
