package main

import (
	"fmt"

	"github.com/IMPERIALX7/cosmic-resume/internal/observability"
	"github.com/IMPERIALX7/cosmic-resume/internal/preview"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resume preview in the terminal",
	RunE:  runShow,
}

var (
	showWidth int
	showStyle string
)

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 80, "Wrap width")
	showCmd.Flags().StringVar(&showStyle, "style", "", "Glamour style (dark, light, notty); empty detects the terminal")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(settings)
	if err != nil {
		return err
	}
	doc := sess.Snapshot()
	out := cmd.OutOrStdout()

	if settings.Verbose {
		observability.NewPrinter(out).PrintDocument(doc)
	}

	renderer, err := preview.NewTerminalRenderer(showWidth, showStyle)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(preview.Project(doc))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}
