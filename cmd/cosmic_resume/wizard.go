package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IMPERIALX7/cosmic-resume/internal/enhance"
	"github.com/IMPERIALX7/cosmic-resume/internal/server"
	"github.com/IMPERIALX7/cosmic-resume/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runWizard runs the interactive wizard and, when configured, the live
// preview server over the same session
func runWizard(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sess, err := openSession(settings)
	if err != nil {
		return err
	}
	svc, closeSvc, err := newEnhanceService(ctx, settings)
	if err != nil {
		return err
	}
	defer closeSvc()
	exporter, err := newExporter(settings, "")
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.Deps{
		Session:   sess,
		Workflow:  enhance.NewWorkflow(svc, sess, logger),
		Exporter:  exporter,
		OutputDir: settings.OutputDir,
		AIEnabled: svc.Enabled(),
		Logger:    logger,
	}, tui.WithContext(ctx))
	if err != nil {
		return err
	}
	defer app.Close()

	g, gctx := errgroup.WithContext(ctx)
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(gctx))

	if settings.PreviewAddr != "" {
		srv := server.New(server.Config{Addr: settings.PreviewAddr, ExportEvery: 2 * time.Second}, sess, exporter, logger)
		logger.Info("live preview enabled", zap.String("url", "http://"+settings.PreviewAddr))
		g.Go(func() error { return srv.Run(gctx) })
	}

	g.Go(func() error {
		// Leaving the wizard stops the preview server too
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("wizard failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
