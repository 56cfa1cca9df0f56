// Package export renders the resume preview to a downloadable file.
package export

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/IMPERIALX7/cosmic-resume/internal/preview"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"go.uber.org/zap"
)

// Artifact is a rendered export
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Exporter runs one export at a time. Busy is advisory state for the UI;
// a second request while busy is refused with ErrBusy.
type Exporter struct {
	renderer Renderer
	logger   *zap.Logger
	busy     atomic.Bool
}

// NewExporter creates an exporter using renderer
func NewExporter(renderer Renderer, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{renderer: renderer, logger: logger}
}

// Busy reports whether an export is running
func (e *Exporter) Busy() bool {
	return e.busy.Load()
}

// Render projects doc and renders it without touching the filesystem
func (e *Exporter) Render(ctx context.Context, doc types.Document) (*Artifact, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	return e.render(ctx, doc)
}

// Export renders doc and writes it into dir, returning the file path
func (e *Exporter) Export(ctx context.Context, doc types.Document, dir string) (string, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer e.busy.Store(false)

	artifact, err := e.render(ctx, doc)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &ExportError{Stage: "write", Message: "failed to create output directory", Cause: err}
	}
	path := filepath.Join(dir, artifact.FileName)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", &ExportError{Stage: "write", Message: "failed to write " + path, Cause: err}
	}

	e.logger.Info("resume exported", zap.String("path", path), zap.Int("bytes", len(artifact.Data)))
	return path, nil
}

func (e *Exporter) render(ctx context.Context, doc types.Document) (*Artifact, error) {
	page, err := preview.RenderHTML(preview.Project(doc), preview.HTMLOptions{})
	if err != nil {
		return nil, &ExportError{Stage: "layout", Message: "failed to render preview", Cause: err}
	}
	snapshot, err := preview.PrepareSnapshot(page)
	if err != nil {
		return nil, &ExportError{Stage: "snapshot", Message: "failed to prepare snapshot", Cause: err}
	}

	data, err := e.renderer.Render(ctx, snapshot)
	if err != nil {
		e.logger.Warn("export render failed", zap.Error(err))
		if _, ok := err.(*ExportError); ok {
			return nil, err
		}
		return nil, &ExportError{Stage: "render", Message: "renderer failed", Cause: err}
	}

	return &Artifact{
		FileName:    FileName(doc.Personal.Name, e.renderer.Extension()),
		ContentType: e.renderer.ContentType(),
		Data:        data,
	}, nil
}
