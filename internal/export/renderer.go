package export

import (
	"context"
	"time"

	"github.com/IMPERIALX7/cosmic-resume/internal/preview"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer turns an HTML snapshot into a file artifact
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
	// Extension is the file extension of the output, without a dot
	Extension() string
	// ContentType is the MIME type of the output
	ContentType() string
}

// A4 paper size in inches
const (
	a4Width  = 8.27
	a4Height = 11.69
)

// ChromeRenderer prints the snapshot to an A4 PDF with headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRenderer struct {
	// ExecPath overrides the browser binary; empty searches the usual locations
	ExecPath string
	Timeout  time.Duration
}

// NewChromeRenderer creates a renderer with the given timeout
func NewChromeRenderer(execPath string, timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeRenderer{ExecPath: execPath, Timeout: timeout}
}

// Extension implements Renderer
func (r *ChromeRenderer) Extension() string { return "pdf" }

// ContentType implements Renderer
func (r *ChromeRenderer) ContentType() string { return "application/pdf" }

// Render loads html into a blank page and prints it
func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady(preview.ResumeSelector, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				Do(ctx)
			pdf = buf
			return err
		}),
	)
	if err != nil {
		return nil, &ExportError{Stage: "render", Message: "browser rendering failed", Cause: err}
	}
	return pdf, nil
}

// HTMLRenderer writes the snapshot unchanged as a standalone HTML file
type HTMLRenderer struct{}

// Extension implements Renderer
func (HTMLRenderer) Extension() string { return "html" }

// ContentType implements Renderer
func (HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

// Render implements Renderer
func (HTMLRenderer) Render(_ context.Context, html string) ([]byte, error) {
	return []byte(html), nil
}
