package preview

import (
	"embed"
	"html/template"
	"strings"
	"sync"
)

//go:embed templates/*
var templateFiles embed.FS

// HTMLOptions tunes the HTML rendering
type HTMLOptions struct {
	// Interactive adds the photo upload placeholder shown while editing
	Interactive bool
	// LiveReload adds a script that reloads the page on document events
	LiveReload bool
	// EventsPath is the SSE endpoint used by LiveReload
	EventsPath string
}

type htmlData struct {
	Layout      Layout
	Photo       template.URL
	Stylesheet  template.CSS
	Interactive bool
	LiveReload  bool
	EventsPath  string
}

var loadHTMLTemplate = sync.OnceValues(func() (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/resume.html.tmpl")
})

var loadStylesheet = sync.OnceValues(func() (string, error) {
	css, err := templateFiles.ReadFile("templates/resume.css")
	return string(css), err
})

// RenderHTML renders the layout as a standalone HTML page whose resume
// body is the #resumeOutput element
func RenderHTML(layout Layout, opts HTMLOptions) (string, error) {
	tmpl, err := loadHTMLTemplate()
	if err != nil {
		return "", &RenderError{Format: "html", Message: "failed to parse template", Cause: err}
	}
	css, err := loadStylesheet()
	if err != nil {
		return "", &RenderError{Format: "html", Message: "failed to read stylesheet", Cause: err}
	}

	data := htmlData{
		Layout:      layout,
		Stylesheet:  template.CSS(css),
		Interactive: opts.Interactive,
		LiveReload:  opts.LiveReload,
		EventsPath:  opts.EventsPath,
	}
	if data.EventsPath == "" {
		data.EventsPath = "/events"
	}
	// Only inline image data URLs are trusted as img sources
	if isImageDataURL(layout.Photo) {
		data.Photo = template.URL(layout.Photo)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", &RenderError{Format: "html", Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

func isImageDataURL(s string) bool {
	return strings.HasPrefix(s, "data:image/png;base64,") || strings.HasPrefix(s, "data:image/jpeg;base64,")
}
