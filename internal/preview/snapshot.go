package preview

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ResumeSelector selects the resume body in rendered HTML
const ResumeSelector = "#resumeOutput"

// PrepareSnapshot strips editing-only nodes (upload placeholder, reload
// script, anything marked data-interactive) from a rendered page so it can
// be handed to an exporter.
func PrepareSnapshot(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", &RenderError{Format: "snapshot", Message: "failed to parse page", Cause: err}
	}
	if doc.Find(ResumeSelector).Length() == 0 {
		return "", &RenderError{Format: "snapshot", Message: "resume element not found"}
	}

	doc.Find("[data-interactive]").Remove()
	doc.Find("script").Remove()

	out, err := doc.Html()
	if err != nil {
		return "", &RenderError{Format: "snapshot", Message: "failed to serialize page", Cause: err}
	}
	return out, nil
}
