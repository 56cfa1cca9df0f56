package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const skillBarWidth = 10

// RenderMarkdown renders the layout as Markdown
func RenderMarkdown(layout Layout) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", layout.Name)
	fmt.Fprintf(&sb, "## %s\n\n", layout.Title)

	if len(layout.Contacts) > 0 {
		items := make([]string, 0, len(layout.Contacts))
		for _, c := range layout.Contacts {
			if c.Href != "" {
				items = append(items, fmt.Sprintf("[%s](%s)", c.Label, c.Href))
			} else {
				items = append(items, c.Label)
			}
		}
		sb.WriteString(strings.Join(items, " · "))
		sb.WriteString("\n\n")
	}
	if layout.Photo != "" {
		sb.WriteString("_Photo attached_\n\n")
	}

	if layout.HasSummary() {
		sb.WriteString("### Summary\n\n")
		sb.WriteString(layout.Summary)
		sb.WriteString("\n\n")
	}

	if len(layout.Skills) > 0 {
		sb.WriteString("### Skills\n\n")
		for _, s := range layout.Skills {
			filled := min(skillBarWidth, max(0, s.Level))
			bar := strings.Repeat("█", filled) + strings.Repeat("░", skillBarWidth-filled)
			fmt.Fprintf(&sb, "- **%s** `%s` %d/10\n", s.Name, bar, s.Level)
		}
		sb.WriteString("\n")
	}

	writeEntries(&sb, "Experience", layout.Experience)
	writeEntries(&sb, "Education", layout.Education)
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeEntries(sb *strings.Builder, title string, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(sb, "### %s\n\n", title)
	for _, e := range entries {
		fmt.Fprintf(sb, "#### %s\n\n", e.Heading)
		fmt.Fprintf(sb, "**%s** · _%s_\n\n", e.Subheading, e.Period)
		if e.Body != "" {
			sb.WriteString(e.Body)
			sb.WriteString("\n\n")
		}
	}
}

// TerminalRenderer renders layouts as styled terminal text
type TerminalRenderer struct {
	renderer *glamour.TermRenderer
}

// NewTerminalRenderer creates a renderer wrapping at width. An empty style
// picks dark or light from the terminal background.
func NewTerminalRenderer(width int, style string) (*TerminalRenderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(max(20, width)))
	if err != nil {
		return nil, &RenderError{Format: "terminal", Message: "failed to create renderer", Cause: err}
	}
	return &TerminalRenderer{renderer: r}, nil
}

// Render renders the layout
func (t *TerminalRenderer) Render(layout Layout) (string, error) {
	out, err := t.renderer.Render(RenderMarkdown(layout))
	if err != nil {
		return "", &RenderError{Format: "terminal", Message: "failed to render markdown", Cause: err}
	}
	return out, nil
}
