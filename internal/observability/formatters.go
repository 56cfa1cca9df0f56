// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/IMPERIALX7/cosmic-resume/internal/preview"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs an overview of the resume as the preview would show it
func (p *Printer) PrintDocument(doc types.Document) {
	layout := preview.Project(doc)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:       %s\n", layout.Name)
	fmt.Fprintf(&sb, "Title:      %s\n", layout.Title)
	for _, c := range layout.Contacts {
		if c.Href != "" {
			fmt.Fprintf(&sb, "Link:       %s\n", c.Href)
			continue
		}
		fmt.Fprintf(&sb, "Contact:    %s\n", c.Label)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Summary:    %s\n", presence(layout.HasSummary()))
	fmt.Fprintf(&sb, "Photo:      %s\n", presence(layout.Photo != ""))
	fmt.Fprintf(&sb, "Skills:     %d\n", len(layout.Skills))
	fmt.Fprintf(&sb, "Experience: %d\n", len(layout.Experience))
	fmt.Fprintf(&sb, "Education:  %d", len(layout.Education))

	p.printBox("RESUME DOCUMENT", sb.String())

	if len(layout.Skills) > 0 {
		p.printSkills(layout.Skills)
	}
	if len(layout.Experience) > 0 {
		p.printEntries("EXPERIENCE", layout.Experience)
	}
	if len(layout.Education) > 0 {
		p.printEntries("EDUCATION", layout.Education)
	}
}

func (p *Printer) printSkills(skills []preview.SkillBar) {
	var sb strings.Builder
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := skills[i]
		filled := min(max(s.Level, 0), 10)
		fmt.Fprintf(&sb, "%-24s %s%s %2d\n",
			truncate(s.Name, 24),
			strings.Repeat("█", filled),
			strings.Repeat("░", 10-filled),
			filled)
	}
	if len(skills) > maxItemsToShow {
		fmt.Fprintf(&sb, "  ... and %d more\n", len(skills)-maxItemsToShow)
	}
	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printEntries(title string, entries []preview.Entry) {
	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		fmt.Fprintf(&sb, "• %s\n", e.Heading)
		fmt.Fprintf(&sb, "  %s · %s\n", e.Subheading, e.Period)
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n  ... and %d more\n", len(entries)-maxItemsToShow)
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnhancement shows a rewrite next to its source text
func (p *Printer) PrintEnhancement(original, enhanced string) {
	var sb strings.Builder
	sb.WriteString("Original:\n")
	for _, line := range wrap(original, boxWidth-6) {
		fmt.Fprintf(&sb, "  %s\n", line)
	}
	sb.WriteString("\nEnhanced:\n")
	if enhanced == original {
		sb.WriteString("  (unchanged)")
	} else {
		for _, line := range wrap(enhanced, boxWidth-6) {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	p.printBox("AI ENHANCEMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummaryOptions lists suggested summaries with their index
func (p *Printer) PrintSummaryOptions(options []types.SummaryOption) {
	if len(options) == 0 {
		p.printBox("SUMMARY OPTIONS", "No suggestions available")
		return
	}

	var sb strings.Builder
	for i, opt := range options {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, opt.Title)
		if opt.Description != "" {
			fmt.Fprintf(&sb, "    %s\n", opt.Description)
		}
		for _, line := range wrap(opt.Content, boxWidth-8) {
			fmt.Fprintf(&sb, "    %s\n", line)
		}
		if i < len(options)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("SUMMARY OPTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func presence(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrap breaks text into lines of at most width runes on word boundaries
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
