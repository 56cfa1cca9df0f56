// Package preview projects the resume document into a display layout and
// renders that layout as HTML, Markdown or styled terminal text.
package preview

import (
	"strings"
	"time"

	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// Placeholders shown for blank fields
const (
	PlaceholderName        = "Your Name"
	PlaceholderTitle       = "Professional Title"
	PlaceholderJobTitle    = "Job Title"
	PlaceholderCompany     = "Company"
	PlaceholderDegree      = "Degree"
	PlaceholderInstitution = "Institution"
	// Present is rendered for a missing period bound
	Present = "Present"
)

// Contact is one item in the header contact line
type Contact struct {
	Label string
	Href  string
}

// SkillBar is a skill with its bar width in percent
type SkillBar struct {
	Name    string
	Level   int
	Percent int
}

// Entry is one experience or education item
type Entry struct {
	Heading    string
	Subheading string
	Period     string
	Body       string
}

// Layout is the read-only projection of a Document
type Layout struct {
	Name       string
	Title      string
	Contacts   []Contact
	Photo      string
	Summary    string
	Skills     []SkillBar
	Experience []Entry
	Education  []Entry
}

// HasSummary reports whether the summary section renders
func (l Layout) HasSummary() bool {
	return l.Summary != ""
}

// Project builds the layout for doc. Sections without content are
// omitted; blank headings fall back to placeholders.
func Project(doc types.Document) Layout {
	p := doc.Personal
	layout := Layout{
		Name:  orDefault(p.Name, PlaceholderName),
		Title: orDefault(p.Title, PlaceholderTitle),
		Photo: p.Photo,
	}
	if strings.TrimSpace(p.Summary) != "" {
		layout.Summary = p.Summary
	}

	for _, item := range []string{p.Email, p.Phone, p.Location} {
		if item != "" {
			layout.Contacts = append(layout.Contacts, Contact{Label: item})
		}
	}
	if p.LinkedIn != "" {
		layout.Contacts = append(layout.Contacts, Contact{Label: "LinkedIn Profile", Href: p.LinkedIn})
	}

	for _, s := range doc.Skills {
		layout.Skills = append(layout.Skills, SkillBar{Name: s.Name, Level: s.Level, Percent: s.Level * 10})
	}
	for _, e := range doc.Experience {
		layout.Experience = append(layout.Experience, Entry{
			Heading:    orDefault(e.JobTitle, PlaceholderJobTitle),
			Subheading: orDefault(e.Company, PlaceholderCompany),
			Period:     FormatPeriod(e.StartDate, e.EndDate),
			Body:       e.Description,
		})
	}
	for _, e := range doc.Education {
		layout.Education = append(layout.Education, Entry{
			Heading:    orDefault(e.Degree, PlaceholderDegree),
			Subheading: orDefault(e.Institution, PlaceholderInstitution),
			Period:     FormatPeriod(e.StartDate, e.EndDate),
		})
	}
	return layout
}

// FormatMonth renders a YYYY-MM value as "Jan 2020". An empty value is
// Present; text that is not YYYY-MM is returned as given.
func FormatMonth(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Present
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2006")
}

// FormatPeriod renders "start - end" with both bounds passed through FormatMonth
func FormatPeriod(start, end string) string {
	return FormatMonth(start) + " - " + FormatMonth(end)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
