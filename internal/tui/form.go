package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldSpec describes one labelled input
type fieldSpec struct {
	key         string
	label       string
	placeholder string
}

type field struct {
	key   string
	label string
	input textinput.Model
}

// form is an ordered set of text inputs with a single focused field
type form struct {
	fields []field
	focus  int
}

func newForm(specs ...fieldSpec) form {
	f := form{fields: make([]field, 0, len(specs))}
	for _, spec := range specs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = spec.placeholder
		in.CharLimit = 2000
		in.Width = 40
		f.fields = append(f.fields, field{key: spec.key, label: spec.label, input: in})
	}
	return f
}

func (f *form) current() *field {
	if len(f.fields) == 0 {
		return nil
	}
	return &f.fields[f.focus]
}

// focusIndex moves focus to field i, wrapping around
func (f *form) focusIndex(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	for idx := range f.fields {
		f.fields[idx].input.Blur()
	}
	return f.fields[f.focus].input.Focus()
}

func (f *form) next() tea.Cmd { return f.focusIndex(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.focusIndex(f.focus - 1) }

func (f *form) blur() {
	for idx := range f.fields {
		f.fields[idx].input.Blur()
	}
}

func (f *form) value(key string) string {
	for _, fl := range f.fields {
		if fl.key == key {
			return fl.input.Value()
		}
	}
	return ""
}

// setValue replaces a field's text when it differs, keeping the cursor
// where it is for fields already in sync
func (f *form) setValue(key, value string) {
	for idx := range f.fields {
		if f.fields[idx].key == key && f.fields[idx].input.Value() != value {
			f.fields[idx].input.SetValue(value)
		}
	}
}

func (f *form) setWidth(w int) {
	for idx := range f.fields {
		f.fields[idx].input.Width = max(10, w)
	}
}

// update feeds msg to the focused input and reports the field whose text changed
func (f *form) update(msg tea.Msg) (key string, changed bool, cmd tea.Cmd) {
	cur := f.current()
	if cur == nil {
		return "", false, nil
	}
	before := cur.input.Value()
	cur.input, cmd = cur.input.Update(msg)
	return cur.key, cur.input.Value() != before, cmd
}

func (f *form) view(accent lipgloss.Color) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	focused := lipgloss.NewStyle().Bold(true).Foreground(accent)

	var sb strings.Builder
	for idx, fl := range f.fields {
		style := label
		marker := "  "
		if idx == f.focus && fl.input.Focused() {
			style = focused
			marker = "› "
		}
		sb.WriteString(style.Render(marker + fl.label))
		sb.WriteString("\n  ")
		sb.WriteString(fl.input.View())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
