package tui

import (
	"fmt"
	"strings"

	"github.com/IMPERIALX7/cosmic-resume/internal/wizard"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current state to a string.
func (a *App) View() string {
	accent := accentFor(a.nav.Theme())

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Render(fmt.Sprintf("✦ COSMIC RESUME · Step %d of %d: %s", a.nav.Current(), wizard.TotalSteps, a.nav.Current()))

	left := a.stepView(accent)
	if a.workflow.Modal().Open {
		left = a.modalView(accent)
	}
	leftBox := paneStyle(accent, a.formWidth()).Render(left)
	rightBox := paneStyle(lipgloss.Color("#444444"), a.previewWidth()).Render(a.previewText)
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)

	sections := []string{header, a.progressView(accent), body, a.statusView(), dimStyle.Render(a.helpText())}
	return strings.Join(sections, "\n")
}

// progressView draws done, active and pending steps
func (a *App) progressView(accent lipgloss.Color) string {
	states := a.nav.Progress()
	parts := make([]string, 0, len(states))
	for i, step := range wizard.Steps() {
		switch states[i] {
		case wizard.StepDone:
			parts = append(parts, okStyle.Render("✓ "+step.String()))
		case wizard.StepActive:
			parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(accent).Render("● "+step.String()))
		default:
			parts = append(parts, dimStyle.Render("○ "+step.String()))
		}
	}
	return strings.Join(parts, dimStyle.Render(" ─ "))
}

func (a *App) stepView(accent lipgloss.Color) string {
	switch a.nav.Current() {
	case wizard.StepPersonal:
		return a.personalView(accent)
	case wizard.StepSkills:
		return a.skillsView(accent)
	case wizard.StepExperience:
		return a.experienceView(accent)
	case wizard.StepEducation:
		return a.educationView(accent)
	}
	return ""
}

func (a *App) modalView(accent lipgloss.Color) string {
	modal := a.workflow.Modal()
	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render("Choose a professional summary")

	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	if modal.Loading {
		sb.WriteString(a.spinner.View() + " Generating options...")
		return sb.String()
	}
	if len(modal.Options) == 0 {
		sb.WriteString(dimStyle.Render("No suggestions available."))
		sb.WriteString("\n\n" + dimStyle.Render("r revert · esc close"))
		return sb.String()
	}
	for i, opt := range modal.Options {
		sb.WriteString(selectStyle.Render(fmt.Sprintf("[%d] %s", i+1, opt.Title)) + "\n")
		if opt.Description != "" {
			sb.WriteString(dimStyle.Render(opt.Description) + "\n")
		}
		sb.WriteString(lipgloss.NewStyle().Width(max(20, a.formWidth()-4)).Render(opt.Content) + "\n\n")
	}
	sb.WriteString(dimStyle.Render("1-3 use option · r revert to original · esc close"))
	return sb.String()
}

func (a *App) statusView() string {
	var parts []string
	if a.busy() {
		parts = append(parts, a.spinner.View())
	}
	if a.notice != "" {
		if a.noticeErr {
			parts = append(parts, errorStyle.Render(a.notice))
		} else {
			parts = append(parts, a.notice)
		}
	}
	return strings.Join(parts, " ")
}

func (a *App) helpText() string {
	var keys []string
	if !a.nav.IsFirst() {
		keys = append(keys, "ctrl+p back")
	}
	if !a.nav.IsLast() {
		keys = append(keys, "ctrl+n next")
	}

	switch a.nav.Current() {
	case wizard.StepPersonal:
		keys = append(keys, "tab field")
		if a.aiEnabled {
			keys = append(keys, "ctrl+g enhance summary", "ctrl+o summary options")
		}
	case wizard.StepSkills:
		keys = append(keys, "enter add", "↑/↓ level", "tab list", "d remove")
	case wizard.StepExperience:
		keys = append(keys, "ctrl+a add", "ctrl+d remove", "pgup/pgdn select")
		if a.aiEnabled {
			keys = append(keys, "ctrl+g enhance")
		}
	case wizard.StepEducation:
		keys = append(keys, "ctrl+a add", "ctrl+d remove", "pgup/pgdn select")
	}

	if a.exporter != nil {
		keys = append(keys, "ctrl+e export")
	}
	keys = append(keys, "ctrl+c quit")
	return strings.Join(keys, " · ")
}
