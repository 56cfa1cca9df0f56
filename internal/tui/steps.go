package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/IMPERIALX7/cosmic-resume/internal/editor"
	"github.com/IMPERIALX7/cosmic-resume/internal/enhance"
	"github.com/IMPERIALX7/cosmic-resume/internal/preview"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Experience and education form keys
const (
	keyJobTitle    = "job_title"
	keyCompany     = "company"
	keyDegree      = "degree"
	keyInstitution = "institution"
	keyStartDate   = "start_date"
	keyEndDate     = "end_date"
	keyDescription = "description"
)

func newPersonalForm() form {
	specs := make([]fieldSpec, 0, len(editor.PersonalFields)+1)
	for _, f := range editor.PersonalFields {
		specs = append(specs, fieldSpec{key: string(f), label: f.Label()})
	}
	specs = append(specs, fieldSpec{key: photoKey, label: "Photo (path to PNG or JPEG, enter to attach)"})
	return newForm(specs...)
}

func newSkillInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "e.g. JavaScript"
	in.CharLimit = 100
	in.Width = 40
	return in
}

func newExperienceForm() form {
	return newForm(
		fieldSpec{key: keyJobTitle, label: "Job Title"},
		fieldSpec{key: keyCompany, label: "Company"},
		fieldSpec{key: keyStartDate, label: "Start Date", placeholder: "YYYY-MM"},
		fieldSpec{key: keyEndDate, label: "End Date", placeholder: "YYYY-MM, empty for present"},
		fieldSpec{key: keyDescription, label: "Description"},
	)
}

func newEducationForm() form {
	return newForm(
		fieldSpec{key: keyDegree, label: "Degree"},
		fieldSpec{key: keyInstitution, label: "Institution"},
		fieldSpec{key: keyStartDate, label: "Start Date", placeholder: "YYYY-MM"},
		fieldSpec{key: keyEndDate, label: "End Date", placeholder: "YYYY-MM, empty for present"},
	)
}

// Personal

func (a *App) handlePersonalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return a.personalForm.next()
	case "shift+tab", "up":
		return a.personalForm.prev()
	case "enter":
		if cur := a.personalForm.current(); cur != nil && cur.key == photoKey {
			a.attachPhoto(cur.input.Value())
			return nil
		}
		return a.personalForm.next()
	case "ctrl+x":
		a.personal.RemoveImage()
		a.setNotice("Photo removed")
		return nil
	case "ctrl+g":
		return a.startEnhance(a.workflow.EnhanceSummary, false)
	case "ctrl+o":
		return a.startEnhance(a.workflow.SuggestSummaryOptions, true)
	}

	key, changed, cmd := a.personalForm.update(msg)
	if changed && key != photoKey {
		if err := a.personal.Set(editor.Field(key), a.personalForm.value(key)); err != nil {
			a.setError(err.Error())
		}
	}
	return cmd
}

func (a *App) attachPhoto(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		a.setError("Type the path of an image first")
		return
	}
	if err := a.personal.AttachImage(path); err != nil {
		a.setError(err.Error())
		return
	}
	a.personalForm.setValue(photoKey, "")
	a.setSuccess("Photo attached")
}

// Skills

func (a *App) handleSkillsKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "tab" || msg.String() == "shift+tab" {
		if a.skillListFocus || len(a.skills.Skills()) == 0 {
			a.skillListFocus = false
			return a.skillInput.Focus()
		}
		a.skillListFocus = true
		a.skillInput.Blur()
		return nil
	}

	if a.skillListFocus {
		skills := a.skills.Skills()
		switch msg.String() {
		case "up":
			a.skillIdx = clampIndex(a.skillIdx-1, len(skills))
		case "down":
			a.skillIdx = clampIndex(a.skillIdx+1, len(skills))
		case "d", "delete", "backspace":
			if len(skills) > 0 {
				removed := skills[a.skillIdx]
				a.skills.Remove(removed.ID)
				a.setNotice(fmt.Sprintf("Removed %s", removed.Name))
			}
		}
		return nil
	}

	switch msg.String() {
	case "up":
		a.skills.SetPendingLevel(a.skills.PendingLevel() + 1)
		return nil
	case "down":
		a.skills.SetPendingLevel(a.skills.PendingLevel() - 1)
		return nil
	case "enter":
		skill, ok := a.skills.Add()
		if !ok {
			a.setError("Type a skill name first")
			return nil
		}
		a.skillInput.SetValue(a.skills.PendingName())
		a.setSuccess(fmt.Sprintf("Added %s", skill.Name))
		return nil
	}

	var cmd tea.Cmd
	a.skillInput, cmd = a.skillInput.Update(msg)
	a.skills.SetPendingName(a.skillInput.Value())
	return cmd
}

// Experience

func experienceIDs(entries []types.Experience) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func (a *App) loadExperienceForm(doc types.Document) {
	var e types.Experience
	if len(doc.Experience) > 0 {
		e = doc.Experience[a.expIdx]
	}
	a.expForm.setValue(keyJobTitle, e.JobTitle)
	a.expForm.setValue(keyCompany, e.Company)
	a.expForm.setValue(keyStartDate, e.StartDate)
	a.expForm.setValue(keyEndDate, e.EndDate)
	a.expForm.setValue(keyDescription, e.Description)
}

func experiencePatch(key, value string) editor.ExperiencePatch {
	v := editor.Text(value)
	switch key {
	case keyJobTitle:
		return editor.ExperiencePatch{JobTitle: v}
	case keyCompany:
		return editor.ExperiencePatch{Company: v}
	case keyStartDate:
		return editor.ExperiencePatch{StartDate: v}
	case keyEndDate:
		return editor.ExperiencePatch{EndDate: v}
	case keyDescription:
		return editor.ExperiencePatch{Description: v}
	}
	return editor.ExperiencePatch{}
}

func (a *App) handleExperienceKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+a":
		entry := a.experience.Add()
		a.expID, a.expIdx = entry.ID, 0
		a.syncFromSession()
		return a.expForm.focusIndex(0)
	case "ctrl+d":
		if a.expID != "" {
			a.experience.Remove(a.expID)
			a.syncFromSession()
		}
		return nil
	case "pgup":
		return a.selectExperience(a.expIdx - 1)
	case "pgdown":
		return a.selectExperience(a.expIdx + 1)
	case "tab", "down", "enter":
		return a.expForm.next()
	case "shift+tab", "up":
		return a.expForm.prev()
	case "ctrl+g":
		id := a.expID
		return a.startEnhance(func(ctx context.Context) (*enhance.Request, error) {
			return a.workflow.EnhanceExperience(ctx, id)
		}, false)
	}

	if a.expID == "" {
		return nil
	}
	key, changed, cmd := a.expForm.update(msg)
	if changed {
		a.experience.Update(a.expID, experiencePatch(key, a.expForm.value(key)))
	}
	return cmd
}

func (a *App) selectExperience(idx int) tea.Cmd {
	entries := a.experience.Entries()
	if len(entries) == 0 {
		return nil
	}
	a.expIdx = clampIndex(idx, len(entries))
	a.expID = entries[a.expIdx].ID
	a.syncFromSession()
	return nil
}

// Education

func educationIDs(entries []types.Education) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func (a *App) loadEducationForm(doc types.Document) {
	var e types.Education
	if len(doc.Education) > 0 {
		e = doc.Education[a.eduIdx]
	}
	a.eduForm.setValue(keyDegree, e.Degree)
	a.eduForm.setValue(keyInstitution, e.Institution)
	a.eduForm.setValue(keyStartDate, e.StartDate)
	a.eduForm.setValue(keyEndDate, e.EndDate)
}

func educationPatch(key, value string) editor.EducationPatch {
	v := editor.Text(value)
	switch key {
	case keyDegree:
		return editor.EducationPatch{Degree: v}
	case keyInstitution:
		return editor.EducationPatch{Institution: v}
	case keyStartDate:
		return editor.EducationPatch{StartDate: v}
	case keyEndDate:
		return editor.EducationPatch{EndDate: v}
	}
	return editor.EducationPatch{}
}

func (a *App) handleEducationKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+a":
		entry := a.education.Add()
		a.eduID, a.eduIdx = entry.ID, 0
		a.syncFromSession()
		return a.eduForm.focusIndex(0)
	case "ctrl+d":
		if a.eduID != "" {
			a.education.Remove(a.eduID)
			a.syncFromSession()
		}
		return nil
	case "pgup":
		return a.selectEducation(a.eduIdx - 1)
	case "pgdown":
		return a.selectEducation(a.eduIdx + 1)
	case "tab", "down", "enter":
		return a.eduForm.next()
	case "shift+tab", "up":
		return a.eduForm.prev()
	}

	if a.eduID == "" {
		return nil
	}
	key, changed, cmd := a.eduForm.update(msg)
	if changed {
		a.education.Update(a.eduID, educationPatch(key, a.eduForm.value(key)))
	}
	return cmd
}

func (a *App) selectEducation(idx int) tea.Cmd {
	entries := a.education.Entries()
	if len(entries) == 0 {
		return nil
	}
	a.eduIdx = clampIndex(idx, len(entries))
	a.eduID = entries[a.eduIdx].ID
	a.syncFromSession()
	return nil
}

// Step views

func (a *App) personalView(accent lipgloss.Color) string {
	var sb strings.Builder
	sb.WriteString(a.personalForm.view(accent))
	if a.session.Snapshot().Personal.Photo != "" {
		sb.WriteString("\n" + okStyle.Render("  ✓ photo attached") + dimStyle.Render("  (ctrl+x to remove)"))
	}
	if target, ok := a.workflow.Target(); ok && target == enhance.SummaryTarget {
		sb.WriteString("\n\n" + a.spinner.View() + " Enhancing summary...")
	}
	return sb.String()
}

func (a *App) skillsView(accent lipgloss.Color) string {
	var sb strings.Builder
	label := dimStyle
	if !a.skillListFocus {
		label = lipgloss.NewStyle().Bold(true).Foreground(accent)
	}
	sb.WriteString(label.Render("Skill Name") + "\n  " + a.skillInput.View() + "\n")
	level := a.skills.PendingLevel()
	sb.WriteString(label.Render(fmt.Sprintf("Level %d/10 ", level)) + levelBar(level, accent) + "\n\n")

	skills := a.skills.Skills()
	if len(skills) == 0 {
		sb.WriteString(dimStyle.Render("No skills yet"))
		return sb.String()
	}
	for i, s := range skills {
		marker := "  "
		name := s.Name
		if a.skillListFocus && i == a.skillIdx {
			marker = "› "
			name = selectStyle.Render(name)
		}
		sb.WriteString(fmt.Sprintf("%s%-20s %s\n", marker, name, levelBar(s.Level, accent)))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func levelBar(level int, accent lipgloss.Color) string {
	level = min(max(level, 0), types.MaxSkillLevel)
	filled := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", level))
	return filled + dimStyle.Render(strings.Repeat("░", types.MaxSkillLevel-level))
}

func (a *App) experienceView(accent lipgloss.Color) string {
	entries := a.experience.Entries()
	if len(entries) == 0 {
		return dimStyle.Render("No experience yet. Press ctrl+a to add an entry.")
	}

	var sb strings.Builder
	for i, e := range entries {
		marker := "  "
		line := fmt.Sprintf("%s at %s", orPlaceholder(e.JobTitle, preview.PlaceholderJobTitle), orPlaceholder(e.Company, preview.PlaceholderCompany))
		if i == a.expIdx {
			marker = "› "
			line = selectStyle.Render(line)
		}
		if a.workflow.IsEnhancing(e.ID) {
			line += " " + a.spinner.View() + " enhancing"
		}
		sb.WriteString(marker + line + "\n")
	}
	sb.WriteString("\n" + a.expForm.view(accent))
	return sb.String()
}

func (a *App) educationView(accent lipgloss.Color) string {
	entries := a.education.Entries()
	if len(entries) == 0 {
		return dimStyle.Render("No education yet. Press ctrl+a to add an entry.")
	}

	var sb strings.Builder
	for i, e := range entries {
		marker := "  "
		line := fmt.Sprintf("%s, %s", orPlaceholder(e.Degree, preview.PlaceholderDegree), orPlaceholder(e.Institution, preview.PlaceholderInstitution))
		if i == a.eduIdx {
			marker = "› "
			line = selectStyle.Render(line)
		}
		sb.WriteString(marker + line + "\n")
	}
	sb.WriteString("\n" + a.eduForm.view(accent))
	return sb.String()
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
