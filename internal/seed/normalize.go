package seed

import (
	"strings"

	"github.com/IMPERIALX7/cosmic-resume/internal/editor"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// Normalize makes a loaded document safe for the editors: every collection
// item gets a unique id and skill levels fall in range. Text is left as
// written apart from trimming dates.
func Normalize(doc *types.Document, newID editor.IDFunc) {
	if newID == nil {
		newID = editor.NewID
	}
	seen := make(map[string]struct{})
	ensureID := func(id *string, prefix string) {
		*id = strings.TrimSpace(*id)
		if _, dup := seen[*id]; *id == "" || dup {
			*id = newID(prefix)
		}
		seen[*id] = struct{}{}
	}

	if doc.Skills == nil {
		doc.Skills = []types.Skill{}
	}
	for i := range doc.Skills {
		s := &doc.Skills[i]
		ensureID(&s.ID, editor.SkillPrefix)
		s.Level = NormalizeLevel(s.Level)
	}

	if doc.Experience == nil {
		doc.Experience = []types.Experience{}
	}
	for i := range doc.Experience {
		e := &doc.Experience[i]
		ensureID(&e.ID, editor.ExperiencePrefix)
		e.StartDate = strings.TrimSpace(e.StartDate)
		e.EndDate = strings.TrimSpace(e.EndDate)
	}

	if doc.Education == nil {
		doc.Education = []types.Education{}
	}
	for i := range doc.Education {
		e := &doc.Education[i]
		ensureID(&e.ID, editor.EducationPrefix)
		e.StartDate = strings.TrimSpace(e.StartDate)
		e.EndDate = strings.TrimSpace(e.EndDate)
	}
}

// NormalizeLevel maps a missing level to the default and clamps the rest
func NormalizeLevel(level int) int {
	switch {
	case level == 0:
		return types.DefaultSkillLevel
	case level < types.MinSkillLevel:
		return types.MinSkillLevel
	case level > types.MaxSkillLevel:
		return types.MaxSkillLevel
	}
	return level
}
