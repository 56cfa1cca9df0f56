package editor

import (
	"strings"

	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// SkillsEditor edits the skill list and owns the pending new-skill input
type SkillsEditor struct {
	session      *session.Session
	newID        IDFunc
	pendingName  string
	pendingLevel int
}

// NewSkillsEditor creates an editor bound to s. A nil newID uses NewID.
func NewSkillsEditor(s *session.Session, newID IDFunc) *SkillsEditor {
	if newID == nil {
		newID = NewID
	}
	return &SkillsEditor{session: s, newID: newID, pendingLevel: types.DefaultSkillLevel}
}

// PendingName returns the text typed for the next skill
func (e *SkillsEditor) PendingName() string {
	return e.pendingName
}

// PendingLevel returns the level chosen for the next skill
func (e *SkillsEditor) PendingLevel() int {
	return e.pendingLevel
}

// SetPendingName sets the text for the next skill
func (e *SkillsEditor) SetPendingName(name string) {
	e.pendingName = name
}

// SetPendingLevel sets the level for the next skill, clamped to the valid range
func (e *SkillsEditor) SetPendingLevel(level int) {
	e.pendingLevel = clampLevel(level)
}

// Add appends the pending skill. A name that is blank after trimming is
// ignored. On success the pending input resets to its defaults.
func (e *SkillsEditor) Add() (types.Skill, bool) {
	name := strings.TrimSpace(e.pendingName)
	if name == "" {
		return types.Skill{}, false
	}

	skill := types.Skill{
		ID:    e.newID(SkillPrefix),
		Name:  name,
		Level: clampLevel(e.pendingLevel),
	}
	e.session.Update(func(doc *types.Document) bool {
		doc.Skills = append(doc.Skills, skill)
		return true
	})

	e.pendingName = ""
	e.pendingLevel = types.DefaultSkillLevel
	return skill, true
}

// Remove deletes the skill with the given id. Unknown ids are ignored.
func (e *SkillsEditor) Remove(id string) bool {
	return e.session.Update(func(doc *types.Document) bool {
		kept := make([]types.Skill, 0, len(doc.Skills))
		for _, skill := range doc.Skills {
			if skill.ID != id {
				kept = append(kept, skill)
			}
		}
		if len(kept) == len(doc.Skills) {
			return false
		}
		doc.Skills = kept
		return true
	})
}

// Skills returns the current skill list
func (e *SkillsEditor) Skills() []types.Skill {
	return e.session.Snapshot().Skills
}

func clampLevel(level int) int {
	return max(types.MinSkillLevel, min(types.MaxSkillLevel, level))
}
