package editor

import (
	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// ExperiencePatch lists the fields to replace on an entry; nil fields are kept
type ExperiencePatch struct {
	JobTitle    *string
	Company     *string
	StartDate   *string
	EndDate     *string
	Description *string
}

// ExperienceEditor edits the work history, most recent first
type ExperienceEditor struct {
	session *session.Session
	newID   IDFunc
}

// NewExperienceEditor creates an editor bound to s. A nil newID uses NewID.
func NewExperienceEditor(s *session.Session, newID IDFunc) *ExperienceEditor {
	if newID == nil {
		newID = NewID
	}
	return &ExperienceEditor{session: s, newID: newID}
}

// Add prepends a blank entry and returns it
func (e *ExperienceEditor) Add() types.Experience {
	entry := types.Experience{ID: e.newID(ExperiencePrefix)}
	e.session.Update(func(doc *types.Document) bool {
		doc.Experience = append([]types.Experience{entry}, doc.Experience...)
		return true
	})
	return entry
}

// Update applies patch to the entry with the given id. It reports whether
// anything changed; unknown ids leave the document untouched.
func (e *ExperienceEditor) Update(id string, patch ExperiencePatch) bool {
	return e.session.Update(func(doc *types.Document) bool {
		for i := range doc.Experience {
			exp := &doc.Experience[i]
			if exp.ID != id {
				continue
			}
			changed := apply(&exp.JobTitle, patch.JobTitle)
			changed = apply(&exp.Company, patch.Company) || changed
			changed = apply(&exp.StartDate, patch.StartDate) || changed
			changed = apply(&exp.EndDate, patch.EndDate) || changed
			changed = apply(&exp.Description, patch.Description) || changed
			return changed
		}
		return false
	})
}

// Remove deletes the entry with the given id
func (e *ExperienceEditor) Remove(id string) bool {
	return e.session.Update(func(doc *types.Document) bool {
		kept := make([]types.Experience, 0, len(doc.Experience))
		for _, exp := range doc.Experience {
			if exp.ID != id {
				kept = append(kept, exp)
			}
		}
		if len(kept) == len(doc.Experience) {
			return false
		}
		doc.Experience = kept
		return true
	})
}

// Entries returns the current work history
func (e *ExperienceEditor) Entries() []types.Experience {
	return e.session.Snapshot().Experience
}
