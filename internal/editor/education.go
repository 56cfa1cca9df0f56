package editor

import (
	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// EducationPatch lists the fields to replace on an entry; nil fields are kept
type EducationPatch struct {
	Degree      *string
	Institution *string
	StartDate   *string
	EndDate     *string
}

// EducationEditor edits the education history, most recent first
type EducationEditor struct {
	session *session.Session
	newID   IDFunc
}

// NewEducationEditor creates an editor bound to s. A nil newID uses NewID.
func NewEducationEditor(s *session.Session, newID IDFunc) *EducationEditor {
	if newID == nil {
		newID = NewID
	}
	return &EducationEditor{session: s, newID: newID}
}

// Add prepends a blank entry and returns it
func (e *EducationEditor) Add() types.Education {
	entry := types.Education{ID: e.newID(EducationPrefix)}
	e.session.Update(func(doc *types.Document) bool {
		doc.Education = append([]types.Education{entry}, doc.Education...)
		return true
	})
	return entry
}

// Update applies patch to the entry with the given id
func (e *EducationEditor) Update(id string, patch EducationPatch) bool {
	return e.session.Update(func(doc *types.Document) bool {
		for i := range doc.Education {
			edu := &doc.Education[i]
			if edu.ID != id {
				continue
			}
			changed := apply(&edu.Degree, patch.Degree)
			changed = apply(&edu.Institution, patch.Institution) || changed
			changed = apply(&edu.StartDate, patch.StartDate) || changed
			changed = apply(&edu.EndDate, patch.EndDate) || changed
			return changed
		}
		return false
	})
}

// Remove deletes the entry with the given id
func (e *EducationEditor) Remove(id string) bool {
	return e.session.Update(func(doc *types.Document) bool {
		kept := make([]types.Education, 0, len(doc.Education))
		for _, edu := range doc.Education {
			if edu.ID != id {
				kept = append(kept, edu)
			}
		}
		if len(kept) == len(doc.Education) {
			return false
		}
		doc.Education = kept
		return true
	})
}

// Entries returns the current education history
func (e *EducationEditor) Entries() []types.Education {
	return e.session.Snapshot().Education
}
