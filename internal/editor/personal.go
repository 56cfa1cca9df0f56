package editor

import (
	"fmt"

	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// Field names a scalar PersonalInfo field
type Field string

// Field constants
const (
	FieldName     Field = "name"
	FieldTitle    Field = "title"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldLocation Field = "location"
	FieldLinkedIn Field = "linkedin"
	FieldSummary  Field = "summary"
)

// PersonalFields lists the editable text fields in form order
var PersonalFields = []Field{
	FieldName, FieldTitle, FieldEmail, FieldPhone, FieldLocation, FieldLinkedIn, FieldSummary,
}

// Label returns the form label for the field
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Full Name"
	case FieldTitle:
		return "Job Title"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone"
	case FieldLocation:
		return "Location"
	case FieldLinkedIn:
		return "LinkedIn Profile URL"
	case FieldSummary:
		return "Professional Summary"
	}
	return string(f)
}

func fieldRef(p *types.PersonalInfo, f Field) (*string, error) {
	switch f {
	case FieldName:
		return &p.Name, nil
	case FieldTitle:
		return &p.Title, nil
	case FieldEmail:
		return &p.Email, nil
	case FieldPhone:
		return &p.Phone, nil
	case FieldLocation:
		return &p.Location, nil
	case FieldLinkedIn:
		return &p.LinkedIn, nil
	case FieldSummary:
		return &p.Summary, nil
	}
	return nil, fmt.Errorf("unknown personal field %q", f)
}

// PersonalEditor edits the singleton personal section
type PersonalEditor struct {
	session *session.Session
}

// NewPersonalEditor creates an editor bound to s
func NewPersonalEditor(s *session.Session) *PersonalEditor {
	return &PersonalEditor{session: s}
}

// Set replaces one field. Unknown fields return an error and leave the
// document unchanged.
func (e *PersonalEditor) Set(field Field, value string) error {
	var fieldErr error
	e.session.Update(func(doc *types.Document) bool {
		ref, err := fieldRef(&doc.Personal, field)
		if err != nil {
			fieldErr = err
			return false
		}
		return apply(ref, &value)
	})
	return fieldErr
}

// Get returns the current value of a field
func (e *PersonalEditor) Get(field Field) string {
	personal := e.session.Snapshot().Personal
	ref, err := fieldRef(&personal, field)
	if err != nil {
		return ""
	}
	return *ref
}

// Summary returns the current professional summary
func (e *PersonalEditor) Summary() string {
	return e.session.Snapshot().Personal.Summary
}

// AttachImage loads a PNG or JPEG from path and stores it on the
// personal section as an inline data URL.
func (e *PersonalEditor) AttachImage(path string) error {
	dataURL, err := LoadImage(path)
	if err != nil {
		return err
	}
	e.setPhoto(dataURL)
	return nil
}

// RemoveImage clears the stored photo
func (e *PersonalEditor) RemoveImage() {
	e.setPhoto("")
}

func (e *PersonalEditor) setPhoto(dataURL string) {
	e.session.Update(func(doc *types.Document) bool {
		return apply(&doc.Personal.Photo, &dataURL)
	})
}
