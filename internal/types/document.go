// Package types provides type definitions for the resume document edited by the wizard.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill level bounds and the level a new skill starts at.
const (
	MinSkillLevel     = 1
	MaxSkillLevel     = 10
	DefaultSkillLevel = 5
)

// PersonalInfo holds the singleton header fields of a resume.
// Photo is a data URL ("data:image/png;base64,...") or empty.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Summary  string `json:"summary"`
	Photo    string `json:"photo,omitempty"`
}

// Skill is a named skill with a self-assessed level in [MinSkillLevel, MaxSkillLevel]
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Experience is a single job entry. Dates use the YYYY-MM form; an empty
// EndDate means the position is current.
type Experience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Education is a single degree entry
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Document is the complete editable resume
type Document struct {
	Personal   PersonalInfo `json:"personal"`
	Skills     []Skill      `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// NewDocument returns an empty document with non-nil collections
func NewDocument() Document {
	return Document{
		Skills:     []Skill{},
		Experience: []Experience{},
		Education:  []Education{},
	}
}

// Clone returns a deep copy of the document. Collections of the copy never
// share backing arrays with the receiver.
func (d Document) Clone() Document {
	out := d
	out.Skills = append(make([]Skill, 0, len(d.Skills)), d.Skills...)
	out.Experience = append(make([]Experience, 0, len(d.Experience)), d.Experience...)
	out.Education = append(make([]Education, 0, len(d.Education)), d.Education...)
	return out
}

// FindExperience returns the experience entry with the given id
func (d Document) FindExperience(id string) (Experience, bool) {
	for _, exp := range d.Experience {
		if exp.ID == id {
			return exp, true
		}
	}
	return Experience{}, false
}
