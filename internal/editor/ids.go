// Package editor provides the per-section editors that mutate the shared resume document.
package editor

import "github.com/google/uuid"

// Identity prefixes for collection items
const (
	SkillPrefix      = "skill"
	ExperiencePrefix = "exp"
	EducationPrefix  = "edu"
)

// IDFunc generates a fresh identity for a new collection item
type IDFunc func(prefix string) string

// NewID returns prefix-<uuid>. Random ids are never reused after removal.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Text returns a pointer to v for use in patches
func Text(v string) *string {
	return &v
}

func apply(dst *string, v *string) bool {
	if v == nil || *dst == *v {
		return false
	}
	*dst = *v
	return true
}
