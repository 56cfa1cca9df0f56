package editor

import (
	"testing"

	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsEditor_AddTrimsAndAppends(t *testing.T) {
	s := newTestSession()
	e := NewSkillsEditor(s, seqIDs())

	e.SetPendingName("Docker")
	_, ok := e.Add()
	require.True(t, ok)

	e.SetPendingName("  Go  ")
	e.SetPendingLevel(7)
	skill, ok := e.Add()
	require.True(t, ok)

	assert.Equal(t, types.Skill{ID: "skill-2", Name: "Go", Level: 7}, skill)
	want := []types.Skill{
		{ID: "skill-1", Name: "Docker", Level: types.DefaultSkillLevel},
		{ID: "skill-2", Name: "Go", Level: 7},
	}
	if diff := cmp.Diff(want, s.Snapshot().Skills); diff != "" {
		t.Errorf("skills mismatch (-want +got):\n%s", diff)
	}
}

func TestSkillsEditor_AddResetsPendingInput(t *testing.T) {
	e := NewSkillsEditor(newTestSession(), seqIDs())
	e.SetPendingName("Go")
	e.SetPendingLevel(9)

	_, ok := e.Add()
	require.True(t, ok)

	assert.Empty(t, e.PendingName())
	assert.Equal(t, types.DefaultSkillLevel, e.PendingLevel())
}

func TestSkillsEditor_AddRejectsBlankName(t *testing.T) {
	s := newTestSession()
	e := NewSkillsEditor(s, seqIDs())
	e.SetPendingName("  ")
	e.SetPendingLevel(8)

	_, ok := e.Add()

	assert.False(t, ok)
	assert.Empty(t, s.Snapshot().Skills)
	assert.Equal(t, uint64(0), s.Version())
	assert.Equal(t, 8, e.PendingLevel())
}

func TestSkillsEditor_SetPendingLevelClamps(t *testing.T) {
	e := NewSkillsEditor(newTestSession(), nil)

	e.SetPendingLevel(0)
	assert.Equal(t, types.MinSkillLevel, e.PendingLevel())

	e.SetPendingLevel(42)
	assert.Equal(t, types.MaxSkillLevel, e.PendingLevel())
}

func TestSkillsEditor_RemoveIsIdempotent(t *testing.T) {
	s := newTestSession()
	e := NewSkillsEditor(s, seqIDs())
	e.SetPendingName("Go")
	e.Add()
	e.SetPendingName("SQL")
	e.Add()

	assert.True(t, e.Remove("skill-1"))
	after := s.Snapshot().Skills
	assert.False(t, e.Remove("skill-1"))

	if diff := cmp.Diff(after, s.Snapshot().Skills); diff != "" {
		t.Errorf("second remove changed skills (-want +got):\n%s", diff)
	}
	assert.Equal(t, []types.Skill{{ID: "skill-2", Name: "SQL", Level: types.DefaultSkillLevel}}, after)
}

func TestSkillsEditor_AddThenRemoveRestoresList(t *testing.T) {
	s := newTestSession()
	e := NewSkillsEditor(s, seqIDs())
	e.SetPendingName("Go")
	e.Add()
	before := s.Snapshot().Skills

	e.SetPendingName("Kubernetes")
	added, _ := e.Add()
	e.Remove(added.ID)

	if diff := cmp.Diff(before, s.Snapshot().Skills); diff != "" {
		t.Errorf("skills mismatch (-want +got):\n%s", diff)
	}
}

func TestNewID_IsUniqueAndPrefixed(t *testing.T) {
	a := NewID(SkillPrefix)
	b := NewID(SkillPrefix)

	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^skill-[0-9a-f-]{36}$`, a)
}
