package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNavigator(t *testing.T) {
	n := NewNavigator()

	assert.Equal(t, StepPersonal, n.Current())
	assert.True(t, n.IsFirst())
	assert.False(t, n.IsLast())
	assert.Equal(t, 1, n.Theme())
}

func TestAdvance_SaturatesAtLastStep(t *testing.T) {
	n := NewNavigator()
	for i := 0; i < TotalSteps-1; i++ {
		assert.True(t, n.Advance())
	}
	assert.Equal(t, StepEducation, n.Current())

	assert.False(t, n.Advance())
	assert.Equal(t, StepEducation, n.Current())
	assert.True(t, n.IsLast())
}

func TestRetreat_SaturatesAtFirstStep(t *testing.T) {
	n := NewNavigator()

	assert.False(t, n.Retreat())
	assert.Equal(t, StepPersonal, n.Current())
	assert.Equal(t, 1, n.Theme())
}

func TestAdvanceThenRetreat_RoundTripsFromInteriorSteps(t *testing.T) {
	for _, start := range []Step{StepSkills, StepExperience} {
		n := NewNavigator()
		for n.Current() != start {
			n.Advance()
		}
		theme := n.Theme()

		n.Advance()
		n.Retreat()

		assert.Equal(t, start, n.Current())
		assert.Equal(t, theme, n.Theme())
	}
}

func TestTheme_WrapsBothWays(t *testing.T) {
	n := &Navigator{current: StepSkills, theme: TotalThemes}
	n.Advance()
	assert.Equal(t, 1, n.Theme())

	n.Retreat()
	assert.Equal(t, TotalThemes, n.Theme())
}

func TestProgress(t *testing.T) {
	n := NewNavigator()
	n.Advance()
	n.Advance()

	assert.Equal(t, []StepState{StepDone, StepDone, StepActive, StepPending}, n.Progress())
}

func TestStepString(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{StepPersonal, "Personal"},
		{StepSkills, "Skills"},
		{StepExperience, "Experience"},
		{StepEducation, "Education"},
		{Step(9), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.String())
		})
	}
}
