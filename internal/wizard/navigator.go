// Package wizard tracks which of the ordered form steps is active.
package wizard

// Step identifies one of the ordered wizard sections
type Step int

// Step constants in display order
const (
	StepPersonal Step = iota + 1
	StepSkills
	StepExperience
	StepEducation
)

const (
	// TotalSteps is the number of wizard steps
	TotalSteps = 4
	// TotalThemes is the number of accent themes cycled during navigation
	TotalThemes = 6
)

var stepNames = map[Step]string{
	StepPersonal:   "Personal",
	StepSkills:     "Skills",
	StepExperience: "Experience",
	StepEducation:  "Education",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Steps returns every step in order
func Steps() []Step {
	return []Step{StepPersonal, StepSkills, StepExperience, StepEducation}
}

// StepState is how the progress bar shows a step relative to the active one
type StepState int

// StepState constants
const (
	StepPending StepState = iota
	StepActive
	StepDone
)

// Navigator is a saturating cursor over the wizard steps. Out-of-range
// moves are clamped silently.
type Navigator struct {
	current Step
	theme   int
}

// NewNavigator starts on the first step with the first theme
func NewNavigator() *Navigator {
	return &Navigator{current: StepPersonal, theme: 1}
}

// Current returns the active step
func (n *Navigator) Current() Step {
	return n.current
}

// Theme returns the accent theme index in [1, TotalThemes]
func (n *Navigator) Theme() int {
	return n.theme
}

// Advance moves to the next step unless already on the last one.
// It reports whether the step changed.
func (n *Navigator) Advance() bool {
	if n.current >= TotalSteps {
		return false
	}
	n.current++
	n.theme = n.theme%TotalThemes + 1
	return true
}

// Retreat moves to the previous step unless already on the first one.
// It reports whether the step changed.
func (n *Navigator) Retreat() bool {
	if n.current <= StepPersonal {
		return false
	}
	n.current--
	if n.theme == 1 {
		n.theme = TotalThemes
	} else {
		n.theme--
	}
	return true
}

// IsFirst reports whether the first step is active
func (n *Navigator) IsFirst() bool {
	return n.current == StepPersonal
}

// IsLast reports whether the last step is active
func (n *Navigator) IsLast() bool {
	return n.current == TotalSteps
}

// Progress returns the display state of every step in order
func (n *Navigator) Progress() []StepState {
	states := make([]StepState, 0, TotalSteps)
	for _, step := range Steps() {
		switch {
		case step == n.current:
			states = append(states, StepActive)
		case step < n.current:
			states = append(states, StepDone)
		default:
			states = append(states, StepPending)
		}
	}
	return states
}
