package tui

import (
	"github.com/IMPERIALX7/cosmic-resume/internal/enhance"
	tea "github.com/charmbracelet/bubbletea"
)

// documentChangedMsg is sent after a session commit
type documentChangedMsg struct{}

// enhanceDoneMsg carries a finished enhancement request
type enhanceDoneMsg struct {
	req *enhance.Request
}

// exportDoneMsg carries the result of an export
type exportDoneMsg struct {
	path string
	err  error
}

// waitForRequest blocks until req completes. Enhancement requests are
// never cancelled, so this always returns.
func waitForRequest(req *enhance.Request) tea.Cmd {
	return func() tea.Msg {
		<-req.Done()
		return enhanceDoneMsg{req: req}
	}
}
