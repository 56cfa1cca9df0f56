// Package tui is the interactive terminal front end of the resume wizard.
//
// It follows the bubbletea model/update/view loop. Session commits and
// finished background work arrive as messages, so all UI state is only
// touched from Update.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/IMPERIALX7/cosmic-resume/internal/editor"
	"github.com/IMPERIALX7/cosmic-resume/internal/enhance"
	"github.com/IMPERIALX7/cosmic-resume/internal/export"
	"github.com/IMPERIALX7/cosmic-resume/internal/preview"
	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"github.com/IMPERIALX7/cosmic-resume/internal/wizard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	photoKey = "photo"

	defaultWidth  = 110
	defaultHeight = 36
)

// Deps are the collaborators the wizard drives
type Deps struct {
	Session  *session.Session
	Workflow *enhance.Workflow
	// Exporter may be nil, which disables the export key
	Exporter  *export.Exporter
	OutputDir string
	// PreviewStyle is a glamour standard style; empty means dark
	PreviewStyle string
	AIEnabled    bool
	Logger       *zap.Logger
	NewID        editor.IDFunc
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithContext sets the context passed to enhancement and export calls
func WithContext(ctx context.Context) AppOption {
	return func(a *App) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// App is the main application model
type App struct {
	ctx          context.Context
	session      *session.Session
	workflow     *enhance.Workflow
	exporter     *export.Exporter
	outputDir    string
	previewStyle string
	aiEnabled    bool
	logger       *zap.Logger

	nav        *wizard.Navigator
	personal   *editor.PersonalEditor
	skills     *editor.SkillsEditor
	experience *editor.ExperienceEditor
	education  *editor.EducationEditor

	personalForm form

	skillInput     textinput.Model
	skillListFocus bool
	skillIdx       int

	expForm form
	expID   string
	expIdx  int

	eduForm form
	eduID   string
	eduIdx  int

	changes     chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
	unsubscribe func()

	spinner        spinner.Model
	request        *enhance.Request
	optionsRequest bool
	exporting      bool
	notice         string
	noticeErr      bool

	renderer    *preview.TerminalRenderer
	previewText string

	width  int
	height int
}

// NewApp creates the wizard over deps.Session
func NewApp(deps Deps, opts ...AppOption) (*App, error) {
	if deps.Session == nil {
		return nil, errors.New("tui: session is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	wf := deps.Workflow
	if wf == nil {
		wf = enhance.NewWorkflow(enhance.NewService(nil, logger), deps.Session, logger)
	}
	style := deps.PreviewStyle
	if style == "" {
		style = "dark"
	}

	a := &App{
		ctx:          context.Background(),
		session:      deps.Session,
		workflow:     wf,
		exporter:     deps.Exporter,
		outputDir:    deps.OutputDir,
		previewStyle: style,
		aiEnabled:    deps.AIEnabled,
		logger:       logger,
		nav:          wizard.NewNavigator(),
		personal:     editor.NewPersonalEditor(deps.Session),
		skills:       editor.NewSkillsEditor(deps.Session, deps.NewID),
		experience:   editor.NewExperienceEditor(deps.Session, deps.NewID),
		education:    editor.NewEducationEditor(deps.Session, deps.NewID),
		personalForm: newPersonalForm(),
		skillInput:   newSkillInput(),
		expForm:      newExperienceForm(),
		eduForm:      newEducationForm(),
		changes:      make(chan struct{}, 1),
		done:         make(chan struct{}),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:        defaultWidth,
		height:       defaultHeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	a.unsubscribe = a.session.Subscribe(func(types.Document) {
		select {
		case a.changes <- struct{}{}:
		default:
		}
	})
	if err := a.resize(); err != nil {
		a.Close()
		return nil, err
	}
	a.syncFromSession()
	return a, nil
}

// Close stops listening to the session. Safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.unsubscribe()
		close(a.done)
	})
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.waitForChange(), a.focusStep(), textinput.Blink)
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if err := a.resize(); err != nil {
			a.setError(err.Error())
		}
		a.renderPreview(a.session.Snapshot())
		return a, nil

	case documentChangedMsg:
		a.syncFromSession()
		return a, a.waitForChange()

	case enhanceDoneMsg:
		a.handleEnhanceDone(msg)
		return a, nil

	case exportDoneMsg:
		a.handleExportDone(msg)
		return a, nil

	case spinner.TickMsg:
		if !a.busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.updateFocused(msg)
}

func (a *App) waitForChange() tea.Cmd {
	changes, done := a.changes, a.done
	return func() tea.Msg {
		select {
		case <-changes:
			return documentChangedMsg{}
		case <-done:
			return nil
		}
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		a.Close()
		return a, tea.Quit
	}
	if a.workflow.Modal().Open {
		return a, a.handleModalKey(msg)
	}

	switch msg.String() {
	case "ctrl+n":
		return a, a.moveStep(a.nav.Advance())
	case "ctrl+p":
		return a, a.moveStep(a.nav.Retreat())
	case "ctrl+e":
		return a, a.startExport()
	}

	switch a.nav.Current() {
	case wizard.StepPersonal:
		return a, a.handlePersonalKey(msg)
	case wizard.StepSkills:
		return a, a.handleSkillsKey(msg)
	case wizard.StepExperience:
		return a, a.handleExperienceKey(msg)
	case wizard.StepEducation:
		return a, a.handleEducationKey(msg)
	}
	return a, nil
}

// updateFocused forwards non-key messages such as cursor blinks
func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.nav.Current() {
	case wizard.StepPersonal:
		_, _, cmd = a.personalForm.update(msg)
	case wizard.StepSkills:
		a.skillInput, cmd = a.skillInput.Update(msg)
	case wizard.StepExperience:
		_, _, cmd = a.expForm.update(msg)
	case wizard.StepEducation:
		_, _, cmd = a.eduForm.update(msg)
	}
	return cmd
}

func (a *App) moveStep(changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	a.clearNotice()
	return a.focusStep()
}

// focusStep focuses the first input of the active step
func (a *App) focusStep() tea.Cmd {
	a.personalForm.blur()
	a.expForm.blur()
	a.eduForm.blur()
	a.skillInput.Blur()
	a.skillListFocus = false

	switch a.nav.Current() {
	case wizard.StepPersonal:
		return a.personalForm.focusIndex(0)
	case wizard.StepSkills:
		return a.skillInput.Focus()
	case wizard.StepExperience:
		return a.expForm.focusIndex(0)
	case wizard.StepEducation:
		return a.eduForm.focusIndex(0)
	}
	return nil
}

// syncFromSession pulls the committed document into every form and the preview
func (a *App) syncFromSession() {
	doc := a.session.Snapshot()

	p := doc.Personal
	for key, value := range map[editor.Field]string{
		editor.FieldName:     p.Name,
		editor.FieldTitle:    p.Title,
		editor.FieldEmail:    p.Email,
		editor.FieldPhone:    p.Phone,
		editor.FieldLocation: p.Location,
		editor.FieldLinkedIn: p.LinkedIn,
		editor.FieldSummary:  p.Summary,
	} {
		a.personalForm.setValue(string(key), value)
	}

	a.skillIdx = clampIndex(a.skillIdx, len(doc.Skills))
	if len(doc.Skills) == 0 {
		a.skillListFocus = false
	}

	a.expID, a.expIdx = reselect(experienceIDs(doc.Experience), a.expID, a.expIdx)
	a.loadExperienceForm(doc)
	a.eduID, a.eduIdx = reselect(educationIDs(doc.Education), a.eduID, a.eduIdx)
	a.loadEducationForm(doc)

	a.renderPreview(doc)
}

func (a *App) resize() error {
	pw := a.previewWidth()
	r, err := preview.NewTerminalRenderer(pw-4, a.previewStyle)
	if err != nil {
		return err
	}
	a.renderer = r

	fw := a.formWidth() - 6
	a.personalForm.setWidth(fw)
	a.expForm.setWidth(fw)
	a.eduForm.setWidth(fw)
	a.skillInput.Width = max(10, fw)
	return nil
}

func (a *App) previewWidth() int {
	return max(30, a.width/2-2)
}

func (a *App) formWidth() int {
	return max(30, a.width-a.previewWidth()-6)
}

func (a *App) renderPreview(doc types.Document) {
	if a.renderer == nil {
		return
	}
	out, err := a.renderer.Render(preview.Project(doc))
	if err != nil {
		a.logger.Warn("preview render failed", zap.Error(err))
		a.previewText = errorStyle.Render(err.Error())
		return
	}
	a.previewText = out
}

func (a *App) busy() bool {
	return a.workflow.Pending() || a.exporting
}

// startEnhance launches one enhancement and waits for it in the background
func (a *App) startEnhance(start func(ctx context.Context) (*enhance.Request, error), options bool) tea.Cmd {
	req, err := start(a.ctx)
	if err != nil {
		a.setError(refusalNotice(err))
		return nil
	}
	a.request = req
	a.optionsRequest = options
	a.setNotice("Enhancing with AI...")
	return tea.Batch(a.spinner.Tick, waitForRequest(req))
}

func refusalNotice(err error) string {
	switch {
	case errors.Is(err, enhance.ErrBusy):
		return "An enhancement is already running"
	case errors.Is(err, enhance.ErrEmptySource):
		return "Write some text first, then enhance it"
	case errors.Is(err, enhance.ErrUnknownTarget):
		return "Select an entry to enhance"
	}
	return err.Error()
}

func (a *App) handleEnhanceDone(msg enhanceDoneMsg) {
	options := a.optionsRequest && a.request == msg.req
	if a.request == msg.req {
		a.request = nil
		a.optionsRequest = false
	}

	switch outcome := msg.req.Outcome(); {
	case options && outcome == enhance.OutcomeResolved:
		a.setNotice("Pick a summary with 1-3, r to revert, esc to close")
	case options:
		a.setError("No suggestions available right now")
	case outcome == enhance.OutcomeResolved:
		a.setSuccess("Enhanced with AI")
	case outcome == enhance.OutcomeSuperseded:
		a.setNotice("Entry was removed before the enhancement finished")
	default:
		if a.aiEnabled {
			a.setError("Enhancement failed, your text was kept")
		} else {
			a.setError("AI enhancement is disabled: set GEMINI_API_KEY")
		}
	}
}

func (a *App) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	modal := a.workflow.Modal()
	switch key := msg.String(); key {
	case "esc":
		a.workflow.Close()
		a.clearNotice()
	case "r":
		if err := a.workflow.Revert(); err == nil {
			a.setNotice("Summary reverted")
		}
	case "1", "2", "3":
		i := int(key[0] - '1')
		if i >= len(modal.Options) {
			return nil
		}
		if err := a.workflow.SelectOption(i); err == nil {
			a.setSuccess(fmt.Sprintf("Summary set to %q", modal.Options[i].Title))
		}
	}
	return nil
}

func (a *App) startExport() tea.Cmd {
	if a.exporter == nil {
		a.setError("Export is not configured")
		return nil
	}
	if a.exporting || a.exporter.Busy() {
		a.setError("An export is already running")
		return nil
	}

	a.exporting = true
	a.setNotice("Exporting...")
	ctx, exp, dir := a.ctx, a.exporter, a.outputDir
	doc := a.session.Snapshot()
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		path, err := exp.Export(ctx, doc, dir)
		return exportDoneMsg{path: path, err: err}
	})
}

func (a *App) handleExportDone(msg exportDoneMsg) {
	a.exporting = false
	if msg.err != nil {
		a.logger.Warn("export failed", zap.Error(msg.err))
		a.setError("Export failed: " + msg.err.Error())
		return
	}
	a.setSuccess("Saved " + msg.path)
}

func (a *App) setNotice(s string) {
	a.notice, a.noticeErr = s, false
}

func (a *App) setError(s string) {
	a.notice, a.noticeErr = s, true
}

func (a *App) setSuccess(s string) {
	a.notice, a.noticeErr = okStyle.Render(s), false
}

func (a *App) clearNotice() {
	a.notice, a.noticeErr = "", false
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	return min(i, n-1)
}

// reselect keeps the selection on the same id when entries move, falling
// back to the nearest index when it disappeared
func reselect(ids []string, id string, idx int) (string, int) {
	for i, candidate := range ids {
		if candidate == id {
			return id, i
		}
	}
	if len(ids) == 0 {
		return "", 0
	}
	idx = clampIndex(idx, len(ids))
	return ids[idx], idx
}
