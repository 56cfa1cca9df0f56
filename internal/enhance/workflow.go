package enhance

import (
	"context"
	"strings"
	"sync"

	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"go.uber.org/zap"
)

// Outcome is how a Request finished
type Outcome int

// Outcome constants
const (
	// OutcomePending means the collaborator has not answered yet
	OutcomePending Outcome = iota
	// OutcomeResolved means new text was committed, or options were produced
	OutcomeResolved
	// OutcomeFailed means the collaborator gave nothing usable; the document is unchanged
	OutcomeFailed
	// OutcomeSuperseded means the target entry was removed before completion
	OutcomeSuperseded
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeResolved:
		return "resolved"
	case OutcomeFailed:
		return "failed"
	case OutcomeSuperseded:
		return "superseded"
	}
	return "unknown"
}

// Target identifies what a Request rewrites
type Target struct {
	Kind Kind
	// ID is the experience entry id; empty for the summary
	ID string
}

// SummaryTarget is the target of summary enhancements
var SummaryTarget = Target{Kind: KindSummary}

// Request is the record of one in-flight enhancement. It completes exactly
// once; Done is closed when the outcome is known.
type Request struct {
	Target Target

	original string
	done     chan struct{}
	outcome  Outcome
	text     string
	options  []types.SummaryOption
}

func newRequest(target Target, original string) *Request {
	return &Request{Target: target, original: original, done: make(chan struct{})}
}

// Done is closed once the request has an outcome
func (r *Request) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the request completes or ctx ends. Abandoning the wait
// does not abandon the request.
func (r *Request) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-r.done:
		return r.outcome, nil
	case <-ctx.Done():
		return OutcomePending, ctx.Err()
	}
}

// Outcome returns the outcome so far
func (r *Request) Outcome() Outcome {
	select {
	case <-r.done:
		return r.outcome
	default:
		return OutcomePending
	}
}

// Original returns the source text captured when the request started
func (r *Request) Original() string {
	return r.original
}

// Text returns the collaborator's text once the request completed
func (r *Request) Text() string {
	<-r.done
	return r.text
}

// Options returns the suggested summaries of an options request
func (r *Request) Options() []types.SummaryOption {
	<-r.done
	return r.options
}

// SummaryModal is the UI state of the summary options chooser
type SummaryModal struct {
	Open     bool
	Loading  bool
	Options  []types.SummaryOption
	Original string
}

// Workflow runs enhancements against the shared session. At most one
// enhancement of any kind is pending at a time; there is no cancellation.
type Workflow struct {
	enhancer Enhancer
	session  *session.Session
	logger   *zap.Logger

	mu      sync.Mutex
	pending *Request
	modal   SummaryModal
}

// NewWorkflow creates a workflow committing into s
func NewWorkflow(enhancer Enhancer, s *session.Session, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{enhancer: enhancer, session: s, logger: logger}
}

// Pending reports whether an enhancement is running
func (w *Workflow) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending != nil
}

// Target returns the target of the running enhancement
func (w *Workflow) Target() (Target, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return Target{}, false
	}
	return w.pending.Target, true
}

// IsEnhancing reports whether the given experience entry is the pending target
func (w *Workflow) IsEnhancing(id string) bool {
	target, ok := w.Target()
	return ok && target.Kind == KindExperience && target.ID == id
}

// Modal returns a copy of the summary chooser state
func (w *Workflow) Modal() SummaryModal {
	w.mu.Lock()
	defer w.mu.Unlock()
	m := w.modal
	m.Options = append([]types.SummaryOption(nil), w.modal.Options...)
	return m
}

// EnhanceExperience rewrites the description of the experience entry id.
// The result commits only if the entry still exists when it arrives.
func (w *Workflow) EnhanceExperience(ctx context.Context, id string) (*Request, error) {
	exp, ok := w.session.Snapshot().FindExperience(id)
	if !ok {
		return nil, ErrUnknownTarget
	}
	return w.startRewrite(ctx, Target{Kind: KindExperience, ID: id}, exp.Description)
}

// EnhanceSummary rewrites the professional summary in place
func (w *Workflow) EnhanceSummary(ctx context.Context) (*Request, error) {
	return w.startRewrite(ctx, SummaryTarget, w.session.Snapshot().Personal.Summary)
}

func (w *Workflow) startRewrite(ctx context.Context, target Target, source string) (*Request, error) {
	req, err := w.begin(target, source)
	if err != nil {
		return nil, err
	}

	// Detached from ctx: a started request always runs to completion.
	callCtx := context.WithoutCancel(ctx)
	go func() {
		text := w.enhancer.Enhance(callCtx, source, target.Kind)
		w.finish(req, text, nil, w.commitRewrite(target, source, text))
	}()
	return req, nil
}

// SuggestSummaryOptions opens the summary chooser and fetches options. The
// document is not touched until SelectOption or Revert.
func (w *Workflow) SuggestSummaryOptions(ctx context.Context) (*Request, error) {
	original := w.session.Snapshot().Personal.Summary
	req, err := w.begin(SummaryTarget, original)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.modal = SummaryModal{Open: true, Loading: true, Original: original}
	w.mu.Unlock()

	callCtx := context.WithoutCancel(ctx)
	go func() {
		options := w.enhancer.SuggestSummaries(callCtx, original)
		if len(options) > MaxSummaryOptions {
			options = options[:MaxSummaryOptions]
		}
		outcome := OutcomeResolved
		if len(options) == 0 {
			outcome = OutcomeFailed
		}

		w.mu.Lock()
		w.modal.Loading = false
		w.modal.Options = options
		w.mu.Unlock()

		w.finish(req, "", options, outcome)
	}()
	return req, nil
}

// SelectOption commits option i of the open chooser and closes it
func (w *Workflow) SelectOption(i int) error {
	w.mu.Lock()
	if !w.modal.Open || w.modal.Loading || i < 0 || i >= len(w.modal.Options) {
		w.mu.Unlock()
		return ErrNoOptions
	}
	content := w.modal.Options[i].Content
	w.modal = SummaryModal{}
	w.mu.Unlock()

	w.setSummary(content)
	return nil
}

// Revert commits the summary captured when the chooser opened and closes it
func (w *Workflow) Revert() error {
	w.mu.Lock()
	if !w.modal.Open || w.modal.Loading {
		w.mu.Unlock()
		return ErrNoOptions
	}
	original := w.modal.Original
	w.modal = SummaryModal{}
	w.mu.Unlock()

	w.setSummary(original)
	return nil
}

// Close dismisses the chooser without committing anything
func (w *Workflow) Close() {
	w.mu.Lock()
	w.modal.Open = false
	w.mu.Unlock()
}

func (w *Workflow) begin(target Target, source string) (*Request, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptySource
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		return nil, ErrBusy
	}
	req := newRequest(target, source)
	w.pending = req
	w.logger.Debug("enhancement started", zap.String("kind", string(target.Kind)), zap.String("target", target.ID))
	return req, nil
}

func (w *Workflow) finish(req *Request, text string, options []types.SummaryOption, outcome Outcome) {
	w.mu.Lock()
	if w.pending == req {
		w.pending = nil
	}
	w.mu.Unlock()

	req.text = text
	req.options = options
	req.outcome = outcome
	w.logger.Debug("enhancement finished",
		zap.String("kind", string(req.Target.Kind)),
		zap.String("target", req.Target.ID),
		zap.Stringer("outcome", outcome))
	close(req.done)
}

// commitRewrite merges text into the document. Text identical to the
// source is the collaborator's failure signal.
func (w *Workflow) commitRewrite(target Target, source, text string) Outcome {
	if text == source || strings.TrimSpace(text) == "" {
		return OutcomeFailed
	}

	if target.Kind == KindSummary {
		w.setSummary(text)
		return OutcomeResolved
	}

	found := false
	w.session.Update(func(doc *types.Document) bool {
		for i := range doc.Experience {
			if doc.Experience[i].ID == target.ID {
				found = true
				doc.Experience[i].Description = text
				return true
			}
		}
		return false
	})
	if !found {
		return OutcomeSuperseded
	}
	return OutcomeResolved
}

func (w *Workflow) setSummary(summary string) {
	w.session.Update(func(doc *types.Document) bool {
		if doc.Personal.Summary == summary {
			return false
		}
		doc.Personal.Summary = summary
		return true
	})
}
