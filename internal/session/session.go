// Package session owns the single live resume document shared by the wizard editors.
package session

import (
	"sync"

	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// Listener receives the committed document after every change
type Listener func(doc types.Document)

// Session holds the one live Document. Every mutation copies the current
// document, applies the change to the copy and replaces the document
// wholesale, so snapshots handed out earlier never change underneath
// their holders.
type Session struct {
	mu        sync.Mutex
	doc       types.Document
	version   uint64
	nextSub   int
	listeners map[int]Listener
}

// New creates a session seeded with doc
func New(doc types.Document) *Session {
	return &Session{
		doc:       doc.Clone(),
		listeners: make(map[int]Listener),
	}
}

// Snapshot returns a copy of the latest committed document
func (s *Session) Snapshot() types.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Version returns the number of commits since the session started
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Update applies fn to a private copy of the document. When fn reports a
// change the copy becomes the live document and listeners are notified.
// Update reports whether a commit happened.
func (s *Session) Update(fn func(doc *types.Document) bool) bool {
	s.mu.Lock()
	next := s.doc.Clone()
	if !fn(&next) {
		s.mu.Unlock()
		return false
	}
	s.doc = next
	s.version++
	snapshot := next.Clone()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
	return true
}

// Reset replaces the live document wholesale
func (s *Session) Reset(doc types.Document) {
	s.mu.Lock()
	s.doc = doc.Clone()
	s.version++
	snapshot := s.doc.Clone()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
}

// Subscribe registers fn to be called after each commit. The returned
// function removes the subscription and is safe to call more than once.
func (s *Session) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Session) listenersLocked() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextSub; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// notify runs outside the lock so listeners may read the session again
func notify(listeners []Listener, doc types.Document) {
	for _, fn := range listeners {
		fn(doc.Clone())
	}
}
