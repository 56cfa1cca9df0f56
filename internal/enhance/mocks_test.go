package enhance

import (
	"context"

	"github.com/IMPERIALX7/cosmic-resume/internal/llm"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// MockLLMClient is a mock implementation of llm.Client for testing
type MockLLMClient struct {
	GenerateFunc func(ctx context.Context, req llm.Request) (string, error)
	requests     []llm.Request
}

func (m *MockLLMClient) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.requests = append(m.requests, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return "", nil
}

func (m *MockLLMClient) Close() error {
	return nil
}

// stubEnhancer is an Enhancer whose answers can be held back with gate
type stubEnhancer struct {
	gate     chan struct{}
	enhance  func(text string, kind Kind) string
	suggest  func(text string) []types.SummaryOption
	calledCh chan string
}

func newStubEnhancer() *stubEnhancer {
	return &stubEnhancer{calledCh: make(chan string, 8)}
}

func (s *stubEnhancer) Enhance(_ context.Context, text string, kind Kind) string {
	s.calledCh <- text
	if s.gate != nil {
		<-s.gate
	}
	if s.enhance != nil {
		return s.enhance(text, kind)
	}
	return text
}

func (s *stubEnhancer) SuggestSummaries(_ context.Context, text string) []types.SummaryOption {
	s.calledCh <- text
	if s.gate != nil {
		<-s.gate
	}
	if s.suggest != nil {
		return s.suggest(text)
	}
	return nil
}

func failingGenerate(_ context.Context, _ llm.Request) (string, error) {
	return "", &llm.APICallError{Message: "connection refused"}
}
