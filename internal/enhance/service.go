// Package enhance rewrites resume text with an LLM and tracks the single
// in-flight enhancement that may commit back into the document.
package enhance

import (
	"context"
	"strings"

	"github.com/IMPERIALX7/cosmic-resume/internal/llm"
	"github.com/IMPERIALX7/cosmic-resume/internal/prompts"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"go.uber.org/zap"
)

// Kind selects the rewrite prompt
type Kind string

// Kind constants
const (
	KindSummary    Kind = "summary"
	KindExperience Kind = "experience"
)

// MaxSummaryOptions caps the number of suggested summaries
const MaxSummaryOptions = 3

const promptFile = "enhance.json"

var (
	rewriteSampling = llm.Sampling{Temperature: 0.7, TopP: 1, TopK: 32, MaxOutputTokens: 256}
	optionsSampling = llm.Sampling{Temperature: 0.8, TopP: 1, TopK: 40}
)

// Enhancer is the remote text-enhancement collaborator. Implementations
// never fail: on any error Enhance returns text unchanged and
// SuggestSummaries returns no options.
type Enhancer interface {
	Enhance(ctx context.Context, text string, kind Kind) string
	SuggestSummaries(ctx context.Context, text string) []types.SummaryOption
}

// Service implements Enhancer on top of an llm.Client. A Service without
// a client has AI features disabled and returns inputs unchanged.
type Service struct {
	client llm.Client
	tier   llm.ModelTier
	logger *zap.Logger
}

// NewService creates a Service. client may be nil.
func NewService(client llm.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, tier: llm.TierStandard, logger: logger}
}

// Enabled reports whether an LLM client is configured
func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

// Enhance returns a rewritten version of text, or text itself when the
// input is blank, AI is disabled, or the call fails.
func (s *Service) Enhance(ctx context.Context, text string, kind Kind) string {
	if !s.Enabled() || strings.TrimSpace(text) == "" {
		return text
	}

	key := "rewrite-experience"
	if kind == KindSummary {
		key = "rewrite-summary"
	}
	template, err := prompts.Get(promptFile, key)
	if err != nil {
		s.logger.Error("enhancement prompt missing", zap.String("key", key), zap.Error(err))
		return text
	}

	out, err := s.client.Generate(ctx, llm.Request{
		Prompt:   prompts.Format(template, map[string]string{"Text": text}),
		Tier:     s.tier,
		Sampling: rewriteSampling,
	})
	if err != nil {
		s.logger.Warn("enhancement failed, keeping original text", zap.String("kind", string(kind)), zap.Error(err))
		return text
	}

	out = strings.TrimSpace(out)
	if out == "" {
		s.logger.Warn("enhancement returned no text, keeping original text", zap.String("kind", string(kind)))
		return text
	}
	return out
}

// SuggestSummaries returns up to MaxSummaryOptions rewritten summaries.
// Blank input, disabled AI, call failures and malformed responses all
// yield no options.
func (s *Service) SuggestSummaries(ctx context.Context, text string) []types.SummaryOption {
	if !s.Enabled() || strings.TrimSpace(text) == "" {
		return nil
	}

	template, err := prompts.Get(promptFile, "summary-options")
	if err != nil {
		s.logger.Error("summary options prompt missing", zap.Error(err))
		return nil
	}

	raw, err := s.client.Generate(ctx, llm.Request{
		Prompt:   prompts.Format(template, map[string]string{"Text": text}),
		Tier:     s.tier,
		Sampling: optionsSampling,
		JSON:     true,
	})
	if err != nil {
		s.logger.Warn("summary options failed", zap.Error(err))
		return nil
	}

	options, err := ParseSummaryOptions(llm.CleanJSONBlock(raw))
	if err != nil {
		s.logger.Warn("summary options response rejected", zap.Error(err))
		return nil
	}
	s.logger.Debug("summary options generated", zap.Int("count", len(options)))
	return options
}
