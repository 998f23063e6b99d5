// Copyright 2026 Caresuite
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/caresuite/answerkit/ai"
	"github.com/caresuite/answerkit/core"
	"github.com/caresuite/answerkit/extract"
)

// Service implements ai.AnswerService using OpenAI-compatible chat APIs.
type Service struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// newService is an internal constructor that returns the concrete type.
func newService(config *ai.Config) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication.
	token := config.APIKey
	if token == "" {
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-answer-service"),
	}, nil
}

// NewService creates an answer service using the provided configuration.
//
// Returns ai.AnswerService interface (not *Service) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewService(config *ai.Config) (ai.AnswerService, error) {
	return newService(config)
}

// generate sends a single-turn prompt and returns the model's text response.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content,
		llms.WithTemperature(s.config.Temperature),
		llms.WithMaxTokens(s.config.MaxTokens),
	)
	if err != nil {
		s.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		return "", ai.ErrEmptyResponse
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	if text == "" {
		return "", ai.ErrEmptyResponse
	}
	return text, nil
}

// OptimizeAnswer rewrites a reply conservatively and enforces the length
// cap: the optimized reply may grow to at most MaxAnswerGrowth times the
// original's rune count. When the cap is exceeded the parsed result and
// raw response are still returned alongside the error so callers can
// surface them.
func (s *Service) OptimizeAnswer(ctx context.Context, answer, contextInfo string) (core.OptimizedAnswer, string, error) {
	originalRunes := utf8.RuneCountInString(answer)
	maxRunes := int(float64(originalRunes) * s.config.MaxAnswerGrowth)

	raw, err := s.generate(ctx, optimizePrompt(answer, contextInfo, originalRunes, maxRunes))
	if err != nil {
		return core.OptimizedAnswer{}, "", err
	}

	result := extract.OptimizedAnswer(raw)

	optimizedRunes := utf8.RuneCountInString(result.AnswerText)
	if optimizedRunes > maxRunes {
		s.logger.Warn("optimized answer over length limit",
			"original", originalRunes,
			"optimized", optimizedRunes,
			"limit", maxRunes)
		return result, raw, fmt.Errorf("%w: %d runes, limit %d",
			ai.ErrAnswerTooLong, optimizedRunes, maxRunes)
	}

	s.logger.Debug("optimized answer",
		"original", originalRunes,
		"optimized", optimizedRunes)
	return result, raw, nil
}

// ReviewAnswer audits a reply and parses the model's verdict. Parsing never
// fails: an unstructured response yields an unknown conclusion with the raw
// text preserved.
func (s *Service) ReviewAnswer(ctx context.Context, answer, contextInfo string) (core.ReviewResult, error) {
	raw, err := s.generate(ctx, reviewPrompt(answer, contextInfo))
	if err != nil {
		return core.ReviewResult{}, err
	}

	result := extract.ReviewResult(raw)
	s.logger.Debug("reviewed answer",
		"conclusion", string(result.Conclusion),
		"complete", result.IsComplete)
	return result, nil
}

// CheckRisk runs the fast binary risk screen.
func (s *Service) CheckRisk(ctx context.Context, answer string) (core.RiskCheck, error) {
	raw, err := s.generate(ctx, riskPrompt(answer))
	if err != nil {
		return core.RiskCheck{}, err
	}

	result := extract.RiskCheck(raw)
	s.logger.Debug("checked risk", "has_risk", result.HasRisk)
	return result, nil
}

// Ping verifies that the chat API is reachable and the model responds.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.generate(ctx, pingPrompt)
	return err
}
