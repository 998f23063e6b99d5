package ai

import (
	"context"

	"github.com/caresuite/answerkit/core"
)

// AnswerService runs generative workflows over customer-support replies.
// Implementations must be thread-safe for concurrent use.
type AnswerService interface {
	// OptimizeAnswer rewrites a reply conservatively: same conclusion and
	// core meaning, better wording. contextInfo carries the matched
	// knowledge-base question or other background and may be empty.
	// The second return value is the raw model response before parsing.
	// Returns ErrAnswerTooLong (wrapped) when the optimized reply exceeds
	// the configured length cap relative to the original.
	OptimizeAnswer(ctx context.Context, answer, contextInfo string) (core.OptimizedAnswer, string, error)

	// ReviewAnswer audits a reply for accuracy, professionalism, and risk,
	// returning a structured verdict. A model response missing the expected
	// structure still yields a usable result with the raw text preserved.
	ReviewAnswer(ctx context.Context, answer, contextInfo string) (core.ReviewResult, error)

	// CheckRisk runs a fast binary risk screen over a reply.
	CheckRisk(ctx context.Context, answer string) (core.RiskCheck, error)

	// Ping verifies that the chat API is reachable and the model responds.
	Ping(ctx context.Context) error
}
