package mock

import (
	"context"

	"github.com/caresuite/answerkit/core"
	"github.com/caresuite/answerkit/extract"
)

// MockAnswerService is a test double for ai.AnswerService.
// It allows custom behavior injection via function fields.
type MockAnswerService struct {
	// OptimizeAnswerFunc is called by OptimizeAnswer if set.
	// If nil, returns a canned well-formed optimization.
	OptimizeAnswerFunc func(ctx context.Context, answer, contextInfo string) (core.OptimizedAnswer, string, error)

	// ReviewAnswerFunc is called by ReviewAnswer if set.
	// If nil, returns a canned reasonable verdict.
	ReviewAnswerFunc func(ctx context.Context, answer, contextInfo string) (core.ReviewResult, error)

	// CheckRiskFunc is called by CheckRisk if set.
	// If nil, returns a canned no-risk result.
	CheckRiskFunc func(ctx context.Context, answer string) (core.RiskCheck, error)

	// PingFunc is called by Ping if set. If nil, Ping succeeds.
	PingFunc func(ctx context.Context) error

	callCount int
}

// NewMockAnswerService creates a mock answer service with default behavior.
func NewMockAnswerService() *MockAnswerService {
	return &MockAnswerService{}
}

// OptimizeAnswer returns a canned optimization built from a well-formed
// model response, exercising the same parsing path as production.
func (m *MockAnswerService) OptimizeAnswer(ctx context.Context, answer, contextInfo string) (core.OptimizedAnswer, string, error) {
	m.callCount++

	if m.OptimizeAnswerFunc != nil {
		return m.OptimizeAnswerFunc(ctx, answer, contextInfo)
	}

	raw := "【最终客服回复】\n" + answer + "\n【内部优化说明】\n保持原回复不变"
	return extract.OptimizedAnswer(raw), raw, nil
}

// ReviewAnswer returns a canned reasonable verdict.
func (m *MockAnswerService) ReviewAnswer(ctx context.Context, answer, contextInfo string) (core.ReviewResult, error) {
	m.callCount++

	if m.ReviewAnswerFunc != nil {
		return m.ReviewAnswerFunc(ctx, answer, contextInfo)
	}

	raw := "【审核结论】=合理\n【专业判断说明】\n回复准确、友好。\n【潜在风险或注意点】\n无明显风险。"
	return extract.ReviewResult(raw), nil
}

// CheckRisk returns a canned no-risk result.
func (m *MockAnswerService) CheckRisk(ctx context.Context, answer string) (core.RiskCheck, error) {
	m.callCount++

	if m.CheckRiskFunc != nil {
		return m.CheckRiskFunc(ctx, answer)
	}

	return extract.RiskCheck("RISK = NO\nREASON = 无风险"), nil
}

// Ping succeeds by default.
func (m *MockAnswerService) Ping(ctx context.Context) error {
	m.callCount++

	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// CallCount returns the number of service calls made.
func (m *MockAnswerService) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAnswerService) Reset() {
	m.callCount = 0
	m.OptimizeAnswerFunc = nil
	m.ReviewAnswerFunc = nil
	m.CheckRiskFunc = nil
	m.PingFunc = nil
}
