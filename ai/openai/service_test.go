package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/caresuite/answerkit/ai"
	"github.com/caresuite/answerkit/core"
)

// fakeModel returns a fixed response and records the last prompt, so the
// service's prompt construction and parsing can be tested offline.
type fakeModel struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if part, ok := messages[0].Parts[0].(llms.TextContent); ok {
			f.lastPrompt = part.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return f.response, f.err
}

func testService(model llms.Model) *Service {
	return &Service{
		client: model,
		config: ai.NewConfig(),
		logger: slog.Default().With("component", "openai-answer-service"),
	}
}

func TestOptimizeAnswer(t *testing.T) {
	model := &fakeModel{
		response: "【最终客服回复】\n您好，感谢咨询。\n【内部优化说明】\n语气更礼貌",
	}
	svc := testService(model)

	result, raw, err := svc.OptimizeAnswer(context.Background(), "感谢咨询本店商品哦", "产品：某款坚果")
	require.NoError(t, err)

	assert.Equal(t, "您好，感谢咨询。", result.AnswerText)
	assert.Equal(t, "语气更礼貌", result.ExplanationText)
	assert.Equal(t, model.response, raw)
	assert.Contains(t, model.lastPrompt, "感谢咨询本店商品哦")
	assert.Contains(t, model.lastPrompt, "产品：某款坚果")
}

func TestOptimizeAnswerLengthCap(t *testing.T) {
	// Original is 4 runes; the default growth factor allows 6, and the
	// model's reply is far longer.
	model := &fakeModel{
		response: "【最终客服回复】\n" + strings.Repeat("字", 40) + "\n【内部优化说明】\n扩写了内容",
	}
	svc := testService(model)

	result, raw, err := svc.OptimizeAnswer(context.Background(), "你好你好", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrAnswerTooLong)

	// Parsed result and raw response are still returned with the error.
	assert.Equal(t, strings.Repeat("字", 40), result.AnswerText)
	assert.NotEmpty(t, raw)
}

func TestReviewAnswer(t *testing.T) {
	model := &fakeModel{
		response: "【审核结论】=需修改\n【需修改原因】\n缺少条件限定。\n【修改后推荐回复】\n您好，未拆封支持退货。",
	}
	svc := testService(model)

	result, err := svc.ReviewAnswer(context.Background(), "支持退货", "")
	require.NoError(t, err)

	assert.Equal(t, core.ConclusionNeedsRevision, result.Conclusion)
	assert.Equal(t, "缺少条件限定。", result.ModificationReason)
	assert.True(t, result.IsComplete)
}

func TestCheckRisk(t *testing.T) {
	model := &fakeModel{response: "RISK = YES\nREASON = 含有绝对化用语"}
	svc := testService(model)

	result, err := svc.CheckRisk(context.Background(), "全网最低价")
	require.NoError(t, err)

	assert.True(t, result.HasRisk)
	assert.Equal(t, "含有绝对化用语", result.Reason)
}

func TestGenerateErrors(t *testing.T) {
	t.Run("model error propagates", func(t *testing.T) {
		svc := testService(&fakeModel{err: errors.New("connection refused")})
		_, err := svc.generate(context.Background(), "hi")
		assert.Error(t, err)
	})

	t.Run("blank response is an error", func(t *testing.T) {
		svc := testService(&fakeModel{response: "  \n"})
		_, err := svc.generate(context.Background(), "hi")
		assert.ErrorIs(t, err, ai.ErrEmptyResponse)
	})
}

func TestPing(t *testing.T) {
	svc := testService(&fakeModel{response: "连接成功"})
	assert.NoError(t, svc.Ping(context.Background()))

	svc = testService(&fakeModel{err: errors.New("timeout")})
	assert.Error(t, svc.Ping(context.Background()))
}
