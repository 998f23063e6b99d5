package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizedAnswerMarkers(t *testing.T) {
	t.Run("both markers present", func(t *testing.T) {
		got := OptimizedAnswer("【最终客服回复】\n您好，感谢咨询。\n【内部优化说明】\n语气更礼貌")
		assert.Equal(t, "您好，感谢咨询。", got.AnswerText)
		assert.Equal(t, "语气更礼貌", got.ExplanationText)
	})

	t.Run("final marker without notes marker", func(t *testing.T) {
		got := OptimizedAnswer("【最终客服回复】\n您好，产品保质期为12个月。")
		assert.Equal(t, "您好，产品保质期为12个月。", got.AnswerText)
		assert.Empty(t, got.ExplanationText)
	})

	t.Run("residual markup stripped from reply", func(t *testing.T) {
		got := OptimizedAnswer("【最终客服回复】\n**> 您好，我们支持七天无理由退货。**\n【内部优化说明】\n补充了政策依据")
		assert.Equal(t, "您好，我们支持七天无理由退货。", got.AnswerText)
		assert.Equal(t, "补充了政策依据", got.ExplanationText)
	})

	t.Run("empty reply section falls through", func(t *testing.T) {
		got := OptimizedAnswer("【最终客服回复】\n**\n【内部优化说明】\n没有生成回复")
		assert.NotEmpty(t, got.AnswerText)
		assert.NotEqual(t, "**", got.AnswerText)
	})
}

func TestOptimizedAnswerLabeled(t *testing.T) {
	t.Run("plain label with explanatory tail", func(t *testing.T) {
		got := OptimizedAnswer("优化后的客服回复：您好，产品不含蔗糖，可以放心选择。\n\n说明：调整了语气并补充了成分信息")
		assert.Equal(t, "您好，产品不含蔗糖，可以放心选择。", got.AnswerText)
		assert.Contains(t, got.ExplanationText, "调整了语气")
	})

	t.Run("bold label variant", func(t *testing.T) {
		got := OptimizedAnswer("**优化后的客服回复**：您好，订单将在48小时内发出。")
		assert.Equal(t, "您好，订单将在48小时内发出。", got.AnswerText)
	})

	t.Run("bracketed label variant", func(t *testing.T) {
		got := OptimizedAnswer("【优化后的客服回复】您好，发票将随包裹一同寄出。")
		assert.Equal(t, "您好，发票将随包裹一同寄出。", got.AnswerText)
	})

	t.Run("explanation keeps text outside matched span", func(t *testing.T) {
		got := OptimizedAnswer("以下是结果。\n优化后的客服回复：您好，请提供订单号以便查询。\n\n注意：未改变原结论")
		assert.Equal(t, "您好，请提供订单号以便查询。", got.AnswerText)
		assert.Contains(t, got.ExplanationText, "以下是结果。")
	})
}

func TestOptimizedAnswerQuoteBlock(t *testing.T) {
	got := OptimizedAnswer("调整说明在前。\n\n> 您好，商品支持开具电子发票。\n\n补充：已核对开票流程")
	assert.Equal(t, "您好，商品支持开具电子发票。", got.AnswerText)
	assert.Contains(t, got.ExplanationText, "调整说明在前。")
	assert.Contains(t, got.ExplanationText, "已核对开票流程")
}

func TestOptimizedAnswerQuoteBlockTooShort(t *testing.T) {
	// A quote of five runes or fewer is not accepted as the reply.
	got := OptimizedAnswer("> 你好呀\n\n这一段足够长可以当作第一段回复来使用哦。")
	assert.NotEqual(t, "你好呀", got.AnswerText)
}

func TestOptimizedAnswerFirstParagraph(t *testing.T) {
	t.Run("long first paragraph accepted", func(t *testing.T) {
		got := OptimizedAnswer("您好，这款产品采用独立小包装，方便携带且易于保存。\n\n字数没有超出限制。")
		assert.Equal(t, "您好，这款产品采用独立小包装，方便携带且易于保存。", got.AnswerText)
		assert.Equal(t, "字数没有超出限制。", got.ExplanationText)
	})

	t.Run("filler opener rejected", func(t *testing.T) {
		got := OptimizedAnswer("好的，我来帮您优化这条回复，下面是具体内容。\n\n第二段")
		assert.NotEqual(t, "好的，我来帮您优化这条回复，下面是具体内容。", got.AnswerText)
	})

	t.Run("short first paragraph rejected", func(t *testing.T) {
		got := OptimizedAnswer("太短了。\n\n后面的内容")
		assert.NotEqual(t, "太短了。", got.AnswerText)
	})
}

func TestOptimizedAnswerLastBlankLine(t *testing.T) {
	// Opens with a filler so the first-paragraph rule passes, but the
	// trailing segment carries an explanatory keyword.
	got := OptimizedAnswer("根据要求调整。\n\n优化说明：压缩了字数并统一了称呼")
	assert.Equal(t, "根据要求调整。", got.AnswerText)
	assert.Equal(t, "优化说明：压缩了字数并统一了称呼", got.ExplanationText)
}

func TestOptimizedAnswerFallback(t *testing.T) {
	t.Run("unstructured text returned whole", func(t *testing.T) {
		got := OptimizedAnswer("您好请稍等")
		assert.Equal(t, "您好请稍等", got.AnswerText)
		assert.Empty(t, got.ExplanationText)
	})

	t.Run("markup stripped in fallback", func(t *testing.T) {
		got := OptimizedAnswer("**您好请稍等**")
		assert.Equal(t, "您好请稍等", got.AnswerText)
	})

	t.Run("empty input yields empty answer", func(t *testing.T) {
		got := OptimizedAnswer("   \n\t")
		assert.Empty(t, got.AnswerText)
	})
}

func TestOptimizedAnswerNeverEmptyForNonBlankInput(t *testing.T) {
	inputs := []string{
		"你好",
		"好的，如下。",
		"> 短引用",
		"说明：只有说明段",
		"【最终客服回复】\n\n【内部优化说明】\n空回复",
	}
	for _, input := range inputs {
		got := OptimizedAnswer(input)
		if strings.TrimSpace(input) != "" {
			assert.NotEmpty(t, got.AnswerText, "input %q", input)
		}
	}
}
