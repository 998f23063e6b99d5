package openai

import "fmt"

// optimizePrompt frames optimization as a conservative edit: the model may
// polish wording and tone but must keep the original conclusion, and the
// reply length is bounded up front so the cap can be enforced after parsing.
func optimizePrompt(answer, contextInfo string, originalRunes, maxRunes int) string {
	return fmt.Sprintf(`你是一位专业的客服回复优化专家。这是一项"保守编辑任务（Conservative Editing）"，不是重写。

【核心原则】
1. 保持原有结论与核心语义不变
2. 仅优化表达、语气、专业边界
3. 禁止无理由改变原回复结论
4. 只有在以下情况允许纠正原回复：
   - 明显事实错误
   - 食品/营养专业不严谨
   - 合规或误导风险
   如纠正，必须在【内部优化说明】中标注"纠正原因"

【字数限制（严格）】
- 原回复字数：%d 字
- 优化后回复字数上限：%d 字（不超过原字数的150%%）
- 超出上限将被拒绝，请务必控制字数

上下文信息：
%s

原始客服回复：
%s

请按照以下格式输出：
【最终客服回复】
<优化后的客服回复内容（字数≤%d字）>

【内部优化说明】
<优化说明，包括优化点、改进原因等>
<如纠正原回复，必须标注"纠正原因：<具体原因>">

要求：
1. 保持原意的准确性（核心语义不变）
2. 语言更加专业和友好
3. 结构清晰，易于理解
4. 符合客服场景的语气要求
5. 严格控制在%d字以内`,
		originalRunes, maxRunes, contextInfo, answer, maxRunes, maxRunes)
}

// reviewPrompt asks for the labeled-section audit format that
// extract.ReviewResult knows how to parse.
func reviewPrompt(answer, contextInfo string) string {
	return fmt.Sprintf(`你是一位专业的客服回复审核专家。请审核以下客服回复，判断其是否合理、专业、准确。

上下文信息：
%s

待审核的客服回复：
%s

请按照以下格式输出：
【审核结论】= 合理 / 基本合理 / 需修改

【专业判断说明】
<详细说明专业判断的理由，包括回复的准确性、专业性、友好度等方面的评估>

【潜在风险或注意点】
<列出可能存在的风险、问题或需要注意的地方>

【修改建议】（仅在"需修改"或"基本合理但可优化"时提供）
<具体的修改建议>

【需修改原因】（仅在"需修改"时提供）
<详细说明为什么需要修改，指出具体的问题>

【修改后推荐回复】（仅在"需修改"时提供）
<提供修改后的推荐回复内容>

【修改依据（专家原则）】
<说明修改依据的专业原则和标准>

要求：
1. 严格审核回复的准确性和专业性
2. 识别潜在的风险和问题
3. 如需修改，必须提供明确的修改原因和推荐回复
4. 判断要客观、专业`,
		contextInfo, answer)
}

// riskPrompt asks for the strict two-line format that extract.RiskCheck
// parses.
func riskPrompt(answer string) string {
	return fmt.Sprintf(`你是一位专业的风险检测专家。请快速检测以下客服回复是否存在风险。

待检测的客服回复：
%s

请按照以下格式输出（必须严格遵循）：
RISK = YES / NO
REASON = 一句话原因说明

要求：
1. 如果存在风险（如误导、错误信息、不当表述等），输出 RISK = YES
2. 如果无风险，输出 RISK = NO
3. REASON 必须是一句话简要说明原因
4. 只输出这两行，不要有其他内容`,
		answer)
}

// pingPrompt is a minimal round-trip used by Ping to verify connectivity.
const pingPrompt = "请回复：连接成功"
