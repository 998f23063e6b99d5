package extract

import (
	"regexp"
	"strings"

	"github.com/caresuite/answerkit/core"
)

const (
	conclusionLabel       = "【审核结论】"
	legacyConclusionLabel = "【审核结果】"
)

var (
	conclusionFirstLine = regexp.MustCompile(`^【审核结论】\s*=\s*(合理|基本合理|需修改)$`)
	conclusionTrailing  = regexp.MustCompile(`^【审核结论】\s*=\s*(合理|基本合理|需修改)\s*$`)
)

// sectionLabels lists every known section heading in declaration order.
// Capture for one label runs until the next known label or end of text.
var sectionLabels = []string{
	"【专业判断说明】",
	"【潜在风险或注意点】",
	"【风险点】", // legacy risk-points heading
	"【需修改原因】",
	"【修改后推荐回复】",
	"【修改建议】",
	"【修改依据（专家原则）】",
	"【修改依据】", // legacy basis heading
	conclusionLabel,
	legacyConclusionLabel,
}

// ReviewResult parses a free-form review response. A response missing every
// known structure still yields a usable result: an unknown conclusion,
// empty required sections, and the raw text preserved for display.
func ReviewResult(text string) core.ReviewResult {
	result := core.ReviewResult{
		Conclusion:          extractConclusion(text),
		JudgmentExplanation: captureSection(text, "【专业判断说明】"),
		RiskPoints:          captureSection(text, "【潜在风险或注意点】"),
		ModificationReason:  captureSection(text, "【需修改原因】"),
		RecommendedReply:    captureSection(text, "【修改后推荐回复】"),
		Suggestion:          captureSection(text, "【修改建议】"),
		Basis:               captureSection(text, "【修改依据（专家原则）】"),
		RawText:             text,
	}

	if result.RiskPoints == "" {
		result.RiskPoints = captureSection(text, "【风险点】")
	}
	if result.Basis == "" {
		result.Basis = captureSection(text, "【修改依据】")
	}

	result.IsComplete = true
	if result.Conclusion == core.ConclusionNeedsRevision &&
		(result.ModificationReason == "" || result.RecommendedReply == "") {
		result.IsComplete = false
	}
	return result
}

// extractConclusion runs the conclusion cascade, most specific first:
// a fixed-format first line, the same with trailing whitespace, the label
// anywhere with substring matching, then the legacy label. Substring
// matching checks the more specific terms first so 需修改 and 基本合理 are
// never shadowed by the 合理 superstring.
func extractConclusion(text string) core.Conclusion {
	firstLine, _, _ := strings.Cut(text, "\n")
	if m := conclusionFirstLine.FindStringSubmatch(firstLine); m != nil {
		return core.Conclusion(m[1])
	}
	if m := conclusionTrailing.FindStringSubmatch(firstLine); m != nil {
		return core.Conclusion(m[1])
	}
	if c := conclusionBySubstring(text, conclusionLabel); c != core.ConclusionUnknown {
		return c
	}
	return conclusionBySubstring(text, legacyConclusionLabel)
}

func conclusionBySubstring(text, label string) core.Conclusion {
	idx := strings.Index(text, label)
	if idx < 0 {
		return core.ConclusionUnknown
	}
	segment, _, _ := strings.Cut(text[idx+len(label):], "\n")
	if !strings.Contains(segment, "=") {
		return core.ConclusionUnknown
	}
	switch {
	case strings.Contains(segment, string(core.ConclusionNeedsRevision)):
		return core.ConclusionNeedsRevision
	case strings.Contains(segment, string(core.ConclusionMostlyReasonable)):
		return core.ConclusionMostlyReasonable
	case strings.Contains(segment, string(core.ConclusionReasonable)):
		return core.ConclusionReasonable
	}
	return core.ConclusionUnknown
}

// captureSection returns the text between a section label and the start of
// the next known label, or the end of text. A missing label yields "".
func captureSection(text, label string) string {
	idx := strings.Index(text, label)
	if idx < 0 {
		return ""
	}
	start := idx + len(label)
	content := text[start:]

	end := len(content)
	for _, other := range sectionLabels {
		if other == label {
			continue
		}
		if next := strings.Index(content, other); next >= 0 && next < end {
			end = next
		}
	}
	return strings.Trim(strings.TrimSpace(content[:end]), "：: \n\t")
}
