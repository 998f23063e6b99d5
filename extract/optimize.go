package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/caresuite/answerkit/core"
)

// Section markers the optimization prompt asks the model to emit.
const (
	finalReplyMarker    = "【最终客服回复】"
	internalNotesMarker = "【内部优化说明】"
)

var blankLine = regexp.MustCompile(`\n[ \t]*\n`)

// labeledReplyPatterns are the fallback label variants tried in order when
// the primary bracketed markers are missing. Each captures the reply text up
// to a blank line followed by an explanatory keyword, or the end of text.
var labeledReplyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)优化后的客服回复[:：]\s*(.+?)(?:\n[ \t]*\n[ \t]*(?:说明|解释|字数|规则|要求|注意)|$)`),
	regexp.MustCompile(`(?s)优化后的客服回复如下[:：]\s*(.+?)(?:\n[ \t]*\n[ \t]*(?:说明|解释|字数|规则|要求|注意)|$)`),
	regexp.MustCompile(`(?s)\*\*优化后的客服回复\*\*[:：]\s*(.+?)(?:\n[ \t]*\n[ \t]*(?:说明|解释|字数|规则|要求|注意)|$)`),
	regexp.MustCompile(`(?s)【优化后的客服回复】[:：]?\s*(.+?)(?:\n[ \t]*\n[ \t]*(?:说明|解释|字数|规则|要求|注意)|$)`),
}

var quoteParagraph = regexp.MustCompile(`^(?:\*\*)?>`)

var fillerPrefixes = []string{"好的", "根据", "如下", "说明", "优化说明"}

var trailingExplainKeyword = regexp.MustCompile(`说明|解释|字数|规则|要求|注意|优化|调整`)

// answerRule is one step of the extraction cascade: it either produces a
// result or passes. Rules run in order and the first success wins, which
// keeps each heuristic independently testable.
type answerRule func(text string) (core.OptimizedAnswer, bool)

var answerRules = []answerRule{
	extractByMarkers,
	extractByLabel,
	extractByQuoteBlock,
	extractByFirstParagraph,
	extractByLastBlankLine,
}

// OptimizedAnswer parses a free-form optimization response into an answer
// plus optional internal notes. It never fails: when no rule applies, the
// whole stripped input becomes the answer text.
func OptimizedAnswer(text string) core.OptimizedAnswer {
	for _, rule := range answerRules {
		if result, ok := rule(text); ok {
			return result
		}
	}
	return core.OptimizedAnswer{AnswerText: stripMarkup(text)}
}

// extractByMarkers handles the primary bracketed format: the final-reply
// marker, the reply body, then optionally the internal-notes marker and
// explanation.
func extractByMarkers(text string) (core.OptimizedAnswer, bool) {
	start := strings.Index(text, finalReplyMarker)
	if start < 0 {
		return core.OptimizedAnswer{}, false
	}
	body := text[start+len(finalReplyMarker):]

	explanation := ""
	if notes := strings.Index(body, internalNotesMarker); notes >= 0 {
		explanation = strings.TrimSpace(body[notes+len(internalNotesMarker):])
		body = body[:notes]
	}

	answer := stripMarkup(body)
	if answer == "" {
		return core.OptimizedAnswer{}, false
	}
	return core.OptimizedAnswer{AnswerText: answer, ExplanationText: explanation}, true
}

// extractByLabel tries the labeled-colon variants in order; the matched span
// (label through reply) is removed from the text to form the explanation.
func extractByLabel(text string) (core.OptimizedAnswer, bool) {
	for _, pattern := range labeledReplyPatterns {
		idx := pattern.FindStringSubmatchIndex(text)
		if idx == nil {
			continue
		}
		answer := stripMarkup(text[idx[2]:idx[3]])
		if answer == "" {
			continue
		}
		explanation := strings.TrimSpace(text[:idx[0]] + text[idx[3]:])
		return core.OptimizedAnswer{AnswerText: answer, ExplanationText: explanation}, true
	}
	return core.OptimizedAnswer{}, false
}

// extractByQuoteBlock looks for a paragraph introduced by a block-quote
// marker, optionally behind a bold marker. Very short quotes are ignored.
func extractByQuoteBlock(text string) (core.OptimizedAnswer, bool) {
	paragraphs := blankLine.Split(text, -1)
	for i, paragraph := range paragraphs {
		if !quoteParagraph.MatchString(strings.TrimSpace(paragraph)) {
			continue
		}
		answer := stripMarkup(paragraph)
		if utf8.RuneCountInString(answer) <= 5 {
			continue
		}

		before := strings.TrimSpace(strings.Join(paragraphs[:i], "\n\n"))
		after := strings.TrimSpace(strings.Join(paragraphs[i+1:], "\n\n"))

		explanation := before
		if after != "" && after != answer {
			if explanation != "" {
				explanation += "\n\n"
			}
			explanation += after
		}
		return core.OptimizedAnswer{AnswerText: answer, ExplanationText: explanation}, true
	}
	return core.OptimizedAnswer{}, false
}

// extractByFirstParagraph takes the text up to the first blank line unless
// it opens with a filler phrase or is too short to be a real reply.
func extractByFirstParagraph(text string) (core.OptimizedAnswer, bool) {
	first := text
	rest := ""
	if idx := blankLine.FindStringIndex(text); idx != nil {
		first = text[:idx[0]]
		rest = text[idx[1]:]
	}

	answer := stripMarkup(first)
	if answer == "" || utf8.RuneCountInString(answer) < 20 {
		return core.OptimizedAnswer{}, false
	}
	for _, filler := range fillerPrefixes {
		if strings.HasPrefix(answer, filler) {
			return core.OptimizedAnswer{}, false
		}
	}
	return core.OptimizedAnswer{AnswerText: answer, ExplanationText: strings.TrimSpace(rest)}, true
}

// extractByLastBlankLine splits at the last blank line when the trailing
// segment reads like an explanation.
func extractByLastBlankLine(text string) (core.OptimizedAnswer, bool) {
	splits := blankLine.FindAllStringIndex(text, -1)
	if len(splits) == 0 {
		return core.OptimizedAnswer{}, false
	}
	last := splits[len(splits)-1]
	leading := text[:last[0]]
	trailing := strings.TrimSpace(text[last[1]:])

	if !trailingExplainKeyword.MatchString(trailing) {
		return core.OptimizedAnswer{}, false
	}
	answer := stripMarkup(leading)
	if answer == "" {
		return core.OptimizedAnswer{}, false
	}
	return core.OptimizedAnswer{AnswerText: answer, ExplanationText: trailing}, true
}
