package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// stopWords are tokens discarded after scanning. Chinese entries are single
// ideographs because the tokenizer emits CJK text one character at a time;
// the ASCII entries cover filler words common in mixed-language queries.
var stopWords = map[string]bool{
	"的": true, "了": true, "在": true, "是": true, "我": true, "你": true,
	"您": true, "他": true, "她": true, "它": true, "们": true, "这": true,
	"那": true, "哪": true, "个": true, "吗": true, "呢": true, "吧": true,
	"啊": true, "呀": true, "哦": true, "嗯": true, "和": true, "与": true,
	"或": true, "就": true, "都": true, "也": true, "还": true, "很": true,
	"请": true, "问": true, "什": true, "么": true, "怎": true, "样": true,
	"如": true, "呵": true, "啥": true, "嘛": true, "得": true, "地": true,
	"a": true, "an": true, "the": true, "is": true, "are": true, "of": true,
	"to": true, "and": true, "or": true, "in": true, "on": true, "for": true,
}

// Tokenize splits text into a sequence of normalized keyword tokens.
//
// The text is NFKC-normalized first, which folds full-width letters and
// digits to their ASCII forms. Then a single left-to-right scan emits each
// CJK ideograph as its own token and each contiguous run of ASCII letters
// and digits as one lower-cased token; every other character only separates.
// Stop words are removed after scanning. Duplicates are retained and order
// reflects position in the source. Empty input yields an empty sequence.
func Tokenize(text string) []string {
	text = norm.NFKC.String(text)

	tokens := make([]string, 0, len(text)/2)
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			tokens = append(tokens, strings.ToLower(run.String()))
			run.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			flush()
			tokens = append(tokens, string(r))
		case isASCIIAlnum(r):
			run.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	filtered := tokens[:0]
	for _, token := range tokens {
		if !stopWords[token] {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

// isASCIIAlnum returns true if the rune is an ASCII letter or digit.
func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
