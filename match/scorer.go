package match

import (
	"strings"

	"github.com/caresuite/answerkit/core"
)

// Similarity computes a symmetric text-vs-text score in [0,100].
//
// Exact equality after trimming and case-folding short-circuits to 100.
// When either side tokenizes to nothing, the score degrades to a plain
// containment check (50 if one string contains the other, else 0).
// Otherwise the two directional keyword scores are averaged; averages of 95
// or more snap to 100, and containment of one string in the other floors
// the result at 60.
func Similarity(a, b string) float64 {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == nb {
		return 100
	}

	tokensA := Tokenize(a)
	tokensB := Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		if na != "" && nb != "" && (strings.Contains(na, nb) || strings.Contains(nb, na)) {
			return 50
		}
		return 0
	}

	average := (MatchKeywords(tokensA, tokensB) + MatchKeywords(tokensB, tokensA)) / 2
	if average >= 95 {
		return 100
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		if average < 60 {
			average = 60
		}
	}
	return round2(average)
}

// AnswerMatchScore scores a query against one knowledge entry.
//
// The query is matched against the entry's question and standard answer
// separately and blended 0.8/0.2 in the question's favor. Strong question
// matches earn a bonus: +10 at 90 or above, +5 at 70 or above, capped at 100.
func AnswerMatchScore(query string, entry *core.Entry) float64 {
	queryTokens := Tokenize(query)

	qMatch := MatchKeywords(queryTokens, Tokenize(entry.Question))
	aMatch := MatchKeywords(queryTokens, Tokenize(entry.StandardAnswer))

	combined := qMatch*0.8 + aMatch*0.2
	switch {
	case qMatch >= 90:
		combined += 10
	case qMatch >= 70:
		combined += 5
	}
	if combined > 100 {
		combined = 100
	}
	return round2(combined)
}
