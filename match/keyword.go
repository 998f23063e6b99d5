package match

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Tier scores for a single token-vs-token comparison. Tiers are evaluated in
// order and the highest applicable tier wins.
const (
	tierExact        = 100 // case-folded equality
	tierSynonym      = 90  // target is in the source token's synonym group
	tierCrossSynonym = 85  // the two tokens' synonym groups intersect
	tierSubstring    = 60  // one multi-rune token contains the other
)

// matchTier is one rule of the tiered comparison: a score and the predicate
// that awards it. Keeping the rules in an ordered list makes the
// highest-tier-wins evaluation explicit.
type matchTier struct {
	score float64
	match func(source, target string, sourceGroup, targetGroup map[string]bool) bool
}

var matchTiers = []matchTier{
	{tierExact, func(s, t string, _, _ map[string]bool) bool {
		return s == t
	}},
	{tierSynonym, func(_, t string, sg, _ map[string]bool) bool {
		return sg[t]
	}},
	{tierCrossSynonym, func(_, _ string, sg, tg map[string]bool) bool {
		return intersects(sg, tg)
	}},
	{tierSubstring, func(s, t string, _, _ map[string]bool) bool {
		if utf8.RuneCountInString(s) < 2 || utf8.RuneCountInString(t) < 2 {
			return false
		}
		return strings.Contains(s, t) || strings.Contains(t, s)
	}},
}

// MatchKeywords scores the source token sequence against the target sequence.
// The comparison is directional: source tokens look for their single best
// target token, so MatchKeywords(a, b) and MatchKeywords(b, a) differ.
//
// For each source token the best-scoring target is found by evaluating the
// tiers in order; ties keep the earliest target token. The final score blends
// per-token quality with target coverage:
//
//	(matched/|source|) * (total/matched) * 0.8 + min(|bestTargets|/|target|, 1) * 20
//
// rounded to two decimals and clamped to [0,100]. Empty input scores 0.
func MatchKeywords(source, target []string) float64 {
	if len(source) == 0 || len(target) == 0 {
		return 0
	}

	targetGroups := make([]map[string]bool, len(target))
	for i, t := range target {
		targetGroups[i] = groupSet(ExpandSynonyms(t))
	}

	matched := 0
	total := 0.0
	bestTargets := make(map[string]bool)

	for _, s := range source {
		sourceGroup := groupSet(ExpandSynonyms(s))

		best := 0.0
		bestToken := ""
		for i, t := range target {
			score := scoreTokens(s, t, sourceGroup, targetGroups[i])
			// Strict comparison keeps the earliest target on ties.
			if score > best {
				best = score
				bestToken = t
			}
		}

		if best > 0 {
			matched++
			total += best
			bestTargets[bestToken] = true
		}
	}

	if matched == 0 {
		return 0
	}

	coverage := float64(matched) / float64(len(source))
	average := total / float64(matched)
	overlap := math.Min(float64(len(bestTargets))/float64(len(target)), 1)

	return clampScore(round2(coverage*average*0.8 + overlap*20))
}

// scoreTokens runs the tier list for one source/target token pair.
func scoreTokens(source, target string, sourceGroup, targetGroup map[string]bool) float64 {
	for _, tier := range matchTiers {
		if tier.match(source, target, sourceGroup, targetGroup) {
			return tier.score
		}
	}
	return 0
}

func groupSet(group []string) map[string]bool {
	set := make(map[string]bool, len(group))
	for _, member := range group {
		set[member] = true
	}
	return set
}

func intersects(a, b map[string]bool) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for member := range a {
		if b[member] {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
