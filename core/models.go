package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// Entry is one row of the knowledge-base Answers table.
// All fields are plain display strings; missing table fields arrive as "-".
type Entry struct {
	RecordID       string
	Question       string
	StandardAnswer string
	EnableStatus   string
	Scene          string
	Tone           string
	ProductName    string
	ProductID      string
}

// ScoredEntry pairs an entry with its relevance score for one query.
// Scores are in [0,100] and are recomputed per search, never persisted.
type ScoredEntry struct {
	Entry *Entry
	Score float64
}

// FingerprintEntry computes a stable 64-bit content hash over an entry's
// fields using BLAKE2b. Identical content always produces the same value,
// so the sync layer can detect changed rows without field-by-field diffs.
func FingerprintEntry(e *Entry) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	for _, field := range []string{
		e.RecordID, e.Question, e.StandardAnswer, e.EnableStatus,
		e.Scene, e.Tone, e.ProductName, e.ProductID,
	} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

// OptimizedAnswer is the parsed result of an answer-optimization response.
// AnswerText is never empty unless the source text itself was blank;
// ExplanationText holds the internal notes and may be empty.
type OptimizedAnswer struct {
	AnswerText      string
	ExplanationText string
}

// Conclusion is the enumerated verdict of a review-result parse.
type Conclusion string

const (
	// ConclusionReasonable means the reviewed answer passed as-is.
	ConclusionReasonable Conclusion = "合理"
	// ConclusionMostlyReasonable means the answer passed with reservations.
	ConclusionMostlyReasonable Conclusion = "基本合理"
	// ConclusionNeedsRevision means the answer must be modified.
	ConclusionNeedsRevision Conclusion = "需修改"
	// ConclusionUnknown means no verdict could be extracted.
	ConclusionUnknown Conclusion = ""
)

// ReviewResult is the parsed output of an answer-review response.
// Optional sections are plain strings where empty means the section was
// absent from the upstream text.
type ReviewResult struct {
	Conclusion          Conclusion
	JudgmentExplanation string
	RiskPoints          string
	ModificationReason  string
	RecommendedReply    string
	Suggestion          string
	Basis               string
	RawText             string
	IsComplete          bool
}

// RiskCheck is the parsed output of a risk-check response.
// Reason may be empty when the upstream text omitted it.
type RiskCheck struct {
	HasRisk bool
	Reason  string
}
