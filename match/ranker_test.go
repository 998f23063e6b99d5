package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/answerkit/core"
)

func testEntries() []*core.Entry {
	return []*core.Entry{
		{RecordID: "rec1", Question: "怎么开发票", StandardAnswer: "请联系客服开具发票"},
		{RecordID: "rec2", Question: "这两款产品有什么不同", StandardAnswer: "两款产品的配方不同"},
		{RecordID: "rec3", Question: "产品之间的区别", StandardAnswer: "请看商品详情页"},
		{RecordID: "rec4", Question: "这两款产品有什么不同", StandardAnswer: "两款产品的配方不同"},
	}
}

func TestRankerOrdersByDescendingScore(t *testing.T) {
	ranker, err := NewRanker()
	require.NoError(t, err)
	defer ranker.Release()

	results := ranker.Rank("区别", testEntries())
	require.Len(t, results, 4)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.Equal(t, "rec1", results[len(results)-1].Entry.RecordID,
		"the unrelated entry should rank last")
}

func TestRankerStableTies(t *testing.T) {
	ranker, err := NewRanker()
	require.NoError(t, err)
	defer ranker.Release()

	results := ranker.Rank("区别", testEntries())

	// rec2 and rec4 are identical entries, so their scores tie and input
	// order must be preserved.
	var tied []string
	for _, r := range results {
		if r.Entry.RecordID == "rec2" || r.Entry.RecordID == "rec4" {
			tied = append(tied, r.Entry.RecordID)
		}
	}
	assert.Equal(t, []string{"rec2", "rec4"}, tied)
}

func TestRankerIdempotent(t *testing.T) {
	ranker, err := NewRanker()
	require.NoError(t, err)
	defer ranker.Release()

	entries := testEntries()
	first := ranker.Rank("区别", entries)
	second := ranker.Rank("区别", entries)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Entry.RecordID, second[i].Entry.RecordID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestRankerPoolSizeDoesNotChangeResults(t *testing.T) {
	wide, err := NewRanker(WithPoolSize(8))
	require.NoError(t, err)
	defer wide.Release()

	narrow, err := NewRanker(WithPoolSize(1))
	require.NoError(t, err)
	defer narrow.Release()

	entries := testEntries()
	a := wide.Rank("产品区别", entries)
	b := narrow.Rank("产品区别", entries)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Entry.RecordID, b[i].Entry.RecordID)
		assert.Equal(t, a[i].Score, b[i].Score)
	}
}

func TestRankerEmptyInputs(t *testing.T) {
	ranker, err := NewRanker()
	require.NoError(t, err)
	defer ranker.Release()

	assert.Empty(t, ranker.Rank("区别", nil))

	results := ranker.Rank("", testEntries())
	require.Len(t, results, 4)
	for _, r := range results {
		assert.Equal(t, 0.0, r.Score)
	}
}
