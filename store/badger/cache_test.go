package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/answerkit/core"
	"github.com/caresuite/answerkit/store"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := NewMemoryCache()
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func sampleEntries() []*core.Entry {
	return []*core.Entry{
		{RecordID: "rec1", Question: "保质期多久", StandardAnswer: "12个月"},
		{RecordID: "rec2", Question: "怎么开发票", StandardAnswer: "联系客服"},
	}
}

func TestPutEntriesCountsChanges(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	changed, err := cache.PutEntries(ctx, sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, 2, changed, "first sync inserts everything")

	changed, err = cache.PutEntries(ctx, sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, 0, changed, "identical content changes nothing")

	entries := sampleEntries()
	entries[0].StandardAnswer = "开封后请冷藏"
	changed, err = cache.PutEntries(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, 1, changed, "only the edited row counts")
}

func TestPutEntriesRemovesStaleRows(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_, err := cache.PutEntries(ctx, sampleEntries())
	require.NoError(t, err)

	_, err = cache.PutEntries(ctx, sampleEntries()[:1])
	require.NoError(t, err)

	entries, err := cache.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rec1", entries[0].RecordID)

	_, err = cache.GetEntry(ctx, "rec2")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetEntry(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_, err := cache.PutEntries(ctx, sampleEntries())
	require.NoError(t, err)

	entry, err := cache.GetEntry(ctx, "rec1")
	require.NoError(t, err)
	assert.Equal(t, "保质期多久", entry.Question)
	assert.Equal(t, "12个月", entry.StandardAnswer)

	_, err = cache.GetEntry(ctx, "rec999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPutEntryKeepsOtherRows(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_, err := cache.PutEntries(ctx, sampleEntries())
	require.NoError(t, err)

	edited := &core.Entry{RecordID: "rec1", Question: "保质期多久", StandardAnswer: "开封后请冷藏"}
	require.NoError(t, cache.PutEntry(ctx, edited))

	entries, err := cache.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "single-row upsert must not drop other rows")

	got, err := cache.GetEntry(ctx, "rec1")
	require.NoError(t, err)
	assert.Equal(t, "开封后请冷藏", got.StandardAnswer)

	// The fingerprint was refreshed, so a matching sync sees no change.
	changed, err := cache.PutEntries(ctx, []*core.Entry{edited, sampleEntries()[1]})
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}

func TestListEntriesEmptyCache(t *testing.T) {
	cache := newTestCache(t)

	entries, err := cache.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCacheClosed(t *testing.T) {
	cache := newTestCache(t)
	require.NoError(t, cache.Close())

	_, err := cache.ListEntries(context.Background())
	assert.ErrorIs(t, err, store.ErrStorageClosed)

	_, err = cache.PutEntries(context.Background(), sampleEntries())
	assert.ErrorIs(t, err, store.ErrStorageClosed)
}
