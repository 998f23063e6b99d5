package answerkit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/answerkit/ai/mock"
	"github.com/caresuite/answerkit/config"
	"github.com/caresuite/answerkit/core"
	"github.com/caresuite/answerkit/store"
	"github.com/caresuite/answerkit/store/badger"
)

// fakeRepo is an in-memory store.EntryRepository and store.TableLister.
type fakeRepo struct {
	entries []*core.Entry
	updated []*core.Entry
}

func (f *fakeRepo) ListEntries(ctx context.Context) ([]*core.Entry, error) {
	return f.entries, nil
}

func (f *fakeRepo) GetEntry(ctx context.Context, recordID string) (*core.Entry, error) {
	for _, e := range f.entries {
		if e.RecordID == recordID {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", store.ErrNotFound, recordID)
}

func (f *fakeRepo) UpdateEntry(ctx context.Context, entry *core.Entry) error {
	f.updated = append(f.updated, entry)
	return nil
}

func (f *fakeRepo) Close() error { return nil }

func (f *fakeRepo) ListTables(ctx context.Context) ([]store.Table, error) {
	return []store.Table{{ID: "tbl1", Name: "Answers"}}, nil
}

func repoEntries() []*core.Entry {
	return []*core.Entry{
		{RecordID: "rec1", Question: "这两款产品有什么不同", StandardAnswer: "两款产品的配方不同", Scene: "售前咨询"},
		{RecordID: "rec2", Question: "怎么开发票", StandardAnswer: "请联系客服开具发票"},
	}
}

func newTestClient(t *testing.T, repo *fakeRepo, svc *mock.MockAnswerService) *Client {
	t.Helper()

	cache, err := badger.NewMemoryCache()
	require.NoError(t, err)

	client, err := NewClient(&config.Config{},
		WithRepository(repo),
		WithAnswerService(svc),
		WithCache(cache),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClientSyncAndSearch(t *testing.T) {
	repo := &fakeRepo{entries: repoEntries()}
	client := newTestClient(t, repo, mock.NewMockAnswerService())
	ctx := context.Background()

	total, changed, err := client.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, changed)

	// A repeated sync with unchanged data reports zero changes.
	_, changed, err = client.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)

	results, err := client.Search(ctx, "区别", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "rec1", results[0].Entry.RecordID)
	assert.Greater(t, results[0].Score, results[1].Score)

	limited, err := client.Search(ctx, "区别", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestClientEntryFallsBackToRemote(t *testing.T) {
	repo := &fakeRepo{entries: repoEntries()}
	client := newTestClient(t, repo, mock.NewMockAnswerService())
	ctx := context.Background()

	// Nothing synced yet, so the cache misses and the repo serves it.
	entry, err := client.Entry(ctx, "rec1")
	require.NoError(t, err)
	assert.Equal(t, "这两款产品有什么不同", entry.Question)

	_, err = client.Entry(ctx, "rec999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClientOptimizeEntryBuildsContext(t *testing.T) {
	repo := &fakeRepo{entries: repoEntries()}
	svc := mock.NewMockAnswerService()

	var gotAnswer, gotContext string
	svc.OptimizeAnswerFunc = func(ctx context.Context, answer, contextInfo string) (core.OptimizedAnswer, string, error) {
		gotAnswer, gotContext = answer, contextInfo
		return core.OptimizedAnswer{AnswerText: answer}, answer, nil
	}

	client := newTestClient(t, repo, svc)

	result, _, err := client.OptimizeEntry(context.Background(), "rec1")
	require.NoError(t, err)

	assert.Equal(t, "两款产品的配方不同", gotAnswer)
	assert.Contains(t, gotContext, "这两款产品有什么不同")
	assert.Contains(t, gotContext, "售前咨询")
	assert.NotContains(t, gotContext, "-")
	assert.Equal(t, "两款产品的配方不同", result.AnswerText)
}

func TestClientReviewAndRisk(t *testing.T) {
	repo := &fakeRepo{entries: repoEntries()}
	client := newTestClient(t, repo, mock.NewMockAnswerService())
	ctx := context.Background()

	review, err := client.ReviewEntry(ctx, "rec1")
	require.NoError(t, err)
	assert.Equal(t, core.ConclusionReasonable, review.Conclusion)
	assert.True(t, review.IsComplete)

	risk, err := client.CheckEntryRisk(ctx, "rec2")
	require.NoError(t, err)
	assert.False(t, risk.HasRisk)
}

func TestClientUpdateAnswer(t *testing.T) {
	repo := &fakeRepo{entries: repoEntries()}
	client := newTestClient(t, repo, mock.NewMockAnswerService())
	ctx := context.Background()

	_, _, err := client.Sync(ctx)
	require.NoError(t, err)

	require.NoError(t, client.UpdateAnswer(ctx, "rec1", "两款产品的配方与口感均不同。"))

	require.Len(t, repo.updated, 1)
	assert.Equal(t, "两款产品的配方与口感均不同。", repo.updated[0].StandardAnswer)

	// The cached copy was refreshed and other rows survived.
	cached, err := client.Entry(ctx, "rec1")
	require.NoError(t, err)
	assert.Equal(t, "两款产品的配方与口感均不同。", cached.StandardAnswer)

	results, err := client.Search(ctx, "发票", 0)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestClientTables(t *testing.T) {
	repo := &fakeRepo{entries: repoEntries()}
	client := newTestClient(t, repo, mock.NewMockAnswerService())

	tables, err := client.Tables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "Answers", tables[0].Name)
}

func TestNewClientRequiresFeishuConfig(t *testing.T) {
	// Without an injected repository the Feishu settings must be complete.
	_, err := NewClient(&config.Config{})
	assert.Error(t, err)
}
