package match

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/caresuite/answerkit/core"
)

// Ranker scores entry lists against queries and sorts them by relevance.
// Per-entry scoring is embarrassingly parallel, so a worker pool fans the
// work out for large entry lists; ordering is decided only after every
// score is in, so parallelism never perturbs results.
type Ranker struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithPoolSize sets the worker pool size for concurrent scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(opts ...Option) (*Ranker, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Ranker{
		pool:   pool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.Release()
			return nil, err
		}
	}
	return r, nil
}

// Rank scores every entry against the query and returns the entries sorted
// by descending score. The sort is stable: ties keep their input order, and
// repeated calls with the same inputs produce identical results. No entries
// are filtered out; thresholding is the caller's concern.
func (r *Ranker) Rank(query string, entries []*core.Entry) []core.ScoredEntry {
	scores := make([]float64, len(entries))

	var wg sync.WaitGroup
	for i := range entries {
		wg.Add(1)
		entry := entries[i]
		idx := i
		if err := r.pool.Submit(func() {
			defer wg.Done()
			scores[idx] = AnswerMatchScore(query, entry)
		}); err != nil {
			// Pool rejected the task (e.g. released); score inline.
			r.logger.Warn("scoring task rejected, running inline", "err", err)
			scores[idx] = AnswerMatchScore(query, entry)
			wg.Done()
		}
	}
	wg.Wait()

	results := make([]core.ScoredEntry, len(entries))
	for i, entry := range entries {
		results[i] = core.ScoredEntry{Entry: entry, Score: scores[i]}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Release frees the worker pool. The ranker must not be used afterwards.
func (r *Ranker) Release() {
	if r.pool != nil {
		r.pool.Release()
		r.pool = nil
	}
}
