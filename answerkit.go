// Copyright 2026 Caresuite
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package answerkit is a customer-support knowledge-base client: it syncs
// the Answers table from Feishu Bitable into a local cache, ranks entries
// against free-text queries, and runs AI-assisted optimization, review,
// and risk checks over reply drafts.
package answerkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caresuite/answerkit/ai"
	"github.com/caresuite/answerkit/ai/openai"
	"github.com/caresuite/answerkit/config"
	"github.com/caresuite/answerkit/core"
	"github.com/caresuite/answerkit/match"
	"github.com/caresuite/answerkit/store"
	"github.com/caresuite/answerkit/store/badger"
	"github.com/caresuite/answerkit/store/feishu"
)

// Client wires the remote repository, local cache, relevance ranker, and
// answer service behind one API.
type Client struct {
	cfg    *config.Config
	repo   store.EntryRepository
	tables store.TableLister
	cache  *badger.Cache
	svc    ai.AnswerService
	ranker *match.Ranker
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	repo   store.EntryRepository
	tables store.TableLister
	svc    ai.AnswerService
	cache  *badger.Cache
}

// WithRepository injects a custom entry repository, replacing the Feishu
// client built from configuration. Mainly for tests.
func WithRepository(repo store.EntryRepository) ClientOption {
	return func(o *clientOptions) {
		o.repo = repo
		if lister, ok := repo.(store.TableLister); ok {
			o.tables = lister
		}
	}
}

// WithAnswerService injects a custom answer service, replacing the
// OpenAI-compatible client built from configuration. Mainly for tests.
func WithAnswerService(svc ai.AnswerService) ClientOption {
	return func(o *clientOptions) {
		o.svc = svc
	}
}

// WithCache injects an already-open entry cache.
func WithCache(cache *badger.Cache) ClientOption {
	return func(o *clientOptions) {
		o.cache = cache
	}
}

// NewClient builds a client from configuration. Components not injected
// via options are constructed from cfg; the Feishu repository requires
// complete credentials unless one is injected.
func NewClient(cfg *config.Config, opts ...ClientOption) (*Client, error) {
	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	repo := options.repo
	tables := options.tables
	if repo == nil {
		if err := cfg.ValidateFeishu(); err != nil {
			return nil, err
		}
		fc, err := feishu.NewClient(
			cfg.Feishu.AppID, cfg.Feishu.AppSecret,
			cfg.Feishu.AppToken, cfg.Feishu.TableID,
		)
		if err != nil {
			return nil, err
		}
		repo = fc
		tables = fc
	}

	cache := options.cache
	if cache == nil {
		var err error
		cache, err = badger.OpenCache(cfg.Cache.Dir, cfg.Cache.InMemory)
		if err != nil {
			repo.Close()
			return nil, err
		}
	}

	svc := options.svc
	if svc == nil {
		var err error
		svc, err = openai.NewService(cfg.AIServiceConfig())
		if err != nil {
			cache.Close()
			repo.Close()
			return nil, err
		}
	}

	ranker, err := match.NewRanker()
	if err != nil {
		cache.Close()
		repo.Close()
		return nil, err
	}

	return &Client{
		cfg:    cfg,
		repo:   repo,
		tables: tables,
		cache:  cache,
		svc:    svc,
		ranker: ranker,
		logger: slog.Default().With("component", "answerkit"),
	}, nil
}

// Close releases every component.
func (c *Client) Close() error {
	c.ranker.Release()

	if err := c.cache.Close(); err != nil {
		c.logger.Error("error closing entry cache", "err", err)
		return err
	}
	if err := c.repo.Close(); err != nil {
		c.logger.Error("error closing repository", "err", err)
		return err
	}
	return nil
}

// Sync pulls the full Answers table and upserts it into the local cache.
// Returns the total row count and how many rows were new or changed.
func (c *Client) Sync(ctx context.Context) (total, changed int, err error) {
	entries, err := c.repo.ListEntries(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("listing remote entries: %w", err)
	}

	changed, err = c.cache.PutEntries(ctx, entries)
	if err != nil {
		return 0, 0, fmt.Errorf("caching entries: %w", err)
	}

	c.logger.Info("synced entries", "total", len(entries), "changed", changed)
	return len(entries), changed, nil
}

// Search ranks cached entries against a free-text query and returns the
// top limit results in descending relevance order. limit <= 0 returns
// everything.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]core.ScoredEntry, error) {
	entries, err := c.cache.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	results := c.ranker.Rank(query, entries)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Tables enumerates the tables of the configured Bitable app.
func (c *Client) Tables(ctx context.Context) ([]store.Table, error) {
	if c.tables == nil {
		return nil, errors.New("answerkit: repository does not support table listing")
	}
	return c.tables.ListTables(ctx)
}

// Entry returns one entry by record reference, preferring the local cache
// and falling back to the remote table.
func (c *Client) Entry(ctx context.Context, recordID string) (*core.Entry, error) {
	entry, err := c.cache.GetEntry(ctx, recordID)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return c.repo.GetEntry(ctx, recordID)
}

// OptimizeEntry runs answer optimization for one entry's standard answer,
// using the entry's question and metadata as context. The second return
// value is the raw model response.
func (c *Client) OptimizeEntry(ctx context.Context, recordID string) (core.OptimizedAnswer, string, error) {
	entry, err := c.Entry(ctx, recordID)
	if err != nil {
		return core.OptimizedAnswer{}, "", err
	}
	return c.svc.OptimizeAnswer(ctx, entry.StandardAnswer, entryContext(entry))
}

// ReviewEntry runs an AI review over one entry's standard answer.
func (c *Client) ReviewEntry(ctx context.Context, recordID string) (core.ReviewResult, error) {
	entry, err := c.Entry(ctx, recordID)
	if err != nil {
		return core.ReviewResult{}, err
	}
	return c.svc.ReviewAnswer(ctx, entry.StandardAnswer, entryContext(entry))
}

// CheckEntryRisk runs the fast risk screen over one entry's standard answer.
func (c *Client) CheckEntryRisk(ctx context.Context, recordID string) (core.RiskCheck, error) {
	entry, err := c.Entry(ctx, recordID)
	if err != nil {
		return core.RiskCheck{}, err
	}
	return c.svc.CheckRisk(ctx, entry.StandardAnswer)
}

// UpdateAnswer writes a new standard answer back to the remote table and
// refreshes the cached copy.
func (c *Client) UpdateAnswer(ctx context.Context, recordID, answer string) error {
	entry, err := c.Entry(ctx, recordID)
	if err != nil {
		return err
	}

	entry.StandardAnswer = answer
	if err := c.repo.UpdateEntry(ctx, entry); err != nil {
		return err
	}

	if err := c.cache.PutEntry(ctx, entry); err != nil {
		// The remote write succeeded; a stale cache row will be corrected
		// on the next sync.
		c.logger.Warn("failed to refresh cached entry", "record_id", recordID, "err", err)
	}
	return nil
}

// Ping verifies the answer service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.svc.Ping(ctx)
}

// entryContext renders an entry's metadata as prompt context, skipping
// placeholder fields.
func entryContext(entry *core.Entry) string {
	var b strings.Builder
	for _, pair := range []struct{ label, value string }{
		{"问题", entry.Question},
		{"使用场景", entry.Scene},
		{"语气", entry.Tone},
		{"对应产品", entry.ProductName},
	} {
		if pair.value == "" || pair.value == "-" {
			continue
		}
		fmt.Fprintf(&b, "%s：%s\n", pair.label, pair.value)
	}
	return strings.TrimSpace(b.String())
}
