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

package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/caresuite/answerkit/core"
	"github.com/caresuite/answerkit/store"
)

// Key prefixes for cached data.
const (
	entryPrefix       = "entry:"
	fingerprintPrefix = "fp:"
)

// Cache is a local BadgerDB store of knowledge-base entries keyed by
// record reference, with a content fingerprint per entry for change
// detection.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to the badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenCache opens a BadgerDB cache at the specified path.
// Creates the directory if it doesn't exist.
func OpenCache(filePath string, inMemory bool) (*Cache, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Cache{
		db:     db,
		logger: slog.Default().With("component", "badger-cache"),
	}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func makeEntryKey(recordID string) []byte {
	return []byte(entryPrefix + recordID)
}

func makeFingerprintKey(recordID string) []byte {
	return []byte(fingerprintPrefix + recordID)
}

// PutEntries upserts a batch of entries and returns how many of them were
// new or changed since the last sync, judged by content fingerprint.
// Cached entries absent from the batch are removed so the cache mirrors
// the remote table.
func (c *Cache) PutEntries(ctx context.Context, entries []*core.Entry) (int, error) {
	if c.db.IsClosed() {
		return 0, store.ErrStorageClosed
	}

	seen := make(map[string]bool, len(entries))
	changed := 0

	err := c.db.Update(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			seen[entry.RecordID] = true

			fp := core.FingerprintEntry(entry)
			fpBytes := make([]byte, 8)
			binary.BigEndian.PutUint64(fpBytes, fp)

			stored, err := readFingerprint(tx, entry.RecordID)
			if err == nil && stored == fp {
				continue
			}
			if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			if err := tx.Set(makeEntryKey(entry.RecordID), store.MarshalEntry(entry)); err != nil {
				return err
			}
			if err := tx.Set(makeFingerprintKey(entry.RecordID), fpBytes); err != nil {
				return err
			}
			changed++
		}

		return deleteStale(tx, seen)
	})
	if err != nil {
		return 0, err
	}

	c.logger.Debug("put entries", "total", len(entries), "changed", changed)
	return changed, nil
}

// PutEntry upserts a single entry without touching the rest of the cache.
// Used for write-back after editing one row.
func (c *Cache) PutEntry(ctx context.Context, entry *core.Entry) error {
	if c.db.IsClosed() {
		return store.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(tx *badger.Txn) error {
		fpBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(fpBytes, core.FingerprintEntry(entry))

		if err := tx.Set(makeEntryKey(entry.RecordID), store.MarshalEntry(entry)); err != nil {
			return err
		}
		return tx.Set(makeFingerprintKey(entry.RecordID), fpBytes)
	})
}

// readFingerprint returns the stored fingerprint for a record.
func readFingerprint(tx *badger.Txn, recordID string) (uint64, error) {
	item, err := tx.Get(makeFingerprintKey(recordID))
	if err != nil {
		return 0, err
	}
	var fp uint64
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return store.ErrSerializationFailed
		}
		fp = binary.BigEndian.Uint64(val)
		return nil
	})
	return fp, err
}

// deleteStale removes cached entries whose record IDs are not in keep.
func deleteStale(tx *badger.Txn, keep map[string]bool) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(entryPrefix)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)

	var stale []string
	for iter.Rewind(); iter.Valid(); iter.Next() {
		recordID := string(iter.Item().Key()[len(entryPrefix):])
		if !keep[recordID] {
			stale = append(stale, recordID)
		}
	}
	iter.Close()

	for _, recordID := range stale {
		if err := tx.Delete(makeEntryKey(recordID)); err != nil {
			return err
		}
		if err := tx.Delete(makeFingerprintKey(recordID)); err != nil {
			return err
		}
	}
	return nil
}

// ListEntries returns every cached entry.
func (c *Cache) ListEntries(ctx context.Context) ([]*core.Entry, error) {
	if c.db.IsClosed() {
		return nil, store.ErrStorageClosed
	}

	var entries []*core.Entry
	err := c.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := iter.Item().Value(func(val []byte) error {
				entry, err := store.UnmarshalEntry(val)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry returns one cached entry by record reference.
// Returns store.ErrNotFound (wrapped) if the record is not cached.
func (c *Cache) GetEntry(ctx context.Context, recordID string) (*core.Entry, error) {
	if c.db.IsClosed() {
		return nil, store.ErrStorageClosed
	}

	var entry *core.Entry
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEntryKey(recordID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", store.ErrNotFound, recordID)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = store.UnmarshalEntry(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
