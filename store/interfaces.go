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

package store

import (
	"context"

	"github.com/caresuite/answerkit/core"
)

// Table identifies one table within a Bitable app.
type Table struct {
	ID   string
	Name string
}

// EntryRepository provides access to the knowledge-base Answers table.
// Implementations must be thread-safe for concurrent use.
type EntryRepository interface {
	// ListEntries returns every entry in the table. Paging is handled
	// internally; the returned slice is complete.
	ListEntries(ctx context.Context) ([]*core.Entry, error)

	// GetEntry returns a single entry by record reference.
	// Returns ErrNotFound (wrapped) if no such record exists.
	GetEntry(ctx context.Context, recordID string) (*core.Entry, error)

	// UpdateEntry writes the entry's fields back to its table row.
	// The entry's RecordID selects the row to update.
	UpdateEntry(ctx context.Context, entry *core.Entry) error

	// Close releases resources held by the repository.
	Close() error
}

// TableLister enumerates the tables of a Bitable app.
type TableLister interface {
	// ListTables returns the tables available in the configured app.
	ListTables(ctx context.Context) ([]Table, error)
}
