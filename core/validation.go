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


package core

import (
	"fmt"
	"strings"
)

// recordRefPrefix is the fixed prefix every Bitable record identifier carries.
const recordRefPrefix = "rec"

// IsValidRecordRef reports whether candidate is an acceptable opaque record
// identifier for write-back. The check is a trim followed by a case-sensitive
// prefix test; no other normalization is applied. It never panics, and an
// empty or whitespace-only candidate is simply invalid.
func IsValidRecordRef(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return false
	}
	return strings.HasPrefix(trimmed, recordRefPrefix)
}

// ValidateEntry validates an Entry according to domain rules.
//
// Validation rules:
//   - RecordID must be a valid record reference
//   - Question must not be empty
//
// NOT validated (display-only fields the table may omit):
//   - StandardAnswer, EnableStatus, Scene, Tone, ProductName, ProductID
func ValidateEntry(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if !IsValidRecordRef(entry.RecordID) {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrInvalidRecordRef)
	}

	if entry.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyQuestion)
	}

	return nil
}
