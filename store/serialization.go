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
	"fmt"

	"github.com/mus-format/mus-go/ord"

	"github.com/caresuite/answerkit/core"
)

// entryFields returns pointers to an entry's fields in serialization order.
// The order is part of the on-disk format and must not change.
func entryFields(e *core.Entry) []*string {
	return []*string{
		&e.RecordID, &e.Question, &e.StandardAnswer, &e.EnableStatus,
		&e.Scene, &e.Tone, &e.ProductName, &e.ProductID,
	}
}

// MarshalEntry serializes an Entry to bytes.
func MarshalEntry(e *core.Entry) []byte {
	fields := entryFields(e)

	size := 0
	for _, f := range fields {
		size += ord.String.Size(*f)
	}

	buf := make([]byte, size)
	n := 0
	for _, f := range fields {
		n += ord.String.Marshal(*f, buf[n:])
	}
	return buf
}

// UnmarshalEntry deserializes an Entry from bytes.
func UnmarshalEntry(data []byte) (*core.Entry, error) {
	entry := &core.Entry{}

	n := 0
	for _, f := range entryFields(entry) {
		value, consumed, err := ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
		*f = value
		n += consumed
	}
	return entry, nil
}
