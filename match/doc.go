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


// Package match ranks knowledge-base entries against free-text queries.
//
// Matching is built from four layers:
//   - a tokenizer that splits mixed Chinese/ASCII text into normalized tokens
//   - a single-hop synonym resolver over a static table
//   - a tiered keyword matcher scoring one token sequence against another
//   - a relevance scorer combining forward/reverse and question/answer
//     weighted matcher runs into a single 0-100 score per entry
//
// Everything here is deterministic, side-effect-free, and safe for unlimited
// concurrent callers: the only shared state is the read-only stop-word set
// and synonym table.
package match
