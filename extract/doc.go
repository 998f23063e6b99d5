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


// Package extract turns semi-structured generative-text responses into
// typed result records.
//
// Three independent parsers live here: the optimized-answer parser, the
// review-result parser, and the risk-check parser. The first two are
// ordered rule cascades with graceful fallback — a missing structure in the
// upstream text is expected and common, so no parser ever returns an error.
// Callers must treat every output as valid and inspect the degraded shape
// (empty conclusion, IsComplete=false, whole-input fallback) instead of
// expecting failures. The risk-check parser is intentionally strict because
// its output gates a binary decision downstream.
package extract
