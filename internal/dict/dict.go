// Copyright 2020 CUE Authors
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

// Package dict defines the external-interface contracts of §6: what the
// parsing core consumes from a dictionary implementation. File-parsing
// dictionary backends are out of scope per spec.md §1; this package ships
// only the contract and, in its memdict subpackage, a small in-memory
// implementation used to exercise the core end to end.
package dict

import (
	"github.com/go-linkgrammar/lgcore/internal/affix"
	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/expr"
	"github.com/go-linkgrammar/lgcore/internal/core/postprocess"
)

// Entry is one dictionary entry for a word: a disjunction subscript
// (purely for diagnostics, matching the original's ".v", ".n" style
// display suffixes) and the expression tree it contributes.
type Entry struct {
	Subscript string
	Expr      expr.Node
}

// Dictionary is everything the parsing core consumes from the
// dictionary layer, per §6.
type Dictionary interface {
	// Lookup returns every entry for the exact token word.
	Lookup(word string) ([]Entry, error)
	// LookupWild returns every entry whose word matches the wildcard
	// pattern, for command-line debugging.
	LookupWild(pattern string) ([]Entry, error)
	// Descriptors returns the dictionary's finalized connector
	// descriptor table.
	Descriptors() *condesc.Table
	// Affix returns the dictionary's affix table, or nil if none.
	Affix() *affix.Table
	// Define looks up a named configuration value (dictionary-locale,
	// dictionary-version, max-disjunct-cost, max-disjuncts,
	// disable-downcasing, empty-connector, allow-duplicate-words).
	Define(name string) (string, bool)
	// Dialect returns the dictionary's cost-overlay table, or nil if
	// none is configured.
	Dialect() *expr.DialectTable
	// PostProcessRules returns the dictionary's postprocessing knowledge,
	// or nil if none is configured.
	PostProcessRules() *postprocess.Knowledge
}
