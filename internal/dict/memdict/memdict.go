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

// Package memdict implements [dict.Dictionary] entirely in memory, built
// from literal [expr.Node] trees rather than parsed from a dictionary
// file, so the parsing core's end-to-end scenarios (spec.md §8) and this
// module's own tests can run without a real dictionary backend.
package memdict

import (
	"fmt"
	"path"
	"sync"

	"github.com/google/uuid"

	"github.com/go-linkgrammar/lgcore/internal/affix"
	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/expr"
	"github.com/go-linkgrammar/lgcore/internal/core/postprocess"
	"github.com/go-linkgrammar/lgcore/internal/dict"
)

// Dictionary is an in-memory, mutable-until-Finalize implementation of
// [dict.Dictionary].
type Dictionary struct {
	mu sync.Mutex

	words  map[string][]dict.Entry
	desc   *condesc.Table
	aff    *affix.Table
	config dict.Config
	dial   *expr.DialectTable
	pp     *postprocess.Knowledge

	idiomCounter int
	buildID      uuid.UUID
	finalized    bool
}

// New returns an empty, mutable Dictionary sharing desc as its connector
// descriptor table (the caller owns interning descriptors into it via
// [condesc.Table.Add] while constructing entries).
func New(desc *condesc.Table) *Dictionary {
	return &Dictionary{
		words:  make(map[string][]dict.Entry),
		desc:   desc,
		config: make(dict.Config),
	}
}

// AddWord appends entries to word's entry list.
func (d *Dictionary) AddWord(word string, entries ...dict.Entry) {
	d.words[word] = append(d.words[word], entries...)
}

// SetAffix installs the dictionary's affix table.
func (d *Dictionary) SetAffix(t *affix.Table) { d.aff = t }

// SetDefine installs a `#define`-style configuration value.
func (d *Dictionary) SetDefine(name, value string) { d.config[name] = value }

// SetDialect installs the dictionary's cost-overlay table.
func (d *Dictionary) SetDialect(t *expr.DialectTable) { d.dial = t }

// SetPostProcessRules installs the dictionary's postprocessing knowledge.
func (d *Dictionary) SetPostProcessRules(k *postprocess.Knowledge) { d.pp = k }

// NextIdiomTag returns the next name in this dictionary's rolling
// base-26 idiom-connector counter (A, B, ..., Z, AA, AB, ...), grounded
// on the original's process-global current_idiom counter (spec.md §9),
// modeled here as per-dictionary state advanced only during dictionary
// build.
func (d *Dictionary) NextIdiomTag() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.idiomCounter
	d.idiomCounter++
	return base26(n)
}

func base26(n int) string {
	var b []byte
	for {
		b = append([]byte{byte('A' + n%26)}, b...)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return string(b)
}

// Finalize freezes the descriptor table and stamps a build id. It must
// be called once, after every entry has been added, before the
// dictionary is used to parse.
func (d *Dictionary) Finalize() *Dictionary {
	if d.finalized {
		return d
	}
	d.desc.Finalize()
	d.buildID = uuid.New()
	d.finalized = true
	return d
}

// BuildID returns a stable, per-build identifier attached for test
// fixtures and diagnostics; it is not part of the parsing algorithm.
func (d *Dictionary) BuildID() uuid.UUID { return d.buildID }

// Lookup implements [dict.Dictionary].
func (d *Dictionary) Lookup(word string) ([]dict.Entry, error) {
	return d.words[word], nil
}

// LookupWild implements [dict.Dictionary]'s wildcard lookup using shell-
// glob semantics (`*`, `?`), matching the original's `!!pattern` debug
// command.
func (d *Dictionary) LookupWild(pattern string) ([]dict.Entry, error) {
	var out []dict.Entry
	for w, entries := range d.words {
		ok, err := path.Match(pattern, w)
		if err != nil {
			return nil, fmt.Errorf("memdict: bad wildcard %q: %w", pattern, err)
		}
		if ok {
			out = append(out, entries...)
		}
	}
	return out, nil
}

// Descriptors implements [dict.Dictionary].
func (d *Dictionary) Descriptors() *condesc.Table { return d.desc }

// Affix implements [dict.Dictionary].
func (d *Dictionary) Affix() *affix.Table { return d.aff }

// Define implements [dict.Dictionary].
func (d *Dictionary) Define(name string) (string, bool) { return d.config.Get(name) }

// Dialect implements [dict.Dictionary].
func (d *Dictionary) Dialect() *expr.DialectTable { return d.dial }

// PostProcessRules implements [dict.Dictionary].
func (d *Dictionary) PostProcessRules() *postprocess.Knowledge { return d.pp }
