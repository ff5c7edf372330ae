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

// Package affix models the affix table of §6: a dictionary-owned, named
// set of token classes (quotes, bullets, units, prefixes, suffixes) plus
// a regular expression used to decide whether a token looks enough like
// a word to be worth splitting, grounded on the original's
// dict-common/dict-affix.c (affix_list, "SANE_MORPHISM" regex).
//
// This package owns only the data model; the tokenizer that consults it
// during dictionary lookup is out of scope, per spec.md §1.
package affix

import "regexp"

// Standard affix class names, matching the original's AFDICT_* string
// constants.
const (
	Quotes   = "quotes"
	Bullets  = "bullets"
	Units    = "units"
	Prefixes = "prefixes"
	Suffixes = "suffixes"
)

// Table is an immutable, finalized affix table.
type Table struct {
	classes      map[string][]string
	saneMorphism *regexp.Regexp
}

// New builds a Table from named classes and an optional sane-morphism
// pattern. An empty pattern disables the check (every token is
// considered morphologically sane), matching the original's behavior
// when no SANE_MORPHISM regex is defined.
func New(classes map[string][]string, saneMorphism string) (*Table, error) {
	t := &Table{classes: make(map[string][]string, len(classes))}
	for name, members := range classes {
		t.classes[name] = append([]string(nil), members...)
	}
	if saneMorphism != "" {
		re, err := regexp.Compile(saneMorphism)
		if err != nil {
			return nil, err
		}
		t.saneMorphism = re
	}
	return t, nil
}

// Class returns the members of the named affix class, or nil if the
// table defines no such class.
func (t *Table) Class(name string) []string {
	if t == nil {
		return nil
	}
	return t.classes[name]
}

// Has reports whether s is a member of the named affix class.
func (t *Table) Has(name, s string) bool {
	for _, m := range t.Class(name) {
		if m == s {
			return true
		}
	}
	return false
}

// SaneMorphism reports whether s passes the table's sane-morphism check;
// a table with no configured pattern accepts every string.
func (t *Table) SaneMorphism(s string) bool {
	if t == nil || t.saneMorphism == nil {
		return true
	}
	return t.saneMorphism.MatchString(s)
}
