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

package condesc

import (
	"fmt"
	"sort"
)

// Table interns connector strings into canonical [Descriptor] values for
// the lifetime of a dictionary. A Table is safe for concurrent read-only
// use once [Table.Finalize] has returned; [Table.Add] itself is not
// concurrency-safe and must be called only while building the dictionary.
type Table struct {
	byString map[string]*Descriptor
	all      []*Descriptor
	numUC    int
	finalized bool
}

// NewTable returns an empty connector descriptor table.
func NewTable() *Table {
	return &Table{byString: make(map[string]*Descriptor)}
}

// Add interns s, returning its canonical [Descriptor]. Calling Add twice
// with the same string returns the same pointer (idempotent), mirroring
// condesc_add.
func (t *Table) Add(s string) (*Descriptor, error) {
	if d, ok := t.byString[s]; ok {
		return d, nil
	}
	headDep, ucStart, ucLen := split(s)
	if ucLen == 0 {
		return nil, fmt.Errorf("condesc: %q has no uppercase connector type", s)
	}
	subscript := s[ucStart+ucLen:]
	letters, mask, ok := encodeLC(subscript)
	if !ok {
		return nil, fmt.Errorf("condesc: %q has more than %d lowercase letters", s, MaxLCLetters)
	}

	d := &Descriptor{
		String:        s,
		ucStart:       ucStart,
		ucLength:      ucLen,
		lcLetters:     letters,
		lcMask:        mask,
		HeadDependent: headDep,
		LengthLimit:   0, // no limit unless SetUnlimited marks it UnlimitedLen
	}
	d.strHash = jenkinsHash(s)
	d.ucHash = jenkinsHash(s[ucStart : ucStart+ucLen])

	t.byString[s] = d
	t.all = append(t.all, d)
	return d, nil
}

// Lookup returns the descriptor for s if it has already been added.
func (t *Table) Lookup(s string) (*Descriptor, bool) {
	d, ok := t.byString[s]
	return d, ok
}

// Len reports the number of distinct connector strings interned so far.
func (t *Table) Len() int { return len(t.all) }

// All returns every interned descriptor in an unspecified but stable
// order. Callers must not mutate the returned slice's elements.
func (t *Table) All() []*Descriptor { return t.all }

// NumUC reports the number of distinct uppercase prefixes, valid only
// after Finalize.
func (t *Table) NumUC() int { return t.numUC }

// jenkinsHash computes the Jenkins one-at-a-time hash, matching
// connector_str_hash in the original's connectors.h.
func jenkinsHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Finalize sorts every interned descriptor by uppercase prefix
// (lexicographic, with a shorter prefix sorting before a longer one that
// it is itself a prefix of) and assigns each distinct prefix a sequential
// UCNum, implementing §4.1's "perfect hash over distinct uppercase
// prefixes" guarantee: for any two descriptors a, b now owned by t,
// a.UCPrefix() == b.UCPrefix() iff a.UCNum == b.UCNum. This mirrors
// sort_condesc_by_uc_constring.
func (t *Table) Finalize() {
	if t.finalized {
		return
	}
	sorted := append([]*Descriptor(nil), t.all...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UCPrefix() < sorted[j].UCPrefix()
	})

	ucNum := int32(1)
	for i, d := range sorted {
		if i > 0 && sorted[i-1].UCPrefix() != d.UCPrefix() {
			ucNum++
		}
		d.UCNum = ucNum
	}
	if len(sorted) > 0 {
		t.numUC = int(ucNum)
	}
	t.finalized = true
}

// SetUnlimited marks descriptors as having an unlimited length limit.
// When unlimitedExp is empty, every descriptor in the table is marked
// unlimited (the original's behavior when no "UNLIMITED-CONNECTORS"
// expression is defined). Otherwise only descriptors whose string
// easy_matches some string in unlimitedExp are marked, matching
// set_condesc_unlimited_length.
func (t *Table) SetUnlimited(unlimitedExp []string) {
	if len(unlimitedExp) == 0 {
		for _, d := range t.all {
			d.LengthLimit = UnlimitedLen
		}
		return
	}
	for _, d := range t.all {
		for _, pattern := range unlimitedExp {
			if EasyMatchString(pattern, d.String) {
				d.LengthLimit = UnlimitedLen
				break
			}
		}
	}
}
