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

package disjunct

import "github.com/go-linkgrammar/lgcore/internal/core/condesc"

// TraconTable hash-conses connector chains ("tracons": suffixes of a
// disjunct's connector sequence) so that identical tails across the
// several dictionary entries expanded for one word share a single
// backing [Connector] chain, per §4.3's "Tracon interning" paragraph.
// A table is scoped to a single word, not the whole sentence: the
// NearestWord/FarthestWord bounds the pruner tightens on a connector are
// meaningful only relative to the word that connector's disjunct belongs
// to, so sharing a chain across two different words' disjuncts would
// make one word's pruning corrupt another's bounds. The caller builds
// one fresh TraconTable per word, the way the original builds one
// tracon-sharing structure per word's disjunct list.
type TraconTable struct {
	byKey map[traconKey]*Connector
}

// traconKey identifies a connector chain by its head's fields plus the
// identity of its already-interned tail. Descriptor pointers are stable
// identities because a [condesc.Table] never moves or duplicates a
// Descriptor once added, so pointer equality is the correct notion of
// "same connector type" here.
type traconKey struct {
	desc        *condesc.Descriptor
	dir         int8
	multi       bool
	lengthLimit uint8
	provenance  string
	next        *Connector
}

// NewTraconTable returns an empty tracon pool.
func NewTraconTable() *TraconTable {
	return &TraconTable{byKey: make(map[traconKey]*Connector)}
}

// Cons returns the canonical [Connector] for this (desc, dir, multi,
// lengthLimit, provenance, tail) combination, creating and interning it
// on first request. Callers build chains from the deepest connector
// outward, so tail is always already canonical, which makes the sharing
// exact: two disjuncts whose connectors agree from some point on to the
// end point at the very same [Connector] objects from that point on,
// matching the original's refcounted connector-sharing scheme.
//
// RefCount on the returned connector is incremented to reflect this new
// reference; callers that discard a chain without binding it into a
// disjunct must call [Connector.Invalidate] (or otherwise decrement) to
// avoid leaking the count.
func (t *TraconTable) Cons(desc *condesc.Descriptor, dir int8, multi bool, lengthLimit uint8, nearest, farthest int, provenance string, tail *Connector) *Connector {
	key := traconKey{desc: desc, dir: dir, multi: multi, lengthLimit: lengthLimit, provenance: provenance, next: tail}
	if c, ok := t.byKey[key]; ok {
		c.RefCount++
		if nearest < c.NearestWord {
			c.NearestWord = nearest
		}
		if farthest > c.FarthestWord {
			c.FarthestWord = farthest
		}
		return c
	}
	c := &Connector{
		Desc:         desc,
		Dir:          dir,
		Multi:        multi,
		LengthLimit:  lengthLimit,
		NearestWord:  nearest,
		FarthestWord: farthest,
		RefCount:     1,
		Provenance:   provenance,
		Next:         tail,
	}
	t.byKey[key] = c
	return c
}

// Len reports the number of distinct connectors interned so far.
func (t *TraconTable) Len() int { return len(t.byKey) }
