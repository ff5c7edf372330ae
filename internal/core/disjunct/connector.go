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

// Package disjunct implements the Disjunct Builder (§4.3): it expands an
// expression tree into a flat list of disjuncts, hash-consing shared
// connector tails ("tracons") the way the original's Connector struct
// forms a refcounted linked list, and the way
// [cuelang.org/go/internal/core/adt]'s sharing machinery (see share.go)
// keeps immutable substructure pointer-shared instead of copied.
package disjunct

import "github.com/go-linkgrammar/lgcore/internal/core/condesc"

// BadWord is a nearest/farthest word sentinel meaning "no word can ever
// satisfy this", matching the original's BAD_WORD convention (a
// connector whose nearest_word has been invalidated by pruning).
const BadWord = -1

// Connector is the runtime, per-sentence form of a LEAF bound into a
// disjunct, per §3 "Connector (post-pack)". Connectors form a singly
// linked chain from shallow to deep: Next points to the next deeper
// connector on the same side of the same disjunct, or nil if this is the
// innermost (deepest) connector. Identical chains are shared across the
// disjuncts of one word via a [TraconTable], which is why RefCount exists:
// invalidating a connector during pruning must know how many disjuncts
// still depend on it before the chain can be discarded.
type Connector struct {
	Desc  *condesc.Descriptor
	Dir   int8 // +1 or -1, matching expr.Direction's encoding
	Multi bool

	// LengthLimit is this connector's length limit, copied unchanged
	// from Desc.LengthLimit when the disjunct is built.
	LengthLimit uint8

	// NearestWord/FarthestWord bound the words this connector could
	// ever link to, tightened monotonically by power pruning (§4.4.3).
	// NearestWord == BadWord marks the connector as pruned.
	NearestWord  int
	FarthestWord int

	// RefCount is the number of disjuncts that currently reference this
	// connector via some chain that starts at or before it.
	RefCount int

	// Shallow is true iff this connector is outermost on its side of
	// its disjunct (index 0 of the conceptual sequence).
	Shallow bool

	// Provenance records which dictionary entry contributed this
	// connector, for diagnostics.
	Provenance string

	// passMark is the pruning pass number at which this connector was
	// last visited, so that a shared tail is examined once per pass
	// regardless of how many disjuncts reference it (§4.4.3).
	passMark int

	// Next is the next deeper connector in the chain, or nil.
	Next *Connector
}

// Valid reports whether power pruning has not yet invalidated this
// connector.
func (c *Connector) Valid() bool { return c.NearestWord != BadWord }

// Invalidate marks c as unable to participate in any linkage and
// decrements its reference count, per §4.4.3's pruning-failure rule.
func (c *Connector) Invalidate() {
	c.NearestWord = BadWord
	if c.RefCount > 0 {
		c.RefCount--
	}
}

// Seen reports whether c has already been visited during pruning pass p,
// and marks it as visited for p as a side effect. This implements the
// "each connector is visited at most once per pass via a pass-number
// stamp" rule of §4.4.3, which is what makes tracon sharing pay off: a
// tail referenced by a thousand disjuncts is still examined once.
func (c *Connector) Seen(p int) bool {
	if c.passMark == p {
		return true
	}
	c.passMark = p
	return false
}

// Sequence materializes the chain starting at c into a slice ordered
// shallow-to-deep (index 0 == c), matching §3's "index 0 is the
// shallowest (outermost)" convention. It is used where call sites need
// random access or a cost summary; the pruner itself walks the chain
// directly to avoid the allocation.
func Sequence(c *Connector) []*Connector {
	var out []*Connector
	for ; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}
