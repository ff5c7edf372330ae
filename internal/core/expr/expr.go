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

// Package expr implements the Expression Engine (§4.2): per-word boolean
// expressions over connectors, built once per dictionary entry and shared
// by reference across words, following the sharing discipline of
// [cuelang.org/go/internal/core/adt] (interior nodes are immutable;
// growth happens by linking, never by in-place mutation).
package expr

import "github.com/go-linkgrammar/lgcore/internal/core/condesc"

// A Direction is the linking direction of a leaf connector: Plus connects
// to a word further to the right, Minus to a word further to the left.
type Direction int8

const (
	Plus  Direction = 1
	Minus Direction = -1
)

func (d Direction) String() string {
	if d == Plus {
		return "+"
	}
	return "-"
}

// Kind discriminates the three node shapes of §3's expression tree.
type Kind int8

const (
	LeafKind Kind = iota
	AndKind
	OrKind
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "LEAF"
	case AndKind:
		return "AND"
	case OrKind:
		return "OR"
	default:
		return "?"
	}
}

// Node is a tree node of an expression: a LEAF, an AND, or an OR, per §3.
// Concrete implementations are *Leaf, *And, and *Or. Node values are
// immutable once constructed; [Copy] produces new trees instead of
// mutating existing ones.
type Node interface {
	Kind() Kind
	// NodeCost is the additive cost contribution carried directly by
	// this node (a bracket or numeric-suffix cost for And/Or, or the
	// LEAF's own cost). It is not the cost of any particular
	// derivation; see the disjunct builder for derivation cost.
	NodeCost() float32
	// NodeTag is the dialect-component or macro index annotating this
	// node, or -1 if none.
	NodeTag() int
	node()
}

// Leaf is a LEAF node: a single connector occurrence.
type Leaf struct {
	Desc  *condesc.Descriptor
	Dir   Direction
	Multi bool // may satisfy arbitrarily many matching partners
	Cost  float32
	Tag   int
}

func (l *Leaf) Kind() Kind       { return LeafKind }
func (l *Leaf) NodeCost() float32 { return l.Cost }
func (l *Leaf) NodeTag() int     { return l.Tag }
func (*Leaf) node()              {}

// And is an AND node: every child must be satisfied. Children are
// ordered; the order encodes the "deepness" used by the disjunct builder
// (§4.3) when it concatenates child connector sequences.
type And struct {
	Children []Node
	Cost     float32
	Tag      int
}

func (a *And) Kind() Kind        { return AndKind }
func (a *And) NodeCost() float32 { return a.Cost }
func (a *And) NodeTag() int      { return a.Tag }
func (*And) node()               {}

// Or is an OR node: exactly one child is chosen. Children are unordered
// semantically.
type Or struct {
	Children []Node
	Cost     float32
	Tag      int
}

func (o *Or) Kind() Kind        { return OrKind }
func (o *Or) NodeCost() float32 { return o.Cost }
func (o *Or) NodeTag() int      { return o.Tag }
func (*Or) node()               {}

// noTag marks a node as not belonging to any dialect component or macro.
const noTag = -1

// Zero is the zeroary AND: the "always satisfied with zero connectors"
// node used as the base case of derivation and as one branch of
// [Optional].
var Zero Node = &And{Tag: noTag}

// MakeLeaf constructs a LEAF node for desc in direction dir.
func MakeLeaf(desc *condesc.Descriptor, dir Direction, multi bool, cost float32) *Leaf {
	return &Leaf{Desc: desc, Dir: dir, Multi: multi, Cost: cost, Tag: noTag}
}

// MakeAnd constructs an AND of the given children with an additive cost
// contribution. A single child collapses to itself with the cost added
// directly onto it is not correct in general (it would mutate a shared
// node), so instead a unary AND collapses to a fresh node carrying the
// summed cost, per §4.2's normalization rule.
func MakeAnd(cost float32, children ...Node) Node {
	switch len(children) {
	case 0:
		if cost == 0 {
			return Zero
		}
		return &And{Cost: cost, Tag: noTag}
	case 1:
		return addCost(children[0], cost)
	default:
		return &And{Children: children, Cost: cost, Tag: noTag}
	}
}

// MakeOr constructs an OR of the given children with an additive cost
// contribution, collapsing a unary OR the same way MakeAnd does.
func MakeOr(cost float32, children ...Node) Node {
	switch len(children) {
	case 0:
		return &Or{Cost: cost, Tag: noTag}
	case 1:
		return addCost(children[0], cost)
	default:
		return &Or{Children: children, Cost: cost, Tag: noTag}
	}
}

// Optional wraps e so that it may be satisfied with zero connectors,
// per §4.2: optional(e) := or(zeroary_and, e).
func Optional(e Node) Node {
	return &Or{Children: []Node{Zero, e}, Tag: noTag}
}

// addCost returns a node equivalent to n but with delta added to its own
// cost contribution, wrapping n in a trivial AND if delta is nonzero and
// n cannot absorb the addition without being mutated (n may be shared).
func addCost(n Node, delta float32) Node {
	if delta == 0 {
		return n
	}
	switch x := n.(type) {
	case *Leaf:
		y := *x
		y.Cost += delta
		return &y
	case *And:
		if len(x.Children) == 0 {
			y := *x
			y.Cost += delta
			return &y
		}
	case *Or:
	}
	return &And{Children: []Node{n}, Cost: delta, Tag: noTag}
}

// Size counts the number of LEAF nodes reachable from e, following every
// branch of every OR (so Size is an upper bound on the number of
// distinct derivations' leaf occurrences, not the number of derivations).
func Size(e Node) int {
	switch x := e.(type) {
	case *Leaf:
		return 1
	case *And:
		n := 0
		for _, c := range x.Children {
			n += Size(c)
		}
		return n
	case *Or:
		n := 0
		for _, c := range x.Children {
			n += Size(c)
		}
		return n
	default:
		return 0
	}
}
