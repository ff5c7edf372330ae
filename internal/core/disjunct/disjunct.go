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

import "github.com/go-linkgrammar/lgcore/internal/core/expr"

// Unbounded is the farthest-word bound a freshly built connector carries
// before a sentence length is known. The pruner rebinds it to the actual
// sentence length (or tighter) before its first power-pruning pass; nothing
// before that stage relies on its exact value, only on it comparing
// greater than any real word index.
const Unbounded = 1 << 30

// Disjunct is one derivation of a dictionary entry's expression: a
// concrete choice, for every OR encountered, of which branch to take,
// flattened into two connector chains per §3's "Disjunct (post-pack)".
// Left holds the Minus-direction connectors (link to a word to the left)
// and Right the Plus-direction connectors (link to a word to the right),
// each ordered shallowest-first as built by [Build].
type Disjunct struct {
	Left  *Connector
	Right *Connector

	// Cost is the sum of every LEAF, AND, and OR cost contribution along
	// this derivation's path through the expression tree.
	Cost float32

	// Provenance records the dictionary entry this disjunct was built
	// from, for diagnostics and for grouping disjuncts back by word.
	Provenance string

	// Category is the dictionary entry's category ordinal (an opaque
	// dictionary-assigned grouping); 0 if the entry carries none. The
	// linkage enumerator orders by Cost alone and does not read it.
	Category int
}

// derivation is one fully expanded AND/OR choice: an ordered sequence of
// leaf occurrences (in the expression's left-to-right child order) plus
// the accumulated cost of every node visited to produce it.
type derivation struct {
	leaves []*expr.Leaf
	cost   float32
}

// minCost returns the minimum cost achievable by any derivation of e,
// without enumerating them: a LEAF contributes its own cost, an AND
// requires every child so costs sum, an OR requires exactly one child so
// the minimum applies. Build uses this to bound the cartesian-product and
// union expansions below a caller-supplied maximum without visiting
// branches that could never come in under budget, per §4.3's
// "cost cutoff" paragraph.
func minCost(e expr.Node) float32 {
	switch x := e.(type) {
	case *expr.Leaf:
		return x.Cost
	case *expr.And:
		sum := x.Cost
		for _, c := range x.Children {
			sum += minCost(c)
		}
		return sum
	case *expr.Or:
		if len(x.Children) == 0 {
			return x.Cost
		}
		best := minCost(x.Children[0])
		for _, c := range x.Children[1:] {
			if m := minCost(c); m < best {
				best = m
			}
		}
		return x.Cost + best
	default:
		return 0
	}
}

// expand enumerates every derivation of e whose total cost does not
// exceed budget. It is the recursive core of [Build]: AND performs a
// cartesian product of its children's derivations (concatenating leaf
// sequences in child order, so "deeper" children's connectors end up
// later in the sequence, per §4.3's "AND concatenates, in order" rule),
// OR yields the union of its children's derivations, and LEAF yields a
// single one-leaf derivation.
func expand(e expr.Node, budget float32) []derivation {
	if minCost(e) > budget {
		return nil
	}
	switch x := e.(type) {
	case *expr.Leaf:
		return []derivation{{leaves: []*expr.Leaf{x}, cost: x.Cost}}
	case *expr.And:
		return expandAnd(x, budget)
	case *expr.Or:
		return expandOr(x, budget)
	default:
		return nil
	}
}

func expandAnd(x *expr.And, budget float32) []derivation {
	remaining := budget - x.Cost
	if remaining < 0 {
		return nil
	}
	n := len(x.Children)
	if n == 0 {
		return []derivation{{cost: x.Cost}}
	}

	// suffixMin[i] is the minimum possible cost of children i..n-1
	// combined, used to reserve budget for the children not yet chosen
	// while exploring child i.
	suffixMin := make([]float32, n+1)
	for i := n - 1; i >= 0; i-- {
		suffixMin[i] = suffixMin[i+1] + minCost(x.Children[i])
	}

	var rec func(i int, acc derivation) []derivation
	rec = func(i int, acc derivation) []derivation {
		if i == n {
			return []derivation{acc}
		}
		childBudget := remaining - acc.cost - suffixMin[i+1]
		kids := expand(x.Children[i], childBudget)
		var out []derivation
		for _, k := range kids {
			newCost := acc.cost + k.cost
			if newCost+suffixMin[i+1] > remaining {
				continue
			}
			leaves := make([]*expr.Leaf, 0, len(acc.leaves)+len(k.leaves))
			leaves = append(leaves, acc.leaves...)
			leaves = append(leaves, k.leaves...)
			out = append(out, rec(i+1, derivation{leaves: leaves, cost: newCost})...)
		}
		return out
	}

	parts := rec(0, derivation{})
	out := make([]derivation, len(parts))
	for i, p := range parts {
		out[i] = derivation{leaves: p.leaves, cost: x.Cost + p.cost}
	}
	return out
}

func expandOr(x *expr.Or, budget float32) []derivation {
	remaining := budget - x.Cost
	if remaining < 0 {
		return nil
	}
	var out []derivation
	for _, c := range x.Children {
		for _, k := range expand(c, remaining) {
			out = append(out, derivation{leaves: k.leaves, cost: x.Cost + k.cost})
		}
	}
	return out
}

// Build expands e into its full set of disjuncts, hash-consing shared
// connector tails through tab, discarding any derivation whose total
// cost exceeds maxCost. provenance is attached to every produced
// [Disjunct] and every newly interned [Connector].
//
// Grounded on the original's build_disjunct()/build_expression() pair
// from disjunct-utils.c: the two-pass shape (enumerate derivations, then
// split each into its Minus/Plus connector lists) mirrors build_disjunct
// walking the expression and appending onto a growing left/right
// connector list as it descends, while the hash-consing of shared tails
// follows this module's adaptation of connector sharing (see
// [TraconTable]).
func Build(e expr.Node, tab *TraconTable, maxCost float32, provenance string, category int) []*Disjunct {
	derivations := expand(e, maxCost)
	out := make([]*Disjunct, 0, len(derivations))
	for _, d := range derivations {
		var minus, plus []*expr.Leaf
		for _, l := range d.leaves {
			if l.Dir == expr.Minus {
				minus = append(minus, l)
			} else {
				plus = append(plus, l)
			}
		}
		out = append(out, &Disjunct{
			Left:       buildChain(tab, minus, provenance),
			Right:      buildChain(tab, plus, provenance),
			Cost:       d.cost,
			Provenance: provenance,
			Category:   category,
		})
	}
	return out
}

// buildChain conses leaves into a single connector chain, deepest first
// so that each cons extends an already-canonical tail, then marks the
// resulting head as shallow per §3's "index 0 is the shallowest"
// convention.
func buildChain(tab *TraconTable, leaves []*expr.Leaf, provenance string) *Connector {
	var tail *Connector
	for i := len(leaves) - 1; i >= 0; i-- {
		l := leaves[i]
		tail = tab.Cons(l.Desc, int8(l.Dir), l.Multi, l.Desc.LengthLimit, 0, Unbounded, provenance, tail)
	}
	if tail != nil {
		tail.Shallow = true
	}
	return tail
}
