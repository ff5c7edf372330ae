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

package prune

import (
	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/expr"
)

// connectorSet is the "seen so far in this direction" set of §4.4.2,
// bucketed by uppercase prefix number for a cheap first filter before
// the full matching algebra runs.
type connectorSet map[int32][]*condesc.Descriptor

func (s connectorSet) has(d *condesc.Descriptor) bool {
	for _, o := range s[d.UCNum] {
		if condesc.Match(d, o) {
			return true
		}
	}
	return false
}

func (s connectorSet) add(d *condesc.Descriptor) {
	s[d.UCNum] = append(s[d.UCNum], d)
}

// PruneExpressions implements expression pruning (§4.4.2), the cheap
// pre-pass run on each word's expression tree before the disjunct
// builder ever runs: alternating left-to-right and right-to-left sweeps
// delete any LEAF facing back toward already-scanned words that cannot
// possibly match anything seen so far, collapsing ANDs and ORs per the
// purge semantics, until a full round deletes nothing. Grounded on the
// original's prepare/exprune.c.
//
// words[i] may be nil (a word with no expression at all); the result
// may likewise contain nil entries, for a word whose entire expression
// was purged away.
func PruneExpressions(words []expr.Node) []expr.Node {
	cur := append([]expr.Node(nil), words...)
	for {
		changed := false
		if sweep(cur, expr.Minus, expr.Plus, false) {
			changed = true
		}
		if sweep(cur, expr.Plus, expr.Minus, true) {
			changed = true
		}
		if !changed {
			return cur
		}
	}
}

// sweep performs one directional pass over cur in place: backward is
// the direction of LEAFs subject to purging (those pointing toward
// words already scanned this pass), forward is the direction of LEAFs
// inserted into the running set after each word is purged, and reverse
// selects right-to-left iteration order. It reports whether anything was
// purged.
func sweep(cur []expr.Node, backward, forward expr.Direction, reverse bool) bool {
	changed := false
	seen := connectorSet{}
	n := len(cur)
	for k := 0; k < n; k++ {
		i := k
		if reverse {
			i = n - 1 - k
		}
		e := cur[i]
		if e == nil {
			continue
		}
		ne, alive, purged := purgeTree(e, backward, seen)
		if purged {
			changed = true
		}
		if !alive {
			cur[i] = nil
			continue
		}
		cur[i] = ne
		collectForward(ne, forward, seen)
	}
	return changed
}

// purgeTree implements the purge semantics of §4.4.2: a backward-facing
// LEAF with an empty match set is deleted; an AND with a deleted child
// is deleted entirely; an OR loses a deleted child's branch and is
// itself deleted only once every branch is gone.
func purgeTree(e expr.Node, backward expr.Direction, seen connectorSet) (out expr.Node, alive, purged bool) {
	switch x := e.(type) {
	case *expr.Leaf:
		if x.Dir != backward {
			return x, true, false
		}
		if seen.has(x.Desc) {
			return x, true, false
		}
		return nil, false, true
	case *expr.And:
		children := make([]expr.Node, 0, len(x.Children))
		for _, c := range x.Children {
			nc, calive, cpurged := purgeTree(c, backward, seen)
			if cpurged {
				purged = true
			}
			if !calive {
				return nil, false, true
			}
			children = append(children, nc)
		}
		return &expr.And{Children: children, Cost: x.Cost, Tag: x.Tag}, true, purged
	case *expr.Or:
		children := make([]expr.Node, 0, len(x.Children))
		for _, c := range x.Children {
			nc, calive, cpurged := purgeTree(c, backward, seen)
			if cpurged {
				purged = true
			}
			if calive {
				children = append(children, nc)
			}
		}
		if len(children) == 0 {
			return nil, false, true
		}
		if len(children) == 1 {
			return children[0], true, purged
		}
		return &expr.Or{Children: children, Cost: x.Cost, Tag: x.Tag}, true, purged
	default:
		return e, true, false
	}
}

// collectForward walks e and adds every LEAF pointing in direction
// forward to seen, regardless of which OR branch it lives in: until a
// derivation is actually chosen, any surviving branch is a hypothesis
// worth keeping later words' backward-facing LEAFs matched against.
func collectForward(e expr.Node, forward expr.Direction, seen connectorSet) {
	switch x := e.(type) {
	case *expr.Leaf:
		if x.Dir == forward {
			seen.add(x.Desc)
		}
	case *expr.And:
		for _, c := range x.Children {
			collectForward(c, forward, seen)
		}
	case *expr.Or:
		for _, c := range x.Children {
			collectForward(c, forward, seen)
		}
	}
}
