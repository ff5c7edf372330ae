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

package linkage

import (
	"sort"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/disjunct"
)

// pending is a still-unsatisfied Right connector, waiting for some later
// word's Left connector to close it.
type pending struct {
	conn *disjunct.Connector
	word int
}

// planarMatch realizes the nested-interval planarity rule of §4.5 as a
// stack discipline: scanning words left to right, a word's Left
// connectors must close the most recently opened still-pending Right
// connectors, in shallow-to-deep order, and its own Right connectors are
// then pushed on top, shallowest last so it is popped first. Closing
// only ever the top of the stack is exactly the "no further link may
// reach outside the interval opened by the pair most recently formed"
// restriction stated in the specification; it is also what makes the
// resulting match deterministic given a disjunct assignment; the
// backtracking in [Enumerate] is over disjunct choice, not over this
// step.
//
// It returns a single-element slice holding the complete link set if
// chosen's connectors admit exactly one planar matching, or nil if they
// admit none (a mismatched pair, an unmatched leftover, or a connector
// whose distance bound rules out its partner).
func planarMatch(words []*Word, chosen map[int]*disjunct.Disjunct) [][]Link {
	ordered := make([]*Word, len(words))
	copy(ordered, words)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	var stack []pending
	var links []Link

	for _, w := range ordered {
		d, ok := chosen[w.Index]
		if !ok {
			continue
		}

		for c := d.Left; c != nil; c = c.Next {
			if len(stack) == 0 {
				return nil
			}
			top := stack[len(stack)-1]
			if !connectorsLink(top.conn, top.word, c, w.Index) {
				return nil
			}
			stack = stack[:len(stack)-1]
			links = append(links, Link{
				LWord: top.word, RWord: w.Index,
				LConn: top.conn, RConn: c,
				Name: condesc.Intersect(top.conn.Desc, c.Desc),
			})
		}

		right := disjunct.Sequence(d.Right)
		for i := len(right) - 1; i >= 0; i-- {
			stack = append(stack, pending{conn: right[i], word: w.Index})
		}
	}

	if len(stack) != 0 {
		return nil
	}
	return [][]Link{links}
}

// connectorsLink reports whether a Right connector opened at word rw can
// be closed by a Left connector at word lw: both must still be valid,
// must satisfy the matching algebra (§4.4.1), and each must fall within
// the other's nearest/farthest bound (§4.4.3). A left-facing connector
// stores its bound with NearestWord > FarthestWord, so the range is taken
// between the smaller and the larger of the two.
func connectorsLink(r *disjunct.Connector, rw int, l *disjunct.Connector, lw int) bool {
	if !r.Valid() || !l.Valid() {
		return false
	}
	if !condesc.Match(r.Desc, l.Desc) {
		return false
	}
	inBounds := func(w int, c *disjunct.Connector) bool {
		lo, hi := c.NearestWord, c.FarthestWord
		if lo > hi {
			lo, hi = hi, lo
		}
		return w >= lo && w <= hi
	}
	return inBounds(lw, r) && inBounds(rw, l)
}
