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
	"sync/atomic"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/disjunct"
)

// passCounter hands out the monotonically increasing pass numbers used to
// stamp connectors via [disjunct.Connector.Seen], so that a tail shared
// by many disjuncts is examined once per direction per round regardless
// of how many disjuncts reference it. It is shared by every parse in the
// process and incremented atomically.
var passCounter int64

func nextPass() int {
	return int(atomic.AddInt64(&passCounter, 1))
}

// powerRound runs one full left-to-right pass followed by one full
// right-to-left pass (§4.4.3: "each pass alternates direction"),
// removing disjuncts left with an invalidated connector after each
// half, and reports whether anything changed.
func powerRound(words []*Word) (bool, error) {
	changed := false

	leftTable := buildSideTables(words, -1)
	ltrPass := nextPass()
	for _, w := range words {
		for _, d := range w.Disjuncts {
			if scanChain(d.Right, w.Index, +1, words, leftTable, ltrPass) {
				changed = true
			}
		}
	}
	if removeDeadAll(words) {
		changed = true
	}

	rightTable := buildSideTables(words, +1)
	rtlPass := nextPass()
	for _, w := range words {
		for _, d := range w.Disjuncts {
			if scanChain(d.Left, w.Index, -1, words, rightTable, rtlPass) {
				changed = true
			}
		}
	}
	if removeDeadAll(words) {
		changed = true
	}

	return changed, nil
}

// sideTable maps a word index to, within that word's live disjuncts, a
// bucketing of one side's connectors by uppercase-prefix number.
type sideTable map[int]map[int32][]*disjunct.Connector

// buildSideTables collects every live connector facing dir (+1 for
// Right/Plus, -1 for Left/Minus) across words, bucketed by word then by
// [condesc.Descriptor.UCNum], mirroring the original's per-word hash
// tables (§4.4.3).
func buildSideTables(words []*Word, dir int) sideTable {
	t := make(sideTable, len(words))
	for _, w := range words {
		buckets := make(map[int32][]*disjunct.Connector)
		for _, d := range w.Disjuncts {
			head := d.Right
			if dir < 0 {
				head = d.Left
			}
			for c := head; c != nil; c = c.Next {
				if !c.Valid() {
					continue
				}
				buckets[c.Desc.UCNum] = append(buckets[c.Desc.UCNum], c)
			}
		}
		if len(buckets) > 0 {
			t[w.Index] = buckets
		}
	}
	return t
}

// scanChain visits every not-yet-invalid, not-yet-seen-this-pass
// connector in the chain starting at head, searches for a matching
// partner in partners, and either tightens its bounds or invalidates it.
// It reports whether anything changed.
func scanChain(head *disjunct.Connector, word, dir int, words []*Word, partners sideTable, passNum int) bool {
	changed := false
	for c := head; c != nil; c = c.Next {
		if !c.Valid() {
			continue
		}
		if c.Seen(passNum) {
			continue
		}
		matched, tightened := tryMatch(c, word, dir, len(words), partners)
		if !matched {
			c.Invalidate()
			changed = true
			continue
		}
		if tightened {
			changed = true
		}
	}
	return changed
}

// tryMatch searches every candidate word between c.NearestWord and
// c.FarthestWord for a partner connector satisfying the matching
// algebra (§4.4.1) and the power-pruning depth rules (§4.4.3), and if
// found tightens c's bounds to the nearest/farthest matching word. For a
// left-facing connector (dir < 0) NearestWord is the larger index, so
// the nearest matching word is the largest one.
func tryMatch(c *disjunct.Connector, word, dir, numWords int, partners sideTable) (matched, tightened bool) {
	lo, hi := c.NearestWord, c.FarthestWord
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi > numWords-1 {
		hi = numWords - 1
	}

	bestNear, bestFar := -1, -1
	for wp := lo; wp <= hi; wp++ {
		if wp == word {
			continue
		}
		buckets, ok := partners[wp]
		if !ok {
			continue
		}
		for _, c2 := range buckets[c.Desc.UCNum] {
			if !c2.Valid() {
				continue
			}
			if !condesc.Match(c.Desc, c2.Desc) {
				continue
			}
			if !depthCompatible(c, c2, word, wp) {
				continue
			}
			matched = true
			if bestNear == -1 || wp < bestNear {
				bestNear = wp
			}
			if wp > bestFar {
				bestFar = wp
			}
		}
	}
	if !matched {
		return false, false
	}
	near, far := bestNear, bestFar
	if dir < 0 {
		near, far = bestFar, bestNear
	}
	if near != c.NearestWord {
		c.NearestWord = near
		tightened = true
	}
	if far != c.FarthestWord {
		c.FarthestWord = far
		tightened = true
	}
	return true, tightened
}

// depthCompatible implements the three depth rules from the original's
// POWER-PRUNE comment (parse/prune.c): a connector is "deep" if it is
// not the first (shallow) connector in its disjunct's chain, and
// "deepest" if it is the last. Two deep connectors can never attach; on
// adjacent words only the deepest pair may attach; on non-adjacent words
// at least one of the pair must not be deepest.
func depthCompatible(c, c2 *disjunct.Connector, w, wp int) bool {
	deepC := !c.Shallow
	deepC2 := !c2.Shallow
	if deepC && deepC2 {
		return false
	}

	deepestC := c.Next == nil
	deepestC2 := c2.Next == nil
	adjacent := w-wp == 1 || wp-w == 1
	if adjacent {
		return deepestC && deepestC2
	}
	return !(deepestC && deepestC2)
}

// removeDeadAll calls [removeDead] on every word and reports whether any
// word lost a disjunct.
func removeDeadAll(words []*Word) bool {
	changed := false
	for _, w := range words {
		if removeDead(w) {
			changed = true
		}
	}
	return changed
}
