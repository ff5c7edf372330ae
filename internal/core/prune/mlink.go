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

import "github.com/go-linkgrammar/lgcore/internal/core/disjunct"

// mlinkBound reports, for one side of one word, whether every surviving
// disjunct carries a connector on that side (so the word is committed to
// linking there if it survives at all), and if so the tightest interval
// guaranteed to contain that link's far endpoint no matter which
// disjunct is eventually chosen.
//
// §4.4.4 describes the bound as "the maximum nearest_word ... the
// minimum farthest_word" over shallow connectors. Taken literally that
// is an intersection of per-disjunct ranges, which is not a sound
// enclosing bound when disjuncts disagree (a word's realized link could
// then fall outside the intersection while still being valid for the
// disjunct that produced it). This implementation instead computes the
// union's enclosing bounds (the closest reach any disjunct could ever
// produce, and the farthest any disjunct could ever produce), which is
// the minimal interval provably containing every realizable outcome.
// This resolves an ambiguity in the original description; see DESIGN.md.
func mlinkBound(w *Word, dir int) (nearest, farthest int, ok bool) {
	if len(w.Disjuncts) == 0 {
		return 0, 0, false
	}
	first := true
	for _, d := range w.Disjuncts {
		head := d.Right
		if dir < 0 {
			head = d.Left
		}
		if head == nil {
			return 0, 0, false
		}
		if first {
			nearest, farthest = head.NearestWord, head.FarthestWord
			first = false
			continue
		}
		if dir > 0 {
			if head.NearestWord < nearest {
				nearest = head.NearestWord
			}
			if head.FarthestWord > farthest {
				farthest = head.FarthestWord
			}
		} else {
			if head.NearestWord > nearest {
				nearest = head.NearestWord
			}
			if head.FarthestWord < farthest {
				farthest = head.FarthestWord
			}
		}
	}
	return nearest, farthest, true
}

// mlinkRound applies one round of mandatory-link pruning (§4.4.4): for
// every word committed to linking on some side, any word lying strictly
// between it and its closest guaranteed reach on that side cannot have a
// connector reaching past the committed word, since doing so would
// necessarily cross the committed link regardless of which disjunct the
// committed word ultimately uses. It reports whether it changed anything
// and whether it found any crossing at all, so the caller can drop the
// pass once it stops paying for itself, per §4.4.4's "when a pass
// detects no crossings the mlink table is dropped" rule.
func mlinkRound(words []*Word) (changed, foundAny bool) {
	n := len(words)
	for i, w := range words {
		if nearR, _, ok := mlinkBound(w, +1); ok {
			for s := i + 1; s < n && s < nearR; s++ {
				if restrictFar(words[s].Disjuncts, -1, i-1) {
					changed = true
				}
				foundAny = true
			}
		}
		if nearL, _, ok := mlinkBound(w, -1); ok {
			for s := i - 1; s >= 0 && s > nearL; s-- {
				if restrictFar(words[s].Disjuncts, +1, i+1) {
					changed = true
				}
				foundAny = true
			}
		}
	}
	return changed, foundAny
}

// restrictFar tightens every live connector on side dir of disjuncts so
// it cannot reach past boundary (exclusive), invalidating it outright if
// that leaves its range empty. It reports whether anything changed.
func restrictFar(disjuncts []*disjunct.Disjunct, dir, boundary int) bool {
	changed := false
	for _, d := range disjuncts {
		head := d.Right
		if dir < 0 {
			head = d.Left
		}
		for c := head; c != nil; c = c.Next {
			if !c.Valid() {
				continue
			}
			if dir > 0 {
				if c.FarthestWord < boundary {
					continue
				}
				c.FarthestWord = boundary - 1
			} else {
				if c.FarthestWord > boundary {
					continue
				}
				c.FarthestWord = boundary + 1
			}
			changed = true
			if c.FarthestWord < c.NearestWord && dir > 0 || c.FarthestWord > c.NearestWord && dir < 0 {
				c.Invalidate()
			}
		}
	}
	return changed
}
