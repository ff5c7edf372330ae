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

// Package linkage implements the Linkage Enumerator (§4.5): given a
// pruned disjunct graph, it produces linkages honoring planarity,
// connectivity, the matching algebra, and one-disjunct-per-word, in
// non-decreasing cost order.
//
// The original solves this with a memoized dynamic program over
// (left, right, connector-depth-limits) indexed by a count/extract split
// (parse/fast-match.c, parse/count.c, parse/extract-links.c). This
// package instead performs the recursive nested-interval search
// described directly in the specification as an explicit backtracking
// search with a resource budget, trading the original's polynomial time
// bound for a far simpler implementation; see DESIGN.md for the
// tradeoff this was judged worth making.
package linkage

import (
	"sort"

	"github.com/go-linkgrammar/lgcore/internal/core/disjunct"
)

// Word is one sentence position's surviving disjuncts, as handed to the
// enumerator by the pruner.
type Word struct {
	Index     int
	Disjuncts []*disjunct.Disjunct
	Optional  bool
}

// Link is one realized connection between two words' connectors.
type Link struct {
	LWord, RWord int
	LConn, RConn *disjunct.Connector
	Name         string
}

// Linkage is one complete, valid parse of the sentence: a disjunct
// choice for every participating word and the links connecting them.
type Linkage struct {
	Links     []Link
	Cost      float32
	Disjuncts map[int]*disjunct.Disjunct
}

// Options configures a linkage enumeration run.
type Options struct {
	// Limit caps the number of linkages returned (linkage_limit). Zero
	// means unlimited.
	Limit int

	// AllowIslands permits a linkage whose link graph has more than one
	// connected component once optional, unused words are ignored.
	AllowIslands bool

	// NullBudget is the number of additional non-optional words, beyond
	// those the pruner already reduced to zero disjuncts, that the
	// search may deliberately skip (give no disjunct at all) while
	// looking for a connected, planar linkage. This mirrors the
	// original's outer iteration over null_count: a word is not only
	// "null" when pruning kills every disjunct it has, but also when a
	// disjunct it still holds simply goes unused in a particular
	// linkage, e.g. a redundant determiner with no partner to match.
	NullBudget int

	// MaxCandidates bounds the number of disjunct-assignment candidates
	// explored before giving up, guarding the backtracking search
	// against combinatorial blowup on pathological inputs. Zero means
	// the package default.
	MaxCandidates int

	// CheckBudget is polled during the search; a non-nil error aborts
	// enumeration immediately.
	CheckBudget func() error
}

func (o Options) maxCandidates() int {
	if o.MaxCandidates > 0 {
		return o.MaxCandidates
	}
	return 200000
}

// Enumerate produces every valid linkage of words, in non-decreasing
// cost order, up to opts.Limit.
func Enumerate(words []*Word, opts Options) ([]*Linkage, error) {
	s := &searcher{
		words:   words,
		opts:    opts,
		results: nil,
	}
	assignment := make([]int, len(words))
	for i := range assignment {
		assignment[i] = -1
	}
	if err := s.chooseDisjuncts(assignment, 0, 0); err != nil {
		return nil, err
	}

	sort.SliceStable(s.results, func(i, j int) bool {
		return s.results[i].Cost < s.results[j].Cost
	})
	if opts.Limit > 0 && len(s.results) > opts.Limit {
		s.results = s.results[:opts.Limit]
	}
	return s.results, nil
}

type searcher struct {
	words     []*Word
	opts      Options
	results   []*Linkage
	candidate int
}

// chooseDisjuncts enumerates every combination of one disjunct per word
// (or no disjunct, modeling a null word), and for each complete
// combination attempts to link it. skipped counts how many non-optional
// words have been given no disjunct so far in the current branch, so it
// can be capped at opts.NullBudget.
func (s *searcher) chooseDisjuncts(assignment []int, idx, skipped int) error {
	if idx == len(s.words) {
		return s.tryAssignment(assignment)
	}
	w := s.words[idx]
	if w.Optional || skipped < s.opts.NullBudget {
		assignment[idx] = -1
		next := skipped
		if !w.Optional {
			next++
		}
		if err := s.chooseDisjuncts(assignment, idx+1, next); err != nil {
			return err
		}
	}
	for i := range w.Disjuncts {
		if s.opts.CheckBudget != nil {
			if err := s.opts.CheckBudget(); err != nil {
				return err
			}
		}
		assignment[idx] = i
		if err := s.chooseDisjuncts(assignment, idx+1, skipped); err != nil {
			return err
		}
	}
	return nil
}

func (s *searcher) tryAssignment(assignment []int) error {
	s.candidate++
	if s.candidate > s.opts.maxCandidates() {
		return nil
	}

	chosen := make(map[int]*disjunct.Disjunct, len(s.words))
	cost := float32(0)
	used := false
	for i, w := range s.words {
		if assignment[i] < 0 {
			continue
		}
		d := w.Disjuncts[assignment[i]]
		chosen[w.Index] = d
		cost += d.Cost
		used = true
	}
	if !used {
		return nil
	}

	links := planarMatch(s.words, chosen)
	for _, linkSet := range links {
		if !connected(s.words, chosen, linkSet, s.opts.AllowIslands) {
			continue
		}
		s.results = append(s.results, &Linkage{Links: linkSet, Cost: cost, Disjuncts: chosen})
	}
	return nil
}
