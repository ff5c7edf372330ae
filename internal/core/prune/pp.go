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
	"strings"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/disjunct"
)

// ContainsOneRule is the pruning-time shape of a postprocessing
// "contains-one" rule (§4.4.5, and the trigger/criterion half of §4.6's
// full rule set): if any surviving connector matches Trigger, the
// sentence's surviving connectors must be able to realize at least one
// of Criteria, or Trigger's connector can never appear in a passing
// linkage and is pruned now rather than left for the postprocessor to
// reject later.
type ContainsOneRule struct {
	Trigger  string
	Criteria []string
}

// ppRound applies every rule in rules once against the sentence's
// current surviving connectors, invalidating any trigger connector
// whose rule cannot possibly be satisfied, and reports whether anything
// changed. Realizability is checked by a direct scan over every pair of
// opposite-facing surviving connectors; the original indexes this by
// uppercase prefix for speed, an optimization this module omits since
// pruning-time correctness does not depend on it. A wildcard trigger
// selector gets the stronger per-candidate check of §4.4.5 via
// [wildcardMismatch] before a candidate is condemned.
func ppRound(words []*Word, rules []ContainsOneRule) bool {
	pool := collectLive(words)
	changed := false

	for _, rule := range rules {
		if realizable(pool, rule.Criteria) {
			continue
		}
		wildcard := strings.ContainsRune(rule.Trigger, '*')
		for _, c := range pool {
			if !c.Valid() || !condesc.EasyMatchString(rule.Trigger, c.Desc.String) {
				continue
			}
			// A wildcard selector is a conservative stand-in for many
			// concrete link names; per §4.4.5 it may only condemn a
			// trigger candidate when every sentence connector that
			// candidate could actually link to keeps the wildcard
			// positions wild too, so the selector's match is not an
			// artifact of collapsing distinct concrete names together.
			if wildcard && wildcardMismatch(pool, rule.Trigger, c) {
				continue
			}
			c.Invalidate()
			changed = true
		}
	}

	if removeDeadAll(words) {
		changed = true
	}
	return changed
}

// wildcardMismatch reports whether some opposite-facing, potentially
// linkable connector in pool has a concrete letter at a position where
// selector has a wildcard, per §4.4.5: "every sentence connector the
// trigger connector could link to preserves wildcards in the same
// positions." Grounded on prune.c's selector_mismatch_wild.
func wildcardMismatch(pool []*disjunct.Connector, selector string, trigger *disjunct.Connector) bool {
	for _, o := range pool {
		if !o.Valid() || o.Dir == trigger.Dir || o == trigger {
			continue
		}
		if !condesc.Match(trigger.Desc, o.Desc) {
			continue
		}
		os := o.Desc.String
		for i := 0; i < len(selector) && i < len(os); i++ {
			if selector[i] == '*' && os[i] != '*' {
				return true
			}
		}
	}
	return false
}

func collectLive(words []*Word) []*disjunct.Connector {
	var pool []*disjunct.Connector
	for _, w := range words {
		for _, d := range w.Disjuncts {
			for c := d.Left; c != nil; c = c.Next {
				if c.Valid() {
					pool = append(pool, c)
				}
			}
			for c := d.Right; c != nil; c = c.Next {
				if c.Valid() {
					pool = append(pool, c)
				}
			}
		}
	}
	return pool
}

// realizable reports whether some opposite-facing pair in pool matches
// (§4.4.1) and whose realized link name (their conservative intersection)
// satisfies one of patterns, per §4.4.5's "sentence's multiset can
// realize at least one criterion link" test.
func realizable(pool []*disjunct.Connector, patterns []string) bool {
	for i, a := range pool {
		if !a.Valid() {
			continue
		}
		for j, b := range pool {
			if i == j || !b.Valid() || a.Dir == b.Dir {
				continue
			}
			if !condesc.Match(a.Desc, b.Desc) {
				continue
			}
			name := condesc.Intersect(a.Desc, b.Desc)
			for _, p := range patterns {
				if condesc.EasyMatchString(p, name) {
					return true
				}
			}
		}
	}
	return false
}
