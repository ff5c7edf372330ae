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

package postprocess

import (
	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/linkage"
)

// buildDomain grows the domain induced by the link at triggerIdx, per
// §4.6's "domains are computed ... by following link-type specific
// starter rules". With no named starter (named == false) the domain is
// just the triggering link itself. Otherwise it grows breadth-first
// through links touching a word already in the domain, pulling in any
// link matching one of starter.ExtendThrough (or any link at all, if
// ExtendThrough is empty) unless it matches starter.StopAt.
func buildDomain(links []linkage.Link, triggerIdx int, starter Starter, named bool) []linkage.Link {
	domain := []linkage.Link{links[triggerIdx]}
	if !named {
		return domain
	}

	included := make([]bool, len(links))
	included[triggerIdx] = true
	inDomain := map[int]bool{links[triggerIdx].LWord: true, links[triggerIdx].RWord: true}

	for changed := true; changed; {
		changed = false
		for i, l := range links {
			if included[i] {
				continue
			}
			if !inDomain[l.LWord] && !inDomain[l.RWord] {
				continue
			}
			if matchesAny(starter.StopAt, l.Name) {
				continue
			}
			if len(starter.ExtendThrough) > 0 && !matchesAny(starter.ExtendThrough, l.Name) {
				continue
			}
			included[i] = true
			domain = append(domain, l)
			inDomain[l.LWord] = true
			inDomain[l.RWord] = true
			changed = true
		}
	}
	return domain
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if condesc.EasyMatchString(p, name) {
			return true
		}
	}
	return false
}

// hasCycle reports whether links, restricted to those matching one of
// cycleLinks (or all of links, if cycleLinks is empty), contains a cycle
// over the word graph they induce.
func hasCycle(links []linkage.Link, cycleLinks []string) bool {
	parent := map[int]int{}
	var find func(int) int
	find = func(x int) int {
		if _, ok := parent[x]; !ok {
			parent[x] = x
		}
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	for _, l := range links {
		if len(cycleLinks) > 0 && !matchesAny(cycleLinks, l.Name) {
			continue
		}
		ra, rb := find(l.LWord), find(l.RWord)
		if ra == rb {
			return true
		}
		parent[ra] = rb
	}
	return false
}
