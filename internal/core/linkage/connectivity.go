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

import "github.com/go-linkgrammar/lgcore/internal/core/disjunct"

// connected reports whether the link graph over every word that
// actually got a disjunct assigned (optional words skipped entirely are
// not counted) forms a single connected component, per §4.5's
// connectivity check. allowIslands disables the check entirely.
func connected(words []*Word, chosen map[int]*disjunct.Disjunct, links []Link, allowIslands bool) bool {
	if allowIslands || len(chosen) <= 1 {
		return true
	}

	parent := make(map[int]int, len(chosen))
	for idx := range chosen {
		parent[idx] = idx
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, l := range links {
		union(l.LWord, l.RWord)
	}

	root := -1
	for idx := range chosen {
		r := find(idx)
		if root == -1 {
			root = r
		} else if r != root {
			return false
		}
	}
	return true
}
