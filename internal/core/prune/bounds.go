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
	"github.com/go-linkgrammar/lgcore/internal/core/disjunct"
)

// InitBounds assigns each connector's initial NearestWord/FarthestWord
// per the original's rule (parse/prune.c): "a deepest connector can
// connect to the neighboring word, so its nearest_word field is w+1
// (w-1 if left-pointing); its neighboring shallow connector has a
// nearest_word value of w+2, etc." FarthestWord starts at the
// connector's length-limited reach, or the sentence edge if the
// connector's [condesc.Descriptor] carries no limit. Power pruning
// (§4.4.3) only ever tightens these bounds afterward; InitBounds must
// run exactly once, before the first pruning pass.
func InitBounds(words []*Word) {
	n := len(words)
	for _, w := range words {
		for _, d := range w.Disjuncts {
			initSide(d.Left, w.Index, -1, n)
			initSide(d.Right, w.Index, +1, n)
		}
	}
}

func initSide(head *disjunct.Connector, word, dir, n int) {
	chain := disjunct.Sequence(head)
	depth := len(chain)
	for i, c := range chain {
		depthFromDeepest := depth - 1 - i
		dist := depthFromDeepest + 1
		nearest := word + dir*dist

		var farthest int
		if c.Desc.LengthLimit != 0 && c.Desc.LengthLimit != condesc.UnlimitedLen {
			farthest = word + dir*int(c.Desc.LengthLimit)
		} else if dir > 0 {
			farthest = n - 1
		} else {
			farthest = 0
		}
		if farthest < 0 {
			farthest = 0
		}
		if farthest > n-1 {
			farthest = n - 1
		}

		if nearest < 0 || nearest > n-1 {
			c.Invalidate()
			continue
		}
		c.NearestWord = nearest
		c.FarthestWord = farthest
	}
}
