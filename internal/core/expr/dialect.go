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

package expr

// DialectTable is the cost overlay map referenced by §4.2 and §6: a
// dialect selects a cost adjustment for each tagged node by its
// dialect-component index. Grounded on dict-common/dialect.c.
type DialectTable struct {
	CostByTag map[int]float32
}

// CostFor returns the cost delta dialect applies to tag, or 0 if dialect
// is nil or tag is untagged or unknown to it.
func (d *DialectTable) CostFor(tag int) float32 {
	if d == nil || tag < 0 {
		return 0
	}
	return d.CostByTag[tag]
}

// CopyOptions configures [Copy].
type CopyOptions struct {
	// Dialect applies a per-tag cost overlay to every tagged node
	// encountered during the copy.
	Dialect *DialectTable
}

// Copy returns a deep copy of e with every tagged node's cost
// additively adjusted by opts.Dialect, per §4.2's
// "copy(e, opts) -> deep copy that additively applies the per-tag cost
// from the dialect cost table." Untagged nodes, and nodes when
// opts.Dialect is nil, are copied with their cost unchanged.
//
// Copy is the only place a dictionary-owned expression tree is ever
// duplicated; the result belongs to the caller's sentence-local arena and
// may be freely mutated by later pipeline stages (e.g. the disjunct
// builder reads it but the pruner works on disjuncts, not on this tree).
func Copy(e Node, opts CopyOptions) Node {
	switch x := e.(type) {
	case *Leaf:
		y := *x
		y.Cost += opts.Dialect.CostFor(x.Tag)
		return &y
	case *And:
		children := make([]Node, len(x.Children))
		for i, c := range x.Children {
			children[i] = Copy(c, opts)
		}
		return &And{Children: children, Cost: x.Cost + opts.Dialect.CostFor(x.Tag), Tag: x.Tag}
	case *Or:
		children := make([]Node, len(x.Children))
		for i, c := range x.Children {
			children[i] = Copy(c, opts)
		}
		return &Or{Children: children, Cost: x.Cost + opts.Dialect.CostFor(x.Tag), Tag: x.Tag}
	default:
		return e
	}
}
