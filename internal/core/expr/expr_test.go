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

package expr_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/expr"
)

func leaf(t *testing.T, tab *condesc.Table, s string, dir expr.Direction, cost float32) *expr.Leaf {
	t.Helper()
	d, err := tab.Add(s)
	qt.Assert(t, qt.IsNil(err))
	return expr.MakeLeaf(d, dir, false, cost)
}

func TestSizeCountsLeaves(t *testing.T) {
	tab := condesc.NewTable()
	a := leaf(t, tab, "D", expr.Minus, 0)
	b := leaf(t, tab, "S", expr.Plus, 0)
	c := leaf(t, tab, "O", expr.Plus, 0)

	and := expr.MakeAnd(0, a, b)
	or := expr.MakeOr(0, and, c)

	qt.Assert(t, qt.Equals(expr.Size(or), 3))
}

func TestOptionalAddsZeroBranch(t *testing.T) {
	tab := condesc.NewTable()
	e := leaf(t, tab, "D", expr.Minus, 0)
	opt := expr.Optional(e)

	or, ok := opt.(*expr.Or)
	qt.Assert(t, qt.IsTrue(ok), qt.Commentf("Optional(e) did not produce an OR: %#v", opt))
	qt.Assert(t, qt.HasLen(or.Children, 2))
	qt.Assert(t, qt.Equals(or.Children[0], expr.Zero), qt.Commentf("Optional(e)'s first branch should be the zeroary AND"))
}

func TestUnaryAndCollapsesAndSumsCost(t *testing.T) {
	tab := condesc.NewTable()
	l := leaf(t, tab, "D", expr.Minus, 1.5)

	collapsed := expr.MakeAnd(0.5, l)
	got, ok := collapsed.(*expr.Leaf)
	qt.Assert(t, qt.IsTrue(ok), qt.Commentf("unary AND should collapse to a Leaf, got %T", collapsed))
	qt.Assert(t, qt.Equals(got.Cost, float32(2)))
	// The original leaf must not have been mutated in place, since it
	// may be shared by other derivations.
	qt.Assert(t, qt.Equals(l.Cost, float32(1.5)), qt.Commentf("original leaf was mutated"))
}

func TestCopyAppliesDialectCostToTaggedNodesOnly(t *testing.T) {
	tab := condesc.NewTable()
	tagged := leaf(t, tab, "D", expr.Minus, 0)
	tagged.Tag = 7
	untagged := leaf(t, tab, "S", expr.Plus, 0)

	tree := expr.MakeAnd(0, tagged, untagged)
	dialect := &expr.DialectTable{CostByTag: map[int]float32{7: 2.5}}

	out := expr.Copy(tree, expr.CopyOptions{Dialect: dialect})
	and, ok := out.(*expr.And)
	qt.Assert(t, qt.IsTrue(ok), qt.Commentf("Copy did not preserve AND shape: %#v", out))
	qt.Assert(t, qt.HasLen(and.Children, 2))
	gotTagged := and.Children[0].(*expr.Leaf)
	gotUntagged := and.Children[1].(*expr.Leaf)

	qt.Assert(t, qt.Equals(gotTagged.Cost, float32(2.5)))
	qt.Assert(t, qt.Equals(gotUntagged.Cost, float32(0)))
	// The dictionary-owned tree must be untouched.
	qt.Assert(t, qt.Equals(tagged.Cost, float32(0)), qt.Commentf("Copy mutated the shared dictionary tree"))
}
