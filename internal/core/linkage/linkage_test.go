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

package linkage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/disjunct"
	"github.com/go-linkgrammar/lgcore/internal/core/expr"
	"github.com/go-linkgrammar/lgcore/internal/core/linkage"
)

// linkSummary strips a Link down to the fields worth diffing; LConn/RConn
// are per-sentence pointers with no stable textual form.
type linkSummary struct {
	LWord, RWord int
	Name         string
}

func summarize(links []linkage.Link) []linkSummary {
	out := make([]linkSummary, len(links))
	for i, l := range links {
		out[i] = linkSummary{LWord: l.LWord, RWord: l.RWord, Name: l.Name}
	}
	return out
}

func leaf(t *testing.T, tab *condesc.Table, s string, dir expr.Direction) *expr.Leaf {
	t.Helper()
	d, err := tab.Add(s)
	if err != nil {
		t.Fatal(err)
	}
	return expr.MakeLeaf(d, dir, false, 0)
}

func buildWord(t *testing.T, tab *condesc.Table, idx int, n int, e expr.Node) *linkage.Word {
	t.Helper()
	tc := disjunct.NewTraconTable()
	ds := disjunct.Build(e, tc, 1000, "entry", 0)
	bounds(ds, idx, n)
	return &linkage.Word{Index: idx, Disjuncts: ds}
}

// bounds stands in for the pruner's InitBounds in these narrowly scoped
// tests: it gives every connector sentence-wide reach so matching is
// exercised without needing a full pruning pass first.
func bounds(ds []*disjunct.Disjunct, idx, n int) {
	for _, d := range ds {
		for c := d.Left; c != nil; c = c.Next {
			c.NearestWord, c.FarthestWord = 0, n-1
		}
		for c := d.Right; c != nil; c = c.Next {
			c.NearestWord, c.FarthestWord = 0, n-1
		}
	}
}

func TestEnumerateLinksSimplePair(t *testing.T) {
	tab := condesc.NewTable()
	ssPlus := leaf(t, tab, "Ss", expr.Plus)
	ssMinus := leaf(t, tab, "Ss", expr.Minus)
	tab.Finalize()

	w0 := buildWord(t, tab, 0, 2, ssPlus)
	w1 := buildWord(t, tab, 1, 2, ssMinus)
	words := []*linkage.Word{w0, w1}

	out, err := linkage.Enumerate(words, linkage.Options{})
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d linkages, want 1", len(out))
	}
	want := []linkSummary{{LWord: 0, RWord: 1, Name: "Ss"}}
	if diff := cmp.Diff(want, summarize(out[0].Links)); diff != "" {
		t.Fatalf("unexpected links (-want +got):\n%s", diff)
	}
}

func TestEnumerateNestsTwoLinksFromOneWord(t *testing.T) {
	tab := condesc.NewTable()
	// word0: A+ B+ (A nearer, B farther)
	aPlus := leaf(t, tab, "Aa", expr.Plus)
	bPlus := leaf(t, tab, "Bb", expr.Plus)
	w0Expr := expr.MakeAnd(0, aPlus, bPlus)
	// word1: A- (only closes A)
	aMinus := leaf(t, tab, "Aa", expr.Minus)
	// word2: B- (only closes B)
	bMinus := leaf(t, tab, "Bb", expr.Minus)
	tab.Finalize()

	w0 := buildWord(t, tab, 0, 3, w0Expr)
	w1 := buildWord(t, tab, 1, 3, aMinus)
	w2 := buildWord(t, tab, 2, 3, bMinus)
	words := []*linkage.Word{w0, w1, w2}

	// A planar matching must link word0-A to word1 and word0-B to word2.
	// planarMatch pushes word0's Right connectors deepest first, so B
	// goes on the stack before A and the shallow A ends on top; word1
	// pops A, then word2 pops B, giving one linkage of two nested links.
	out, err := linkage.Enumerate(words, linkage.Options{})
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d linkages, want 1", len(out))
	}
	if len(out[0].Links) != 2 {
		t.Fatalf("got %d links, want 2", len(out[0].Links))
	}
}

func TestEnumerateRejectsDisconnectedIslands(t *testing.T) {
	tab := condesc.NewTable()
	ssPlus := leaf(t, tab, "Ss", expr.Plus)
	ssMinus := leaf(t, tab, "Ss", expr.Minus)
	lonelyPlus := leaf(t, tab, "Zz", expr.Plus)
	lonelyMinus := leaf(t, tab, "Zz", expr.Minus)
	tab.Finalize()

	w0 := buildWord(t, tab, 0, 4, ssPlus)
	w1 := buildWord(t, tab, 1, 4, ssMinus)
	w2 := buildWord(t, tab, 2, 4, lonelyPlus)
	w3 := buildWord(t, tab, 3, 4, lonelyMinus)
	words := []*linkage.Word{w0, w1, w2, w3}

	out, err := linkage.Enumerate(words, linkage.Options{})
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d linkages, want 0 (two disconnected islands)", len(out))
	}

	out, err = linkage.Enumerate(words, linkage.Options{AllowIslands: true})
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("with AllowIslands, got %d linkages, want 1", len(out))
	}
}

func TestEnumerateOrdersByCostAndRespectsLimit(t *testing.T) {
	tab := condesc.NewTable()
	ssPlusCheap := expr.MakeLeaf(mustAdd(t, tab, "Ss"), expr.Plus, false, 0)
	ssPlusPricey := expr.MakeLeaf(mustAdd(t, tab, "Ss"), expr.Plus, false, 5)
	both := expr.MakeOr(0, ssPlusCheap, ssPlusPricey)
	ssMinus := leaf(t, tab, "Ss", expr.Minus)
	tab.Finalize()

	w0 := buildWord(t, tab, 0, 2, both)
	w1 := buildWord(t, tab, 1, 2, ssMinus)
	words := []*linkage.Word{w0, w1}

	out, err := linkage.Enumerate(words, linkage.Options{Limit: 1})
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d linkages, want 1 (Limit)", len(out))
	}
	if out[0].Cost != 0 {
		t.Fatalf("cheapest linkage has cost %v, want 0", out[0].Cost)
	}
}

func mustAdd(t *testing.T, tab *condesc.Table, s string) *condesc.Descriptor {
	t.Helper()
	d, err := tab.Add(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
