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

package lgcore_test

import (
	"testing"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/expr"
	"github.com/go-linkgrammar/lgcore/internal/dict"
	"github.com/go-linkgrammar/lgcore/internal/dict/memdict"
	"github.com/go-linkgrammar/lgcore/lgcore"
)

// miniEnglish builds a minimal dictionary covering the determiner-noun-
// verb fragment used by spec.md §8's end-to-end scenarios:
// "the" contributes D+, "cat" contributes D- and an optional S+, "ran"
// contributes S-.
func miniEnglish(t *testing.T) *memdict.Dictionary {
	t.Helper()
	desc := condesc.NewTable()
	add := func(s string) *condesc.Descriptor {
		d, err := desc.Add(s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	dPlus := add("D")
	dMinus := add("D")
	sPlus := add("S")
	sMinus := add("S")
	desc.Finalize()

	d := memdict.New(desc)
	d.AddWord("the", dict.Entry{Expr: expr.MakeLeaf(dPlus, expr.Plus, false, 0)})
	d.AddWord("cat", dict.Entry{Expr: expr.MakeAnd(0,
		expr.MakeLeaf(dMinus, expr.Minus, false, 0),
		expr.Optional(expr.MakeLeaf(sPlus, expr.Plus, false, 0)),
	)})
	d.AddWord("ran", dict.Entry{Expr: expr.MakeLeaf(sMinus, expr.Minus, false, 0)})
	d.Finalize()
	return d
}

func TestParseTheCatYieldsSingleDLink(t *testing.T) {
	ctx := lgcore.NewContext(miniEnglish(t))
	s, err := ctx.Parse([]string{"the", "cat"}, lgcore.Options{NullBudget: 0})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Status() != lgcore.StatusOK {
		t.Fatalf("status = %v, want OK", s.Status())
	}
	if s.NumLinkages() != 1 {
		t.Fatalf("got %d linkages, want 1", s.NumLinkages())
	}
	lk, err := s.Linkage(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(lk.Links) != 1 || lk.Links[0].Name != "D" {
		t.Fatalf("unexpected links: %+v", lk.Links)
	}
	if lk.Links[0].LWord != 0 || lk.Links[0].RWord != 1 {
		t.Fatalf("unexpected endpoints: %+v", lk.Links[0])
	}
}

func TestParseTheCatRanYieldsTwoLinks(t *testing.T) {
	ctx := lgcore.NewContext(miniEnglish(t))
	s, err := ctx.Parse([]string{"the", "cat", "ran"}, lgcore.Options{NullBudget: 0})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Status() != lgcore.StatusOK {
		t.Fatalf("status = %v, want OK", s.Status())
	}
	if s.NumLinkages() != 1 {
		t.Fatalf("got %d linkages, want 1", s.NumLinkages())
	}
	lk, err := s.Linkage(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(lk.Links) != 2 {
		t.Fatalf("got %d links, want 2", len(lk.Links))
	}
}

func TestParseUnknownWordFailsWithoutFallback(t *testing.T) {
	ctx := lgcore.NewContext(miniEnglish(t))
	_, err := ctx.Parse([]string{"the", "zyzzyva"}, lgcore.Options{NullBudget: 0})
	if err == nil {
		t.Fatalf("expected an error for a word absent from the dictionary")
	}
}

func TestParseDuplicateDeterminerNeedsNullBudget(t *testing.T) {
	ctx := lgcore.NewContext(miniEnglish(t))

	s, err := ctx.Parse([]string{"the", "the", "cat"}, lgcore.Options{NullBudget: 0})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Status() != lgcore.StatusNoParse {
		t.Fatalf("status = %v, want StatusNoParse with zero null budget", s.Status())
	}

	s, err = ctx.Parse([]string{"the", "the", "cat"}, lgcore.Options{NullBudget: 1})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Status() != lgcore.StatusOK {
		t.Fatalf("status = %v, want StatusOK with a null budget of 1", s.Status())
	}
}
