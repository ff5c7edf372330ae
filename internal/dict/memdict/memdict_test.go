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

package memdict_test

import (
	"testing"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/expr"
	"github.com/go-linkgrammar/lgcore/internal/dict"
	"github.com/go-linkgrammar/lgcore/internal/dict/memdict"
)

func TestLookupReturnsAddedEntries(t *testing.T) {
	desc := condesc.NewTable()
	d := desc
	ss, err := d.Add("Ss")
	if err != nil {
		t.Fatal(err)
	}
	md := memdict.New(desc)
	md.AddWord("cat", dict.Entry{Subscript: "n", Expr: expr.MakeLeaf(ss, expr.Minus, false, 0)})
	md.Finalize()

	entries, err := md.Lookup("cat")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Subscript != "n" {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	if entries, _ := md.Lookup("dog"); len(entries) != 0 {
		t.Fatalf("expected no entries for unknown word, got %+v", entries)
	}
}

func TestLookupWildMatchesGlob(t *testing.T) {
	desc := condesc.NewTable()
	md := memdict.New(desc)
	md.AddWord("cat", dict.Entry{})
	md.AddWord("car", dict.Entry{})
	md.AddWord("dog", dict.Entry{})
	md.Finalize()

	out, err := md.LookupWild("ca*")
	if err != nil {
		t.Fatalf("LookupWild failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
}

func TestNextIdiomTagIsRollingBase26(t *testing.T) {
	md := memdict.New(condesc.NewTable())
	got := []string{md.NextIdiomTag(), md.NextIdiomTag()}
	if got[0] != "A" || got[1] != "B" {
		t.Fatalf("got %v, want [A B]", got)
	}
}

func TestBuildIDIsStampedOnFinalize(t *testing.T) {
	md := memdict.New(condesc.NewTable())
	if md.BuildID().String() != "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("expected zero build id before Finalize")
	}
	md.Finalize()
	if md.BuildID().String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("expected non-zero build id after Finalize")
	}
}
