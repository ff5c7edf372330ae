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

package condesc_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
)

func mustAdd(t *testing.T, tab *condesc.Table, s string) *condesc.Descriptor {
	t.Helper()
	d, err := tab.Add(s)
	qt.Assert(t, qt.IsNil(err), qt.Commentf("Add(%q)", s))
	return d
}

// TestUCNumIsPerfectHash asserts the §4.1/§8 invariant: equal uppercase
// prefixes iff equal UCNum, for every pair of descriptors.
func TestUCNumIsPerfectHash(t *testing.T) {
	tab := condesc.NewTable()
	strs := []string{"Ss", "Sp", "S", "Dmu", "D", "hD", "dD", "MX*x"}
	var descs []*condesc.Descriptor
	for _, s := range strs {
		descs = append(descs, mustAdd(t, tab, s))
	}
	tab.Finalize()

	for i, a := range descs {
		for j, b := range descs {
			wantEqual := a.UCPrefix() == b.UCPrefix()
			gotEqual := a.UCNum == b.UCNum
			qt.Check(t, qt.Equals(gotEqual, wantEqual),
				qt.Commentf("%q vs %q (i=%d j=%d)", strs[i], strs[j], i, j))
		}
	}
}

func TestAddIsIdempotent(t *testing.T) {
	tab := condesc.NewTable()
	a := mustAdd(t, tab, "Ss")
	b := mustAdd(t, tab, "Ss")
	qt.Assert(t, qt.Equals(a, b), qt.Commentf("Add returned different descriptors for the same string"))
	qt.Assert(t, qt.Equals(tab.Len(), 1))
}

func TestMatchIsSymmetric(t *testing.T) {
	tab := condesc.NewTable()
	cases := [][2]string{
		{"Ss", "S"},
		{"hD", "dD"},
		{"hD", "hD"},
		{"S*", "Ss"},
		{"Sp", "Ss"},
	}
	var pairs [][2]*condesc.Descriptor
	for _, c := range cases {
		pairs = append(pairs, [2]*condesc.Descriptor{mustAdd(t, tab, c[0]), mustAdd(t, tab, c[1])})
	}
	tab.Finalize()

	want := []bool{true, true, false, true, false}
	for i, p := range pairs {
		got := condesc.Match(p[0], p[1])
		qt.Check(t, qt.Equals(got, want[i]), qt.Commentf("Match(%q, %q)", p[0].String, p[1].String))
		rev := condesc.Match(p[1], p[0])
		qt.Check(t, qt.Equals(rev, got), qt.Commentf("Match not symmetric for %q, %q", p[0].String, p[1].String))
	}
}

func TestIntersectPreservesNonWildcard(t *testing.T) {
	tab := condesc.NewTable()
	a := mustAdd(t, tab, "S*")
	b := mustAdd(t, tab, "Ss")
	tab.Finalize()

	qt.Assert(t, qt.IsTrue(condesc.Match(a, b)), qt.Commentf("expected S* to match Ss"))
	got := condesc.Intersect(a, b)
	qt.Assert(t, qt.Equals(got, "Ss"))

	// No position in the result should be a wildcard where either input
	// was concrete there.
	qt.Assert(t, qt.Not(qt.StringContains(got, "*")), qt.Commentf("Intersect result has a wildcard: %q", got))
}

func TestEasyMatchString(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Ss", "S", true},
		{"hA", "dA", true},
		{"hA", "hA", false},
		{"A*b", "Aab", true},
		{"Aab", "Acb", false},
	}
	for _, c := range cases {
		got := condesc.EasyMatchString(c.a, c.b)
		qt.Check(t, qt.Equals(got, c.want), qt.Commentf("EasyMatchString(%q, %q)", c.a, c.b))
	}
}

func TestSetUnlimitedAllWhenNoExpression(t *testing.T) {
	tab := condesc.NewTable()
	a := mustAdd(t, tab, "Ss")
	b := mustAdd(t, tab, "D")
	tab.Finalize()
	tab.SetUnlimited(nil)

	qt.Assert(t, qt.Equals(a.LengthLimit, condesc.UnlimitedLen))
	qt.Assert(t, qt.Equals(b.LengthLimit, condesc.UnlimitedLen))
}

func TestSetUnlimitedSelective(t *testing.T) {
	tab := condesc.NewTable()
	a := mustAdd(t, tab, "Ss")
	b := mustAdd(t, tab, "D")
	tab.Finalize()
	tab.SetUnlimited([]string{"S*"})

	qt.Assert(t, qt.Equals(a.LengthLimit, condesc.UnlimitedLen), qt.Commentf("expected Ss to be marked unlimited via S*"))
	qt.Assert(t, qt.Not(qt.Equals(b.LengthLimit, condesc.UnlimitedLen)), qt.Commentf("D should not have been marked unlimited"))
}
