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

package postprocess_test

import (
	"testing"

	"github.com/go-linkgrammar/lgcore/internal/core/linkage"
	"github.com/go-linkgrammar/lgcore/internal/core/postprocess"
)

func TestLoadParsesYAML(t *testing.T) {
	src := []byte(`
rules:
  - kind: contains-one
    trigger: MX
    criteria: ["Ss"]
starters:
  default:
    extend_through: ["*"]
`)
	k, err := postprocess.Load(src)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(k.Rules) != 1 || k.Rules[0].Kind != postprocess.ContainsOne {
		t.Fatalf("unexpected rules: %+v", k.Rules)
	}
}

func TestCheckContainsOneAcceptsWhenCriterionPresent(t *testing.T) {
	// Without a starter rule the domain holds only the trigger link, so
	// the Ss link is brought into the domain through a starter.
	k := &postprocess.Knowledge{
		Rules: []postprocess.Rule{
			{Kind: postprocess.ContainsOne, Trigger: "MX", Criteria: []string{"Ss"}, StarterRule: "grow"},
		},
		Starters: map[string]postprocess.Starter{
			"grow": {},
		},
	}
	lk := &linkage.Linkage{Links: []linkage.Link{
		{LWord: 0, RWord: 1, Name: "MX"},
		{LWord: 1, RWord: 2, Name: "Ss"},
	}}
	if v := postprocess.Check(k, lk); len(v) != 0 {
		t.Fatalf("expected no violations, got %+v", v)
	}
}

func TestCheckContainsOneRejectsWhenCriterionAbsent(t *testing.T) {
	k := &postprocess.Knowledge{Rules: []postprocess.Rule{
		{Kind: postprocess.ContainsOne, Trigger: "MX", Criteria: []string{"Ss"}},
	}}
	lk := &linkage.Linkage{Links: []linkage.Link{
		{LWord: 0, RWord: 1, Name: "MX"},
		{LWord: 1, RWord: 2, Name: "Ds"},
	}}
	v := postprocess.Check(k, lk)
	if len(v) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(v))
	}
	if v[0].Rule.Kind != postprocess.ContainsOne {
		t.Fatalf("unexpected violation: %+v", v[0])
	}
}

func TestCheckFormACycleOverNamedStarterDomain(t *testing.T) {
	k := &postprocess.Knowledge{
		Rules: []postprocess.Rule{
			{Kind: postprocess.FormACycle, Trigger: "Cc", StarterRule: "grow"},
		},
		Starters: map[string]postprocess.Starter{
			"grow": {},
		},
	}
	// 0-1 (Cc, trigger), 1-2 (Xx), 2-0 (Xx): closes a cycle over words 0,1,2.
	lk := &linkage.Linkage{Links: []linkage.Link{
		{LWord: 0, RWord: 1, Name: "Cc"},
		{LWord: 1, RWord: 2, Name: "Xx"},
		{LWord: 0, RWord: 2, Name: "Xx"},
	}}
	if v := postprocess.Check(k, lk); len(v) != 0 {
		t.Fatalf("expected no violations, got %+v", v)
	}
}

func TestCheckFormACycleRejectsAcyclicDomain(t *testing.T) {
	k := &postprocess.Knowledge{
		Rules: []postprocess.Rule{
			{Kind: postprocess.FormACycle, Trigger: "Cc", StarterRule: "grow"},
		},
		Starters: map[string]postprocess.Starter{
			"grow": {},
		},
	}
	lk := &linkage.Linkage{Links: []linkage.Link{
		{LWord: 0, RWord: 1, Name: "Cc"},
		{LWord: 1, RWord: 2, Name: "Xx"},
	}}
	v := postprocess.Check(k, lk)
	if len(v) != 1 || v[0].Rule.Kind != postprocess.FormACycle {
		t.Fatalf("expected 1 form-a-cycle violation, got %+v", v)
	}
}
