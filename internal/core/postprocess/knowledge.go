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

// Package postprocess implements the Postprocessor (§4.6): it validates a
// proposed [linkage.Linkage] against rule sets expressed abstractly as
// link-name patterns, grounded on the original's post-process knowledge
// file format (post-process/*.dfs) and its domain-construction pass
// (linkage/analyze-linkage.c's build_domains).
//
// Knowledge is kept as pure data, loaded from YAML the way the dictionary
// layer's dialect and configuration overlays are (see internal/dict),
// rather than compiled into Go source, so a new rule set never requires a
// rebuild of this package.
package postprocess

import (
	"gopkg.in/yaml.v3"
)

// Rule is one postprocessing rule. Kind selects which of the four
// semantics in §4.6 applies; the other fields are interpreted per Kind.
type Rule struct {
	Kind Kind `yaml:"kind"`

	// Trigger selects which links this rule applies to, as a link-name
	// pattern in the conservative post-process match dialect of §4.4.1.
	Trigger string `yaml:"trigger"`

	// Criteria lists the link-name patterns a qualifying domain must (for
	// ContainsOne) or must not (for ContainsNone) contain at least one
	// match of.
	Criteria []string `yaml:"criteria,omitempty"`

	// CycleLinks lists the link-name patterns that, found along a single
	// cycle in the domain's link graph, satisfy a FormACycle rule.
	CycleLinks []string `yaml:"cycle_links,omitempty"`

	// Boundary lists link-name patterns a Bounded domain's member links
	// must all match; any link outside the pattern set violates the rule.
	Boundary []string `yaml:"boundary,omitempty"`

	// StarterRule names the domain-construction starter rule (how to walk
	// outward from Trigger's link to collect the domain) to use, looked
	// up in the owning [Knowledge]'s Starters map. Empty means the
	// default starter (the single triggering link and nothing else).
	StarterRule string `yaml:"starter,omitempty"`
}

// Kind discriminates the four rule families of §4.6.
type Kind string

const (
	ContainsOne  Kind = "contains-one"
	ContainsNone Kind = "contains-none"
	FormACycle   Kind = "form-a-cycle"
	Bounded      Kind = "bounded"
)

// Starter describes how to grow a domain outward from its triggering
// link, per §4.6's "domains are computed ... by following link-type
// specific starter rules". ExtendThrough lists the link-name patterns a
// link must match to be pulled into the domain when it touches a word
// already in the domain; StopAt lists patterns that halt growth through
// a given link even if it would otherwise qualify.
type Starter struct {
	ExtendThrough []string `yaml:"extend_through,omitempty"`
	StopAt        []string `yaml:"stop_at,omitempty"`
}

// Knowledge is a postprocessing rule set: pure data, loaded once per
// dictionary and shared read-only across every sentence it checks.
type Knowledge struct {
	Rules    []Rule             `yaml:"rules"`
	Starters map[string]Starter `yaml:"starters,omitempty"`
}

// Load parses a Knowledge document from its YAML source form.
func Load(data []byte) (*Knowledge, error) {
	var k Knowledge
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	return &k, nil
}
