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

package postprocess

import (
	"fmt"

	"github.com/go-linkgrammar/lgcore/internal/core/condesc"
	"github.com/go-linkgrammar/lgcore/internal/core/linkage"
)

// Violation describes one rule that a checked linkage failed to satisfy.
type Violation struct {
	Rule    Rule
	Trigger linkage.Link
	Reason  string
}

// Check validates lk against every rule in k, per §4.6. It returns every
// violation found; a linkage is accepted only if the result is empty,
// matching the end-to-end scenario of spec.md §8 where "postprocessing
// rejects it with a rule-violation status; no final linkage" rather than
// raising an error.
func Check(k *Knowledge, lk *linkage.Linkage) []Violation {
	if k == nil {
		return nil
	}
	var violations []Violation
	for _, rule := range k.Rules {
		for i, l := range lk.Links {
			if !condesc.EasyMatchString(rule.Trigger, l.Name) {
				continue
			}
			starter, named := k.Starters[rule.StarterRule]
			if rule.StarterRule == "" {
				named = false
			}
			domain := buildDomain(lk.Links, i, starter, named)
			if v, ok := checkRule(rule, l, domain); !ok {
				violations = append(violations, v)
			}
		}
	}
	return violations
}

func checkRule(rule Rule, trigger linkage.Link, domain []linkage.Link) (Violation, bool) {
	switch rule.Kind {
	case ContainsOne:
		for _, l := range domain {
			if matchesAny(rule.Criteria, l.Name) {
				return Violation{}, true
			}
		}
		return Violation{Rule: rule, Trigger: trigger, Reason: fmt.Sprintf(
			"domain of %q contains no link matching any of %v", trigger.Name, rule.Criteria)}, false

	case ContainsNone:
		for _, l := range domain {
			if matchesAny(rule.Criteria, l.Name) {
				return Violation{Rule: rule, Trigger: trigger, Reason: fmt.Sprintf(
					"domain of %q contains forbidden link %q", trigger.Name, l.Name)}, false
			}
		}
		return Violation{}, true

	case FormACycle:
		if hasCycle(domain, rule.CycleLinks) {
			return Violation{}, true
		}
		return Violation{Rule: rule, Trigger: trigger, Reason: fmt.Sprintf(
			"domain of %q does not form a cycle", trigger.Name)}, false

	case Bounded:
		for _, l := range domain {
			if !matchesAny(rule.Boundary, l.Name) {
				return Violation{Rule: rule, Trigger: trigger, Reason: fmt.Sprintf(
					"domain of %q extends past its boundary via %q", trigger.Name, l.Name)}, false
			}
		}
		return Violation{}, true

	default:
		return Violation{}, true
	}
}
