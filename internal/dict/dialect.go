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

package dict

import (
	"gopkg.in/yaml.v3"

	"github.com/go-linkgrammar/lgcore/internal/core/expr"
)

// DialectOverlay is the on-disk form of §6's "dialect configuration (cost
// overlay map)": a named cost delta per dialect component or macro,
// keyed by the name the dictionary build assigned that tag, not by the
// numeric tag itself (tags are an implementation detail of a single
// dictionary build, not something an overlay author should need to
// know).
type DialectOverlay struct {
	Costs map[string]float32 `yaml:"costs"`
}

// LoadDialect parses a DialectOverlay from its YAML source form.
func LoadDialect(data []byte) (*DialectOverlay, error) {
	var o DialectOverlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Resolve binds o's named cost deltas to the numeric tags a dictionary
// build assigned, producing the [expr.DialectTable] the expression
// engine actually consults. Names with no corresponding tag are ignored.
func (o *DialectOverlay) Resolve(tagsByName map[string]int) *expr.DialectTable {
	t := &expr.DialectTable{CostByTag: make(map[int]float32, len(o.Costs))}
	for name, cost := range o.Costs {
		if tag, ok := tagsByName[name]; ok {
			t.CostByTag[tag] = cost
		}
	}
	return t
}
