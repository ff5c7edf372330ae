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

import "gopkg.in/yaml.v3"

// Config holds the `#define`-style dictionary configuration values of
// §6 (dictionary-locale, dictionary-version, max-disjunct-cost,
// max-disjuncts, disable-downcasing, empty-connector,
// allow-duplicate-words), as a flat string map, the on-disk form being a
// YAML document of the same shape.
type Config map[string]string

// LoadConfig parses a Config from its YAML source form.
func LoadConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the named define's value, and whether it was present.
func (c Config) Get(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}
