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

package lgcore

import (
	"fmt"

	"github.com/go-linkgrammar/lgcore/internal/core/linkage"
)

// Sentence is the result of one [Context.Parse] call: a status and,
// when StatusOK, the accepted linkages in non-decreasing cost order.
type Sentence struct {
	words    []string
	linkages []*linkage.Linkage
	status   Status
	err      error
}

// Words returns the sentence's token sequence, as given to Parse.
func (s *Sentence) Words() []string { return s.words }

// Status reports how the parse concluded, per §6/§7.
func (s *Sentence) Status() Status { return s.status }

// NumLinkages reports the number of accepted linkages.
func (s *Sentence) NumLinkages() int { return len(s.linkages) }

// Linkage returns the i'th accepted linkage, in cost order.
func (s *Sentence) Linkage(i int) (*linkage.Linkage, error) {
	if i < 0 || i >= len(s.linkages) {
		return nil, fmt.Errorf("lgcore: linkage index %d out of range [0,%d)", i, len(s.linkages))
	}
	return s.linkages[i], nil
}
