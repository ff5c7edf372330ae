// Copyright 2018 The CUE Authors
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

// Package lgdebug holds the LG_DEBUG-controlled trace and strictness flags.
// Of these, only PruneTrace and LogLevel are read, by the pruner.
package lgdebug

import (
	"fmt"
	"os"
	"sync"
)

// Flags holds the process-wide LG_DEBUG flags. It is populated by Init.
var Flags Config

// Config holds the set of known LG_DEBUG flags.
type Config struct {
	// Strict selects whether internal invariant violations panic. No
	// package reads it; [Assertf] takes strictness as an explicit
	// argument instead.
	Strict bool `flag:"default:true"`

	// PruneTrace enables step-by-step tracing of expression, power,
	// mlink, and postprocessing pruning passes.
	PruneTrace bool

	// LinkageTrace is parsed from LG_DEBUG but not read by the linkage
	// enumerator, which has no tracing.
	LinkageTrace bool

	// LogLevel is a verbosity level for PruneTrace/LinkageTrace output,
	// mirroring the evaluator's two-level LogEval switch: 0 prints pass
	// summaries only, >=1 also prints per-connector detail.
	LogLevel int
}

// Init populates Flags from the LG_DEBUG environment variable. It is not an
// init function because callers that never need tracing (most library
// consumers) shouldn't pay for a parse, and because a parse failure should
// be reported, not panicked.
func Init() error {
	return initOnce()
}

var initOnce = sync.OnceValue(func() error {
	return parse(&Flags, os.Getenv("LG_DEBUG"))
})

// Assertf panics with the given message if strict is true and cond is
// false. It is the sole mechanism by which the core surfaces an "internal
// invariant violation" (§7): a contract breakage that, per the design, is
// fatal and aborts the process rather than being recovered.
func Assertf(strict bool, cond bool, format string, args ...any) {
	if !cond && strict {
		panic(fmt.Sprintf("link-grammar: invariant violated: "+format, args...))
	}
}
