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

// Package prune implements the Pruner (§4.4): expression pruning, power
// pruning, mandatory-link pruning, and postprocessing pruning, iterated
// to a fixed point. It is grounded on the original's
// prepare/exprune.c and parse/prune.c, translated from their in-place,
// refcounted C structures onto this module's [disjunct.Connector] chains.
// A run's state is passed explicitly as the word slice and [Options];
// the only package-level state is the atomic pass counter and the
// lgdebug trace flags.
package prune

import (
	"fmt"
	"os"

	"github.com/go-linkgrammar/lgcore/internal/core/disjunct"
	"github.com/go-linkgrammar/lgcore/internal/lgdebug"
	"github.com/go-linkgrammar/lgcore/lgcore/errors"
	"github.com/kr/pretty"
)

// Word is one sentence position's surviving disjuncts as seen by the
// pruner. Index is the word's 0-based position in the sentence, used
// both for word-distance bounds and for diagnostics.
type Word struct {
	Index     int
	Disjuncts []*disjunct.Disjunct
	Optional  bool
}

// Options configures a pruning run.
type Options struct {
	// NullBudget is the maximum number of non-optional words allowed to
	// end up with zero disjuncts before pruning fails per §4.4.6. A
	// negative value means no budget (never fail on null count alone).
	NullBudget int

	// MaxPasses bounds the fixed-point iteration as a safety valve
	// against a pruning bug turning into an infinite loop; it is not
	// part of the specification's semantics. Zero means the package
	// default (64 full rounds, far more than any real sentence needs).
	MaxPasses int

	// CheckBudget is called between passes; a non-nil error aborts
	// pruning immediately with that error, implementing the
	// time/memory ceiling of the resource model. It is optional.
	CheckBudget func() error
}

// Result summarizes a completed pruning run.
type Result struct {
	// NullCount is the number of non-optional words that ended up with
	// no surviving disjuncts.
	NullCount int
	// Passes is the number of full power-pruning rounds executed.
	Passes int
}

func (o Options) maxPasses() int {
	if o.MaxPasses > 0 {
		return o.MaxPasses
	}
	return 64
}

func (o Options) checkBudget() error {
	if o.CheckBudget == nil {
		return nil
	}
	return o.CheckBudget()
}

// Run executes the full pruning pipeline on words in place: power
// pruning, mandatory-link pruning, and postprocessing pruning
// (postprocessing pruning only if rules is non-empty), alternating with
// fresh power-pruning rounds until a full round changes nothing, per
// §4.4.3's fixed point and §4.4.5's "between pp-pruning passes, rerun
// power pruning" rule. Expression pruning (§4.4.2) runs earlier, on
// expression trees before disjuncts exist; see [PruneExpressions].
func Run(words []*Word, opts Options, rules []ContainsOneRule) (Result, error) {
	InitBounds(words)

	mlinkLive := true
	for pass := 0; pass < opts.maxPasses(); pass++ {
		if err := opts.checkBudget(); err != nil {
			return Result{}, err
		}

		changed, err := powerRound(words)
		if err != nil {
			return Result{}, err
		}

		if mlinkLive {
			mchanged, found := mlinkRound(words)
			changed = changed || mchanged
			if !found {
				mlinkLive = false
			}
		}

		if len(rules) > 0 {
			pchanged := ppRound(words, rules)
			changed = changed || pchanged
		}

		traceRound(pass, words)

		if !changed {
			return finish(words, opts, pass+1)
		}
	}
	return finish(words, opts, opts.maxPasses())
}

// traceRound prints each word's surviving disjunct count after a pruning
// round, and at LogLevel>=1 the disjuncts themselves, when
// lgdebug.Flags.PruneTrace is set (filled from LG_DEBUG's "prunetrace"
// flag only once lgdebug.Init has been called). pretty.Println is used instead of fmt's default verb because
// *disjunct.Connector chains are cyclic-looking enough (shared tails via
// the TraconTable) that %+v output is unreadable.
func traceRound(pass int, words []*Word) {
	if !lgdebug.Flags.PruneTrace {
		return
	}
	fmt.Fprintf(os.Stderr, "prune: pass %d\n", pass)
	for _, w := range words {
		fmt.Fprintf(os.Stderr, "  word %d: %d disjuncts\n", w.Index, len(w.Disjuncts))
		if lgdebug.Flags.LogLevel >= 1 {
			pretty.Println(w.Disjuncts)
		}
	}
}

func finish(words []*Word, opts Options, passes int) (Result, error) {
	nullCount := 0
	for _, w := range words {
		if len(w.Disjuncts) == 0 && !w.Optional {
			nullCount++
		}
	}
	res := Result{NullCount: nullCount, Passes: passes}
	if opts.NullBudget >= 0 && nullCount > opts.NullBudget {
		// Deliberately not an [errors.Error]: per §7, "no parse" is not an
		// error category, so this must not satisfy a type assertion to
		// errors.Error the way a genuine resource-exhaustion failure does.
		// Callers (lgcore.Context.Parse) rely on that distinction to tell
		// "no parse at this null count" apart from a timed-out/memory-
		// exhausted parse and report it as a status, not an error.
		return res, errors.New(fmt.Sprintf(
			"no parse at this null count: %d words forced null, budget is %d",
			nullCount, opts.NullBudget))
	}
	return res, nil
}

// removeDead drops every disjunct from w whose Left or Right chain
// contains an invalidated connector, per §4.4.3's "when any connector in
// a disjunct is invalid, the disjunct is deleted" rule. It reports
// whether anything was removed.
func removeDead(w *Word) bool {
	kept := w.Disjuncts[:0]
	removed := false
	for _, d := range w.Disjuncts {
		if chainAlive(d.Left) && chainAlive(d.Right) {
			kept = append(kept, d)
		} else {
			removed = true
		}
	}
	w.Disjuncts = kept
	return removed
}

func chainAlive(c *disjunct.Connector) bool {
	for ; c != nil; c = c.Next {
		if !c.Valid() {
			return false
		}
	}
	return true
}
