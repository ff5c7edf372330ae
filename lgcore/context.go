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

// Package lgcore is the public surface of the parsing core (§6): a
// [Context] bound to a [dict.Dictionary] parses word sequences into
// [Sentence] values holding zero or more [linkage.Linkage] results,
// mirroring how cuelang.org/go/cue's top-level package wraps
// internal/core/adt's evaluator behind Context/Value.
package lgcore

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/go-linkgrammar/lgcore/internal/core/disjunct"
	"github.com/go-linkgrammar/lgcore/internal/core/expr"
	"github.com/go-linkgrammar/lgcore/internal/core/linkage"
	"github.com/go-linkgrammar/lgcore/internal/core/postprocess"
	"github.com/go-linkgrammar/lgcore/internal/core/prune"
	"github.com/go-linkgrammar/lgcore/internal/dict"
	"github.com/go-linkgrammar/lgcore/lgcore/errors"
	"github.com/go-linkgrammar/lgcore/lgcore/token"
)

// unknownWordEntry is the dictionary's conventional name for the
// fallback expression given to a token that has no entry of its own,
// matching the original dictionary convention of a literal
// "<UNKNOWN-WORD>" entry.
const unknownWordEntry = "<UNKNOWN-WORD>"

// Context binds a dictionary and is the entry point for parsing
// sentences against it. A Context is not safe for concurrent use; the
// underlying [dict.Dictionary] is, so independent Contexts over the same
// dictionary may run in separate goroutines, per §5's "multiple
// sentences may be parsed in parallel provided each has its own working
// memory."
type Context struct {
	dict dict.Dictionary
}

// NewContext returns a Context bound to d.
func NewContext(d dict.Dictionary) *Context {
	return &Context{dict: d}
}

// Options configures a single parse, per §5 and §4.5.
type Options struct {
	// NullBudget is the maximum number of words allowed to end up
	// linked to nothing. Negative means unbounded.
	NullBudget int

	// LinkageLimit caps the number of linkages returned (linkage_limit).
	// Zero means unlimited.
	LinkageLimit int

	// AllowIslands permits linkages whose link graph is disconnected.
	AllowIslands bool

	// RepeatableRand makes cost-tied linkage ordering deterministic
	// across runs on the same input, per §5. When false, ties are broken
	// by a sentence-local random shuffle seeded from Seed (or the current
	// time, if Seed is zero).
	RepeatableRand bool
	Seed           uint32

	// MaxParseTime bounds wall-clock time spent pruning and enumerating;
	// zero means unbounded. This is the only resource dimension this
	// module can check cheaply and portably; Go's runtime exposes no
	// cheap, accurate per-operation memory accounting comparable to the
	// original's arena byte-counter, so MaxMemory is accepted for
	// interface completeness but never compared against.
	MaxParseTime time.Duration
	MaxMemory    int64
}

// Status classifies a completed parse, per §7.
type Status int

const (
	StatusOK Status = iota
	StatusNoParse
	StatusTimedOut
	StatusMemoryExhausted
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoParse:
		return "no parse"
	case StatusTimedOut:
		return "timed out"
	case StatusMemoryExhausted:
		return "memory exhausted"
	default:
		return "unknown"
	}
}

// Parse tokenizes nothing further: words is already the sentence's token
// sequence (tokenization is an external collaborator per §1). Parse
// looks each word up, prunes the resulting disjunct graph, enumerates
// linkages, and rejects any that fail the dictionary's postprocessing
// rules, per the §4 pipeline in order.
func (ctx *Context) Parse(words []string, opts Options) (*Sentence, error) {
	deadline := time.Time{}
	if opts.MaxParseTime > 0 {
		deadline = time.Now().Add(opts.MaxParseTime)
	}
	checkBudget := func() error {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return errors.Newf(errors.ResourceExhaustion, token.NoPos, "parse exceeded MaxParseTime")
		}
		return nil
	}

	exprs := make([]expr.Node, len(words))
	for i, w := range words {
		e, err := ctx.lookupExpr(w)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}

	exprs = prune.PruneExpressions(exprs)

	pruneWords := make([]*prune.Word, len(words))
	for i, e := range exprs {
		if e == nil {
			pruneWords[i] = &prune.Word{Index: i}
			continue
		}
		tab := disjunct.NewTraconTable()
		maxCost := float32(1 << 20)
		if v, ok := ctx.dict.Define("max-disjunct-cost"); ok {
			if f, err := parseFloat(v); err == nil {
				maxCost = f
			}
		}
		ds := disjunct.Build(e, tab, maxCost, words[i], 0)
		pruneWords[i] = &prune.Word{Index: i, Disjuncts: ds}
	}

	var rules []prune.ContainsOneRule
	if k := ctx.dict.PostProcessRules(); k != nil {
		for _, r := range k.Rules {
			if r.Kind == postprocess.ContainsOne {
				rules = append(rules, prune.ContainsOneRule{Trigger: r.Trigger, Criteria: r.Criteria})
			}
		}
	}

	res, err := prune.Run(pruneWords, prune.Options{
		NullBudget:  opts.NullBudget,
		CheckBudget: checkBudget,
	}, rules)
	if err != nil {
		if e, ok := err.(errors.Error); ok && e.Category() == errors.ResourceExhaustion {
			return &Sentence{words: words, status: StatusTimedOut, err: err}, nil
		}
		return &Sentence{words: words, status: StatusNoParse}, nil
	}

	linkWords := make([]*linkage.Word, len(pruneWords))
	for i, w := range pruneWords {
		linkWords[i] = &linkage.Word{Index: w.Index, Disjuncts: w.Disjuncts, Optional: len(w.Disjuncts) == 0}
	}

	nullBudget := opts.NullBudget
	if nullBudget < 0 {
		nullBudget = len(words)
	} else {
		nullBudget -= res.NullCount
		if nullBudget < 0 {
			nullBudget = 0
		}
	}
	candidates, err := linkage.Enumerate(linkWords, linkage.Options{
		Limit:        opts.LinkageLimit,
		AllowIslands: opts.AllowIslands,
		NullBudget:   nullBudget,
		CheckBudget:  checkBudget,
	})
	if err != nil {
		return &Sentence{words: words, status: StatusTimedOut, err: err}, nil
	}

	var final []*linkage.Linkage
	knowledge := ctx.dict.PostProcessRules()
	for _, c := range candidates {
		if len(postprocess.Check(knowledge, c)) == 0 {
			final = append(final, c)
		}
	}

	if !opts.RepeatableRand && len(final) > 1 {
		seed := int64(opts.Seed)
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		shuffleTiedCosts(final, rand.New(rand.NewSource(seed)))
	}

	status := StatusOK
	if len(final) == 0 {
		status = StatusNoParse
	}
	return &Sentence{words: words, linkages: final, status: status}, nil
}

// shuffleTiedCosts randomizes the order of linkages sharing the same
// cost, preserving the overall non-decreasing cost order, per §5's
// "sentence-local randomized tie-break" default.
func shuffleTiedCosts(ls []*linkage.Linkage, r *rand.Rand) {
	i := 0
	for i < len(ls) {
		j := i + 1
		for j < len(ls) && ls[j].Cost == ls[i].Cost {
			j++
		}
		r.Shuffle(j-i, func(a, b int) { ls[i+a], ls[i+b] = ls[i+b], ls[i+a] })
		i = j
	}
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

func (ctx *Context) lookupExpr(word string) (expr.Node, error) {
	entries, err := ctx.dict.Lookup(word)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		entries, err = ctx.dict.Lookup(unknownWordEntry)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			return nil, errors.Newf(errors.MalformedInput, token.NoPos,
				"word %q not found in dictionary and no unknown-word fallback is configured", word)
		}
	}
	if len(entries) == 1 {
		return expr.Copy(entries[0].Expr, expr.CopyOptions{Dialect: ctx.dict.Dialect()}), nil
	}
	nodes := make([]expr.Node, len(entries))
	for i, e := range entries {
		nodes[i] = expr.Copy(e.Expr, expr.CopyOptions{Dialect: ctx.dict.Dialect()})
	}
	return expr.MakeOr(0, nodes...), nil
}
