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

// Package errors defines the shared diagnostic types used across the parsing
// core, following the error taxonomy of the design: configuration errors,
// resource exhaustion, malformed input, and internal invariant violations.
// "No parse" is deliberately not representable here: per the taxonomy it is
// not an error and is reported only via a sentence's status.
package errors

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-linkgrammar/lgcore/lgcore/token"
)

// Category classifies an [Error] per the error taxonomy.
type Category int

const (
	// Configuration reports a bad dictionary define, malformed dialect
	// entry, or unknown locale. Parsing never begins.
	Configuration Category = iota
	// ResourceExhaustion reports a time or memory limit reached during
	// pruning or enumeration. Any partial linkages are discarded.
	ResourceExhaustion
	// MalformedInput reports a token that is not in the dictionary and
	// not matched by any affix or regex.
	MalformedInput
)

func (c Category) String() string {
	switch c {
	case Configuration:
		return "configuration error"
	case ResourceExhaustion:
		return "resource exhaustion"
	case MalformedInput:
		return "malformed input"
	default:
		return "error"
	}
}

// Error is the common interface implemented by diagnostics produced by the
// parsing core. It mirrors the shape used throughout the package: a
// position, a category, and a chain of contributing positions for errors
// assembled from several failures (e.g. several words failing lookup at
// once).
type Error interface {
	error
	Category() Category
	Position() token.Pos
	InputPositions() []token.Pos
}

// New is a convenience wrapper for the standard library's errors.New. It
// does not produce an [Error].
func New(msg string) error { return errors.New(msg) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Unwrap returns the result of calling Unwrap on err, if it implements it.
func Unwrap(err error) error { return errors.Unwrap(err) }

type baseError struct {
	cat     Category
	pos     token.Pos
	inputs  []token.Pos
	format  string
	args    []interface{}
	wrapped error
}

func (e *baseError) Error() string {
	msg := fmt.Sprintf(e.format, e.args...)
	if e.wrapped == nil {
		return msg
	}
	if msg == "" {
		return e.wrapped.Error()
	}
	return fmt.Sprintf("%s: %s", msg, e.wrapped)
}

func (e *baseError) Category() Category          { return e.cat }
func (e *baseError) Position() token.Pos         { return e.pos }
func (e *baseError) InputPositions() []token.Pos { return e.inputs }
func (e *baseError) Unwrap() error                { return e.wrapped }

// Newf creates a [Error] of the given category at the given position.
func Newf(cat Category, p token.Pos, format string, args ...interface{}) Error {
	return &baseError{cat: cat, pos: p, format: format, args: args}
}

// Wrapf creates a [Error] like [Newf] but chains an underlying cause,
// which is included when printing and reachable via [Unwrap].
func Wrapf(cat Category, err error, p token.Pos, format string, args ...interface{}) Error {
	return &baseError{cat: cat, pos: p, format: format, args: args, wrapped: err}
}

// WithInputs attaches additional contributing positions to err, e.g. the
// positions of every word whose lookup failed in a single malformed-input
// report.
func WithInputs(err Error, inputs ...token.Pos) Error {
	b, ok := err.(*baseError)
	if !ok {
		return err
	}
	dup := *b
	dup.inputs = append(append([]token.Pos{}, b.inputs...), inputs...)
	return &dup
}

// List aggregates zero or more [Error] values, e.g. every malformed-input
// diagnostic produced while resolving the words of one sentence.
type List []Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
	}
}

// Is reports whether target matches any error in the list.
func (l List) Is(target error) bool {
	for _, e := range l {
		if errors.Is(e, target) {
			return true
		}
	}
	return false
}

// Append adds err to the list; a nil err leaves the list unchanged.
func Append(l List, err Error) List {
	switch x := err.(type) {
	case nil:
		return l
	default:
		return append(l, x)
	}
}

// Positions reports every position contributed by err, sorted and
// deduplicated, for human-facing diagnostics.
func Positions(err error) []token.Pos {
	var e Error
	if !As(err, &e) {
		return nil
	}
	var out []token.Pos
	if p := e.Position(); p.IsValid() {
		out = append(out, p)
	}
	for _, p := range e.InputPositions() {
		if p.IsValid() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return dedupPos(out)
}

func dedupPos(a []token.Pos) []token.Pos {
	if len(a) < 2 {
		return a
	}
	out := a[:1]
	for _, p := range a[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// Sentinel category errors, checkable with [Is] against the category's
// zero-argument representative.
var (
	// ErrConfiguration matches any [Error] of category [Configuration].
	ErrConfiguration = Newf(Configuration, token.NoPos, "")
	// ErrResourceExhausted matches any [Error] of category [ResourceExhaustion].
	ErrResourceExhausted = Newf(ResourceExhaustion, token.NoPos, "")
	// ErrMalformedInput matches any [Error] of category [MalformedInput].
	ErrMalformedInput = Newf(MalformedInput, token.NoPos, "")
)

func (e *baseError) Is(target error) bool {
	t, ok := target.(*baseError)
	if !ok {
		return false
	}
	// The sentinel errors above carry no message; treat them as
	// category wildcards so errors.Is(err, ErrResourceExhausted) works.
	if t.format == "" && len(t.args) == 0 && t.pos == token.NoPos {
		return e.cat == t.cat
	}
	return e == t
}
