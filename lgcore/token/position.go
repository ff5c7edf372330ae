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

// Package token defines positions inside a sentence being parsed.
//
// Unlike a text-source position, a parsing-core position does not need a
// file/line/column table: everything the core operates on is already a
// tokenized, in-memory word sequence. A [Pos] therefore is either a word
// index within the sentence being parsed, a line number within the
// dictionary source that produced an expression (kept for diagnostics, not
// re-derived), or neither ([NoPos]).
package token

import "fmt"

// Pos is a compact position within a parse. It names either a word in the
// sentence currently being parsed, an originating dictionary entry, or
// nothing at all ([NoPos]).
type Pos struct {
	word     int    // 1-based index into the sentence; 0 means "no word"
	entry    string // dictionary entry this position originates from, if any
	dictLine int    // line number within that entry's source, if known
}

// NoPos is the zero value for [Pos]. It carries no information.
var NoPos = Pos{}

// AtWord returns the position of the w'th word of a sentence (0-based).
func AtWord(w int) Pos {
	return Pos{word: w + 1}
}

// InEntry returns the position of a dictionary entry, optionally with a
// line number within its source (0 if unknown).
func InEntry(name string, line int) Pos {
	return Pos{entry: name, dictLine: line}
}

// IsValid reports whether p carries any position information.
func (p Pos) IsValid() bool {
	return p != NoPos
}

// Word reports the 0-based word index of p and whether p names a word at
// all.
func (p Pos) Word() (index int, ok bool) {
	if p.word == 0 {
		return 0, false
	}
	return p.word - 1, true
}

// Entry reports the dictionary entry name of p, if any.
func (p Pos) Entry() string {
	return p.entry
}

// String renders p for human consumption:
//
//	word 3            a word position
//	dict "run.v":12    a dictionary entry position with a line number
//	dict "run.v"       a dictionary entry position without one
//	-                  NoPos
func (p Pos) String() string {
	switch {
	case p.word != 0:
		return fmt.Sprintf("word %d", p.word-1)
	case p.entry != "" && p.dictLine > 0:
		return fmt.Sprintf("dict %q:%d", p.entry, p.dictLine)
	case p.entry != "":
		return fmt.Sprintf("dict %q", p.entry)
	default:
		return "-"
	}
}

// Compare orders positions for stable diagnostic output: word positions
// sort by word index, dictionary positions sort after all word positions
// (lexicographically by entry name then line), and NoPos sorts last.
func (p Pos) Compare(q Pos) int {
	if p == q {
		return 0
	}
	rank := func(x Pos) int {
		switch {
		case x.word != 0:
			return 0
		case x.entry != "":
			return 1
		default:
			return 2
		}
	}
	if rp, rq := rank(p), rank(q); rp != rq {
		return rp - rq
	}
	switch {
	case p.word != 0:
		return p.word - q.word
	case p.entry != "":
		if p.entry != q.entry {
			if p.entry < q.entry {
				return -1
			}
			return 1
		}
		return p.dictLine - q.dictLine
	default:
		return 0
	}
}
