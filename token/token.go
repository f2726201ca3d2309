// Package token scans a spreadsheet number-format pattern into a flat token
// stream.  It is the first stage of the compiler in [numfmt.Compile]:
//
//	pattern → Tokenize → Stream.Split(";") → classify → build terms
//
// Tokenize never fails.  Text that matches none of the special forms (quoted
// literals, escapes, bracketed clauses, fill hints, the section separator)
// is collected into Factor tokens which the term builders later re-scan with
// [Segment] against a per-kind keyword [Table].
package token

import "strings"

// Kind identifies the variant of a [Token].
type Kind uint8

// Token kinds.  Literal through Factor are produced by [Tokenize]; Atom,
// Digits and Symbol are produced by [Segment] when a Factor is classified.
const (
	// Literal is quoted text ("...") or, after segmentation, a run of
	// unmatched plain characters.
	Literal Kind = iota
	// EscapedChar is a single character introduced by \ or !.
	EscapedChar
	// Bracket is a [...] clause: condition, locale, color, numeral system or
	// elapsed time.
	Bracket
	// FillSpace is _X: renders one space, X is the width hint.
	FillSpace
	// RepeatFill is *X: repeat X to fill the cell width.
	RepeatFill
	// Factor is a raw run of unclassified pattern characters.
	Factor
	// Atom is one keyword recognised by a [Table] ("yyyy", "#", "General").
	Atom
	// Digits is a literal integer run such as the 16 in "# ?/16".
	Digits
	// Symbol is one of ; , . % / @.
	Symbol
)

var kindNames = [...]string{
	Literal:     "Literal",
	EscapedChar: "EscapedChar",
	Bracket:     "Bracket",
	FillSpace:   "FillSpace",
	RepeatFill:  "RepeatFill",
	Factor:      "Factor",
	Atom:        "Atom",
	Digits:      "Digits",
	Symbol:      "Symbol",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is one immutable lexical unit of a pattern.
//
// Value holds the decoded payload: the text between quotes for Literal, the
// escaped character for EscapedChar, the complete clause including brackets
// for Bracket, the hint character for FillSpace and RepeatFill.  Raw is the
// exact source text, so concatenating Raw over a section reproduces the
// section's pattern verbatim.
type Token struct {
	Kind  Kind
	Value string
	Raw   string
}

// IsSymbol reports whether t is the Symbol token s.
func (t Token) IsSymbol(s string) bool {
	return t.Kind == Symbol && t.Value == s
}

// Stream is an ordered token sequence.
type Stream []Token

// Raw returns the source text of the stream.
func (s Stream) Raw() string {
	var sb strings.Builder
	for _, t := range s {
		sb.WriteString(t.Raw)
	}
	return sb.String()
}

// FactorText returns the concatenated text of all Factor tokens.  Quoted
// literals, escapes and bracketed clauses are excluded.
func (s Stream) FactorText() string {
	var sb strings.Builder
	for _, t := range s {
		if t.Kind == Factor {
			sb.WriteString(t.Value)
		}
	}
	return sb.String()
}

// ContainsFactor reports whether any Factor token contains sub.
func (s Stream) ContainsFactor(sub string) bool {
	for _, t := range s {
		if t.Kind == Factor && strings.Contains(t.Value, sub) {
			return true
		}
	}
	return false
}

// Brackets returns the bracketed clauses of the stream in order.
func (s Stream) Brackets() []Token {
	var out []Token
	for _, t := range s {
		if t.Kind == Bracket {
			out = append(out, t)
		}
	}
	return out
}

// Split cuts the stream at every Symbol token whose value is sym.  The
// separators are dropped.  A stream without separators yields one group; a
// trailing separator yields a trailing empty group, matching the way a
// spreadsheet treats "0;" as two sections.
func (s Stream) Split(sym string) []Stream {
	groups := []Stream{{}}
	for _, t := range s {
		if t.IsSymbol(sym) {
			groups = append(groups, Stream{})
			continue
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], t)
	}
	return groups
}
