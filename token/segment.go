package token

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Table is a keyword table for [Segment].  Words are tried longest first,
// then in lexicographic order, so "yyyy" wins over "yy" at the same position.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	words   [][]rune
	symbols map[string]bool
	fold    bool
	digits  bool
}

// TableOption configures a [Table].
type TableOption func(*Table)

// FoldCase makes matching case-insensitive.
func FoldCase() TableOption {
	return func(t *Table) { t.fold = true }
}

// WithSymbols marks the given words as Symbol tokens instead of Atoms.  The
// symbols are added to the table when not already present.
func WithSymbols(syms ...string) TableOption {
	return func(t *Table) {
		for _, s := range syms {
			t.symbols[s] = true
		}
	}
}

// WithDigits makes runs of digits starting with 1-9 segment as Digits
// tokens.  A leading 0 is left to the word list (the zero placeholder).
func WithDigits() TableOption {
	return func(t *Table) { t.digits = true }
}

// NewTable builds a keyword table from words.
func NewTable(words []string, opts ...TableOption) *Table {
	t := &Table{symbols: make(map[string]bool)}
	for _, o := range opts {
		o(t)
	}
	seen := make(map[string]bool, len(words)+len(t.symbols))
	all := make([]string, 0, len(words)+len(t.symbols))
	for _, w := range words {
		if w != "" && !seen[w] {
			seen[w] = true
			all = append(all, w)
		}
	}
	for s := range t.symbols {
		if !seen[s] {
			seen[s] = true
			all = append(all, s)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(all[i]), utf8.RuneCountInString(all[j])
		if li != lj {
			return li > lj
		}
		return all[i] < all[j]
	})
	t.words = make([][]rune, len(all))
	for i, w := range all {
		t.words[i] = []rune(w)
	}
	return t
}

// Words returns the table entries in match order.
func (t *Table) Words() []string {
	out := make([]string, len(t.words))
	for i, w := range t.words {
		out[i] = string(w)
	}
	return out
}

// match returns the length in runes of the keyword matching rs at i and the
// keyword as written in the table, or 0.
func (t *Table) match(rs []rune, i int) (int, string) {
	for _, w := range t.words {
		n := len(w)
		if i+n > len(rs) {
			continue
		}
		src := string(rs[i : i+n])
		word := string(w)
		if src == word || t.fold && strings.EqualFold(src, word) {
			return n, word
		}
	}
	return 0, ""
}

// Segment splits text into tokens with greedy longest-match-first
// segmentation against table.  Matched keywords become Atom tokens (or Symbol
// tokens for words registered with [WithSymbols]) whose Value is the source
// text as written, preserving case.  Unmatched characters accumulate into
// Literal tokens.
func Segment(text string, table *Table) []Token {
	rs := []rune(text)
	var (
		out []Token
		lit []rune
	)
	flush := func() {
		if len(lit) > 0 {
			out = append(out, Token{Kind: Literal, Value: string(lit), Raw: string(lit)})
			lit = lit[:0]
		}
	}
	for i := 0; i < len(rs); {
		if table.digits && rs[i] >= '1' && rs[i] <= '9' {
			j := i + 1
			for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
				j++
			}
			flush()
			d := string(rs[i:j])
			out = append(out, Token{Kind: Digits, Value: d, Raw: d})
			i = j
			continue
		}
		n, word := table.match(rs, i)
		if n == 0 {
			lit = append(lit, rs[i])
			i++
			continue
		}
		flush()
		src := string(rs[i : i+n])
		kind := Atom
		if table.symbols[word] {
			kind = Symbol
		}
		out = append(out, Token{Kind: kind, Value: src, Raw: src})
		i += n
	}
	flush()
	return out
}
