package numfmt

import (
	"strings"

	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-cellfmt/condition"
	"github.com/TsubasaBE/go-cellfmt/term"
	"github.com/TsubasaBE/go-cellfmt/token"
)

var dateTable = token.NewTable(append([]string{
	"y", "yy", "yyy", "yyyy",
	"m", "mm", "mmm", "mmmm", "mmmmm",
	"d", "dd", "ddd", "dddd",
	"g", "gg", "ggg",
	"e", "ee",
	"r", "rr",
	"h", "hh",
	"s", "ss",
	"aaa", "aaaa",
	"nn", "nnn",
	"ww",
	"q", "qq",
	".0", ".00", ".000",
}, nfp.AmPm...), token.FoldCase())

// buildDate turns a date section into terms and reports the finest
// fractional-second precision it shows.
func buildDate(section token.Stream, currency func(token.Token) (string, bool)) ([]term.Term, int) {
	var terms []term.Term
	for _, tok := range section {
		switch tok.Kind {
		case token.Factor:
			for _, a := range token.Segment(tok.Value, dateTable) {
				terms = append(terms, dateTerm(a))
			}
		case token.Bracket:
			c := condition.Parse(tok.Value)
			switch {
			case c.Kind == condition.ClauseElapsed:
				terms = append(terms, elapsedTerm(c))
			default:
				if sym, ok := currency(tok); ok {
					terms = append(terms, term.Term{Kind: term.Literal, Text: sym})
				}
			}
		default:
			terms = append(terms, shared(tok))
		}
	}

	hour12 := false
	fraction := 0
	for _, t := range terms {
		switch t.Kind {
		case term.AmPm:
			hour12 = true
		case term.FractionalSecond:
			fraction = max(fraction, t.Width)
		}
	}
	if hour12 {
		for i := range terms {
			if terms[i].Kind == term.Hour {
				terms[i].Hour12 = true
			}
		}
	}
	resolveMinutes(terms)
	return terms, min(fraction, 3)
}

func dateTerm(a token.Token) term.Term {
	if a.Kind != token.Atom {
		return term.Term{Kind: term.Literal, Text: a.Value}
	}
	v := strings.ToLower(a.Value)
	n := len(v)
	switch v[0] {
	case 'y':
		if n <= 2 {
			return term.Term{Kind: term.Year, Text: a.Value, Width: 2}
		}
		return term.Term{Kind: term.Year, Text: a.Value, Width: 4}
	case 'm':
		return term.Term{Kind: term.Month, Text: a.Value, Width: n}
	case 'd':
		if n >= 3 {
			return term.Term{Kind: term.Weekday, Text: a.Value, Width: n}
		}
		return term.Term{Kind: term.Day, Text: a.Value, Width: n}
	case 'g':
		return term.Term{Kind: term.EraName, Text: a.Value, Width: n}
	case 'e':
		return term.Term{Kind: term.EraYear, Text: a.Value, Width: n}
	case 'r':
		if n == 1 {
			return term.Term{Kind: term.EraYear, Text: a.Value, Width: 2}
		}
		return term.Term{Kind: term.EraNameYear, Text: a.Value, Width: 2}
	case 'h':
		return term.Term{Kind: term.Hour, Text: a.Value, Width: n}
	case 's':
		return term.Term{Kind: term.Second, Text: a.Value, Width: n}
	case 'n':
		return term.Term{Kind: term.Weekday, Text: a.Value, Width: n + 1}
	case 'w':
		return term.Term{Kind: term.WeekNumber, Text: a.Value, Width: n}
	case 'q':
		return term.Term{Kind: term.Quarter, Text: a.Value, Width: n}
	case '.':
		return term.Term{Kind: term.FractionalSecond, Text: a.Value, Width: n - 1}
	}
	if strings.Contains(v, "/") {
		return term.Term{Kind: term.AmPm, Text: a.Value}
	}
	// aaa, aaaa
	return term.Term{Kind: term.Weekday, Text: a.Value, Width: n}
}

func elapsedTerm(c condition.Clause) term.Term {
	t := term.Term{Text: c.Raw, Width: c.Width}
	switch c.Unit {
	case 'h':
		t.Kind = term.ElapsedHour
	case 'm':
		t.Kind = term.ElapsedMinute
	default:
		t.Kind = term.ElapsedSecond
	}
	return t
}

// resolveMinutes turns a Month into a Minute when the nearest date field
// before it is an hour or the nearest date field after it is a second.
func resolveMinutes(terms []term.Term) {
	for i, t := range terms {
		if t.Kind != term.Month {
			continue
		}
		if k, ok := neighbour(terms, i, -1); ok && (k == term.Hour || k == term.ElapsedHour) {
			terms[i].Kind = term.Minute
			continue
		}
		if k, ok := neighbour(terms, i, +1); ok && (k == term.Second || k == term.ElapsedSecond) {
			terms[i].Kind = term.Minute
		}
	}
}

// neighbour returns the kind of the nearest date field from i in direction
// step.
func neighbour(terms []term.Term, i, step int) (term.Kind, bool) {
	for j := i + step; j >= 0 && j < len(terms); j += step {
		if terms[j].Kind.IsDate() {
			return terms[j].Kind, true
		}
	}
	return 0, false
}
