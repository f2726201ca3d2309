package numfmt

import (
	"fmt"
	"strings"

	"github.com/TsubasaBE/go-cellfmt/condition"
	"github.com/TsubasaBE/go-cellfmt/token"
)

// Kind is the classification of a section.
type Kind uint8

// Section kinds.
const (
	KindNumber Kind = iota
	KindDate
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindDate:
		return "Date"
	case KindText:
		return "Text"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MaxSections is the most sections a pattern may have.
const MaxSections = 4

// SplitSections cuts a token stream at its section separators.
func SplitSections(tokens token.Stream) ([]token.Stream, error) {
	groups := tokens.Split(";")
	if len(groups) > MaxSections {
		return nil, fmt.Errorf("%w: got %d", ErrTooManySections, len(groups))
	}
	return groups, nil
}

// dateDecision holds the keywords whose presence makes a section a date
// section.  A bare e is absent: it only means era year once the section is
// already known to be a date.  General, E+ and E- absorb their letters so
// they cannot be read as date keywords.
var dateDecision = token.NewTable([]string{
	"yy", "yyyy",
	"m", "mm", "mmm", "mmmm", "mmmmm",
	"d", "dd", "ddd", "dddd",
	"g", "gg", "ggg",
	"ee",
	"aaa", "aaaa",
	"r", "rr",
	"h", "hh",
	"s", "ss",
	"am/pm", "a/p",
	"q", "qq",
	"nn", "nnn",
	"ww",
	"general", "e+", "e-",
}, token.FoldCase())

var decisionAbsorbers = map[string]bool{"general": true, "e+": true, "e-": true}

// Classify decides the kind of one section.
func Classify(section token.Stream) Kind {
	if section.ContainsFactor("@") {
		return KindText
	}
	for _, b := range section.Brackets() {
		if condition.IsElapsed(b.Value) {
			return KindDate
		}
	}
	for _, f := range section {
		if f.Kind != token.Factor {
			continue
		}
		for _, t := range token.Segment(f.Value, dateDecision) {
			if t.Kind == token.Atom && !decisionAbsorbers[strings.ToLower(t.Value)] {
				return KindDate
			}
		}
	}
	return KindNumber
}
