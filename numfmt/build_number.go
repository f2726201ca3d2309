package numfmt

import (
	"strconv"
	"strings"

	"github.com/TsubasaBE/go-cellfmt/numeric"
	"github.com/TsubasaBE/go-cellfmt/term"
	"github.com/TsubasaBE/go-cellfmt/token"
)

var numberTable = token.NewTable(
	[]string{"0", "#", "?", "General", "E+", "E-"},
	token.FoldCase(),
	token.WithSymbols(".", ",", "%", "/"),
	token.WithDigits(),
)

// layout describes how a number section decomposes its value.
type layout struct {
	kind      numeric.Kind
	scale     int   // decimal or mantissa digits
	thousands int   // trailing-comma divisor count
	percents  int   // % signs
	digits    int   // denominator placeholder count
	exactDen  int64 // fixed denominator, 0 when searched
	mixed     bool
}

// decompose splits |v| the way the section lays it out.
func (l layout) decompose(v float64) numeric.Number {
	switch l.kind {
	case numeric.KindPercent:
		return numeric.NewPercent(v, l.scale, l.thousands, l.percents)
	case numeric.KindExponent:
		return numeric.NewExponent(v, l.scale)
	case numeric.KindFraction:
		if l.exactDen > 0 {
			return numeric.NewExactFraction(v, l.exactDen, l.mixed)
		}
		return numeric.NewFraction(v, l.digits, l.mixed)
	}
	return numeric.NewDecimal(v, l.scale, l.thousands)
}

// item is a term under construction; comma marks a "," whose role is not
// known until the whole section has been read.
type item struct {
	term.Term
	comma bool
}

func (it item) isPlaceholder() bool { return !it.comma && it.Kind == term.Placeholder }

// buildNumber turns a number section into terms.
func buildNumber(section token.Stream, currency func(token.Token) (string, bool)) ([]term.Term, layout) {
	var items []item
	for _, tok := range section {
		switch tok.Kind {
		case token.Factor:
			for _, a := range token.Segment(tok.Value, numberTable) {
				items = append(items, numberItem(a))
			}
		case token.Bracket:
			if sym, ok := currency(tok); ok {
				items = append(items, item{Term: term.Term{Kind: term.Literal, Text: sym}})
			}
		default:
			items = append(items, item{Term: shared(tok)})
		}
	}

	slash := -1
	for i, it := range items {
		if !it.comma && it.Kind == term.Slash {
			slash = i
			break
		}
	}
	if slash >= 0 {
		return layoutFraction(items, slash)
	}
	return layoutDecimal(items)
}

func numberItem(a token.Token) item {
	switch a.Kind {
	case token.Symbol:
		switch a.Value {
		case ".":
			return item{Term: term.Term{Kind: term.DecimalPoint, Text: "."}}
		case ",":
			return item{comma: true}
		case "%":
			return item{Term: term.Term{Kind: term.Percent, Text: "%"}}
		case "/":
			return item{Term: term.Term{Kind: term.Slash, Text: "/"}}
		}
	case token.Digits:
		return item{Term: term.Term{Kind: term.Digits, Text: a.Value}}
	case token.Atom:
		switch strings.ToUpper(a.Value) {
		case "0", "#", "?":
			return item{Term: term.Term{Kind: term.Placeholder, Text: a.Value}}
		case "GENERAL":
			return item{Term: term.Term{Kind: term.General, Text: a.Value}}
		case "E+", "E-":
			return item{Term: term.Term{Kind: term.ExponentMarker, Text: a.Value}}
		}
	}
	return item{Term: term.Term{Kind: term.Literal, Text: a.Value}}
}

// shared maps the tokens every section kind treats alike.
func shared(tok token.Token) term.Term {
	switch tok.Kind {
	case token.FillSpace:
		return term.Term{Kind: term.Fill, Text: tok.Value}
	case token.RepeatFill:
		return term.Term{Kind: term.RepeatFill, Text: tok.Value}
	}
	return term.Term{Kind: term.Literal, Text: tok.Value}
}

// layoutFraction assigns Numerator, WholeNumber and Denominator positions
// around the fraction bar at slash.
func layoutFraction(items []item, slash int) ([]term.Term, layout) {
	l := layout{kind: numeric.KindFraction}

	// Denominator: placeholders after the bar, counted from the bar.  A digit
	// run right after the bar fixes the denominator.
	if slash+1 < len(items) && items[slash+1].Kind == term.Digits && !items[slash+1].comma {
		l.exactDen, _ = strconv.ParseInt(items[slash+1].Text, 10, 64)
	}
	idx := 0
	for i := slash + 1; i < len(items); i++ {
		if items[i].isPlaceholder() {
			idx++
			items[i].Part, items[i].Index = numeric.Denominator, idx
		}
	}
	l.digits = min(max(idx, 1), numeric.MaxFractionDigits)

	// Numerator: the placeholder run closest to the bar.  Placeholders
	// further left form the whole number.
	i := slash - 1
	for i >= 0 && !items[i].isPlaceholder() {
		i--
	}
	num := 0
	for ; i >= 0 && (items[i].isPlaceholder() || items[i].comma); i-- {
		if items[i].comma {
			continue
		}
		num++
		items[i].Part, items[i].Index = numeric.Numerator, num
	}
	markLast(items[i+1:slash], numeric.Numerator)

	whole := 0
	for ; i >= 0; i-- {
		if items[i].isPlaceholder() {
			whole++
			items[i].Part, items[i].Index = numeric.WholeNumber, whole
		}
	}
	if whole > 0 {
		l.mixed = true
		markLast(items, numeric.WholeNumber)
	}
	return collect(items), l
}

// layoutDecimal assigns Integer, Decimal and Exponent positions.
func layoutDecimal(items []item) ([]term.Term, layout) {
	l := layout{kind: numeric.KindDecimal}

	exp := len(items)
	for i, it := range items {
		if !it.comma && it.Kind == term.ExponentMarker {
			exp = i
			l.kind = numeric.KindExponent
			break
		}
	}
	point := exp
	for i := 0; i < exp; i++ {
		if !items[i].comma && items[i].Kind == term.DecimalPoint {
			point = i
			break
		}
	}

	// Integer digits count leftwards from the decimal point.
	intCount := 0
	for i := point - 1; i >= 0; i-- {
		if items[i].isPlaceholder() {
			intCount++
			items[i].Part, items[i].Index = numeric.Integer, intCount
		}
	}
	// Decimal digits count rightwards from it.
	for i := point + 1; i < exp; i++ {
		if items[i].isPlaceholder() {
			l.scale++
			items[i].Part, items[i].Index = numeric.Decimal, l.scale
		}
	}
	expCount := 0
	for i := len(items) - 1; i > exp; i-- {
		if items[i].isPlaceholder() {
			expCount++
			items[i].Part, items[i].Index = numeric.Exponent, expCount
		}
	}

	// A comma between integer placeholders turns on grouping.  Commas that
	// end the integer or decimal digits divide by 1000 each.
	group := false
	for i := 0; i < exp; i++ {
		if !items[i].comma {
			continue
		}
		before, after := false, false
		for j := i - 1; j >= 0; j-- {
			if items[j].isPlaceholder() {
				before = true
				break
			}
		}
		end := point
		if i > point {
			end = exp
		}
		for j := i + 1; j < end; j++ {
			if items[j].isPlaceholder() {
				after = true
				break
			}
		}
		switch {
		case i < point && before && after:
			group = true
		case before && !after:
			l.thousands++
		}
	}

	for _, it := range items {
		if !it.comma && it.Kind == term.Percent {
			l.percents++
		}
	}
	if l.kind == numeric.KindDecimal && l.percents > 0 {
		l.kind = numeric.KindPercent
	}

	markLast(items, numeric.Integer)
	markLast(items, numeric.Exponent)
	if group {
		for i := range items {
			if items[i].isPlaceholder() && items[i].Part == numeric.Integer {
				items[i].Group = true
			}
		}
	}

	if intCount == 0 && point < exp {
		// ".00" still shows the integer digits in front of the point.
		hidden := item{Term: term.Term{Kind: term.Placeholder, Text: "#", Part: numeric.Integer, Index: 1, Last: true}}
		items = append(items[:point], append([]item{hidden}, items[point:]...)...)
	}
	return collect(items), l
}

// markLast flags the highest position of part: the one with the largest
// index.
func markLast(items []item, part numeric.Part) {
	best := -1
	for i, it := range items {
		if it.isPlaceholder() && it.Part == part && it.Index > 0 {
			if best < 0 || it.Index > items[best].Index {
				best = i
			}
		}
	}
	if best >= 0 {
		items[best].Last = true
	}
}

// collect drops the comma markers.
func collect(items []item) []term.Term {
	out := make([]term.Term, 0, len(items))
	for _, it := range items {
		if !it.comma {
			out = append(out, it.Term)
		}
	}
	return out
}
