package condition

import (
	"strconv"
	"strings"

	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-cellfmt/locale"
)

// ClauseKind identifies what a bracketed clause encodes.
type ClauseKind uint8

// Clause kinds.
const (
	ClauseUnknown ClauseKind = iota
	ClauseCondition
	ClauseLocale
	ClauseNumeral
	ClauseColor
	ClauseElapsed
)

func (k ClauseKind) String() string {
	switch k {
	case ClauseCondition:
		return "Condition"
	case ClauseLocale:
		return "Locale"
	case ClauseNumeral:
		return "Numeral"
	case ClauseColor:
		return "Color"
	case ClauseElapsed:
		return "Elapsed"
	}
	return "Unknown"
}

// Clause is one decoded [...] clause.  Only the fields of its Kind are set.
type Clause struct {
	Kind ClauseKind
	Raw  string

	// ClauseCondition.  Malformed is set when the clause is shaped like a
	// comparison but its operator or operand could not be read; Condition
	// is then Always.
	Condition Condition
	Malformed bool

	// ClauseLocale.  Currency is the symbol of [$€-409], "" for [$-409].
	// Locale is unset when the clause has no locale part ([$€]).
	Currency  string
	Locale    locale.ID
	HasLocale bool

	// ClauseNumeral.
	Numeral Numeral

	// ClauseColor.
	Color Color

	// ClauseElapsed: the unit letter (h, m or s, lower case) and how many
	// times it is repeated.
	Unit  byte
	Width int
}

// Parse decodes one bracketed clause, brackets included.  The clause type is
// taken from the number format parser's reading of the clause; bodies it
// reports as unknown are checked for Japanese color names, ColorN indexes and
// malformed comparisons.  Parse never fails: unrecognised clauses come back
// as ClauseUnknown.
func Parse(clause string) Clause {
	c := Clause{Raw: clause}
	body := strings.TrimSuffix(strings.TrimPrefix(clause, "["), "]")
	if body == "" {
		return c
	}

	tok := first(clause)
	switch tok.TType {
	case nfp.TokenTypeCondition:
		op := ""
		if len(tok.Parts) > 0 {
			op = tok.Parts[0].Token.TValue
		}
		return comparison(c, body, op)

	case nfp.TokenTypeColor:
		if col, ok := ParseColor(tok.TValue); ok {
			c.Kind, c.Color = ClauseColor, col
			return c
		}

	case nfp.TokenTypeCurrencyLanguage:
		return currencyLanguage(c, tok)

	case nfp.TokenTypeSwitchArgument:
		if n := numeral(body); n != NoNumeral {
			c.Kind, c.Numeral = ClauseNumeral, n
		}
		return c
	}

	if n := numeral(body); n != NoNumeral {
		c.Kind, c.Numeral = ClauseNumeral, n
		return c
	}
	if unit, n, ok := elapsed(body); ok {
		c.Kind, c.Unit, c.Width = ClauseElapsed, unit, n
		return c
	}
	if col, ok := ParseColor(body); ok {
		c.Kind, c.Color = ClauseColor, col
		return c
	}
	if strings.ContainsAny(body[:1], "<>=!") {
		c.Kind, c.Malformed = ClauseCondition, true
		c.Condition = Condition{Op: Always}
	}
	return c
}

// first runs the number format parser over a lone clause and returns its
// first token.
func first(clause string) nfp.Token {
	p := nfp.NumberFormatParser()
	for _, s := range p.Parse(clause) {
		if len(s.Items) > 0 {
			return s.Items[0]
		}
	}
	return nfp.Token{TType: nfp.TokenTypeUnknown}
}

func comparison(c Clause, body, op string) Clause {
	c.Kind = ClauseCondition
	o, ok := parseOp(op)
	if !ok || !strings.HasPrefix(body, op) {
		c.Malformed, c.Condition = true, Condition{Op: Always}
		return c
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(body[len(op):]), 64)
	if err != nil {
		c.Malformed, c.Condition = true, Condition{Op: Always}
		return c
	}
	c.Condition = Condition{Op: o, Value: v}
	return c
}

func currencyLanguage(c Clause, tok nfp.Token) Clause {
	c.Kind = ClauseLocale
	for _, p := range tok.Parts {
		switch p.Token.TType {
		case nfp.TokenSubTypeCurrencyString:
			c.Currency = p.Token.TValue
		case nfp.TokenSubTypeLanguageInfo:
			if id, err := locale.ParseLCID(p.Token.TValue); err == nil {
				c.Locale, c.HasLocale = id, true
			}
		}
	}
	return c
}

func numeral(body string) Numeral {
	switch strings.ToUpper(body) {
	case "DBNUM1":
		return DBNum1
	case "DBNUM2":
		return DBNum2
	case "DBNUM3":
		return DBNum3
	}
	return NoNumeral
}

// elapsed matches h+, m+ or s+ in any case.
func elapsed(body string) (byte, int, bool) {
	lower := strings.ToLower(body)
	u := lower[0]
	if u != 'h' && u != 'm' && u != 's' {
		return 0, 0, false
	}
	if strings.Trim(lower, string(u)) != "" {
		return 0, 0, false
	}
	return u, len(lower), true
}

// IsElapsed reports whether clause is an elapsed-time clause such as [h] or
// [mm].
func IsElapsed(clause string) bool {
	body := strings.TrimSuffix(strings.TrimPrefix(clause, "["), "]")
	if body == "" || len(body)+2 != len(clause) {
		return false
	}
	_, _, ok := elapsed(body)
	return ok
}
