// Package term holds the renderable units a compiled number-format section is
// made of.  A [Term] is a small immutable value; [Term.Render] formats it
// against one value described by a [Context].  Rendering is pure and never
// fails: a term that has nothing to show renders "".
package term

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-cellfmt/locale"
	"github.com/TsubasaBE/go-cellfmt/numeric"
)

// Kind identifies the variant of a [Term].
type Kind uint8

// Term kinds, grouped by the section kind that produces them.
const (
	// Shared.
	Literal    Kind = iota // Text verbatim
	Fill                   // _X: one space
	RepeatFill             // *X: nothing, width fill is a presentation concern

	// Number sections.
	Placeholder    // 0 # ?
	General        // the General keyword inside a section
	ExponentMarker // E+ E- e+ e-
	DecimalPoint   // .
	Percent        // %
	Slash          // the fraction bar
	Digits         // literal digit run, e.g. a fixed denominator

	// Date sections.
	Year
	Month
	Minute
	Day
	Weekday
	WeekNumber
	Quarter
	Hour
	Second
	FractionalSecond
	AmPm
	EraName
	EraYear
	EraNameYear
	ElapsedHour
	ElapsedMinute
	ElapsedSecond

	// Text sections.
	At
)

var kindNames = [...]string{
	Literal:          "Literal",
	Fill:             "Fill",
	RepeatFill:       "RepeatFill",
	Placeholder:      "Placeholder",
	General:          "General",
	ExponentMarker:   "ExponentMarker",
	DecimalPoint:     "DecimalPoint",
	Percent:          "Percent",
	Slash:            "Slash",
	Digits:           "Digits",
	Year:             "Year",
	Month:            "Month",
	Minute:           "Minute",
	Day:              "Day",
	Weekday:          "Weekday",
	WeekNumber:       "WeekNumber",
	Quarter:          "Quarter",
	Hour:             "Hour",
	Second:           "Second",
	FractionalSecond: "FractionalSecond",
	AmPm:             "AmPm",
	EraName:          "EraName",
	EraYear:          "EraYear",
	EraNameYear:      "EraNameYear",
	ElapsedHour:      "ElapsedHour",
	ElapsedMinute:    "ElapsedMinute",
	ElapsedSecond:    "ElapsedSecond",
	At:               "At",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsDate reports whether k is a date or time field.
func (k Kind) IsDate() bool {
	return k >= Year && k <= ElapsedSecond
}

// Term is one renderable unit.
type Term struct {
	Kind Kind
	// Text is the source text: the literal for Literal and Digits, the
	// placeholder character, the marker as written ("E+", "AM/PM", "aaa").
	Text string
	// Width is the repetition count of a date atom ("mm" is 2) or the digit
	// count of a fractional second.
	Width int

	// Placeholder layout.  Index is 1-based within Part; Last marks the
	// position that also renders every digit beyond it; Group inserts
	// thousands separators into an integer part.
	Part  numeric.Part
	Index int
	Last  bool
	Group bool

	// Hour12 selects the 12-hour clock for an Hour in a section with an AM/PM
	// marker.
	Hour12 bool
}

// Context is the value a section renders.
type Context struct {
	// Number is the decomposed |value| of a number section.
	Number numeric.Number
	// Value is the signed value, used by General and elapsed-time terms.
	Value float64
	// Time is the value as a calendar time, Serial the raw serial.
	Time   time.Time
	Serial float64
	// Text is the verbatim value of a text section.
	Text string
	// Locale selects month, weekday and AM/PM names.
	Locale    language.Tag
	Resources locale.Resources
}

// Render formats t against ctx.
func (t Term) Render(ctx *Context) string {
	switch t.Kind {
	case Literal:
		return t.Text
	case Fill:
		return " "
	case RepeatFill:
		return ""
	case Placeholder, General, ExponentMarker, DecimalPoint, Percent, Slash, Digits:
		return t.renderNumber(ctx)
	case At:
		return ctx.Text
	}
	if t.Kind.IsDate() {
		return t.renderDate(ctx)
	}
	return ""
}

// RenderAll concatenates the rendering of every term.
func RenderAll(terms []Term, ctx *Context) string {
	var sb strings.Builder
	for _, t := range terms {
		sb.WriteString(t.Render(ctx))
	}
	return sb.String()
}
