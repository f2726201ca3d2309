package term

import (
	"math"
	"strings"

	"github.com/TsubasaBE/go-cellfmt/numeric"
)

func (t Term) renderNumber(ctx *Context) string {
	n := ctx.Number
	switch t.Kind {
	case General:
		return numeric.General(math.Abs(ctx.Value))
	case DecimalPoint:
		return "."
	case Percent:
		return "%"
	}
	if n == nil {
		return ""
	}
	if blankFraction(n) {
		switch t.Kind {
		case Slash:
			return " "
		case Digits:
			return strings.Repeat(" ", len(t.Text))
		case Placeholder:
			if t.Part == numeric.Numerator || t.Part == numeric.Denominator {
				return " "
			}
		}
	}
	switch t.Kind {
	case Slash:
		return "/"
	case Digits:
		return t.Text
	case ExponentMarker:
		return exponentMarker(t.Text, n)
	case Placeholder:
		return t.renderPlaceholder(n)
	}
	return ""
}

// blankFraction reports a mixed fraction without a fractional remainder:
// its numerator, bar and denominator render as spaces.
func blankFraction(n numeric.Number) bool {
	return n.Kind() == numeric.KindFraction && n.Mixed() && n.Part(numeric.Numerator) == ""
}

// exponentMarker renders "E" followed by the exponent sign.  E+ always shows
// the sign, E- only a minus.
func exponentMarker(text string, n numeric.Number) string {
	if text == "" {
		return ""
	}
	e := text[:1]
	neg := n.Kind() == numeric.KindExponent && n.ExponentNegative()
	switch {
	case neg:
		return e + "-"
	case strings.HasSuffix(text, "+"):
		return e + "+"
	}
	return e
}

func (t Term) renderPlaceholder(n numeric.Number) string {
	var s string
	if t.Last {
		s = n.Above(t.Part, t.Index)
	} else {
		s = n.Digit(t.Part, t.Index)
	}
	if s == "" {
		s = t.emptyDigit(n)
	}
	if t.Group && t.Part == numeric.Integer && s != "" {
		return group(s, t.Index)
	}
	return s
}

// emptyDigit is what a placeholder shows for a position the number does not
// reach: 0 shows a zero, ? a space, # nothing.
func (t Term) emptyDigit(n numeric.Number) string {
	if t.Last && n.Kind() == numeric.KindFraction {
		// A value that is zero still shows one digit in front of the bar.
		zero := n.Part(numeric.WholeNumber) == "" && n.Part(numeric.Numerator) == ""
		if zero && (t.Part == numeric.WholeNumber || t.Part == numeric.Numerator && !n.Mixed()) {
			return "0"
		}
	}
	switch t.Text {
	case "0":
		return "0"
	case "?":
		return " "
	}
	return ""
}

// group writes s, whose last character sits at integer position index,
// followed by a separator after every digit whose position is one above a
// multiple of three.
func group(s string, index int) string {
	var sb strings.Builder
	for k := 0; k < len(s); k++ {
		sb.WriteByte(s[k])
		pos := index + len(s) - 1 - k
		if pos > 1 && (pos-1)%3 == 0 && s[k] != ' ' {
			sb.WriteByte(',')
		}
	}
	return sb.String()
}
