// Package numeric decomposes a number into the digit strings a number format
// lays out: integer and decimal digits, a percent-scaled variant, a
// normalised exponent form, and a rational approximation for fractions.
//
// Every part is a plain digit string without sign.  Digits are looked up by
// a 1-based index.  Integer, Exponent, Numerator and WholeNumber count from
// the least-significant digit (right-aligned, like the placeholders of
// "#,##0"); Decimal and Denominator count outward from their separator
// (left-aligned, like the placeholders of ".00" and "/??").
//
// Rounding is half up on the 15-significant-digit decimal expansion of the
// value, which is how a spreadsheet sees a double.
package numeric

import (
	"fmt"
	"math"
)

// Kind identifies the variant of a [Number].
type Kind uint8

// Number variants.
const (
	KindDecimal Kind = iota
	KindPercent
	KindExponent
	KindFraction
)

func (k Kind) String() string {
	switch k {
	case KindDecimal:
		return "Decimal"
	case KindPercent:
		return "Percent"
	case KindExponent:
		return "Exponent"
	case KindFraction:
		return "Fraction"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Part names one digit string of a decomposed number.
type Part uint8

// Number parts.
const (
	Integer Part = iota
	Decimal
	Exponent
	Numerator
	Denominator
	WholeNumber
)

func (p Part) String() string {
	switch p {
	case Integer:
		return "Integer"
	case Decimal:
		return "Decimal"
	case Exponent:
		return "Exponent"
	case Numerator:
		return "Numerator"
	case Denominator:
		return "Denominator"
	case WholeNumber:
		return "WholeNumber"
	}
	return fmt.Sprintf("Part(%d)", uint8(p))
}

// leftAligned reports whether indices of p count from the separator.
func (p Part) leftAligned() bool {
	return p == Decimal || p == Denominator
}

// Number is a decomposed |value|.
//
// ExponentNegative and Mixed are typed accessors for the Exponent and
// Fraction variants.  Calling them on another variant panics.
type Number interface {
	Kind() Kind
	// Negative reports the sign of the original value.
	Negative() bool
	// Part returns the digit string of p, or "" when the variant lacks it.
	Part(p Part) string
	// Digit returns the digit at 1-based index of p, or "" past its end.
	Digit(p Part, index int) string
	// Above returns every digit of p from index outward: the digit at index
	// and all higher-order (right-aligned parts) or later (left-aligned
	// parts) digits.
	Above(p Part, index int) string
	ExponentNegative() bool
	Mixed() bool
}

// parts implements the shared digit lookup.
type parts struct {
	kind     Kind
	negative bool
	digits   [WholeNumber + 1]string
}

func (n *parts) Kind() Kind         { return n.kind }
func (n *parts) Negative() bool     { return n.negative }
func (n *parts) Part(p Part) string { return n.digits[p] }

func (n *parts) Digit(p Part, index int) string {
	s := n.digits[p]
	if index < 1 || index > len(s) {
		return ""
	}
	if p.leftAligned() {
		return s[index-1 : index]
	}
	return s[len(s)-index : len(s)-index+1]
}

func (n *parts) Above(p Part, index int) string {
	s := n.digits[p]
	if index < 1 || index > len(s) {
		return ""
	}
	if p.leftAligned() {
		return s[index-1:]
	}
	return s[:len(s)-index+1]
}

func (n *parts) ExponentNegative() bool {
	panic(fmt.Sprintf("numeric: ExponentNegative called on %s number", n.kind))
}

func (n *parts) Mixed() bool {
	panic(fmt.Sprintf("numeric: Mixed called on %s number", n.kind))
}

// ── Decimal / Percent ────────────────────────────────────────────────────────

// DecimalNumber is |value| split into integer and decimal digits.
type DecimalNumber struct {
	parts
}

// NewDecimal rounds |v| half up to scale fractional digits after dividing it
// by 1000 per thousands divisor (the trailing commas of "#,##0,").
func NewDecimal(v float64, scale, thousands int) *DecimalNumber {
	d := newDecimal(v).shift(-3 * thousands)
	n := &DecimalNumber{parts{kind: KindDecimal, negative: v < 0}}
	n.digits[Integer], n.digits[Decimal] = d.fixed(scale)
	return n
}

// NewPercent is [NewDecimal] after multiplying by 100 once per percent sign.
func NewPercent(v float64, scale, thousands, percents int) *DecimalNumber {
	d := newDecimal(v).shift(2*percents - 3*thousands)
	n := &DecimalNumber{parts{kind: KindPercent, negative: v < 0}}
	n.digits[Integer], n.digits[Decimal] = d.fixed(scale)
	return n
}

// ── Exponent ─────────────────────────────────────────────────────────────────

// ExponentNumber is |value| normalised to one non-zero integer digit, scale
// decimal digits and a base-10 exponent.
type ExponentNumber struct {
	parts
	expNegative bool
}

// NewExponent normalises |v|.  Zero has an empty integer part and exponent
// "0".
func NewExponent(v float64, scale int) *ExponentNumber {
	n := &ExponentNumber{parts: parts{kind: KindExponent, negative: v < 0}}
	d := newDecimal(v).round(1 + scale)
	if d.isZero() {
		n.digits[Exponent] = "0"
		return n
	}
	e := d.exp - 1
	n.digits[Integer] = string(d.digits[:1])
	n.digits[Decimal] = string(d.digits[1:])
	if e < 0 {
		n.expNegative = true
		e = -e
	}
	n.digits[Exponent] = fmt.Sprint(e)
	return n
}

// ExponentNegative reports whether the exponent is below zero.
func (n *ExponentNumber) ExponentNegative() bool { return n.expNegative }

// ── Fraction ─────────────────────────────────────────────────────────────────

// MaxFractionDigits caps the denominator search bound at 10^5.
const MaxFractionDigits = 5

// maxIterations bounds the continued-fraction expansion.
const maxIterations = 64

// FractionNumber is |value| as an optional whole part plus numerator over
// denominator.
type FractionNumber struct {
	parts
	mixed bool
}

// Mixed reports whether the whole part was split off.
func (n *FractionNumber) Mixed() bool { return n.mixed }

// NewFraction finds the best rational approximation of |v| whose denominator
// has at most digits digits (1 → below 10, 2 → below 100, capped at 5).  When
// mixed, the whole part is split off first and the numerator holds only the
// remainder.
func NewFraction(v float64, digits int, mixed bool) *FractionNumber {
	digits = min(max(digits, 1), MaxFractionDigits)
	bound := int64(math.Pow10(digits)) - 1
	whole, rest := split(v, mixed)
	num, den := approximate(rest, bound)
	return newFraction(v, whole, num, den, mixed)
}

// NewExactFraction expresses |v| over the fixed denominator den, rounding the
// numerator half up.
func NewExactFraction(v float64, den int64, mixed bool) *FractionNumber {
	if den < 1 {
		den = 1
	}
	whole, rest := split(v, mixed)
	num := int64(math.Floor(rest*float64(den) + 0.5))
	return newFraction(v, whole, num, den, mixed)
}

func split(v float64, mixed bool) (int64, float64) {
	a := math.Abs(v)
	if !mixed {
		return 0, a
	}
	w := math.Floor(a)
	return int64(w), a - w
}

func newFraction(v float64, whole, num, den int64, mixed bool) *FractionNumber {
	if mixed && num >= den {
		whole += num / den
		num %= den
	}
	n := &FractionNumber{parts: parts{kind: KindFraction, negative: v < 0}, mixed: mixed}
	if whole > 0 {
		n.digits[WholeNumber] = fmt.Sprint(whole)
	}
	if num > 0 {
		n.digits[Numerator] = fmt.Sprint(num)
	}
	n.digits[Denominator] = fmt.Sprint(den)
	return n
}

// approximate returns the fraction p/q closest to x with q ≤ maxDen, walking
// the continued-fraction convergents and testing the last admissible
// semiconvergent.  Expansion stops early on an exact fit, after
// maxIterations terms, or before an int64 overflow.
func approximate(x float64, maxDen int64) (int64, int64) {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 1
	}
	var (
		h0, h1 int64 = 0, 1
		k0, k1 int64 = 1, 0
		r            = x
	)
	for range maxIterations {
		a := math.Floor(r)
		if a > float64(math.MaxInt64/4) {
			break
		}
		ai := int64(a)
		if h1 != 0 && ai > (math.MaxInt64-h0)/h1 {
			break
		}
		h2, k2 := ai*h1+h0, ai*k1+k0
		if k2 > maxDen {
			if k1 == 0 {
				break
			}
			t := (maxDen - k0) / k1
			sh, sk := t*h1+h0, t*k1+k0
			if t > 0 && math.Abs(x-float64(sh)/float64(sk)) < math.Abs(x-float64(h1)/float64(k1)) {
				return sh, sk
			}
			break
		}
		h0, h1, k0, k1 = h1, h2, k1, k2
		f := r - a
		if f < 1e-12 {
			break
		}
		r = 1 / f
	}
	if k1 == 0 {
		return 0, 1
	}
	return h1, k1
}
