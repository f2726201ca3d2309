package numeric

import (
	"math"
	"strconv"
	"strings"
)

// significantDigits is the precision a spreadsheet keeps for a double.
const significantDigits = 15

// decimal is a non-negative decimal value 0.d1d2d3… × 10^exp.  digits has no
// leading or trailing zeros; the zero value represents 0.
type decimal struct {
	digits []byte
	exp    int
}

// newDecimal expands |v| to 15 significant digits.
func newDecimal(v float64) decimal {
	v = math.Abs(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal{}
	}
	s := strconv.FormatFloat(v, 'e', significantDigits-1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	mant = strings.Replace(mant, ".", "", 1)
	d := decimal{digits: []byte(mant), exp: e + 1}
	d.trim()
	return d
}

func (d *decimal) trim() {
	i := 0
	for i < len(d.digits) && d.digits[i] == '0' {
		i++
	}
	d.digits = d.digits[i:]
	d.exp -= i
	j := len(d.digits)
	for j > 0 && d.digits[j-1] == '0' {
		j--
	}
	d.digits = d.digits[:j]
	if len(d.digits) == 0 {
		d.exp = 0
	}
}

func (d decimal) isZero() bool { return len(d.digits) == 0 }

// shift multiplies by 10^n.
func (d decimal) shift(n int) decimal {
	if d.isZero() {
		return d
	}
	return decimal{digits: d.digits, exp: d.exp + n}
}

// round keeps the first keep mantissa digits, rounding half up.
func (d decimal) round(keep int) decimal {
	if d.isZero() || keep >= len(d.digits) {
		return d
	}
	if keep < 0 {
		return decimal{}
	}
	up := d.digits[keep] >= '5'
	out := make([]byte, keep)
	copy(out, d.digits[:keep])
	r := decimal{digits: out, exp: d.exp}
	if up {
		i := keep - 1
		for ; i >= 0; i-- {
			if out[i] < '9' {
				out[i]++
				break
			}
			out[i] = '0'
		}
		if i < 0 {
			r.digits = append([]byte{'1'}, out...)
			r.exp++
		}
	}
	r.trim()
	return r
}

// fixed rounds to scale fractional digits and returns the integer digits
// (empty when the value is below 1) and the fractional digits with trailing
// zeros removed.
func (d decimal) fixed(scale int) (integer, fraction string) {
	r := d.round(d.exp + scale)
	if r.isZero() {
		return "", ""
	}
	var ib, fb strings.Builder
	for i := 0; i < r.exp; i++ {
		if i < len(r.digits) {
			ib.WriteByte(r.digits[i])
		} else {
			ib.WriteByte('0')
		}
	}
	for i := r.exp; i < len(r.digits); i++ {
		if i < 0 {
			fb.WriteByte('0')
			continue
		}
		fb.WriteByte(r.digits[i])
	}
	return ib.String(), strings.TrimRight(fb.String(), "0")
}

// Significant rounds |v| half up to n significant digits on its 15-digit
// expansion and returns the result as a float64.  The general formatter uses
// it to avoid binary noise such as 0.30000000000000004.
func Significant(v float64, n int) float64 {
	d := newDecimal(v).round(n)
	if d.isZero() {
		return 0
	}
	f, err := strconv.ParseFloat("0."+string(d.digits)+"e"+strconv.Itoa(d.exp), 64)
	if err != nil {
		return math.Abs(v)
	}
	return f
}
