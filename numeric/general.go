package numeric

import (
	"math"
	"strconv"
	"strings"
)

// General formats v the way the "General" number format shows it:
//   - integers below 1e11 are rendered verbatim
//   - other values in [1e-9, 1e11) keep 10 significant digits
//   - anything outside that range switches to scientific 0.#####E+00
func General(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'G', -1, 64)
	}
	if v == 0 {
		return "0"
	}
	a := math.Abs(v)
	if a >= 1e11 || a < 1e-9 {
		return scientific(v)
	}
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(signed(v, 10), 'f', -1, 64)
}

// signed is [Significant] keeping the sign of v.
func signed(v float64, n int) float64 {
	return math.Copysign(Significant(v, n), v)
}

// scientific renders v with up to five mantissa decimals and a signed
// exponent of at least two digits.
func scientific(v float64) string {
	s := strconv.FormatFloat(signed(v, 6), 'E', 5, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if strings.Contains(mant, ".") {
		mant = strings.TrimRight(strings.TrimRight(mant, "0"), ".")
	}
	return mant + "E" + exp
}
