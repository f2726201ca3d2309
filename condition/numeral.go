package condition

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/TsubasaBE/go-cellfmt/locale"
)

// Numeral selects a numeral system for the digits of a rendered section.
type Numeral uint8

// Numeral systems of the [DBNum1] .. [DBNum3] clauses.
const (
	NoNumeral Numeral = iota
	// DBNum1 writes numbers in kanji with positional units (千二百三十四).
	DBNum1
	// DBNum2 writes numbers in formal daiji (壱阡弐百参拾四).
	DBNum2
	// DBNum3 substitutes full-width digits (１２３４).
	DBNum3
)

func (n Numeral) String() string {
	switch n {
	case DBNum1:
		return "DBNum1"
	case DBNum2:
		return "DBNum2"
	case DBNum3:
		return "DBNum3"
	}
	return ""
}

// Applies reports whether the numeral system takes effect for the runtime
// locale or the section's format locale.  Only Japanese enables it.
func (n Numeral) Applies(runtime language.Tag, format locale.ID) bool {
	if n == NoNumeral {
		return false
	}
	return locale.Language(runtime) == "ja" || format.Language() == "ja"
}

// Apply rewrites every ASCII digit run of text.  Runs after a decimal point,
// runs with a leading zero and runs too long for the unit table are written
// digit by digit; other runs use positional units.
func (n Numeral) Apply(text string) string {
	if n == NoNumeral {
		return text
	}
	var sb strings.Builder
	rs := []rune(text)
	for i := 0; i < len(rs); {
		if !isDigit(rs[i]) {
			sb.WriteRune(rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && isDigit(rs[j]) {
			j++
		}
		run := string(rs[i:j])
		afterPoint := i > 0 && rs[i-1] == '.'
		sb.WriteString(n.convert(run, afterPoint))
		i = j
	}
	return sb.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

var (
	kanjiDigits = []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	daijiDigits = []string{"〇", "壱", "弐", "参", "四", "伍", "六", "七", "八", "九"}
	kanjiUnits  = []string{"", "十", "百", "千"}
	daijiUnits  = []string{"", "拾", "百", "阡"}
	kanjiGroups = []string{"", "万", "億", "兆"}
	daijiGroups = []string{"", "萬", "億", "兆"}
)

func (n Numeral) convert(run string, afterPoint bool) string {
	if n == DBNum3 {
		return width.Widen.String(run)
	}
	digits, units, groups := kanjiDigits, kanjiUnits, kanjiGroups
	if n == DBNum2 {
		digits, units, groups = daijiDigits, daijiUnits, daijiGroups
	}
	if afterPoint || (len(run) > 1 && run[0] == '0') || len(run) > 4*len(groups) {
		var sb strings.Builder
		for _, c := range run {
			sb.WriteString(digits[c-'0'])
		}
		return sb.String()
	}
	if strings.Trim(run, "0") == "" {
		return digits[0]
	}

	var sb strings.Builder
	ngroups := (len(run) + 3) / 4
	for g := ngroups - 1; g >= 0; g-- {
		end := len(run) - 4*g
		start := max(end-4, 0)
		group := run[start:end]
		if strings.Trim(group, "0") == "" {
			continue
		}
		for k, c := range group {
			d := int(c - '0')
			if d == 0 {
				continue
			}
			pos := len(group) - 1 - k
			// DBNum1 drops the 一 before 十, 百 and 千.
			if !(n == DBNum1 && d == 1 && pos > 0) {
				sb.WriteString(digits[d])
			}
			sb.WriteString(units[pos])
		}
		sb.WriteString(groups[g])
	}
	return sb.String()
}
