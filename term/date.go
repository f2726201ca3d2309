package term

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-cellfmt/epoch"
	"github.com/TsubasaBE/go-cellfmt/locale"
)

func (t Term) renderDate(ctx *Context) string {
	tm := ctx.Time
	switch t.Kind {
	case Year:
		if t.Width <= 2 {
			return pad(tm.Year()%100, 2)
		}
		return pad(tm.Year(), 4)

	case Month:
		switch t.Width {
		case 1:
			return strconv.Itoa(int(tm.Month()))
		case 2:
			return pad(int(tm.Month()), 2)
		case 3:
			return locale.MonthName(ctx.Resources, ctx.Locale, locale.KeyMonthShort, tm.Month())
		case 4:
			return locale.MonthName(ctx.Resources, ctx.Locale, locale.KeyMonthLong, tm.Month())
		}
		return locale.MonthName(ctx.Resources, ctx.Locale, locale.KeyMonthLetter, tm.Month())

	case Minute:
		return number(tm.Minute(), t.Width)

	case Day:
		return number(tm.Day(), t.Width)

	case Weekday:
		tag := ctx.Locale
		if strings.HasPrefix(strings.ToLower(t.Text), "a") {
			// aaa and aaaa are the Japanese weekday names in any locale.
			tag = language.Japanese
		}
		key := locale.KeyWeekdayShort
		if t.Width >= 4 {
			key = locale.KeyWeekdayLong
		}
		return locale.WeekdayName(ctx.Resources, tag, key, tm.Weekday())

	case WeekNumber:
		return strconv.Itoa(weekOfYear(tm))

	case Quarter:
		q := (int(tm.Month())-1)/3 + 1
		key := locale.KeyQuarterShort
		if t.Width >= 2 {
			key = locale.KeyQuarterLong
		}
		return locale.Name(ctx.Resources, ctx.Locale, key, q)

	case Hour:
		h := tm.Hour()
		if t.Hour12 {
			h %= 12
			if h == 0 {
				h = 12
			}
		}
		return number(h, t.Width)

	case Second:
		return number(tm.Second(), t.Width)

	case FractionalSecond:
		if t.Width <= 0 {
			return "."
		}
		ms := tm.Nanosecond() / int(time.Millisecond)
		div := 1
		for range 3 - min(t.Width, 3) {
			div *= 10
		}
		s := pad(ms/div, min(t.Width, 3))
		return "." + s + strings.Repeat("0", t.Width-len(s))

	case AmPm:
		return t.renderAmPm(ctx)

	case EraName:
		e, _, ok := locale.EraOf(ctx.Resources, ctx.Locale, tm)
		if !ok {
			return ""
		}
		return eraName(e, t.Width)

	case EraYear:
		_, y, ok := locale.EraOf(ctx.Resources, ctx.Locale, tm)
		if !ok {
			return strconv.Itoa(tm.Year())
		}
		return number(y, t.Width)

	case EraNameYear:
		e, y, ok := locale.EraOf(ctx.Resources, ctx.Locale, tm)
		if !ok {
			return strconv.Itoa(tm.Year())
		}
		return e.Name + pad(y, 2)

	case ElapsedHour:
		return elapsed(ctx.Serial, 3_600_000, t.Width)
	case ElapsedMinute:
		return elapsed(ctx.Serial, 60_000, t.Width)
	case ElapsedSecond:
		return elapsed(ctx.Serial, 1_000, t.Width)
	}
	return ""
}

// renderAmPm picks the morning or afternoon half of the marker.  AM/PM uses
// the locale's names; A/P keeps the case it was written in; other pairs such
// as 上午/下午 are taken from the pattern.
func (t Term) renderAmPm(ctx *Context) string {
	pm := ctx.Time.Hour() >= 12
	if strings.EqualFold(t.Text, "AM/PM") {
		return locale.AmPm(ctx.Resources, ctx.Locale, pm)
	}
	am, p, ok := strings.Cut(t.Text, "/")
	if !ok {
		return t.Text
	}
	if pm {
		return p
	}
	return am
}

func eraName(e locale.Era, width int) string {
	switch width {
	case 1:
		return e.Letter
	case 2:
		return e.Abbr
	}
	return e.Name
}

// elapsed renders the whole number of unit milliseconds in serial, zero
// padded to width digits.
func elapsed(serial float64, unit int64, width int) string {
	ms := epoch.Millis(serial)
	q := ms / unit
	if ms%unit != 0 && ms < 0 {
		q--
	}
	if q < 0 {
		return "-" + fmt.Sprintf("%0*d", width, -q)
	}
	return fmt.Sprintf("%0*d", width, q)
}

// weekOfYear counts weeks starting on Sunday; the week holding January 1 is
// week 1.
func weekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	return (t.YearDay()-1+int(jan1.Weekday()))/7 + 1
}

// number renders v unpadded for width 1 and with two digits otherwise.
func number(v, width int) string {
	if width <= 1 {
		return strconv.Itoa(v)
	}
	return pad(v, 2)
}

func pad(v, width int) string {
	return fmt.Sprintf("%0*d", width, v)
}
