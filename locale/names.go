package locale

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// Name returns entry index of list key for tag.  Providers that lack the
// entry fall back to [Default]; "" means neither has it.
func Name(r Resources, tag language.Tag, key string, index int) string {
	k := key + "." + strconv.Itoa(index)
	if r != nil {
		if v, ok := r.Lookup(tag, k); ok {
			return v
		}
	}
	if v, ok := Default().Lookup(tag, k); ok {
		return v
	}
	return ""
}

// MonthName returns the name of m from list key (KeyMonthShort, KeyMonthLong
// or KeyMonthLetter).
func MonthName(r Resources, tag language.Tag, key string, m time.Month) string {
	return Name(r, tag, key, int(m))
}

// WeekdayName returns the name of d from list key (KeyWeekdayShort or
// KeyWeekdayLong).
func WeekdayName(r Resources, tag language.Tag, key string, d time.Weekday) string {
	return Name(r, tag, key, int(d)+1)
}

// AmPm returns the morning or afternoon marker.
func AmPm(r Resources, tag language.Tag, pm bool) string {
	k := KeyAM
	if pm {
		k = KeyPM
	}
	if r != nil {
		if v, ok := r.Lookup(tag, k); ok {
			return v
		}
	}
	v, _ := Default().Lookup(tag, k)
	return v
}

// Era is one entry of a calendar's era table.
type Era struct {
	Start  time.Time
	Letter string // "H"
	Abbr   string // "平"
	Name   string // "平成"
}

// Eras returns the era table for tag in start order.  Locales without one
// use the Japanese table.
func Eras(r Resources, tag language.Tag) []Era {
	if es := eras(r, tag); len(es) > 0 {
		return es
	}
	return eras(r, language.Japanese)
}

func eras(r Resources, tag language.Tag) []Era {
	var out []Era
	for i := 1; ; i++ {
		p := KeyEra + "." + strconv.Itoa(i) + "."
		start := lookup(r, tag, p+"start")
		if start == "" {
			return out
		}
		t, err := time.Parse(time.DateOnly, start)
		if err != nil {
			return out
		}
		out = append(out, Era{
			Start:  t,
			Letter: lookup(r, tag, p+"letter"),
			Abbr:   lookup(r, tag, p+"abbr"),
			Name:   lookup(r, tag, p+"name"),
		})
	}
}

func lookup(r Resources, tag language.Tag, key string) string {
	if r != nil {
		if v, ok := r.Lookup(tag, key); ok {
			return v
		}
	}
	v, _ := Default().Lookup(tag, key)
	return v
}

// EraOf returns the era containing the calendar date of t and the 1-based
// year within it.  ok is false for dates before the first era.
func EraOf(r Resources, tag language.Tag, t time.Time) (era Era, year int, ok bool) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for _, e := range Eras(r, tag) {
		if e.Start.After(day) {
			break
		}
		era, ok = e, true
	}
	if !ok {
		return Era{}, 0, false
	}
	return era, t.Year() - era.Start.Year() + 1, true
}
